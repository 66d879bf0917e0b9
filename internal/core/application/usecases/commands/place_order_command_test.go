package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	t.Run("should create command with item requests", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand([]commands.ItemRequest{
			{ProductCode: "P001", Quantity: 2, Toppings: []string{"olives"}},
			{ProductCode: "D001", Quantity: 1},
		})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Len(t, cmd.ItemRequests(), 2)
		assert.Equal(t, "P001", cmd.ItemRequests()[0].ProductCode)
	})

	t.Run("should reject empty request list", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(nil)

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrItemRequestsAreRequired)
	})

	t.Run("should reject request without product code", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand([]commands.ItemRequest{{Quantity: 1}})

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrProductCodeIsRequired)
	})

	t.Run("should reject non positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := commands.NewPlaceOrderCommand([]commands.ItemRequest{{ProductCode: "P001", Quantity: quantity}})

			require.Error(t, err)
			require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
		}
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		cmd := commands.PlaceOrderCommand{}

		err := cmd.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}
