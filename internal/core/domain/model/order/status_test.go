package order_test

import (
	"fmt"
	"testing"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Placed))
		assert.Equal(t, 2, int(order.InProgress))
		assert.Equal(t, 3, int(order.Complete))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Placed, order.InProgress, order.Complete} {
			t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out-of-range status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Status(-1), order.Status(4), order.Status(100)} {
			require.Error(t, status.Validate())
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should render status names", func(t *testing.T) {
		assert.Equal(t, "Placed", order.Placed.String())
		assert.Equal(t, "InProgress", order.InProgress.String())
		assert.Equal(t, "Complete", order.Complete.String())
		assert.Equal(t, "Unknown", order.Unknown.String())
		assert.Equal(t, "Unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round trip valid statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Placed, order.InProgress, order.Complete} {
			restored, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, restored)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("Cancelled")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Start(t *testing.T) {
	t.Run("should start from Placed", func(t *testing.T) {
		newStatus, err := order.Placed.Start()

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, newStatus)
	})

	t.Run("should reject start from other states", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.InProgress, order.Complete} {
			t.Run(fmt.Sprintf("from %s", status), func(t *testing.T) {
				_, err := status.Start()

				require.Error(t, err)
				assert.Contains(t, err.Error(), "not a valid status to start")
			})
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("should complete from InProgress", func(t *testing.T) {
		newStatus, err := order.InProgress.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Complete, newStatus)
	})

	t.Run("should stay Complete on re-completion", func(t *testing.T) {
		newStatus, err := order.Complete.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Complete, newStatus)
	})

	t.Run("should reject skipping dispatch", func(t *testing.T) {
		_, err := order.Placed.Complete()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Placed is not a valid status to complete")
	})
}

func TestStatus_ValidateCanHaveCompletedAt(t *testing.T) {
	t.Run("should require timestamp for Complete", func(t *testing.T) {
		require.NoError(t, order.Complete.ValidateCanHaveCompletedAt(true))
		require.Error(t, order.Complete.ValidateCanHaveCompletedAt(false))
	})

	t.Run("should forbid timestamp before completion", func(t *testing.T) {
		require.NoError(t, order.Placed.ValidateCanHaveCompletedAt(false))
		require.Error(t, order.Placed.ValidateCanHaveCompletedAt(true))
		require.NoError(t, order.InProgress.ValidateCanHaveCompletedAt(false))
		require.Error(t, order.InProgress.ValidateCanHaveCompletedAt(true))
	})
}
