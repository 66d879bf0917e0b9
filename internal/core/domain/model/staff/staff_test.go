package staff_test

import (
	"testing"

	"dispatch/internal/core/domain/model/product"
	"dispatch/internal/core/domain/model/staff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStaff(t *testing.T) {
	t.Run("should create staff member logged out", func(t *testing.T) {
		member, err := staff.NewStaff("S001", "Chandler", []product.Category{product.VegPizza, product.Burger})

		require.NoError(t, err)
		require.NoError(t, member.Validate())
		assert.Equal(t, "S001", member.ID())
		assert.Equal(t, "Chandler", member.Name())
		assert.Equal(t, []product.Category{product.VegPizza, product.Burger}, member.Skills())
		assert.False(t, member.IsLoggedIn())
	})

	t.Run("should reject empty id", func(t *testing.T) {
		_, err := staff.NewStaff("", "Chandler", []product.Category{product.VegPizza})

		require.Error(t, err)
		require.ErrorIs(t, err, staff.ErrIDIsRequired)
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := staff.NewStaff("S001", "", []product.Category{product.VegPizza})

		require.Error(t, err)
		require.ErrorIs(t, err, staff.ErrNameIsRequired)
	})

	t.Run("should reject empty skill set", func(t *testing.T) {
		_, err := staff.NewStaff("S001", "Chandler", nil)

		require.Error(t, err)
		require.ErrorIs(t, err, staff.ErrSkillsAreRequired)
	})

	t.Run("should reject invalid skills", func(t *testing.T) {
		_, err := staff.NewStaff("S001", "Chandler", []product.Category{product.UnknownCategory})

		require.Error(t, err)
	})

	t.Run("should collapse duplicate skills", func(t *testing.T) {
		member, err := staff.NewStaff("S001", "Chandler", []product.Category{
			product.VegPizza, product.VegPizza, product.Burger,
		})

		require.NoError(t, err)
		assert.Equal(t, []product.Category{product.VegPizza, product.Burger}, member.Skills())
	})
}

func TestRestoreStaff(t *testing.T) {
	t.Run("should restore login state", func(t *testing.T) {
		member, err := staff.RestoreStaff("S002", "Joey", []product.Category{product.Sandwich}, true)

		require.NoError(t, err)
		assert.True(t, member.IsLoggedIn())
	})
}

func TestStaff_LoginLogout(t *testing.T) {
	newMember := func(t *testing.T) *staff.Staff {
		t.Helper()
		member, err := staff.NewStaff("S001", "Chandler", []product.Category{product.VegPizza})
		require.NoError(t, err)
		return member
	}

	t.Run("should log in and out", func(t *testing.T) {
		member := newMember(t)

		member.Login()
		assert.True(t, member.IsLoggedIn())

		member.Logout()
		assert.False(t, member.IsLoggedIn())
	})

	t.Run("should treat repeated login as no-op", func(t *testing.T) {
		member := newMember(t)

		member.Login()
		member.Login()

		assert.True(t, member.IsLoggedIn())
	})

	t.Run("should treat logout of logged-out member as no-op", func(t *testing.T) {
		member := newMember(t)

		member.Logout()

		assert.False(t, member.IsLoggedIn())
	})
}

func TestStaff_CanHandle(t *testing.T) {
	member, _ := staff.NewStaff("S002", "Joey", []product.Category{
		product.VegPizza, product.NonVegPizza, product.Sandwich, product.Burger,
	})

	t.Run("should report skills the member has", func(t *testing.T) {
		assert.True(t, member.CanHandle(product.VegPizza))
		assert.True(t, member.CanHandle(product.Burger))
	})

	t.Run("should report skills the member lacks", func(t *testing.T) {
		assert.False(t, member.CanHandle(product.Drinks))
	})

	t.Run("should ignore login state", func(t *testing.T) {
		member.Logout()

		assert.True(t, member.CanHandle(product.Sandwich))
	})
}

func TestStaff_Validate(t *testing.T) {
	t.Run("should reject nil staff", func(t *testing.T) {
		var member *staff.Staff

		err := member.Validate()

		require.Error(t, err)
		assert.Equal(t, staff.ErrStaffIsNotConstructed, err)
	})

	t.Run("should reject zero value staff", func(t *testing.T) {
		err := (&staff.Staff{}).Validate()

		require.Error(t, err)
	})
}
