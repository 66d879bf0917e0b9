package services_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"dispatch/internal/core/domain/model/product"
	"dispatch/internal/core/domain/model/staff"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStaffMember(t *testing.T, id string, name string, loggedIn bool, skills ...product.Category) *staff.Staff {
	t.Helper()
	member, err := staff.RestoreStaff(id, name, skills, loggedIn)
	require.NoError(t, err)
	return member
}

func sampleRoster(t *testing.T) []*staff.Staff {
	t.Helper()
	return []*staff.Staff{
		newStaffMember(t, "S001", "Chandler", true, product.VegPizza, product.Burger),
		newStaffMember(t, "S002", "Joey", true, product.VegPizza, product.NonVegPizza, product.Burger, product.Drinks),
		newStaffMember(t, "S003", "Rachel", false, product.NonVegPizza),
		newStaffMember(t, "S004", "Monica", true, product.Sandwich),
		newStaffMember(t, "S005", "Ross", false, product.Drinks),
	}
}

func TestBuildCapabilityIndex(t *testing.T) {
	t.Run("should include only logged in staff", func(t *testing.T) {
		index := services.BuildCapabilityIndex(sampleRoster(t))

		nonVeg := index.AvailableFor(product.NonVegPizza)
		require.Len(t, nonVeg, 1)
		assert.Equal(t, "S002", nonVeg[0].ID())
		assert.False(t, index.HasAvailable(product.Drinks) && len(index.AvailableFor(product.Drinks)) > 1)
	})

	t.Run("should preserve roster order within a category", func(t *testing.T) {
		index := services.BuildCapabilityIndex(sampleRoster(t))

		vegPizza := index.AvailableFor(product.VegPizza)
		require.Len(t, vegPizza, 2)
		assert.Equal(t, "S001", vegPizza[0].ID())
		assert.Equal(t, "S002", vegPizza[1].ID())
	})

	t.Run("should return empty slice for uncovered category", func(t *testing.T) {
		roster := []*staff.Staff{newStaffMember(t, "S004", "Monica", true, product.Sandwich)}

		index := services.BuildCapabilityIndex(roster)

		assert.NotNil(t, index.AvailableFor(product.Drinks))
		assert.Empty(t, index.AvailableFor(product.Drinks))
		assert.False(t, index.HasAvailable(product.Drinks))
	})

	t.Run("should handle empty roster", func(t *testing.T) {
		index := services.BuildCapabilityIndex(nil)

		for _, category := range product.AllCategories() {
			assert.NotNil(t, index.AvailableFor(category))
			assert.Empty(t, index.AvailableFor(category))
		}
	})

	t.Run("should skip nil roster entries", func(t *testing.T) {
		roster := []*staff.Staff{nil, newStaffMember(t, "S004", "Monica", true, product.Sandwich)}

		index := services.BuildCapabilityIndex(roster)

		assert.True(t, index.HasAvailable(product.Sandwich))
	})

	t.Run("should match roster recomputation for every login combination", func(t *testing.T) {
		// Exhaustively flip login states across the roster and check the
		// rebuilt index against a direct recomputation from the roster.
		base := sampleRoster(t)
		for mask := 0; mask < 1<<len(base); mask++ {
			roster := make([]*staff.Staff, 0, len(base))
			for i, member := range base {
				roster = append(roster, newStaffMember(t, member.ID(), member.Name(), mask&(1<<i) != 0, member.Skills()...))
			}

			index := services.BuildCapabilityIndex(roster)

			for _, category := range product.AllCategories() {
				expected := []string{}
				for _, member := range roster {
					if member.IsLoggedIn() && member.CanHandle(category) {
						expected = append(expected, member.ID())
					}
				}
				actual := []string{}
				for _, member := range index.AvailableFor(category) {
					assert.True(t, member.IsLoggedIn())
					actual = append(actual, member.ID())
				}
				assert.Equal(t, expected, actual, fmt.Sprintf("mask %05b category %s", mask, category))
			}
		}
	})
}

func TestCapabilityIndex_ZeroValue(t *testing.T) {
	t.Run("should behave as empty index", func(t *testing.T) {
		var index services.CapabilityIndex

		assert.Empty(t, index.AvailableFor(product.VegPizza))
		assert.False(t, index.HasAvailable(product.VegPizza))
	})
}

func TestCapabilityIndexHolder(t *testing.T) {
	t.Run("should start with empty index", func(t *testing.T) {
		holder := services.NewCapabilityIndexHolder()

		assert.False(t, holder.Snapshot().HasAvailable(product.VegPizza))
	})

	t.Run("should publish swapped index to readers", func(t *testing.T) {
		holder := services.NewCapabilityIndexHolder()
		roster := []*staff.Staff{newStaffMember(t, "S005", "Ross", true, product.Drinks)}

		holder.Swap(services.BuildCapabilityIndex(roster))

		snapshot := holder.Snapshot()
		assert.True(t, snapshot.HasAvailable(product.Drinks))
		assert.False(t, snapshot.HasAvailable(product.Burger))
	})

	t.Run("should let a snapshot outlive later swaps", func(t *testing.T) {
		holder := services.NewCapabilityIndexHolder()
		holder.Swap(services.BuildCapabilityIndex([]*staff.Staff{
			newStaffMember(t, "S005", "Ross", true, product.Drinks),
		}))

		snapshot := holder.Snapshot()
		holder.Swap(services.BuildCapabilityIndex(nil))

		assert.True(t, snapshot.HasAvailable(product.Drinks))
		assert.False(t, holder.Snapshot().HasAvailable(product.Drinks))
	})

	t.Run("should publish the index returned by a successful update", func(t *testing.T) {
		holder := services.NewCapabilityIndexHolder()
		roster := []*staff.Staff{newStaffMember(t, "S005", "Ross", true, product.Drinks)}

		err := holder.Update(func() (services.CapabilityIndex, error) {
			return services.BuildCapabilityIndex(roster), nil
		})

		require.NoError(t, err)
		assert.True(t, holder.Snapshot().HasAvailable(product.Drinks))
	})

	t.Run("should keep the current index when the update fails", func(t *testing.T) {
		holder := services.NewCapabilityIndexHolder()
		holder.Swap(services.BuildCapabilityIndex([]*staff.Staff{
			newStaffMember(t, "S005", "Ross", true, product.Drinks),
		}))

		err := holder.Update(func() (services.CapabilityIndex, error) {
			return services.CapabilityIndex{}, errors.New("registry unavailable")
		})

		require.Error(t, err)
		assert.True(t, holder.Snapshot().HasAvailable(product.Drinks))
	})

	t.Run("should publish the index of the last completed update", func(t *testing.T) {
		holder := services.NewCapabilityIndexHolder()

		rosters := [][]*staff.Staff{
			{newStaffMember(t, "S001", "Chandler", true, product.VegPizza, product.Burger)},
			{newStaffMember(t, "S003", "Rachel", true, product.NonVegPizza)},
			{newStaffMember(t, "S005", "Ross", true, product.Drinks)},
			{newStaffMember(t, "S004", "Monica", false, product.Sandwich)},
		}

		// Update serializes its callbacks, so whichever roster an update reads
		// last is exactly the roster the published index was built from.
		var lastPublished []*staff.Staff
		var wg sync.WaitGroup
		for _, roster := range rosters {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = holder.Update(func() (services.CapabilityIndex, error) {
					lastPublished = roster
					return services.BuildCapabilityIndex(roster), nil
				})
			}()
		}
		wg.Wait()

		expected := services.BuildCapabilityIndex(lastPublished)
		snapshot := holder.Snapshot()
		for _, category := range product.AllCategories() {
			assert.Equal(t, expected.HasAvailable(category), snapshot.HasAvailable(category),
				"category %s diverged from the last published roster", category)
		}
	})
}
