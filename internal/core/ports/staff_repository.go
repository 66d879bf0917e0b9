// Package ports defines repository and gateway interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/staff"
)

// StaffRepository defines the persistence contract for staff aggregates.
// Provides methods for storing, retrieving, and listing staff members with
// their skill set and login state.
type StaffRepository interface {
	// Add persists a new staff aggregate to storage.
	// The member must be valid and not already exist in the repository.
	Add(ctx context.Context, member *staff.Staff) error

	// Update persists changes to an existing staff aggregate.
	// The member must exist in the repository and be valid.
	Update(ctx context.Context, member *staff.Staff) error

	// Get retrieves a staff aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such member exists.
	Get(ctx context.Context, id string) (*staff.Staff, error)

	// GetAll retrieves the full staff registry in registration order.
	// The capability index is rebuilt from this snapshot, so ordering here
	// determines staff ordering within each index category.
	GetAll(ctx context.Context) ([]*staff.Staff, error)
}
