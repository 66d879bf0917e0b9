package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// StaffLogoutCommandHandler handles the business logic for staff logout.
// Marks the member as logged out and republishes the capability index from
// the updated registry snapshot. Logging out a member who is not logged in is
// a no-op, not an error.
type StaffLogoutCommandHandler struct {
	uowFactory  StaffUoWFactory
	indexHolder *services.CapabilityIndexHolder
}

// NewStaffLogoutCommandHandler creates a handler for staff logout operations.
// Requires a StaffUoWFactory for transactional persistence and the holder the
// rebuilt capability index is published to.
func NewStaffLogoutCommandHandler(
	uowFactory StaffUoWFactory,
	indexHolder *services.CapabilityIndexHolder,
) StaffLogoutCommandHandler {
	return StaffLogoutCommandHandler{
		uowFactory:  uowFactory,
		indexHolder: indexHolder,
	}
}

// Handle processes the staff logout command.
// Loads the member, marks them logged out, persists the change, and publishes
// a capability index rebuilt from the registry snapshot of the same
// transaction. The whole section runs inside the holder's Update, so the
// registry commit and the index publication form one serialized unit.
// Returns ErrStaffNotFound when the staff id does not exist.
func (h StaffLogoutCommandHandler) Handle(ctx context.Context, command StaffLogoutCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.indexHolder.Update(func() (services.CapabilityIndex, error) {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return services.CapabilityIndex{}, err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		staffRepo := uow.StaffRepository()

		member, err := staffRepo.Get(ctx, command.StaffID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return services.CapabilityIndex{}, ErrStaffNotFound
		}
		if err != nil {
			return services.CapabilityIndex{}, err
		}

		member.Logout()

		if err = staffRepo.Update(ctx, member); err != nil {
			return services.CapabilityIndex{}, err
		}

		registry, err := staffRepo.GetAll(ctx)
		if err != nil {
			return services.CapabilityIndex{}, err
		}

		if err = uow.Commit(ctx); err != nil {
			return services.CapabilityIndex{}, err
		}

		return services.BuildCapabilityIndex(registry), nil
	})
}
