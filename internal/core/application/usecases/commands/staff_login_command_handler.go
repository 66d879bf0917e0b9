package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

var ErrStaffNotFound = errors.New("staff member not found")

// StaffLoginCommandHandler handles the business logic for staff login.
// Marks the member as logged in and republishes the capability index from the
// updated registry snapshot, so dispatch and availability queries never
// observe a registry state without its matching index.
//
// Example:
//
//	handler := NewStaffLoginCommandHandler(uowFactory, indexHolder)
//	cmd, _ := NewStaffLoginCommand("S001")
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrStaffNotFound) {
//	    log.Printf("unknown staff id")
//	}
type StaffLoginCommandHandler struct {
	uowFactory  StaffUoWFactory
	indexHolder *services.CapabilityIndexHolder
}

// NewStaffLoginCommandHandler creates a handler for staff login operations.
// Requires a StaffUoWFactory for transactional persistence and the holder the
// rebuilt capability index is published to.
func NewStaffLoginCommandHandler(
	uowFactory StaffUoWFactory,
	indexHolder *services.CapabilityIndexHolder,
) StaffLoginCommandHandler {
	return StaffLoginCommandHandler{
		uowFactory:  uowFactory,
		indexHolder: indexHolder,
	}
}

// Handle processes the staff login command.
// Loads the member, marks them logged in, persists the change, and publishes
// a capability index rebuilt from the registry snapshot of the same
// transaction. The whole section runs inside the holder's Update, so the
// registry commit and the index publication form one serialized unit.
// Returns ErrStaffNotFound when the staff id does not exist; an unknown id
// never creates a record.
func (h StaffLoginCommandHandler) Handle(ctx context.Context, command StaffLoginCommand) error {
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

		member.Login()

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
