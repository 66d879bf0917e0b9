package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrStaffLogoutCommandIsNotConstructed = errors.New(
	"StaffLogoutCommand must be created via NewStaffLogoutCommand constructor",
)

// StaffLogoutCommand represents a request to mark a staff member as logged
// out and withdraw their skills from the dispatcher.
type StaffLogoutCommand struct { //nolint:recvcheck //using for validation
	staffID string

	guard guard.ConstructorGuard
}

// NewStaffLogoutCommand creates a command to log a staff member out.
// Validates that the staff id is not empty.
func NewStaffLogoutCommand(staffID string) (StaffLogoutCommand, error) {
	command := StaffLogoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setStaffID(staffID); err != nil {
		return StaffLogoutCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStaffLogoutCommandIsNotConstructed if validation fails.
func (c StaffLogoutCommand) Validate() error {
	return c.guard.Validate(ErrStaffLogoutCommandIsNotConstructed)
}

// StaffID returns the identifier of the staff member logging out.
func (c StaffLogoutCommand) StaffID() string {
	return c.staffID
}

func (c *StaffLogoutCommand) setStaffID(staffID string) error {
	if staffID == "" {
		return ErrStaffIDIsRequired
	}

	c.staffID = staffID
	return nil
}
