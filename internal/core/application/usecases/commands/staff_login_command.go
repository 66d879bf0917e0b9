package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrStaffLoginCommandIsNotConstructed = errors.New(
		"StaffLoginCommand must be created via NewStaffLoginCommand constructor",
	)
	ErrStaffIDIsRequired = errors.New("staff id is required")
)

// StaffLoginCommand represents a request to mark a staff member as logged in
// and make their skills available to the dispatcher.
//
// Example:
//
//	cmd, err := NewStaffLoginCommand("S001")
//	if err != nil {
//	    return fmt.Errorf("invalid login request: %w", err)
//	}
//
//	handler := NewStaffLoginCommandHandler(uowFactory, indexHolder)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to log staff in: %w", err)
//	}
type StaffLoginCommand struct { //nolint:recvcheck //using for validation
	staffID string

	guard guard.ConstructorGuard
}

// NewStaffLoginCommand creates a command to log a staff member in.
// Validates that the staff id is not empty.
func NewStaffLoginCommand(staffID string) (StaffLoginCommand, error) {
	command := StaffLoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setStaffID(staffID); err != nil {
		return StaffLoginCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStaffLoginCommandIsNotConstructed if validation fails.
func (c StaffLoginCommand) Validate() error {
	return c.guard.Validate(ErrStaffLoginCommandIsNotConstructed)
}

// StaffID returns the identifier of the staff member logging in.
func (c StaffLoginCommand) StaffID() string {
	return c.staffID
}

func (c *StaffLoginCommand) setStaffID(staffID string) error {
	if staffID == "" {
		return ErrStaffIDIsRequired
	}

	c.staffID = staffID
	return nil
}
