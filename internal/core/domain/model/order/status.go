package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Placed ──> InProgress ──> Complete ──┐
//	                              ^      │
//	                              └──────┘
//	                  (re-completion is an idempotent no-op)
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status when an order enters the queue.
	// Orders in this status wait for a dispatch pass to pick them up.
	Placed

	// InProgress indicates every item of the order is covered by an
	// available skilled staff member and preparation has started.
	InProgress

	// Complete indicates the order has been fulfilled.
	// This is the terminal state; re-completing is an idempotent no-op.
	Complete
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Placed:     "Placed",
		InProgress: "InProgress",
		Complete:   "Complete",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:     "Placed",
		InProgress: "InProgress",
		Complete:   "Complete",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Placed, InProgress, Complete.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString resolves a status name back to its Status value.
// Used when filtering orders by status from external input.
func StatusFromString(str string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == str {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", str),
	)
}

// ValidateStart checks if the status allows starting preparation without
// performing the transition. Only Placed orders can start.
func (s Status) ValidateStart() error {
	if s != Placed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveCompletedAt validates the consistency between order status
// and the completion timestamp.
//
// Business rules:
//   - Placed and InProgress orders must not carry a completion timestamp
//   - Complete orders must carry a completion timestamp
func (s Status) ValidateCanHaveCompletedAt(completedAt bool) error {
	if completedAt && s != Complete {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a completion timestamp", s.String()),
		)
	}

	if !completedAt && s == Complete {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no completion timestamp", s.String()),
		)
	}

	return nil
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Placed -> InProgress (successful dispatch assignment)
//
// Returns (0, error) for every other starting state. This method is used by
// Order.Start() to enforce state transitions.
func (s Status) Start() (Status, error) {
	if err := s.ValidateStart(); err != nil {
		return 0, err
	}

	return InProgress, nil
}

// Complete transitions the status to Complete.
//
// Valid transitions:
//   - InProgress -> Complete (order fulfilled)
//   - Complete -> Complete (idempotent re-completion)
//
// Invalid transitions:
//   - Placed -> Complete (must be dispatched first, no skipping)
//   - Unknown -> Complete (invalid initial state)
func (s Status) Complete() (Status, error) {
	if s != InProgress && s != Complete {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Complete, nil
}
