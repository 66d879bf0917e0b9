// Package order provides domain entities and business logic for order management
// in the dispatch system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, and lifecycle
//   - Item: A value object capturing a product snapshot at placement time
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid order number and a non-empty item sequence
//   - Order status follows a strict forward-only workflow:
//     Placed -> InProgress -> Complete
//   - Completion stamps completedAt; completing an already complete order is an
//     idempotent re-stamp, never an error
//   - completedAt is set if and only if the order is Complete
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
