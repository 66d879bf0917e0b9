// Package staff provides the staff member aggregate of the dispatch system.
//
// A staff member owns an identity, a skill set over product categories, and a
// login flag. Only logged-in staff participate in the capability index, so
// every login state change must be followed by a full index rebuild.
//
// Key business rules:
//   - Staff must have a non-empty id, name, and at least one skill
//   - Login and logout are idempotent
//   - Skill checks are pure predicates with no state change
package staff
