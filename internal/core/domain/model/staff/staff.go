package staff

import (
	"errors"
	"slices"

	"dispatch/internal/core/domain/model/product"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for staff operations.
var (
	// ErrIDIsRequired is returned when attempting to create a staff member without an id.
	ErrIDIsRequired = errs.NewValueIsRequiredError("id")
	// ErrNameIsRequired is returned when attempting to create a staff member without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrSkillsAreRequired is returned when attempting to create a staff member with no skills.
	ErrSkillsAreRequired = errs.NewValueIsRequiredError("skills")
	// ErrStaffIsNotConstructed is returned when using an improperly initialized Staff.
	ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff constructor")
)

// Staff represents a staff member in the dispatch system. It is an aggregate
// root owning the member's identity, skill set, and login state.
//
// Staff follows these invariants:
//   - Must have a non-empty unique id and a name
//   - Must have at least one skill; duplicate skills are collapsed
//   - Login state only changes through Login and Logout
//
// A staff member's skills never change after construction in the current
// model; what changes at runtime is the login flag, and the capability index
// is rebuilt from a registry snapshot after every such change.
type Staff struct {
	// id is the unique external identifier, e.g. "S001"
	id string
	// name is the human-readable staff name
	name string
	// skills lists the product categories the member can prepare, in declaration order
	skills []product.Category
	// loggedIn reports whether the member currently participates in dispatch
	loggedIn bool

	guard guard.ConstructorGuard
}

// NewStaff creates a new Staff member with the given identity and skills.
// The member starts logged out. This is the only way to create a valid
// Staff instance for a fresh record.
func NewStaff(id string, name string, skills []product.Category) (*Staff, error) {
	s := &Staff{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setSkills(skills),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStaff reconstructs a Staff aggregate from persistent storage,
// including its login state. The restored member behaves identically to one
// created through normal domain operations.
func RestoreStaff(id string, name string, skills []product.Category, loggedIn bool) (*Staff, error) {
	s, err := NewStaff(id, name, skills)
	if err != nil {
		return nil, err
	}

	s.loggedIn = loggedIn
	return s, nil
}

// Validate ensures the Staff instance was properly constructed through NewStaff.
func (s *Staff) Validate() error {
	if s == nil {
		return ErrStaffIsNotConstructed
	}
	return s.guard.Validate(ErrStaffIsNotConstructed)
}

// IsEqual compares two staff members by their unique identifiers.
func (s *Staff) IsEqual(other *Staff) bool {
	return other != nil && s.id == other.id
}

// ID returns the staff member's unique identifier.
func (s *Staff) ID() string {
	return s.id
}

// Name returns the staff member's name.
func (s *Staff) Name() string {
	return s.name
}

// Skills returns a copy of the member's skill set in declaration order.
func (s *Staff) Skills() []product.Category {
	return slices.Clone(s.skills)
}

// IsLoggedIn reports whether the member currently participates in dispatch.
func (s *Staff) IsLoggedIn() bool {
	return s.loggedIn
}

// Login marks the member as logged in. Logging in an already logged-in
// member is a no-op. Callers must rebuild the capability index afterwards.
func (s *Staff) Login() {
	s.loggedIn = true
}

// Logout marks the member as logged out. Logging out a member who is not
// logged in is a no-op, not an error. Callers must rebuild the capability
// index afterwards.
func (s *Staff) Logout() {
	s.loggedIn = false
}

// CanHandle reports whether the member's skill set contains the category.
// It is a pure predicate over the skill set; login state is not consulted.
func (s *Staff) CanHandle(category product.Category) bool {
	return slices.Contains(s.skills, category)
}

func (s *Staff) setID(id string) error {
	if id == "" {
		return ErrIDIsRequired
	}
	s.id = id
	return nil
}

func (s *Staff) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *Staff) setSkills(skills []product.Category) error {
	if len(skills) == 0 {
		return ErrSkillsAreRequired
	}

	deduped := make([]product.Category, 0, len(skills))
	for _, skill := range skills {
		if err := skill.Validate(); err != nil {
			return err
		}
		if !slices.Contains(deduped, skill) {
			deduped = append(deduped, skill)
		}
	}

	s.skills = deduped
	return nil
}
