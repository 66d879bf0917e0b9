// Package staffrepo provides data transfer objects and mapping functions for staff persistence.
// This package implements the repository pattern for the staff domain aggregate, handling
// the conversion between domain entities and database representations.
package staffrepo

import (
	"dispatch/internal/core/domain/model/product"
	"dispatch/internal/core/domain/model/staff"

	"github.com/lib/pq"
)

// StaffDTO represents the database structure for persisting staff aggregates.
// Skills are stored as a text array of category names. Seq records
// registration order; the capability index relies on the registry snapshot
// coming back in that order.
type StaffDTO struct {
	ID       string         `gorm:"type:varchar(64);primaryKey"`
	Seq      int64          `gorm:"autoIncrement;uniqueIndex"`
	Name     string         `gorm:"type:varchar(255);not null"`
	Skills   pq.StringArray `gorm:"type:text[];not null"`
	LoggedIn bool           `gorm:"not null"`
}

// TableName specifies the database table name for staff entities.
// Overrides GORM's default naming convention to use "staff".
func (StaffDTO) TableName() string {
	return "staff"
}

// fromDomain converts a staff domain aggregate to its database representation.
func fromDomain(member *staff.Staff) StaffDTO {
	skills := make(pq.StringArray, 0, len(member.Skills()))
	for _, skill := range member.Skills() {
		skills = append(skills, skill.String())
	}

	return StaffDTO{
		ID:       member.ID(),
		Name:     member.Name(),
		Skills:   skills,
		LoggedIn: member.IsLoggedIn(),
	}
}

// toDomain converts a database DTO to a staff domain aggregate.
// Reconstructs the aggregate including its login state using RestoreStaff.
func toDomain(dto StaffDTO) (*staff.Staff, error) {
	skills := make([]product.Category, 0, len(dto.Skills))
	for _, name := range dto.Skills {
		skill, err := product.CategoryFromString(name)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}

	return staff.RestoreStaff(dto.ID, dto.Name, skills, dto.LoggedIn)
}
