package staffrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/staff"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStaffRepository implements StaffRepository using GORM.
type GormStaffRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormStaffRepository creates a new GORM staff repository.
func NewGormStaffRepository(db *gorm.DB, tracker aggregateTracker) *GormStaffRepository {
	return &GormStaffRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new staff member to the database.
func (r *GormStaffRepository) Add(ctx context.Context, member *staff.Staff) error {
	if err := member.Validate(); err != nil {
		return err
	}

	dto := fromDomain(member)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(member.ID(), member)
	return nil
}

// Update saves an existing staff member to the database.
func (r *GormStaffRepository) Update(ctx context.Context, member *staff.Staff) error {
	if err := member.Validate(); err != nil {
		return err
	}

	dto := fromDomain(member)
	result := r.db.WithContext(ctx).
		Model(&StaffDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "skills", "logged_in").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(member.ID(), member)
	return nil
}

// Get retrieves a staff member by ID.
func (r *GormStaffRepository) Get(ctx context.Context, id string) (*staff.Staff, error) {
	var dto StaffDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the full staff registry in registration order.
func (r *GormStaffRepository) GetAll(ctx context.Context) ([]*staff.Staff, error) {
	var dtos []StaffDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	members := make([]*staff.Staff, 0, len(dtos))
	for _, dto := range dtos {
		member, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, nil
}
