package postgres

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// operatingHoursRepository implements the domain's OperatingHoursRepository interface using GORM.
type operatingHoursRepository struct {
	db *gorm.DB
}

// NewOperatingHoursRepository is the constructor for operatingHoursRepository.
func NewOperatingHoursRepository(db *gorm.DB) repository.OperatingHoursRepository {
	return &operatingHoursRepository{db: db}
}

// Create persists a new operating hours row for a vendor.
func (repo *operatingHoursRepository) Create(ctx context.Context, hours *entity.OperatingHours) error {
	hoursM := fromOperatingHoursDomain(hours)

	if err := repo.db.WithContext(ctx).Create(hoursM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewConstraintViolation(extractConstraintName(err, "operating_hours_vendor_profile_id_fkey"), err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create operating hours")
	}

	hours.CreatedAt = hoursM.CreatedAt
	hours.UpdatedAt = hoursM.UpdatedAt

	return nil
}

// FindByVendorProfile retrieves all operating hours of a vendor ordered by weekday.
func (repo *operatingHoursRepository) FindByVendorProfile(ctx context.Context, vendorProfileID uuid.UUID) ([]*entity.OperatingHours, error) {
	var models []model.OperatingHoursModel
	if err := repo.db.WithContext(ctx).
		Where("vendor_profile_id = ?", vendorProfileID).
		Order("day_of_week").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list operating hours by vendor profile")
	}

	hours := make([]*entity.OperatingHours, 0, len(models))
	for i := range models {
		hours = append(hours, toOperatingHoursDomain(&models[i]))
	}

	return hours, nil
}

// Update applies mutable fields and returns the number of rows touched.
func (repo *operatingHoursRepository) Update(ctx context.Context, hours *entity.OperatingHours) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OperatingHoursModel{}).
		Where("id = ?", hours.ID).
		Updates(map[string]any{
			"day_of_week": int(hours.DayOfWeek),
			"opens_at":    hours.OpensAt,
			"closes_at":   hours.ClosesAt,
		})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update operating hours")
	}

	return result.RowsAffected, nil
}

// Delete removes an operating hours row and returns the number of rows removed.
func (repo *operatingHoursRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Delete(&model.OperatingHoursModel{}, "id = ?", id)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete operating hours")
	}

	return result.RowsAffected, nil
}

// DeleteByVendorProfile removes every operating hours row of a vendor.
func (repo *operatingHoursRepository) DeleteByVendorProfile(ctx context.Context, vendorProfileID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Delete(&model.OperatingHoursModel{}, "vendor_profile_id = ?", vendorProfileID)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete operating hours by vendor profile")
	}

	return result.RowsAffected, nil
}

// toOperatingHoursDomain converts a GORM OperatingHoursModel to a domain entity.
func toOperatingHoursDomain(data *model.OperatingHoursModel) *entity.OperatingHours {
	if data == nil {
		return nil
	}

	return &entity.OperatingHours{
		ID:              data.ID,
		VendorProfileID: data.VendorProfileID,
		DayOfWeek:       time.Weekday(data.DayOfWeek),
		OpensAt:         data.OpensAt,
		ClosesAt:        data.ClosesAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromOperatingHoursDomain converts a domain entity to a GORM OperatingHoursModel.
func fromOperatingHoursDomain(data *entity.OperatingHours) *model.OperatingHoursModel {
	if data == nil {
		return nil
	}

	return &model.OperatingHoursModel{
		ID:              data.ID,
		VendorProfileID: data.VendorProfileID,
		DayOfWeek:       int(data.DayOfWeek),
		OpensAt:         data.OpensAt,
		ClosesAt:        data.ClosesAt,
	}
}
