package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// businessLocationRepository implements the domain's BusinessLocationRepository interface using GORM.
type businessLocationRepository struct {
	db *gorm.DB
}

// NewBusinessLocationRepository is the constructor for businessLocationRepository.
func NewBusinessLocationRepository(db *gorm.DB) repository.BusinessLocationRepository {
	return &businessLocationRepository{db: db}
}

// Create persists a new business location for a vendor.
func (repo *businessLocationRepository) Create(ctx context.Context, location *entity.BusinessLocation) error {
	locationM := fromBusinessLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewConstraintViolation(extractConstraintName(err, "business_locations_vendor_profile_id_fkey"), err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business location")
	}

	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindByID retrieves a business location by its unique ID.
func (repo *businessLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessLocation, error) {
	var locationM model.BusinessLocationModel
	if err := repo.db.WithContext(ctx).First(&locationM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find business location by id")
	}

	return toBusinessLocationDomain(&locationM), nil
}

// FindByIDs retrieves the locations with the given IDs, preserving the order
// of the input slice. Unknown IDs are skipped, not errors.
func (repo *businessLocationRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.BusinessLocation, error) {
	if len(ids) == 0 {
		return []*entity.BusinessLocation{}, nil
	}

	var models []model.BusinessLocationModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find business locations by ids")
	}

	byID := make(map[uuid.UUID]*model.BusinessLocationModel, len(models))
	for i := range models {
		byID[models[i].ID] = &models[i]
	}

	locations := make([]*entity.BusinessLocation, 0, len(ids))
	for _, id := range ids {
		if locationM, ok := byID[id]; ok {
			locations = append(locations, toBusinessLocationDomain(locationM))
		}
	}

	return locations, nil
}

// FindByVendorProfile retrieves all locations of a vendor ordered by creation time.
func (repo *businessLocationRepository) FindByVendorProfile(ctx context.Context, vendorProfileID uuid.UUID) ([]*entity.BusinessLocation, error) {
	var models []model.BusinessLocationModel
	if err := repo.db.WithContext(ctx).
		Where("vendor_profile_id = ?", vendorProfileID).
		Order("created_at").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list business locations by vendor profile")
	}

	locations := make([]*entity.BusinessLocation, 0, len(models))
	for i := range models {
		locations = append(locations, toBusinessLocationDomain(&models[i]))
	}

	return locations, nil
}

// FindAllGeolocated retrieves every location eligible for proximity search,
// in primary key order so scans over it stay stable between calls.
func (repo *businessLocationRepository) FindAllGeolocated(ctx context.Context) ([]*entity.BusinessLocation, error) {
	var models []model.BusinessLocationModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list geolocated business locations")
	}

	locations := make([]*entity.BusinessLocation, 0, len(models))
	for i := range models {
		locations = append(locations, toBusinessLocationDomain(&models[i]))
	}

	return locations, nil
}

// Update applies mutable fields and returns the number of rows touched.
func (repo *businessLocationRepository) Update(ctx context.Context, location *entity.BusinessLocation) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessLocationModel{}).
		Where("id = ?", location.ID).
		Updates(map[string]any{
			"label":        location.Label,
			"full_address": location.FullAddress,
			"latitude":     location.Geolocation.Latitude,
			"longitude":    location.Geolocation.Longitude,
		})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business location")
	}

	return result.RowsAffected, nil
}

// Delete removes a location row and returns the number of rows removed.
func (repo *businessLocationRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Delete(&model.BusinessLocationModel{}, "id = ?", id)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete business location")
	}

	return result.RowsAffected, nil
}

// DeleteByVendorProfile removes every location of a vendor.
func (repo *businessLocationRepository) DeleteByVendorProfile(ctx context.Context, vendorProfileID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Delete(&model.BusinessLocationModel{}, "vendor_profile_id = ?", vendorProfileID)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete business locations by vendor profile")
	}

	return result.RowsAffected, nil
}

// toBusinessLocationDomain converts a GORM BusinessLocationModel to a domain entity.
func toBusinessLocationDomain(data *model.BusinessLocationModel) *entity.BusinessLocation {
	if data == nil {
		return nil
	}

	return &entity.BusinessLocation{
		ID:              data.ID,
		VendorProfileID: data.VendorProfileID,
		Label:           data.Label,
		FullAddress:     data.FullAddress,
		Geolocation: entity.GeoPoint{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromBusinessLocationDomain converts a domain entity to a GORM BusinessLocationModel.
func fromBusinessLocationDomain(data *entity.BusinessLocation) *model.BusinessLocationModel {
	if data == nil {
		return nil
	}

	return &model.BusinessLocationModel{
		ID:              data.ID,
		VendorProfileID: data.VendorProfileID,
		Label:           data.Label,
		FullAddress:     data.FullAddress,
		Latitude:        data.Geolocation.Latitude,
		Longitude:       data.Geolocation.Longitude,
	}
}
