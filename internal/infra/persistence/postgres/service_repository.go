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

// serviceRepository implements the domain's ServiceRepository interface using GORM.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

// Create persists a new service for a vendor.
func (repo *serviceRepository) Create(ctx context.Context, svc *entity.Service) error {
	svcM := fromServiceDomain(svc)

	if err := repo.db.WithContext(ctx).Create(svcM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewConstraintViolation(extractConstraintName(err, "services_vendor_profile_id_fkey"), err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	svc.CreatedAt = svcM.CreatedAt
	svc.UpdatedAt = svcM.UpdatedAt

	return nil
}

// FindByID retrieves a service by its unique ID.
func (repo *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var svcM model.ServiceModel
	if err := repo.db.WithContext(ctx).First(&svcM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by id")
	}

	return toServiceDomain(&svcM), nil
}

// FindByVendorProfile retrieves all services of a vendor ordered by creation time.
func (repo *serviceRepository) FindByVendorProfile(ctx context.Context, vendorProfileID uuid.UUID) ([]*entity.Service, error) {
	var models []model.ServiceModel
	if err := repo.db.WithContext(ctx).
		Where("vendor_profile_id = ?", vendorProfileID).
		Order("created_at").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services by vendor profile")
	}

	services := make([]*entity.Service, 0, len(models))
	for i := range models {
		services = append(services, toServiceDomain(&models[i]))
	}

	return services, nil
}

// Update applies mutable fields and returns the number of rows touched.
func (repo *serviceRepository) Update(ctx context.Context, svc *entity.Service) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ?", svc.ID).
		Updates(map[string]any{
			"name":        svc.Name,
			"description": svc.Description,
			"price":       svc.Price,
		})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update service")
	}

	return result.RowsAffected, nil
}

// Delete removes a service row and returns the number of rows removed.
func (repo *serviceRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Delete(&model.ServiceModel{}, "id = ?", id)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete service")
	}

	return result.RowsAffected, nil
}

// DeleteByVendorProfile removes every service of a vendor.
func (repo *serviceRepository) DeleteByVendorProfile(ctx context.Context, vendorProfileID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Delete(&model.ServiceModel{}, "vendor_profile_id = ?", vendorProfileID)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete services by vendor profile")
	}

	return result.RowsAffected, nil
}

// toServiceDomain converts a GORM ServiceModel to a domain entity.
func toServiceDomain(data *model.ServiceModel) *entity.Service {
	if data == nil {
		return nil
	}

	return &entity.Service{
		ID:              data.ID,
		VendorProfileID: data.VendorProfileID,
		Name:            data.Name,
		Description:     data.Description,
		Price:           data.Price,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromServiceDomain converts a domain entity to a GORM ServiceModel.
func fromServiceDomain(data *entity.Service) *model.ServiceModel {
	if data == nil {
		return nil
	}

	return &model.ServiceModel{
		ID:              data.ID,
		VendorProfileID: data.VendorProfileID,
		Name:            data.Name,
		Description:     data.Description,
		Price:           data.Price,
	}
}
