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

// vendorProfileRepository implements the domain's VendorProfileRepository interface using GORM.
type vendorProfileRepository struct {
	db *gorm.DB
}

// NewVendorProfileRepository is the constructor for vendorProfileRepository.
func NewVendorProfileRepository(db *gorm.DB) repository.VendorProfileRepository {
	return &vendorProfileRepository{db: db}
}

// Create persists a new vendor profile.
func (repo *vendorProfileRepository) Create(ctx context.Context, profile *entity.VendorProfile) error {
	profileM := fromVendorProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewConstraintViolation(extractConstraintName(err, "vendor_profiles_user_id_key"), err)
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewConstraintViolation(extractConstraintName(err, "vendor_profiles_user_id_fkey"), err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByID retrieves a vendor profile by its unique ID.
func (repo *vendorProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VendorProfile, error) {
	var profileM model.VendorProfileModel
	if err := repo.db.WithContext(ctx).First(&profileM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor profile by id")
	}

	return toVendorProfileDomain(&profileM), nil
}

// FindByUserID retrieves the vendor profile owned by the given user.
func (repo *vendorProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error) {
	var profileM model.VendorProfileModel
	if err := repo.db.WithContext(ctx).First(&profileM, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor profile by user id")
	}

	return toVendorProfileDomain(&profileM), nil
}

// FindAll retrieves every vendor profile ordered by creation time.
func (repo *vendorProfileRepository) FindAll(ctx context.Context) ([]*entity.VendorProfile, error) {
	var models []model.VendorProfileModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vendor profiles")
	}

	profiles := make([]*entity.VendorProfile, 0, len(models))
	for i := range models {
		profiles = append(profiles, toVendorProfileDomain(&models[i]))
	}

	return profiles, nil
}

// Update applies mutable fields and returns the number of rows touched.
func (repo *vendorProfileRepository) Update(ctx context.Context, profile *entity.VendorProfile) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"business_name": profile.BusinessName,
			"description":   profile.Description,
			"phone":         profile.Phone,
			"website":       profile.Website,
		})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update vendor profile")
	}

	return result.RowsAffected, nil
}

// Delete removes a vendor profile row and returns the number of rows removed.
func (repo *vendorProfileRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Delete(&model.VendorProfileModel{}, "id = ?", id)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete vendor profile")
	}

	return result.RowsAffected, nil
}

// toVendorProfileDomain converts a GORM VendorProfileModel to a domain entity.
func toVendorProfileDomain(data *model.VendorProfileModel) *entity.VendorProfile {
	if data == nil {
		return nil
	}

	return &entity.VendorProfile{
		ID:           data.ID,
		UserID:       data.UserID,
		BusinessName: data.BusinessName,
		Description:  data.Description,
		Phone:        data.Phone,
		Website:      data.Website,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromVendorProfileDomain converts a domain entity to a GORM VendorProfileModel.
func fromVendorProfileDomain(data *entity.VendorProfile) *model.VendorProfileModel {
	if data == nil {
		return nil
	}

	return &model.VendorProfileModel{
		ID:           data.ID,
		UserID:       data.UserID,
		BusinessName: data.BusinessName,
		Description:  data.Description,
		Phone:        data.Phone,
		Website:      data.Website,
	}
}
