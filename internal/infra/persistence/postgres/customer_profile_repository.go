package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// customerProfileRepository implements the domain's CustomerProfileRepository interface using GORM.
type customerProfileRepository struct {
	db *gorm.DB
}

// NewCustomerProfileRepository is the constructor for customerProfileRepository.
func NewCustomerProfileRepository(db *gorm.DB) repository.CustomerProfileRepository {
	return &customerProfileRepository{db: db}
}

// Create persists a new customer profile. A duplicate email surfaces as a
// constraint violation naming the email constraint.
func (repo *customerProfileRepository) Create(ctx context.Context, profile *entity.CustomerProfile) error {
	profileM := fromCustomerProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewConstraintViolation(extractConstraintName(err, "customer_profiles_email_key"), err)
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewConstraintViolation(extractConstraintName(err, "customer_profiles_user_id_fkey"), err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByID retrieves a customer profile by its unique ID.
func (repo *customerProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CustomerProfile, error) {
	var profileM model.CustomerProfileModel
	if err := repo.db.WithContext(ctx).First(&profileM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer profile by id")
	}

	return toCustomerProfileDomain(&profileM), nil
}

// FindByUserID retrieves the customer profile owned by the given user.
func (repo *customerProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.CustomerProfile, error) {
	var profileM model.CustomerProfileModel
	if err := repo.db.WithContext(ctx).First(&profileM, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer profile by user id")
	}

	return toCustomerProfileDomain(&profileM), nil
}

// FindAll retrieves every customer profile ordered by creation time.
func (repo *customerProfileRepository) FindAll(ctx context.Context) ([]*entity.CustomerProfile, error) {
	var models []model.CustomerProfileModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customer profiles")
	}

	profiles := make([]*entity.CustomerProfile, 0, len(models))
	for i := range models {
		profiles = append(profiles, toCustomerProfileDomain(&models[i]))
	}

	return profiles, nil
}

// Update applies mutable fields and returns the number of rows touched.
func (repo *customerProfileRepository) Update(ctx context.Context, profile *entity.CustomerProfile) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"first_name":    profile.FirstName,
			"last_name":     profile.LastName,
			"email":         profile.Email,
			"date_of_birth": profile.DateOfBirth,
			"preferences":   datatypes.JSON(profile.Preferences),
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return 0, domainerrors.NewConstraintViolation(extractConstraintName(result.Error, "customer_profiles_email_key"), result.Error)
		}

		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer profile")
	}

	return result.RowsAffected, nil
}

// Delete removes a customer profile row and returns the number of rows removed.
func (repo *customerProfileRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Delete(&model.CustomerProfileModel{}, "id = ?", id)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete customer profile")
	}

	return result.RowsAffected, nil
}

// toCustomerProfileDomain converts a GORM CustomerProfileModel to a domain entity.
func toCustomerProfileDomain(data *model.CustomerProfileModel) *entity.CustomerProfile {
	if data == nil {
		return nil
	}

	return &entity.CustomerProfile{
		ID:          data.ID,
		UserID:      data.UserID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		DateOfBirth: data.DateOfBirth,
		Preferences: []byte(data.Preferences),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromCustomerProfileDomain converts a domain entity to a GORM CustomerProfileModel.
func fromCustomerProfileDomain(data *entity.CustomerProfile) *model.CustomerProfileModel {
	if data == nil {
		return nil
	}

	return &model.CustomerProfileModel{
		ID:          data.ID,
		UserID:      data.UserID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		DateOfBirth: data.DateOfBirth,
		Preferences: datatypes.JSON(data.Preferences),
	}
}
