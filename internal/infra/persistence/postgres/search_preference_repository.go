package postgres

import (
	"context"
	"encoding/json"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// searchPreferenceRepository implements the domain's SearchPreferenceRepository interface using GORM.
type searchPreferenceRepository struct {
	db *gorm.DB
}

// NewSearchPreferenceRepository is the constructor for searchPreferenceRepository.
func NewSearchPreferenceRepository(db *gorm.DB) repository.SearchPreferenceRepository {
	return &searchPreferenceRepository{db: db}
}

// Upsert creates or replaces the preference row of a customer profile.
// The conflict target is the unique customer_profile_id index, so a second
// save for the same customer overwrites the first.
func (repo *searchPreferenceRepository) Upsert(ctx context.Context, pref *entity.CustomerSearchPreference) error {
	prefM, err := fromSearchPreferenceDomain(pref)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "customer_profile_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"search_radius",
				"preferred_categories",
				"preferred_price_range",
				"preferred_rating",
				"last_search",
				"updated_at",
			}),
		}).
		Create(prefM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewConstraintViolation(extractConstraintName(err, "customer_search_preferences_customer_profile_id_fkey"), err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert search preference")
	}

	pref.CreatedAt = prefM.CreatedAt
	pref.UpdatedAt = prefM.UpdatedAt

	return nil
}

// FindByCustomerProfile retrieves the preference of a customer.
func (repo *searchPreferenceRepository) FindByCustomerProfile(ctx context.Context, customerProfileID uuid.UUID) (*entity.CustomerSearchPreference, error) {
	var prefM model.SearchPreferenceModel
	if err := repo.db.WithContext(ctx).First(&prefM, "customer_profile_id = ?", customerProfileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSearchPreferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find search preference by customer profile")
	}

	return toSearchPreferenceDomain(&prefM)
}

// DeleteByCustomerProfile removes the preference row of a customer, if any.
func (repo *searchPreferenceRepository) DeleteByCustomerProfile(ctx context.Context, customerProfileID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Delete(&model.SearchPreferenceModel{}, "customer_profile_id = ?", customerProfileID)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete search preference by customer profile")
	}

	return result.RowsAffected, nil
}

// toSearchPreferenceDomain converts a GORM SearchPreferenceModel to a domain entity.
func toSearchPreferenceDomain(data *model.SearchPreferenceModel) (*entity.CustomerSearchPreference, error) {
	if data == nil {
		return nil, nil
	}

	var categories []string
	if len(data.PreferredCategories) > 0 {
		if err := json.Unmarshal(data.PreferredCategories, &categories); err != nil {
			return nil, errors.Wrap(err, "failed to decode preferred categories")
		}
	}

	return &entity.CustomerSearchPreference{
		ID:                  data.ID,
		CustomerProfileID:   data.CustomerProfileID,
		SearchRadius:        data.SearchRadius,
		PreferredCategories: categories,
		PreferredPriceRange: data.PreferredPriceRange,
		PreferredRating:     data.PreferredRating,
		LastSearch:          data.LastSearch,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}, nil
}

// fromSearchPreferenceDomain converts a domain entity to a GORM SearchPreferenceModel.
func fromSearchPreferenceDomain(data *entity.CustomerSearchPreference) (*model.SearchPreferenceModel, error) {
	if data == nil {
		return nil, nil
	}

	var categories datatypes.JSON
	if len(data.PreferredCategories) > 0 {
		encoded, err := json.Marshal(data.PreferredCategories)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode preferred categories")
		}
		categories = datatypes.JSON(encoded)
	}

	return &model.SearchPreferenceModel{
		ID:                  data.ID,
		CustomerProfileID:   data.CustomerProfileID,
		SearchRadius:        data.SearchRadius,
		PreferredCategories: categories,
		PreferredPriceRange: data.PreferredPriceRange,
		PreferredRating:     data.PreferredRating,
		LastSearch:          data.LastSearch,
	}, nil
}
