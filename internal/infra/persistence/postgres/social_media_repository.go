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

// socialMediaRepository implements the domain's SocialMediaRepository interface using GORM.
type socialMediaRepository struct {
	db *gorm.DB
}

// NewSocialMediaRepository is the constructor for socialMediaRepository.
func NewSocialMediaRepository(db *gorm.DB) repository.SocialMediaRepository {
	return &socialMediaRepository{db: db}
}

// Create persists a new social media link for a vendor.
func (repo *socialMediaRepository) Create(ctx context.Context, link *entity.SocialMedia) error {
	linkM := fromSocialMediaDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewConstraintViolation(extractConstraintName(err, "social_media_vendor_profile_id_fkey"), err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create social media link")
	}

	link.CreatedAt = linkM.CreatedAt
	link.UpdatedAt = linkM.UpdatedAt

	return nil
}

// FindByVendorProfile retrieves all links of a vendor ordered by creation time.
func (repo *socialMediaRepository) FindByVendorProfile(ctx context.Context, vendorProfileID uuid.UUID) ([]*entity.SocialMedia, error) {
	var models []model.SocialMediaModel
	if err := repo.db.WithContext(ctx).
		Where("vendor_profile_id = ?", vendorProfileID).
		Order("created_at").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list social media links by vendor profile")
	}

	links := make([]*entity.SocialMedia, 0, len(models))
	for i := range models {
		links = append(links, toSocialMediaDomain(&models[i]))
	}

	return links, nil
}

// Delete removes a link row and returns the number of rows removed.
func (repo *socialMediaRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Delete(&model.SocialMediaModel{}, "id = ?", id)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete social media link")
	}

	return result.RowsAffected, nil
}

// DeleteByVendorProfile removes every link of a vendor.
func (repo *socialMediaRepository) DeleteByVendorProfile(ctx context.Context, vendorProfileID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Delete(&model.SocialMediaModel{}, "vendor_profile_id = ?", vendorProfileID)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete social media links by vendor profile")
	}

	return result.RowsAffected, nil
}

// toSocialMediaDomain converts a GORM SocialMediaModel to a domain entity.
func toSocialMediaDomain(data *model.SocialMediaModel) *entity.SocialMedia {
	if data == nil {
		return nil
	}

	return &entity.SocialMedia{
		ID:              data.ID,
		VendorProfileID: data.VendorProfileID,
		Platform:        data.Platform,
		URL:             data.URL,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromSocialMediaDomain converts a domain entity to a GORM SocialMediaModel.
func fromSocialMediaDomain(data *entity.SocialMedia) *model.SocialMediaModel {
	if data == nil {
		return nil
	}

	return &model.SocialMediaModel{
		ID:              data.ID,
		VendorProfileID: data.VendorProfileID,
		Platform:        data.Platform,
		URL:             data.URL,
	}
}
