package impl

import (
	"context"
	"log/slog"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// vendorService implements the VendorUsecase interface.
type vendorService struct {
	txManager  repository.TransactionManager
	vendorRepo repository.VendorProfileRepository
	composer   *ViewComposer
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// NewVendorService is the constructor for vendorService.
func NewVendorService(
	txManager repository.TransactionManager,
	vendorRepo repository.VendorProfileRepository,
	composer *ViewComposer,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.VendorUsecase {
	return &vendorService{
		txManager:  txManager,
		vendorRepo: vendorRepo,
		composer:   composer,
		publisher:  publisher,
		logger:     logger,
	}
}

// CreateProfile attaches a vendor profile to a vendor-typed user.
func (srv *vendorService) CreateProfile(ctx context.Context, input usecase.CreateVendorProfileInput) (*usecase.VendorProfileView, error) {
	srv.logger.Info("Creating vendor profile", "userID", input.UserID)

	if input.BusinessName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("business name is required")
	}

	profile := &entity.VendorProfile{
		ID:           uuid.New(),
		UserID:       input.UserID,
		BusinessName: input.BusinessName,
		Description:  input.Description,
		Phone:        input.Phone,
		Website:      input.Website,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage(input.UserID.String())
			}

			return errors.Wrap(err, "failed to find user")
		}

		if !user.CanAttach(entity.VendorOwned(profile)) {
			return domainerrors.ErrProfileTypeMismatch.WrapMessage("user is not vendor-typed")
		}

		if err := repoFactory.VendorProfileRepo().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create vendor profile")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, service.EventProfileCreated, profile)

	return srv.composer.VendorView(ctx, profile, repository.AllVendorRelations())
}

// GetProfile retrieves a vendor profile composed with the requested relations.
func (srv *vendorService) GetProfile(ctx context.Context, profileID uuid.UUID, relations repository.RelationSet) (*usecase.VendorProfileView, error) {
	srv.logger.Debug("Getting vendor profile", "profileID", profileID)

	profile, err := srv.vendorRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage(profileID.String())
		}

		return nil, errors.Wrap(err, "failed to find vendor profile")
	}

	return srv.composer.VendorView(ctx, profile, relations)
}

// GetProfileByUserID retrieves the vendor profile owned by a user.
func (srv *vendorService) GetProfileByUserID(ctx context.Context, userID uuid.UUID, relations repository.RelationSet) (*usecase.VendorProfileView, error) {
	srv.logger.Debug("Getting vendor profile by user", "userID", userID)

	profile, err := srv.vendorRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("no vendor profile for user " + userID.String())
		}

		return nil, errors.Wrap(err, "failed to find vendor profile by user")
	}

	return srv.composer.VendorView(ctx, profile, relations)
}

// ListProfiles retrieves all vendor profiles with every relation composed.
func (srv *vendorService) ListProfiles(ctx context.Context) ([]usecase.VendorProfileView, error) {
	srv.logger.Debug("Listing vendor profiles")

	profiles, err := srv.vendorRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendor profiles")
	}

	views := make([]usecase.VendorProfileView, 0, len(profiles))
	for i := range profiles {
		view, err := srv.composer.VendorView(ctx, profiles[i], repository.AllVendorRelations())
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}

	return views, nil
}

// UpdateProfile applies a partial update to a vendor profile.
func (srv *vendorService) UpdateProfile(ctx context.Context, profileID uuid.UUID, input *usecase.UpdateVendorProfileInput) (*usecase.VendorProfileView, error) {
	srv.logger.Info("Updating vendor profile", "profileID", profileID)

	if input == nil || (input.BusinessName == nil && input.Description == nil && input.Phone == nil && input.Website == nil) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("update carries no fields")
	}

	var updated *entity.VendorProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		vendorRepo := repoFactory.VendorProfileRepo()

		profile, err := vendorRepo.FindByID(ctx, profileID)
		if err != nil {
			if errors.Is(err, repository.ErrVendorProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage(profileID.String())
			}

			return errors.Wrap(err, "failed to find vendor profile")
		}

		if input.BusinessName != nil {
			profile.BusinessName = *input.BusinessName
		}
		if input.Description != nil {
			profile.Description = *input.Description
		}
		if input.Phone != nil {
			profile.Phone = *input.Phone
		}
		if input.Website != nil {
			profile.Website = *input.Website
		}

		if _, err := vendorRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update vendor profile")
		}
		updated = profile

		return nil
	})
	if err != nil {
		return nil, err
	}

	return srv.composer.VendorView(ctx, updated, repository.AllVendorRelations())
}

// DeleteProfile removes a vendor profile and its dependents in one
// transaction. The owning user account deliberately survives.
func (srv *vendorService) DeleteProfile(ctx context.Context, profileID uuid.UUID) error {
	srv.logger.Info("Deleting vendor profile", "profileID", profileID)

	var deleted *entity.VendorProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := repoFactory.VendorProfileRepo().FindByID(ctx, profileID)
		if err != nil {
			if errors.Is(err, repository.ErrVendorProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage(profileID.String())
			}

			return errors.Wrap(err, "failed to find vendor profile")
		}

		if err := deleteVendorDependents(ctx, repoFactory, profile.ID, true); err != nil {
			return err
		}
		deleted = profile

		return nil
	})
	if err != nil {
		return err
	}

	srv.logger.Warn("vendor profile deleted, user account kept", "profileID", profileID, "userID", deleted.UserID)
	srv.publishEvent(ctx, service.EventProfileDeleted, deleted)

	return nil
}

// AddService adds a service offering to a vendor profile.
func (srv *vendorService) AddService(ctx context.Context, profileID uuid.UUID, input usecase.AddServiceInput) (*usecase.VendorProfileView, error) {
	srv.logger.Info("Adding service", "profileID", profileID, "name", input.Name)

	offering := &entity.Service{
		ID:              uuid.New(),
		VendorProfileID: profileID,
		Name:            input.Name,
		Description:     input.Description,
		Price:           input.Price,
	}
	if err := offering.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return srv.addDependent(ctx, profileID, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ServiceRepo().Create(ctx, offering)
	})
}

// AddOperatingHours adds an operating hours entry to a vendor profile.
func (srv *vendorService) AddOperatingHours(ctx context.Context, profileID uuid.UUID, input usecase.AddOperatingHoursInput) (*usecase.VendorProfileView, error) {
	srv.logger.Info("Adding operating hours", "profileID", profileID, "dayOfWeek", input.DayOfWeek)

	hours := &entity.OperatingHours{
		ID:              uuid.New(),
		VendorProfileID: profileID,
		DayOfWeek:       time.Weekday(input.DayOfWeek),
		OpensAt:         input.OpensAt,
		ClosesAt:        input.ClosesAt,
	}
	if err := hours.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return srv.addDependent(ctx, profileID, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.OperatingHoursRepo().Create(ctx, hours)
	})
}

// AddBusinessLocation adds a geolocated business location to a vendor profile.
func (srv *vendorService) AddBusinessLocation(ctx context.Context, profileID uuid.UUID, input usecase.AddBusinessLocationInput) (*usecase.VendorProfileView, error) {
	srv.logger.Info("Adding business location", "profileID", profileID, "label", input.Label)

	location := &entity.BusinessLocation{
		ID:              uuid.New(),
		VendorProfileID: profileID,
		Label:           input.Label,
		FullAddress:     input.FullAddress,
		Geolocation: entity.GeoPoint{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
		},
	}
	if err := location.Geolocation.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return srv.addDependent(ctx, profileID, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.BusinessLocationRepo().Create(ctx, location)
	})
}

// AddSocialMedia adds a social media link to a vendor profile.
func (srv *vendorService) AddSocialMedia(ctx context.Context, profileID uuid.UUID, input usecase.AddSocialMediaInput) (*usecase.VendorProfileView, error) {
	srv.logger.Info("Adding social media link", "profileID", profileID, "platform", input.Platform)

	if input.Platform == "" || input.URL == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("platform and url are required")
	}

	link := &entity.SocialMedia{
		ID:              uuid.New(),
		VendorProfileID: profileID,
		Platform:        input.Platform,
		URL:             input.URL,
	}

	return srv.addDependent(ctx, profileID, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.SocialMediaRepo().Create(ctx, link)
	})
}

// addDependent checks the profile exists, runs the insert in a transaction
// and returns the freshly composed view.
func (srv *vendorService) addDependent(ctx context.Context, profileID uuid.UUID, insert func(repository.RepositoryFactory) error) (*usecase.VendorProfileView, error) {
	var profile *entity.VendorProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.VendorProfileRepo().FindByID(ctx, profileID)
		if err != nil {
			if errors.Is(err, repository.ErrVendorProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage(profileID.String())
			}

			return errors.Wrap(err, "failed to find vendor profile")
		}
		profile = found

		return insert(repoFactory)
	})
	if err != nil {
		return nil, err
	}

	return srv.composer.VendorView(ctx, profile, repository.AllVendorRelations())
}

func (srv *vendorService) publishEvent(ctx context.Context, eventType string, profile *entity.VendorProfile) {
	event := &service.ProfileEvent{
		EventType:  eventType,
		UserID:     profile.UserID.String(),
		ProfileID:  profile.ID.String(),
		UserType:   entity.UserTypeVendor.String(),
		OccurredAt: time.Now().UTC(),
	}
	if err := srv.publisher.PublishProfileEvent(ctx, event); err != nil {
		srv.logger.Warn("failed to publish lifecycle event",
			"eventType", eventType, "profileID", profile.ID, "error", err)
	}
}
