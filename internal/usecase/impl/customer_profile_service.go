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

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerProfileRepository
	composer     *ViewComposer
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(
	txManager repository.TransactionManager,
	customerRepo repository.CustomerProfileRepository,
	composer *ViewComposer,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CustomerUsecase {
	return &customerService{
		txManager:    txManager,
		customerRepo: customerRepo,
		composer:     composer,
		publisher:    publisher,
		logger:       logger,
	}
}

// CreateProfile attaches a customer profile to a customer-typed user.
func (srv *customerService) CreateProfile(ctx context.Context, input usecase.CreateCustomerProfileInput) (*usecase.CustomerProfileView, error) {
	srv.logger.Info("Creating customer profile", "userID", input.UserID)

	if input.FirstName == "" || input.LastName == "" || input.Email == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("first name, last name and email are required")
	}

	profile := &entity.CustomerProfile{
		ID:          uuid.New(),
		UserID:      input.UserID,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		DateOfBirth: input.DateOfBirth,
		Preferences: input.Preferences,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage(input.UserID.String())
			}

			return errors.Wrap(err, "failed to find user")
		}

		if !user.CanAttach(entity.CustomerOwned(profile)) {
			return domainerrors.ErrProfileTypeMismatch.WrapMessage("user is not customer-typed")
		}

		// A duplicate email surfaces here as a constraint violation naming
		// the unique index.
		if err := repoFactory.CustomerProfileRepo().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create customer profile")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, service.EventProfileCreated, profile)

	return srv.composer.CustomerView(ctx, profile, repository.AllCustomerRelations())
}

// GetProfile retrieves a customer profile composed with the requested relations.
func (srv *customerService) GetProfile(ctx context.Context, profileID uuid.UUID, relations repository.RelationSet) (*usecase.CustomerProfileView, error) {
	srv.logger.Debug("Getting customer profile", "profileID", profileID)

	profile, err := srv.customerRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage(profileID.String())
		}

		return nil, errors.Wrap(err, "failed to find customer profile")
	}

	return srv.composer.CustomerView(ctx, profile, relations)
}

// GetProfileByUserID retrieves the customer profile owned by a user.
func (srv *customerService) GetProfileByUserID(ctx context.Context, userID uuid.UUID, relations repository.RelationSet) (*usecase.CustomerProfileView, error) {
	srv.logger.Debug("Getting customer profile by user", "userID", userID)

	profile, err := srv.customerRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("no customer profile for user " + userID.String())
		}

		return nil, errors.Wrap(err, "failed to find customer profile by user")
	}

	return srv.composer.CustomerView(ctx, profile, relations)
}

// ListProfiles retrieves all customer profiles with every relation composed.
func (srv *customerService) ListProfiles(ctx context.Context) ([]usecase.CustomerProfileView, error) {
	srv.logger.Debug("Listing customer profiles")

	profiles, err := srv.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer profiles")
	}

	views := make([]usecase.CustomerProfileView, 0, len(profiles))
	for i := range profiles {
		view, err := srv.composer.CustomerView(ctx, profiles[i], repository.AllCustomerRelations())
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}

	return views, nil
}

// UpdateProfile applies a partial update to a customer profile.
func (srv *customerService) UpdateProfile(ctx context.Context, profileID uuid.UUID, input *usecase.UpdateCustomerProfileInput) (*usecase.CustomerProfileView, error) {
	srv.logger.Info("Updating customer profile", "profileID", profileID)

	if input == nil || (input.FirstName == nil && input.LastName == nil && input.Email == nil &&
		input.DateOfBirth == nil && input.Preferences == nil) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("update carries no fields")
	}

	var updated *entity.CustomerProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerProfileRepo()

		profile, err := customerRepo.FindByID(ctx, profileID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage(profileID.String())
			}

			return errors.Wrap(err, "failed to find customer profile")
		}

		if input.FirstName != nil {
			profile.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			profile.LastName = *input.LastName
		}
		if input.Email != nil {
			profile.Email = *input.Email
		}
		if input.DateOfBirth != nil {
			profile.DateOfBirth = input.DateOfBirth
		}
		if input.Preferences != nil {
			profile.Preferences = input.Preferences
		}

		if _, err := customerRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update customer profile")
		}
		updated = profile

		return nil
	})
	if err != nil {
		return nil, err
	}

	return srv.composer.CustomerView(ctx, updated, repository.AllCustomerRelations())
}

// DeleteProfile removes a customer profile and its search preference in one
// transaction. The owning user account deliberately survives.
func (srv *customerService) DeleteProfile(ctx context.Context, profileID uuid.UUID) error {
	srv.logger.Info("Deleting customer profile", "profileID", profileID)

	var deleted *entity.CustomerProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := repoFactory.CustomerProfileRepo().FindByID(ctx, profileID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage(profileID.String())
			}

			return errors.Wrap(err, "failed to find customer profile")
		}

		if err := deleteCustomerDependents(ctx, repoFactory, profile.ID, true); err != nil {
			return err
		}
		deleted = profile

		return nil
	})
	if err != nil {
		return err
	}

	srv.logger.Warn("customer profile deleted, user account kept", "profileID", profileID, "userID", deleted.UserID)
	srv.publishEvent(ctx, service.EventProfileDeleted, deleted)

	return nil
}

// UpsertSearchPreference creates or replaces the customer's saved search preference.
func (srv *customerService) UpsertSearchPreference(ctx context.Context, profileID uuid.UUID, input usecase.UpsertSearchPreferenceInput) (*usecase.CustomerProfileView, error) {
	srv.logger.Info("Upserting search preference", "profileID", profileID)

	if input.SearchRadius <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("search radius must be positive")
	}

	now := time.Now().UTC()
	pref := &entity.CustomerSearchPreference{
		ID:                  uuid.New(),
		CustomerProfileID:   profileID,
		SearchRadius:        input.SearchRadius,
		PreferredCategories: input.PreferredCategories,
		PreferredPriceRange: input.PreferredPriceRange,
		LastSearch:          &now,
	}
	pref.SetPreferredRating(input.PreferredRating)

	var profile *entity.CustomerProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CustomerProfileRepo().FindByID(ctx, profileID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage(profileID.String())
			}

			return errors.Wrap(err, "failed to find customer profile")
		}
		profile = found

		if err := repoFactory.SearchPreferenceRepo().Upsert(ctx, pref); err != nil {
			return errors.Wrap(err, "failed to upsert search preference")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return srv.composer.CustomerView(ctx, profile, repository.AllCustomerRelations())
}

func (srv *customerService) publishEvent(ctx context.Context, eventType string, profile *entity.CustomerProfile) {
	event := &service.ProfileEvent{
		EventType:  eventType,
		UserID:     profile.UserID.String(),
		ProfileID:  profile.ID.String(),
		UserType:   entity.UserTypeCustomer.String(),
		OccurredAt: time.Now().UTC(),
	}
	if err := srv.publisher.PublishProfileEvent(ctx, event); err != nil {
		srv.logger.Warn("failed to publish lifecycle event",
			"eventType", eventType, "profileID", profile.ID, "error", err)
	}
}
