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

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	composer  *ViewComposer
	hasher    service.CredentialHasher
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	composer *ViewComposer,
	hasher service.CredentialHasher,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		userRepo:  userRepo,
		composer:  composer,
		hasher:    hasher,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateUser registers a new user account of the given type.
func (srv *userService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*usecase.UserView, error) {
	srv.logger.Info("Creating user", "username", input.Username, "userType", input.UserType)

	if input.Username == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username and password are required")
	}
	if !input.UserType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown user type: " + string(input.UserType))
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash credential")
	}

	user := &entity.User{
		ID:             uuid.New(),
		Username:       input.Username,
		UserType:       input.UserType,
		CredentialHash: hashed,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	return srv.composer.UserView(ctx, user, repository.RelationSet{repository.RelationProfile})
}

// GetUser retrieves a user with its typed profile and images.
func (srv *userService) GetUser(ctx context.Context, userID uuid.UUID) (*usecase.UserView, error) {
	srv.logger.Debug("Getting user", "userID", userID)

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage(userID.String())
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return srv.composer.UserView(ctx, user, repository.RelationSet{repository.RelationProfile})
}

// GetUserByUsername retrieves a user by its unique username.
func (srv *userService) GetUserByUsername(ctx context.Context, username string) (*usecase.UserView, error) {
	srv.logger.Debug("Getting user by username", "username", username)

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage(username)
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return srv.composer.UserView(ctx, user, repository.RelationSet{repository.RelationProfile})
}

// ListUsers retrieves all users with their typed profiles and images.
func (srv *userService) ListUsers(ctx context.Context) ([]usecase.UserView, error) {
	srv.logger.Debug("Listing users")

	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return srv.composeUserViews(ctx, users)
}

// ListUsersByType retrieves all users of the given type.
func (srv *userService) ListUsersByType(ctx context.Context, userType entity.UserType) ([]usecase.UserView, error) {
	srv.logger.Debug("Listing users by type", "userType", userType)

	if !userType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown user type: " + string(userType))
	}

	users, err := srv.userRepo.FindAllByType(ctx, userType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users by type")
	}

	return srv.composeUserViews(ctx, users)
}

func (srv *userService) composeUserViews(ctx context.Context, users []*entity.User) ([]usecase.UserView, error) {
	views := make([]usecase.UserView, 0, len(users))
	for i := range users {
		view, err := srv.composer.UserView(ctx, users[i], repository.RelationSet{repository.RelationProfile})
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}

	return views, nil
}

// UpdateUser applies a partial update to a user account.
func (srv *userService) UpdateUser(ctx context.Context, userID uuid.UUID, input *usecase.UpdateUserInput) (*usecase.UserView, error) {
	srv.logger.Info("Updating user", "userID", userID)

	if input == nil || input.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("update carries no fields")
	}

	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage(userID.String())
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.Username != nil {
			user.Username = *input.Username
		}
		if input.Password != nil {
			hashed, err := srv.hasher.Hash(*input.Password)
			if err != nil {
				return errors.Wrap(err, "failed to hash credential")
			}
			user.CredentialHash = hashed
		}

		affected, err := userRepo.Update(ctx, user)
		if err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		if affected == 0 {
			// The row existed above, so zero rows means no column changed.
			srv.logger.Debug("update changed no rows", "userID", userID)
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	return srv.composer.UserView(ctx, updated, repository.RelationSet{repository.RelationProfile})
}

// DeleteUser removes a user, its profile and every dependent record in a
// single transaction. Partial failure rolls the whole cascade back.
func (srv *userService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	srv.logger.Info("Deleting user", "userID", userID)

	var deleted *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage(userID.String())
			}

			return errors.Wrap(err, "failed to find user")
		}

		switch user.UserType {
		case entity.UserTypeVendor:
			if err := deleteVendorSubtreeByUser(ctx, repoFactory, user.ID); err != nil {
				return err
			}
		case entity.UserTypeCustomer:
			if err := deleteCustomerSubtreeByUser(ctx, repoFactory, user.ID); err != nil {
				return err
			}
		}

		if _, err := userRepo.Delete(ctx, user.ID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}
		deleted = user

		return nil
	})
	if err != nil {
		return err
	}

	srv.publishEvent(ctx, &service.ProfileEvent{
		EventType:  service.EventUserDeleted,
		UserID:     deleted.ID.String(),
		UserType:   deleted.UserType.String(),
		OccurredAt: time.Now().UTC(),
	})

	return nil
}

// publishEvent emits a lifecycle event after the transaction has committed.
// Publishing is best effort and never fails the calling operation.
func (srv *userService) publishEvent(ctx context.Context, event *service.ProfileEvent) {
	if err := srv.publisher.PublishProfileEvent(ctx, event); err != nil {
		srv.logger.Warn("failed to publish lifecycle event",
			"eventType", event.EventType, "userID", event.UserID, "error", err)
	}
}

// deleteVendorSubtreeByUser removes a vendor profile and all its dependents.
// A user without a profile yet has nothing to cascade.
func deleteVendorSubtreeByUser(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) error {
	profile, err := repoFactory.VendorProfileRepo().FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorProfileNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find vendor profile")
	}

	return deleteVendorDependents(ctx, repoFactory, profile.ID, true)
}

// deleteVendorDependents removes the dependent collections of a vendor
// profile, and the profile row itself when includeProfile is set.
func deleteVendorDependents(ctx context.Context, repoFactory repository.RepositoryFactory, profileID uuid.UUID, includeProfile bool) error {
	if _, err := repoFactory.ServiceRepo().DeleteByVendorProfile(ctx, profileID); err != nil {
		return errors.Wrap(err, "failed to delete services")
	}
	if _, err := repoFactory.OperatingHoursRepo().DeleteByVendorProfile(ctx, profileID); err != nil {
		return errors.Wrap(err, "failed to delete operating hours")
	}
	if _, err := repoFactory.BusinessLocationRepo().DeleteByVendorProfile(ctx, profileID); err != nil {
		return errors.Wrap(err, "failed to delete business locations")
	}
	if _, err := repoFactory.SocialMediaRepo().DeleteByVendorProfile(ctx, profileID); err != nil {
		return errors.Wrap(err, "failed to delete social media links")
	}

	if includeProfile {
		if _, err := repoFactory.VendorProfileRepo().Delete(ctx, profileID); err != nil {
			return errors.Wrap(err, "failed to delete vendor profile")
		}
	}

	return nil
}

// deleteCustomerSubtreeByUser removes a customer profile and its search preference.
func deleteCustomerSubtreeByUser(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) error {
	profile, err := repoFactory.CustomerProfileRepo().FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerProfileNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find customer profile")
	}

	return deleteCustomerDependents(ctx, repoFactory, profile.ID, true)
}

func deleteCustomerDependents(ctx context.Context, repoFactory repository.RepositoryFactory, profileID uuid.UUID, includeProfile bool) error {
	if _, err := repoFactory.SearchPreferenceRepo().DeleteByCustomerProfile(ctx, profileID); err != nil {
		return errors.Wrap(err, "failed to delete search preference")
	}

	if includeProfile {
		if _, err := repoFactory.CustomerProfileRepo().Delete(ctx, profileID); err != nil {
			return errors.Wrap(err, "failed to delete customer profile")
		}
	}

	return nil
}
