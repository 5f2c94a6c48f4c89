package impl

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	*composerMocks

	txManager *mockRepo.TransactionManager
	factory   *mockRepo.RepositoryFactory
	hasher    *mockSvc.CredentialHasher
	publisher *mockSvc.EventPublisher
	service   usecase.UserUsecase
}

func createTestUserService(t *testing.T) *userServiceFixtures {
	cm := newComposerMocks(t)
	f := &userServiceFixtures{
		composerMocks: cm,
		txManager:     mockRepo.NewTransactionManager(t),
		factory:       mockRepo.NewRepositoryFactory(t),
		hasher:        mockSvc.NewCredentialHasher(t),
		publisher:     mockSvc.NewEventPublisher(t),
	}
	f.service = NewUserService(f.txManager, cm.userRepo, cm.build(), f.hasher, f.publisher, testLogger())

	return f
}

func TestUserService_CreateUser_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	input := usecase.CreateUserInput{
		Username: "shop-owner",
		Password: "s3cret-pass",
		UserType: entity.UserTypeVendor,
	}

	f.hasher.On("Hash", "s3cret-pass").Return("$2a$10$fakehashfakehashfakehash", nil)

	var created *entity.User
	f.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.User)
		}).
		Return(nil)

	f.imageService.On("GetImagesByUserID", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return([]entity.ImageRef{}, nil)
	f.vendorRepo.On("FindByUserID", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(nil, repository.ErrVendorProfileNotFound)

	view, err := f.service.CreateUser(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "shop-owner", created.Username)
	assert.Equal(t, "$2a$10$fakehashfakehashfakehash", created.CredentialHash)
	assert.Equal(t, created.ID, view.ID)
	assert.Equal(t, entity.UserTypeVendor, view.UserType)

	// Views must never carry credential material, even serialized.
	payload, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "fakehash")
}

func TestUserService_CreateUser_MissingCredentials(t *testing.T) {
	f := createTestUserService(t)

	_, err := f.service.CreateUser(context.Background(), usecase.CreateUserInput{
		Username: "shop-owner",
		UserType: entity.UserTypeVendor,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.service.CreateUser(context.Background(), usecase.CreateUserInput{
		Password: "s3cret-pass",
		UserType: entity.UserTypeVendor,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_CreateUser_UnknownUserType(t *testing.T) {
	f := createTestUserService(t)

	_, err := f.service.CreateUser(context.Background(), usecase.CreateUserInput{
		Username: "someone",
		Password: "s3cret-pass",
		UserType: entity.UserType("admin"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_GetUser_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Username: "buyer", UserType: entity.UserTypeCustomer}

	f.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	f.imageService.On("GetImagesByUserID", mock.Anything, user.ID).Return([]entity.ImageRef{}, nil)
	f.customerRepo.On("FindByUserID", mock.Anything, user.ID).
		Return(nil, repository.ErrCustomerProfileNotFound)

	view, err := f.service.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, view.ID)
	assert.Equal(t, "buyer", view.Username)
	assert.Nil(t, view.Customer)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	view, err := f.service.GetUser(ctx, userID)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_GetUserByUsername_NotFound(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	view, err := f.service.GetUserByUsername(ctx, "ghost")
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListUsersByType_InvalidType(t *testing.T) {
	f := createTestUserService(t)

	views, err := f.service.ListUsersByType(context.Background(), entity.UserType("robot"))
	assert.Nil(t, views)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_UpdateUser_EmptyInputRejectedBeforeTransaction(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := f.service.UpdateUser(ctx, userID, nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.service.UpdateUser(ctx, userID, &usecase.UpdateUserInput{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestUserService_UpdateUser_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Username: "buyer", UserType: entity.UserTypeCustomer}
	newName := "renamed-buyer"

	expectTx(f.txManager, f.factory)
	f.factory.On("UserRepo").Return(f.userRepo)
	f.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	f.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(int64(1), nil)

	f.imageService.On("GetImagesByUserID", mock.Anything, user.ID).Return([]entity.ImageRef{}, nil)
	f.customerRepo.On("FindByUserID", mock.Anything, user.ID).
		Return(nil, repository.ErrCustomerProfileNotFound)

	view, err := f.service.UpdateUser(ctx, user.ID, &usecase.UpdateUserInput{Username: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, view.Username)
	f.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserService_UpdateUser_RehashesPassword(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Username: "buyer", UserType: entity.UserTypeCustomer, CredentialHash: "old-hash"}
	newPassword := "brand-new-pass"

	expectTx(f.txManager, f.factory)
	f.factory.On("UserRepo").Return(f.userRepo)
	f.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	f.hasher.On("Hash", newPassword).Return("new-hash", nil)

	var updated *entity.User
	f.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*entity.User)
		}).
		Return(int64(1), nil)

	f.imageService.On("GetImagesByUserID", mock.Anything, user.ID).Return([]entity.ImageRef{}, nil)
	f.customerRepo.On("FindByUserID", mock.Anything, user.ID).
		Return(nil, repository.ErrCustomerProfileNotFound)

	_, err := f.service.UpdateUser(ctx, user.ID, &usecase.UpdateUserInput{Password: &newPassword})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "new-hash", updated.CredentialHash)
}

func TestUserService_DeleteUser_VendorCascade(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Username: "shop-owner", UserType: entity.UserTypeVendor}
	profile := &entity.VendorProfile{ID: uuid.New(), UserID: user.ID}

	expectTx(f.txManager, f.factory)
	f.factory.On("UserRepo").Return(f.userRepo)
	f.factory.On("VendorProfileRepo").Return(f.vendorRepo)
	f.factory.On("ServiceRepo").Return(f.serviceRepo)
	f.factory.On("OperatingHoursRepo").Return(f.hoursRepo)
	f.factory.On("BusinessLocationRepo").Return(f.locationRepo)
	f.factory.On("SocialMediaRepo").Return(f.socialRepo)

	f.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	f.vendorRepo.On("FindByUserID", ctx, user.ID).Return(profile, nil)
	f.serviceRepo.On("DeleteByVendorProfile", ctx, profile.ID).Return(int64(3), nil)
	f.hoursRepo.On("DeleteByVendorProfile", ctx, profile.ID).Return(int64(7), nil)
	f.locationRepo.On("DeleteByVendorProfile", ctx, profile.ID).Return(int64(2), nil)
	f.socialRepo.On("DeleteByVendorProfile", ctx, profile.ID).Return(int64(1), nil)
	f.vendorRepo.On("Delete", ctx, profile.ID).Return(int64(1), nil)
	f.userRepo.On("Delete", ctx, user.ID).Return(int64(1), nil)

	var published *service.ProfileEvent
	f.publisher.On("PublishProfileEvent", ctx, mock.AnythingOfType("*service.ProfileEvent")).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(*service.ProfileEvent)
		}).
		Return(nil)

	err := f.service.DeleteUser(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, service.EventUserDeleted, published.EventType)
	assert.Equal(t, user.ID.String(), published.UserID)
	assert.Equal(t, "vendor", published.UserType)
}

func TestUserService_DeleteUser_RollsBackOnDependentFailure(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), UserType: entity.UserTypeVendor}
	profile := &entity.VendorProfile{ID: uuid.New(), UserID: user.ID}

	expectTx(f.txManager, f.factory)
	f.factory.On("UserRepo").Return(f.userRepo)
	f.factory.On("VendorProfileRepo").Return(f.vendorRepo)
	f.factory.On("ServiceRepo").Return(f.serviceRepo)

	f.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	f.vendorRepo.On("FindByUserID", ctx, user.ID).Return(profile, nil)
	f.serviceRepo.On("DeleteByVendorProfile", ctx, profile.ID).
		Return(int64(0), errors.New("connection reset"))

	err := f.service.DeleteUser(ctx, user.ID)
	require.Error(t, err)

	f.userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishProfileEvent", mock.Anything, mock.Anything)
}

func TestUserService_DeleteUser_CustomerWithoutProfile(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), UserType: entity.UserTypeCustomer}

	expectTx(f.txManager, f.factory)
	f.factory.On("UserRepo").Return(f.userRepo)
	f.factory.On("CustomerProfileRepo").Return(f.customerRepo)

	f.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	f.customerRepo.On("FindByUserID", ctx, user.ID).
		Return(nil, repository.ErrCustomerProfileNotFound)
	f.userRepo.On("Delete", ctx, user.ID).Return(int64(1), nil)

	f.publisher.On("PublishProfileEvent", ctx, mock.AnythingOfType("*service.ProfileEvent")).Return(nil)

	err := f.service.DeleteUser(ctx, user.ID)
	require.NoError(t, err)
}
