package impl

import (
	"context"
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

type customerServiceFixtures struct {
	*composerMocks

	txManager *mockRepo.TransactionManager
	factory   *mockRepo.RepositoryFactory
	publisher *mockSvc.EventPublisher
	service   usecase.CustomerUsecase
}

func createTestCustomerService(t *testing.T) *customerServiceFixtures {
	cm := newComposerMocks(t)
	f := &customerServiceFixtures{
		composerMocks: cm,
		txManager:     mockRepo.NewTransactionManager(t),
		factory:       mockRepo.NewRepositoryFactory(t),
		publisher:     mockSvc.NewEventPublisher(t),
	}
	f.service = NewCustomerService(f.txManager, cm.customerRepo, cm.build(), f.publisher, testLogger())

	return f
}

func TestCustomerService_CreateProfile_Success(t *testing.T) {
	f := createTestCustomerService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Username: "buyer", UserType: entity.UserTypeCustomer}
	input := usecase.CreateCustomerProfileInput{
		UserID:    user.ID,
		FirstName: "Jamie",
		LastName:  "Lin",
		Email:     "jamie@example.com",
	}

	expectTx(f.txManager, f.factory)
	f.factory.On("UserRepo").Return(f.userRepo)
	f.factory.On("CustomerProfileRepo").Return(f.customerRepo)

	f.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	f.customerRepo.On("Create", ctx, mock.AnythingOfType("*entity.CustomerProfile")).Return(nil)

	var published *service.ProfileEvent
	f.publisher.On("PublishProfileEvent", ctx, mock.AnythingOfType("*service.ProfileEvent")).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(*service.ProfileEvent)
		}).
		Return(nil)

	f.prefRepo.On("FindByCustomerProfile", ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil, repository.ErrSearchPreferenceNotFound)

	view, err := f.service.CreateProfile(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, user.ID, view.UserID)
	assert.Equal(t, "jamie@example.com", view.Email)
	assert.Nil(t, view.SearchPreference)
	require.NotNil(t, view.User)
	assert.Equal(t, user.ID, view.User.ID)

	require.NotNil(t, published)
	assert.Equal(t, service.EventProfileCreated, published.EventType)
	assert.Equal(t, "customer", published.UserType)
}

func TestCustomerService_CreateProfile_TypeMismatch(t *testing.T) {
	f := createTestCustomerService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), UserType: entity.UserTypeVendor}

	expectTx(f.txManager, f.factory)
	f.factory.On("UserRepo").Return(f.userRepo)
	f.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	view, err := f.service.CreateProfile(ctx, usecase.CreateCustomerProfileInput{
		UserID:    user.ID,
		FirstName: "Jamie",
		LastName:  "Lin",
		Email:     "jamie@example.com",
	})
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrProfileTypeMismatch)

	f.customerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishProfileEvent", mock.Anything, mock.Anything)
}

func TestCustomerService_CreateProfile_MissingFields(t *testing.T) {
	f := createTestCustomerService(t)

	view, err := f.service.CreateProfile(context.Background(), usecase.CreateCustomerProfileInput{
		UserID:    uuid.New(),
		FirstName: "Jamie",
	})
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCustomerService_CreateProfile_DuplicateEmail(t *testing.T) {
	f := createTestCustomerService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), UserType: entity.UserTypeCustomer}

	expectTx(f.txManager, f.factory)
	f.factory.On("UserRepo").Return(f.userRepo)
	f.factory.On("CustomerProfileRepo").Return(f.customerRepo)

	f.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	f.customerRepo.On("Create", ctx, mock.AnythingOfType("*entity.CustomerProfile")).
		Return(domainerrors.NewConstraintViolation("customer_profiles_email_key", errors.New("duplicate key value")))

	view, err := f.service.CreateProfile(ctx, usecase.CreateCustomerProfileInput{
		UserID:    user.ID,
		FirstName: "Jamie",
		LastName:  "Lin",
		Email:     "taken@example.com",
	})
	assert.Nil(t, view)

	var constraintErr *domainerrors.ConstraintViolationError
	require.ErrorAs(t, err, &constraintErr)
	assert.Equal(t, "customer_profiles_email_key", constraintErr.Constraint())

	f.publisher.AssertNotCalled(t, "PublishProfileEvent", mock.Anything, mock.Anything)
}

func TestCustomerService_GetProfile_NotFound(t *testing.T) {
	f := createTestCustomerService(t)
	ctx := context.Background()
	profileID := uuid.New()

	f.customerRepo.On("FindByID", ctx, profileID).Return(nil, repository.ErrCustomerProfileNotFound)

	view, err := f.service.GetProfile(ctx, profileID, repository.AllCustomerRelations())
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestCustomerService_UpdateProfile_EmptyInputRejected(t *testing.T) {
	f := createTestCustomerService(t)

	_, err := f.service.UpdateProfile(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.service.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateCustomerProfileInput{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCustomerService_DeleteProfile_RemovesPreferenceAndKeepsUser(t *testing.T) {
	f := createTestCustomerService(t)
	ctx := context.Background()

	profile := &entity.CustomerProfile{ID: uuid.New(), UserID: uuid.New()}

	expectTx(f.txManager, f.factory)
	f.factory.On("CustomerProfileRepo").Return(f.customerRepo)
	f.factory.On("SearchPreferenceRepo").Return(f.prefRepo)

	f.customerRepo.On("FindByID", ctx, profile.ID).Return(profile, nil)
	f.prefRepo.On("DeleteByCustomerProfile", ctx, profile.ID).Return(int64(1), nil)
	f.customerRepo.On("Delete", ctx, profile.ID).Return(int64(1), nil)

	var published *service.ProfileEvent
	f.publisher.On("PublishProfileEvent", ctx, mock.AnythingOfType("*service.ProfileEvent")).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(*service.ProfileEvent)
		}).
		Return(nil)

	err := f.service.DeleteProfile(ctx, profile.ID)
	require.NoError(t, err)

	require.NotNil(t, published)
	assert.Equal(t, service.EventProfileDeleted, published.EventType)
	assert.Equal(t, profile.UserID.String(), published.UserID)
}

func TestCustomerService_UpsertSearchPreference_InvalidRadiusRejected(t *testing.T) {
	f := createTestCustomerService(t)

	view, err := f.service.UpsertSearchPreference(context.Background(), uuid.New(), usecase.UpsertSearchPreferenceInput{
		SearchRadius: 0,
	})
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCustomerService_UpsertSearchPreference_ClampsRating(t *testing.T) {
	f := createTestCustomerService(t)
	ctx := context.Background()

	owner := &entity.User{ID: uuid.New(), Username: "jamie", UserType: entity.UserTypeCustomer}
	profile := &entity.CustomerProfile{ID: uuid.New(), UserID: owner.ID}
	input := usecase.UpsertSearchPreferenceInput{
		SearchRadius:        2500,
		PreferredCategories: []string{"food", "barber"},
		PreferredRating:     7.77,
	}

	expectTx(f.txManager, f.factory)
	f.factory.On("CustomerProfileRepo").Return(f.customerRepo)
	f.factory.On("SearchPreferenceRepo").Return(f.prefRepo)

	f.customerRepo.On("FindByID", ctx, profile.ID).Return(profile, nil)
	f.userRepo.On("FindByID", ctx, owner.ID).Return(owner, nil)

	var saved *entity.CustomerSearchPreference
	f.prefRepo.On("Upsert", ctx, mock.AnythingOfType("*entity.CustomerSearchPreference")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*entity.CustomerSearchPreference)
		}).
		Return(nil)

	f.prefRepo.On("FindByCustomerProfile", ctx, profile.ID).
		Return(func(_ context.Context, _ uuid.UUID) (*entity.CustomerSearchPreference, error) {
			return saved, nil
		})

	view, err := f.service.UpsertSearchPreference(ctx, profile.ID, input)
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, profile.ID, saved.CustomerProfileID)
	assert.InDelta(t, 2500, saved.SearchRadius, 1e-9)
	assert.InDelta(t, 5.0, saved.PreferredRating, 1e-9)
	assert.Equal(t, []string{"food", "barber"}, saved.PreferredCategories)
	assert.NotNil(t, saved.LastSearch)

	assert.Equal(t, saved, view.SearchPreference)
}
