package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type vendorServiceFixtures struct {
	*composerMocks

	txManager *mockRepo.TransactionManager
	factory   *mockRepo.RepositoryFactory
	publisher *mockSvc.EventPublisher
	service   usecase.VendorUsecase
}

func createTestVendorService(t *testing.T) *vendorServiceFixtures {
	cm := newComposerMocks(t)
	f := &vendorServiceFixtures{
		composerMocks: cm,
		txManager:     mockRepo.NewTransactionManager(t),
		factory:       mockRepo.NewRepositoryFactory(t),
		publisher:     mockSvc.NewEventPublisher(t),
	}
	f.service = NewVendorService(f.txManager, cm.vendorRepo, cm.build(), f.publisher, testLogger())

	return f
}

func TestVendorService_CreateProfile_Success(t *testing.T) {
	f := createTestVendorService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Username: "shop-owner", UserType: entity.UserTypeVendor}
	input := usecase.CreateVendorProfileInput{
		UserID:       user.ID,
		BusinessName: "Night Market Noodles",
		Phone:        "+886-2-1234-5678",
	}

	expectTx(f.txManager, f.factory)
	f.factory.On("UserRepo").Return(f.userRepo)
	f.factory.On("VendorProfileRepo").Return(f.vendorRepo)

	f.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	f.vendorRepo.On("Create", ctx, mock.AnythingOfType("*entity.VendorProfile")).Return(nil)

	var published *service.ProfileEvent
	f.publisher.On("PublishProfileEvent", ctx, mock.AnythingOfType("*service.ProfileEvent")).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(*service.ProfileEvent)
		}).
		Return(nil)

	f.expectEmptyVendorRelations(mock.AnythingOfType("uuid.UUID"))

	view, err := f.service.CreateProfile(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, user.ID, view.UserID)
	assert.Equal(t, "Night Market Noodles", view.BusinessName)

	require.NotNil(t, published)
	assert.Equal(t, service.EventProfileCreated, published.EventType)
	assert.Equal(t, user.ID.String(), published.UserID)
	assert.Equal(t, "vendor", published.UserType)
}

func TestVendorService_CreateProfile_TypeMismatch(t *testing.T) {
	f := createTestVendorService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), UserType: entity.UserTypeCustomer}

	expectTx(f.txManager, f.factory)
	f.factory.On("UserRepo").Return(f.userRepo)
	f.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	view, err := f.service.CreateProfile(ctx, usecase.CreateVendorProfileInput{
		UserID:       user.ID,
		BusinessName: "Wrong Kind",
	})
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrProfileTypeMismatch)

	f.vendorRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishProfileEvent", mock.Anything, mock.Anything)
}

func TestVendorService_CreateProfile_MissingBusinessName(t *testing.T) {
	f := createTestVendorService(t)

	view, err := f.service.CreateProfile(context.Background(), usecase.CreateVendorProfileInput{
		UserID: uuid.New(),
	})
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestVendorService_GetProfile_NotFound(t *testing.T) {
	f := createTestVendorService(t)
	ctx := context.Background()
	profileID := uuid.New()

	f.vendorRepo.On("FindByID", ctx, profileID).Return(nil, repository.ErrVendorProfileNotFound)

	view, err := f.service.GetProfile(ctx, profileID, repository.AllVendorRelations())
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestVendorService_GetProfile_SelectedRelationsOnly(t *testing.T) {
	f := createTestVendorService(t)
	ctx := context.Background()

	profile := &entity.VendorProfile{ID: uuid.New(), BusinessName: "Night Market Noodles"}
	services := []*entity.Service{
		{ID: uuid.New(), VendorProfileID: profile.ID, Name: "Beef Noodles", Price: decimal.RequireFromString("4.50")},
	}

	f.vendorRepo.On("FindByID", ctx, profile.ID).Return(profile, nil)
	f.serviceRepo.On("FindByVendorProfile", mock.Anything, profile.ID).Return(services, nil)

	view, err := f.service.GetProfile(ctx, profile.ID, repository.RelationSet{repository.RelationServices})
	require.NoError(t, err)
	assert.Len(t, view.Services, 1)
	assert.Nil(t, view.OperatingHours)
	assert.Nil(t, view.BusinessLocations)
	assert.Nil(t, view.SocialMedia)
}

func TestVendorService_UpdateProfile_EmptyInputRejected(t *testing.T) {
	f := createTestVendorService(t)

	_, err := f.service.UpdateProfile(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.service.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateVendorProfileInput{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestVendorService_DeleteProfile_CascadesAndKeepsUser(t *testing.T) {
	f := createTestVendorService(t)
	ctx := context.Background()

	profile := &entity.VendorProfile{ID: uuid.New(), UserID: uuid.New()}

	expectTx(f.txManager, f.factory)
	f.factory.On("VendorProfileRepo").Return(f.vendorRepo)
	f.factory.On("ServiceRepo").Return(f.serviceRepo)
	f.factory.On("OperatingHoursRepo").Return(f.hoursRepo)
	f.factory.On("BusinessLocationRepo").Return(f.locationRepo)
	f.factory.On("SocialMediaRepo").Return(f.socialRepo)

	f.vendorRepo.On("FindByID", ctx, profile.ID).Return(profile, nil)
	f.serviceRepo.On("DeleteByVendorProfile", ctx, profile.ID).Return(int64(2), nil)
	f.hoursRepo.On("DeleteByVendorProfile", ctx, profile.ID).Return(int64(7), nil)
	f.locationRepo.On("DeleteByVendorProfile", ctx, profile.ID).Return(int64(1), nil)
	f.socialRepo.On("DeleteByVendorProfile", ctx, profile.ID).Return(int64(3), nil)
	f.vendorRepo.On("Delete", ctx, profile.ID).Return(int64(1), nil)

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
	assert.Equal(t, profile.ID.String(), published.ProfileID)
}

func TestVendorService_AddService_Success(t *testing.T) {
	f := createTestVendorService(t)
	ctx := context.Background()

	profile := &entity.VendorProfile{ID: uuid.New(), UserID: uuid.New()}
	input := usecase.AddServiceInput{Name: "Haircut", Price: decimal.RequireFromString("29.99")}

	expectTx(f.txManager, f.factory)
	f.factory.On("VendorProfileRepo").Return(f.vendorRepo)
	f.factory.On("ServiceRepo").Return(f.serviceRepo)

	f.vendorRepo.On("FindByID", ctx, profile.ID).Return(profile, nil)

	var created *entity.Service
	f.serviceRepo.On("Create", ctx, mock.AnythingOfType("*entity.Service")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Service)
		}).
		Return(nil)

	f.expectEmptyVendorRelations(profile.ID)

	view, err := f.service.AddService(ctx, profile.ID, input)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, view.ID)

	require.NotNil(t, created)
	assert.Equal(t, "Haircut", created.Name)
	assert.Equal(t, profile.ID, created.VendorProfileID)
	assert.True(t, created.Price.Equal(decimal.RequireFromString("29.99")))
}

func TestVendorService_AddService_NegativePriceRejected(t *testing.T) {
	f := createTestVendorService(t)

	view, err := f.service.AddService(context.Background(), uuid.New(), usecase.AddServiceInput{
		Name:  "Haircut",
		Price: decimal.NewFromInt(-5),
	})
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestVendorService_AddOperatingHours_InvalidTimeRejected(t *testing.T) {
	f := createTestVendorService(t)

	view, err := f.service.AddOperatingHours(context.Background(), uuid.New(), usecase.AddOperatingHoursInput{
		DayOfWeek: 1,
		OpensAt:   "25:99",
		ClosesAt:  "18:00",
	})
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestVendorService_AddBusinessLocation_InvalidCoordinatesRejected(t *testing.T) {
	f := createTestVendorService(t)

	view, err := f.service.AddBusinessLocation(context.Background(), uuid.New(), usecase.AddBusinessLocationInput{
		FullAddress: "1 Nowhere St",
		Latitude:    95,
		Longitude:   121.5,
	})
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestVendorService_AddSocialMedia_MissingFieldsRejected(t *testing.T) {
	f := createTestVendorService(t)

	view, err := f.service.AddSocialMedia(context.Background(), uuid.New(), usecase.AddSocialMediaInput{
		Platform: "instagram",
	})
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestVendorService_AddService_ProfileNotFound(t *testing.T) {
	f := createTestVendorService(t)
	ctx := context.Background()
	profileID := uuid.New()

	expectTx(f.txManager, f.factory)
	f.factory.On("VendorProfileRepo").Return(f.vendorRepo)
	f.vendorRepo.On("FindByID", ctx, profileID).Return(nil, repository.ErrVendorProfileNotFound)

	view, err := f.service.AddService(ctx, profileID, usecase.AddServiceInput{
		Name:  "Haircut",
		Price: decimal.NewFromInt(10),
	})
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)

	f.serviceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
