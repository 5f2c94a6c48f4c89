package impl

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestViewComposer_VendorView_AllRelations(t *testing.T) {
	cm := newComposerMocks(t)
	composer := cm.build()

	ctx := context.Background()
	profile := &entity.VendorProfile{ID: uuid.New(), UserID: uuid.New(), BusinessName: "Night Market Noodles"}

	services := []*entity.Service{
		{ID: uuid.New(), VendorProfileID: profile.ID, Name: "Beef Noodles", Price: decimal.RequireFromString("4.50")},
	}
	hours := []*entity.OperatingHours{
		{ID: uuid.New(), VendorProfileID: profile.ID, OpensAt: "11:00", ClosesAt: "21:00"},
	}
	locations := []*entity.BusinessLocation{
		{ID: uuid.New(), VendorProfileID: profile.ID, FullAddress: "1 Raohe St"},
	}
	links := []*entity.SocialMedia{
		{ID: uuid.New(), VendorProfileID: profile.ID, Platform: "instagram", URL: "https://instagram.com/noodles"},
	}

	cm.serviceRepo.On("FindByVendorProfile", mock.Anything, profile.ID).Return(services, nil)
	cm.hoursRepo.On("FindByVendorProfile", mock.Anything, profile.ID).Return(hours, nil)
	cm.locationRepo.On("FindByVendorProfile", mock.Anything, profile.ID).Return(locations, nil)
	cm.socialRepo.On("FindByVendorProfile", mock.Anything, profile.ID).Return(links, nil)

	view, err := composer.VendorView(ctx, profile, repository.AllVendorRelations())
	require.NoError(t, err)
	assert.Equal(t, profile.ID, view.ID)
	assert.Equal(t, profile.BusinessName, view.BusinessName)
	assert.Equal(t, []entity.Service{*services[0]}, view.Services)
	assert.Equal(t, []entity.OperatingHours{*hours[0]}, view.OperatingHours)
	assert.Equal(t, []entity.BusinessLocation{*locations[0]}, view.BusinessLocations)
	assert.Equal(t, []entity.SocialMedia{*links[0]}, view.SocialMedia)
}

func TestViewComposer_VendorView_NoRelationsRequested(t *testing.T) {
	cm := newComposerMocks(t)
	composer := cm.build()

	profile := &entity.VendorProfile{ID: uuid.New(), BusinessName: "Quiet Shop"}

	view, err := composer.VendorView(context.Background(), profile, repository.RelationSet{})
	require.NoError(t, err)
	assert.Equal(t, profile.ID, view.ID)
	assert.Nil(t, view.Services)
	assert.Nil(t, view.OperatingHours)
	assert.Nil(t, view.BusinessLocations)
	assert.Nil(t, view.SocialMedia)
}

func TestViewComposer_VendorView_RelationFailureNamesRelation(t *testing.T) {
	cm := newComposerMocks(t)
	composer := cm.build()

	profile := &entity.VendorProfile{ID: uuid.New()}

	cm.serviceRepo.On("FindByVendorProfile", mock.Anything, profile.ID).
		Return(nil, errors.New("connection reset"))

	view, err := composer.VendorView(context.Background(), profile, repository.RelationSet{repository.RelationServices})
	require.Error(t, err)
	assert.Nil(t, view)

	var compErr *domainerrors.CompositionError
	require.ErrorAs(t, err, &compErr)
	assert.Equal(t, "services", compErr.Relation())
}

func TestViewComposer_VendorViewWithLocations_AttachesGivenLocations(t *testing.T) {
	cm := newComposerMocks(t)
	composer := cm.build()

	profile := &entity.VendorProfile{ID: uuid.New()}
	matched := []entity.BusinessLocation{
		{ID: uuid.New(), VendorProfileID: profile.ID, Label: "Main branch"},
	}

	// The location repository carries no expectation: supplying locations
	// must suppress the lookup even when the relation is requested.
	cm.serviceRepo.On("FindByVendorProfile", mock.Anything, profile.ID).Return([]*entity.Service{}, nil)
	cm.hoursRepo.On("FindByVendorProfile", mock.Anything, profile.ID).Return([]*entity.OperatingHours{}, nil)
	cm.socialRepo.On("FindByVendorProfile", mock.Anything, profile.ID).Return([]*entity.SocialMedia{}, nil)

	view, err := composer.VendorViewWithLocations(context.Background(), profile, repository.AllVendorRelations(), matched)
	require.NoError(t, err)
	assert.Equal(t, matched, view.BusinessLocations)
}

func TestViewComposer_CustomerView_WithPreference(t *testing.T) {
	cm := newComposerMocks(t)
	composer := cm.build()

	ctx := context.Background()
	owner := &entity.User{ID: uuid.New(), Username: "jamie", UserType: entity.UserTypeCustomer}
	profile := &entity.CustomerProfile{ID: uuid.New(), UserID: owner.ID, Email: "jamie@example.com"}
	pref := &entity.CustomerSearchPreference{ID: uuid.New(), CustomerProfileID: profile.ID, SearchRadius: 2500}

	cm.prefRepo.On("FindByCustomerProfile", ctx, profile.ID).Return(pref, nil)
	cm.userRepo.On("FindByID", ctx, owner.ID).Return(owner, nil)

	view, err := composer.CustomerView(ctx, profile, repository.AllCustomerRelations())
	require.NoError(t, err)
	assert.Equal(t, pref, view.SearchPreference)
	require.NotNil(t, view.User)
	assert.Equal(t, owner.ID, view.User.ID)
	assert.Equal(t, "jamie", view.User.Username)
}

func TestViewComposer_CustomerView_MissingPreferenceIsNotAnError(t *testing.T) {
	cm := newComposerMocks(t)
	composer := cm.build()

	ctx := context.Background()
	profile := &entity.CustomerProfile{ID: uuid.New()}

	cm.prefRepo.On("FindByCustomerProfile", ctx, profile.ID).
		Return(nil, repository.ErrSearchPreferenceNotFound)

	view, err := composer.CustomerView(ctx, profile, repository.RelationSet{repository.RelationSearchPreference})
	require.NoError(t, err)
	assert.Nil(t, view.SearchPreference)
}

func TestViewComposer_CustomerView_PreferenceLookupFailure(t *testing.T) {
	cm := newComposerMocks(t)
	composer := cm.build()

	ctx := context.Background()
	profile := &entity.CustomerProfile{ID: uuid.New()}

	cm.prefRepo.On("FindByCustomerProfile", ctx, profile.ID).
		Return(nil, errors.New("connection reset"))

	view, err := composer.CustomerView(ctx, profile, repository.AllCustomerRelations())
	require.Error(t, err)
	assert.Nil(t, view)

	var compErr *domainerrors.CompositionError
	require.ErrorAs(t, err, &compErr)
	assert.Equal(t, "search_preference", compErr.Relation())
}

func TestViewComposer_CustomerView_UserRelationRedactsCredential(t *testing.T) {
	cm := newComposerMocks(t)
	composer := cm.build()

	ctx := context.Background()
	owner := &entity.User{
		ID:             uuid.New(),
		Username:       "jamie",
		UserType:       entity.UserTypeCustomer,
		CredentialHash: "super-secret",
	}
	profile := &entity.CustomerProfile{ID: uuid.New(), UserID: owner.ID, Email: "jamie@example.com"}

	cm.userRepo.On("FindByID", ctx, owner.ID).Return(owner, nil)

	view, err := composer.CustomerView(ctx, profile, repository.RelationSet{repository.RelationUser})
	require.NoError(t, err)
	require.NotNil(t, view.User)
	assert.Equal(t, owner.Username, view.User.Username)

	payload, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "super-secret")
}

func TestViewComposer_CustomerView_DanglingOwnerLeavesUserNil(t *testing.T) {
	cm := newComposerMocks(t)
	composer := cm.build()

	ctx := context.Background()
	profile := &entity.CustomerProfile{ID: uuid.New(), UserID: uuid.New()}

	cm.userRepo.On("FindByID", ctx, profile.UserID).
		Return(nil, repository.ErrUserNotFound)

	view, err := composer.CustomerView(ctx, profile, repository.RelationSet{repository.RelationUser})
	require.NoError(t, err)
	assert.Nil(t, view.User)
}

func TestViewComposer_CustomerView_UserLookupFailure(t *testing.T) {
	cm := newComposerMocks(t)
	composer := cm.build()

	ctx := context.Background()
	profile := &entity.CustomerProfile{ID: uuid.New(), UserID: uuid.New()}

	cm.userRepo.On("FindByID", ctx, profile.UserID).
		Return(nil, errors.New("connection reset"))

	view, err := composer.CustomerView(ctx, profile, repository.RelationSet{repository.RelationUser})
	require.Error(t, err)
	assert.Nil(t, view)

	var compErr *domainerrors.CompositionError
	require.ErrorAs(t, err, &compErr)
	assert.Equal(t, "user", compErr.Relation())
}

func TestViewComposer_UserView_VendorWithProfile(t *testing.T) {
	cm := newComposerMocks(t)
	composer := cm.build()

	user := &entity.User{ID: uuid.New(), Username: "shop-owner", UserType: entity.UserTypeVendor}
	profile := &entity.VendorProfile{ID: uuid.New(), UserID: user.ID, BusinessName: "Night Market Noodles"}
	images := []entity.ImageRef{{ID: "img-1", OwnerUserID: user.ID, URL: "https://img.example.com/1"}}

	cm.imageService.On("GetImagesByUserID", mock.Anything, user.ID).Return(images, nil)
	cm.vendorRepo.On("FindByUserID", mock.Anything, user.ID).Return(profile, nil)
	cm.expectEmptyVendorRelations(profile.ID)

	view, err := composer.UserView(context.Background(), user, repository.RelationSet{repository.RelationProfile})
	require.NoError(t, err)
	assert.Equal(t, images, view.Images)
	require.NotNil(t, view.Vendor)
	assert.Equal(t, profile.ID, view.Vendor.ID)
	assert.Nil(t, view.Customer)
}

func TestViewComposer_UserView_MissingProfileLeavesViewBare(t *testing.T) {
	cm := newComposerMocks(t)
	composer := cm.build()

	user := &entity.User{ID: uuid.New(), Username: "buyer", UserType: entity.UserTypeCustomer}

	cm.imageService.On("GetImagesByUserID", mock.Anything, user.ID).Return([]entity.ImageRef{}, nil)
	cm.customerRepo.On("FindByUserID", mock.Anything, user.ID).
		Return(nil, repository.ErrCustomerProfileNotFound)

	view, err := composer.UserView(context.Background(), user, repository.RelationSet{repository.RelationProfile})
	require.NoError(t, err)
	assert.Nil(t, view.Vendor)
	assert.Nil(t, view.Customer)
	assert.Empty(t, view.Images)
}

func TestViewComposer_UserView_ImageFetchFailure(t *testing.T) {
	cm := newComposerMocks(t)
	composer := cm.build()

	user := &entity.User{ID: uuid.New(), UserType: entity.UserTypeVendor}

	cm.imageService.On("GetImagesByUserID", mock.Anything, user.ID).
		Return(nil, errors.New("image service unavailable"))

	view, err := composer.UserView(context.Background(), user, repository.RelationSet{})
	require.Error(t, err)
	assert.Nil(t, view)

	var compErr *domainerrors.CompositionError
	require.ErrorAs(t, err, &compErr)
	assert.Equal(t, "images", compErr.Relation())
}
