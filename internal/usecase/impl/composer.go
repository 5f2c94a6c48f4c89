// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ViewComposer hydrates entities into outward views, fetching the requested
// relations concurrently. Composition is all-or-nothing: if any relation
// fails to load, the whole view fails with that relation named.
//
// The composer uses the non-transactional repositories. Fan-out must never
// share a database transaction, so transactional callers compose views after
// their transaction commits.
type ViewComposer struct {
	userRepo     repository.UserRepository
	vendorRepo   repository.VendorProfileRepository
	customerRepo repository.CustomerProfileRepository
	serviceRepo  repository.ServiceRepository
	hoursRepo    repository.OperatingHoursRepository
	locationRepo repository.BusinessLocationRepository
	socialRepo   repository.SocialMediaRepository
	prefRepo     repository.SearchPreferenceRepository
	imageService service.ImageService
	logger       *slog.Logger
}

// NewViewComposer is the constructor for ViewComposer.
func NewViewComposer(
	userRepo repository.UserRepository,
	vendorRepo repository.VendorProfileRepository,
	customerRepo repository.CustomerProfileRepository,
	serviceRepo repository.ServiceRepository,
	hoursRepo repository.OperatingHoursRepository,
	locationRepo repository.BusinessLocationRepository,
	socialRepo repository.SocialMediaRepository,
	prefRepo repository.SearchPreferenceRepository,
	imageService service.ImageService,
	logger *slog.Logger,
) *ViewComposer {
	return &ViewComposer{
		userRepo:     userRepo,
		vendorRepo:   vendorRepo,
		customerRepo: customerRepo,
		serviceRepo:  serviceRepo,
		hoursRepo:    hoursRepo,
		locationRepo: locationRepo,
		socialRepo:   socialRepo,
		prefRepo:     prefRepo,
		imageService: imageService,
		logger:       logger,
	}
}

// VendorView composes a vendor profile with the requested relations.
func (c *ViewComposer) VendorView(ctx context.Context, profile *entity.VendorProfile, relations repository.RelationSet) (*usecase.VendorProfileView, error) {
	view := newVendorView(profile)

	group, groupCtx := errgroup.WithContext(ctx)

	if relations.Has(repository.RelationServices) {
		group.Go(func() error {
			services, err := c.serviceRepo.FindByVendorProfile(groupCtx, profile.ID)
			if err != nil {
				return domainerrors.NewCompositionError(string(repository.RelationServices), err)
			}
			view.Services = derefAll(services)

			return nil
		})
	}

	if relations.Has(repository.RelationOperatingHours) {
		group.Go(func() error {
			hours, err := c.hoursRepo.FindByVendorProfile(groupCtx, profile.ID)
			if err != nil {
				return domainerrors.NewCompositionError(string(repository.RelationOperatingHours), err)
			}
			view.OperatingHours = derefAll(hours)

			return nil
		})
	}

	if relations.Has(repository.RelationBusinessLocations) {
		group.Go(func() error {
			locations, err := c.locationRepo.FindByVendorProfile(groupCtx, profile.ID)
			if err != nil {
				return domainerrors.NewCompositionError(string(repository.RelationBusinessLocations), err)
			}
			view.BusinessLocations = derefAll(locations)

			return nil
		})
	}

	if relations.Has(repository.RelationSocialMedia) {
		group.Go(func() error {
			links, err := c.socialRepo.FindByVendorProfile(groupCtx, profile.ID)
			if err != nil {
				return domainerrors.NewCompositionError(string(repository.RelationSocialMedia), err)
			}
			view.SocialMedia = derefAll(links)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return view, nil
}

// VendorViewWithLocations composes a vendor view like VendorView but attaches
// the supplied locations instead of loading them. Proximity searches use it
// to return only the locations that matched the query.
func (c *ViewComposer) VendorViewWithLocations(ctx context.Context, profile *entity.VendorProfile, relations repository.RelationSet, locations []entity.BusinessLocation) (*usecase.VendorProfileView, error) {
	trimmed := make(repository.RelationSet, 0, len(relations))
	for _, rel := range relations {
		if rel != repository.RelationBusinessLocations {
			trimmed = append(trimmed, rel)
		}
	}

	view, err := c.VendorView(ctx, profile, trimmed)
	if err != nil {
		return nil, err
	}
	view.BusinessLocations = locations

	return view, nil
}

// CustomerView composes a customer profile with the requested relations.
// A missing search preference is a normal state and leaves the field nil.
// The user relation attaches the redacted owning account.
func (c *ViewComposer) CustomerView(ctx context.Context, profile *entity.CustomerProfile, relations repository.RelationSet) (*usecase.CustomerProfileView, error) {
	view := newCustomerView(profile)

	if relations.Has(repository.RelationSearchPreference) {
		pref, err := c.prefRepo.FindByCustomerProfile(ctx, profile.ID)
		if err != nil {
			if !errors.Is(err, repository.ErrSearchPreferenceNotFound) {
				return nil, domainerrors.NewCompositionError(string(repository.RelationSearchPreference), err)
			}
		} else {
			view.SearchPreference = pref
		}
	}

	if relations.Has(repository.RelationUser) {
		owner, err := c.userRepo.FindByID(ctx, profile.UserID)
		if err != nil {
			// A dangling owner reference reads as an absent relation, the
			// way an outer join would.
			if !errors.Is(err, repository.ErrUserNotFound) {
				return nil, domainerrors.NewCompositionError(string(repository.RelationUser), err)
			}
		} else {
			view.User = newUserAccountView(owner)
		}
	}

	return view, nil
}

// UserView composes a user with its typed profile and images. The profile of
// the user's declared type is attached when RelationProfile is requested; a
// user that has not created a profile yet simply carries none.
func (c *ViewComposer) UserView(ctx context.Context, user *entity.User, relations repository.RelationSet) (*usecase.UserView, error) {
	view := newUserView(user)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		images, err := c.imageService.GetImagesByUserID(groupCtx, user.ID)
		if err != nil {
			return domainerrors.NewCompositionError("images", err)
		}
		view.Images = images

		return nil
	})

	if relations.Has(repository.RelationProfile) {
		group.Go(func() error {
			return c.attachProfile(groupCtx, user, view)
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return view, nil
}

func (c *ViewComposer) attachProfile(ctx context.Context, user *entity.User, view *usecase.UserView) error {
	switch user.UserType {
	case entity.UserTypeVendor:
		profile, err := c.vendorRepo.FindByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, repository.ErrVendorProfileNotFound) {
				return nil
			}

			return domainerrors.NewCompositionError(string(repository.RelationProfile), err)
		}

		vendorView, err := c.VendorView(ctx, profile, repository.AllVendorRelations())
		if err != nil {
			return err
		}
		view.Vendor = vendorView
	case entity.UserTypeCustomer:
		profile, err := c.customerRepo.FindByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerProfileNotFound) {
				return nil
			}

			return domainerrors.NewCompositionError(string(repository.RelationProfile), err)
		}

		// The owning user is already the view root, so the user relation
		// is not re-attached under its own profile.
		customerView, err := c.CustomerView(ctx, profile, repository.RelationSet{repository.RelationSearchPreference})
		if err != nil {
			return err
		}
		view.Customer = customerView
	}

	return nil
}

func newUserView(user *entity.User) *usecase.UserView {
	return &usecase.UserView{
		ID:        user.ID,
		Username:  user.Username,
		UserType:  user.UserType,
		Images:    []entity.ImageRef{},
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func newVendorView(profile *entity.VendorProfile) *usecase.VendorProfileView {
	return &usecase.VendorProfileView{
		ID:           profile.ID,
		UserID:       profile.UserID,
		BusinessName: profile.BusinessName,
		Description:  profile.Description,
		Phone:        profile.Phone,
		Website:      profile.Website,
		CreatedAt:    profile.CreatedAt,
		UpdatedAt:    profile.UpdatedAt,
	}
}

// derefAll flattens a repository result into the value slice views carry.
func derefAll[T any](items []*T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, *item)
	}

	return out
}

// newUserAccountView redacts a user to its account fields. The credential
// hash has no field to land in.
func newUserAccountView(user *entity.User) *usecase.UserAccountView {
	return &usecase.UserAccountView{
		ID:        user.ID,
		Username:  user.Username,
		UserType:  user.UserType,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func newCustomerView(profile *entity.CustomerProfile) *usecase.CustomerProfileView {
	return &usecase.CustomerProfileView{
		ID:          profile.ID,
		UserID:      profile.UserID,
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		Email:       profile.Email,
		DateOfBirth: profile.DateOfBirth,
		Preferences: profile.Preferences,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}
}
