package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

// testLogger returns a logger that discards all output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// composerMocks bundles every repository and service mock the ViewComposer
// depends on, so each test only sets expectations for the relations it uses.
type composerMocks struct {
	userRepo     *mockRepo.UserRepository
	vendorRepo   *mockRepo.VendorProfileRepository
	customerRepo *mockRepo.CustomerProfileRepository
	serviceRepo  *mockRepo.ServiceRepository
	hoursRepo    *mockRepo.OperatingHoursRepository
	locationRepo *mockRepo.BusinessLocationRepository
	socialRepo   *mockRepo.SocialMediaRepository
	prefRepo     *mockRepo.SearchPreferenceRepository
	imageService *mockSvc.ImageService
}

func newComposerMocks(t *testing.T) *composerMocks {
	return &composerMocks{
		userRepo:     mockRepo.NewUserRepository(t),
		vendorRepo:   mockRepo.NewVendorProfileRepository(t),
		customerRepo: mockRepo.NewCustomerProfileRepository(t),
		serviceRepo:  mockRepo.NewServiceRepository(t),
		hoursRepo:    mockRepo.NewOperatingHoursRepository(t),
		locationRepo: mockRepo.NewBusinessLocationRepository(t),
		socialRepo:   mockRepo.NewSocialMediaRepository(t),
		prefRepo:     mockRepo.NewSearchPreferenceRepository(t),
		imageService: mockSvc.NewImageService(t),
	}
}

func (m *composerMocks) build() *ViewComposer {
	return NewViewComposer(
		m.userRepo,
		m.vendorRepo,
		m.customerRepo,
		m.serviceRepo,
		m.hoursRepo,
		m.locationRepo,
		m.socialRepo,
		m.prefRepo,
		m.imageService,
		testLogger(),
	)
}

// expectEmptyVendorRelations lets a full vendor composition succeed with no
// dependent rows. profileID may be a concrete uuid.UUID or a mock matcher.
func (m *composerMocks) expectEmptyVendorRelations(profileID interface{}) {
	m.serviceRepo.On("FindByVendorProfile", mock.Anything, profileID).Return([]*entity.Service{}, nil)
	m.hoursRepo.On("FindByVendorProfile", mock.Anything, profileID).Return([]*entity.OperatingHours{}, nil)
	m.locationRepo.On("FindByVendorProfile", mock.Anything, profileID).Return([]*entity.BusinessLocation{}, nil)
	m.socialRepo.On("FindByVendorProfile", mock.Anything, profileID).Return([]*entity.SocialMedia{}, nil)
}

// expectTx makes the transaction manager run its callback against the given
// factory and propagate the callback's error, mirroring a real transaction.
func expectTx(txManager *mockRepo.TransactionManager, factory *mockRepo.RepositoryFactory) {
	txManager.On("Execute", mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
