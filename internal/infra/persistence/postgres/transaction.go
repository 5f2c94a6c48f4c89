package postgres

import (
	"context"
	"fmt"

	"bazaar/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// UserRepo creates a user repository bound to the transaction.
func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// VendorProfileRepo creates a vendor profile repository bound to the transaction.
func (f *gormRepositoryFactory) VendorProfileRepo() repository.VendorProfileRepository {
	return NewVendorProfileRepository(f.tx)
}

// CustomerProfileRepo creates a customer profile repository bound to the transaction.
func (f *gormRepositoryFactory) CustomerProfileRepo() repository.CustomerProfileRepository {
	return NewCustomerProfileRepository(f.tx)
}

// ServiceRepo creates a service repository bound to the transaction.
func (f *gormRepositoryFactory) ServiceRepo() repository.ServiceRepository {
	return NewServiceRepository(f.tx)
}

// OperatingHoursRepo creates an operating hours repository bound to the transaction.
func (f *gormRepositoryFactory) OperatingHoursRepo() repository.OperatingHoursRepository {
	return NewOperatingHoursRepository(f.tx)
}

// BusinessLocationRepo creates a business location repository bound to the transaction.
func (f *gormRepositoryFactory) BusinessLocationRepo() repository.BusinessLocationRepository {
	return NewBusinessLocationRepository(f.tx)
}

// SocialMediaRepo creates a social media repository bound to the transaction.
func (f *gormRepositoryFactory) SocialMediaRepo() repository.SocialMediaRepository {
	return NewSocialMediaRepository(f.tx)
}

// SearchPreferenceRepo creates a search preference repository bound to the transaction.
func (f *gormRepositoryFactory) SearchPreferenceRepo() repository.SearchPreferenceRepository {
	return NewSearchPreferenceRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// This defer block ensures that if a panic occurs within the callback function,
	// the transaction is always rolled back. This is a critical safety measure.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	// Execute the application logic (the use case's core work)
	err := fn(factory)
	if err != nil {
		// If the business logic returns an error, roll back the transaction.
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Log the rollback error, but return the original, more meaningful business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err // Return the original business error.
	}

	// If the business logic completes without error, commit the transaction.
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
