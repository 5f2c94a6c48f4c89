package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// VendorProfileRepo returns a VendorProfileRepository bound to the current transaction.
	VendorProfileRepo() VendorProfileRepository

	// CustomerProfileRepo returns a CustomerProfileRepository bound to the current transaction.
	CustomerProfileRepo() CustomerProfileRepository

	// ServiceRepo returns a ServiceRepository bound to the current transaction.
	ServiceRepo() ServiceRepository

	// OperatingHoursRepo returns an OperatingHoursRepository bound to the current transaction.
	OperatingHoursRepo() OperatingHoursRepository

	// BusinessLocationRepo returns a BusinessLocationRepository bound to the current transaction.
	BusinessLocationRepo() BusinessLocationRepository

	// SocialMediaRepo returns a SocialMediaRepository bound to the current transaction.
	SocialMediaRepo() SocialMediaRepository

	// SearchPreferenceRepo returns a SearchPreferenceRepository bound to the current transaction.
	SearchPreferenceRepo() SearchPreferenceRepository
}
