package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to group multi-document writes into one
// atomic unit without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations obtained from the
	// factory use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	// CustomerRepo returns a CustomerRepository bound to the current transaction.
	CustomerRepo() CustomerRepository

	// CartRepo returns a CartRepository bound to the current transaction.
	CartRepo() CartRepository

	// OrderRepo returns an OrderRepository bound to the current transaction.
	OrderRepo() OrderRepository

	// AddressRepo returns an AddressRepository bound to the current transaction.
	AddressRepo() AddressRepository

	// ProductRepo returns a ProductRepository bound to the current transaction.
	ProductRepo() ProductRepository

	// CategoryRepo returns a CategoryRepository bound to the current transaction.
	CategoryRepo() CategoryRepository

	// SettingsRepo returns a SettingsRepository bound to the current transaction.
	SettingsRepo() SettingsRepository
}
