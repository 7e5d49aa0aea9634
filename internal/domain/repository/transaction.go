package repository

import "context"

// TransactionManager defines the interface for running multi-step operations
// atomically. Every check-then-act sequence in the services (uniqueness
// check then insert, existence check then write) goes through Execute so the
// checks cannot be invalidated by a concurrent request between check and act.
// The SQL implementation maps this to a database transaction; the in-memory
// implementation serializes Execute calls behind a process-wide mutex.
type TransactionManager interface {
	// Execute runs fn within one atomic scope. If fn returns an error the
	// scope is rolled back (where the backend supports it) and the error is
	// returned unchanged. All repository operations inside fn must go
	// through the supplied factory.
	Execute(ctx context.Context, fn func(repos RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to the current
// atomic scope.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current scope.
	UserRepo() UserRepository

	// PlaceRepo returns a PlaceRepository bound to the current scope.
	PlaceRepo() PlaceRepository

	// AmenityRepo returns an AmenityRepository bound to the current scope.
	AmenityRepo() AmenityRepository

	// ReviewRepo returns a ReviewRepository bound to the current scope.
	ReviewRepo() ReviewRepository
}
