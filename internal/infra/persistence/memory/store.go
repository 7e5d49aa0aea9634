// Package memory provides map-backed implementations of the domain
// repositories. It serves as the default backend for local development and
// as the fixture store for the service tests; the postgres package is the
// production counterpart.
package memory

import (
	"context"
	"sync"
	"time"

	"homestay/internal/domain/repository"

	"github.com/google/uuid"
)

// Store holds every entity table behind a single RWMutex. Repositories copy
// entities on the way in and out, so callers never share memory with the
// store's own records.
type Store struct {
	mu sync.RWMutex

	users     map[uuid.UUID]*userRecord
	places    map[uuid.UUID]*placeRecord
	amenities map[uuid.UUID]*amenityRecord
	reviews   map[uuid.UUID]*reviewRecord

	// txMu serializes Execute calls so check-then-act sequences inside a
	// transaction cannot interleave.
	txMu sync.Mutex
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		users:     make(map[uuid.UUID]*userRecord),
		places:    make(map[uuid.UUID]*placeRecord),
		amenities: make(map[uuid.UUID]*amenityRecord),
		reviews:   make(map[uuid.UUID]*reviewRecord),
	}
}

// UserRepo returns the store's user repository.
func (s *Store) UserRepo() repository.UserRepository { return &userRepository{store: s} }

// PlaceRepo returns the store's place repository.
func (s *Store) PlaceRepo() repository.PlaceRepository { return &placeRepository{store: s} }

// AmenityRepo returns the store's amenity repository.
func (s *Store) AmenityRepo() repository.AmenityRepository { return &amenityRepository{store: s} }

// ReviewRepo returns the store's review repository.
func (s *Store) ReviewRepo() repository.ReviewRepository { return &reviewRepository{store: s} }

// transactionManager serializes multi-step operations against one Store.
// There is no rollback: a failed step may leave earlier steps applied, which
// is acceptable for the development backend because the services order their
// writes after all checks.
type transactionManager struct {
	store *Store
}

// NewTransactionManager creates a TransactionManager over the given store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repos repository.RepositoryFactory) error) error {
	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(tm.store)
}

// assignID fills in a generated identifier unless the caller supplied one.
func assignID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}

	return id
}

func now() time.Time {
	return time.Now().UTC()
}
