package memory

import (
	"context"

	"homestay/internal/domain/entity"
	"homestay/internal/domain/repository"

	"github.com/google/uuid"
)

type userRecord = entity.User

func cloneUser(u *entity.User) *entity.User {
	clone := *u

	return &clone
}

type userRepository struct {
	store *Store
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user.ID = assignID(user.ID)
	if _, exists := r.store.users[user.ID]; exists {
		return repository.ErrDuplicateID
	}

	user.CreatedAt = now()
	user.UpdatedAt = user.CreatedAt
	r.store.users[user.ID] = cloneUser(user)

	return nil
}

func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *userRepository) List(_ context.Context) ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]*entity.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		users = append(users, cloneUser(user))
	}

	return users, nil
}

func (r *userRepository) Update(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.users[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}

	user.CreatedAt = stored.CreatedAt
	user.UpdatedAt = now()
	r.store.users[user.ID] = cloneUser(user)

	return nil
}

func (r *userRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.store.users, id)

	return nil
}
