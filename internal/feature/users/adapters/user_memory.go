package adapters

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"user_service/internal/feature/users/domain/entity"
	"user_service/internal/feature/users/usecase"
)

// userMemory is an in-memory implementation of the UserRepository
// interface. It keeps the same absence and merge semantics as userMongo
// and lets the service be exercised without a running store.
type userMemory struct {
	mu    sync.Mutex
	users map[string]entity.User
}

// Compile-time check that userMemory implements UserRepository.
var _ usecase.UserRepository = (*userMemory)(nil)

// NewUserMemory creates an empty in-memory repository.
func NewUserMemory() *userMemory {
	return &userMemory{users: make(map[string]entity.User)}
}

// Create stores a new user under a freshly generated ID.
func (r *userMemory) Create(ctx context.Context, params usecase.CreateUserParams) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user := entity.User{ID: uuid.NewString(), Name: params.Name, Email: params.Email}
	r.users[user.ID] = user
	return &user, nil
}

// FindByEmail scans for a user with the exact email.
func (r *userMemory) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, nil
}

// FindByID looks up a user by ID.
func (r *userMemory) FindByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// List returns all users, order unspecified.
func (r *userMemory) List(ctx context.Context) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]entity.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

// Delete removes a user and reports whether it existed.
func (r *userMemory) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

// Update merges only the supplied fields into the stored user.
func (r *userMemory) Update(ctx context.Context, id string, params usecase.UpdateUserParams) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	if params.Name != nil {
		user.Name = *params.Name
	}
	if params.Email != nil {
		user.Email = *params.Email
	}
	r.users[id] = user
	return &user, nil
}
