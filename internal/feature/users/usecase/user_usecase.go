package usecase

import (
	"context"

	"user_service/internal/feature/users/domain/entity"
)

// CreateUserParams carries the validated input for creating a user.
type CreateUserParams struct {
	Name  string
	Email string
}

// UpdateUserParams carries an optional set of fields for a partial update.
// A nil field is left unchanged; clearing a field to empty is not supported.
type UpdateUserParams struct {
	Name  *string
	Email *string
}

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase) rather than the provider (adapters).
//
// Implementations report absence, never domain errors: a lookup that
// matches nothing returns (nil, nil), a delete that removes nothing
// returns (false, nil), and a malformed identifier behaves exactly like
// an unmatched one. Only store failures surface as errors.
type UserRepository interface {
	// Create persists a new user and returns it with its assigned ID.
	Create(ctx context.Context, params CreateUserParams) (*entity.User, error)

	// FindByEmail retrieves the user holding the exact email, if any.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user with the given ID, if any.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// List returns all users in store order.
	List(ctx context.Context) ([]entity.User, error)

	// Delete removes the user with the given ID and reports whether
	// exactly one user was removed.
	Delete(ctx context.Context, id string) (bool, error)

	// Update applies only the fields present in params and returns the
	// resulting user, or nil if the ID matches nothing. Empty params
	// return the current state unchanged.
	Update(ctx context.Context, id string, params UpdateUserParams) (*entity.User, error)
}

// userUsecase implements the user management business logic. It is
// stateless; all persistent state lives behind the repository.
type userUsecase struct {
	users UserRepository
}

// NewUserUsecase creates a new instance of userUsecase.
func NewUserUsecase(users UserRepository) *userUsecase {
	return &userUsecase{users: users}
}

// CreateUser registers a new user after checking that the email is not
// already taken. The check and the insert are separate round trips; two
// concurrent calls with the same email can both pass the check, and the
// store carries no unique index to catch that.
func (u *userUsecase) CreateUser(ctx context.Context, params CreateUserParams) (*entity.User, error) {
	existing, err := u.users.FindByEmail(ctx, params.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}
	return u.users.Create(ctx, params)
}

// ListUsers returns all users in the order the store yields them.
func (u *userUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	return u.users.List(ctx)
}

// GetUser retrieves a single user by ID.
func (u *userUsecase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// DeleteUser removes a single user by ID.
func (u *userUsecase) DeleteUser(ctx context.Context, id string) error {
	deleted, err := u.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

// UpdateUser applies a partial update. An email already held by a
// different user is rejected; updating a user to its own current email
// is allowed.
func (u *userUsecase) UpdateUser(ctx context.Context, id string, params UpdateUserParams) (*entity.User, error) {
	if params.Email != nil {
		existing, err := u.users.FindByEmail(ctx, *params.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrEmailAlreadyExists
		}
	}
	user, err := u.users.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
