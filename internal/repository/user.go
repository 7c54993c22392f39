package repository

import (
	"context"
	"errors"

	"github.com/tinyrecords/tinyrecords-go/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository holds the statically provisioned identities. The set is
// fixed after construction, so lookups need no locking.
type UserRepository struct {
	users map[string]model.User
}

// NewUserRepository creates a UserRepository seeded with the given users.
func NewUserRepository(users []model.User) *UserRepository {
	m := make(map[string]model.User, len(users))
	for _, u := range users {
		m[u.Email] = u
	}
	return &UserRepository{users: m}
}

// GetByEmail retrieves a user by their email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}
