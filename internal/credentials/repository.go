package credentials

import (
	"context"
)

type Repository interface {
	// Create inserts user. A taken email yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *User) error
	// FindByCredentials matches on the (email, password hash) pair.
	// No match yields common.ErrorNotFound.
	FindByCredentials(ctx context.Context, email, passwordHash string) (*Profile, error)
}
