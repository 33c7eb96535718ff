// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"campus/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the user-directory collaborator: the authentication core
// reads credential records through it and never writes them. Writes exist
// only for the external seeding/admin path.
type UserRepository interface {
	// FindByEmail retrieves a credential record by email address.
	// The match is case-insensitive and exact; ErrUserNotFound is returned
	// when no record matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// HasAny reports whether the directory contains any users at all.
	HasAny(ctx context.Context) (bool, error)

	// Create persists a new user record, including its credential pair.
	Create(ctx context.Context, user *entity.User) error
}
