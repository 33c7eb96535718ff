// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential record the user directory holds for one account.
// PasswordHash and PasswordSalt are base64-encoded text and are only ever
// written together: a hash is meaningless without the salt it was derived
// with, and the salt is regenerated on every password set or reset.
type User struct {
	ID                uuid.UUID // Immutable unique identifier, assigned at creation.
	Email             string    // Unique lookup key, matched case-insensitively.
	PasswordHash      string    // Base64-encoded derived key. Paired with PasswordSalt.
	PasswordSalt      string    // Base64-encoded per-account random salt.
	Role              Role      // Routes post-login behavior; carried through untouched by this core.
	DisplayName       string    // Name shown in the client after login.
	PhoneNumber       string
	Address           string
	ProfilePictureURL string
	IsActive          bool // Gate independent of credential correctness. Inactive accounts never authenticate.
	CreatedAt         time.Time
}
