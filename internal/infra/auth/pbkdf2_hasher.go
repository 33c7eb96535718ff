// Package auth provides implementations for authentication-related domain services.
package auth

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"

	"campus/internal/domain/service"
	"campus/internal/errors"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize   = 16
	keySize    = 32
	iterations = 10000
)

type pbkdf2Hasher struct{}

// NewPBKDF2Hasher creates a PasswordHasher backed by PBKDF2 with HMAC-SHA256.
// The iteration count is fixed; stored credentials carry no parameter
// metadata, so changing it invalidates every existing hash.
func NewPBKDF2Hasher() service.PasswordHasher {
	return &pbkdf2Hasher{}
}

// Hash derives a 32-byte key from the password with a fresh 16-byte random
// salt. Hash and salt are returned base64-encoded.
func (h *pbkdf2Hasher) Hash(password string) (string, string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", "", errors.Wrap(err, "failed to generate salt")
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, keySize, sha256.New)

	return base64.StdEncoding.EncodeToString(key), base64.StdEncoding.EncodeToString(salt), nil
}

// Verify re-derives the key with the stored salt and compares it against the
// stored hash. Any decoding failure means the stored credential cannot match,
// so it reports false instead of surfacing an error.
func (h *pbkdf2Hasher) Verify(password, hash, salt string) bool {
	storedKey, err := base64.StdEncoding.DecodeString(hash)
	if err != nil {
		return false
	}

	saltBytes, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return false
	}

	key := pbkdf2.Key([]byte(password), saltBytes, iterations, keySize, sha256.New)

	return bytes.Equal(key, storedKey)
}
