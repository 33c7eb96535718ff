// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for salted password hashing and
// verification. This abstracts the underlying key-derivation function,
// keeping the domain pure.
type PasswordHasher interface {
	// Hash derives a salted hash from a plaintext password. It returns the
	// hash and the freshly generated salt, both base64-encoded; the pair must
	// always be stored together.
	Hash(password string) (hash string, salt string, err error)

	// Verify re-derives the hash for the plaintext with the stored salt and
	// compares it exactly against the stored hash. Malformed salt or hash
	// encodings yield false rather than an error, so corrupt stored
	// credentials are indistinguishable from a wrong password.
	Verify(password, hash, salt string) bool
}
