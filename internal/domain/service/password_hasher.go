// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// Stored credentials are self-describing strings, so the concrete algorithm can
// change without invalidating credentials created by an earlier one.
type PasswordHasher interface {
	// Hash generates a salted credential from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether password matches the stored credential.
	// A malformed or unrecognised credential never matches.
	Check(password, hash string) bool

	// NeedsRehash reports whether the credential was produced by a scheme or
	// parameters other than the currently preferred ones.
	NeedsRehash(hash string) bool

	// ValidatePasswordStrength checks the password against the configured policy.
	ValidatePasswordStrength(password string) error
}
