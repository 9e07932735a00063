// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"

	"vitae/config"
	"vitae/internal/domain/service"

	"github.com/pkg/errors"
)

// Scheme names accepted by auth.hashScheme.
const (
	SchemeArgon2id     = "argon2id"
	SchemeBcrypt       = "bcrypt"
	SchemePBKDF2SHA256 = "pbkdf2-sha256"
)

// scheme is one self-describing password hashing algorithm.
type scheme interface {
	name() string
	identifies(hash string) bool
	hash(password string) (string, error)
	check(password, hash string) bool
	needsRehash(hash string) bool
}

// credentialHasher hashes with one preferred scheme and verifies any known scheme,
// picking the verifier from the prefix of the stored credential.
type credentialHasher struct {
	preferred scheme
	schemes   []scheme
	policy    *passwordPolicy
}

// NewCredentialHasher builds the PasswordHasher described by the auth and
// passwordStrength configuration sections.
func NewCredentialHasher(cfg *config.Config) (service.PasswordHasher, error) {
	authCfg := cfg.Auth
	if authCfg == nil {
		authCfg = &config.AuthConfig{}
	}

	var preferred scheme
	switch strings.ToLower(strings.TrimSpace(authCfg.HashScheme)) {
	case SchemeArgon2id, "":
		preferred = newArgon2Scheme(Argon2Params{
			Memory:      authCfg.Argon2.Memory,
			Iterations:  authCfg.Argon2.Iterations,
			Parallelism: authCfg.Argon2.Parallelism,
			SaltLength:  authCfg.Argon2.SaltLength,
			KeyLength:   authCfg.Argon2.KeyLength,
		})
	case SchemeBcrypt:
		preferred = newBcryptScheme(authCfg.BcryptCost)
	case SchemePBKDF2SHA256, "pbkdf2_sha256":
		preferred = newPBKDF2Scheme(authCfg.PBKDF2Rounds)
	default:
		return nil, errors.Errorf("unknown password hash scheme: %s", authCfg.HashScheme)
	}

	return newCredentialHasher(preferred, newPasswordPolicy(cfg.PasswordStrength)), nil
}

// NewArgon2Hasher returns a hasher that prefers argon2id with the given parameters.
func NewArgon2Hasher(params Argon2Params) service.PasswordHasher {
	return newCredentialHasher(newArgon2Scheme(params), newPasswordPolicy(nil))
}

// NewBcryptHasher returns a hasher that prefers bcrypt at the default cost.
func NewBcryptHasher() service.PasswordHasher {
	return NewBcryptHasherWithCost(0)
}

// NewBcryptHasherWithCost returns a hasher that prefers bcrypt at the given cost.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return newCredentialHasher(newBcryptScheme(cost), newPasswordPolicy(nil))
}

// NewPBKDF2Hasher returns a hasher that prefers pbkdf2-sha256 with the given round count.
func NewPBKDF2Hasher(rounds int) service.PasswordHasher {
	return newCredentialHasher(newPBKDF2Scheme(rounds), newPasswordPolicy(nil))
}

func newCredentialHasher(preferred scheme, policy *passwordPolicy) *credentialHasher {
	schemes := []scheme{preferred}
	for _, s := range []scheme{
		newArgon2Scheme(Argon2Params{}),
		newBcryptScheme(0),
		newPBKDF2Scheme(0),
	} {
		if s.name() != preferred.name() {
			schemes = append(schemes, s)
		}
	}

	return &credentialHasher{
		preferred: preferred,
		schemes:   schemes,
		policy:    policy,
	}
}

// Hash generates a salted credential using the preferred scheme.
func (h *credentialHasher) Hash(password string) (string, error) {
	hash, err := h.preferred.hash(password)
	if err != nil {
		return "", errors.Wrapf(err, "hash password with %s", h.preferred.name())
	}

	return hash, nil
}

// Check compares a plaintext password with a stored credential of any known scheme.
func (h *credentialHasher) Check(password, hash string) bool {
	s := h.lookup(hash)
	if s == nil {
		return false
	}

	return s.check(password, hash)
}

// NeedsRehash reports whether hash should be replaced by a fresh preferred-scheme credential.
func (h *credentialHasher) NeedsRehash(hash string) bool {
	s := h.lookup(hash)
	if s == nil || s.name() != h.preferred.name() {
		return true
	}

	return s.needsRehash(hash)
}

// ValidatePasswordStrength checks the password against the configured policy.
func (h *credentialHasher) ValidatePasswordStrength(password string) error {
	return h.policy.validate(password)
}

func (h *credentialHasher) lookup(hash string) scheme {
	for _, s := range h.schemes {
		if s.identifies(hash) {
			return s
		}
	}

	return nil
}
