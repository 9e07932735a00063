package auth

import (
	"strings"

	domainerrors "vitae/internal/domain/errors"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcryptScheme produces modular-crypt bcrypt strings ($2a$/$2b$/$2y$).
// bcrypt handles salt generation and constant-time comparison itself.
type bcryptScheme struct {
	cost int
}

func newBcryptScheme(cost int) *bcryptScheme {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptScheme{cost: cost}
}

func (s *bcryptScheme) name() string {
	return SchemeBcrypt
}

func (s *bcryptScheme) identifies(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") ||
		strings.HasPrefix(hash, "$2b$") ||
		strings.HasPrefix(hash, "$2y$")
}

func (s *bcryptScheme) hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domainerrors.ErrPasswordStrength.WithDetails("password must not exceed 72 bytes")
	}
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(bytes), nil
}

func (s *bcryptScheme) check(password, hash string) bool {
	// Each cost step doubles the work; two steps match the argon2 headroom.
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil || cost > max(s.cost, bcrypt.DefaultCost)+2 {
		return false
	}

	// err is nil only if the password and hash match.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *bcryptScheme) needsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return true
	}

	return cost < s.cost
}
