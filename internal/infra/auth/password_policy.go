package auth

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"vitae/config"
	domainerrors "vitae/internal/domain/errors"
)

var forbiddenPasswordWords = []string{"password", "admin", "qwerty", "123456", "letmein"}

// passwordPolicy enforces the passwordStrength configuration.
type passwordPolicy struct {
	cfg config.PasswordStrengthConfig
}

func newPasswordPolicy(cfg *config.PasswordStrengthConfig) *passwordPolicy {
	policy := &passwordPolicy{cfg: config.PasswordStrengthConfig{MinLength: 8, MaxLength: 72}}
	if cfg != nil {
		policy.cfg = *cfg
	}
	if policy.cfg.MinLength <= 0 {
		policy.cfg.MinLength = 8
	}

	return policy
}

func (p *passwordPolicy) validate(password string) error {
	if utf8.RuneCountInString(password) < p.cfg.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password must be at least " + strconv.Itoa(p.cfg.MinLength) + " characters long")
	}
	if p.cfg.MaxLength > 0 && len(password) > p.cfg.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password must not exceed " + strconv.Itoa(p.cfg.MaxLength) + " bytes")
	}
	if p.cfg.RequireLowercase && !containsRune(password, unicode.IsLower) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one lowercase letter")
	}
	if p.cfg.RequireUppercase && !containsRune(password, unicode.IsUpper) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one uppercase letter")
	}
	if p.cfg.RequireNumbers && !containsRune(password, unicode.IsDigit) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one number")
	}
	if p.cfg.RequireSpecial && !containsRune(password, isSpecial) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one special character")
	}
	if containsForbiddenWords(password, forbiddenPasswordWords) {
		return domainerrors.ErrPasswordForbiddenWords
	}

	return nil
}

func containsRune(s string, pred func(rune) bool) bool {
	return strings.IndexFunc(s, pred) >= 0
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func containsForbiddenWords(password string, words []string) bool {
	lower := strings.ToLower(password)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}
