package auth

import (
	"strings"
	"time"

	"vitae/config"
	"vitae/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	// DefaultTokenTTL is the session lifetime used when none is configured.
	DefaultTokenTTL = 2 * time.Hour

	// MinSecretLength is the shortest accepted HS256 signing secret, in bytes.
	MinSecretLength = 32
)

var (
	// ErrSecretRequired is returned when no signing secret is configured.
	ErrSecretRequired = errors.New("jwt signing secret must be provided")
	// ErrSecretTooShort is returned for secrets shorter than MinSecretLength.
	ErrSecretTooShort = errors.Errorf("jwt signing secret must be at least %d bytes", MinSecretLength)
	// ErrTokenIdentityRequired is returned when issuing a token for an empty identity.
	ErrTokenIdentityRequired = errors.New("token identity must not be empty")
)

// TokenOption configures a token service.
type TokenOption func(*jwtService)

// WithTTL sets the token lifetime. Non-positive values keep the default.
func WithTTL(ttl time.Duration) TokenOption {
	return func(s *jwtService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithIssuer sets the iss claim on issued tokens and requires it on validation.
func WithIssuer(issuer string) TokenOption {
	return func(s *jwtService) {
		s.issuer = issuer
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) TokenOption {
	return func(s *jwtService) {
		if now != nil {
			s.now = now
		}
	}
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
// It holds no mutable state after construction and is safe for concurrent use.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
	parser *jwt.Parser
}

// NewJWTService is the fx constructor reading the secret and token settings from configuration.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	opts := []TokenOption{}
	if cfg.Auth != nil {
		opts = append(opts, WithTTL(cfg.Auth.TokenTTL), WithIssuer(cfg.Auth.TokenIssuer))
	}

	return NewTokenService(cfg.SecretKey.Access, opts...)
}

// NewTokenService creates a token service signing with secret.
func NewTokenService(secret string, opts ...TokenOption) (service.TokenService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrSecretRequired
	}
	if len(secret) < MinSecretLength {
		return nil, ErrSecretTooShort
	}

	s := &jwtService{
		secret: []byte(secret),
		ttl:    DefaultTokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(s.issuer))
	}
	s.parser = jwt.NewParser(parserOpts...)

	return s, nil
}

// Issue signs a token for identity that expires TTL from now.
func (s *jwtService) Issue(identity string) (*service.IssuedToken, error) {
	if strings.TrimSpace(identity) == "" {
		return nil, ErrTokenIdentityRequired
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   identity,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "sign token")
	}

	return &service.IssuedToken{
		Token:     signed,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Validate checks signature, algorithm, and claims. It never returns an error;
// every failure is reported as a rejection.
func (s *jwtService) Validate(tokenString string) service.TokenValidation {
	claims := &jwt.RegisteredClaims{}

	_, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return service.TokenValidation{Rejection: rejectionFor(err)}
	}

	if strings.TrimSpace(claims.Subject) == "" || claims.ExpiresAt == nil {
		return service.TokenValidation{Rejection: service.RejectionMalformed}
	}

	return service.TokenValidation{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}
}

// TTL returns the configured token lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}

func rejectionFor(err error) service.Rejection {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return service.RejectionSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.RejectionExpired
	default:
		return service.RejectionMalformed
	}
}
