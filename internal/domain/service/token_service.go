package service

import "time"

// Rejection explains why a token was not accepted.
type Rejection int

const (
	// RejectionNone means the token was accepted.
	RejectionNone Rejection = iota
	// RejectionSignature covers a bad signature, a foreign key, and a disallowed algorithm.
	RejectionSignature
	// RejectionMalformed covers undecodable tokens and missing or invalid claims.
	RejectionMalformed
	// RejectionExpired means the expiration instant is at or before the current time.
	RejectionExpired
)

func (r Rejection) String() string {
	switch r {
	case RejectionNone:
		return "none"
	case RejectionSignature:
		return "signature"
	case RejectionMalformed:
		return "malformed"
	case RejectionExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// TokenValidation is the outcome of validating a session token.
// Subject and ExpiresAt are only meaningful when the token was accepted.
type TokenValidation struct {
	Subject   string
	ExpiresAt time.Time
	Rejection Rejection
}

// Accepted reports whether the token may be trusted.
func (v TokenValidation) Accepted() bool {
	return v.Rejection == RejectionNone
}

// IssuedToken is a freshly signed session token.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenService issues and validates stateless session tokens.
type TokenService interface {
	// Issue signs a token binding identity until now + TTL.
	Issue(identity string) (*IssuedToken, error)

	// Validate never fails; rejection is reported through the result.
	Validate(token string) TokenValidation

	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
