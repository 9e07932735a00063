package auth

import (
	"strings"
	"sync"
	"testing"
	"time"

	"vitae/config"
	"vitae/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestTokenService(t *testing.T, opts ...TokenOption) (service.TokenService, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	svc, err := NewTokenService(testSecret, append([]TokenOption{WithClock(clock.Now)}, opts...)...)
	require.NoError(t, err)

	return svc, clock
}

func signWith(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc, clock := newTestTokenService(t)

	issued, err := svc.Issue("alice")
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.Equal(t, clock.Now().Add(2*time.Hour), issued.ExpiresAt.UTC())
	assert.Equal(t, 2*time.Hour, svc.TTL())

	result := svc.Validate(issued.Token)
	assert.True(t, result.Accepted())
	assert.Equal(t, "alice", result.Subject)
	assert.True(t, issued.ExpiresAt.Equal(result.ExpiresAt))
	assert.Equal(t, service.RejectionNone, result.Rejection)
}

func TestTokenService_Expiry(t *testing.T) {
	tests := []struct {
		name    string
		advance time.Duration
		want    service.Rejection
	}{
		{name: "just before expiry", advance: 2*time.Hour - time.Second, want: service.RejectionNone},
		{name: "at expiry", advance: 2 * time.Hour, want: service.RejectionExpired},
		{name: "after expiry", advance: 2*time.Hour + time.Second, want: service.RejectionExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, clock := newTestTokenService(t)

			issued, err := svc.Issue("alice")
			require.NoError(t, err)

			clock.Advance(tt.advance)
			result := svc.Validate(issued.Token)
			assert.Equal(t, tt.want, result.Rejection)
			if tt.want != service.RejectionNone {
				assert.Empty(t, result.Subject)
			}
		})
	}
}

func TestTokenService_ConfiguredTTL(t *testing.T) {
	svc, clock := newTestTokenService(t, WithTTL(15*time.Minute))

	issued, err := svc.Issue("alice")
	require.NoError(t, err)

	clock.Advance(15 * time.Minute)
	assert.Equal(t, service.RejectionExpired, svc.Validate(issued.Token).Rejection)
}

func TestTokenService_Rejections(t *testing.T) {
	svc, clock := newTestTokenService(t)
	now := clock.Now()
	exp := jwt.NewNumericDate(now.Add(time.Hour))

	other, err := NewTokenService(strings.Repeat("z", MinSecretLength), WithClock(clock.Now))
	require.NoError(t, err)
	foreign, err := other.Issue("alice")
	require.NoError(t, err)

	issued, err := svc.Issue("alice")
	require.NoError(t, err)
	forged, err := svc.Issue("mallory")
	require.NoError(t, err)
	parts := strings.Split(issued.Token, ".")
	forgedParts := strings.Split(forged.Token, ".")
	swappedPayload := parts[0] + "." + forgedParts[1] + "." + parts[2]

	tests := []struct {
		name  string
		token string
		want  service.Rejection
	}{
		{name: "other secret", token: foreign.Token, want: service.RejectionSignature},
		{name: "swapped payload", token: swappedPayload, want: service.RejectionSignature},
		{name: "truncated signature", token: parts[0] + "." + parts[1] + ".", want: service.RejectionSignature},
		{
			name:  "hs512",
			token: signWith(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.RegisteredClaims{Subject: "alice", ExpiresAt: exp}),
			want:  service.RejectionSignature,
		},
		{
			name:  "alg none",
			token: signWith(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.RegisteredClaims{Subject: "alice", ExpiresAt: exp}),
			want:  service.RejectionSignature,
		},
		{name: "empty", token: "", want: service.RejectionMalformed},
		{name: "garbage", token: "clearly-not-a-jwt-token-format", want: service.RejectionMalformed},
		{name: "bad base64", token: "a.b.c", want: service.RejectionMalformed},
		{
			name:  "missing subject",
			token: signWith(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{ExpiresAt: exp}),
			want:  service.RejectionMalformed,
		},
		{
			name:  "blank subject",
			token: signWith(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{Subject: "  ", ExpiresAt: exp}),
			want:  service.RejectionMalformed,
		},
		{
			name:  "missing exp",
			token: signWith(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{Subject: "alice"}),
			want:  service.RejectionMalformed,
		},
		{
			name:  "exp not a number",
			token: signWith(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "alice", "exp": "tomorrow"}),
			want:  service.RejectionMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result service.TokenValidation
			assert.NotPanics(t, func() {
				result = svc.Validate(tt.token)
			})
			assert.False(t, result.Accepted())
			assert.Equal(t, tt.want, result.Rejection, tt.want.String())
			assert.Empty(t, result.Subject)
		})
	}
}

func TestTokenService_Issuer(t *testing.T) {
	svc, clock := newTestTokenService(t, WithIssuer("vitae"))

	issued, err := svc.Issue("alice")
	require.NoError(t, err)
	assert.True(t, svc.Validate(issued.Token).Accepted())

	plain, err := NewTokenService(testSecret, WithClock(clock.Now))
	require.NoError(t, err)
	untagged, err := plain.Issue("alice")
	require.NoError(t, err)

	assert.Equal(t, service.RejectionMalformed, svc.Validate(untagged.Token).Rejection)
}

func TestTokenService_IssueRequiresIdentity(t *testing.T) {
	svc, _ := newTestTokenService(t)

	_, err := svc.Issue("")
	assert.ErrorIs(t, err, ErrTokenIdentityRequired)
}

func TestNewTokenService_Secret(t *testing.T) {
	_, err := NewTokenService("")
	assert.ErrorIs(t, err, ErrSecretRequired)

	_, err = NewTokenService("short")
	assert.ErrorIs(t, err, ErrSecretTooShort)

	svc, err := NewTokenService(testSecret)
	require.NoError(t, err)
	assert.Equal(t, DefaultTokenTTL, svc.TTL())
}

func TestNewJWTService(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{TokenTTL: 30 * time.Minute, TokenIssuer: "vitae"},
	}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, svc.TTL())

	issued, err := svc.Issue("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", svc.Validate(issued.Token).Subject)

	cfg.SecretKey.Access = ""
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}

func TestTokenService_ConcurrentUse(t *testing.T) {
	svc, _ := newTestTokenService(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			issued, err := svc.Issue("alice")
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, "alice", svc.Validate(issued.Token).Subject)
		}()
	}
	wg.Wait()
}
