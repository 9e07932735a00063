package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenValidation_Accepted(t *testing.T) {
	assert.True(t, TokenValidation{Subject: "alice"}.Accepted())
	assert.False(t, TokenValidation{Rejection: RejectionExpired}.Accepted())
	assert.False(t, TokenValidation{Subject: "alice", Rejection: RejectionSignature}.Accepted())
}

func TestRejection_String(t *testing.T) {
	assert.Equal(t, "none", RejectionNone.String())
	assert.Equal(t, "signature", RejectionSignature.String())
	assert.Equal(t, "malformed", RejectionMalformed.String())
	assert.Equal(t, "expired", RejectionExpired.String())
	assert.Equal(t, "unknown", Rejection(42).String())
}
