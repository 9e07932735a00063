package handler

import (
	"time"

	"vitae/internal/usecase"

	"github.com/google/uuid"
)

// SignupRequest is the body of signup, accepted as JSON or form data.
type SignupRequest struct {
	Username string `json:"username" form:"username" mod:"trim" validate:"required,max=64,username"`
	Password string `json:"password" form:"password" validate:"required"`
}

// CredentialsRequest is the body of login. Usernames are not pattern-checked here
// so a malformed name fails like any unknown one.
type CredentialsRequest struct {
	Username string `json:"username" form:"username" mod:"trim" validate:"required,max=64"`
	Password string `json:"password" form:"password" validate:"required"`
}

// UpdateProfileRequest is a partial profile update; omitted fields are left unchanged.
type UpdateProfileRequest struct {
	Phone *string `json:"phone" form:"phone" validate:"omitnil,max=32"`
	Bio   *string `json:"bio" form:"bio" validate:"omitnil,max=2000"`
}

// UserResponse is an account as returned to its owner.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Phone     string    `json:"phone"`
	Bio       string    `json:"bio"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	ResumeURL string    `json:"resume_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicProfileResponse is a profile as shown to anyone.
type PublicProfileResponse struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	PhotoURL  string `json:"photo_url,omitempty"`
	ResumeURL string `json:"resume_url,omitempty"`
}

// TokenResponse carries a freshly issued session token.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// UploadResponse reports where an uploaded file is served.
type UploadResponse struct {
	URL     string        `json:"url"`
	Profile *UserResponse `json:"profile"`
}

func toUserResponse(output *usecase.ProfileOutput) *UserResponse {
	return &UserResponse{
		ID:        output.User.ID,
		Username:  output.User.Username,
		Phone:     output.User.Phone,
		Bio:       output.User.Bio,
		PhotoURL:  output.PhotoURL,
		ResumeURL: output.ResumeURL,
		CreatedAt: output.User.CreatedAt,
		UpdatedAt: output.User.UpdatedAt,
	}
}

func toPublicProfileResponse(output *usecase.PublicProfileOutput) *PublicProfileResponse {
	return &PublicProfileResponse{
		Username:  output.Profile.Username,
		Bio:       output.Profile.Bio,
		PhotoURL:  output.PhotoURL,
		ResumeURL: output.ResumeURL,
	}
}
