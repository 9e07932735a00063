package usecase

import (
	"context"
	"io"

	"vitae/internal/domain/entity"
	"vitae/internal/domain/service"
)

// ProfileOutput is the owner's view of a profile, with stored files resolved to URLs.
type ProfileOutput struct {
	User      *entity.User
	PhotoURL  string
	ResumeURL string
}

// PublicProfileOutput is the anonymous view of a profile.
type PublicProfileOutput struct {
	Profile   *entity.PublicProfile
	PhotoURL  string
	ResumeURL string
}

// UpdateProfileInput carries a partial profile update. Nil fields are left unchanged.
type UpdateProfileInput struct {
	User  *entity.User // Authenticated owner; its row is re-read inside the update transaction.
	Phone *string
	Bio   *string
}

// UploadFileInput describes a file uploaded into one of the profile slots.
type UploadFileInput struct {
	User        *entity.User
	Kind        entity.FileKind
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadFileOutput reports where the uploaded file is now served.
type UploadFileOutput struct {
	Key     string
	URL     string
	Profile *ProfileOutput
}

// ProfileUsecase defines the profile read, edit, upload and share operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, user *entity.User) (*ProfileOutput, error)
	GetPublicProfile(ctx context.Context, username string) (*PublicProfileOutput, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*ProfileOutput, error)
	UploadFile(ctx context.Context, input *UploadFileInput) (*UploadFileOutput, error)
	OpenFile(ctx context.Context, key string) (*service.StoredObject, error)
	ShareQR(ctx context.Context, user *entity.User) ([]byte, error)
}
