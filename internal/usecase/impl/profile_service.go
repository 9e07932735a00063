package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"vitae/config"
	deliverycontext "vitae/internal/delivery/context"
	"vitae/internal/domain/entity"
	domainerrors "vitae/internal/domain/errors"
	"vitae/internal/domain/repository"
	"vitae/internal/domain/service"
	"vitae/internal/usecase"
	"vitae/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	storage   service.FileStorage
	qrcode    service.QRCodeService
	publisher service.EventPublisher
	maxSizes  map[entity.FileKind]int64
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Storage   service.FileStorage
	QRCode    service.QRCodeService
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	maxSizes := map[entity.FileKind]int64{}
	if params.Config != nil && params.Config.Upload != nil {
		maxSizes[entity.FileKindPhoto] = params.Config.Upload.MaxPhotoSize
		maxSizes[entity.FileKindResume] = params.Config.Upload.MaxResumeSize
	}

	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		storage:   params.Storage,
		qrcode:    params.QRCode,
		publisher: params.Publisher,
		maxSizes:  maxSizes,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the full profile of the authenticated user, phone included.
func (srv *profileService) GetProfile(_ context.Context, user *entity.User) (*usecase.ProfileOutput, error) {
	if user == nil {
		return nil, domainerrors.ErrAccountUnavailable
	}

	return srv.profileOutput(user), nil
}

// GetPublicProfile returns the fields of username that anyone may see.
func (srv *profileService) GetPublicProfile(ctx context.Context, username string) (*usecase.PublicProfileOutput, error) {
	user, err := srv.findUser(ctx, srv.userRepo, username)
	if err != nil {
		return nil, err
	}

	return &usecase.PublicProfileOutput{
		Profile:   user.Public(),
		PhotoURL:  srv.storage.URL(user.Photo),
		ResumeURL: srv.storage.URL(user.Resume),
	}, nil
}

// UpdateProfile applies the non-nil fields of input.
func (srv *profileService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*usecase.ProfileOutput, error) {
	var updated *entity.User
	var changed []string

	if input.User == nil {
		return nil, domainerrors.ErrAccountUnavailable
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := srv.findUserByID(ctx, userRepo, input.User.ID)
		if err != nil {
			return err
		}

		if input.Phone != nil && *input.Phone != user.Phone {
			user.Phone = *input.Phone
			changed = append(changed, "phone")
		}
		if input.Bio != nil && *input.Bio != user.Bio {
			user.Bio = *input.Bio
			changed = append(changed, "bio")
		}
		updated = user

		if len(changed) == 0 {
			return nil
		}

		return errors.Wrap(userRepo.Update(ctx, user), "failed to update profile")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	if len(changed) > 0 {
		srv.log(ctx).Info("Profile updated", slog.Any("userID", updated.ID), slog.Any("fields", changed))
		publishAccountEvent(ctx, srv.publisher, srv.log(ctx), updated, entity.AccountEventProfileUpdated, changed...)
	}

	return srv.profileOutput(updated), nil
}

// UploadFile stores a new photo or resume and points the profile at it.
// The previous file of the same slot is removed once the profile no longer references it.
func (srv *profileService) UploadFile(ctx context.Context, input *usecase.UploadFileInput) (*usecase.UploadFileOutput, error) {
	if input.User == nil {
		return nil, domainerrors.ErrAccountUnavailable
	}
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown upload kind: " + string(input.Kind))
	}

	ext, ok := input.Kind.Extension(input.ContentType)
	if !ok {
		return nil, domainerrors.ErrUnsupportedFileType.WithDetails(input.ContentType + " is not accepted for " + string(input.Kind))
	}

	maxSize := srv.maxSizes[input.Kind]
	if maxSize > 0 && input.Size > maxSize {
		return nil, fileTooLarge(input.Kind, maxSize)
	}

	key := input.Kind.ObjectKey(input.User.ID.String(), uuid.NewString(), ext)

	content := input.Content
	if maxSize > 0 {
		content = &sizeLimitedReader{r: input.Content, remaining: maxSize}
	}
	if err := srv.storage.Put(ctx, key, input.ContentType, content); err != nil {
		if errors.Is(err, domainerrors.ErrFileTooLarge) {
			return nil, fileTooLarge(input.Kind, maxSize)
		}

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	var previous string
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		current, err := srv.findUserByID(ctx, userRepo, input.User.ID)
		if err != nil {
			return err
		}

		previous = current.FileKey(input.Kind)
		current.SetFileKey(input.Kind, key)
		updated = current

		return errors.Wrap(userRepo.Update(ctx, current), "failed to attach upload")
	})
	if err != nil {
		srv.removeObject(ctx, key)

		return nil, errors.Wrap(err, "failed to execute upload transaction")
	}

	if previous != "" && previous != key {
		srv.removeObject(ctx, previous)
	}

	srv.log(ctx).Info("File uploaded",
		slog.Any("userID", updated.ID),
		slog.String("kind", string(input.Kind)),
		slog.String("key", key),
	)
	publishAccountEvent(ctx, srv.publisher, srv.log(ctx), updated, entity.AccountEventProfileUpdated, string(input.Kind))

	return &usecase.UploadFileOutput{
		Key:     key,
		URL:     srv.storage.URL(key),
		Profile: srv.profileOutput(updated),
	}, nil
}

// OpenFile opens a stored upload for streaming.
func (srv *profileService) OpenFile(ctx context.Context, key string) (*service.StoredObject, error) {
	obj, err := srv.storage.Open(ctx, strings.TrimPrefix(key, "/"))
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return nil, domainerrors.ErrFileNotFound
		}

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	return obj, nil
}

// ShareQR renders a QR code linking to the public profile of the authenticated user.
func (srv *profileService) ShareQR(_ context.Context, user *entity.User) ([]byte, error) {
	if user == nil {
		return nil, domainerrors.ErrAccountUnavailable
	}

	png, err := srv.qrcode.GenerateProfileQR(user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate profile QR code")
	}

	return png, nil
}

func (srv *profileService) findUser(ctx context.Context, userRepo repository.UserRepository, username string) (*entity.User, error) {
	user, err := userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, username)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// findUserByID re-reads the authenticated user's row, so writes apply to its current state.
func (srv *profileService) findUserByID(ctx context.Context, userRepo repository.UserRepository, id uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountUnavailable, id.String())
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *profileService) profileOutput(user *entity.User) *usecase.ProfileOutput {
	return &usecase.ProfileOutput{
		User:      user,
		PhotoURL:  srv.storage.URL(user.Photo),
		ResumeURL: srv.storage.URL(user.Resume),
	}
}

func (srv *profileService) removeObject(ctx context.Context, key string) {
	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete stored file", slog.String("key", key), slog.Any("error", err))
	}
}

func fileTooLarge(kind entity.FileKind, maxSize int64) error {
	return domainerrors.ErrFileTooLarge.WithDetails(string(kind) + " must not exceed " + util.FormatBytes(maxSize))
}

// sizeLimitedReader fails with ErrFileTooLarge once more than remaining bytes were read.
type sizeLimitedReader struct {
	r         io.Reader
	remaining int64
}

func (l *sizeLimitedReader) Read(p []byte) (int, error) {
	if int64(len(p)) > l.remaining+1 {
		p = p[:l.remaining+1]
	}

	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		return n, domainerrors.ErrFileTooLarge
	}

	return n, err
}
