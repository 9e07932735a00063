package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"vitae/config"
	"vitae/internal/domain/entity"
	domainerrors "vitae/internal/domain/errors"
	"vitae/internal/domain/repository"
	"vitae/internal/domain/service"
	mockRepo "vitae/internal/mocks/repository"
	mockSvc "vitae/internal/mocks/service"
	"vitae/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service    usecase.ProfileUsecase
	txManager  *mockRepo.MockTransactionManager
	userRepo   *mockRepo.MockUserRepository
	txUserRepo *mockRepo.MockUserRepository
	storage    *mockSvc.MockFileStorage
	qrcode     *mockSvc.MockQRCodeService
	publisher  *mockSvc.MockEventPublisher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	f := profileServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		txUserRepo: mockRepo.NewMockUserRepository(t),
		storage:    mockSvc.NewMockFileStorage(t),
		qrcode:     mockSvc.NewMockQRCodeService(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
	}

	f.storage.EXPECT().URL(mock.Anything).RunAndReturn(func(key string) string {
		if key == "" {
			return ""
		}

		return "/uploads/" + key
	}).Maybe()

	f.service = NewProfileService(ProfileServiceParams{
		TxManager: f.txManager,
		UserRepo:  f.userRepo,
		Storage:   f.storage,
		QRCode:    f.qrcode,
		Publisher: f.publisher,
		Config: &config.Config{Upload: &config.UploadConfig{
			MaxPhotoSize:  16,
			MaxResumeSize: 32,
		}},
		Logger: newDiscardLogger(),
	})

	return f
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "stored",
		Phone:        "+1 555 0100",
		Bio:          "hello",
		Photo:        "photo/owner/old.png",
	}
}

func TestProfileService_GetProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := newTestUser()

	output, err := fx.service.GetProfile(ctx, user)

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, "/uploads/photo/owner/old.png", output.PhotoURL)
	assert.Empty(t, output.ResumeURL)
}

func TestProfileService_GetProfile_WithoutUser(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.GetProfile(context.Background(), nil)

	assert.True(t, errors.Is(err, domainerrors.ErrAccountUnavailable))
}

func TestProfileService_GetPublicProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetPublicProfile(ctx, "ghost")

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_GetPublicProfile_HidesPhone(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(newTestUser(), nil)

	output, err := fx.service.GetPublicProfile(ctx, "alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", output.Profile.Username)
	assert.Equal(t, "hello", output.Profile.Bio)
	assert.Equal(t, "/uploads/photo/owner/old.png", output.PhotoURL)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := newTestUser()

	expectTransaction(t, fx.txManager, fx.txUserRepo)
	fx.txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.txUserRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Bio == "new bio" && u.Phone == "+1 555 0100" })).
		Return(nil)
	fx.publisher.EXPECT().
		PublishAccountEvent(ctx, mock.MatchedBy(func(e *entity.AccountEvent) bool {
			return e.Type == entity.AccountEventProfileUpdated && assert.ObjectsAreEqual([]string{"bio"}, e.Fields)
		})).
		Return(nil)

	output, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		User:  user,
		Phone: strPtr("+1 555 0100"),
		Bio:   strPtr("new bio"),
	})

	require.NoError(t, err)
	assert.Equal(t, "new bio", output.User.Bio)
}

func TestProfileService_UpdateProfile_NoChanges(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := newTestUser()

	expectTransaction(t, fx.txManager, fx.txUserRepo)
	fx.txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	output, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{User: user})

	require.NoError(t, err)
	assert.Equal(t, "hello", output.User.Bio)
}

func TestProfileService_UpdateProfile_UpdateFails(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := newTestUser()

	expectTransaction(t, fx.txManager, fx.txUserRepo)
	fx.txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.txUserRepo.EXPECT().Update(ctx, mock.Anything).Return(repository.ErrUserNotFound)

	_, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{User: user, Bio: strPtr("x")})

	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestProfileService_UpdateProfile_AppliesToCurrentRow(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	authenticated := newTestUser()
	current := *authenticated
	current.Phone = "+1 555 0199"

	expectTransaction(t, fx.txManager, fx.txUserRepo)
	fx.txUserRepo.EXPECT().FindByID(ctx, authenticated.ID).Return(&current, nil)
	fx.txUserRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Bio == "new bio" && u.Phone == "+1 555 0199" })).
		Return(nil)
	fx.publisher.EXPECT().PublishAccountEvent(ctx, mock.Anything).Return(nil)

	output, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{User: authenticated, Bio: strPtr("new bio")})

	require.NoError(t, err)
	assert.Equal(t, "+1 555 0199", output.User.Phone)
}

func TestProfileService_UpdateProfile_AccountGone(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := newTestUser()

	expectTransaction(t, fx.txManager, fx.txUserRepo)
	fx.txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{User: user, Bio: strPtr("x")})

	assert.True(t, errors.Is(err, domainerrors.ErrAccountUnavailable))
}

func TestProfileService_UploadFile_ReplacesPrevious(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := newTestUser()
	prefix := "photo/" + user.ID.String() + "/"

	var storedKey string
	var storedBody []byte

	fx.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), "image/png", mock.Anything).
		RunAndReturn(func(_ context.Context, key, _ string, content io.Reader) error {
			storedKey = key
			body, err := io.ReadAll(content)
			storedBody = body

			return err
		})
	expectTransaction(t, fx.txManager, fx.txUserRepo)
	fx.txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.txUserRepo.EXPECT().Update(ctx, user).Return(nil)
	fx.storage.EXPECT().Delete(ctx, "photo/owner/old.png").Return(nil)
	fx.publisher.EXPECT().PublishAccountEvent(ctx, mock.Anything).Return(nil)

	output, err := fx.service.UploadFile(ctx, &usecase.UploadFileInput{
		User:        user,
		Kind:        entity.FileKindPhoto,
		ContentType: "image/png",
		Size:        4,
		Content:     strings.NewReader("\x89PNG"),
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(output.Key, prefix))
	assert.True(t, strings.HasSuffix(output.Key, ".png"))
	assert.Equal(t, storedKey, output.Key)
	assert.Equal(t, []byte("\x89PNG"), storedBody)
	assert.Equal(t, "/uploads/"+output.Key, output.URL)
	assert.Equal(t, output.Key, user.Photo)
}

func TestProfileService_UploadFile_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.UploadFileInput
		wantErr error
	}{
		{
			name:    "no user",
			input:   &usecase.UploadFileInput{Kind: entity.FileKindPhoto, ContentType: "image/png"},
			wantErr: domainerrors.ErrAccountUnavailable,
		},
		{
			name:    "unknown kind",
			input:   &usecase.UploadFileInput{User: newTestUser(), Kind: "avatar", ContentType: "image/png"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "wrong content type",
			input:   &usecase.UploadFileInput{User: newTestUser(), Kind: entity.FileKindResume, ContentType: "image/png"},
			wantErr: domainerrors.ErrUnsupportedFileType,
		},
		{
			name:    "declared size over limit",
			input:   &usecase.UploadFileInput{User: newTestUser(), Kind: entity.FileKindPhoto, ContentType: "image/png", Size: 17},
			wantErr: domainerrors.ErrFileTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)

			_, err := fx.service.UploadFile(context.Background(), tt.input)

			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestProfileService_UploadFile_StreamOverLimit(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.storage.EXPECT().
		Put(ctx, mock.Anything, "image/png", mock.Anything).
		RunAndReturn(func(_ context.Context, _, _ string, content io.Reader) error {
			_, err := io.ReadAll(content)

			return err
		})

	_, err := fx.service.UploadFile(ctx, &usecase.UploadFileInput{
		User:        newTestUser(),
		Kind:        entity.FileKindPhoto,
		ContentType: "image/png",
		Size:        -1,
		Content:     bytes.NewReader(make([]byte, 17)),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrFileTooLarge))
	assert.Contains(t, err.Error(), "photo must not exceed 16 B")
}

func TestProfileService_UploadFile_TransactionFailureRemovesObject(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := newTestUser()

	var storedKey string

	fx.storage.EXPECT().
		Put(ctx, mock.Anything, "application/pdf", mock.Anything).
		RunAndReturn(func(_ context.Context, key, _ string, _ io.Reader) error {
			storedKey = key

			return nil
		})
	expectTransaction(t, fx.txManager, fx.txUserRepo)
	fx.txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.txUserRepo.EXPECT().Update(ctx, mock.Anything).Return(errors.New("db down"))
	fx.storage.EXPECT().
		Delete(ctx, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, key string) error {
			assert.Equal(t, storedKey, key)

			return nil
		})

	_, err := fx.service.UploadFile(ctx, &usecase.UploadFileInput{
		User:        user,
		Kind:        entity.FileKindResume,
		ContentType: "application/pdf",
		Size:        3,
		Content:     strings.NewReader("pdf"),
	})

	require.Error(t, err)
}

func TestProfileService_UploadFile_StorageFailure(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.storage.EXPECT().Put(ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := fx.service.UploadFile(ctx, &usecase.UploadFileInput{
		User:        newTestUser(),
		Kind:        entity.FileKindPhoto,
		ContentType: "image/jpeg",
		Size:        1,
		Content:     strings.NewReader("x"),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrStorageFailed))
}

func TestProfileService_OpenFile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	obj := &service.StoredObject{Body: io.NopCloser(strings.NewReader("x")), ContentType: "image/png", Size: 1}

	fx.storage.EXPECT().Open(ctx, "photo/a/b.png").Return(obj, nil)
	fx.storage.EXPECT().Open(ctx, "photo/a/missing.png").Return(nil, service.ErrObjectNotFound)

	got, err := fx.service.OpenFile(ctx, "/photo/a/b.png")
	require.NoError(t, err)
	assert.Equal(t, obj, got)

	_, err = fx.service.OpenFile(ctx, "photo/a/missing.png")
	assert.True(t, errors.Is(err, domainerrors.ErrFileNotFound))
}

func TestProfileService_ShareQR(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.qrcode.EXPECT().GenerateProfileQR("alice").Return([]byte("png"), nil)

	png, err := fx.service.ShareQR(ctx, newTestUser())

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestSizeLimitedReader(t *testing.T) {
	r := &sizeLimitedReader{r: strings.NewReader("12345"), remaining: 5}
	body, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "12345", string(body))

	r = &sizeLimitedReader{r: strings.NewReader("123456"), remaining: 5}
	_, err = io.ReadAll(r)
	assert.True(t, errors.Is(err, domainerrors.ErrFileTooLarge))
}
