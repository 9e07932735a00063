package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	apimiddleware "vitae/internal/delivery/api/middleware"
	"vitae/internal/delivery/api/response"
	"vitae/internal/delivery/api/validator"
	deliverycontext "vitae/internal/delivery/context"
	"vitae/internal/domain/entity"
	domainerrors "vitae/internal/domain/errors"
	"vitae/internal/domain/service"
	"vitae/internal/infra/metrics"
	mockUsecase "vitae/internal/mocks/usecase"
	"vitae/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type handlerFixtures struct {
	echo      *echo.Echo
	metrics   *metrics.Metrics
	userUC    *mockUsecase.MockUserUsecase
	profileUC *mockUsecase.MockProfileUsecase
}

// createTestHandlers wires the handlers on an echo instance. Routes under /user get
// a stub authenticator that trusts the X-Test-User header.
func createTestHandlers(t *testing.T) handlerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := handlerFixtures{
		echo:      echo.New(),
		metrics:   metrics.New(),
		userUC:    mockUsecase.NewMockUserUsecase(t),
		profileUC: mockUsecase.NewMockProfileUsecase(t),
	}
	f.echo.Validator = validator.New()
	f.echo.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	authHandler := NewAuthHandler(AuthHandlerParams{UserUC: f.userUC, Metrics: f.metrics, Logger: logger})
	profileHandler := NewProfileHandler(ProfileHandlerParams{ProfileUC: f.profileUC, Logger: logger})

	stubAuth := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if username := c.Request().Header.Get("X-Test-User"); username != "" {
				deliverycontext.SetUser(c, &entity.User{ID: uuid.New(), Username: username})
			}

			return next(c)
		}
	}

	f.echo.GET("/health", HealthCheck)
	f.echo.POST("/auth/signup", authHandler.Signup)
	f.echo.POST("/auth/login", authHandler.Login)
	user := f.echo.Group("/user", stubAuth)
	user.GET("/profile", profileHandler.GetProfile)
	user.PUT("/profile", profileHandler.UpdateProfile)
	user.POST("/profile/photo", profileHandler.UploadPhoto)
	user.POST("/profile/resume", profileHandler.UploadResume)
	user.GET("/profile/qr", profileHandler.ShareQR)
	f.echo.GET("/profiles/:username", profileHandler.GetPublicProfile)
	f.echo.GET("/uploads/*", profileHandler.ServeFile)

	return f
}

func (f handlerFixtures) do(req *http.Request) (*httptest.ResponseRecorder, response.Response) {
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var body response.Response
	_ = json.Unmarshal(rec.Body.Bytes(), &body)

	return rec, body
}

func userNamed(username string) any {
	return mock.MatchedBy(func(user *entity.User) bool {
		return user != nil && user.Username == username
	})
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestHealthCheck(t *testing.T) {
	fx := createTestHandlers(t)

	rec, body := fx.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
}

func TestAuthHandler_Signup_JSON(t *testing.T) {
	fx := createTestHandlers(t)
	id := uuid.New()

	fx.userUC.EXPECT().
		Signup(mock.Anything, &usecase.SignupInput{Username: "alice", Password: "secret123"}).
		Return(&usecase.SignupOutput{User: &entity.User{ID: id, Username: "alice", PasswordHash: "$argon2id$..."}}, nil)

	rec, body := fx.do(jsonRequest(http.MethodPost, "/auth/signup", `{"username":" alice ","password":"secret123"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, body.Success)
	assert.Contains(t, rec.Body.String(), id.String())
	assert.NotContains(t, rec.Body.String(), "argon2id")
	assert.NotContains(t, rec.Body.String(), "secret123")
}

func TestAuthHandler_Signup_Form(t *testing.T) {
	fx := createTestHandlers(t)

	fx.userUC.EXPECT().
		Signup(mock.Anything, &usecase.SignupInput{Username: "bob", Password: "secret123"}).
		Return(&usecase.SignupOutput{User: &entity.User{ID: uuid.New(), Username: "bob"}}, nil)

	form := url.Values{"username": {"bob"}, "password": {"secret123"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec, _ := fx.do(req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAuthHandler_Signup_Errors(t *testing.T) {
	t.Run("missing password", func(t *testing.T) {
		fx := createTestHandlers(t)

		rec, body := fx.do(jsonRequest(http.MethodPost, "/auth/signup", `{"username":"alice"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		fx := createTestHandlers(t)

		rec, body := fx.do(jsonRequest(http.MethodPost, "/auth/signup", `{"username":`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	})

	t.Run("username outside the profile path charset", func(t *testing.T) {
		for _, username := range []string{"a/b", "..", "two words"} {
			fx := createTestHandlers(t)

			rec, body := fx.do(jsonRequest(http.MethodPost, "/auth/signup",
				`{"username":"`+username+`","password":"secret123"}`))

			assert.Equal(t, http.StatusBadRequest, rec.Code, username)
			assert.Equal(t, "VALIDATION_FAILED", body.Error.Code, username)
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		fx := createTestHandlers(t)

		fx.userUC.EXPECT().Signup(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "signup failed"))

		rec, body := fx.do(jsonRequest(http.MethodPost, "/auth/signup", `{"username":"alice","password":"secret123"}`))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "USER_ALREADY_EXISTS", body.Error.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	fx := createTestHandlers(t)
	expiresAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	fx.userUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "secret123"}).
		Return(&usecase.LoginOutput{AccessToken: "jwt", TokenType: usecase.TokenTypeBearer, ExpiresAt: expiresAt}, nil)

	rec, body := fx.do(jsonRequest(http.MethodPost, "/auth/login", `{"username":"alice","password":"secret123"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "jwt", data["access_token"])
	assert.Equal(t, "bearer", data["token_type"])
	assert.Equal(t, "2026-01-02T03:04:05Z", data["expires_at"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	fx := createTestHandlers(t)

	fx.userUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

	rec, body := fx.do(jsonRequest(http.MethodPost, "/auth/login", `{"username":"alice","password":"wrong"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
	assert.Empty(t, body.Error.Details)

	scrape := httptest.NewRecorder()
	fx.metrics.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, scrape.Body.String(), `vitae_auth_outcomes_total{operation="login",outcome="invalid_credentials"} 1`)
}

func TestProfileHandler_GetProfile(t *testing.T) {
	fx := createTestHandlers(t)

	fx.profileUC.EXPECT().GetProfile(mock.Anything, userNamed("alice")).Return(&usecase.ProfileOutput{
		User:     &entity.User{Username: "alice", Phone: "+1 555 0100", PasswordHash: "$argon2id$..."},
		PhotoURL: "/uploads/photo/a/b.png",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	req.Header.Set("X-Test-User", "alice")
	rec, body := fx.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	data := body.Data.(map[string]any)
	assert.Equal(t, "+1 555 0100", data["phone"])
	assert.Equal(t, "/uploads/photo/a/b.png", data["photo_url"])
	assert.NotContains(t, rec.Body.String(), "argon2id")
}

func TestProfileHandler_RequiresUser(t *testing.T) {
	fx := createTestHandlers(t)

	rec, body := fx.do(httptest.NewRequest(http.MethodGet, "/user/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", body.Error.Code)
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	fx := createTestHandlers(t)

	fx.profileUC.EXPECT().
		UpdateProfile(mock.Anything, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
			return in.User != nil && in.User.Username == "alice" && in.Phone == nil && in.Bio != nil && *in.Bio == "hi"
		})).
		Return(&usecase.ProfileOutput{User: &entity.User{Username: "alice", Bio: "hi"}}, nil)

	req := jsonRequest(http.MethodPut, "/user/profile", `{"bio":"hi"}`)
	req.Header.Set("X-Test-User", "alice")
	rec, _ := fx.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func multipartUpload(t *testing.T, target string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "upload.bin")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.Header.Set("X-Test-User", "alice")

	return req
}

func TestProfileHandler_UploadPhoto_DetectsContentType(t *testing.T) {
	fx := createTestHandlers(t)

	var got *usecase.UploadFileInput
	var content []byte

	fx.profileUC.EXPECT().
		UploadFile(mock.Anything, mock.AnythingOfType("*usecase.UploadFileInput")).
		RunAndReturn(func(_ context.Context, in *usecase.UploadFileInput) (*usecase.UploadFileOutput, error) {
			got = in
			body, err := io.ReadAll(in.Content)
			content = body

			return &usecase.UploadFileOutput{
				Key:     "photo/a/b.png",
				URL:     "/uploads/photo/a/b.png",
				Profile: &usecase.ProfileOutput{User: &entity.User{Username: "alice", Photo: "photo/a/b.png"}},
			}, err
		})

	rec, body := fx.do(multipartUpload(t, "/user/profile/photo", pngHeader))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/uploads/photo/a/b.png", body.Data.(map[string]any)["url"])
	require.NotNil(t, got)
	require.NotNil(t, got.User)
	assert.Equal(t, "alice", got.User.Username)
	assert.Equal(t, entity.FileKindPhoto, got.Kind)
	assert.Equal(t, "image/png", got.ContentType)
	assert.Equal(t, int64(len(pngHeader)), got.Size)
	assert.Equal(t, pngHeader, content)
}

func TestProfileHandler_UploadResume_Rejected(t *testing.T) {
	fx := createTestHandlers(t)

	fx.profileUC.EXPECT().
		UploadFile(mock.Anything, mock.MatchedBy(func(in *usecase.UploadFileInput) bool {
			return in.Kind == entity.FileKindResume && in.ContentType == "image/png"
		})).
		Return(nil, domainerrors.ErrUnsupportedFileType.WithDetails("image/png is not accepted for resume"))

	rec, body := fx.do(multipartUpload(t, "/user/profile/resume", pngHeader))

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Equal(t, "UNSUPPORTED_FILE_TYPE", body.Error.Code)
}

func TestProfileHandler_Upload_MissingFile(t *testing.T) {
	fx := createTestHandlers(t)

	req := jsonRequest(http.MethodPost, "/user/profile/photo", `{}`)
	req.Header.Set("X-Test-User", "alice")
	rec, body := fx.do(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
}

func TestProfileHandler_ShareQR(t *testing.T) {
	fx := createTestHandlers(t)

	fx.profileUC.EXPECT().ShareQR(mock.Anything, userNamed("alice")).Return(pngHeader, nil)

	req := httptest.NewRequest(http.MethodGet, "/user/profile/qr", nil)
	req.Header.Set("X-Test-User", "alice")
	rec, _ := fx.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, pngHeader, rec.Body.Bytes())
}

func TestProfileHandler_GetPublicProfile(t *testing.T) {
	fx := createTestHandlers(t)

	fx.profileUC.EXPECT().GetPublicProfile(mock.Anything, "alice").Return(&usecase.PublicProfileOutput{
		Profile: &entity.PublicProfile{Username: "alice", Bio: "hello"},
	}, nil)
	fx.profileUC.EXPECT().GetPublicProfile(mock.Anything, "ghost").
		Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "ghost"))

	rec, body := fx.do(httptest.NewRequest(http.MethodGet, "/profiles/alice", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", body.Data.(map[string]any)["bio"])
	assert.NotContains(t, rec.Body.String(), "phone")

	rec, body = fx.do(httptest.NewRequest(http.MethodGet, "/profiles/ghost", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", body.Error.Code)
}

func TestProfileHandler_ServeFile(t *testing.T) {
	fx := createTestHandlers(t)

	fx.profileUC.EXPECT().OpenFile(mock.Anything, "photo/a/b.png").Return(&service.StoredObject{
		Body:        io.NopCloser(bytes.NewReader(pngHeader)),
		ContentType: "image/png",
		Size:        int64(len(pngHeader)),
	}, nil)
	fx.profileUC.EXPECT().OpenFile(mock.Anything, "photo/a/missing.png").Return(nil, domainerrors.ErrFileNotFound)

	rec, _ := fx.do(httptest.NewRequest(http.MethodGet, "/uploads/photo/a/b.png", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, pngHeader, rec.Body.Bytes())

	rec, body := fx.do(httptest.NewRequest(http.MethodGet, "/uploads/photo/a/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "FILE_NOT_FOUND", body.Error.Code)
}
