package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"vitae/internal/delivery/api/response"
	deliverycontext "vitae/internal/delivery/context"
	"vitae/internal/domain/entity"
	domainerrors "vitae/internal/domain/errors"
	"vitae/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const uploadFormField = "file"

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves profile reads, edits, uploads and share codes.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// GetProfile returns the authenticated user's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	output, err := h.profileUC.GetProfile(c.Request().Context(), user)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(output), "")
}

// UpdateProfile applies a partial update to the authenticated user's profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.profileUC.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		User:  user,
		Phone: req.Phone,
		Bio:   req.Bio,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(output), "Profile updated successfully")
}

// UploadPhoto stores a new profile photo.
func (h *ProfileHandler) UploadPhoto(c echo.Context) error {
	return h.upload(c, entity.FileKindPhoto)
}

// UploadResume stores a new resume.
func (h *ProfileHandler) UploadResume(c echo.Context) error {
	return h.upload(c, entity.FileKindResume)
}

func (h *ProfileHandler) upload(c echo.Context, kind entity.FileKind) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("multipart field \"file\" is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	// The declared Content-Type is client controlled; the stored type comes from the content.
	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return errors.Wrap(err, "failed to detect uploaded file type")
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "failed to rewind uploaded file")
	}

	output, err := h.profileUC.UploadFile(c.Request().Context(), &usecase.UploadFileInput{
		User:        user,
		Kind:        kind,
		ContentType: detected.String(),
		Size:        fileHeader.Size,
		Content:     file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &UploadResponse{
		URL:     output.URL,
		Profile: toUserResponse(output.Profile),
	}, "File uploaded successfully")
}

// ShareQR returns a PNG QR code linking to the authenticated user's public profile.
func (h *ProfileHandler) ShareQR(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	png, err := h.profileUC.ShareQR(c.Request().Context(), user)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetPublicProfile returns the public fields of any profile.
func (h *ProfileHandler) GetPublicProfile(c echo.Context) error {
	output, err := h.profileUC.GetPublicProfile(c.Request().Context(), c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPublicProfileResponse(output), "")
}

// ServeFile streams a stored upload.
func (h *ProfileHandler) ServeFile(c echo.Context) error {
	obj, err := h.profileUC.OpenFile(c.Request().Context(), c.Param("*"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer obj.Body.Close()

	header := c.Response().Header()
	header.Set("X-Content-Type-Options", "nosniff")
	if obj.Size > 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(obj.Size, 10))
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return c.Stream(http.StatusOK, contentType, obj.Body)
}

func currentUser(c echo.Context) (*entity.User, error) {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return nil, domainerrors.ErrMissingToken
	}

	return user, nil
}
