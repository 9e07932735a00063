// Package qrcode renders share codes for public profiles.
package qrcode

import (
	"net/url"
	"strings"

	"vitae/config"
	"vitae/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const profilePathPrefix = "/profiles/"

type qrcodeService struct {
	baseURL              *url.URL
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// New is the fx constructor reading the qrcode configuration section.
func New(cfg *config.Config) (service.QRCodeService, error) {
	return NewQRCodeService(cfg.QRCode.BaseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a QR code service whose codes point below baseURL.
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) (service.QRCodeService, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("qrcode base URL must be absolute, got %q", baseURL)
	}

	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		baseURL:              base,
		size:                 size,
		errorCorrectionLevel: level,
	}, nil
}

// GenerateProfileQR renders a PNG encoding the public profile URL of username.
func (s *qrcodeService) GenerateProfileQR(username string) ([]byte, error) {
	if username == "" {
		return nil, errors.New("username is required")
	}

	target := s.baseURL.JoinPath(profilePathPrefix, username)

	pngBytes, err := qrcode.Encode(target.String(), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return pngBytes, nil
}

