package qrcode

import (
	"testing"

	"vitae/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		baseURL              string
		errorCorrectionLevel string
		wantErr              bool
	}{
		{"Low error correction", "https://vitae.example", "L", false},
		{"Medium error correction", "https://vitae.example", "M", false},
		{"High error correction", "https://vitae.example", "Q", false},
		{"Highest error correction", "https://vitae.example", "H", false},
		{"Default error correction", "https://vitae.example", "invalid", false},
		{"Relative base URL", "/profiles", "M", true},
		{"Empty base URL", "", "M", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewQRCodeService(tt.baseURL, 256, tt.errorCorrectionLevel)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_GenerateProfileQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc, err := NewQRCodeService("https://vitae.example", size, "M")
		require.NoError(t, err)

		qrBytes, err := svc.GenerateProfileQR("alice")
		require.NoError(t, err)
		require.Greater(t, len(qrBytes), len(pngMagic))
		assert.Equal(t, pngMagic, qrBytes[:4])
	}
}

func TestQRCodeService_GenerateProfileQR_EmptyUsername(t *testing.T) {
	svc, err := NewQRCodeService("https://vitae.example", 256, "M")
	require.NoError(t, err)

	_, err = svc.GenerateProfileQR("")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	svc, err := New(cfg)
	require.NoError(t, err)

	qrBytes, err := svc.GenerateProfileQR("alice")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}
