package qrcode

import (
	"testing"

	"homestay/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_Defaults(t *testing.T) {
	service := NewQRCodeService(&config.Config{})
	assert.NotNil(t, service)

	placeID := uuid.New()
	svc, ok := service.(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, "http://localhost:8080/api/v1/places/"+placeID.String(), svc.PlaceURL(placeID))
}

func TestQRCodeService_GeneratePlaceQR(t *testing.T) {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 256, BaseURL: "https://homestay.example"}}
	service := NewQRCodeService(cfg)
	placeID := uuid.New()

	qrBytes, err := service.GeneratePlaceQR(placeID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GeneratePlaceQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: tt.size, BaseURL: "https://homestay.example"}}
			service := NewQRCodeService(cfg)

			qrBytes, err := service.GeneratePlaceQR(uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_TrimsTrailingSlash(t *testing.T) {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{BaseURL: "https://homestay.example/"}}
	service := NewQRCodeService(cfg)

	placeID := uuid.New()
	svc, ok := service.(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, "https://homestay.example/api/v1/places/"+placeID.String(), svc.PlaceURL(placeID))
}
