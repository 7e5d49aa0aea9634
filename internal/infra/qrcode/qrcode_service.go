// Package qrcode renders shareable QR codes for place listings.
package qrcode

import (
	"fmt"
	"strings"

	"homestay/config"
	"homestay/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:8080"
)

type qrcodeService struct {
	size    int
	baseURL string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	baseURL := defaultBaseURL
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.BaseURL != "" {
			baseURL = strings.TrimRight(cfg.QRCode.BaseURL, "/")
		}
	}

	return &qrcodeService{
		size:    size,
		baseURL: baseURL,
	}
}

// GeneratePlaceQR renders a PNG QR code encoding the public link to a place listing.
func (s *qrcodeService) GeneratePlaceQR(placeID uuid.UUID) ([]byte, error) {
	link := s.PlaceURL(placeID)

	qrCode, err := qrcode.New(link, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// PlaceURL builds the public listing link encoded into the QR code.
func (s *qrcodeService) PlaceURL(placeID uuid.UUID) string {
	return fmt.Sprintf("%s/api/v1/places/%s", s.baseURL, placeID)
}
