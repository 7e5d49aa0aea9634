package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for generating shareable QR codes.
type QRCodeService interface {
	// GeneratePlaceQR renders a PNG QR code encoding the public link to a
	// place listing.
	GeneratePlaceQR(placeID uuid.UUID) ([]byte, error)
}
