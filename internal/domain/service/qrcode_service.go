package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders QR codes pointing at restaurant pages.
type QRCodeService interface {
	// GenerateRestaurantQR returns a PNG linking to the restaurant page.
	GenerateRestaurantQR(restaurantID uuid.UUID) ([]byte, error)
}
