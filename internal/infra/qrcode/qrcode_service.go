package qrcode

import (
	"encoding/json"
	"strings"

	"eats/config"
	"eats/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const payloadTypeRestaurant = "restaurant"

type qrcodeService struct {
	size    int
	level   qrcode.RecoveryLevel
	baseURL string
}

// QRCodeData is the JSON payload encoded into restaurant QR codes.
type QRCodeData struct {
	RestaurantID string `json:"restaurant_id"`
	Type         string `json:"type"`
	URL          string `json:"url,omitempty"`
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config block.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(256, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:    size,
		level:   recoveryLevel(errorCorrectionLevel),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateRestaurantQR encodes the restaurant ID and page URL as a PNG.
func (s *qrcodeService) GenerateRestaurantQR(restaurantID uuid.UUID) ([]byte, error) {
	// Marshal the payload that scanners will read back
	jsonData, err := json.Marshal(s.payload(restaurantID))
	if err != nil {
		return nil, errors.Wrap(err, "marshal QR code data")
	}

	code, err := qrcode.New(string(jsonData), s.level)
	if err != nil {
		return nil, errors.Wrap(err, "create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "render QR code PNG")
	}

	return png, nil
}

// payload links to the restaurant page when a base URL is configured.
func (s *qrcodeService) payload(restaurantID uuid.UUID) QRCodeData {
	data := QRCodeData{
		RestaurantID: restaurantID.String(),
		Type:         payloadTypeRestaurant,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/" + restaurantID.String()
	}

	return data
}
