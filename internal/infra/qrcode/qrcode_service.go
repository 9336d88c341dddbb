// Package qrcode renders order tracking references as QR code images.
package qrcode

import (
	"fmt"
	"strings"

	"souq/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	trackingBaseURL      string
}

// NewQRCodeService creates a new QR code service instance. The generated
// codes encode a public tracking URL, so any phone camera resolves them
// without the app installed.
func NewQRCodeService(size int, errorCorrectionLevel, trackingBaseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		trackingBaseURL:      strings.TrimRight(trackingBaseURL, "/"),
	}
}

// GenerateTrackingQR generates a PNG QR code encoding the order's tracking URL.
func (s *qrcodeService) GenerateTrackingQR(orderNumber string) ([]byte, error) {
	content := orderNumber
	if s.trackingBaseURL != "" {
		content = fmt.Sprintf("%s/track/%s", s.trackingBaseURL, orderNumber)
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
