package service

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GenerateTrackingQR generates a PNG QR code that encodes the public
	// tracking reference of an order.
	GenerateTrackingQR(orderNumber string) ([]byte, error)
}
