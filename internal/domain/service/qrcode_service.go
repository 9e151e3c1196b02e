package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateProductQR generates a PNG QR code linking to a product page.
	GenerateProductQR(productSlug string) ([]byte, error)
}
