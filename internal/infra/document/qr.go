package document

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

// QREncoder кодирует строку в PNG с QR-кодом
type QREncoder struct {
	size int
}

// NewQREncoder создает энкодер; size <= 0 означает 256 px
func NewQREncoder(size int) *QREncoder {
	if size <= 0 {
		size = defaultQRSize
	}
	return &QREncoder{size: size}
}

// Encode возвращает PNG с QR-кодом (уровень коррекции Medium)
func (e *QREncoder) Encode(content string) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, e.size)
	if err != nil {
		return nil, fmt.Errorf("%w: qr encode: %v", ErrRender, err)
	}
	return png, nil
}
