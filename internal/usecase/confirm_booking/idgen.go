package confirm_booking

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
)

// BookingIDGenerator генерирует номер записи: префикс + 8 символов [A-Z0-9].
// Уникальность не гарантируется.
type BookingIDGenerator struct {
	prefix string
	rnd    io.Reader
}

// NewBookingIDGenerator создает генератор; пустой префикс заменяется на "MAVEN-",
// nil источник на crypto/rand
func NewBookingIDGenerator(prefix string, rnd io.Reader) *BookingIDGenerator {
	if prefix == "" {
		prefix = domain.DefaultBookingIDPrefix
	}
	if rnd == nil {
		rnd = rand.Reader
	}
	return &BookingIDGenerator{prefix: prefix, rnd: rnd}
}

// Generate возвращает новый номер записи
func (g *BookingIDGenerator) Generate() (string, error) {
	alphabet := domain.BookingIDAlphabet
	// Байты >= limit отбрасываются, чтобы символы были равновероятны
	limit := byte(256 - 256%len(alphabet))

	id := make([]byte, 0, domain.BookingIDLength)
	buf := make([]byte, domain.BookingIDLength)

	for len(id) < domain.BookingIDLength {
		if _, err := io.ReadFull(g.rnd, buf); err != nil {
			return "", fmt.Errorf("%w: read random source: %v", ErrInternal, err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			id = append(id, alphabet[int(b)%len(alphabet)])
			if len(id) == domain.BookingIDLength {
				break
			}
		}
	}

	return g.prefix + string(id), nil
}
