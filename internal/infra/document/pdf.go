package document

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
)

const (
	passQRImage   = "verification-qr"
	passFont      = "DejaVu"
	passPageWidth = 180.0 // A4 минус поля 15 мм
	passQRSize    = 45.0
	passRowHeight = 7.0
	passFooter    = "Maven Health Platform"
)

// Шрифт с кириллицей, арабским и расширенной латиницей.
// Контекстные формы арабских букв и RTL не поддерживаются, символы сохраняются как есть.
var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	fontRegular []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	fontBold []byte
)

// Pass данные для печатного талона на прием
type Pass struct {
	Record   domain.BookingRecord
	QRCode   []byte // PNG
	Currency string
	IssuedAt time.Time
}

// PassRenderer формирует PDF талона
type PassRenderer struct{}

// NewPassRenderer создает рендерер талонов
func NewPassRenderer() *PassRenderer {
	return &PassRenderer{}
}

// Render возвращает PDF (A4) с данными записи, ценой и QR-кодом
func (r *PassRenderer) Render(pass Pass) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetTitle("Appointment Pass - "+pass.Record.BookingID, true)
	pdf.SetCreator(passFooter, true)
	pdf.AddUTF8FontFromBytes(passFont, "", fontRegular)
	pdf.AddUTF8FontFromBytes(passFont, "B", fontBold)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: load font: %v", ErrRender, err)
	}
	pdf.AddPage()

	// Заголовок
	pdf.SetFont(passFont, "B", 22)
	pdf.SetTextColor(17, 24, 39)
	pdf.CellFormat(passPageWidth, 12, "Appointment Pass", "", 1, "C", false, 0, "")

	pdf.SetFont(passFont, "B", 10)
	pdf.SetTextColor(22, 101, 52)
	pdf.CellFormat(passPageWidth, 6, "CONFIRMED  |  QR VERIFIED", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// QR-код по центру
	if len(pass.QRCode) > 0 {
		pdf.RegisterImageOptionsReader(passQRImage, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(pass.QRCode))
		x := 15 + (passPageWidth-passQRSize)/2
		pdf.ImageOptions(passQRImage, x, pdf.GetY(), passQRSize, passQRSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		pdf.SetY(pdf.GetY() + passQRSize + 6)
	}

	// Детали записи
	rec := pass.Record
	details := []struct{ label, value string }{
		{"Hospital", rec.HospitalName},
		{"Service", rec.ServiceName},
		{"Patient", rec.PatientName},
		{"Date & Time", rec.Date + " at " + rec.Time},
		{"Location", rec.Location},
		{"Booking ID", rec.BookingID},
	}

	pdf.SetFillColor(249, 250, 251)
	for _, d := range details {
		pdf.SetFont(passFont, "", 8)
		pdf.SetTextColor(75, 85, 99)
		pdf.CellFormat(passPageWidth, 5, d.label, "", 1, "L", true, 0, "")

		pdf.SetFont(passFont, "B", 12)
		pdf.SetTextColor(17, 24, 39)
		pdf.MultiCell(passPageWidth, passRowHeight, d.value, "", "L", true)
		pdf.Ln(2)
	}

	// Стоимость
	pdf.Ln(2)
	priceRow := func(label string, amount float64, style string) {
		pdf.SetFont(passFont, style, 11)
		pdf.CellFormat(passPageWidth/2, passRowHeight, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(passPageWidth/2, passRowHeight, formatAmount(pass.Currency, amount), "", 1, "R", false, 0, "")
	}

	pdf.SetTextColor(107, 114, 128)
	priceRow("Original Price:", rec.OriginalPrice, "")
	pdf.SetTextColor(22, 163, 74)
	priceRow("You Paid:", rec.DiscountedPrice, "B")
	priceRow("You Saved:", rec.Savings, "B")

	// Примечания
	pdf.Ln(4)
	pdf.SetFont(passFont, "", 9)
	pdf.SetTextColor(30, 64, 175)
	pdf.MultiCell(passPageWidth, 5,
		"Scan QR Code: Hospital staff can scan this code to verify your appointment details instantly.", "", "C", false)
	pdf.Ln(2)
	pdf.SetTextColor(133, 77, 14)
	pdf.MultiCell(passPageWidth, 5,
		"Important: Show this pass at the hospital reception when you arrive for your appointment.", "", "C", false)

	// Подвал
	pdf.Ln(6)
	pdf.SetDrawColor(229, 231, 235)
	pdf.Line(15, pdf.GetY(), 15+passPageWidth, pdf.GetY())
	pdf.Ln(3)
	pdf.SetFont(passFont, "", 8)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(passPageWidth, 5,
		fmt.Sprintf("Generated on %s | %s", pass.IssuedAt.Format(domain.DisplayDateFormat), passFooter),
		"", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: pdf output: %v", ErrRender, err)
	}

	return buf.Bytes(), nil
}

func formatAmount(currency string, amount float64) string {
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return fmt.Sprintf("%s %.2f", currency, amount)
}
