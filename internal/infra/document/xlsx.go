package document

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-HospitalBookingService/internal/domain"
)

// PriceListSheet имя листа с прайс-листом
const PriceListSheet = "Price List"

// PriceListWriter формирует XLSX с услугами больницы
type PriceListWriter struct {
	serviceColWidth float64
	priceColWidth   float64
}

// NewPriceListWriter создает генератор прайс-листов
func NewPriceListWriter() *PriceListWriter {
	return &PriceListWriter{
		serviceColWidth: 36,
		priceColWidth:   22,
	}
}

// Write возвращает XLSX: строка заголовков и по строке на каждую услугу в порядке каталога
func (w *PriceListWriter) Write(hospital *domain.Hospital, currency string) ([]byte, error) {
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", PriceListSheet); err != nil {
		return nil, fmt.Errorf("%w: rename sheet: %v", ErrRender, err)
	}

	header := []interface{}{
		"Service",
		"Original Price (" + currency + ")",
		"Discounted Price (" + currency + ")",
		"Savings (" + currency + ")",
		"Discount %",
	}
	if err := writeRow(f, 1, header); err != nil {
		return nil, err
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DBEAFE"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: header style: %v", ErrRender, err)
	}
	endCell, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return nil, fmt.Errorf("%w: cell name: %v", ErrRender, err)
	}
	if err := f.SetCellStyle(PriceListSheet, "A1", endCell, style); err != nil {
		return nil, fmt.Errorf("%w: header style: %v", ErrRender, err)
	}

	for i, s := range hospital.Services {
		row := []interface{}{s.Name, s.OriginalPrice, s.DiscountedPrice, s.Savings(), s.DiscountPercent()}
		if err := writeRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(PriceListSheet, "A", "A", w.serviceColWidth); err != nil {
		return nil, fmt.Errorf("%w: column width: %v", ErrRender, err)
	}
	if err := f.SetColWidth(PriceListSheet, "B", "E", w.priceColWidth); err != nil {
		return nil, fmt.Errorf("%w: column width: %v", ErrRender, err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("%w: xlsx write: %v", ErrRender, err)
	}

	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, values []interface{}) error {
	for col, val := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("%w: cell name: %v", ErrRender, err)
		}
		if err := f.SetCellValue(PriceListSheet, cell, val); err != nil {
			return fmt.Errorf("%w: set cell %s: %v", ErrRender, cell, err)
		}
	}
	return nil
}
