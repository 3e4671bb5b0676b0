package export_price_list

import "context"

type PassService interface {
	PriceList(ctx context.Context, hospitalID string) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
