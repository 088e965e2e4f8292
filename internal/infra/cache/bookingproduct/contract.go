package bookingproduct

import (
	"context"

	"github.com/m04kA/SMC-BookingSlotsService/internal/domain"
)

// ProductReader источник данных, который декорирует кэш
type ProductReader interface {
	GetByProductID(ctx context.Context, productID int64) (*domain.BookingProduct, error)
	GetTableSlotConfig(ctx context.Context, bookingProductID int64) (*domain.TableSlotConfig, error)
}

// MetricsCollector учёт попаданий в кэш
type MetricsCollector interface {
	ObserveCache(entity, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
