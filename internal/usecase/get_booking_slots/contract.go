package get_booking_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingSlotsService/internal/domain"
)

// ProductReader читает настройки бронирования продукта и шаблоны слотов
type ProductReader interface {
	GetByProductID(ctx context.Context, productID int64) (*domain.BookingProduct, error)
	GetTableSlotConfig(ctx context.Context, bookingProductID int64) (*domain.TableSlotConfig, error)
}

// ReservationCounter возвращает количество забронированных мест на точный интервал слота
type ReservationCounter interface {
	CountBooked(ctx context.Context, productID int64, from, to time.Time) (int, error)
}

// MetricsCollector приёмник метрик (реализуется *metrics.Metrics)
type MetricsCollector interface {
	ObserveSlots(count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
