package slotconfig

import (
	"context"

	"github.com/m04kA/SMC-BookingSlotsService/internal/domain"
)

// SlotConfigRepository интерфейс репозитория настроек слотов
type SlotConfigRepository interface {
	GetByProductID(ctx context.Context, productID int64) (*domain.BookingProduct, error)
	GetTableSlotConfig(ctx context.Context, bookingProductID int64) (*domain.TableSlotConfig, error)
	UpsertTableSlotConfig(ctx context.Context, config *domain.TableSlotConfig) (*domain.TableSlotConfig, error)
}

// CacheInvalidator сбрасывает закэшированные настройки продукта
type CacheInvalidator interface {
	Invalidate(ctx context.Context, productID, bookingProductID int64) error
}

// EventPublisher публикует события об изменении настроек
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
