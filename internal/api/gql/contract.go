package gql

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingSlotsService/internal/domain"
	getBookingSlots "github.com/m04kA/SMC-BookingSlotsService/internal/usecase/get_booking_slots"
)

// BookingSlotsUseCase расчёт слотов продукта
type BookingSlotsUseCase interface {
	Execute(ctx context.Context, req *getBookingSlots.Request) (*getBookingSlots.Response, error)
	Location() *time.Location
}

// BookingProductReader настройки бронирования продукта
type BookingProductReader interface {
	GetByProductID(ctx context.Context, productID int64) (*domain.BookingProduct, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
