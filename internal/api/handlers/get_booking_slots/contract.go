package get_booking_slots

import (
	"context"
	"time"

	getBookingSlots "github.com/m04kA/SMC-BookingSlotsService/internal/usecase/get_booking_slots"
)

type GetBookingSlotsUseCase interface {
	Execute(ctx context.Context, req *getBookingSlots.Request) (*getBookingSlots.Response, error)
	Location() *time.Location
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
