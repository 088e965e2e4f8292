package get_booking_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BookingSlotsService/internal/domain"
	bookingProductRepo "github.com/m04kA/SMC-BookingSlotsService/internal/infra/storage/bookingproduct"
)

// UseCase use case для получения слотов бронирования продукта на дату
type UseCase struct {
	productReader ProductReader
	reservations  ReservationCounter
	metrics       MetricsCollector
	timeProvider  TimeProvider
	location      *time.Location
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс магазина, в котором интерпретируются даты и шаблоны слотов
func NewUseCase(
	productReader ProductReader,
	reservations ReservationCounter,
	metrics MetricsCollector,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}

	return &UseCase{
		productReader: productReader,
		reservations:  reservations,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		location:      location,
		logger:        logger,
	}
}

// Location часовой пояс, в котором работает use case
func (uc *UseCase) Location() *time.Location {
	return uc.location
}

// Execute выполняет use case получения слотов
// Отсутствие настроек бронирования или шаблонов не ошибка: возвращается пустой список
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.ProductID <= 0 {
		uc.logger.Warn("GetBookingSlots: validation failed: productID must be positive")
		return nil, fmt.Errorf("%w: productID must be positive", ErrInvalidInput)
	}

	// 1. Текущее время и запрошенная дата в часовом поясе магазина
	now := uc.timeProvider.Now().In(uc.location)

	date := domain.StartOfDay(now)
	if req.Date != nil {
		y, m, d := req.Date.Date()
		date = time.Date(y, m, d, 0, 0, 0, 0, uc.location)
	}

	uc.logger.Info("GetBookingSlots: product=%d, date=%s", req.ProductID, date.Format(domain.DateFormat))

	response := &Response{
		ProductID: req.ProductID,
		Date:      date,
		Slots:     []Slot{},
	}

	// 2. Настройки бронирования продукта
	product, err := uc.productReader.GetByProductID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, bookingProductRepo.ErrBookingProductNotFound) {
			uc.logger.Info("GetBookingSlots: product=%d has no booking settings", req.ProductID)
			return uc.respond(response, nil), nil
		}
		uc.logger.Error("GetBookingSlots: failed to get booking product for product=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: failed to get booking product: %v", ErrInternal, err)
	}

	// 3. Шаблоны слотов
	config, err := uc.productReader.GetTableSlotConfig(ctx, product.ID)
	if err != nil {
		switch {
		case errors.Is(err, bookingProductRepo.ErrTableSlotNotFound):
			uc.logger.Info("GetBookingSlots: booking product=%d has no slot config", product.ID)
			return uc.respond(response, nil), nil
		case errors.Is(err, bookingProductRepo.ErrMalformedSlots):
			uc.logger.Warn("GetBookingSlots: booking product=%d has malformed slots: %v", product.ID, err)
			return uc.respond(response, nil), nil
		default:
			uc.logger.Error("GetBookingSlots: failed to get slot config for booking product=%d: %v", product.ID, err)
			return nil, fmt.Errorf("%w: failed to get slot config: %v", ErrInternal, err)
		}
	}

	if config.Slots.IsEmpty() {
		uc.logger.Info("GetBookingSlots: booking product=%d has empty slot templates", product.ID)
		return uc.respond(response, nil), nil
	}

	// 4. Расчёт слотов и занятости
	slots, err := computeAvailableSlots(ctx, product, config, date, now, uc.reservations)
	if err != nil {
		uc.logger.Error("GetBookingSlots: failed to count bookings for product=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
	}

	uc.logger.Info("GetBookingSlots: generated %d slots for product=%d, date=%s",
		len(slots), req.ProductID, date.Format(domain.DateFormat))

	return uc.respond(response, slots), nil
}

func (uc *UseCase) respond(response *Response, slots []domain.BookingSlot) *Response {
	response.Slots = toResponseSlots(slots)
	if uc.metrics != nil {
		uc.metrics.ObserveSlots(len(response.Slots))
	}
	return response
}
