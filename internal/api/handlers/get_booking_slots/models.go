package get_booking_slots

import (
	"time"

	"github.com/m04kA/SMC-BookingSlotsService/internal/domain"
	getBookingSlots "github.com/m04kA/SMC-BookingSlotsService/internal/usecase/get_booking_slots"
)

// BookingSlotsResponse HTTP response model
type BookingSlotsResponse struct {
	ProductID int64         `json:"productId"`
	Date      string        `json:"date"`
	Slots     []BookingSlot `json:"slots"`
}

// BookingSlot модель слота бронирования
type BookingSlot struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Timestamp string `json:"timestamp"`
	Booked    int    `json:"booked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookingSlots.Response) *BookingSlotsResponse {
	slots := make([]BookingSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = BookingSlot{
			From:      slot.From,
			To:        slot.To,
			Timestamp: slot.Timestamp,
			Booked:    slot.Booked,
		}
	}

	return &BookingSlotsResponse{
		ProductID: resp.ProductID,
		Date:      resp.Date.Format(domain.DateFormat),
		Slots:     slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
// Пустая дата означает сегодняшний день
func ToUseCaseRequest(productID int64, dateStr string, loc *time.Location) (*getBookingSlots.Request, error) {
	req := &getBookingSlots.Request{ProductID: productID}
	if dateStr == "" {
		return req, nil
	}

	date, err := time.ParseInLocation(domain.DateFormat, dateStr, loc)
	if err != nil {
		return nil, err
	}
	req.Date = &date

	return req, nil
}
