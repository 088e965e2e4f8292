package slotconfig

import "errors"

var (
	// ErrBookingProductNotFound возвращается, когда у продукта нет настроек бронирования
	ErrBookingProductNotFound = errors.New("booking product not found")

	// ErrSlotConfigNotFound возвращается, когда настройки слотов не найдены
	ErrSlotConfigNotFound = errors.New("slot config not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
