package bookingproduct

import "errors"

var (
	// ErrBookingProductNotFound возвращается, когда у продукта нет настроек бронирования
	ErrBookingProductNotFound = errors.New("bookingproduct.repository: booking product not found")

	// ErrTableSlotNotFound возвращается, когда для продукта не настроены слоты
	ErrTableSlotNotFound = errors.New("bookingproduct.repository: table slot config not found")

	// ErrMalformedSlots возвращается, когда JSON шаблонов слотов не удаётся разобрать
	ErrMalformedSlots = errors.New("bookingproduct.repository: malformed slots data")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("bookingproduct.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("bookingproduct.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("bookingproduct.repository: failed to scan row")
)
