package booking

import "errors"

var (
	// ErrInvalidSlot возвращается, когда граница слота не после его начала
	ErrInvalidSlot = errors.New("booking.repository: invalid slot bounds")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
