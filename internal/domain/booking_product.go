package domain

import "time"

// BookingProduct настройки бронирования продукта каталога
type BookingProduct struct {
	ID                 int64
	ProductID          int64
	Type               BookingType
	Qty                int
	AvailableEveryWeek bool
	AvailableFrom      *time.Time
	AvailableTo        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsAlwaysAvailable продукт доступен каждый день без ограничения по датам
func (p *BookingProduct) IsAlwaysAvailable() bool {
	return p.AvailableEveryWeek || p.AvailableFrom == nil
}

// AvailabilityWindow возвращает окно доступности [from, to] в часовом поясе now.
// Для продуктов без ограничений окно начинается с начала текущего дня.
// AvailableTo проверяется отдельно: при его отсутствии верхняя граница не ограничена.
func (p *BookingProduct) AvailabilityWindow(now time.Time) (time.Time, time.Time) {
	loc := now.Location()

	if p.IsAlwaysAvailable() {
		return StartOfDay(now), FarFutureDate(loc)
	}

	from := p.AvailableFrom.In(loc).Truncate(time.Minute)
	to := FarFutureDate(loc)
	if p.AvailableTo != nil {
		to = p.AvailableTo.In(loc).Truncate(time.Minute)
	}

	return from, to
}
