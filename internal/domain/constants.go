package domain

import "time"

// BookingType тип бронируемого продукта
type BookingType string

const (
	BookingTypeDefault     BookingType = "default"
	BookingTypeAppointment BookingType = "appointment"
	BookingTypeEvent       BookingType = "event"
	BookingTypeRental      BookingType = "rental"
	BookingTypeTable       BookingType = "table"
)

// Business validation constants
const (
	MinSlotDurationMinutes     = 1
	MaxSlotDurationMinutes     = 1440 // сутки
	MinBreakTimeMinutes        = 0
	MaxBreakTimeMinutes        = 1440
	MaxPreventSchedulingBefore = 10080 // неделя
	MaxRangesPerDay            = 48
)

// Time format constants
const (
	TimeFormat     = "15:04"      // HH:MM
	DateFormat     = "2006-01-02" // YYYY-MM-DD
	SlotTimeFormat = "03:04 PM"   // 12-часовой формат для отображения слотов
)

// SlotDateFilterKey ключ фильтра GraphQL запроса, в котором передаётся дата слотов
const SlotDateFilterKey = "slot_date"

// FarFutureDate верхняя граница окна доступности для продуктов без ограничения по датам
func FarFutureDate(loc *time.Location) time.Time {
	return time.Date(2080, time.January, 1, 0, 0, 0, 0, loc)
}

// StartOfDay возвращает полночь дня t в его часовом поясе
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
