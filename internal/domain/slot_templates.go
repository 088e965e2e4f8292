package domain

import (
	"time"

	"github.com/m04kA/SMC-BookingSlotsService/pkg/types"
)

// TimeRange интервал внутри дня, в котором нарезаются слоты
type TimeRange struct {
	From types.TimeString `json:"from"`
	To   types.TimeString `json:"to"`
}

// SlotTemplates шаблоны интервалов: общий список на все дни или по дням недели
// Ключи ByWeekday: 0 = воскресенье ... 6 = суббота
type SlotTemplates struct {
	SameForAllDays bool
	Shared         []TimeRange
	ByWeekday      map[int][]TimeRange
}

// ForWeekday возвращает интервалы для дня недели; отсутствующий день даёт пустой список
func (s SlotTemplates) ForWeekday(weekday time.Weekday) []TimeRange {
	if s.SameForAllDays {
		return s.Shared
	}
	return s.ByWeekday[int(weekday)]
}

// IsEmpty нет ни одного интервала
func (s SlotTemplates) IsEmpty() bool {
	if s.SameForAllDays {
		return len(s.Shared) == 0
	}
	for _, ranges := range s.ByWeekday {
		if len(ranges) > 0 {
			return false
		}
	}
	return true
}

// TableSlotConfig настройки нарезки слотов продукта
type TableSlotConfig struct {
	ID                      int64
	BookingProductID        int64
	DurationMinutes         int
	BreakTimeMinutes        int
	PreventSchedulingBefore int
	GuestLimit              int
	Slots                   SlotTemplates
	CreatedAt               time.Time
	UpdatedAt               time.Time
}
