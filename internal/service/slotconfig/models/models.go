package models

import (
	"time"

	"github.com/m04kA/SMC-BookingSlotsService/internal/domain"
	"github.com/m04kA/SMC-BookingSlotsService/pkg/types"
)

// TimeRange интервал шаблона в формате HH:MM
type TimeRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Request модели

// UpdateSlotConfigRequest запрос на обновление настроек слотов продукта
// Все поля опциональны - обновляются только переданные значения
type UpdateSlotConfigRequest struct {
	ProductID               int64               `json:"-"`
	UpdatedBy               string              `json:"-"`
	DurationMinutes         *int                `json:"durationMinutes,omitempty"`
	BreakTimeMinutes        *int                `json:"breakTimeMinutes,omitempty"`
	PreventSchedulingBefore *int                `json:"preventSchedulingBefore,omitempty"`
	GuestLimit              *int                `json:"guestLimit,omitempty"`
	SameSlotAllDays         *bool               `json:"sameSlotAllDays,omitempty"`
	Slots                   []TimeRange         `json:"slots,omitempty"`        // общий список на все дни
	WeekdaySlots            map[int][]TimeRange `json:"weekdaySlots,omitempty"` // 0 = воскресенье ... 6 = суббота
}

// Response модели

// SlotConfigResponse ответ с настройками слотов продукта
type SlotConfigResponse struct {
	ID                      int64               `json:"id"`
	ProductID               int64               `json:"productId"`
	BookingProductID        int64               `json:"bookingProductId"`
	DurationMinutes         int                 `json:"durationMinutes"`
	BreakTimeMinutes        int                 `json:"breakTimeMinutes"`
	PreventSchedulingBefore int                 `json:"preventSchedulingBefore"`
	GuestLimit              int                 `json:"guestLimit"`
	SameSlotAllDays         bool                `json:"sameSlotAllDays"`
	Slots                   []TimeRange         `json:"slots,omitempty"`
	WeekdaySlots            map[int][]TimeRange `json:"weekdaySlots,omitempty"`
	CreatedAt               time.Time           `json:"createdAt"`
	UpdatedAt               time.Time           `json:"updatedAt"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(productID int64, c *domain.TableSlotConfig) *SlotConfigResponse {
	if c == nil {
		return nil
	}

	resp := &SlotConfigResponse{
		ID:                      c.ID,
		ProductID:               productID,
		BookingProductID:        c.BookingProductID,
		DurationMinutes:         c.DurationMinutes,
		BreakTimeMinutes:        c.BreakTimeMinutes,
		PreventSchedulingBefore: c.PreventSchedulingBefore,
		GuestLimit:              c.GuestLimit,
		SameSlotAllDays:         c.Slots.SameForAllDays,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               c.UpdatedAt,
	}

	if c.Slots.SameForAllDays {
		resp.Slots = fromDomainRanges(c.Slots.Shared)
		return resp
	}

	resp.WeekdaySlots = make(map[int][]TimeRange, len(c.Slots.ByWeekday))
	for weekday, ranges := range c.Slots.ByWeekday {
		resp.WeekdaySlots[weekday] = fromDomainRanges(ranges)
	}

	return resp
}

func fromDomainRanges(ranges []domain.TimeRange) []TimeRange {
	result := make([]TimeRange, len(ranges))
	for i, r := range ranges {
		result[i] = TimeRange{From: r.From.String(), To: r.To.String()}
	}
	return result
}

func toDomainRanges(ranges []TimeRange) []domain.TimeRange {
	result := make([]domain.TimeRange, len(ranges))
	for i, r := range ranges {
		result[i] = domain.TimeRange{From: types.TimeString(r.From), To: types.TimeString(r.To)}
	}
	return result
}

// ApplyToConfig применяет обновления к существующей конфигурации
// Обновляются только непустые (not nil) поля из request; списки интервалов заменяются целиком
func (r *UpdateSlotConfigRequest) ApplyToConfig(config *domain.TableSlotConfig) {
	if r.DurationMinutes != nil {
		config.DurationMinutes = *r.DurationMinutes
	}
	if r.BreakTimeMinutes != nil {
		config.BreakTimeMinutes = *r.BreakTimeMinutes
	}
	if r.PreventSchedulingBefore != nil {
		config.PreventSchedulingBefore = *r.PreventSchedulingBefore
	}
	if r.GuestLimit != nil {
		config.GuestLimit = *r.GuestLimit
	}
	if r.SameSlotAllDays != nil {
		config.Slots.SameForAllDays = *r.SameSlotAllDays
	}
	if r.Slots != nil {
		config.Slots.Shared = toDomainRanges(r.Slots)
	}
	if r.WeekdaySlots != nil {
		config.Slots.ByWeekday = make(map[int][]domain.TimeRange, len(r.WeekdaySlots))
		for weekday, ranges := range r.WeekdaySlots {
			config.Slots.ByWeekday[weekday] = toDomainRanges(ranges)
		}
	}
}
