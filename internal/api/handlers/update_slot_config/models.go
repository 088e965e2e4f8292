package update_slot_config

import (
	"github.com/m04kA/SMC-BookingSlotsService/internal/service/slotconfig/models"
)

// UpdateSlotConfigRequest HTTP request model
type UpdateSlotConfigRequest struct {
	DurationMinutes         *int                       `json:"durationMinutes,omitempty"`
	BreakTimeMinutes        *int                       `json:"breakTimeMinutes,omitempty"`
	PreventSchedulingBefore *int                       `json:"preventSchedulingBefore,omitempty"`
	GuestLimit              *int                       `json:"guestLimit,omitempty"`
	SameSlotAllDays         *bool                      `json:"sameSlotAllDays,omitempty"`
	Slots                   []models.TimeRange         `json:"slots,omitempty"`
	WeekdaySlots            map[int][]models.TimeRange `json:"weekdaySlots,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateSlotConfigRequest) ToServiceRequest(productID int64, updatedBy string) *models.UpdateSlotConfigRequest {
	return &models.UpdateSlotConfigRequest{
		ProductID:               productID,
		UpdatedBy:               updatedBy,
		DurationMinutes:         r.DurationMinutes,
		BreakTimeMinutes:        r.BreakTimeMinutes,
		PreventSchedulingBefore: r.PreventSchedulingBefore,
		GuestLimit:              r.GuestLimit,
		SameSlotAllDays:         r.SameSlotAllDays,
		Slots:                   r.Slots,
		WeekdaySlots:            r.WeekdaySlots,
	}
}
