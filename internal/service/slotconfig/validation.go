package slotconfig

import (
	"fmt"

	"github.com/m04kA/SMC-BookingSlotsService/internal/domain"
	"github.com/m04kA/SMC-BookingSlotsService/pkg/types"
)

// validateConfigData валидирует числовые параметры нарезки
func validateConfigData(config *domain.TableSlotConfig) error {
	if config.DurationMinutes < domain.MinSlotDurationMinutes || config.DurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if config.BreakTimeMinutes < domain.MinBreakTimeMinutes || config.BreakTimeMinutes > domain.MaxBreakTimeMinutes {
		return fmt.Errorf("%w: breakTimeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBreakTimeMinutes, domain.MaxBreakTimeMinutes)
	}

	if config.PreventSchedulingBefore < 0 || config.PreventSchedulingBefore > domain.MaxPreventSchedulingBefore {
		return fmt.Errorf("%w: preventSchedulingBefore must be between 0 and %d",
			ErrInvalidInput, domain.MaxPreventSchedulingBefore)
	}

	if config.GuestLimit < 0 {
		return fmt.Errorf("%w: guestLimit must not be negative", ErrInvalidInput)
	}

	return nil
}

// normalizeTemplates проверяет интервалы шаблонов и приводит время к виду HH:MM
func normalizeTemplates(slots domain.SlotTemplates) (domain.SlotTemplates, error) {
	result := domain.SlotTemplates{SameForAllDays: slots.SameForAllDays}

	shared, err := normalizeRanges(slots.Shared)
	if err != nil {
		return result, fmt.Errorf("%w: slots: %v", ErrInvalidInput, err)
	}
	result.Shared = shared

	if len(slots.ByWeekday) > 0 {
		result.ByWeekday = make(map[int][]domain.TimeRange, len(slots.ByWeekday))
	}
	for weekday, ranges := range slots.ByWeekday {
		if weekday < 0 || weekday > 6 {
			return result, fmt.Errorf("%w: weekday %d must be between 0 and 6", ErrInvalidInput, weekday)
		}

		normalized, err := normalizeRanges(ranges)
		if err != nil {
			return result, fmt.Errorf("%w: weekdaySlots[%d]: %v", ErrInvalidInput, weekday, err)
		}
		result.ByWeekday[weekday] = normalized
	}

	return result, nil
}

func normalizeRanges(ranges []domain.TimeRange) ([]domain.TimeRange, error) {
	if len(ranges) > domain.MaxRangesPerDay {
		return nil, fmt.Errorf("at most %d ranges allowed", domain.MaxRangesPerDay)
	}

	result := make([]domain.TimeRange, 0, len(ranges))
	for i, r := range ranges {
		from, err := types.NewTimeStringFromString(r.From.String())
		if err != nil {
			return nil, fmt.Errorf("range %d: from: %v", i, err)
		}
		to, err := types.NewTimeStringFromString(r.To.String())
		if err != nil {
			return nil, fmt.Errorf("range %d: to: %v", i, err)
		}
		if !from.IsBefore(to) {
			return nil, fmt.Errorf("range %d: from %s must be before to %s", i, from, to)
		}

		result = append(result, domain.TimeRange{From: from, To: to})
	}

	return result, nil
}
