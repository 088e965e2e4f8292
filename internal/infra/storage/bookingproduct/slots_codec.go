package bookingproduct

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-BookingSlotsService/internal/domain"
	"github.com/m04kA/SMC-BookingSlotsService/pkg/types"
)

// rawRange элемент JSON колонки slots
type rawRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// decodeSlotTemplates разбирает JSON колонки slots.
//
// Поддерживаемые формы:
//   - общий список: [{"from":"09:00","to":"12:00"}, ...]
//   - по дням недели объектом: {"0":[...], "1":[...]}
//   - по дням недели массивом, индекс = день недели: [[...], [...], null, ...]
//
// Интервалы с некорректным временем пропускаются.
func decodeSlotTemplates(sameForAllDays bool, raw []byte) (domain.SlotTemplates, error) {
	templates := domain.SlotTemplates{
		SameForAllDays: sameForAllDays,
		ByWeekday:      map[int][]domain.TimeRange{},
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return templates, nil
	}

	if sameForAllDays {
		var ranges []rawRange
		if err := json.Unmarshal(raw, &ranges); err != nil {
			return templates, fmt.Errorf("%w: shared slots: %v", ErrMalformedSlots, err)
		}
		templates.Shared = toTimeRanges(ranges)
		return templates, nil
	}

	switch raw[0] {
	case '{':
		var byKey map[string][]rawRange
		if err := json.Unmarshal(raw, &byKey); err != nil {
			return templates, fmt.Errorf("%w: weekday slots: %v", ErrMalformedSlots, err)
		}
		for key, ranges := range byKey {
			weekday, err := strconv.Atoi(key)
			if err != nil || weekday < 0 || weekday > 6 {
				continue
			}
			templates.ByWeekday[weekday] = toTimeRanges(ranges)
		}

	case '[':
		var byIndex [][]rawRange
		if err := json.Unmarshal(raw, &byIndex); err != nil {
			return templates, fmt.Errorf("%w: weekday slots: %v", ErrMalformedSlots, err)
		}
		for weekday, ranges := range byIndex {
			if weekday > 6 {
				break
			}
			templates.ByWeekday[weekday] = toTimeRanges(ranges)
		}

	default:
		return templates, fmt.Errorf("%w: unexpected json value", ErrMalformedSlots)
	}

	return templates, nil
}

// encodeSlotTemplates сериализует шаблоны в форму, которую понимает decodeSlotTemplates
func encodeSlotTemplates(templates domain.SlotTemplates) ([]byte, error) {
	if templates.SameForAllDays {
		return json.Marshal(fromTimeRanges(templates.Shared))
	}

	byKey := make(map[string][]rawRange, len(templates.ByWeekday))
	for weekday, ranges := range templates.ByWeekday {
		byKey[strconv.Itoa(weekday)] = fromTimeRanges(ranges)
	}
	return json.Marshal(byKey)
}

func toTimeRanges(ranges []rawRange) []domain.TimeRange {
	result := make([]domain.TimeRange, 0, len(ranges))
	for _, r := range ranges {
		from, err := types.NewTimeStringFromString(r.From)
		if err != nil {
			continue
		}
		to, err := types.NewTimeStringFromString(r.To)
		if err != nil {
			continue
		}
		result = append(result, domain.TimeRange{From: from, To: to})
	}
	return result
}

func fromTimeRanges(ranges []domain.TimeRange) []rawRange {
	result := make([]rawRange, 0, len(ranges))
	for _, r := range ranges {
		result = append(result, rawRange{From: r.From.String(), To: r.To.String()})
	}
	return result
}
