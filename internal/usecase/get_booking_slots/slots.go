package get_booking_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingSlotsService/internal/domain"
)

// computeAvailableSlots рассчитывает слоты продукта на requestedDate.
//
// Слоты нарезаются внутри каждого интервала шаблона: первый слот начинается
// с начала интервала, каждый следующий сдвигается на перерыв после конца предыдущего.
// Нарезка интервала прекращается на первом слоте, вышедшем за границы.
// Слоты, начавшиеся раньше now или раньше начала окна доступности,
// пропускаются, но нарезку не прерывают.
//
// Ошибку возвращает только counter; любые пробелы в настройках дают пустой результат.
func computeAvailableSlots(
	ctx context.Context,
	product *domain.BookingProduct,
	config *domain.TableSlotConfig,
	requestedDate time.Time,
	now time.Time,
	counter ReservationCounter,
) ([]domain.BookingSlot, error) {
	slots := make([]domain.BookingSlot, 0)

	if product == nil || config == nil {
		return slots, nil
	}
	if config.DurationMinutes <= 0 || config.BreakTimeMinutes < 0 {
		return slots, nil
	}

	availableFrom, availableTo := product.AvailabilityWindow(now)

	day := domain.StartOfDay(requestedDate)
	if isOutsideWindow(day, availableFrom, availableTo) {
		return slots, nil
	}

	duration := time.Duration(config.DurationMinutes) * time.Minute
	breakTime := time.Duration(config.BreakTimeMinutes) * time.Minute

	for _, timeRange := range config.Slots.ForWeekday(day.Weekday()) {
		if !timeRange.From.IsValid() || !timeRange.To.IsValid() {
			continue
		}
		fromMinutes, _ := timeRange.From.Minutes()
		toMinutes, _ := timeRange.To.Minutes()

		startDayTime := day.Add(time.Duration(fromMinutes) * time.Minute)
		endDayTime := day.Add(time.Duration(toMinutes) * time.Minute)

		cursor := startDayTime
		for first := true; ; first = false {
			from := cursor
			cursor = cursor.Add(duration)

			if !first {
				from = from.Add(breakTime)
				cursor = cursor.Add(breakTime)
			}

			to := cursor

			if !isSlotWithinBounds(from, to, startDayTime, endDayTime, availableTo) {
				break
			}

			// первый день окна: слоты до availableFrom пропускаются
			if now.After(from) || from.Before(availableFrom) {
				continue
			}

			booked, err := counter.CountBooked(ctx, product.ProductID, from, to)
			if err != nil {
				return nil, err
			}
			if booked < 0 {
				booked = 0
			}

			slots = append(slots, domain.BookingSlot{From: from, To: to, Booked: booked})
		}
	}

	return slots, nil
}

// isOutsideWindow сравнивает день запроса с окном доступности с точностью до дня
func isOutsideWindow(day, availableFrom, availableTo time.Time) bool {
	return day.Before(domain.StartOfDay(availableFrom)) || day.After(domain.StartOfDay(availableTo))
}

// isSlotWithinBounds слот [from, to) лежит внутри интервала шаблона и не позже конца окна доступности.
// Все границы включительные.
func isSlotWithinBounds(from, to, startDayTime, endDayTime, availableTo time.Time) bool {
	return !from.Before(startDayTime) &&
		!from.After(availableTo) &&
		!to.After(availableTo) &&
		!to.Before(startDayTime) &&
		!from.After(endDayTime) &&
		!to.After(endDayTime)
}

// toResponseSlots форматирует слоты для отображения
func toResponseSlots(slots []domain.BookingSlot) []Slot {
	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{
			From:      s.From.Format(domain.SlotTimeFormat),
			To:        s.To.Format(domain.SlotTimeFormat),
			Timestamp: s.Timestamp(),
			Booked:    s.Booked,
		}
	}
	return result
}
