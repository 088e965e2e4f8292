package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BookingSlotsService/pkg/ptr"
)

func TestBookingProduct_AvailabilityWindow(t *testing.T) {
	now := time.Date(2026, 10, 16, 14, 25, 0, 0, time.UTC)

	t.Run("every week", func(t *testing.T) {
		p := &BookingProduct{
			AvailableEveryWeek: true,
			AvailableFrom:      ptr.Ptr(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)),
		}
		from, to := p.AvailabilityWindow(now)
		assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, FarFutureDate(time.UTC), to)
	})

	t.Run("no available from", func(t *testing.T) {
		p := &BookingProduct{AvailableTo: ptr.Ptr(time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC))}
		from, to := p.AvailabilityWindow(now)
		assert.Equal(t, StartOfDay(now), from)
		assert.Equal(t, FarFutureDate(time.UTC), to)
	})

	t.Run("explicit dates truncated to minutes", func(t *testing.T) {
		p := &BookingProduct{
			AvailableFrom: ptr.Ptr(time.Date(2026, 10, 20, 9, 0, 42, 0, time.UTC)),
			AvailableTo:   ptr.Ptr(time.Date(2026, 10, 25, 18, 30, 15, 0, time.UTC)),
		}
		from, to := p.AvailabilityWindow(now)
		assert.Equal(t, time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, 10, 25, 18, 30, 0, 0, time.UTC), to)
	})

	t.Run("missing available to", func(t *testing.T) {
		p := &BookingProduct{AvailableFrom: ptr.Ptr(time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC))}
		_, to := p.AvailabilityWindow(now)
		assert.Equal(t, FarFutureDate(time.UTC), to)
	})

	t.Run("converted to location of now", func(t *testing.T) {
		loc := time.FixedZone("UTC+3", 3*60*60)
		p := &BookingProduct{
			AvailableFrom: ptr.Ptr(time.Date(2026, 10, 20, 22, 0, 0, 0, time.UTC)),
			AvailableTo:   ptr.Ptr(time.Date(2026, 10, 21, 22, 0, 0, 0, time.UTC)),
		}
		from, _ := p.AvailabilityWindow(now.In(loc))
		assert.Equal(t, 21, from.Day())
		assert.Equal(t, 1, from.Hour())
	})
}

func TestSlotTemplates_ForWeekday(t *testing.T) {
	shared := []TimeRange{{From: "09:00", To: "12:00"}}

	same := SlotTemplates{SameForAllDays: true, Shared: shared}
	assert.Equal(t, shared, same.ForWeekday(time.Sunday))
	assert.Equal(t, shared, same.ForWeekday(time.Thursday))
	assert.False(t, same.IsEmpty())

	perDay := SlotTemplates{ByWeekday: map[int][]TimeRange{1: shared}}
	assert.Equal(t, shared, perDay.ForWeekday(time.Monday))
	assert.Empty(t, perDay.ForWeekday(time.Tuesday))
	assert.False(t, perDay.IsEmpty())

	assert.True(t, SlotTemplates{ByWeekday: map[int][]TimeRange{2: {}}}.IsEmpty())
	assert.True(t, SlotTemplates{SameForAllDays: true}.IsEmpty())
}

func TestBookingSlot_Timestamp(t *testing.T) {
	from := time.Unix(1792137600, 0)
	s := BookingSlot{From: from, To: from.Add(30 * time.Minute)}

	assert.Equal(t, "1792137600-1792139400", s.Timestamp())
	assert.Equal(t, 30, s.DurationMinutes())
}
