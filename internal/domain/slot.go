package domain

import (
	"fmt"
	"time"
)

// BookingSlot рассчитанный слот с количеством уже забронированных мест
type BookingSlot struct {
	From   time.Time
	To     time.Time
	Booked int
}

// Timestamp ключ слота "<from>-<to>" в unix-секундах, тот же, что хранится в заказе
func (s BookingSlot) Timestamp() string {
	return SlotKey(s.From, s.To)
}

// DurationMinutes длительность слота в минутах
func (s BookingSlot) DurationMinutes() int {
	return int(s.To.Sub(s.From) / time.Minute)
}

// SlotKey формирует ключ слота по границам
func SlotKey(from, to time.Time) string {
	return fmt.Sprintf("%d-%d", from.Unix(), to.Unix())
}
