package bookingproduct

import (
	"context"
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-BookingSlotsService/pkg/events"
)

const invalidateTimeout = 5 * time.Second

// OnSlotConfigUpdated обработчик события events.SubjectSlotConfigUpdated.
// Сбрасывает кэш на всех экземплярах сервиса, а не только на том, где прошло обновление.
func (c *Cache) OnSlotConfigUpdated(data []byte) {
	var event events.SlotConfigUpdatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		c.logger.Warn("Cache: failed to decode %s event: %v", events.SubjectSlotConfigUpdated, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), invalidateTimeout)
	defer cancel()

	if err := c.Invalidate(ctx, event.ProductID, event.BookingProductID); err != nil {
		c.logger.Warn("Cache: failed to invalidate product=%d on event: %v", event.ProductID, err)
	}
}
