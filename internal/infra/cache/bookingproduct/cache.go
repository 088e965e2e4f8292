package bookingproduct

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-BookingSlotsService/internal/domain"
	"github.com/m04kA/SMC-BookingSlotsService/pkg/metrics"
)

const (
	entityBookingProduct = "booking_product"
	entityTableSlot      = "table_slot"
)

// Cache read-through кэш настроек бронирования поверх ProductReader.
// Ошибки Redis не прерывают запрос: чтение уходит в source.
type Cache struct {
	client  redis.UniversalClient
	source  ProductReader
	ttl     time.Duration
	metrics MetricsCollector
	logger  Logger
}

// NewCache создает кэш; metrics может быть nil
func NewCache(client redis.UniversalClient, source ProductReader, ttl time.Duration, metrics MetricsCollector, logger Logger) *Cache {
	return &Cache{
		client:  client,
		source:  source,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

func productKey(productID int64) string {
	return fmt.Sprintf("%s:%d", entityBookingProduct, productID)
}

func tableSlotKey(bookingProductID int64) string {
	return fmt.Sprintf("%s:%d", entityTableSlot, bookingProductID)
}

// GetByProductID отдаёт настройки бронирования из кэша или из source
func (c *Cache) GetByProductID(ctx context.Context, productID int64) (*domain.BookingProduct, error) {
	var product domain.BookingProduct
	if c.load(ctx, entityBookingProduct, productKey(productID), &product) {
		return &product, nil
	}

	fresh, err := c.source.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, productKey(productID), fresh)
	return fresh, nil
}

// GetTableSlotConfig отдаёт настройки слотов из кэша или из source.
// Конфигурация с повреждёнными шаблонами не кэшируется.
func (c *Cache) GetTableSlotConfig(ctx context.Context, bookingProductID int64) (*domain.TableSlotConfig, error) {
	var config domain.TableSlotConfig
	if c.load(ctx, entityTableSlot, tableSlotKey(bookingProductID), &config) {
		return &config, nil
	}

	fresh, err := c.source.GetTableSlotConfig(ctx, bookingProductID)
	if err != nil {
		return fresh, err
	}

	c.store(ctx, tableSlotKey(bookingProductID), fresh)
	return fresh, nil
}

// Invalidate удаляет закэшированные настройки продукта
func (c *Cache) Invalidate(ctx context.Context, productID, bookingProductID int64) error {
	if err := c.client.Del(ctx, productKey(productID), tableSlotKey(bookingProductID)).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - product=%d: %v", ErrCache, productID, err)
	}
	return nil
}

func (c *Cache) load(ctx context.Context, entity, key string, dst interface{}) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.observe(entity, metrics.CacheMiss)
		return false
	}
	if err != nil {
		c.logger.Warn("Cache: failed to get %s: %v", key, err)
		c.observe(entity, metrics.CacheError)
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		c.logger.Warn("Cache: failed to decode %s: %v", key, err)
		c.observe(entity, metrics.CacheError)
		return false
	}

	c.observe(entity, metrics.CacheHit)
	return true
}

func (c *Cache) store(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Cache: failed to encode %s: %v", key, err)
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("Cache: failed to set %s: %v", key, err)
	}
}

func (c *Cache) observe(entity, result string) {
	if c.metrics != nil {
		c.metrics.ObserveCache(entity, result)
	}
}
