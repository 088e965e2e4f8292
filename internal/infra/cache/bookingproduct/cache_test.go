package bookingproduct

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingSlotsService/internal/domain"
	"github.com/m04kA/SMC-BookingSlotsService/pkg/ptr"
)

var errNotFound = errors.New("not found")

type countingReader struct {
	product      *domain.BookingProduct
	config       *domain.TableSlotConfig
	err          error
	productCalls int
	configCalls  int
}

func (r *countingReader) GetByProductID(_ context.Context, _ int64) (*domain.BookingProduct, error) {
	r.productCalls++
	if r.err != nil {
		return nil, r.err
	}
	return r.product, nil
}

func (r *countingReader) GetTableSlotConfig(_ context.Context, _ int64) (*domain.TableSlotConfig, error) {
	r.configCalls++
	if r.err != nil {
		return nil, r.err
	}
	return r.config, nil
}

type cacheMetrics struct{ results []string }

func (m *cacheMetrics) ObserveCache(entity, result string) {
	m.results = append(m.results, entity+":"+result)
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func newTestCache(t *testing.T, source ProductReader) (*Cache, *miniredis.Miniredis, *cacheMetrics) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	m := &cacheMetrics{}
	return NewCache(client, source, time.Minute, m, nopLogger{}), mr, m
}

func TestCache_GetByProductID_ReadThrough(t *testing.T) {
	source := &countingReader{product: &domain.BookingProduct{
		ID:            7,
		ProductID:     42,
		Type:          domain.BookingTypeTable,
		AvailableFrom: ptr.Ptr(time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)),
	}}
	cache, mr, m := newTestCache(t, source)

	first, err := cache.GetByProductID(context.Background(), 42)
	require.NoError(t, err)
	second, err := cache.GetByProductID(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, 1, source.productCalls)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Type, second.Type)
	assert.True(t, first.AvailableFrom.Equal(*second.AvailableFrom))
	assert.True(t, mr.Exists("booking_product:42"))
	assert.Equal(t, []string{"booking_product:miss", "booking_product:hit"}, m.results)
}

func TestCache_GetTableSlotConfig_ReadThrough(t *testing.T) {
	source := &countingReader{config: &domain.TableSlotConfig{
		ID:               3,
		BookingProductID: 7,
		DurationMinutes:  30,
		BreakTimeMinutes: 10,
		Slots: domain.SlotTemplates{
			ByWeekday: map[int][]domain.TimeRange{1: {{From: "09:00", To: "11:00"}}},
		},
	}}
	cache, _, _ := newTestCache(t, source)

	_, err := cache.GetTableSlotConfig(context.Background(), 7)
	require.NoError(t, err)
	cached, err := cache.GetTableSlotConfig(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 1, source.configCalls)
	assert.Equal(t, source.config.Slots, cached.Slots)
	assert.Equal(t, 30, cached.DurationMinutes)
}

func TestCache_NotFoundIsNotCached(t *testing.T) {
	source := &countingReader{err: errNotFound}
	cache, mr, _ := newTestCache(t, source)

	for i := 0; i < 2; i++ {
		_, err := cache.GetByProductID(context.Background(), 42)
		assert.ErrorIs(t, err, errNotFound)
	}

	assert.Equal(t, 2, source.productCalls)
	assert.False(t, mr.Exists("booking_product:42"))
}

func TestCache_Invalidate(t *testing.T) {
	source := &countingReader{
		product: &domain.BookingProduct{ID: 7, ProductID: 42},
		config:  &domain.TableSlotConfig{BookingProductID: 7, DurationMinutes: 30},
	}
	cache, mr, _ := newTestCache(t, source)

	_, err := cache.GetByProductID(context.Background(), 42)
	require.NoError(t, err)
	_, err = cache.GetTableSlotConfig(context.Background(), 7)
	require.NoError(t, err)

	require.NoError(t, cache.Invalidate(context.Background(), 42, 7))
	assert.False(t, mr.Exists("booking_product:42"))
	assert.False(t, mr.Exists("table_slot:7"))

	_, err = cache.GetByProductID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 2, source.productCalls)
}

func TestCache_RedisDownFallsBackToSource(t *testing.T) {
	source := &countingReader{product: &domain.BookingProduct{ID: 7, ProductID: 42}}
	cache, mr, m := newTestCache(t, source)
	mr.Close()

	product, err := cache.GetByProductID(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(7), product.ID)
	assert.Equal(t, []string{"booking_product:error"}, m.results)
}

func TestCache_CorruptedEntryFallsBackToSource(t *testing.T) {
	source := &countingReader{product: &domain.BookingProduct{ID: 7, ProductID: 42}}
	cache, mr, _ := newTestCache(t, source)
	require.NoError(t, mr.Set("booking_product:42", "{not json"))

	product, err := cache.GetByProductID(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(7), product.ID)
	assert.Equal(t, 1, source.productCalls)
}

func TestCache_OnSlotConfigUpdated(t *testing.T) {
	source := &countingReader{
		product: &domain.BookingProduct{ID: 7, ProductID: 42},
		config:  &domain.TableSlotConfig{BookingProductID: 7, DurationMinutes: 30},
	}
	cache, mr, _ := newTestCache(t, source)

	_, err := cache.GetByProductID(context.Background(), 42)
	require.NoError(t, err)
	_, err = cache.GetTableSlotConfig(context.Background(), 7)
	require.NoError(t, err)

	cache.OnSlotConfigUpdated([]byte(`{"product_id":42,"booking_product_id":7,"updated_at":"2026-10-16T12:00:00Z"}`))

	assert.False(t, mr.Exists("booking_product:42"))
	assert.False(t, mr.Exists("table_slot:7"))

	cache.OnSlotConfigUpdated([]byte(`not json`))
}
