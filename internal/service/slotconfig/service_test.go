package slotconfig

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingSlotsService/internal/domain"
	bookingProductRepo "github.com/m04kA/SMC-BookingSlotsService/internal/infra/storage/bookingproduct"
	"github.com/m04kA/SMC-BookingSlotsService/internal/service/slotconfig/models"
	"github.com/m04kA/SMC-BookingSlotsService/pkg/events"
	"github.com/m04kA/SMC-BookingSlotsService/pkg/ptr"
)

type fakeRepo struct {
	product    *domain.BookingProduct
	productErr error
	config     *domain.TableSlotConfig
	configErr  error
	upsertErr  error
	upserted   *domain.TableSlotConfig
}

func (f *fakeRepo) GetByProductID(_ context.Context, _ int64) (*domain.BookingProduct, error) {
	return f.product, f.productErr
}

func (f *fakeRepo) GetTableSlotConfig(_ context.Context, _ int64) (*domain.TableSlotConfig, error) {
	return f.config, f.configErr
}

func (f *fakeRepo) UpsertTableSlotConfig(_ context.Context, config *domain.TableSlotConfig) (*domain.TableSlotConfig, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	saved := *config
	if saved.ID == 0 {
		saved.ID = 100
	}
	saved.UpdatedAt = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	f.upserted = &saved
	return &saved, nil
}

type fakeInvalidator struct {
	calls [][2]int64
	err   error
}

func (f *fakeInvalidator) Invalidate(_ context.Context, productID, bookingProductID int64) error {
	f.calls = append(f.calls, [2]int64{productID, bookingProductID})
	return f.err
}

type fakePublisher struct {
	subjects []string
	events   []interface{}
	err      error
}

func (f *fakePublisher) Publish(_ context.Context, subject string, data interface{}) error {
	f.subjects = append(f.subjects, subject)
	f.events = append(f.events, data)
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func existingConfig() *domain.TableSlotConfig {
	return &domain.TableSlotConfig{
		ID:               3,
		BookingProductID: 7,
		DurationMinutes:  30,
		BreakTimeMinutes: 10,
		Slots: domain.SlotTemplates{
			SameForAllDays: true,
			Shared:         []domain.TimeRange{{From: "09:00", To: "11:00"}},
		},
	}
}

func TestService_Get(t *testing.T) {
	repo := &fakeRepo{product: &domain.BookingProduct{ID: 7, ProductID: 42}, config: existingConfig()}
	svc := NewService(repo, nil, nil, nopLogger{})

	resp, err := svc.Get(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ProductID)
	assert.Equal(t, int64(7), resp.BookingProductID)
	assert.True(t, resp.SameSlotAllDays)
	assert.Equal(t, []models.TimeRange{{From: "09:00", To: "11:00"}}, resp.Slots)
	assert.Nil(t, resp.WeekdaySlots)
}

func TestService_Get_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repo    *fakeRepo
		wantErr error
	}{
		{
			name:    "no booking product",
			repo:    &fakeRepo{productErr: bookingProductRepo.ErrBookingProductNotFound},
			wantErr: ErrBookingProductNotFound,
		},
		{
			name:    "no slot config",
			repo:    &fakeRepo{product: &domain.BookingProduct{ID: 7}, configErr: bookingProductRepo.ErrTableSlotNotFound},
			wantErr: ErrSlotConfigNotFound,
		},
		{
			name:    "storage failure",
			repo:    &fakeRepo{product: &domain.BookingProduct{ID: 7}, configErr: errors.New("db down")},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.repo, nil, nil, nopLogger{})
			_, err := svc.Get(context.Background(), 42)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Update_Partial(t *testing.T) {
	repo := &fakeRepo{product: &domain.BookingProduct{ID: 7, ProductID: 42}, config: existingConfig()}
	cache := &fakeInvalidator{}
	publisher := &fakePublisher{}
	svc := NewService(repo, cache, publisher, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateSlotConfigRequest{
		ProductID:        42,
		UpdatedBy:        "admin@shop",
		BreakTimeMinutes: ptr.Ptr(5),
		Slots:            []models.TimeRange{{From: "9:00", To: "12:30"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, 5, resp.BreakTimeMinutes)
	assert.Equal(t, []models.TimeRange{{From: "09:00", To: "12:30"}}, resp.Slots)

	require.NotNil(t, repo.upserted)
	assert.Equal(t, int64(3), repo.upserted.ID)
	assert.Equal(t, []domain.TimeRange{{From: "09:00", To: "12:30"}}, repo.upserted.Slots.Shared)

	assert.Equal(t, 10, repo.config.BreakTimeMinutes, "stored config must not be mutated before save")

	assert.Equal(t, [][2]int64{{42, 7}}, cache.calls)
	require.Equal(t, []string{events.SubjectSlotConfigUpdated}, publisher.subjects)
	event, ok := publisher.events[0].(events.SlotConfigUpdatedEvent)
	require.True(t, ok)
	assert.Equal(t, int64(42), event.ProductID)
	assert.Equal(t, int64(7), event.BookingProductID)
	assert.Equal(t, "admin@shop", event.UpdatedBy)
}

func TestService_Update_CreatesWhenMissing(t *testing.T) {
	repo := &fakeRepo{
		product:   &domain.BookingProduct{ID: 7, ProductID: 42},
		configErr: bookingProductRepo.ErrTableSlotNotFound,
	}
	svc := NewService(repo, nil, nil, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateSlotConfigRequest{
		ProductID:       42,
		DurationMinutes: ptr.Ptr(60),
		SameSlotAllDays: ptr.Ptr(false),
		WeekdaySlots: map[int][]models.TimeRange{
			1: {{From: "10:00", To: "18:00"}},
			6: {{From: "12:00", To: "16:00"}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, int64(7), repo.upserted.BookingProductID)
	assert.False(t, resp.SameSlotAllDays)
	assert.Equal(t, []models.TimeRange{{From: "10:00", To: "18:00"}}, resp.WeekdaySlots[1])
	assert.Len(t, resp.WeekdaySlots, 2)
}

func TestService_Update_SideEffectFailuresDoNotFail(t *testing.T) {
	repo := &fakeRepo{product: &domain.BookingProduct{ID: 7, ProductID: 42}, config: existingConfig()}
	svc := NewService(repo,
		&fakeInvalidator{err: errors.New("redis down")},
		&fakePublisher{err: errors.New("nats down")},
		nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateSlotConfigRequest{ProductID: 42, GuestLimit: ptr.Ptr(4)})
	require.NoError(t, err)
	assert.Equal(t, 4, repo.upserted.GuestLimit)
}

func TestService_Update_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.UpdateSlotConfigRequest
	}{
		{name: "zero duration", req: models.UpdateSlotConfigRequest{DurationMinutes: ptr.Ptr(0)}},
		{name: "negative break", req: models.UpdateSlotConfigRequest{BreakTimeMinutes: ptr.Ptr(-1)}},
		{name: "negative guest limit", req: models.UpdateSlotConfigRequest{GuestLimit: ptr.Ptr(-1)}},
		{name: "prevent scheduling too large", req: models.UpdateSlotConfigRequest{PreventSchedulingBefore: ptr.Ptr(20000)}},
		{name: "malformed time", req: models.UpdateSlotConfigRequest{Slots: []models.TimeRange{{From: "9am", To: "11:00"}}}},
		{name: "to before from", req: models.UpdateSlotConfigRequest{Slots: []models.TimeRange{{From: "11:00", To: "09:00"}}}},
		{name: "empty range", req: models.UpdateSlotConfigRequest{Slots: []models.TimeRange{{From: "11:00", To: "11:00"}}}},
		{
			name: "weekday out of range",
			req: models.UpdateSlotConfigRequest{WeekdaySlots: map[int][]models.TimeRange{
				7: {{From: "09:00", To: "11:00"}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{product: &domain.BookingProduct{ID: 7, ProductID: 42}, config: existingConfig()}
			svc := NewService(repo, nil, nil, nopLogger{})

			req := tt.req
			req.ProductID = 42
			_, err := svc.Update(context.Background(), &req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.upserted)
		})
	}
}

func TestService_Update_Errors(t *testing.T) {
	t.Run("invalid product id", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, nil, nil, nopLogger{})
		_, err := svc.Update(context.Background(), &models.UpdateSlotConfigRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("no booking product", func(t *testing.T) {
		svc := NewService(&fakeRepo{productErr: bookingProductRepo.ErrBookingProductNotFound}, nil, nil, nopLogger{})
		_, err := svc.Update(context.Background(), &models.UpdateSlotConfigRequest{ProductID: 42})
		assert.ErrorIs(t, err, ErrBookingProductNotFound)
	})

	t.Run("upsert failure", func(t *testing.T) {
		repo := &fakeRepo{
			product:   &domain.BookingProduct{ID: 7},
			config:    existingConfig(),
			upsertErr: errors.New("db down"),
		}
		svc := NewService(repo, nil, nil, nopLogger{})
		_, err := svc.Update(context.Background(), &models.UpdateSlotConfigRequest{ProductID: 42})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
