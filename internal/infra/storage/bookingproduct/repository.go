package bookingproduct

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BookingSlotsService/internal/domain"
	"github.com/m04kA/SMC-BookingSlotsService/pkg/psqlbuilder"
)

const (
	tableBookingProducts = "booking_products"
	tableTableSlots      = "booking_product_table_slots"
)

// Repository репозиторий настроек бронирования продуктов и шаблонов слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProductID получает настройки бронирования по ID продукта каталога
func (r *Repository) GetByProductID(ctx context.Context, productID int64) (*domain.BookingProduct, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"product_id",
		"COALESCE(type, 'default')",
		"COALESCE(qty, 0)",
		"available_every_week",
		"available_from",
		"available_to",
		"created_at",
		"updated_at",
	).
		From(tableBookingProducts).
		Where(squirrel.Eq{"product_id": productID}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProductID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		product                    domain.BookingProduct
		availableEveryWeek         sql.NullBool
		availableFrom, availableTo sql.NullTime
		createdAt, updatedAt       sql.NullTime
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&product.ID,
		&product.ProductID,
		&product.Type,
		&product.Qty,
		&availableEveryWeek,
		&availableFrom,
		&availableTo,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProductID - scan booking product: %v", ErrScanRow, err)
	}

	product.AvailableEveryWeek = availableEveryWeek.Bool
	if availableFrom.Valid {
		product.AvailableFrom = &availableFrom.Time
	}
	if availableTo.Valid {
		product.AvailableTo = &availableTo.Time
	}
	product.CreatedAt = createdAt.Time
	product.UpdatedAt = updatedAt.Time

	return &product, nil
}

// GetTableSlotConfig получает настройки нарезки слотов для booking product.
// Если JSON шаблонов повреждён, возвращает конфигурацию с пустыми шаблонами и ErrMalformedSlots.
func (r *Repository) GetTableSlotConfig(ctx context.Context, bookingProductID int64) (*domain.TableSlotConfig, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"booking_product_id",
		"COALESCE(duration, 0)",
		"COALESCE(break_time, 0)",
		"COALESCE(prevent_scheduling_before, 0)",
		"COALESCE(guest_limit, 0)",
		"COALESCE(same_slot_all_days, false)",
		"slots",
		"created_at",
		"updated_at",
	).
		From(tableTableSlots).
		Where(squirrel.Eq{"booking_product_id": bookingProductID}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTableSlotConfig - build select query: %v", ErrBuildQuery, err)
	}

	var (
		config               domain.TableSlotConfig
		sameSlotAllDays      bool
		rawSlots             []byte
		createdAt, updatedAt sql.NullTime
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.BookingProductID,
		&config.DurationMinutes,
		&config.BreakTimeMinutes,
		&config.PreventSchedulingBefore,
		&config.GuestLimit,
		&sameSlotAllDays,
		&rawSlots,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTableSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTableSlotConfig - scan table slot: %v", ErrScanRow, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	config.Slots, err = decodeSlotTemplates(sameSlotAllDays, rawSlots)
	if err != nil {
		return &config, fmt.Errorf("GetTableSlotConfig - booking_product_id=%d: %w", bookingProductID, err)
	}

	return &config, nil
}

// UpsertTableSlotConfig создает или обновляет настройки слотов (одна запись на booking product)
func (r *Repository) UpsertTableSlotConfig(ctx context.Context, config *domain.TableSlotConfig) (*domain.TableSlotConfig, error) {
	rawSlots, err := encodeSlotTemplates(config.Slots)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertTableSlotConfig - encode slots: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert(tableTableSlots).
		Columns(
			"booking_product_id",
			"duration",
			"break_time",
			"prevent_scheduling_before",
			"guest_limit",
			"same_slot_all_days",
			"slots",
		).
		Values(
			config.BookingProductID,
			config.DurationMinutes,
			config.BreakTimeMinutes,
			config.PreventSchedulingBefore,
			config.GuestLimit,
			config.Slots.SameForAllDays,
			string(rawSlots),
		).
		Suffix(`ON CONFLICT (booking_product_id) DO UPDATE SET
			duration = EXCLUDED.duration,
			break_time = EXCLUDED.break_time,
			prevent_scheduling_before = EXCLUDED.prevent_scheduling_before,
			guest_limit = EXCLUDED.guest_limit,
			same_slot_all_days = EXCLUDED.same_slot_all_days,
			slots = EXCLUDED.slots,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertTableSlotConfig - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&config.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertTableSlotConfig - execute upsert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}
