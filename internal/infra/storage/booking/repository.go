package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BookingSlotsService/internal/domain"
	"github.com/m04kA/SMC-BookingSlotsService/pkg/psqlbuilder"
)

// Repository репозиторий бронирований (только чтение занятости слотов)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CountBooked возвращает количество забронированных мест на слот [from, to) продукта.
//
// Учитываются бронирования, у которых границы совпадают с слотом точно
// и позиция заказа хранит тот же ключ слота в additional.booking.slot.
// Занятость позиции = qty_ordered - qty_canceled - qty_refunded.
// Если совпадений нет, возвращает 0.
func (r *Repository) CountBooked(ctx context.Context, productID int64, from, to time.Time) (int, error) {
	if !to.After(from) {
		return 0, fmt.Errorf("%w: from=%s to=%s", ErrInvalidSlot, from, to)
	}

	query, args, err := buildCountBookedQuery(productID, from, to)
	if err != nil {
		return 0, fmt.Errorf("%w: CountBooked - build select query: %v", ErrBuildQuery, err)
	}

	var booked int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&booked); err != nil {
		return 0, fmt.Errorf("%w: CountBooked - scan total: %v", ErrScanRow, err)
	}

	if booked < 0 {
		booked = 0
	}

	return int(booked), nil
}

func buildCountBookedQuery(productID int64, from, to time.Time) (string, []interface{}, error) {
	return psqlbuilder.Select(
		"COALESCE(SUM(oi.qty_ordered - oi.qty_canceled - oi.qty_refunded), 0)",
	).
		From("bookings b").
		LeftJoin("order_items oi ON b.order_item_id = oi.id").
		Where(squirrel.Eq{"b.product_id": productID}).
		Where(squirrel.Eq{`b."from"`: from.Unix()}).
		Where(squirrel.Eq{`b."to"`: to.Unix()}).
		Where(squirrel.Expr("oi.additional->'booking'->>'slot' = ?", domain.SlotKey(from, to))).
		ToSql()
}
