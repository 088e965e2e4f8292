package gql

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/graphql-go/graphql"

	"github.com/m04kA/SMC-BookingSlotsService/internal/domain"
	bookingProductRepo "github.com/m04kA/SMC-BookingSlotsService/internal/infra/storage/bookingproduct"
	getBookingSlots "github.com/m04kA/SMC-BookingSlotsService/internal/usecase/get_booking_slots"
)

var (
	// ErrInvalidArgument возвращается при некорректных аргументах запроса
	ErrInvalidArgument = errors.New("gql: invalid argument")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("gql: internal error")
)

// productSource родительское значение для полей Product
type productSource struct {
	ID int64
	// дата из фильтра slot_date, пусто если не передана
	SlotDate string
}

// Resolver резолверы GraphQL схемы
type Resolver struct {
	slots    BookingSlotsUseCase
	products BookingProductReader
	logger   Logger
}

// NewResolver создает резолверы
func NewResolver(slots BookingSlotsUseCase, products BookingProductReader, logger Logger) *Resolver {
	return &Resolver{
		slots:    slots,
		products: products,
		logger:   logger,
	}
}

func (r *Resolver) product(p graphql.ResolveParams) (interface{}, error) {
	id, ok := p.Args["id"].(int)
	if !ok || id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidArgument)
	}

	source := &productSource{ID: int64(id)}

	if filters, ok := p.Args["filters"].([]interface{}); ok {
		for _, raw := range filters {
			filter, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			if key, _ := filter["key"].(string); key == domain.SlotDateFilterKey {
				source.SlotDate, _ = filter["value"].(string)
			}
		}
	}

	return source, nil
}

func (r *Resolver) productID(p graphql.ResolveParams) (interface{}, error) {
	source, ok := p.Source.(*productSource)
	if !ok {
		return nil, nil
	}
	return int(source.ID), nil
}

func (r *Resolver) bookingProduct(p graphql.ResolveParams) (interface{}, error) {
	source, ok := p.Source.(*productSource)
	if !ok {
		return nil, nil
	}

	product, err := r.products.GetByProductID(p.Context, source.ID)
	if err != nil {
		if errors.Is(err, bookingProductRepo.ErrBookingProductNotFound) {
			return nil, nil
		}
		r.logger.Error("GraphQL bookingProduct: product=%d: %v", source.ID, err)
		return nil, ErrInternal
	}

	return map[string]interface{}{
		"id":                 int(product.ID),
		"productId":          int(product.ProductID),
		"type":               string(product.Type),
		"qty":                product.Qty,
		"availableEveryWeek": product.AvailableEveryWeek,
		"availableFrom":      formatOptionalTime(product.AvailableFrom),
		"availableTo":        formatOptionalTime(product.AvailableTo),
	}, nil
}

func (r *Resolver) tableSlots(p graphql.ResolveParams) (interface{}, error) {
	source, ok := p.Source.(*productSource)
	if !ok {
		return nil, nil
	}

	resp, err := r.execute(p, source.ID, pickSlotDate(p.Args, source.SlotDate))
	if err != nil {
		return nil, err
	}
	return slotsToMaps(resp.Slots), nil
}

// formattedTableSlots JSON строка {"data":[...]}
func (r *Resolver) formattedTableSlots(p graphql.ResolveParams) (interface{}, error) {
	source, ok := p.Source.(*productSource)
	if !ok {
		return nil, nil
	}

	resp, err := r.execute(p, source.ID, pickSlotDate(p.Args, source.SlotDate))
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(map[string]interface{}{"data": slotsToMaps(resp.Slots)})
	if err != nil {
		return nil, fmt.Errorf("%w: marshal slots: %v", ErrInternal, err)
	}
	return string(payload), nil
}

func (r *Resolver) bookingSlots(p graphql.ResolveParams) (interface{}, error) {
	productID, ok := p.Args["productId"].(int)
	if !ok {
		return nil, fmt.Errorf("%w: productId is required", ErrInvalidArgument)
	}

	slotDate, _ := p.Args["slotDate"].(string)
	resp, err := r.execute(p, int64(productID), slotDate)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"productId": int(resp.ProductID),
		"date":      resp.Date.Format(domain.DateFormat),
		"slots":     slotsToMaps(resp.Slots),
	}, nil
}

func (r *Resolver) execute(p graphql.ResolveParams, productID int64, slotDate string) (*getBookingSlots.Response, error) {
	req := &getBookingSlots.Request{ProductID: productID}

	if slotDate != "" {
		date, err := time.ParseInLocation(domain.DateFormat, slotDate, r.slots.Location())
		if err != nil {
			return nil, fmt.Errorf("%w: slotDate must be YYYY-MM-DD", ErrInvalidArgument)
		}
		req.Date = &date
	}

	resp, err := r.slots.Execute(p.Context, req)
	if err != nil {
		if errors.Is(err, getBookingSlots.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		r.logger.Error("GraphQL slots: product=%d: %v", productID, err)
		return nil, ErrInternal
	}

	return resp, nil
}

// pickSlotDate аргумент поля важнее фильтра slot_date
func pickSlotDate(args map[string]interface{}, filterDate string) string {
	if date, ok := args["slotDate"].(string); ok && date != "" {
		return date
	}
	return filterDate
}

func slotsToMaps(slots []getBookingSlots.Slot) []map[string]interface{} {
	result := make([]map[string]interface{}, len(slots))
	for i, s := range slots {
		result[i] = map[string]interface{}{
			"from":      s.From,
			"to":        s.To,
			"timestamp": s.Timestamp,
			"booked":    s.Booked,
		}
	}
	return result
}

func formatOptionalTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}
