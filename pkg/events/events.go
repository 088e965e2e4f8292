package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// Темы событий
const (
	SubjectSlotConfigUpdated = "booking_product.slots.updated"
)

// SlotConfigUpdatedEvent публикуется после изменения шаблонов слотов продукта
type SlotConfigUpdatedEvent struct {
	ProductID        int64     `json:"product_id"`
	BookingProductID int64     `json:"booking_product_id"`
	UpdatedBy        string    `json:"updated_by,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Publisher публикует события
type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

// NATSBus публикация и подписка через NATS
type NATSBus struct {
	conn *nats.Conn
}

// NewNATSBus подключается к NATS
func NewNATSBus(url, clientName string) (*NATSBus, error) {
	conn, err := nats.Connect(url,
		nats.Name(clientName),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("events: failed to connect to NATS: %w", err)
	}

	return &NATSBus{conn: conn}, nil
}

// Publish сериализует data в JSON и публикует в subject
func (b *NATSBus) Publish(_ context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("events: failed to marshal event %s: %w", subject, err)
	}

	if err := b.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("events: failed to publish %s: %w", subject, err)
	}
	return nil
}

// Subscribe подписывает handler на subject
func (b *NATSBus) Subscribe(subject string, handler func(data []byte)) error {
	_, err := b.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Data)
	})
	if err != nil {
		return fmt.Errorf("events: failed to subscribe to %s: %w", subject, err)
	}
	return nil
}

// Close дожидается отправки буфера и закрывает соединение
func (b *NATSBus) Close() error {
	return b.conn.Drain()
}

// NoopPublisher используется, когда NATS выключен в конфиге
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, interface{}) error { return nil }

func (NoopPublisher) Close() error { return nil }
