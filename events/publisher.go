package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/AtifZafar596/Jetak-food-backend-api/entity"
)

type EventType string

const (
	EventOrderCreated       EventType = "order.created"
	EventOrderStatusChanged EventType = "order.status_changed"
	EventOrderCancelled     EventType = "order.cancelled"
)

type OrderEvent struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	OrderCode  string    `json:"orderCode"`
	UserID     uint      `json:"userId"`
	StoreID    uint      `json:"storeId"`
	Status     string    `json:"status"`
	PrevStatus string    `json:"prevStatus,omitempty"`
	Total      int64     `json:"total"`
	Timestamp  time.Time `json:"timestamp"`
}

// Publisher notifies downstream consumers (courier dispatch, store screens)
// about order lifecycle changes. Publishing is best effort; a failed publish
// never fails the order operation that triggered it.
type Publisher interface {
	OrderCreated(ctx context.Context, o *entity.Order) error
	OrderStatusChanged(ctx context.Context, o *entity.Order, prev entity.OrderStatus) error
}

// Nop is used when no brokers are configured.
type Nop struct{}

func (Nop) OrderCreated(context.Context, *entity.Order) error { return nil }
func (Nop) OrderStatusChanged(context.Context, *entity.Order, entity.OrderStatus) error {
	return nil
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}}
}

func (p *KafkaPublisher) OrderCreated(ctx context.Context, o *entity.Order) error {
	return p.publish(ctx, OrderEvent{
		ID:        uuid.NewString(),
		Type:      EventOrderCreated,
		OrderCode: o.Code,
		UserID:    o.UserID,
		StoreID:   o.StoreID,
		Status:    string(o.Status),
		Total:     o.TotalAmount,
		Timestamp: time.Now().UTC(),
	})
}

func (p *KafkaPublisher) OrderStatusChanged(ctx context.Context, o *entity.Order, prev entity.OrderStatus) error {
	typ := EventOrderStatusChanged
	if o.Status == entity.StatusCancelled {
		typ = EventOrderCancelled
	}
	return p.publish(ctx, OrderEvent{
		ID:         uuid.NewString(),
		Type:       typ,
		OrderCode:  o.Code,
		UserID:     o.UserID,
		StoreID:    o.StoreID,
		Status:     string(o.Status),
		PrevStatus: string(prev),
		Total:      o.TotalAmount,
		Timestamp:  time.Now().UTC(),
	})
}

func (p *KafkaPublisher) publish(ctx context.Context, ev OrderEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.OrderCode),
		Value: payload,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
