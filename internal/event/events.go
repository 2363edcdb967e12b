package event

import (
	"encoding/json"
	"fmt"
)

const (
	TopicLowStock    = "inventory.low_stock"
	TopicSaleCreated = "sale.created"
)

// LowStockEvent is published when a product crosses its low-stock threshold.
type LowStockEvent struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Threshold int    `json:"threshold"`
}

// SaleCreatedEvent is published for every completed point-of-sale checkout.
type SaleCreatedEvent struct {
	SaleID   string  `json:"sale_id"`
	ClientID string  `json:"client_id"`
	Total    float64 `json:"total"`
}

// Message is a domain event ready for the outbox or the message queue.
type Message struct {
	Topic        string
	Payload      json.RawMessage
	PartitionKey *string
}

// NewMessage marshals a payload into a Message for the given topic. The
// partition key keeps events for one entity ordered.
func NewMessage(topic string, payload any, partitionKey *string) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("marshal %s payload: %w", topic, err)
	}

	return Message{
		Topic:        topic,
		Payload:      data,
		PartitionKey: partitionKey,
	}, nil
}
