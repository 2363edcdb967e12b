// Package event defines the domain event vocabulary and the consumer
// service that reacts to it.
package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/sarahbeaino/pharmapos/internal/storage/mq"
)

// Service consumes domain events from the message queue.
type Service struct {
	logger     *slog.Logger
	mqConsumer mq.Consumer
}

// New creates a new event service.
func New(
	logger *slog.Logger,
	mqConsumer mq.Consumer,
) *Service {
	return &Service{
		logger:     logger,
		mqConsumer: mqConsumer,
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	if err := s.mqConsumer.RegisterHandler(
		TopicLowStock,
		func(ctx context.Context, topic string, payload []byte) error {
			var ev LowStockEvent
			if err := json.Unmarshal(payload, &ev); err != nil {
				return fmt.Errorf("unmarshal low stock event: %w", err)
			}

			if err := s.handleLowStockEvent(ctx, ev); err != nil {
				return fmt.Errorf("handle low stock event: %w", err)
			}

			return nil
		},
	); err != nil {
		return nil, fmt.Errorf("register low stock event handler: %w", err)
	}

	if err := s.mqConsumer.RegisterHandler(
		TopicSaleCreated,
		func(ctx context.Context, topic string, payload []byte) error {
			var ev SaleCreatedEvent
			if err := json.Unmarshal(payload, &ev); err != nil {
				return fmt.Errorf("unmarshal sale created event: %w", err)
			}

			if err := s.handleSaleCreatedEvent(ctx, ev); err != nil {
				return fmt.Errorf("handle sale created event: %w", err)
			}

			return nil
		},
	); err != nil {
		return nil, fmt.Errorf("register sale created event handler: %w", err)
	}

	mqCleanup, err := s.mqConsumer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run mq consumer: %w", err)
	}

	cleanup := func() {
		mqCleanup()
	}

	return cleanup, nil
}
