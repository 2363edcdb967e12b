package event

import (
	"context"
	"log/slog"
)

// Low-stock alerts surface on the operator dashboard through the snapshot's
// notification list; the consumer side exists for downstream systems
// (reorder automation, monitoring) and for the audit trail in the logs.
func (s *Service) handleLowStockEvent(ctx context.Context, ev LowStockEvent) error {
	s.logger.WarnContext(ctx, "low stock alert",
		slog.String("product_id", ev.ProductID),
		slog.String("name", ev.Name),
		slog.Int("quantity", ev.Quantity),
		slog.Int("threshold", ev.Threshold),
	)
	return nil
}

func (s *Service) handleSaleCreatedEvent(ctx context.Context, ev SaleCreatedEvent) error {
	s.logger.InfoContext(ctx, "sale recorded",
		slog.String("sale_id", ev.SaleID),
		slog.String("client_id", ev.ClientID),
		slog.Float64("total", ev.Total),
	)
	return nil
}
