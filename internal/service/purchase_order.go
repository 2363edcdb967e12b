package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sarahbeaino/pharmapos/internal/apperr"
	"github.com/sarahbeaino/pharmapos/internal/model"
	"github.com/sarahbeaino/pharmapos/internal/state"
)

type CreatePOItemParams struct {
	ProductID       string `validate:"required"`
	QuantityOrdered int    `validate:"gt=0"`
}

type CreatePOParams struct {
	Items []CreatePOItemParams `validate:"required,min=1,dive"`
}

// CreatePO opens a purchase order for the given lines. Ordered products must
// exist at creation time; the order keeps its lines even if a product is
// deleted later.
func (s *Pharmacy) CreatePO(ctx context.Context, params CreatePOParams) (model.PurchaseOrder, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.PurchaseOrder{}, err
	}

	id, err := newID()
	if err != nil {
		return model.PurchaseOrder{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]model.PurchaseOrderItem, 0, len(params.Items))
	for _, item := range params.Items {
		if _, ok := state.FindProduct(s.snapshot, item.ProductID); !ok {
			return model.PurchaseOrder{}, apperr.ProductNotFoundErr
		}
		items = append(items, model.PurchaseOrderItem{
			ProductID:       item.ProductID,
			QuantityOrdered: item.QuantityOrdered,
		})
	}

	po := model.PurchaseOrder{
		ID:       id,
		PONumber: newPONumber(time.Now()),
		Date:     time.Now().UTC(),
		Items:    items,
	}

	next, err := s.applyAndSave(ctx, state.CreatePO{PurchaseOrder: po})
	if err != nil {
		return model.PurchaseOrder{}, err
	}

	created, _ := state.FindPurchaseOrder(next, id)
	return created, nil
}

type ReceivePOItemParams struct {
	ProductID string `validate:"required"`
	Quantity  int    `validate:"gte=0"`
}

// ReceivePOItems records a receipt against a purchase order. Receipts are
// clamped to the outstanding quantity per line; over-deliveries never inflate
// the order or the stock beyond what was ordered.
func (s *Pharmacy) ReceivePOItems(ctx context.Context, poID string, items []ReceivePOItemParams) (model.PurchaseOrder, error) {
	for _, item := range items {
		if err := s.validator.Validate(item); err != nil {
			return model.PurchaseOrder{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := state.FindPurchaseOrder(s.snapshot, poID); !ok {
		return model.PurchaseOrder{}, apperr.PurchaseOrderNotFoundErr
	}

	received := make([]model.ReceivedItem, 0, len(items))
	for _, item := range items {
		received = append(received, model.ReceivedItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	next, err := s.applyAndSave(ctx, state.ReceivePOItems{POID: poID, ReceivedItems: received})
	if err != nil {
		return model.PurchaseOrder{}, err
	}

	po, _ := state.FindPurchaseOrder(next, poID)
	return po, nil
}

// DeletePO removes a purchase order. Stock already received stays in
// inventory.
func (s *Pharmacy) DeletePO(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.applyAndSave(ctx, state.DeletePO{ID: id}); err != nil {
		return err
	}
	return nil
}

// ListPurchaseOrders returns all purchase orders, newest first.
func (s *Pharmacy) ListPurchaseOrders(_ context.Context) []model.PurchaseOrder {
	return s.Snapshot().PurchaseOrders
}

// newPONumber renders a human-readable order number such as PO-2026-4F2A.
func newPONumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return fmt.Sprintf("PO-%d-%s", now.Year(), suffix)
}
