package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sarahbeaino/pharmapos/internal/apperr"
	"github.com/sarahbeaino/pharmapos/internal/model"
	"github.com/sarahbeaino/pharmapos/internal/state"
)

type CreateSaleItemParams struct {
	ProductID string `validate:"required"`
	Quantity  int    `validate:"gt=0"`
}

type CreateSaleParams struct {
	ClientID string                 `validate:"required"`
	Items    []CreateSaleItemParams `validate:"required,min=1,dive"`
	Status   model.SaleStatus       `validate:"omitempty,enum"`
}

// CreateSale checks out a cart. The caller-responsibility checks live here,
// not in the state core: every product must exist and carry enough stock,
// and quantities must be positive. Line prices are frozen from the current
// product prices and the total is computed here so the reducer never has to.
func (s *Pharmacy) CreateSale(ctx context.Context, params CreateSaleParams) (model.Sale, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.Sale{}, err
	}

	id, err := newID()
	if err != nil {
		return model.Sale{}, err
	}

	status := params.Status
	if status == "" {
		status = model.SaleStatusUnpaid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := state.FindClient(s.snapshot, params.ClientID); !ok {
		return model.Sale{}, apperr.ClientNotFoundErr
	}

	items := make([]model.SaleItem, 0, len(params.Items))
	total := decimal.Zero
	for _, item := range params.Items {
		product, ok := state.FindProduct(s.snapshot, item.ProductID)
		if !ok {
			return model.Sale{}, apperr.ProductNotFoundErr
		}
		if product.Quantity < item.Quantity {
			return model.Sale{}, apperr.InsufficientStockErr
		}

		items = append(items, model.SaleItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
		total = total.Add(decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	sale := model.Sale{
		ID:       id,
		ClientID: params.ClientID,
		Items:    items,
		Total:    total.Round(2).InexactFloat64(),
		Date:     time.Now().UTC(),
		Status:   status,
	}

	if _, err := s.applyAndSave(ctx, state.CreateSale{Sale: sale}); err != nil {
		return model.Sale{}, err
	}

	return sale, nil
}

// UpdateSaleStatus marks a sale paid or unpaid.
func (s *Pharmacy) UpdateSaleStatus(ctx context.Context, saleID string, status model.SaleStatus) (model.Sale, error) {
	if err := status.Validate(); err != nil {
		return model.Sale{}, apperr.ValidationErr.WrapParent(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := state.FindSale(s.snapshot, saleID); !ok {
		return model.Sale{}, apperr.SaleNotFoundErr
	}

	next, err := s.applyAndSave(ctx, state.UpdateSaleStatus{SaleID: saleID, Status: status})
	if err != nil {
		return model.Sale{}, err
	}

	sale, _ := state.FindSale(next, saleID)
	return sale, nil
}

// DeleteSale removes a sale and returns its items to stock.
func (s *Pharmacy) DeleteSale(ctx context.Context, saleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sale, ok := state.FindSale(s.snapshot, saleID)
	if !ok {
		return apperr.SaleNotFoundErr
	}

	if _, err := s.applyAndSave(ctx, state.DeleteSale{SaleID: sale.ID, Items: sale.Items}); err != nil {
		return err
	}
	return nil
}

// ListSales returns all sales, newest first.
func (s *Pharmacy) ListSales(_ context.Context) []model.Sale {
	return s.Snapshot().Sales
}
