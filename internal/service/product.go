package service

import (
	"context"
	"fmt"

	"github.com/sarahbeaino/pharmapos/internal/apperr"
	"github.com/sarahbeaino/pharmapos/internal/model"
	"github.com/sarahbeaino/pharmapos/internal/state"
)

type AddProductParams struct {
	Name              string  `validate:"required"`
	Barcode           string  `validate:"omitempty,max=64"`
	Category          string  `validate:"required"`
	Price             float64 `validate:"gte=0"`
	CostPrice         float64 `validate:"gte=0"`
	Quantity          int     `validate:"gte=0"`
	LowStockThreshold int     `validate:"gte=0"`
}

// AddProduct creates a product. The SKU is assigned by the state core.
func (s *Pharmacy) AddProduct(ctx context.Context, params AddProductParams) (model.Product, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.Product{}, err
	}

	id, err := newID()
	if err != nil {
		return model.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.applyAndSave(ctx, state.AddProduct{Product: model.Product{
		ID:                id,
		Name:              params.Name,
		Barcode:           params.Barcode,
		Category:          params.Category,
		Price:             params.Price,
		CostPrice:         params.CostPrice,
		Quantity:          params.Quantity,
		LowStockThreshold: params.LowStockThreshold,
	}})
	if err != nil {
		return model.Product{}, err
	}

	product, ok := state.FindProduct(next, id)
	if !ok {
		return model.Product{}, fmt.Errorf("product %s missing after add", id)
	}

	return product, nil
}

type UpdateProductParams struct {
	ID                string `validate:"required"`
	Name              string `validate:"required"`
	SKU               string `validate:"required"`
	Barcode           string `validate:"omitempty,max=64"`
	Category          string `validate:"required"`
	Price             float64
	CostPrice         float64
	Quantity          int
	LowStockThreshold int `validate:"gte=0"`
}

// UpdateProduct replaces a product. Fails with apperr.SKUConflictErr when the
// new SKU belongs to a different product.
func (s *Pharmacy) UpdateProduct(ctx context.Context, params UpdateProductParams) (model.Product, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := state.FindProduct(s.snapshot, params.ID); !ok {
		return model.Product{}, apperr.ProductNotFoundErr
	}

	next, err := s.applyAndSave(ctx, state.UpdateProduct{Product: model.Product{
		ID:                params.ID,
		Name:              params.Name,
		SKU:               params.SKU,
		Barcode:           params.Barcode,
		Category:          params.Category,
		Price:             params.Price,
		CostPrice:         params.CostPrice,
		Quantity:          params.Quantity,
		LowStockThreshold: params.LowStockThreshold,
	}})
	if err != nil {
		return model.Product{}, err
	}

	product, _ := state.FindProduct(next, params.ID)
	return product, nil
}

// DeleteProduct removes a product. Deleting an already absent product is not
// an error, and historical sales and purchase orders keep their references.
func (s *Pharmacy) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.applyAndSave(ctx, state.DeleteProduct{ID: id}); err != nil {
		return err
	}
	return nil
}

// ListProducts returns all products.
func (s *Pharmacy) ListProducts(_ context.Context) []model.Product {
	return s.Snapshot().Products
}

// ListLowStockProducts returns the products at or below their threshold.
func (s *Pharmacy) ListLowStockProducts(_ context.Context) []model.Product {
	return state.LowStockProducts(s.Snapshot())
}
