package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sarahbeaino/pharmapos/internal/service"
)

type productRequest struct {
	Name              string  `json:"name"`
	SKU               string  `json:"sku"`
	Barcode           string  `json:"barcode"`
	Category          string  `json:"category"`
	Price             float64 `json:"price"`
	CostPrice         float64 `json:"costPrice"`
	Quantity          int     `json:"quantity"`
	LowStockThreshold int     `json:"lowStockThreshold"`
}

func (s *Service) handleListProducts(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, r, http.StatusOK, s.pharmacy.ListProducts(r.Context()))
}

func (s *Service) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	product, err := s.pharmacy.AddProduct(r.Context(), service.AddProductParams{
		Name:              req.Name,
		Barcode:           req.Barcode,
		Category:          req.Category,
		Price:             req.Price,
		CostPrice:         req.CostPrice,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusCreated, product)
}

func (s *Service) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	product, err := s.pharmacy.UpdateProduct(r.Context(), service.UpdateProductParams{
		ID:                chi.URLParam(r, "id"),
		Name:              req.Name,
		SKU:               req.SKU,
		Barcode:           req.Barcode,
		Category:          req.Category,
		Price:             req.Price,
		CostPrice:         req.CostPrice,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, product)
}

func (s *Service) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.pharmacy.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
