package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sarahbeaino/pharmapos/internal/model"
	"github.com/sarahbeaino/pharmapos/internal/service"
)

type createSaleRequest struct {
	ClientID string `json:"clientId"`
	Items    []struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	} `json:"items"`
	Status model.SaleStatus `json:"status"`
}

func (s *Service) handleListSales(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, r, http.StatusOK, s.pharmacy.ListSales(r.Context()))
}

func (s *Service) handleCreateSale(w http.ResponseWriter, r *http.Request) {
	var req createSaleRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	items := make([]service.CreateSaleItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.CreateSaleItemParams{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	sale, err := s.pharmacy.CreateSale(r.Context(), service.CreateSaleParams{
		ClientID: req.ClientID,
		Items:    items,
		Status:   req.Status,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusCreated, sale)
}

func (s *Service) handleUpdateSaleStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status model.SaleStatus `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	sale, err := s.pharmacy.UpdateSaleStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, sale)
}

func (s *Service) handleDeleteSale(w http.ResponseWriter, r *http.Request) {
	if err := s.pharmacy.DeleteSale(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
