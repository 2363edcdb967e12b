package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sarahbeaino/pharmapos/internal/service"
)

type createPurchaseOrderRequest struct {
	Items []struct {
		ProductID       string `json:"productId"`
		QuantityOrdered int    `json:"quantityOrdered"`
	} `json:"items"`
}

type receiveItemsRequest struct {
	Items []struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	} `json:"items"`
}

func (s *Service) handleListPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, r, http.StatusOK, s.pharmacy.ListPurchaseOrders(r.Context()))
}

func (s *Service) handleCreatePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	var req createPurchaseOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	items := make([]service.CreatePOItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.CreatePOItemParams{
			ProductID:       item.ProductID,
			QuantityOrdered: item.QuantityOrdered,
		})
	}

	po, err := s.pharmacy.CreatePO(r.Context(), service.CreatePOParams{Items: items})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusCreated, po)
}

func (s *Service) handleReceivePurchaseOrderItems(w http.ResponseWriter, r *http.Request) {
	var req receiveItemsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	items := make([]service.ReceivePOItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.ReceivePOItemParams{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	po, err := s.pharmacy.ReceivePOItems(r.Context(), chi.URLParam(r, "id"), items)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, po)
}

func (s *Service) handleDeletePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	if err := s.pharmacy.DeletePO(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
