package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sarahbeaino/pharmapos/internal/service"
)

type clientRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

func (s *Service) handleListClients(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, r, http.StatusOK, s.pharmacy.ListClients(r.Context()))
}

func (s *Service) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	client, err := s.pharmacy.AddClient(r.Context(), service.AddClientParams{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Email:   req.Email,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusCreated, client)
}

func (s *Service) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	client, err := s.pharmacy.UpdateClient(r.Context(), service.UpdateClientParams{
		ID:      chi.URLParam(r, "id"),
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Email:   req.Email,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, r, http.StatusOK, client)
}

func (s *Service) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	if err := s.pharmacy.DeleteClient(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleListClientBalances(w http.ResponseWriter, r *http.Request) {
	balances := s.pharmacy.OutstandingBalances(r.Context())

	res := make(map[string]float64, len(balances))
	for clientID, balance := range balances {
		res[clientID] = balance.InexactFloat64()
	}

	s.respondJSON(w, r, http.StatusOK, res)
}
