package http

import (
	"net/http"

	"github.com/sarahbeaino/pharmapos/internal/export"
)

func (s *Service) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, r, http.StatusOK, s.pharmacy.Notifications(r.Context()))
}

func (s *Service) handleClearNotifications(w http.ResponseWriter, r *http.Request) {
	if err := s.pharmacy.ClearNotifications(r.Context()); err != nil {
		s.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, r, http.StatusOK, s.pharmacy.Dashboard(r.Context()))
}

func (s *Service) handleLowStockReport(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, r, http.StatusOK, s.pharmacy.ListLowStockProducts(r.Context()))
}

func (s *Service) handleExportInventory(w http.ResponseWriter, r *http.Request) {
	writeCSVHeader(w, "inventory.csv")
	if err := export.Inventory(w, s.pharmacy.ListProducts(r.Context())); err != nil {
		s.logger.ErrorContext(r.Context(), "error writing inventory export", "error", err)
	}
}

func (s *Service) handleExportClients(w http.ResponseWriter, r *http.Request) {
	writeCSVHeader(w, "clients.csv")
	if err := export.Clients(w, s.pharmacy.ListClients(r.Context())); err != nil {
		s.logger.ErrorContext(r.Context(), "error writing clients export", "error", err)
	}
}

func (s *Service) handleExportSales(w http.ResponseWriter, r *http.Request) {
	writeCSVHeader(w, "sales.csv")
	if err := export.Sales(w, s.pharmacy.Snapshot()); err != nil {
		s.logger.ErrorContext(r.Context(), "error writing sales export", "error", err)
	}
}

func writeCSVHeader(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
}
