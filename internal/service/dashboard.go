package service

import (
	"context"

	"github.com/sarahbeaino/pharmapos/internal/state"
)

type DashboardStats struct {
	ProductCount       int     `json:"productCount"`
	ClientCount        int     `json:"clientCount"`
	SaleCount          int     `json:"saleCount"`
	PurchaseOrderCount int     `json:"purchaseOrderCount"`
	TotalRevenue       float64 `json:"totalRevenue"`
	TotalOutstanding   float64 `json:"totalOutstanding"`
	LowStockCount      int     `json:"lowStockCount"`
}

// Dashboard rolls up the headline numbers shown on the landing page.
func (s *Pharmacy) Dashboard(_ context.Context) DashboardStats {
	snap := s.Snapshot()
	return DashboardStats{
		ProductCount:       len(snap.Products),
		ClientCount:        len(snap.Clients),
		SaleCount:          len(snap.Sales),
		PurchaseOrderCount: len(snap.PurchaseOrders),
		TotalRevenue:       state.TotalRevenue(snap).Round(2).InexactFloat64(),
		TotalOutstanding:   state.TotalOutstanding(snap).Round(2).InexactFloat64(),
		LowStockCount:      len(state.LowStockProducts(snap)),
	}
}
