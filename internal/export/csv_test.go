package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarahbeaino/pharmapos/internal/model"
)

func TestInventory(t *testing.T) {
	products := []model.Product{
		{SKU: "00001", Name: "Aspirin 100mg", Category: "Pain Relief", CostPrice: 1.5, Price: 3.99, Quantity: 12, LowStockThreshold: 10, Barcode: "123456789012"},
		{SKU: "00002", Name: "Cough Syrup", Category: "Cold & Flu", CostPrice: 3, Price: 7.5, Quantity: 4, LowStockThreshold: 5},
	}

	var buf bytes.Buffer
	require.NoError(t, Inventory(&buf, products))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"SKU", "Name", "Category", "CostPrice", "Price", "Quantity", "LowStockThreshold", "Barcode"}, records[0])
	assert.Equal(t, []string{"00001", "Aspirin 100mg", "Pain Relief", "1.50", "3.99", "12", "10", "123456789012"}, records[1])
	assert.Equal(t, []string{"00002", "Cough Syrup", "Cold & Flu", "3.00", "7.50", "4", "5", ""}, records[2])
}

func TestClients(t *testing.T) {
	clients := []model.Client{
		{Name: "John Smith", Phone: "555-0101", Email: "john@example.com", Address: "12 Main St"},
	}

	var buf bytes.Buffer
	require.NoError(t, Clients(&buf, clients))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Name", "Phone", "Email", "Address"}, records[0])
	assert.Equal(t, []string{"John Smith", "555-0101", "john@example.com", "12 Main St"}, records[1])
}

func TestSales(t *testing.T) {
	date := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
	snapshot := model.Snapshot{
		Products: []model.Product{
			{ID: "p1", Name: "Aspirin 100mg"},
			{ID: "p2", Name: "Cough Syrup"},
		},
		Clients: []model.Client{
			{ID: "c1", Name: "John Smith"},
		},
		Sales: []model.Sale{
			{
				ID:       "s1",
				ClientID: "c1",
				Items: []model.SaleItem{
					{ProductID: "p1", Quantity: 2, Price: 3.99},
					{ProductID: "p2", Quantity: 1, Price: 7.5},
				},
				Total:  15.48,
				Date:   date,
				Status: model.SaleStatusUnpaid,
			},
			{
				ID:       "s2",
				ClientID: "deleted-client",
				Items: []model.SaleItem{
					{ProductID: "deleted-product", Quantity: 1, Price: 2},
				},
				Total:  2,
				Date:   date,
				Status: model.SaleStatusPaid,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Sales(&buf, snapshot))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"ID", "Date", "Client", "Items", "Total", "Status"}, records[0])
	assert.Equal(t, []string{"s1", "2026-08-20T14:30:00Z", "John Smith", "2x Aspirin 100mg; 1x Cough Syrup", "15.48", "Unpaid"}, records[1])
	assert.Equal(t, []string{"s2", "2026-08-20T14:30:00Z", "N/A", "1x N/A", "2.00", "Paid"}, records[2])
}
