package state

import (
	"time"

	"github.com/sarahbeaino/pharmapos/internal/model"
)

// Seed returns the built-in starter dataset used when no persisted snapshot
// exists yet. Dates are rendered relative to now so the seeded history looks
// recent on first launch.
func Seed(now time.Time) model.Snapshot {
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }

	return model.Snapshot{
		Products: []model.Product{
			{ID: "prod1", Name: "Aspirin 100mg", SKU: "ASP100", Barcode: "739343011326", Category: "Pain Relief", Price: 5.99, CostPrice: 2.50, Quantity: 150, LowStockThreshold: 20},
			{ID: "prod2", Name: "Ibuprofen 200mg", SKU: "IBU200", Barcode: "739343011327", Category: "Pain Relief", Price: 8.49, CostPrice: 4.00, Quantity: 8, LowStockThreshold: 10},
			{ID: "prod3", Name: "Paracetamol 500mg", SKU: "PAR500", Barcode: "739343011328", Category: "Pain Relief", Price: 4.99, CostPrice: 2.10, Quantity: 200, LowStockThreshold: 25},
			{ID: "prod4", Name: "Vitamin C 1000mg", SKU: "VITC1000", Barcode: "739343011329", Category: "Vitamins", Price: 12.99, CostPrice: 6.50, Quantity: 80, LowStockThreshold: 15},
			{ID: "prod5", Name: "Amoxicillin 250mg", SKU: "AMX250", Barcode: "739343011330", Category: "Antibiotics", Price: 15.75, CostPrice: 8.00, Quantity: 40, LowStockThreshold: 10},
			{ID: "prod6", Name: "Cough Syrup", SKU: "CSYRUP", Barcode: "739343011331", Category: "Cold & Flu", Price: 9.99, CostPrice: 5.20, Quantity: 60, LowStockThreshold: 10},
			{ID: "prod7", Name: "Band-Aids (Box of 50)", SKU: "BANDAID50", Barcode: "739343011332", Category: "First Aid", Price: 3.50, CostPrice: 1.50, Quantity: 300, LowStockThreshold: 50},
			{ID: "prod8", Name: "Antacid Tablets", SKU: "ANTACID", Barcode: "739343011333", Category: "Digestion", Price: 7.25, CostPrice: 3.75, Quantity: 120, LowStockThreshold: 20},
			{ID: "prod9", Name: "Allergy Relief Pills", SKU: "ALLERGY", Barcode: "739343011334", Category: "Allergy", Price: 18.99, CostPrice: 9.80, Quantity: 55, LowStockThreshold: 15},
		},
		Clients: []model.Client{
			{ID: "client1", Name: "John Doe", Phone: "555-1234", Address: "123 Main St, Anytown", Email: "john.doe@example.com"},
			{ID: "client2", Name: "Jane Smith", Phone: "555-5678", Address: "456 Oak Ave, Anytown", Email: "jane.smith@example.com"},
			{ID: "client3", Name: "Peter Jones", Phone: "555-8765", Address: "789 Pine Ln, Anytown", Email: "peter.jones@example.com"},
			{ID: "client4", Name: "Mary Johnson", Phone: "555-4321", Address: "101 Maple Dr, Anytown", Email: "mary.j@example.com"},
		},
		Sales: []model.Sale{
			{
				ID:       "sale1",
				ClientID: "client1",
				Items: []model.SaleItem{
					{ProductID: "prod1", Quantity: 2, Price: 5.99},
					{ProductID: "prod6", Quantity: 1, Price: 9.99},
				},
				Total:  21.97,
				Date:   daysAgo(2),
				Status: model.SaleStatusPaid,
			},
			{
				ID:       "sale2",
				ClientID: "client2",
				Items: []model.SaleItem{
					{ProductID: "prod3", Quantity: 1, Price: 4.99},
				},
				Total:  4.99,
				Date:   daysAgo(5),
				Status: model.SaleStatusUnpaid,
			},
			{
				ID:       "sale3",
				ClientID: "client1",
				Items: []model.SaleItem{
					{ProductID: "prod4", Quantity: 1, Price: 12.99},
					{ProductID: "prod7", Quantity: 1, Price: 3.50},
				},
				Total:  16.49,
				Date:   daysAgo(1),
				Status: model.SaleStatusUnpaid,
			},
		},
		PurchaseOrders: []model.PurchaseOrder{
			{
				ID:       "po1",
				PONumber: "PO-2024-001",
				Date:     daysAgo(7),
				Status:   model.POStatusCompleted,
				Items: []model.PurchaseOrderItem{
					{ProductID: "prod1", QuantityOrdered: 50, QuantityReceived: 50},
					{ProductID: "prod2", QuantityOrdered: 20, QuantityReceived: 20},
				},
			},
			{
				ID:       "po2",
				PONumber: "PO-2024-002",
				Date:     daysAgo(3),
				Status:   model.POStatusPartiallyReceived,
				Items: []model.PurchaseOrderItem{
					{ProductID: "prod3", QuantityOrdered: 100, QuantityReceived: 50},
					{ProductID: "prod5", QuantityOrdered: 30, QuantityReceived: 0},
				},
			},
			{
				ID:       "po3",
				PONumber: "PO-2024-003",
				Date:     daysAgo(1),
				Status:   model.POStatusPending,
				Items: []model.PurchaseOrderItem{
					{ProductID: "prod4", QuantityOrdered: 40, QuantityReceived: 0},
				},
			},
		},
		Notifications: []string{},
	}
}
