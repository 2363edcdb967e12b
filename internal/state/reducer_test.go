package state_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarahbeaino/pharmapos/internal/apperr"
	"github.com/sarahbeaino/pharmapos/internal/model"
	"github.com/sarahbeaino/pharmapos/internal/state"
)

func testSnapshot() model.Snapshot {
	return model.Snapshot{
		Products: []model.Product{
			{ID: "p1", Name: "Aspirin 100mg", SKU: "00001", Category: "Pain Relief", Price: 5.99, CostPrice: 2.50, Quantity: 12, LowStockThreshold: 10},
			{ID: "p2", Name: "Cough Syrup", SKU: "00002", Category: "Cold & Flu", Price: 9.99, CostPrice: 5.20, Quantity: 60, LowStockThreshold: 10},
		},
		Clients: []model.Client{
			{ID: "c1", Name: "John Doe", Phone: "555-1234", Address: "123 Main St", Email: "john.doe@example.com"},
		},
		Sales:          []model.Sale{},
		PurchaseOrders: []model.PurchaseOrder{},
		Notifications:  []string{},
	}
}

func mustApply(t *testing.T, s model.Snapshot, a state.Action) model.Snapshot {
	t.Helper()
	next, err := state.Apply(s, a)
	require.NoError(t, err)
	return next
}

func TestAddProductAssignsSKU(t *testing.T) {
	t.Run("Should assign monotonically increasing five digit SKUs", func(t *testing.T) {
		s := testSnapshot()

		for i := range 3 {
			s = mustApply(t, s, state.AddProduct{Product: model.Product{
				ID:   fmt.Sprintf("new%d", i),
				Name: fmt.Sprintf("Product %d", i),
			}})
		}

		n := len(s.Products)
		assert.Equal(t, "00003", s.Products[n-3].SKU)
		assert.Equal(t, "00004", s.Products[n-2].SKU)
		assert.Equal(t, "00005", s.Products[n-1].SKU)
	})

	t.Run("Should ignore non numeric SKUs", func(t *testing.T) {
		s := model.Snapshot{Products: []model.Product{
			{ID: "p1", SKU: "ASP100"},
			{ID: "p2", SKU: "00042"},
		}}

		s = mustApply(t, s, state.AddProduct{Product: model.Product{ID: "p3"}})

		assert.Equal(t, "00043", s.Products[2].SKU)
	})

	t.Run("Should start at 00001 when no numeric SKU exists", func(t *testing.T) {
		s := mustApply(t, model.Snapshot{}, state.AddProduct{Product: model.Product{ID: "p1"}})

		assert.Equal(t, "00001", s.Products[0].SKU)
	})

	t.Run("Should override any caller supplied SKU", func(t *testing.T) {
		s := mustApply(t, testSnapshot(), state.AddProduct{Product: model.Product{ID: "p3", SKU: "HAX"}})

		assert.Equal(t, "00003", s.Products[2].SKU)
	})
}

func TestUpdateProduct(t *testing.T) {
	t.Run("Should replace the product by id", func(t *testing.T) {
		s := testSnapshot()

		updated := s.Products[0]
		updated.Name = "Aspirin 100mg (Box)"
		updated.Price = 6.49
		s = mustApply(t, s, state.UpdateProduct{Product: updated})

		assert.Equal(t, "Aspirin 100mg (Box)", s.Products[0].Name)
		assert.Equal(t, 6.49, s.Products[0].Price)
	})

	t.Run("Should reject SKU collisions leaving the snapshot unchanged", func(t *testing.T) {
		s := testSnapshot()
		before, err := json.Marshal(s)
		require.NoError(t, err)

		updated := s.Products[0]
		updated.SKU = "00002" // taken by p2

		next, err := state.Apply(s, state.UpdateProduct{Product: updated})
		require.ErrorIs(t, err, apperr.SKUConflictErr)

		after, err := json.Marshal(next)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("Should reject SKU collisions case insensitively", func(t *testing.T) {
		s := model.Snapshot{Products: []model.Product{
			{ID: "p1", SKU: "asp100"},
			{ID: "p2", SKU: "CSYRUP"},
		}}

		updated := s.Products[1]
		updated.SKU = "ASP100"

		_, err := state.Apply(s, state.UpdateProduct{Product: updated})
		assert.ErrorIs(t, err, apperr.SKUConflictErr)
	})

	t.Run("Should allow keeping the own SKU", func(t *testing.T) {
		s := testSnapshot()

		updated := s.Products[0]
		updated.Name = "Renamed"
		s = mustApply(t, s, state.UpdateProduct{Product: updated})

		assert.Equal(t, "Renamed", s.Products[0].Name)
	})
}

func TestDeleteProduct(t *testing.T) {
	t.Run("Should remove the product by id", func(t *testing.T) {
		s := mustApply(t, testSnapshot(), state.DeleteProduct{ID: "p1"})

		assert.Len(t, s.Products, 1)
		assert.Equal(t, "p2", s.Products[0].ID)
	})

	t.Run("Should leave dangling sale references intact", func(t *testing.T) {
		s := testSnapshot()
		s = mustApply(t, s, state.CreateSale{Sale: model.Sale{
			ID:       "s1",
			ClientID: "c1",
			Items:    []model.SaleItem{{ProductID: "p1", Quantity: 1, Price: 5.99}},
			Total:    5.99,
			Status:   model.SaleStatusUnpaid,
		}})

		s = mustApply(t, s, state.DeleteProduct{ID: "p1"})

		require.Len(t, s.Sales, 1)
		require.Len(t, s.Sales[0].Items, 1)
		assert.Equal(t, "p1", s.Sales[0].Items[0].ProductID)

		_, found := state.FindProduct(s, "p1")
		assert.False(t, found)
	})
}

func TestClients(t *testing.T) {
	t.Run("Should add update and delete clients", func(t *testing.T) {
		s := testSnapshot()

		s = mustApply(t, s, state.AddClient{Client: model.Client{ID: "c2", Name: "Jane Smith"}})
		require.Len(t, s.Clients, 2)

		s = mustApply(t, s, state.UpdateClient{Client: model.Client{ID: "c2", Name: "Jane Smith-Jones"}})
		assert.Equal(t, "Jane Smith-Jones", s.Clients[1].Name)

		s = mustApply(t, s, state.DeleteClient{ID: "c1"})
		require.Len(t, s.Clients, 1)
		assert.Equal(t, "c2", s.Clients[0].ID)
	})
}

func TestCreateSale(t *testing.T) {
	t.Run("Should prepend the sale and decrement stock", func(t *testing.T) {
		s := testSnapshot()
		s = mustApply(t, s, state.CreateSale{Sale: model.Sale{
			ID:       "s-old",
			ClientID: "c1",
			Items:    []model.SaleItem{{ProductID: "p2", Quantity: 1, Price: 9.99}},
			Total:    9.99,
			Status:   model.SaleStatusPaid,
		}})
		s = mustApply(t, s, state.CreateSale{Sale: model.Sale{
			ID:       "s-new",
			ClientID: "c1",
			Items:    []model.SaleItem{{ProductID: "p2", Quantity: 2, Price: 9.99}},
			Total:    19.98,
			Status:   model.SaleStatusUnpaid,
		}})

		require.Len(t, s.Sales, 2)
		assert.Equal(t, "s-new", s.Sales[0].ID)

		p, _ := state.FindProduct(s, "p2")
		assert.Equal(t, 57, p.Quantity)
	})

	t.Run("Should emit exactly one notification on the low stock crossing", func(t *testing.T) {
		// Scenario: qty 12, threshold 10, sell 3 -> qty 9 crosses the edge.
		s := testSnapshot()
		s = mustApply(t, s, state.CreateSale{Sale: model.Sale{
			ID:       "s1",
			ClientID: "c1",
			Items:    []model.SaleItem{{ProductID: "p1", Quantity: 3, Price: 5.99}},
			Total:    17.97,
		}})

		p, _ := state.FindProduct(s, "p1")
		assert.Equal(t, 9, p.Quantity)
		require.Len(t, s.Notifications, 1)
		assert.Equal(t, "Low stock alert: Aspirin 100mg is now at 9.", s.Notifications[0])
	})

	t.Run("Should not repeat the notification once already low", func(t *testing.T) {
		s := testSnapshot()
		s = mustApply(t, s, state.CreateSale{Sale: model.Sale{
			ID:    "s1",
			Items: []model.SaleItem{{ProductID: "p1", Quantity: 3, Price: 5.99}},
		}})
		require.Len(t, s.Notifications, 1)

		s = mustApply(t, s, state.CreateSale{Sale: model.Sale{
			ID:    "s2",
			Items: []model.SaleItem{{ProductID: "p1", Quantity: 2, Price: 5.99}},
		}})

		assert.Len(t, s.Notifications, 1)
		p, _ := state.FindProduct(s, "p1")
		assert.Equal(t, 7, p.Quantity)
	})

	t.Run("Should not block on insufficient stock", func(t *testing.T) {
		// Stock sufficiency is the dispatching caller's duty; the core stays
		// permissive and will drive the quantity negative.
		s := testSnapshot()
		s = mustApply(t, s, state.CreateSale{Sale: model.Sale{
			ID:    "s1",
			Items: []model.SaleItem{{ProductID: "p1", Quantity: 20, Price: 5.99}},
		}})

		p, _ := state.FindProduct(s, "p1")
		assert.Equal(t, -8, p.Quantity)
	})

	t.Run("Should skip items referencing unknown products", func(t *testing.T) {
		s := testSnapshot()
		s = mustApply(t, s, state.CreateSale{Sale: model.Sale{
			ID:    "s1",
			Items: []model.SaleItem{{ProductID: "ghost", Quantity: 5, Price: 1.00}},
		}})

		require.Len(t, s.Sales, 1)
		assert.Empty(t, s.Notifications)
	})
}

func TestUpdateSaleStatus(t *testing.T) {
	t.Run("Should set the status on the matching sale", func(t *testing.T) {
		s := testSnapshot()
		s = mustApply(t, s, state.CreateSale{Sale: model.Sale{ID: "s1", Status: model.SaleStatusUnpaid}})

		s = mustApply(t, s, state.UpdateSaleStatus{SaleID: "s1", Status: model.SaleStatusPaid})

		assert.Equal(t, model.SaleStatusPaid, s.Sales[0].Status)
	})

	t.Run("Should no-op for an unknown sale", func(t *testing.T) {
		s := testSnapshot()
		next := mustApply(t, s, state.UpdateSaleStatus{SaleID: "ghost", Status: model.SaleStatusPaid})

		assert.Equal(t, s, next)
	})
}

func TestDeleteSale(t *testing.T) {
	t.Run("Should restore stock exactly to pre-sale values", func(t *testing.T) {
		s := testSnapshot()
		items := []model.SaleItem{
			{ProductID: "p1", Quantity: 3, Price: 5.99},
			{ProductID: "p2", Quantity: 5, Price: 9.99},
		}

		s = mustApply(t, s, state.CreateSale{Sale: model.Sale{ID: "s1", Items: items}})
		s = mustApply(t, s, state.DeleteSale{SaleID: "s1", Items: items})

		assert.Empty(t, s.Sales)
		p1, _ := state.FindProduct(s, "p1")
		p2, _ := state.FindProduct(s, "p2")
		assert.Equal(t, 12, p1.Quantity)
		assert.Equal(t, 60, p2.Quantity)
	})

	t.Run("Should skip restoration for products that no longer exist", func(t *testing.T) {
		s := testSnapshot()
		items := []model.SaleItem{{ProductID: "p1", Quantity: 3, Price: 5.99}}

		s = mustApply(t, s, state.CreateSale{Sale: model.Sale{ID: "s1", Items: items}})
		s = mustApply(t, s, state.DeleteProduct{ID: "p1"})
		s = mustApply(t, s, state.DeleteSale{SaleID: "s1", Items: items})

		assert.Empty(t, s.Sales)
		assert.Len(t, s.Products, 1)
	})
}

func TestNotificationActions(t *testing.T) {
	t.Run("Should append and clear notifications", func(t *testing.T) {
		s := testSnapshot()

		s = mustApply(t, s, state.AddNotification{Message: "Backup completed."})
		require.Equal(t, []string{"Backup completed."}, s.Notifications)

		s = mustApply(t, s, state.ClearNotifications{})
		assert.Empty(t, s.Notifications)
	})
}

func TestCreatePO(t *testing.T) {
	t.Run("Should prepend a pending order with zeroed receipts", func(t *testing.T) {
		s := testSnapshot()
		s = mustApply(t, s, state.CreatePO{PurchaseOrder: model.PurchaseOrder{
			ID:       "po1",
			PONumber: "PO-2026-AB12",
			Status:   model.POStatusCompleted, // caller-set status must be ignored
			Items: []model.PurchaseOrderItem{
				{ProductID: "p1", QuantityOrdered: 50, QuantityReceived: 7},
			},
		}})

		require.Len(t, s.PurchaseOrders, 1)
		po := s.PurchaseOrders[0]
		assert.Equal(t, model.POStatusPending, po.Status)
		assert.Equal(t, 0, po.Items[0].QuantityReceived)
	})
}

func TestReceivePOItems(t *testing.T) {
	newPO := func() state.CreatePO {
		return state.CreatePO{PurchaseOrder: model.PurchaseOrder{
			ID:       "po1",
			PONumber: "PO-2026-AB12",
			Items: []model.PurchaseOrderItem{
				{ProductID: "p1", QuantityOrdered: 50},
				{ProductID: "p2", QuantityOrdered: 20},
			},
		}}
	}

	t.Run("Should clamp the receipt and credit stock with the clamped amount", func(t *testing.T) {
		s := mustApply(t, testSnapshot(), newPO())

		s = mustApply(t, s, state.ReceivePOItems{
			POID:          "po1",
			ReceivedItems: []model.ReceivedItem{{ProductID: "p1", Quantity: 60}},
		})

		po, _ := state.FindPurchaseOrder(s, "po1")
		assert.Equal(t, 50, po.Items[0].QuantityReceived)
		assert.Equal(t, model.POStatusPartiallyReceived, po.Status)

		p1, _ := state.FindProduct(s, "p1")
		assert.Equal(t, 12+50, p1.Quantity)
	})

	t.Run("Should never push received above ordered on repeated receipts", func(t *testing.T) {
		s := mustApply(t, testSnapshot(), newPO())

		for range 4 {
			s = mustApply(t, s, state.ReceivePOItems{
				POID:          "po1",
				ReceivedItems: []model.ReceivedItem{{ProductID: "p1", Quantity: 30}},
			})
		}

		po, _ := state.FindPurchaseOrder(s, "po1")
		assert.Equal(t, 50, po.Items[0].QuantityReceived)

		p1, _ := state.FindProduct(s, "p1")
		assert.Equal(t, 12+50, p1.Quantity)
	})

	t.Run("Should derive status from aggregate totals", func(t *testing.T) {
		s := mustApply(t, testSnapshot(), newPO())

		po, _ := state.FindPurchaseOrder(s, "po1")
		require.Equal(t, model.POStatusPending, po.Status)

		s = mustApply(t, s, state.ReceivePOItems{
			POID:          "po1",
			ReceivedItems: []model.ReceivedItem{{ProductID: "p1", Quantity: 50}},
		})
		po, _ = state.FindPurchaseOrder(s, "po1")
		assert.Equal(t, model.POStatusPartiallyReceived, po.Status)

		s = mustApply(t, s, state.ReceivePOItems{
			POID:          "po1",
			ReceivedItems: []model.ReceivedItem{{ProductID: "p2", Quantity: 20}},
		})
		po, _ = state.FindPurchaseOrder(s, "po1")
		assert.Equal(t, model.POStatusCompleted, po.Status)
	})

	t.Run("Should ignore zero and negative receipt lines", func(t *testing.T) {
		s := mustApply(t, testSnapshot(), newPO())

		next := mustApply(t, s, state.ReceivePOItems{
			POID: "po1",
			ReceivedItems: []model.ReceivedItem{
				{ProductID: "p1", Quantity: 0},
				{ProductID: "p2", Quantity: -5},
			},
		})

		assert.Equal(t, s, next)
	})

	t.Run("Should no-op for an unknown purchase order", func(t *testing.T) {
		s := testSnapshot()
		next := mustApply(t, s, state.ReceivePOItems{
			POID:          "ghost",
			ReceivedItems: []model.ReceivedItem{{ProductID: "p1", Quantity: 10}},
		})

		assert.Equal(t, s, next)
	})

	t.Run("Should track the receipt even when the product is gone", func(t *testing.T) {
		s := mustApply(t, testSnapshot(), newPO())
		s = mustApply(t, s, state.DeleteProduct{ID: "p1"})

		s = mustApply(t, s, state.ReceivePOItems{
			POID:          "po1",
			ReceivedItems: []model.ReceivedItem{{ProductID: "p1", Quantity: 10}},
		})

		po, _ := state.FindPurchaseOrder(s, "po1")
		assert.Equal(t, 10, po.Items[0].QuantityReceived)
		assert.Len(t, s.Products, 1)
	})
}

func TestDeletePO(t *testing.T) {
	t.Run("Should remove the order without reversing received stock", func(t *testing.T) {
		s := testSnapshot()
		s = mustApply(t, s, state.CreatePO{PurchaseOrder: model.PurchaseOrder{
			ID:    "po1",
			Items: []model.PurchaseOrderItem{{ProductID: "p1", QuantityOrdered: 50}},
		}})
		s = mustApply(t, s, state.ReceivePOItems{
			POID:          "po1",
			ReceivedItems: []model.ReceivedItem{{ProductID: "p1", Quantity: 30}},
		})

		s = mustApply(t, s, state.DeletePO{ID: "po1"})

		assert.Empty(t, s.PurchaseOrders)
		p1, _ := state.FindProduct(s, "p1")
		assert.Equal(t, 12+30, p1.Quantity)
	})
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	s := testSnapshot()
	original, err := json.Marshal(s)
	require.NoError(t, err)

	actions := []state.Action{
		state.AddProduct{Product: model.Product{ID: "x"}},
		state.CreateSale{Sale: model.Sale{ID: "s1", Items: []model.SaleItem{{ProductID: "p1", Quantity: 3}}}},
		state.DeleteProduct{ID: "p1"},
		state.AddNotification{Message: "hello"},
	}
	for _, a := range actions {
		_, err := state.Apply(s, a)
		require.NoError(t, err)
	}

	after, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, original, after)
}

func TestSeed(t *testing.T) {
	s := state.Seed(time.Now())

	assert.Len(t, s.Products, 9)
	assert.Len(t, s.Clients, 4)
	assert.Len(t, s.Sales, 3)
	assert.Len(t, s.PurchaseOrders, 3)
	assert.Empty(t, s.Notifications)

	// Seeded orders already satisfy the derived-status rule.
	for _, po := range s.PurchaseOrders {
		next, err := state.Apply(s, state.ReceivePOItems{POID: po.ID})
		require.NoError(t, err)
		got, _ := state.FindPurchaseOrder(next, po.ID)
		assert.Equal(t, po.Status, got.Status)
	}
}
