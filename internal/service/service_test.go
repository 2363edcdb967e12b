package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarahbeaino/pharmapos/internal/apperr"
	"github.com/sarahbeaino/pharmapos/internal/event"
	"github.com/sarahbeaino/pharmapos/internal/model"
	"github.com/sarahbeaino/pharmapos/internal/store"
	"github.com/sarahbeaino/pharmapos/pkg/validator"
)

func newTestService(t *testing.T, seed bool) (*Pharmacy, *store.MemoryStore) {
	t.Helper()

	st := store.NewMemoryStore()
	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	svc, err := New(context.Background(), discardLogger(), st, v, seed)
	require.NoError(t, err)

	return svc, st
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewSeedsWhenStoreEmpty(t *testing.T) {
	svc, st := newTestService(t, true)

	snap := svc.Snapshot()
	assert.Len(t, snap.Products, 9)
	assert.Len(t, snap.Clients, 4)

	persisted, ok, err := st.Load(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, persisted.Products, 9)
}

func TestNewSkipsSeedWhenDisabled(t *testing.T) {
	svc, _ := newTestService(t, false)

	snap := svc.Snapshot()
	assert.Empty(t, snap.Products)
	assert.Empty(t, snap.Clients)
	assert.Empty(t, snap.Sales)
}

func TestNewLoadsExistingSnapshot(t *testing.T) {
	svc, st := newTestService(t, false)
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, AddProductParams{
		Name:     "Aspirin 100mg",
		Category: "Pain Relief",
		Price:    3.99,
		Quantity: 10,
	})
	require.NoError(t, err)

	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)
	reloaded, err := New(ctx, discardLogger(), st, v, true)
	require.NoError(t, err)

	snap := reloaded.Snapshot()
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "Aspirin 100mg", snap.Products[0].Name)
}

func TestAddProductAssignsSKU(t *testing.T) {
	svc, _ := newTestService(t, false)
	ctx := context.Background()

	p1, err := svc.AddProduct(ctx, AddProductParams{Name: "Aspirin", Category: "Pain Relief", Price: 3.99})
	require.NoError(t, err)
	assert.Equal(t, "00001", p1.SKU)
	assert.NotEmpty(t, p1.ID)

	p2, err := svc.AddProduct(ctx, AddProductParams{Name: "Vitamin C", Category: "Vitamins", Price: 7.25})
	require.NoError(t, err)
	assert.Equal(t, "00002", p2.SKU)
}

func TestAddProductValidation(t *testing.T) {
	svc, _ := newTestService(t, false)

	_, err := svc.AddProduct(context.Background(), AddProductParams{Category: "Vitamins"})
	require.Error(t, err)

	_, err = svc.AddProduct(context.Background(), AddProductParams{Name: "X", Category: "Y", Price: -1})
	require.Error(t, err)
}

func TestUpdateProduct(t *testing.T) {
	svc, _ := newTestService(t, false)
	ctx := context.Background()

	p1, err := svc.AddProduct(ctx, AddProductParams{Name: "Aspirin", Category: "Pain Relief", Price: 3.99})
	require.NoError(t, err)
	p2, err := svc.AddProduct(ctx, AddProductParams{Name: "Vitamin C", Category: "Vitamins", Price: 7.25})
	require.NoError(t, err)

	t.Run("renames product", func(t *testing.T) {
		updated, err := svc.UpdateProduct(ctx, UpdateProductParams{
			ID:       p1.ID,
			Name:     "Aspirin 500mg",
			SKU:      p1.SKU,
			Category: p1.Category,
			Price:    4.49,
		})
		require.NoError(t, err)
		assert.Equal(t, "Aspirin 500mg", updated.Name)
		assert.Equal(t, 4.49, updated.Price)
	})

	t.Run("rejects sku collision", func(t *testing.T) {
		_, err := svc.UpdateProduct(ctx, UpdateProductParams{
			ID:       p2.ID,
			Name:     p2.Name,
			SKU:      p1.SKU,
			Category: p2.Category,
		})
		require.ErrorIs(t, err, apperr.SKUConflictErr)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := svc.UpdateProduct(ctx, UpdateProductParams{
			ID:       "nope",
			Name:     "X",
			SKU:      "99999",
			Category: "Y",
		})
		require.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})
}

func TestDeleteProductIsPermissive(t *testing.T) {
	svc, _ := newTestService(t, false)
	require.NoError(t, svc.DeleteProduct(context.Background(), "does-not-exist"))
}

func TestCreateSale(t *testing.T) {
	svc, st := newTestService(t, false)
	ctx := context.Background()

	client, err := svc.AddClient(ctx, AddClientParams{Name: "John Smith"})
	require.NoError(t, err)
	product, err := svc.AddProduct(ctx, AddProductParams{
		Name: "Aspirin", Category: "Pain Relief", Price: 3.99, Quantity: 12, LowStockThreshold: 10,
	})
	require.NoError(t, err)

	t.Run("freezes price and computes total", func(t *testing.T) {
		sale, err := svc.CreateSale(ctx, CreateSaleParams{
			ClientID: client.ID,
			Items:    []CreateSaleItemParams{{ProductID: product.ID, Quantity: 3}},
		})
		require.NoError(t, err)
		assert.Equal(t, model.SaleStatusUnpaid, sale.Status)
		require.Len(t, sale.Items, 1)
		assert.Equal(t, 3.99, sale.Items[0].Price)
		assert.Equal(t, 11.97, sale.Total)

		snap := svc.Snapshot()
		p, _ := findProductByID(snap.Products, product.ID)
		assert.Equal(t, 9, p.Quantity)
	})

	t.Run("emits sale and low stock events", func(t *testing.T) {
		events := st.Events()
		topics := make([]string, 0, len(events))
		for _, e := range events {
			topics = append(topics, e.Topic)
		}
		assert.Contains(t, topics, event.TopicSaleCreated)
		assert.Contains(t, topics, event.TopicLowStock)
	})

	t.Run("rejects insufficient stock", func(t *testing.T) {
		_, err := svc.CreateSale(ctx, CreateSaleParams{
			ClientID: client.ID,
			Items:    []CreateSaleItemParams{{ProductID: product.ID, Quantity: 100}},
		})
		require.ErrorIs(t, err, apperr.InsufficientStockErr)
	})

	t.Run("rejects unknown client", func(t *testing.T) {
		_, err := svc.CreateSale(ctx, CreateSaleParams{
			ClientID: "ghost",
			Items:    []CreateSaleItemParams{{ProductID: product.ID, Quantity: 1}},
		})
		require.ErrorIs(t, err, apperr.ClientNotFoundErr)
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		_, err := svc.CreateSale(ctx, CreateSaleParams{
			ClientID: client.ID,
			Items:    []CreateSaleItemParams{{ProductID: "ghost", Quantity: 1}},
		})
		require.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})

	t.Run("rejects empty cart", func(t *testing.T) {
		_, err := svc.CreateSale(ctx, CreateSaleParams{ClientID: client.ID})
		require.Error(t, err)
	})
}

func TestUpdateSaleStatus(t *testing.T) {
	svc, _ := newTestService(t, false)
	ctx := context.Background()

	client, err := svc.AddClient(ctx, AddClientParams{Name: "John Smith"})
	require.NoError(t, err)
	product, err := svc.AddProduct(ctx, AddProductParams{
		Name: "Aspirin", Category: "Pain Relief", Price: 3.99, Quantity: 5,
	})
	require.NoError(t, err)
	sale, err := svc.CreateSale(ctx, CreateSaleParams{
		ClientID: client.ID,
		Items:    []CreateSaleItemParams{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateSaleStatus(ctx, sale.ID, model.SaleStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, model.SaleStatusPaid, updated.Status)

	_, err = svc.UpdateSaleStatus(ctx, sale.ID, model.SaleStatus("Pending"))
	require.Error(t, err)

	_, err = svc.UpdateSaleStatus(ctx, "ghost", model.SaleStatusPaid)
	require.ErrorIs(t, err, apperr.SaleNotFoundErr)
}

func TestDeleteSaleRestoresStock(t *testing.T) {
	svc, _ := newTestService(t, false)
	ctx := context.Background()

	client, err := svc.AddClient(ctx, AddClientParams{Name: "John Smith"})
	require.NoError(t, err)
	product, err := svc.AddProduct(ctx, AddProductParams{
		Name: "Aspirin", Category: "Pain Relief", Price: 3.99, Quantity: 10,
	})
	require.NoError(t, err)
	sale, err := svc.CreateSale(ctx, CreateSaleParams{
		ClientID: client.ID,
		Items:    []CreateSaleItemParams{{ProductID: product.ID, Quantity: 4}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSale(ctx, sale.ID))

	snap := svc.Snapshot()
	assert.Empty(t, snap.Sales)
	p, _ := findProductByID(snap.Products, product.ID)
	assert.Equal(t, 10, p.Quantity)

	require.ErrorIs(t, svc.DeleteSale(ctx, sale.ID), apperr.SaleNotFoundErr)
}

func TestPurchaseOrders(t *testing.T) {
	svc, _ := newTestService(t, false)
	ctx := context.Background()

	product, err := svc.AddProduct(ctx, AddProductParams{
		Name: "Aspirin", Category: "Pain Relief", Price: 3.99, Quantity: 12,
	})
	require.NoError(t, err)

	po, err := svc.CreatePO(ctx, CreatePOParams{
		Items: []CreatePOItemParams{{ProductID: product.ID, QuantityOrdered: 50}},
	})
	require.NoError(t, err)
	assert.Equal(t, model.POStatusPending, po.Status)
	assert.Regexp(t, `^PO-\d{4}-[0-9A-F]{4}$`, po.PONumber)

	t.Run("rejects unknown product", func(t *testing.T) {
		_, err := svc.CreatePO(ctx, CreatePOParams{
			Items: []CreatePOItemParams{{ProductID: "ghost", QuantityOrdered: 1}},
		})
		require.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})

	t.Run("receipt is clamped to ordered quantity", func(t *testing.T) {
		received, err := svc.ReceivePOItems(ctx, po.ID, []ReceivePOItemParams{
			{ProductID: product.ID, Quantity: 60},
		})
		require.NoError(t, err)
		require.Len(t, received.Items, 1)
		assert.Equal(t, 50, received.Items[0].QuantityReceived)
		assert.Equal(t, model.POStatusCompleted, received.Status)

		snap := svc.Snapshot()
		p, _ := findProductByID(snap.Products, product.ID)
		assert.Equal(t, 62, p.Quantity)
	})

	t.Run("unknown purchase order", func(t *testing.T) {
		_, err := svc.ReceivePOItems(ctx, "ghost", nil)
		require.ErrorIs(t, err, apperr.PurchaseOrderNotFoundErr)
	})

	t.Run("delete keeps received stock", func(t *testing.T) {
		require.NoError(t, svc.DeletePO(ctx, po.ID))

		snap := svc.Snapshot()
		assert.Empty(t, snap.PurchaseOrders)
		p, _ := findProductByID(snap.Products, product.ID)
		assert.Equal(t, 62, p.Quantity)
	})
}

func TestNotifications(t *testing.T) {
	svc, _ := newTestService(t, false)
	ctx := context.Background()

	require.NoError(t, svc.AddNotification(ctx, "Stock take scheduled for Friday."))
	require.NoError(t, svc.AddNotification(ctx, "Courier delayed."))

	notifications := svc.Notifications(ctx)
	require.Len(t, notifications, 2)
	assert.Equal(t, "Stock take scheduled for Friday.", notifications[0])

	require.NoError(t, svc.ClearNotifications(ctx))
	assert.Empty(t, svc.Notifications(ctx))
}

func TestClientBalance(t *testing.T) {
	svc, _ := newTestService(t, true)
	ctx := context.Background()

	snap := svc.Snapshot()
	balance, err := svc.ClientBalance(ctx, snap.Clients[0].ID)
	require.NoError(t, err)
	assert.True(t, balance.GreaterThan(decimal.Zero))

	_, err = svc.ClientBalance(ctx, "ghost")
	require.ErrorIs(t, err, apperr.ClientNotFoundErr)
}

func TestDashboard(t *testing.T) {
	svc, _ := newTestService(t, true)

	stats := svc.Dashboard(context.Background())
	assert.Equal(t, 9, stats.ProductCount)
	assert.Equal(t, 4, stats.ClientCount)
	assert.Equal(t, 3, stats.SaleCount)
	assert.Equal(t, 3, stats.PurchaseOrderCount)
	assert.Greater(t, stats.TotalRevenue, 0.0)
	assert.Greater(t, stats.TotalOutstanding, 0.0)
}

func findProductByID(products []model.Product, id string) (model.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}
