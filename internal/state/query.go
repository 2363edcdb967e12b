package state

import (
	"github.com/shopspring/decimal"

	"github.com/sarahbeaino/pharmapos/internal/model"
)

// Derived views are never stored in the snapshot; every collaborator
// recomputes them through these functions so the formulas stay identical
// across call sites. Money figures are aggregated with decimals so readers
// do not drift apart through float error.

// ClientBalance returns the client's outstanding balance: the sum of totals
// of its unpaid sales.
func ClientBalance(s model.Snapshot, clientID string) decimal.Decimal {
	balance := decimal.Zero
	for _, sale := range s.Sales {
		if sale.ClientID == clientID && sale.Status == model.SaleStatusUnpaid {
			balance = balance.Add(decimal.NewFromFloat(sale.Total))
		}
	}
	return balance
}

// OutstandingBalances returns the outstanding balance per client id,
// omitting clients that owe nothing.
func OutstandingBalances(s model.Snapshot) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal)
	for _, sale := range s.Sales {
		if sale.Status != model.SaleStatusUnpaid {
			continue
		}
		balances[sale.ClientID] = balances[sale.ClientID].Add(decimal.NewFromFloat(sale.Total))
	}
	return balances
}

// TotalOutstanding returns the sum of all unpaid sale totals.
func TotalOutstanding(s model.Snapshot) decimal.Decimal {
	total := decimal.Zero
	for _, sale := range s.Sales {
		if sale.Status == model.SaleStatusUnpaid {
			total = total.Add(decimal.NewFromFloat(sale.Total))
		}
	}
	return total
}

// TotalRevenue returns the sum of all sale totals regardless of payment
// status.
func TotalRevenue(s model.Snapshot) decimal.Decimal {
	total := decimal.Zero
	for _, sale := range s.Sales {
		total = total.Add(decimal.NewFromFloat(sale.Total))
	}
	return total
}

// LowStockProducts returns the products at or below their low-stock
// threshold.
func LowStockProducts(s model.Snapshot) []model.Product {
	var low []model.Product
	for _, p := range s.Products {
		if p.Quantity <= p.LowStockThreshold {
			low = append(low, p)
		}
	}
	return low
}

// LowStockCrossings returns the products that were above their threshold in
// before and are at or below it in after. It is the crossing-edge companion
// to the reducer's notification rule, used to derive structured alert
// events from a dispatch.
func LowStockCrossings(before, after model.Snapshot) []model.Product {
	wasAbove := make(map[string]bool, len(before.Products))
	for _, p := range before.Products {
		wasAbove[p.ID] = p.Quantity > p.LowStockThreshold
	}

	var crossed []model.Product
	for _, p := range after.Products {
		if wasAbove[p.ID] && p.Quantity <= p.LowStockThreshold {
			crossed = append(crossed, p)
		}
	}
	return crossed
}

// FindProduct returns the product with the given id.
func FindProduct(s model.Snapshot, id string) (model.Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// FindClient returns the client with the given id.
func FindClient(s model.Snapshot, id string) (model.Client, bool) {
	for _, c := range s.Clients {
		if c.ID == id {
			return c, true
		}
	}
	return model.Client{}, false
}

// FindSale returns the sale with the given id.
func FindSale(s model.Snapshot, id string) (model.Sale, bool) {
	for _, sale := range s.Sales {
		if sale.ID == id {
			return sale, true
		}
	}
	return model.Sale{}, false
}

// FindPurchaseOrder returns the purchase order with the given id.
func FindPurchaseOrder(s model.Snapshot, id string) (model.PurchaseOrder, bool) {
	for _, po := range s.PurchaseOrders {
		if po.ID == id {
			return po, true
		}
	}
	return model.PurchaseOrder{}, false
}
