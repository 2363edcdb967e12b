// Package state is the domain state core: a pure reducer over the shared
// snapshot plus the derived-view queries every collaborator shares. It does
// no I/O; callers hold the current snapshot, apply an action, and replace
// the snapshot with the result.
package state

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sarahbeaino/pharmapos/internal/apperr"
	"github.com/sarahbeaino/pharmapos/internal/model"
)

// skuWidth is the zero-padded width of reducer-assigned SKUs.
const skuWidth = 5

// Apply runs one action against the snapshot and returns the replacement
// snapshot. The input value is never mutated.
//
// Apply never fails for a structurally valid action, with one exception: an
// UpdateProduct whose SKU collides with a different product is rejected and
// the input snapshot is returned unchanged alongside
// apperr.SKUConflictErr. Actions that reference unknown entity ids are
// silent no-ops for that entity — the entity was likely deleted between
// read and dispatch, which is benign in the single-writer model.
func Apply(s model.Snapshot, action Action) (model.Snapshot, error) {
	next := s.Clone()

	switch a := action.(type) {
	case AddProduct:
		p := a.Product
		p.SKU = nextSKU(next.Products)
		next.Products = append(next.Products, p)

	case UpdateProduct:
		for _, other := range next.Products {
			if other.ID != a.Product.ID && strings.EqualFold(other.SKU, a.Product.SKU) {
				return s, apperr.SKUConflictErr
			}
		}
		for i, p := range next.Products {
			if p.ID == a.Product.ID {
				next.Products[i] = a.Product
			}
		}

	case DeleteProduct:
		next.Products = deleteByID(next.Products, a.ID, func(p model.Product) string { return p.ID })

	case AddClient:
		next.Clients = append(next.Clients, a.Client)

	case UpdateClient:
		for i, c := range next.Clients {
			if c.ID == a.Client.ID {
				next.Clients[i] = a.Client
			}
		}

	case DeleteClient:
		next.Clients = deleteByID(next.Clients, a.ID, func(c model.Client) string { return c.ID })

	case CreateSale:
		for _, item := range a.Sale.Items {
			for i := range next.Products {
				p := &next.Products[i]
				if p.ID != item.ProductID {
					continue
				}
				before := p.Quantity
				p.Quantity -= item.Quantity
				if before > p.LowStockThreshold && p.Quantity <= p.LowStockThreshold {
					next.Notifications = append(next.Notifications,
						fmt.Sprintf("Low stock alert: %s is now at %d.", p.Name, p.Quantity))
				}
			}
		}
		next.Sales = append([]model.Sale{a.Sale}, next.Sales...)

	case UpdateSaleStatus:
		for i, sale := range next.Sales {
			if sale.ID == a.SaleID {
				next.Sales[i].Status = a.Status
			}
		}

	case DeleteSale:
		for _, item := range a.Items {
			for i := range next.Products {
				if next.Products[i].ID == item.ProductID {
					next.Products[i].Quantity += item.Quantity
				}
			}
		}
		next.Sales = deleteByID(next.Sales, a.SaleID, func(s model.Sale) string { return s.ID })

	case AddNotification:
		next.Notifications = append(next.Notifications, a.Message)

	case ClearNotifications:
		next.Notifications = []string{}

	case CreatePO:
		po := a.PurchaseOrder
		po.Status = model.POStatusPending
		for i := range po.Items {
			po.Items[i].QuantityReceived = 0
		}
		next.PurchaseOrders = append([]model.PurchaseOrder{po}, next.PurchaseOrders...)

	case ReceivePOItems:
		for i, po := range next.PurchaseOrders {
			if po.ID != a.POID {
				continue
			}
			for _, received := range a.ReceivedItems {
				if received.Quantity <= 0 {
					continue
				}
				for j := range po.Items {
					item := &po.Items[j]
					if item.ProductID != received.ProductID {
						continue
					}
					// Receipt never exceeds the ordered quantity; stock gains
					// the clamped delta, not the requested amount.
					delta := min(received.Quantity, item.Remaining())
					item.QuantityReceived += delta
					for k := range next.Products {
						if next.Products[k].ID == item.ProductID {
							next.Products[k].Quantity += delta
						}
					}
				}
			}
			po.Status = derivePOStatus(po.Items)
			next.PurchaseOrders[i] = po
		}

	case DeletePO:
		next.PurchaseOrders = deleteByID(next.PurchaseOrders, a.ID, func(po model.PurchaseOrder) string { return po.ID })
	}

	return next, nil
}

// nextSKU assigns max numeric SKU + 1 zero-padded to five digits.
// Non-numeric SKUs (seed data uses mnemonic codes) are ignored.
func nextSKU(products []model.Product) string {
	maxSKU := 0
	for _, p := range products {
		if n, err := strconv.Atoi(p.SKU); err == nil && n > maxSKU {
			maxSKU = n
		}
	}
	return fmt.Sprintf("%0*d", skuWidth, maxSKU+1)
}

// derivePOStatus is the single source of truth for purchase order status:
// Pending while nothing is received, Completed once the aggregate received
// count reaches the aggregate ordered count, Partially Received in between.
func derivePOStatus(items []model.PurchaseOrderItem) model.POStatus {
	totalOrdered, totalReceived := 0, 0
	for _, item := range items {
		totalOrdered += item.QuantityOrdered
		totalReceived += item.QuantityReceived
	}

	switch {
	case totalReceived == 0:
		return model.POStatusPending
	case totalReceived < totalOrdered:
		return model.POStatusPartiallyReceived
	default:
		return model.POStatusCompleted
	}
}

func deleteByID[T any](items []T, id string, idOf func(T) string) []T {
	out := items[:0]
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}
