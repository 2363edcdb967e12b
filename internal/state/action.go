package state

import "github.com/sarahbeaino/pharmapos/internal/model"

// Action is the sealed set of state transitions. Each action kind is its own
// struct so dispatch is a compile-time-exhaustive type switch rather than a
// string tag with a default branch.
type Action interface {
	isAction()
}

// AddProduct appends a product. The SKU carried by the payload is ignored:
// the reducer assigns the next numeric SKU itself.
type AddProduct struct {
	Product model.Product
}

// UpdateProduct replaces the product with the same id. Rejected when the new
// SKU collides (case-insensitive) with a different product.
type UpdateProduct struct {
	Product model.Product
}

// DeleteProduct removes a product by id. Sales and purchase orders that
// reference it keep their dangling references.
type DeleteProduct struct {
	ID string
}

type AddClient struct {
	Client model.Client
}

type UpdateClient struct {
	Client model.Client
}

type DeleteClient struct {
	ID string
}

// CreateSale prepends the sale and decrements stock per line item. Stock
// sufficiency is the dispatching caller's responsibility.
type CreateSale struct {
	Sale model.Sale
}

type UpdateSaleStatus struct {
	SaleID string
	Status model.SaleStatus
}

// DeleteSale removes the sale and restores stock for the given items
// (the inverse of CreateSale). Items for products that no longer exist are
// skipped.
type DeleteSale struct {
	SaleID string
	Items  []model.SaleItem
}

type AddNotification struct {
	Message string
}

type ClearNotifications struct{}

// CreatePO prepends a purchase order. All items start at zero received and
// the order starts Pending.
type CreatePO struct {
	PurchaseOrder model.PurchaseOrder
}

// ReceivePOItems records a (possibly partial) receipt against a purchase
// order and increments on-hand stock by the clamped amounts.
type ReceivePOItems struct {
	POID          string
	ReceivedItems []model.ReceivedItem
}

// DeletePO removes a purchase order by id. Stock received against it is not
// reversed.
type DeletePO struct {
	ID string
}

func (AddProduct) isAction()         {}
func (UpdateProduct) isAction()      {}
func (DeleteProduct) isAction()      {}
func (AddClient) isAction()          {}
func (UpdateClient) isAction()       {}
func (DeleteClient) isAction()       {}
func (CreateSale) isAction()         {}
func (UpdateSaleStatus) isAction()   {}
func (DeleteSale) isAction()         {}
func (AddNotification) isAction()    {}
func (ClearNotifications) isAction() {}
func (CreatePO) isAction()           {}
func (ReceivePOItems) isAction()     {}
func (DeletePO) isAction()           {}
