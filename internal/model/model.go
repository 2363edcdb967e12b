package model

import (
	"fmt"
	"strings"
	"time"
)

// SaleStatus is the payment status of a sale.
type SaleStatus string

const (
	SaleStatusPaid   SaleStatus = "Paid"
	SaleStatusUnpaid SaleStatus = "Unpaid"
)

// Validate reports whether the status is one of the known values.
func (s SaleStatus) Validate() error {
	switch s {
	case SaleStatusPaid, SaleStatusUnpaid:
		return nil
	default:
		return fmt.Errorf("unknown sale status: %s", string(s))
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *SaleStatus) UnmarshalText(text []byte) error {
	v := SaleStatus(strings.TrimSpace(string(text)))
	if err := v.Validate(); err != nil {
		return err
	}
	*s = v
	return nil
}

// POStatus is the fulfillment status of a purchase order. It is derived from
// the order's item totals and is never set directly by callers.
type POStatus string

const (
	POStatusPending           POStatus = "Pending"
	POStatusPartiallyReceived POStatus = "Partially Received"
	POStatusCompleted         POStatus = "Completed"
)

// Product is a stocked item. SKU is assigned by the state core on creation
// and unique across all products.
type Product struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	SKU               string  `json:"sku"`
	Barcode           string  `json:"barcode,omitempty"`
	Category          string  `json:"category"`
	Price             float64 `json:"price"`
	CostPrice         float64 `json:"costPrice"`
	Quantity          int     `json:"quantity"`
	LowStockThreshold int     `json:"lowStockThreshold"`
}

// Client is a customer account. Outstanding balance is derived from unpaid
// sales, never stored.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// SaleItem is a sale line. Price is frozen at the time of sale so later
// product price edits never change historical totals.
type SaleItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Sale struct {
	ID       string     `json:"id"`
	ClientID string     `json:"clientId"`
	Items    []SaleItem `json:"items"`
	Total    float64    `json:"total"`
	Date     time.Time  `json:"date"`
	Status   SaleStatus `json:"status"`
}

type PurchaseOrderItem struct {
	ProductID        string `json:"productId"`
	QuantityOrdered  int    `json:"quantityOrdered"`
	QuantityReceived int    `json:"quantityReceived"`
}

// Remaining returns the quantity still to be received for the line.
func (i PurchaseOrderItem) Remaining() int {
	return i.QuantityOrdered - i.QuantityReceived
}

type PurchaseOrder struct {
	ID       string              `json:"id"`
	PONumber string              `json:"poNumber"`
	Date     time.Time           `json:"date"`
	Status   POStatus            `json:"status"`
	Items    []PurchaseOrderItem `json:"items"`
}

// ReceivedItem is one line of a purchase order receipt.
type ReceivedItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Snapshot is the complete domain state at one point in time. It is a plain
// acyclic value: entities reference each other by id only, and dangling
// references are tolerated (readers treat them as "unknown").
type Snapshot struct {
	Products       []Product       `json:"products"`
	Clients        []Client        `json:"clients"`
	Sales          []Sale          `json:"sales"`
	PurchaseOrders []PurchaseOrder `json:"purchaseOrders"`
	Notifications  []string        `json:"notifications"`
}

// Clone returns a deep copy of the snapshot. Nested slices are copied so the
// clone shares no memory with the original.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Products:       make([]Product, len(s.Products)),
		Clients:        make([]Client, len(s.Clients)),
		Sales:          make([]Sale, len(s.Sales)),
		PurchaseOrders: make([]PurchaseOrder, len(s.PurchaseOrders)),
		Notifications:  make([]string, len(s.Notifications)),
	}
	copy(out.Products, s.Products)
	copy(out.Clients, s.Clients)
	copy(out.Notifications, s.Notifications)

	for i, sale := range s.Sales {
		sale.Items = append([]SaleItem(nil), sale.Items...)
		out.Sales[i] = sale
	}
	for i, po := range s.PurchaseOrders {
		po.Items = append([]PurchaseOrderItem(nil), po.Items...)
		out.PurchaseOrders[i] = po
	}

	return out
}
