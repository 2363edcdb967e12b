// Package export renders snapshot data as CSV for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sarahbeaino/pharmapos/internal/model"
)

// Inventory writes the product list as CSV.
func Inventory(w io.Writer, products []model.Product) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"SKU", "Name", "Category", "CostPrice", "Price", "Quantity", "LowStockThreshold", "Barcode"}); err != nil {
		return fmt.Errorf("write inventory header: %w", err)
	}

	for _, p := range products {
		record := []string{
			p.SKU,
			p.Name,
			p.Category,
			formatMoney(p.CostPrice),
			formatMoney(p.Price),
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.LowStockThreshold),
			p.Barcode,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write inventory row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Clients writes the client list as CSV.
func Clients(w io.Writer, clients []model.Client) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Name", "Phone", "Email", "Address"}); err != nil {
		return fmt.Errorf("write clients header: %w", err)
	}

	for _, c := range clients {
		if err := cw.Write([]string{c.Name, c.Phone, c.Email, c.Address}); err != nil {
			return fmt.Errorf("write client row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Sales writes the sale history as CSV. Line items are flattened into a
// single column; client and product names are resolved from the snapshot,
// falling back to "N/A" when the referenced entity no longer exists.
func Sales(w io.Writer, snapshot model.Snapshot) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"ID", "Date", "Client", "Items", "Total", "Status"}); err != nil {
		return fmt.Errorf("write sales header: %w", err)
	}

	clientNames := make(map[string]string, len(snapshot.Clients))
	for _, c := range snapshot.Clients {
		clientNames[c.ID] = c.Name
	}
	productNames := make(map[string]string, len(snapshot.Products))
	for _, p := range snapshot.Products {
		productNames[p.ID] = p.Name
	}

	for _, sale := range snapshot.Sales {
		record := []string{
			sale.ID,
			sale.Date.Format(time.RFC3339),
			lookupName(clientNames, sale.ClientID),
			flattenItems(productNames, sale.Items),
			formatMoney(sale.Total),
			string(sale.Status),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write sale row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// flattenItems renders line items like "2x Aspirin 100mg; 1x Cough Syrup".
func flattenItems(productNames map[string]string, items []model.SaleItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%dx %s", item.Quantity, lookupName(productNames, item.ProductID)))
	}
	return strings.Join(parts, "; ")
}

func lookupName(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "N/A"
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
