// Package export renders inventory reports and JSON backups and writes
// them into the configured export directory.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avarenkov/stockpos/internal/filex"
	"github.com/avarenkov/stockpos/internal/models"
)

// now is a test seam.
var now = time.Now

// BuildInventoryReport renders the full inventory report as plain text.
func BuildInventoryReport(products []*models.Product, generatedAt time.Time) string {
	var totalStock, totalValue int64
	for _, p := range products {
		totalStock += p.Quantity
		totalValue += p.StockValue()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "STOCKPOS INVENTORY REPORT\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "SUMMARY\n-------\n")
	fmt.Fprintf(&b, "Total Products: %d\n", len(products))
	fmt.Fprintf(&b, "Total Stock: %d\n", totalStock)
	fmt.Fprintf(&b, "Total Value: Rs. %d\n\n", totalValue)
	fmt.Fprintf(&b, "PRODUCTS LIST\n-------------\n")

	for _, p := range products {
		fmt.Fprintf(&b, "\nName: %s\n", p.Name)
		fmt.Fprintf(&b, "Category: %s\n", p.Category)
		fmt.Fprintf(&b, "Purchase: Rs. %d\n", p.PurchasePrice)
		fmt.Fprintf(&b, "Sale: Rs. %d\n", p.SalePrice)
		fmt.Fprintf(&b, "Stock: %d\n", p.Quantity)
		fmt.Fprintf(&b, "Value: Rs. %d\n", p.StockValue())
		fmt.Fprintf(&b, "---\n")
	}

	return b.String()
}

// BuildLowStockReport renders the low stock report as plain text, one
// product per line.
func BuildLowStockReport(products []*models.Product, generatedAt time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "LOW STOCK REPORT - %s\n\n", generatedAt.Format("2006-01-02"))
	for _, p := range products {
		fmt.Fprintf(&b, "%s (%s) - Qty: %d\n", p.Name, p.Category, p.Quantity)
	}
	return b.String()
}

// WriteInventoryReport writes the full report into dir and returns the
// path of the written file.
func WriteInventoryReport(dir string, products []*models.Product) (string, error) {
	t := now()
	name := fmt.Sprintf("inventory-report-%s.txt", t.Format("2006-01-02"))
	return writeTextFile(dir, name, BuildInventoryReport(products, t))
}

// WriteLowStockReport writes the low stock report into dir and returns
// the path of the written file.
func WriteLowStockReport(dir string, products []*models.Product) (string, error) {
	t := now()
	name := fmt.Sprintf("low-stock-%s.txt", t.Format("2006-01-02"))
	return writeTextFile(dir, name, BuildLowStockReport(products, t))
}

func writeTextFile(dir, name, content string) (string, error) {
	absDir, err := filex.EnsureDir(dir)
	if err != nil {
		return "", err
	}
	path := filepath.Join(absDir, name)
	if err := os.WriteFile(path, []byte(content), 0o660); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
