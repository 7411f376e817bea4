// Package models defines the wire types shared by the gateway server and
// the client: products, sales, settings and backup snapshots. All
// timestamps are integer nanoseconds since epoch, all money and quantity
// fields are integers (no fractional currency units).
package models

import (
	"fmt"
	"strings"

	"github.com/avarenkov/stockpos/internal/common"
)

// Product is a catalog item. The ID is server-assigned and unique; there
// is no uniqueness constraint on Name.
type Product struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	PurchasePrice int64    `json:"purchasePrice"`
	SalePrice     int64    `json:"salePrice"`
	Quantity      int64    `json:"quantity"`
	CreatedAt     int64    `json:"createdAt"`
}

// ProfitPerItem returns salePrice - purchasePrice. May be negative; a
// negative margin is displayed, not blocked.
func (p *Product) ProfitPerItem() int64 {
	return p.SalePrice - p.PurchasePrice
}

// StockValue returns purchasePrice * quantity.
func (p *Product) StockValue() int64 {
	return p.PurchasePrice * p.Quantity
}

// LowStock reports whether the product is below the low-stock threshold.
func (p *Product) LowStock() bool {
	return p.Quantity < common.LowStockThreshold
}

// ProductInput carries the user-editable product fields for add and
// update operations.
type ProductInput struct {
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	PurchasePrice int64    `json:"purchasePrice"`
	SalePrice     int64    `json:"salePrice"`
	Quantity      int64    `json:"quantity"`
}

// Validate checks the add/edit workflow rules: non-empty name, a known
// category, and non-negative prices and quantity. A negative
// profit-per-item is deliberately allowed.
func (in *ProductInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	if !in.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", common.ErrValidation, string(in.Category))
	}
	if in.PurchasePrice < 0 {
		return fmt.Errorf("%w: purchase price must not be negative", common.ErrValidation)
	}
	if in.SalePrice < 0 {
		return fmt.Errorf("%w: sale price must not be negative", common.ErrValidation)
	}
	if in.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", common.ErrValidation)
	}
	return nil
}
