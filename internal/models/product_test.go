package models

import (
	"errors"
	"testing"

	"github.com/avarenkov/stockpos/internal/common"
	"github.com/stretchr/testify/require"
)

func TestProductProfitAndValue(t *testing.T) {
	p := &Product{PurchasePrice: 100, SalePrice: 150, Quantity: 10}
	require.Equal(t, int64(50), p.ProfitPerItem())
	require.Equal(t, int64(1000), p.StockValue())
}

func TestProfitPerItemMayBeNegative(t *testing.T) {
	p := &Product{PurchasePrice: 200, SalePrice: 150}
	require.Equal(t, int64(-50), p.ProfitPerItem())
}

func TestLowStock(t *testing.T) {
	require.True(t, (&Product{Quantity: 4}).LowStock())
	require.True(t, (&Product{Quantity: 0}).LowStock())
	require.False(t, (&Product{Quantity: 5}).LowStock())
}

func TestProductInputValidate(t *testing.T) {
	valid := ProductInput{Name: "iPhone Charger", Category: CategoryCharger, PurchasePrice: 100, SalePrice: 150, Quantity: 10}

	tests := []struct {
		name   string
		mutate func(in *ProductInput)
		wantOK bool
	}{
		{"valid", func(in *ProductInput) {}, true},
		{"negative margin allowed", func(in *ProductInput) { in.SalePrice = 50 }, true},
		{"zero quantity allowed", func(in *ProductInput) { in.Quantity = 0 }, true},
		{"empty name", func(in *ProductInput) { in.Name = "  " }, false},
		{"unknown category", func(in *ProductInput) { in.Category = "Gadget" }, false},
		{"negative purchase price", func(in *ProductInput) { in.PurchasePrice = -1 }, false},
		{"negative sale price", func(in *ProductInput) { in.SalePrice = -1 }, false},
		{"negative quantity", func(in *ProductInput) { in.Quantity = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantOK {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.True(t, errors.Is(err, common.ErrValidation))
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("PowerBank")
	require.NoError(t, err)
	require.Equal(t, CategoryPowerBank, c)

	_, err = ParseCategory("powerbank")
	require.Error(t, err)

	_, err = ParseCategory("")
	require.Error(t, err)
}

func TestValidPin(t *testing.T) {
	require.True(t, ValidPin("1234"))
	require.True(t, ValidPin("0000"))
	require.False(t, ValidPin("123"))
	require.False(t, ValidPin("12345"))
	require.False(t, ValidPin("12a4"))
	require.False(t, ValidPin(""))
}

func TestSaleRevenue(t *testing.T) {
	s := &Sale{SalePrice: 150, Quantity: 3}
	require.Equal(t, int64(450), s.Revenue())
}
