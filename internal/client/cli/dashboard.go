package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) dashboard(ctx context.Context) {
	products, err := a.store.GetAllProducts(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	lowStock, err := a.store.GetLowStockProducts(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	var totalStock, stockValue, expectedProfit int64
	for _, p := range products {
		totalStock += p.Quantity
		stockValue += p.StockValue()
		expectedProfit += p.ProfitPerItem() * p.Quantity
	}

	fmt.Println("DASHBOARD")
	fmt.Printf("Total products:  %d\n", len(products))
	fmt.Printf("Total stock:     %d\n", totalStock)
	fmt.Printf("Stock value:     Rs. %d\n", stockValue)
	fmt.Printf("Expected profit: Rs. %d\n", expectedProfit)
	fmt.Printf("Low stock items: %d\n", len(lowStock))

	for _, p := range lowStock {
		fmt.Printf("  ! %s (%s) - Qty: %d\n", p.Name, p.Category, p.Quantity)
	}
}
