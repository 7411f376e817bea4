package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/avarenkov/stockpos/internal/client/export"
)

func (a *App) reports(ctx context.Context) {
	now := time.Now()

	dayStart, dayEnd := dayRange(now)
	daily, err := a.store.GetSalesByDateRange(ctx, dayStart, dayEnd)
	if err != nil {
		log.Println(err.Error())
		return
	}

	monthStart, monthEnd := monthRange(now)
	monthly, err := a.store.GetSalesByDateRange(ctx, monthStart, monthEnd)
	if err != nil {
		log.Println(err.Error())
		return
	}

	var dailyTotal, dailyItems, monthlyProfit int64
	for _, s := range daily {
		dailyTotal += s.Revenue()
		dailyItems += s.Quantity
	}
	for _, s := range monthly {
		monthlyProfit += s.Profit
	}

	fmt.Println("REPORTS")
	fmt.Printf("Today's sales total: Rs. %d\n", dailyTotal)
	fmt.Printf("Today's items sold:  %d\n", dailyItems)
	fmt.Printf("This month's profit: Rs. %d\n", monthlyProfit)
}

func (a *App) exportInventory(ctx context.Context) {
	products, err := a.store.GetAllProducts(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	path, err := export.WriteInventoryReport(a.config.ExportDir, products)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	fmt.Printf("Report written to %s\n", path)
}

func (a *App) exportLowStock(ctx context.Context) {
	products, err := a.store.GetLowStockProducts(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	path, err := export.WriteLowStockReport(a.config.ExportDir, products)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	fmt.Printf("Report written to %s\n", path)
}
