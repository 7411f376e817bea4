package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/avarenkov/stockpos/internal/models"
)

func (a *App) sell(ctx context.Context) {
	products, err := a.store.GetAllProducts(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}
	if len(products) == 0 {
		fmt.Println("No products to sell.")
		return
	}

	for _, p := range products {
		printProduct(p)
	}

	id, err := GetInt(a.reader, "Enter product id", stdout())
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	var product *models.Product
	for _, p := range products {
		if p.ID == id {
			product = p
			break
		}
	}
	if product == nil {
		fmt.Println("No such product.")
		return
	}

	qty, err := GetInt(a.reader, fmt.Sprintf("Enter quantity (in stock: %d)", product.Quantity), stdout())
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if qty <= 0 || qty > product.Quantity {
		fmt.Println("Quantity must be positive and not exceed stock.")
		return
	}

	// The stock check above ran on a cached snapshot; the gateway
	// re-validates inside the sale transaction.
	if _, err := a.store.RecordSale(ctx, product.ID, qty); err != nil {
		log.Printf("error: %v", err)
		return
	}

	fmt.Printf("Sold %d x %s, profit Rs. %d\n", qty, product.Name, product.ProfitPerItem()*qty)
}

func (a *App) todaysSales(ctx context.Context) {
	start, end := dayRange(time.Now())

	sales, err := a.store.GetSalesByDateRange(ctx, start, end)
	if err != nil {
		log.Println(err.Error())
		return
	}

	var revenue, profit, items int64
	for _, s := range sales {
		fmt.Printf("[%d] %s x%d - Rs. %d (profit Rs. %d)\n", s.ID, s.ProductName, s.Quantity, s.Revenue(), s.Profit)
		revenue += s.Revenue()
		profit += s.Profit
		items += s.Quantity
	}

	fmt.Printf("Today: %d items, revenue Rs. %d, profit Rs. %d\n", items, revenue, profit)
}
