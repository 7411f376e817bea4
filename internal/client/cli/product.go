package cli

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/avarenkov/stockpos/internal/models"
)

func (a *App) list(ctx context.Context) {
	products, err := a.store.GetAllProducts(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	for _, p := range products {
		printProduct(p)
	}
	if len(products) == 0 {
		fmt.Println("No products yet. Use 'add' to create one.")
	}
}

func printProduct(p *models.Product) {
	fmt.Printf("[%d] %s (%s) buy: Rs. %d sell: Rs. %d qty: %d profit/item: Rs. %d\n",
		p.ID, p.Name, p.Category, p.PurchasePrice, p.SalePrice, p.Quantity, p.ProfitPerItem())
}

// inputProduct collects the editable product fields. Validation happens
// locally first so the user gets feedback without a round trip; the
// gateway validates again.
func (a *App) inputProduct(ctx context.Context) (models.ProductInput, error) {

	var zero models.ProductInput

	name, err := GetSimpleText(a.reader, "Enter product name", stdout())
	if err != nil {
		return zero, err
	}

	categories := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		categories = append(categories, string(c))
	}
	categoryRaw, err := GetSimpleText(a.reader, "Enter category ("+strings.Join(categories, ", ")+")", stdout())
	if err != nil {
		return zero, err
	}
	category, err := models.ParseCategory(categoryRaw)
	if err != nil {
		return zero, err
	}

	purchase, err := GetInt(a.reader, "Enter purchase price (Rs.)", stdout())
	if err != nil {
		return zero, err
	}

	sale, err := GetInt(a.reader, "Enter sale price (Rs.)", stdout())
	if err != nil {
		return zero, err
	}

	qty, err := GetInt(a.reader, "Enter quantity", stdout())
	if err != nil {
		return zero, err
	}

	in := models.ProductInput{Name: name, Category: category, PurchasePrice: purchase, SalePrice: sale, Quantity: qty}
	if err := in.Validate(); err != nil {
		return zero, err
	}

	fmt.Printf("Profit per item: Rs. %d\n", in.SalePrice-in.PurchasePrice)
	return in, nil
}

func (a *App) addProduct(ctx context.Context) {
	in, err := a.inputProduct(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	id, err := a.store.AddProduct(ctx, in)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	fmt.Printf("Product added with id %d\n", id)
}

func (a *App) editProduct(ctx context.Context) {
	id, err := GetInt(a.reader, "Enter product id", stdout())
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	in, err := a.inputProduct(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.store.UpdateProduct(ctx, id, in); err != nil {
		log.Printf("error: %v", err)
		return
	}

	fmt.Println("Product updated.")
}

func (a *App) deleteProduct(ctx context.Context) {
	id, err := GetInt(a.reader, "Enter product id", stdout())
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	answer, err := GetSimpleText(a.reader, fmt.Sprintf("Delete product %d? (y/n)", id), stdout())
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if !strings.EqualFold(answer, "y") {
		return
	}

	if err := a.store.DeleteProduct(ctx, id); err != nil {
		log.Printf("error: %v", err)
		return
	}

	fmt.Println("Product deleted.")
}

func (a *App) search(ctx context.Context, args []string) {
	query := strings.Join(args, " ")
	if query == "" {
		q, err := GetSimpleText(a.reader, "Enter search text", stdout())
		if err != nil {
			log.Printf("error: %v", err)
			return
		}
		query = q
	}

	products, err := a.store.GetAllProducts(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	matches := filterProducts(products, query)
	for _, p := range matches {
		printProduct(p)
	}
	if len(matches) == 0 {
		fmt.Println("No matches.")
	}
}

// filterProducts returns products whose name or category contains the
// query, case-insensitively.
func filterProducts(products []*models.Product, query string) []*models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}

	matches := make([]*models.Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(string(p.Category)), q) {
			matches = append(matches, p)
		}
	}
	return matches
}
