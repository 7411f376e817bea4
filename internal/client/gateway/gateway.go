// Package gateway provides the client side of the stockpos gateway API.
// The Gateway interface is the narrow surface the rest of the client
// depends on; the HTTP implementation lives in http.go.
package gateway

import (
	"context"

	"github.com/avarenkov/stockpos/internal/models"
)

type Gateway interface {
	Ping(ctx context.Context) error

	AddProduct(ctx context.Context, in models.ProductInput) (int64, error)
	UpdateProduct(ctx context.Context, id int64, in models.ProductInput) error
	DeleteProduct(ctx context.Context, id int64) error
	GetAllProducts(ctx context.Context) ([]*models.Product, error)
	GetLowStockProducts(ctx context.Context) ([]*models.Product, error)

	RecordSale(ctx context.Context, productID, quantity int64) (int64, error)
	GetSalesByDateRange(ctx context.Context, start, end int64) ([]*models.Sale, error)

	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdatePin(ctx context.Context, newPin string) error
	ToggleLock(ctx context.Context) error

	RestoreBackup(ctx context.Context, b *models.Backup) error

	Close() error
}
