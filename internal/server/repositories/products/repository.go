package products

import (
	"context"

	"github.com/avarenkov/stockpos/internal/models"
)

// Repository is the persistence contract for the product catalog.
type Repository interface {
	Insert(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id int64) error
	SelectAll(ctx context.Context) ([]*models.Product, error)
	SelectLowStock(ctx context.Context, threshold int64) ([]*models.Product, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*models.Product, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int64) error
	DeleteAll(ctx context.Context) error
}
