package sales

import (
	"context"

	"github.com/avarenkov/stockpos/internal/models"
)

// Repository is the persistence contract for the sales ledger. Sales are
// insert-only; there is no update path.
type Repository interface {
	Insert(ctx context.Context, s *models.Sale) error
	SelectByDateRange(ctx context.Context, start, end int64) ([]*models.Sale, error)
	DeleteAll(ctx context.Context) error
}
