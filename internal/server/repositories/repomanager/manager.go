package repomanager

import (
	"context"
	"database/sql"

	"github.com/avarenkov/stockpos/internal/server/repositories/products"
	"github.com/avarenkov/stockpos/internal/server/repositories/sales"
	"github.com/avarenkov/stockpos/internal/server/repositories/settings"
)

// RepositoryManager owns the database handle and hands out repositories
// bound to it.
type RepositoryManager interface {
	Conn() *sql.DB
	Products() products.Repository
	Sales() sales.Repository
	Settings() settings.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}
