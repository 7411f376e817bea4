// Package repomanager wires the PostgreSQL connection, the repositories,
// and the goose migrations together.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avarenkov/stockpos/internal/server/migrations"
	"github.com/avarenkov/stockpos/internal/server/repositories/products"
	"github.com/avarenkov/stockpos/internal/server/repositories/sales"
	"github.com/avarenkov/stockpos/internal/server/repositories/settings"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct {
	db       *sql.DB
	products products.Repository
	sales    sales.Repository
	settings settings.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Products() products.Repository {
	return m.products
}

func (m *PostgresRepositoryManager) Sales() sales.Repository {
	return m.sales
}

func (m *PostgresRepositoryManager) Settings() settings.Repository {
	return m.settings
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:       db,
		products: products.NewPostgresRepository(db),
		sales:    sales.NewPostgresRepository(db),
		settings: settings.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
