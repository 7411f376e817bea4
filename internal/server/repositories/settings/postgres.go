// Package settings provides the PostgreSQL-backed repository for the
// per-installation settings singleton (PIN and lock flag).
package settings

import (
	"context"
	"fmt"

	"github.com/avarenkov/stockpos/internal/common"
	"github.com/avarenkov/stockpos/internal/dbx"
	"github.com/avarenkov/stockpos/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetOrCreate inserts the default row if missing, then reads it. The
// settings table holds exactly one row (id = 1).
func (r *PostgresRepository) GetOrCreate(ctx context.Context) (*models.Settings, error) {
	insert := `
		INSERT INTO settings (id, pin, lock_enabled)
		VALUES (1, $1, false)
		ON CONFLICT (id) DO NOTHING;
	`
	if _, err := r.db.ExecContext(ctx, insert, common.DefaultPin); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	var s models.Settings
	err := r.db.QueryRowContext(ctx, `SELECT pin, lock_enabled FROM settings WHERE id = 1;`).
		Scan(&s.Pin, &s.LockEnabled)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &s, nil
}

func (r *PostgresRepository) Save(ctx context.Context, s *models.Settings) error {
	query := `
		INSERT INTO settings (id, pin, lock_enabled)
		VALUES (1, $1, $2)
		ON CONFLICT (id)
		DO UPDATE SET pin = EXCLUDED.pin, lock_enabled = EXCLUDED.lock_enabled;
	`
	if _, err := r.db.ExecContext(ctx, query, s.Pin, s.LockEnabled); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
