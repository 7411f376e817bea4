// Package sales provides the PostgreSQL-backed repository for the sales
// ledger.
package sales

import (
	"context"
	"fmt"

	"github.com/avarenkov/stockpos/internal/dbx"
	"github.com/avarenkov/stockpos/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, s *models.Sale) error {
	query := `
		INSERT INTO sales (id, product_id, product_name, quantity, sale_price, purchase_price, profit, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.ProductID, s.ProductName, s.Quantity, s.SalePrice, s.PurchasePrice, s.Profit, s.Date)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// SelectByDateRange returns sales with start <= date <= end, both bounds
// inclusive (the client passes whole local calendar days).
func (r *PostgresRepository) SelectByDateRange(ctx context.Context, start, end int64) ([]*models.Sale, error) {
	query := `
		SELECT id, product_id, product_name, quantity, sale_price, purchase_price, profit, date
		FROM sales
		WHERE date >= $1 AND date <= $2
		ORDER BY date DESC;
	`
	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to select sales: %w", err)
	}
	defer rows.Close()

	var result []*models.Sale
	for rows.Next() {
		var item models.Sale
		if err := rows.Scan(
			&item.ID, &item.ProductID, &item.ProductName, &item.Quantity,
			&item.SalePrice, &item.PurchasePrice, &item.Profit, &item.Date,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sales;`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
