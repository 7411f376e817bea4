// Package products provides the PostgreSQL-backed repository for the
// product catalog.
package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avarenkov/stockpos/internal/common"
	"github.com/avarenkov/stockpos/internal/dbx"
	"github.com/avarenkov/stockpos/internal/models"
)

// PostgresRepository implements product storage over a dbx.DBTX
// (*sql.DB or *sql.Tx). Sale recording rebinds it to a transaction.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectColumns = `id, name, category, purchase_price, sale_price, quantity, created_at`

func (r *PostgresRepository) Insert(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (id, name, category, purchase_price, sale_price, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, string(p.Category), p.PurchasePrice, p.SalePrice, p.Quantity, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Product) error {
	query := `
		UPDATE products
		SET name = $2, category = $3, purchase_price = $4, sale_price = $5, quantity = $6
		WHERE id = $1;
	`
	res, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, string(p.Category), p.PurchasePrice, p.SalePrice, p.Quantity)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func (r *PostgresRepository) SelectAll(ctx context.Context) ([]*models.Product, error) {
	query := `SELECT ` + selectColumns + ` FROM products ORDER BY created_at DESC;`
	return r.selectMany(ctx, query)
}

func (r *PostgresRepository) SelectLowStock(ctx context.Context, threshold int64) ([]*models.Product, error) {
	query := `SELECT ` + selectColumns + ` FROM products WHERE quantity < $1 ORDER BY quantity ASC;`
	return r.selectMany(ctx, query, threshold)
}

// GetByIDForUpdate loads a product with a row lock so a concurrent sale
// cannot decrement the same stock underneath the caller's transaction.
func (r *PostgresRepository) GetByIDForUpdate(ctx context.Context, id int64) (*models.Product, error) {
	query := `SELECT ` + selectColumns + ` FROM products WHERE id = $1 FOR UPDATE;`

	var item models.Product
	var category string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Name, &category, &item.PurchasePrice, &item.SalePrice, &item.Quantity, &item.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	item.Category = models.Category(category)
	return &item, nil
}

func (r *PostgresRepository) UpdateQuantity(ctx context.Context, id int64, quantity int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE products SET quantity = $2 WHERE id = $1;`, id, quantity)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM products;`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) selectMany(ctx context.Context, query string, args ...any) ([]*models.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}
	defer rows.Close()

	var result []*models.Product
	for rows.Next() {
		var item models.Product
		var category string
		if err := rows.Scan(
			&item.ID, &item.Name, &category, &item.PurchasePrice, &item.SalePrice, &item.Quantity, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		item.Category = models.Category(category)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
