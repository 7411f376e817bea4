package products

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avarenkov/stockpos/internal/common"
	"github.com/avarenkov/stockpos/internal/models"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestInsert_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+products`).
		WithArgs(int64(1), "iPhone Charger", "Charger", int64(100), int64(150), int64(10), int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	p := &models.Product{ID: 1, Name: "iPhone Charger", Category: models.CategoryCharger,
		PurchasePrice: 100, SalePrice: 150, Quantity: 10, CreatedAt: 123}
	require.NoError(t, repo.Insert(context.Background(), p))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+products`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	p := &models.Product{ID: 42, Name: "x", Category: models.CategoryOther}
	err := repo.Update(context.Background(), p)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+products\s+WHERE\s+id`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 7))
}

func TestSelectAll_ScansRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "category", "purchase_price", "sale_price", "quantity", "created_at"}).
		AddRow(int64(1), "Cable A", "Cable", int64(50), int64(80), int64(3), int64(100)).
		AddRow(int64(2), "Cover B", "Cover", int64(100), int64(150), int64(10), int64(200))
	mock.ExpectQuery(`SELECT .* FROM products ORDER BY created_at DESC`).WillReturnRows(rows)

	got, err := repo.SelectAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, models.CategoryCable, got[0].Category)
	require.Equal(t, int64(150), got[1].SalePrice)
}

func TestSelectLowStock_PassesThreshold(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "category", "purchase_price", "sale_price", "quantity", "created_at"}).
		AddRow(int64(1), "Cable A", "Cable", int64(50), int64(80), int64(3), int64(100))
	mock.ExpectQuery(`SELECT .* FROM products WHERE quantity < \$1`).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	got, err := repo.SelectLowStock(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestGetByIDForUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM products WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByIDForUpdate(context.Background(), 99)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdateQuantity_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+products\s+SET\s+quantity`).
		WillReturnError(errors.New("db down"))

	err := repo.UpdateQuantity(context.Background(), 1, 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "db down")
}
