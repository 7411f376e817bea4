package sales

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avarenkov/stockpos/internal/models"
	"github.com/stretchr/testify/require"
)

func TestInsert_Success(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec(`INSERT INTO sales`).
		WithArgs(int64(1), int64(2), "Cable A", int64(3), int64(150), int64(100), int64(150), int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := &models.Sale{ID: 1, ProductID: 2, ProductName: "Cable A", Quantity: 3,
		SalePrice: 150, PurchasePrice: 100, Profit: 150, Date: 999}
	require.NoError(t, repo.Insert(context.Background(), s))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectByDateRange_InclusiveBounds(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"id", "product_id", "product_name", "quantity", "sale_price", "purchase_price", "profit", "date"}).
		AddRow(int64(1), int64(2), "Cable A", int64(3), int64(150), int64(100), int64(150), int64(500))
	mock.ExpectQuery(`WHERE date >= \$1 AND date <= \$2`).
		WithArgs(int64(0), int64(1000)).
		WillReturnRows(rows)

	got, err := repo.SelectByDateRange(context.Background(), 0, 1000)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, int64(150), got[0].Profit)
}
