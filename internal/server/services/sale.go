package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avarenkov/stockpos/internal/common"
	"github.com/avarenkov/stockpos/internal/dbx"
	"github.com/avarenkov/stockpos/internal/models"
	"github.com/avarenkov/stockpos/internal/server/repositories/products"
	"github.com/avarenkov/stockpos/internal/server/repositories/sales"
	"github.com/bwmarrin/snowflake"
)

type SaleService struct {
	db   *sql.DB
	node *snowflake.Node
}

func NewSaleService(db *sql.DB, node *snowflake.Node) *SaleService {
	return &SaleService{db: db, node: node}
}

// RecordSale atomically validates the requested quantity against current
// stock, decrements it, and inserts the sale with all product fields
// snapshotted at this moment. Profit is computed server-side from the
// locked row, so a racing update cannot skew it.
func (s *SaleService) RecordSale(ctx context.Context, productID, quantity int64) (int64, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: quantity must be positive", common.ErrValidation)
	}

	var saleID int64

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		productRepo := products.NewPostgresRepository(tx)
		saleRepo := sales.NewPostgresRepository(tx)

		p, err := productRepo.GetByIDForUpdate(ctx, productID)
		if err != nil {
			return err
		}

		if quantity > p.Quantity {
			return common.ErrInsufficientStock
		}

		if err := productRepo.UpdateQuantity(ctx, productID, p.Quantity-quantity); err != nil {
			return err
		}

		sale := &models.Sale{
			ID:            s.node.Generate().Int64(),
			ProductID:     p.ID,
			ProductName:   p.Name,
			Quantity:      quantity,
			SalePrice:     p.SalePrice,
			PurchasePrice: p.PurchasePrice,
			Profit:        p.ProfitPerItem() * quantity,
			Date:          nowNanos(),
		}
		if err := saleRepo.Insert(ctx, sale); err != nil {
			return err
		}

		saleID = sale.ID
		return nil
	})

	return saleID, err
}

// GetSalesByDateRange returns sales within [start, end], both bounds
// inclusive.
func (s *SaleService) GetSalesByDateRange(ctx context.Context, start, end int64) ([]*models.Sale, error) {
	return sales.NewPostgresRepository(s.db).SelectByDateRange(ctx, start, end)
}
