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
	"github.com/avarenkov/stockpos/internal/server/repositories/settings"
)

type BackupService struct {
	db *sql.DB
}

func NewBackupService(db *sql.DB) *BackupService {
	return &BackupService{db: db}
}

// Restore replaces products, sales and settings with the snapshot
// contents in a single transaction, preserving IDs so an export followed
// by an import reproduces identical collections.
func (s *BackupService) Restore(ctx context.Context, b *models.Backup) error {
	if b == nil || b.BackupDate == "" {
		return fmt.Errorf("%w: missing backup date", common.ErrValidation)
	}
	for _, p := range b.Products {
		if !p.Category.Valid() {
			return fmt.Errorf("%w: product %d has unknown category %q", common.ErrValidation, p.ID, string(p.Category))
		}
		if p.Quantity < 0 {
			return fmt.Errorf("%w: product %d has negative quantity", common.ErrValidation, p.ID)
		}
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		productRepo := products.NewPostgresRepository(tx)
		saleRepo := sales.NewPostgresRepository(tx)
		settingsRepo := settings.NewPostgresRepository(tx)

		if err := productRepo.DeleteAll(ctx); err != nil {
			return err
		}
		for _, p := range b.Products {
			if err := productRepo.Insert(ctx, p); err != nil {
				return err
			}
		}

		if err := saleRepo.DeleteAll(ctx); err != nil {
			return err
		}
		for _, sale := range b.Sales {
			if err := saleRepo.Insert(ctx, sale); err != nil {
				return err
			}
		}

		restored := b.Settings
		if restored == nil {
			restored = models.DefaultSettings()
		}
		return settingsRepo.Save(ctx, restored)
	})
}
