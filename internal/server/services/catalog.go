// Package services holds the gateway's business logic: catalog CRUD,
// sale recording, settings, and backup restore. Handlers stay thin and
// delegate here.
package services

import (
	"context"
	"time"

	"github.com/avarenkov/stockpos/internal/common"
	"github.com/avarenkov/stockpos/internal/models"
	"github.com/avarenkov/stockpos/internal/server/repositories/products"
	"github.com/bwmarrin/snowflake"
)

// nowNanos is a test seam for timestamp assignment.
var nowNanos = func() int64 { return time.Now().UnixNano() }

type CatalogService struct {
	repo products.Repository
	node *snowflake.Node
}

func NewCatalogService(repo products.Repository, node *snowflake.Node) *CatalogService {
	return &CatalogService{repo: repo, node: node}
}

// AddProduct validates the input, assigns a server-side ID and creation
// timestamp, and persists the product.
func (s *CatalogService) AddProduct(ctx context.Context, in models.ProductInput) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	p := &models.Product{
		ID:            s.node.Generate().Int64(),
		Name:          in.Name,
		Category:      in.Category,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		Quantity:      in.Quantity,
		CreatedAt:     nowNanos(),
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		return 0, err
	}
	return p.ID, nil
}

// UpdateProduct replaces the editable fields of an existing product.
// CreatedAt is never touched.
func (s *CatalogService) UpdateProduct(ctx context.Context, id int64, in models.ProductInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	p := &models.Product{
		ID:            id,
		Name:          in.Name,
		Category:      in.Category,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		Quantity:      in.Quantity,
	}
	return s.repo.Update(ctx, p)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *CatalogService) GetAllProducts(ctx context.Context) ([]*models.Product, error) {
	return s.repo.SelectAll(ctx)
}

func (s *CatalogService) GetLowStockProducts(ctx context.Context) ([]*models.Product, error) {
	return s.repo.SelectLowStock(ctx, common.LowStockThreshold)
}
