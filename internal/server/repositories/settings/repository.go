package settings

import (
	"context"

	"github.com/avarenkov/stockpos/internal/models"
)

// Repository is the persistence contract for the settings singleton.
type Repository interface {
	// GetOrCreate returns the settings row, inserting the defaults on
	// first read.
	GetOrCreate(ctx context.Context) (*models.Settings, error)
	Save(ctx context.Context, s *models.Settings) error
}
