package services

import (
	"context"
	"fmt"

	"github.com/avarenkov/stockpos/internal/common"
	"github.com/avarenkov/stockpos/internal/models"
	"github.com/avarenkov/stockpos/internal/server/repositories/settings"
)

type SettingsService struct {
	repo settings.Repository
}

func NewSettingsService(repo settings.Repository) *SettingsService {
	return &SettingsService{repo: repo}
}

// GetSettings returns the singleton, creating it with defaults on first
// read.
func (s *SettingsService) GetSettings(ctx context.Context) (*models.Settings, error) {
	return s.repo.GetOrCreate(ctx)
}

func (s *SettingsService) UpdatePin(ctx context.Context, newPin string) error {
	if !models.ValidPin(newPin) {
		return fmt.Errorf("%w: pin must be exactly %d digits", common.ErrValidation, common.PinLength)
	}

	current, err := s.repo.GetOrCreate(ctx)
	if err != nil {
		return err
	}
	current.Pin = newPin
	return s.repo.Save(ctx, current)
}

func (s *SettingsService) ToggleLock(ctx context.Context) error {
	current, err := s.repo.GetOrCreate(ctx)
	if err != nil {
		return err
	}
	current.LockEnabled = !current.LockEnabled
	return s.repo.Save(ctx, current)
}
