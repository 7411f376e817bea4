package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/avarenkov/stockpos/internal/common"
	"github.com/avarenkov/stockpos/internal/models"
)

// BuildBackup assembles a full snapshot ready for serialization. Every
// backup gets a fresh ID and a creation timestamp in RFC 3339 form.
func BuildBackup(products []*models.Product, sales []*models.Sale, settings *models.Settings) *models.Backup {
	return &models.Backup{
		BackupID:   uuid.NewString(),
		BackupDate: now().UTC().Format(time.RFC3339),
		Products:   products,
		Sales:      sales,
		Settings:   settings,
	}
}

// WriteBackup serializes the backup as indented JSON into dir and
// returns the path of the written file.
func WriteBackup(dir string, b *models.Backup) (string, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding backup: %w", err)
	}
	name := fmt.Sprintf("stockpos-backup-%s.json", now().Format("2006-01-02"))
	return writeTextFile(dir, name, string(data))
}

// ReadBackup loads a backup file written by WriteBackup. Files without
// a backupDate are rejected as invalid.
func ReadBackup(path string) (*models.Backup, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var b models.Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%w: not a valid backup file", common.ErrValidation)
	}
	if b.BackupDate == "" {
		return nil, fmt.Errorf("%w: backup file is missing backupDate", common.ErrValidation)
	}
	return &b, nil
}
