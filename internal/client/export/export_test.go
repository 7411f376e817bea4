package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avarenkov/stockpos/internal/common"
	"github.com/avarenkov/stockpos/internal/models"
)

func sampleProducts() []*models.Product {
	return []*models.Product{
		{ID: 1, Name: "USB Cable", Category: models.CategoryCable, PurchasePrice: 100, SalePrice: 150, Quantity: 10},
		{ID: 2, Name: "Fast Charger", Category: models.CategoryCharger, PurchasePrice: 500, SalePrice: 800, Quantity: 3},
	}
}

func TestBuildInventoryReport(t *testing.T) {
	at := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)

	report := BuildInventoryReport(sampleProducts(), at)

	require.Contains(t, report, "STOCKPOS INVENTORY REPORT")
	require.Contains(t, report, "Generated: 2026-08-31 10:30:00")
	require.Contains(t, report, "Total Products: 2")
	require.Contains(t, report, "Total Stock: 13")
	// 100*10 + 500*3
	require.Contains(t, report, "Total Value: Rs. 2500")
	require.Contains(t, report, "Name: USB Cable")
	require.Contains(t, report, "Purchase: Rs. 100")
	require.Contains(t, report, "Value: Rs. 1000")
	require.Contains(t, report, "---")
}

func TestBuildLowStockReport(t *testing.T) {
	at := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)

	report := BuildLowStockReport(sampleProducts()[1:], at)

	require.Contains(t, report, "LOW STOCK REPORT - 2026-08-31")
	require.Contains(t, report, "Fast Charger (Charger) - Qty: 3")
}

func TestWriteInventoryReport(t *testing.T) {
	origNow := now
	defer func() { now = origNow }()
	now = func() time.Time { return time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC) }

	dir := t.TempDir()
	path, err := WriteInventoryReport(dir, sampleProducts())
	require.NoError(t, err)
	require.Equal(t, "inventory-report-2026-08-31.txt", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "STOCKPOS INVENTORY REPORT")
}

func TestBackupRoundTrip(t *testing.T) {
	dir := t.TempDir()

	b := BuildBackup(sampleProducts(), []*models.Sale{{ID: 9, ProductName: "USB Cable", Profit: 150}}, &models.Settings{Pin: "9876", LockEnabled: true})
	require.NotEmpty(t, b.BackupID)
	require.NotEmpty(t, b.BackupDate)

	path, err := WriteBackup(dir, b)
	require.NoError(t, err)

	got, err := ReadBackup(path)
	require.NoError(t, err)
	require.Equal(t, b.BackupID, got.BackupID)
	require.Len(t, got.Products, 2)
	require.Equal(t, int64(1), got.Products[0].ID)
	require.Equal(t, "USB Cable", got.Sales[0].ProductName)
	require.Equal(t, "9876", got.Settings.Pin)
}

func TestReadBackup_MissingDate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"products": []}`), 0o600))

	_, err := ReadBackup(path)
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestReadBackup_NotJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := ReadBackup(path)
	require.ErrorIs(t, err, common.ErrValidation)
}
