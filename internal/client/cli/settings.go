package cli

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/avarenkov/stockpos/internal/client/export"
	"github.com/avarenkov/stockpos/internal/models"
)

func (a *App) showSettings(ctx context.Context) {
	settings, err := a.store.GetSettings(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("App lock: %s\n", onOff(settings.LockEnabled))
	fmt.Printf("Export directory: %s\n", a.config.ExportDir)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (a *App) toggleLock(ctx context.Context) {
	if err := a.store.ToggleLock(ctx); err != nil {
		log.Printf("error: %v", err)
		return
	}

	settings, err := a.store.GetSettings(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	fmt.Printf("App lock is now %s.\n", onOff(settings.LockEnabled))
}

func (a *App) changePin(ctx context.Context) {
	newPin, err := GetPin("Enter new PIN (4 digits)", stdout())
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if !models.ValidPin(newPin) {
		fmt.Println("PIN must be exactly 4 digits.")
		return
	}

	confirm, err := GetPin("Repeat new PIN", stdout())
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if confirm != newPin {
		fmt.Println("PINs do not match.")
		return
	}

	if err := a.store.UpdatePin(ctx, newPin); err != nil {
		log.Printf("error: %v", err)
		return
	}

	fmt.Println("PIN updated.")
}

// backup snapshots everything the gateway holds into a JSON file. The
// sales range starts at zero so the whole history is included.
func (a *App) backup(ctx context.Context) {
	products, err := a.store.GetAllProducts(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	sales, err := a.store.GetSalesByDateRange(ctx, 0, time.Now().UnixNano())
	if err != nil {
		log.Println(err.Error())
		return
	}

	settings, err := a.store.GetSettings(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	b := export.BuildBackup(products, sales, settings)
	path, err := export.WriteBackup(a.config.ExportDir, b)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	fmt.Printf("Backup written to %s\n", path)
}

func (a *App) restore(ctx context.Context, path string) {
	b, err := export.ReadBackup(path)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	prompt := fmt.Sprintf("Restore backup from %s? This replaces ALL current data. (y/n)", b.BackupDate)
	answer, err := GetSimpleText(a.reader, prompt, stdout())
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if !strings.EqualFold(answer, "y") {
		return
	}

	if err := a.store.RestoreBackup(ctx, b); err != nil {
		log.Printf("error: %v", err)
		return
	}

	fmt.Println("Backup restored.")
}
