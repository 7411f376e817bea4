// Package cli implements the terminal REPL of the stockpos client:
// lock screen, dashboard, product management, sales, reports and
// settings screens on top of the cached store.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"
	"time"

	"github.com/avarenkov/stockpos/internal/client/config"
	"github.com/avarenkov/stockpos/internal/client/gateway"
	"github.com/avarenkov/stockpos/internal/client/lock"
	"github.com/avarenkov/stockpos/internal/client/store"
	"github.com/avarenkov/stockpos/internal/common"
	"github.com/avarenkov/stockpos/internal/models"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config *config.Config
	store  *store.Store
	gate   *lock.Gate
	Mode   Mode
	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	gw := gateway.NewHTTPGateway(c.ServerEndpointURL, c.RequestTimeout)
	st := store.New(gw)

	settings, err := st.GetSettings(ctx)
	if err != nil {
		// Gateway unreachable on startup. Assume the lock is on so a
		// stolen terminal does not bypass it.
		log.Printf("could not load settings: %s", err.Error())
		settings = models.DefaultSettings()
		settings.LockEnabled = true
	}

	return &App{
		config: c,
		store:  st,
		gate:   lock.NewGate(settings.LockEnabled),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.Unlock(ctx)
	a.Root(ctx)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.store.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}

// currentPin fetches the PIN the lock screen compares against. If the
// gateway cannot be reached and nothing is cached, the default PIN
// applies so a fresh install is not bricked.
func (a *App) currentPin(ctx context.Context) string {
	settings, err := a.store.GetSettings(ctx)
	if err != nil {
		return common.DefaultPin
	}
	return settings.Pin
}
