// Package server initializes and runs the stockpos gateway.
// It opens the database, runs migrations, wires the services and starts
// the HTTP API with graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/bwmarrin/snowflake"

	"github.com/avarenkov/stockpos/internal/logging"
	"github.com/avarenkov/stockpos/internal/server/api"
	"github.com/avarenkov/stockpos/internal/server/config"
	"github.com/avarenkov/stockpos/internal/server/repositories/repomanager"
	"github.com/avarenkov/stockpos/internal/server/services"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	repos    repomanager.RepositoryManager
	catalog  *services.CatalogService
	sale     *services.SaleService
	settings *services.SettingsService
	backup   *services.BackupService
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout)

	rm, err := repomanager.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	node, err := snowflake.NewNode(c.SnowflakeNode)
	if err != nil {
		return nil, fmt.Errorf("snowflake init error: %w", err)
	}

	cs := services.NewCatalogService(rm.Products(), node)
	ss := services.NewSaleService(rm.Conn(), node)
	st := services.NewSettingsService(rm.Settings())
	bs := services.NewBackupService(rm.Conn())

	return &App{
		config:   c,
		logger:   logger,
		repos:    rm,
		catalog:  cs,
		sale:     ss,
		settings: st,
		backup:   bs,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	h := api.NewHandler(app.logger, app.catalog, app.sale, app.settings, app.backup)
	s := api.NewServer(app.config.EndpointAddr, app.logger, h)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
