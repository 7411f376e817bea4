package main

import (
	"context"
	"log"
	"os"

	"github.com/avarenkov/stockpos/internal/buildinfo"
	"github.com/avarenkov/stockpos/internal/server"
	"github.com/avarenkov/stockpos/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	app, err := server.NewApp(config.LoadConfig())
	if err != nil {
		log.Fatalf("gateway startup failed: %v", err)
	}

	app.Run(context.Background())
}
