package main

import (
	"context"
	"log"
	"os"

	"github.com/avarenkov/stockpos/internal/buildinfo"
	"github.com/avarenkov/stockpos/internal/client/cli"
	"github.com/avarenkov/stockpos/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	app, err := cli.NewApp(config.LoadConfig())
	if err != nil {
		log.Fatalf("could not start client: %v", err)
	}

	app.Run(context.Background())
}
