package config

import (
	"flag"
	"os"

	"github.com/avarenkov/stockpos/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port to bind the HTTP endpoint
//	-d string   PostgreSQL DSN
//	-n int      snowflake node number
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-n"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointAddr, "a", cfg.EndpointAddr, "address and port to bind")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.Int64Var(&cfg.SnowflakeNode, "n", cfg.SnowflakeNode, "snowflake node number")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
