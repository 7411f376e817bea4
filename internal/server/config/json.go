package config

import (
	"encoding/json"
	"os"

	"github.com/avarenkov/stockpos/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config afterwards.
type JsonConfig struct {
	EndpointAddr  string `json:"endpoint_addr"`
	DatabaseDSN   string `json:"database_dsn"`
	SnowflakeNode *int64 `json:"snowflake_node"`
}

// parseJson overlays Config with values loaded from a JSON file resolved
// via the -c/-config flags. Missing file path means no overlay. Read or
// unmarshal errors panic; config is broken, there is nothing to start.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.EndpointAddr != "" {
		cfg.EndpointAddr = jc.EndpointAddr
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SnowflakeNode != nil {
		cfg.SnowflakeNode = *jc.SnowflakeNode
	}
}
