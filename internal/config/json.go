package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/raihan324/Food-Application/internal/flagx"
	"github.com/raihan324/Food-Application/internal/timex"
)

// JsonConfig is the DTO for JSON unmarshalling. timex.Duration lets the
// file spell intervals as "1s" or as integer nanoseconds.
type JsonConfig struct {
	Backend      string         `json:"backend"`
	RedisAddr    string         `json:"redis_addr"`
	PostgresDSN  string         `json:"postgres_dsn"`
	StorageKey   string         `json:"storage_key"`
	PollInterval timex.Duration `json:"poll_interval"`
	ActorName    string         `json:"actor_name"`
	ActorEmail   string         `json:"actor_email"`
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flag. With no such flag the function is a no-op. Read or parse
// failures panic; configuration that was asked for but cannot be used is
// not worth limping past. Empty JSON fields leave the current value alone.
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

	if jc.Backend != "" {
		cfg.Backend = jc.Backend
	}
	if jc.RedisAddr != "" {
		cfg.RedisAddr = jc.RedisAddr
	}
	if jc.PostgresDSN != "" {
		cfg.PostgresDSN = jc.PostgresDSN
	}
	if jc.StorageKey != "" {
		cfg.StorageKey = jc.StorageKey
	}
	if jc.PollInterval.Duration != 0 {
		cfg.PollInterval = time.Duration(jc.PollInterval.Duration)
	}
	if jc.ActorName != "" {
		cfg.ActorName = jc.ActorName
	}
	if jc.ActorEmail != "" {
		cfg.ActorEmail = jc.ActorEmail
	}
}
