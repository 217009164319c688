package config

import "time"

// Config holds runtime settings for the food record manager.
//
// Backend selects the shared store implementation: "redis", "postgres", or
// "memory" (single-instance, volatile; useful for trying the UI without a
// server). StorageKey is the single backend key holding the whole
// collection. PollInterval is the freshness poll cadence. ActorName and
// ActorEmail identify the signed-in user; record creation is refused while
// they are empty.
type Config struct {
	Backend      string
	RedisAddr    string
	PostgresDSN  string
	StorageKey   string
	PollInterval time.Duration
	ActorName    string
	ActorEmail   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Backend = "redis"
	c.RedisAddr = "localhost:6379"
	c.PostgresDSN = ""
	c.StorageKey = "foodItems"
	c.PollInterval = time.Second
	c.ActorName = ""
	c.ActorEmail = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
