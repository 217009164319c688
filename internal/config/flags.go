package config

import (
	"flag"
	"os"
	"time"

	"github.com/raihan324/Food-Application/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-b string   backend kind: redis, postgres, or memory
//	-a string   Redis address (host:port)
//	-d string   Postgres DSN
//	-k string   backend key holding the collection
//	-i int      freshness poll interval in seconds
//	-n string   signed-in actor name
//	-e string   signed-in actor email
//
// os.Args is filtered down to the flags handled here, so flags owned by
// other components pass through untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-a", "-d", "-k", "-i", "-n", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "backend kind (redis, postgres, memory)")
	fs.StringVar(&cfg.RedisAddr, "a", cfg.RedisAddr, "redis address")
	fs.StringVar(&cfg.PostgresDSN, "d", cfg.PostgresDSN, "postgres dsn")
	fs.StringVar(&cfg.StorageKey, "k", cfg.StorageKey, "backend key holding the collection")
	pollInterval := fs.Int("i", int(cfg.PollInterval.Seconds()), "freshness poll interval (in seconds)")
	fs.StringVar(&cfg.ActorName, "n", cfg.ActorName, "actor name")
	fs.StringVar(&cfg.ActorEmail, "e", cfg.ActorEmail, "actor email")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.PollInterval = time.Duration(*pollInterval) * time.Second
}
