// Package config loads runtime configuration for the food record manager.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via the -c or -config flag.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-b string   backend kind: redis, postgres, or memory
//	-a string   Redis address (host:port)
//	-d string   Postgres DSN
//	-k string   backend key holding the collection
//	-i int      freshness poll interval (seconds)
//	-n string   signed-in actor name
//	-e string   signed-in actor email
//
// # JSON schema
//
// Intervals may be strings like "1s" or integer nanoseconds:
//
//	{
//	  "backend": "redis",
//	  "redis_addr": "localhost:6379",
//	  "storage_key": "foodItems",
//	  "poll_interval": "1s",
//	  "actor_name": "Ann",
//	  "actor_email": "a@x.com"
//	}
package config
