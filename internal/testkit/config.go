// Package testkit spins up throwaway Postgres and Redis instances for
// integration tests, using testcontainers unless external endpoints are
// provided through the environment.
package testkit

import (
	"os"
	"strconv"
	"time"
)

// Env holds the knobs the integration suite reads from the environment.
// External endpoints short-circuit container startup, which is useful in
// CI pipelines that provide shared services.
type Env struct {
	PostgresImage string
	RedisImage    string
	ExternalDSN   string // CONVSVC_TEST_PG_DSN, skips the Postgres container
	ExternalRedis string // CONVSVC_TEST_REDIS_ADDR, skips the Redis container
	StartTimeout  time.Duration
	KeepAlive     bool // leave containers running after the suite finishes
}

func ReadEnv() Env {
	return Env{
		PostgresImage: getenv("CONVSVC_TEST_PG_IMAGE", "postgres:18.1-alpine"),
		RedisImage:    getenv("CONVSVC_TEST_REDIS_IMAGE", "redis:8.4.0-alpine"),
		ExternalDSN:   os.Getenv("CONVSVC_TEST_PG_DSN"),
		ExternalRedis: os.Getenv("CONVSVC_TEST_REDIS_ADDR"),
		StartTimeout:  getenvDuration("CONVSVC_TEST_START_TIMEOUT", 90*time.Second),
		KeepAlive:     getenvBool("CONVSVC_TEST_KEEP_CONTAINERS"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}

func getenvBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}
