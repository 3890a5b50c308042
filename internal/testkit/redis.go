package testkit

import (
	"context"
	"fmt"
	"net/url"

	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// Redis is a running Redis instance for the test suite, either a
// testcontainer or an externally provided server.
type Redis struct {
	container testcontainers.Container
	addr      string
}

// Addr returns the host:port of the instance. Clients in this project
// take plain addresses, not redis:// URLs.
func (r *Redis) Addr() string { return r.addr }

// Stop terminates the container. It is a no-op for external servers.
func (r *Redis) Stop(ctx context.Context) error {
	if r.container == nil {
		return nil
	}
	return r.container.Terminate(ctx)
}

// StartRedis starts a Redis container, or wraps the external address
// when one is configured in the environment.
func StartRedis(ctx context.Context, env Env) (*Redis, error) {
	if env.ExternalRedis != "" {
		return &Redis{addr: env.ExternalRedis}, nil
	}

	ctr, err := tcredis.Run(ctx, env.RedisImage)
	if err != nil {
		return nil, fmt.Errorf("start redis container: %w", err)
	}

	connStr, err := ctr.ConnectionString(ctx)
	if err != nil {
		_ = ctr.Terminate(ctx)
		return nil, fmt.Errorf("redis connection string: %w", err)
	}

	u, err := url.Parse(connStr)
	if err != nil {
		_ = ctr.Terminate(ctx)
		return nil, fmt.Errorf("parse redis connection string %q: %w", connStr, err)
	}

	return &Redis{container: ctr, addr: u.Host}, nil
}
