package testkit

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
)

// Suite owns the lifecycle of the shared test infrastructure. One Suite
// backs an entire `go test -tags integration` run via TestMain.
type Suite struct {
	mu       sync.Mutex
	env      Env
	postgres *Postgres
	redis    *Redis
	started  bool
}

var (
	sharedSuite *Suite
	sharedOnce  sync.Once
)

// Shared returns the process-wide Suite.
func Shared() *Suite {
	sharedOnce.Do(func() {
		sharedSuite = &Suite{env: ReadEnv()}
	})
	return sharedSuite
}

func (s *Suite) start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return fmt.Errorf("suite already started")
	}

	pg, err := StartPostgres(ctx, s.env)
	if err != nil {
		return fmt.Errorf("start postgres: %w", err)
	}
	s.postgres = pg

	rdb, err := StartRedis(ctx, s.env)
	if err != nil {
		if !s.env.KeepAlive {
			_ = pg.Stop(ctx)
		}
		return fmt.Errorf("start redis: %w", err)
	}
	s.redis = rdb
	s.started = true
	return nil
}

func (s *Suite) stop(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false

	if s.env.KeepAlive {
		fmt.Println("CONVSVC_TEST_KEEP_CONTAINERS is set, leaving containers running")
		fmt.Println("  Postgres DSN:", s.postgres.DSN())
		fmt.Println("  Redis addr:  ", s.redis.Addr())
		return
	}

	if err := s.redis.Stop(ctx); err != nil {
		fmt.Println("warning: stop redis container:", err)
	}
	if err := s.postgres.Stop(ctx); err != nil {
		fmt.Println("warning: stop postgres container:", err)
	}
}

// PostgresDSN returns the connection string for the suite database.
func (s *Suite) PostgresDSN() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.postgres == nil {
		return ""
	}
	return s.postgres.DSN()
}

// RedisAddr returns the host:port of the suite Redis instance.
func (s *Suite) RedisAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.redis == nil {
		return ""
	}
	return s.redis.Addr()
}

// Run starts the infrastructure, invokes bootstrap callbacks (migrations,
// client setup), runs the tests and tears everything down. Call it from
// TestMain of an integration test package.
func Run(m *testing.M, bootstrap ...func() error) {
	s := Shared()
	ctx := context.Background()

	if err := s.start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "integration suite start failed: %v\n", err)
		os.Exit(1)
	}

	for _, fn := range bootstrap {
		if err := fn(); err != nil {
			fmt.Fprintf(os.Stderr, "integration suite bootstrap failed: %v\n", err)
			s.stop(ctx)
			os.Exit(1)
		}
	}

	code := m.Run()
	s.stop(ctx)
	os.Exit(code)
}
