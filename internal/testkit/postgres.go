package testkit

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver registration
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Postgres is a running Postgres instance for the test suite, either a
// testcontainer or an externally provided database.
type Postgres struct {
	container testcontainers.Container
	dsn       string
}

func (p *Postgres) DSN() string { return p.dsn }

// Stop terminates the container. It is a no-op for external databases.
func (p *Postgres) Stop(ctx context.Context) error {
	if p.container == nil {
		return nil
	}
	return p.container.Terminate(ctx)
}

// StartPostgres starts a Postgres container, or wraps the external DSN
// when one is configured in the environment.
func StartPostgres(ctx context.Context, env Env) (*Postgres, error) {
	if env.ExternalDSN != "" {
		return &Postgres{dsn: env.ExternalDSN}, nil
	}

	ctr, err := postgres.Run(ctx,
		env.PostgresImage,
		postgres.WithDatabase(randomName("convsvc_test")),
		postgres.WithUsername("convsvc"),
		postgres.WithPassword("convsvc"),
		testcontainers.WithWaitStrategyAndDeadline(env.StartTimeout,
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = ctr.Terminate(ctx)
		return nil, fmt.Errorf("postgres connection string: %w", err)
	}

	return &Postgres{container: ctr, dsn: dsn}, nil
}

// randomName appends a random hex suffix so parallel suites never collide.
func randomName(prefix string) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return prefix
	}
	return prefix + "_" + hex.EncodeToString(b)
}
