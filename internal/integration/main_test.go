//go:build integration

package integration

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"convsvc/internal/repository"
	"convsvc/internal/testkit"
)

func TestMain(m *testing.M) {
	testkit.Run(m, func() error {
		var err error
		testDB, err = sql.Open("pgx", testkit.Shared().PostgresDSN())
		if err != nil {
			return err
		}
		if err := testDB.Ping(); err != nil {
			return err
		}
		if err := repository.RunMigrations(testDB, zap.NewNop().Sugar()); err != nil {
			return err
		}

		testRDB = redis.NewClient(&redis.Options{
			Addr: testkit.Shared().RedisAddr(),
		})
		return testRDB.Ping(context.Background()).Err()
	})
}
