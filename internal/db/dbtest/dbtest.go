// Package dbtest connects repository integration tests to a migrated postgres.
package dbtest

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymlog/internal/db"
	"github.com/2beens/gymlog/internal/db/migrations"
)

const seededMuscleGroupPrefix = "6f1c2a52-0b8e-4c1e-9a53-1f0d2c7a"

// Shared catalog ids seeded by the migrations.
var (
	MuscleGroupChest = uuid.MustParse(seededMuscleGroupPrefix + "0001")
	MuscleGroupLegs  = uuid.MustParse(seededMuscleGroupPrefix + "0003")
	BenchPress       = uuid.MustParse("0e7d4b1a-5c3f-4d2e-8b61-3a9f5e2d0001")
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// NewPool connects to POSTGRES_HOST (default localhost), migrates the schema
// and removes everything but the shared catalog.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := envOr("POSTGRES_HOST", "localhost")
	t.Logf("using postgres host: %s", host)

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     host,
		DBPort:     envOr("POSTGRES_PORT", "5432"),
		DBUser:     envOr("POSTGRES_USER", "postgres"),
		DBPassword: os.Getenv("POSTGRES_PASSWORD"),
		DBName:     envOr("POSTGRES_DB", "gymlog"),
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, migrations.MigrateUp(pool))
	require.NoError(t, Reset(ctx, pool))

	return pool
}

// Reset deletes all users (their data cascades) and non-seeded muscle groups.
func Reset(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `DELETE FROM app_user`); err != nil {
		return err
	}
	_, err := pool.Exec(ctx, `
		DELETE FROM muscle_group mg
		WHERE mg.id::text NOT LIKE $1 || '%'
		  AND NOT EXISTS (SELECT 1 FROM exercise e WHERE e.muscle_group_id = mg.id)
	`, seededMuscleGroupPrefix)
	return err
}

// AddUser inserts a user row so owned rows have a valid reference.
func AddUser(t *testing.T, pool *pgxpool.Pool, username string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO app_user (id, username, password_hash) VALUES ($1, $2, 'x')
	`, id, username)
	require.NoError(t, err)
	return id
}
