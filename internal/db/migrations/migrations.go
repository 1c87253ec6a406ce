package migrations

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	log "github.com/sirupsen/logrus"
)

//go:embed files/*.sql
var migrationFiles embed.FS

// MigrateUp applies all pending migrations to the database behind pool.
func MigrateUp(pool *pgxpool.Pool) error {
	m, err := newMigrate(pool)
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Debugln("db schema already up to date")
			return nil
		}
		return fmt.Errorf("migration failed: %w", err)
	}

	version, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("get version after migration: %w", err)
	}
	log.Infof("db schema migrated to version %d", version)
	return nil
}

// CheckStatus returns an error when the schema is dirty or not at the latest embedded version.
func CheckStatus(pool *pgxpool.Pool) error {
	m, err := newMigrate(pool)
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	version, dirty, err := m.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return errors.New("database has no schema version (needs migration)")
		}
		return fmt.Errorf("get database version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in dirty state at version %d", version)
	}

	latest, err := LatestVersion()
	if err != nil {
		return err
	}
	if version != latest {
		return fmt.Errorf("database is at version %d, binary expects %d", version, latest)
	}
	return nil
}

// LatestVersion returns the highest migration version embedded in the binary.
func LatestVersion() (uint, error) {
	src, err := iofs.New(migrationFiles, "files")
	if err != nil {
		return 0, fmt.Errorf("read migration files: %w", err)
	}
	defer src.Close()

	return latestVersion(src)
}

func latestVersion(src source.Driver) (uint, error) {
	version, err := src.First()
	if err != nil {
		return 0, fmt.Errorf("first migration: %w", err)
	}
	for {
		next, err := src.Next(version)
		if err != nil {
			// fs.ErrNotExist marks the end of the list
			return version, nil
		}
		version = next
	}
}

func newMigrate(pool *pgxpool.Pool) (*migrate.Migrate, error) {
	sourceDriver, err := iofs.New(migrationFiles, "files")
	if err != nil {
		return nil, fmt.Errorf("create source driver: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	dbDriver, err := migratepgx.WithInstance(sqlDB, &migratepgx.Config{})
	if err != nil {
		_ = sourceDriver.Close()
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create database driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "pgx5", dbDriver)
	if err != nil {
		_ = sourceDriver.Close()
		_ = dbDriver.Close()
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}
	return m, nil
}

func closeMigrate(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		log.Warnf("close migration source: %s", srcErr)
	}
	if dbErr != nil {
		log.Warnf("close migration db driver: %s", dbErr)
	}
}
