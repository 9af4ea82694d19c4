package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	migrationsPath = "db/migrations"
	seedsPath      = "db/seeds"
)

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// Migrator applies schema migrations and optional sample data
type Migrator struct {
	db             *sql.DB
	logger         *slog.Logger
	migrationsPath string
	seedsPath      string
}

// NewMigrator creates a migrator over the given connection
func NewMigrator(db *sql.DB, logger *slog.Logger) *Migrator {
	return &Migrator{
		db:             db,
		logger:         logger,
		migrationsPath: migrationsPath,
		seedsPath:      seedsPath,
	}
}

// WaitForDatabase pings until the database accepts connections or the
// retry budget runs out
func (m *Migrator) WaitForDatabase() error {
	for i := 0; i < maxRetries; i++ {
		err := m.db.Ping()
		if err == nil {
			m.logger.Info("database is ready")
			return nil
		}

		m.logger.Warn("database not ready",
			"attempt", i+1, "max_attempts", maxRetries, "error", err)
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

// ApplyMigrations runs all pending schema migrations
func (m *Migrator) ApplyMigrations() error {
	if _, err := os.Stat(m.migrationsPath); os.IsNotExist(err) {
		m.logger.Warn("migrations directory not found, skipping", "path", m.migrationsPath)
		return nil
	}

	mg, err := m.newMigrateInstance()
	if err != nil {
		return err
	}

	version, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	if dirty {
		// A dirty version blocks Up(); force it clean and retry from there
		m.logger.Warn("database schema is dirty, forcing version", "version", version)
		if err := mg.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version %d: %w", version, err)
		}
	}

	switch err := mg.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		m.logger.Info("schema up to date", "version", version)
	case err != nil:
		return fmt.Errorf("migration failed: %w", err)
	default:
		newVersion, _, err := mg.Version()
		if err != nil {
			return fmt.Errorf("failed to read migration version: %w", err)
		}
		m.logger.Info("migrations applied", "version", newVersion)
	}

	return nil
}

// SeedSampleData loads the db/seeds SQL files when SEED_DATABASE=true.
// A database that already holds companies is left untouched, so restarts
// with seeding enabled stay idempotent.
func (m *Migrator) SeedSampleData() error {
	if os.Getenv("SEED_DATABASE") != "true" {
		m.logger.Info("sample data seeding disabled")
		return nil
	}

	if _, err := os.Stat(m.seedsPath); os.IsNotExist(err) {
		m.logger.Warn("seeds directory not found, skipping", "path", m.seedsPath)
		return nil
	}

	var companies int
	if err := m.db.QueryRow("SELECT COUNT(*) FROM companies").Scan(&companies); err != nil {
		return fmt.Errorf("failed to check for existing data: %w", err)
	}
	if companies > 0 {
		m.logger.Info("database already contains data, skipping seed", "companies", companies)
		return nil
	}

	files, err := filepath.Glob(filepath.Join(m.seedsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to list seed files: %w", err)
	}
	if len(files) == 0 {
		m.logger.Info("no seed files found", "path", m.seedsPath)
		return nil
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", file, err)
		}

		if _, err := m.db.Exec(string(content)); err != nil {
			m.logger.Warn("seed file failed, continuing",
				"file", filepath.Base(file), "error", err)
			continue
		}

		m.logger.Info("seed file applied", "file", filepath.Base(file))
	}

	return nil
}

// Status reports the current schema version
func (m *Migrator) Status() (version uint, dirty bool, err error) {
	if _, err := os.Stat(m.migrationsPath); os.IsNotExist(err) {
		return 0, false, fmt.Errorf("migrations directory not found")
	}

	mg, err := m.newMigrateInstance()
	if err != nil {
		return 0, false, err
	}

	return mg.Version()
}

func (m *Migrator) newMigrateInstance() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(m.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migrations path: %w", err)
	}

	driver, err := postgres.WithInstance(m.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	mg, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", absPath),
		"postgres",
		driver,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	return mg, nil
}

// RunMigrationsIfEnabled migrates and seeds the database when
// AUTO_MIGRATE=true
func RunMigrationsIfEnabled(db *sql.DB, logger *slog.Logger) error {
	if os.Getenv("AUTO_MIGRATE") != "true" {
		logger.Info("auto-migration disabled")
		return nil
	}

	m := NewMigrator(db, logger)

	if err := m.WaitForDatabase(); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := m.ApplyMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	if err := m.SeedSampleData(); err != nil {
		logger.Warn("sample data seeding failed", "error", err)
	}

	version, dirty, err := m.Status()
	if err != nil {
		logger.Warn("failed to read migration status", "error", err)
	} else {
		logger.Info("migration status", "version", version, "dirty", dirty)
	}

	return nil
}
