package database

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMigrator(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := NewMigrator(db, slog.Default())

	assert.NotNil(t, m)
	assert.Equal(t, db, m.db)
	assert.Equal(t, migrationsPath, m.migrationsPath)
	assert.Equal(t, seedsPath, m.seedsPath)
}

func TestWaitForDatabase_Success(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(nil)

	m := NewMigrator(db, slog.Default())
	err = m.WaitForDatabase()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	// First ping fails, second succeeds
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	m := NewMigrator(db, slog.Default())

	// Override retry settings for faster test
	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = 2
	retryInterval = 100 * time.Millisecond
	defer func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	}()

	err = m.WaitForDatabase()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	// Override retry settings for faster test
	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = 2
	retryInterval = 100 * time.Millisecond
	defer func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	}()

	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	m := NewMigrator(db, slog.Default())
	err = m.WaitForDatabase()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after")
}

func TestApplyMigrations_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := &Migrator{
		db:             db,
		logger:         slog.Default(),
		migrationsPath: "/nonexistent/path/to/migrations",
		seedsPath:      seedsPath,
	}

	err = m.ApplyMigrations()

	// A missing directory is a no-op, not a failure
	assert.NoError(t, err)
}

func TestSeedSampleData_DisabledByEnvironment(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("SEED_DATABASE", "false")

	m := NewMigrator(db, slog.Default())
	err = m.SeedSampleData()

	assert.NoError(t, err)
}

func TestSeedSampleData_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("SEED_DATABASE", "true")

	m := &Migrator{
		db:             db,
		logger:         slog.Default(),
		migrationsPath: migrationsPath,
		seedsPath:      "/nonexistent/seeds/path",
	}

	err = m.SeedSampleData()

	assert.NoError(t, err)
}

func TestSeedSampleData_SkipsWhenDataExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir := t.TempDir()
	seedFile := filepath.Join(tempDir, "000001_companies.sql")
	require.NoError(t, os.WriteFile(seedFile, []byte("INSERT INTO companies VALUES (1);"), 0644))

	t.Setenv("SEED_DATABASE", "true")

	// A populated table means no seed file may run
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	m := &Migrator{
		db:             db,
		logger:         slog.Default(),
		migrationsPath: migrationsPath,
		seedsPath:      tempDir,
	}

	err = m.SeedSampleData()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedSampleData_NoSeedFiles(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir := t.TempDir()
	t.Setenv("SEED_DATABASE", "true")

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	m := &Migrator{
		db:             db,
		logger:         slog.Default(),
		migrationsPath: migrationsPath,
		seedsPath:      tempDir,
	}

	err = m.SeedSampleData()

	assert.NoError(t, err)
}

func TestSeedSampleData_SuccessfulExecution(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir := t.TempDir()

	seedContent := `
INSERT INTO companies (cuit, business_name, is_active)
VALUES ('30-71659554-0', 'Empresa Ejemplo SA', true)
ON CONFLICT (cuit) DO NOTHING;
`
	seedFile := filepath.Join(tempDir, "000001_companies.sql")
	require.NoError(t, os.WriteFile(seedFile, []byte(seedContent), 0644))

	t.Setenv("SEED_DATABASE", "true")

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO companies").WillReturnResult(sqlmock.NewResult(0, 1))

	m := &Migrator{
		db:             db,
		logger:         slog.Default(),
		migrationsPath: migrationsPath,
		seedsPath:      tempDir,
	}

	err = m.SeedSampleData()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedSampleData_ExecutionFailureIsContinued(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir := t.TempDir()

	seed1 := filepath.Join(tempDir, "000001_bad_data.sql")
	require.NoError(t, os.WriteFile(seed1, []byte("INSERT INTO nonexistent_table VALUES (1);"), 0644))

	seed2 := filepath.Join(tempDir, "000002_good_data.sql")
	require.NoError(t, os.WriteFile(seed2, []byte("INSERT INTO companies VALUES ('test');"), 0644))

	t.Setenv("SEED_DATABASE", "true")

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	// First file fails, the second must still run
	mock.ExpectExec("INSERT INTO nonexistent_table").WillReturnError(errors.New("table does not exist"))
	mock.ExpectExec("INSERT INTO companies").WillReturnResult(sqlmock.NewResult(0, 1))

	m := &Migrator{
		db:             db,
		logger:         slog.Default(),
		migrationsPath: migrationsPath,
		seedsPath:      tempDir,
	}

	err = m.SeedSampleData()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedSampleData_ReadFileError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tempDir := t.TempDir()

	// A directory with a .sql suffix triggers a read error
	seedDir := filepath.Join(tempDir, "000001_invalid.sql")
	require.NoError(t, os.Mkdir(seedDir, 0755))

	t.Setenv("SEED_DATABASE", "true")

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	m := &Migrator{
		db:             db,
		logger:         slog.Default(),
		migrationsPath: migrationsPath,
		seedsPath:      tempDir,
	}

	err = m.SeedSampleData()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read seed file")
}

func TestRunMigrationsIfEnabled_Disabled(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("AUTO_MIGRATE", "false")

	err = RunMigrationsIfEnabled(db, slog.Default())

	assert.NoError(t, err)
}

func TestRunMigrationsIfEnabled_Enabled_DatabaseNotReady(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("AUTO_MIGRATE", "true")

	// Override retry settings for faster test
	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = 2
	retryInterval = 100 * time.Millisecond
	defer func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	}()

	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	err = RunMigrationsIfEnabled(db, slog.Default())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database readiness check failed")
}

func TestStatus_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := &Migrator{
		db:             db,
		logger:         slog.Default(),
		migrationsPath: "/nonexistent/migrations",
		seedsPath:      seedsPath,
	}

	_, _, err = m.Status()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations directory not found")
}
