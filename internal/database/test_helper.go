package database

import (
	"fmt"
	"testing"

	"transfers-api/internal/config"
	"transfers-api/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestCompany(t *testing.T, db *DB, cuit string) *models.Company {
	t.Helper()

	company := &models.Company{
		Cuit:         cuit,
		BusinessName: "Test Company SA",
		IsActive:     true,
	}

	if err := db.Create(company).Error; err != nil {
		t.Fatalf("failed to create test company: %v", err)
	}

	return company
}

func CreateTestTransfer(t *testing.T, db *DB, companyID uint) *models.Transfer {
	t.Helper()

	transfer := &models.Transfer{
		Amount:        decimal.NewFromInt(1000),
		CompanyID:     companyID,
		DebitAccount:  "123456789012",
		CreditAccount: "987654321098",
		Status:        models.TransferStatusPending,
		Currency:      "ARS",
	}

	if err := db.Create(transfer).Error; err != nil {
		t.Fatalf("failed to create test transfer: %v", err)
	}

	return transfer
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transfers",
		"companies",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
