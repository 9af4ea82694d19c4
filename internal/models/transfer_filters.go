package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferFilters defines filtering options for transfer list queries
type TransferFilters struct {
	Status    string
	CompanyID *uint
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	StartDate *time.Time
	EndDate   *time.Time
}

// CompanyFilters defines filtering options for company list queries
type CompanyFilters struct {
	IsActive *bool
	Cuit     string
}
