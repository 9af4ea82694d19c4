package repositories

import (
	"time"

	"transfers-api/internal/models"

	"gorm.io/gorm"
)

// CompanyRepositoryInterface defines the contract for company repository operations
type CompanyRepositoryInterface interface {
	Create(company *models.Company) error
	Update(company *models.Company) error
	GetByRef(ref EntityRef) (*models.Company, error)
	GetByCuit(cuit string) (*models.Company, error)
	GetAll(filters models.CompanyFilters, offset, limit int) ([]models.Company, int64, error)
	GetAdheringBetween(start, end time.Time, offset, limit int) ([]models.Company, int64, error)
	GetByIDs(ids []uint) ([]models.Company, error)
	SoftDelete(ref EntityRef) error
	ExistsByCuit(cuit string) (bool, error)

	// WithTx returns a repository bound to the given transaction handle.
	WithTx(tx *gorm.DB) CompanyRepositoryInterface
}

// TransferRepositoryInterface defines the contract for transfer repository operations
type TransferRepositoryInterface interface {
	Create(transfer *models.Transfer) error
	Update(transfer *models.Transfer) error
	GetByRef(ref EntityRef) (*models.Transfer, error)
	GetByCompanyID(companyID uint, offset, limit int) ([]models.Transfer, int64, error)
	GetAll(filters models.TransferFilters, offset, limit int) ([]models.Transfer, int64, error)
	UpdateStatus(ref EntityRef, status string, processedDate *time.Time) (*models.Transfer, error)
	DistinctCompanyIDsWithCompletedBetween(start, end time.Time) ([]uint, error)

	// WithTx returns a repository bound to the given transaction handle.
	WithTx(tx *gorm.DB) TransferRepositoryInterface
}
