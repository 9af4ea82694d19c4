package services

import (
	"time"

	"transfers-api/internal/dto"
	"transfers-api/internal/models"
	"transfers-api/internal/repositories"
)

// CompanyServiceInterface defines company-related business operations
type CompanyServiceInterface interface {
	CreateCompany(req *dto.CreateCompanyRequest) (*models.Company, error)
	GetCompanies(filters models.CompanyFilters, page, limit int) ([]models.Company, int64, error)
	GetCompanyByRef(ref repositories.EntityRef) (*models.Company, error)
	DeleteCompany(ref repositories.EntityRef) error
	GetCompaniesAdheringLastMonth(now time.Time, page, limit int) ([]models.Company, int64, error)
}

// TransferServiceInterface defines transfer-related business operations
type TransferServiceInterface interface {
	CreateTransfer(req *dto.CreateTransferRequest) (*models.Transfer, error)
	GetTransfers(filters models.TransferFilters, page, limit int) ([]models.Transfer, int64, error)
	GetTransferByRef(ref repositories.EntityRef) (*models.Transfer, error)
	GetTransfersByCompany(companyRef repositories.EntityRef, page, limit int) ([]models.Transfer, int64, error)
	UpdateTransferStatus(ref repositories.EntityRef, status string) (*models.Transfer, error)
	GetCompaniesWithTransfersLastMonth(now time.Time) ([]models.Company, error)
}

// MetricsRecorderInterface abstracts metrics recording for services
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
