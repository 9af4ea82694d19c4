package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"transfers-api/internal/dto"
	"transfers-api/internal/models"
	"transfers-api/internal/repositories"

	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound   = errors.New("company not found")
	ErrCompanyCuitExists = errors.New("company with cuit already registered")
	ErrInvalidCuit       = errors.New("cuit is invalid")

	// ErrNoReportResults marks an empty reporting window. Reports treat an
	// empty result set as a domain-level not found, unlike plain listings.
	ErrNoReportResults = errors.New("no results for reporting period")
)

// companyService implements CompanyServiceInterface
type companyService struct {
	db          *gorm.DB
	companyRepo repositories.CompanyRepositoryInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewCompanyService creates a company service
func NewCompanyService(
	db *gorm.DB,
	companyRepo repositories.CompanyRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) CompanyServiceInterface {
	return &companyService{
		db:          db,
		companyRepo: companyRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// CreateCompany registers a new company after validating its CUIT and
// checking for duplicates. The whole workflow runs in a single transaction.
func (s *companyService) CreateCompany(req *dto.CreateCompanyRequest) (*models.Company, error) {
	start := time.Now()

	if !models.IsValidCuit(req.Cuit) {
		s.metrics.IncrementCounter("company_created_failed", map[string]string{"reason": "invalid_cuit"})
		return nil, ErrInvalidCuit
	}

	company := &models.Company{
		Cuit:         models.FormatCuit(models.NormalizeCuit(req.Cuit)),
		BusinessName: models.SanitizeBusinessName(req.BusinessName),
		Address:      req.Address,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		IsActive:     true,
	}
	if req.AdhesionDate != nil {
		company.AdhesionDate = *req.AdhesionDate
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.companyRepo.WithTx(tx)

		exists, err := repo.ExistsByCuit(company.Cuit)
		if err != nil {
			return fmt.Errorf("failed to check existing company: %w", err)
		}
		if exists {
			return ErrCompanyCuitExists
		}

		// The unique index remains the authoritative guard against
		// concurrent registrations
		if err := repo.Create(company); err != nil {
			if errors.Is(err, repositories.ErrCompanyCuitExists) {
				return ErrCompanyCuitExists
			}
			return err
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrCompanyCuitExists) {
			s.logger.Error("failed to create company", "error", err, "cuit", company.Cuit)
		}
		return nil, err
	}

	s.metrics.IncrementCounter("company_created", nil)
	s.metrics.RecordProcessingTime("company_create", time.Since(start))
	s.logger.Info("company created", "company_id", company.ID, "cuit", company.Cuit)

	return company, nil
}

// GetCompanies retrieves companies with pagination
func (s *companyService) GetCompanies(filters models.CompanyFilters, page, limit int) ([]models.Company, int64, error) {
	offset := (page - 1) * limit

	companies, total, err := s.companyRepo.GetAll(filters, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}

	return companies, total, nil
}

// GetCompanyByRef retrieves a company by numeric ID or UUID
func (s *companyService) GetCompanyByRef(ref repositories.EntityRef) (*models.Company, error) {
	company, err := s.companyRepo.GetByRef(ref)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return company, nil
}

// DeleteCompany soft deletes a company
func (s *companyService) DeleteCompany(ref repositories.EntityRef) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.companyRepo.WithTx(tx).SoftDelete(ref)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return ErrCompanyNotFound
		}
		return fmt.Errorf("failed to delete company: %w", err)
	}

	s.metrics.IncrementCounter("company_deleted", nil)
	s.logger.Info("company deleted", "ref", ref.String())

	return nil
}

// GetCompaniesAdheringLastMonth reports companies whose adhesion date falls
// in the previous calendar month relative to now
func (s *companyService) GetCompaniesAdheringLastMonth(now time.Time, page, limit int) ([]models.Company, int64, error) {
	start, end := models.PreviousMonthWindow(now)
	offset := (page - 1) * limit

	companies, total, err := s.companyRepo.GetAdheringBetween(start, end, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to report adhering companies: %w", err)
	}
	if total == 0 {
		return nil, 0, ErrNoReportResults
	}

	s.metrics.IncrementCounter("report_requested", map[string]string{"report": "companies_adhering"})

	return companies, total, nil
}
