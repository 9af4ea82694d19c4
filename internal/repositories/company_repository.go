package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"transfers-api/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound   = errors.New("company not found")
	ErrCompanyCuitExists = errors.New("company with cuit already exists")
)

// companyRepository implements CompanyRepositoryInterface
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) CompanyRepositoryInterface {
	return &companyRepository{
		db: db,
	}
}

// WithTx returns a copy of the repository bound to tx
func (r *companyRepository) WithTx(tx *gorm.DB) CompanyRepositoryInterface {
	return &companyRepository{db: tx}
}

// Create creates a new company
func (r *companyRepository) Create(company *models.Company) error {
	if company == nil {
		return errors.New("company cannot be nil")
	}

	if err := r.db.Create(company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
			return ErrCompanyCuitExists
		}
		return fmt.Errorf("failed to create company: %w", err)
	}

	return nil
}

// Update updates an existing company
func (r *companyRepository) Update(company *models.Company) error {
	if company == nil {
		return errors.New("company cannot be nil")
	}

	if err := r.db.Save(company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
			return ErrCompanyCuitExists
		}
		return fmt.Errorf("failed to update company: %w", err)
	}

	return nil
}

// GetByRef retrieves a company by numeric ID or UUID
func (r *companyRepository) GetByRef(ref EntityRef) (*models.Company, error) {
	var company models.Company

	query := r.db
	if ref.IsNumeric() {
		query = query.Where("id = ?", ref.ID)
	} else {
		query = query.Where("uuid = ?", ref.UUID)
	}

	if err := query.First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	return &company, nil
}

// GetByCuit retrieves a company by its canonical CUIT
func (r *companyRepository) GetByCuit(cuit string) (*models.Company, error) {
	var company models.Company

	if err := r.db.Where("cuit = ?", models.FormatCuit(models.NormalizeCuit(cuit))).
		First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to find company by cuit: %w", err)
	}

	return &company, nil
}

// GetAll retrieves companies with filtering and pagination
func (r *companyRepository) GetAll(filters models.CompanyFilters, offset, limit int) ([]models.Company, int64, error) {
	var companies []models.Company
	var total int64

	query := r.db.Model(&models.Company{})

	if filters.IsActive != nil {
		query = query.Where("is_active = ?", *filters.IsActive)
	}

	if filters.Cuit != "" {
		query = query.Where("cuit = ?", models.FormatCuit(models.NormalizeCuit(filters.Cuit)))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}

	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&companies).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find companies: %w", err)
	}

	return companies, total, nil
}

// GetAdheringBetween retrieves companies whose adhesion date falls in
// [start, end)
func (r *companyRepository) GetAdheringBetween(start, end time.Time, offset, limit int) ([]models.Company, int64, error) {
	var companies []models.Company
	var total int64

	query := r.db.Model(&models.Company{}).
		Where("adhesion_date >= ? AND adhesion_date < ?", start, end)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count adhering companies: %w", err)
	}

	if err := query.Order("adhesion_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&companies).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find adhering companies: %w", err)
	}

	return companies, total, nil
}

// GetByIDs retrieves companies by their numeric IDs
func (r *companyRepository) GetByIDs(ids []uint) ([]models.Company, error) {
	var companies []models.Company

	if len(ids) == 0 {
		return companies, nil
	}

	if err := r.db.Where("id IN ?", ids).
		Order("id ASC").
		Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("failed to find companies by ids: %w", err)
	}

	return companies, nil
}

// SoftDelete marks a company as deleted without removing the row
func (r *companyRepository) SoftDelete(ref EntityRef) error {
	company, err := r.GetByRef(ref)
	if err != nil {
		return err
	}

	if err := r.db.Delete(company).Error; err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	return nil
}

// ExistsByCuit checks whether a company with the given CUIT exists
func (r *companyRepository) ExistsByCuit(cuit string) (bool, error) {
	var count int64

	if err := r.db.Model(&models.Company{}).
		Where("cuit = ?", models.FormatCuit(models.NormalizeCuit(cuit))).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check cuit existence: %w", err)
	}

	return count > 0, nil
}

// isDuplicateKeyError detects unique constraint violations across drivers
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	// Postgres duplicate key error detection
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
