package repositories

import (
	"errors"
	"fmt"
	"time"

	"transfers-api/internal/models"

	"gorm.io/gorm"
)

var ErrTransferNotFound = errors.New("transfer not found")

// transferRepository implements TransferRepositoryInterface
type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a new transfer repository
func NewTransferRepository(db *gorm.DB) TransferRepositoryInterface {
	return &transferRepository{
		db: db,
	}
}

// WithTx returns a copy of the repository bound to tx
func (r *transferRepository) WithTx(tx *gorm.DB) TransferRepositoryInterface {
	return &transferRepository{db: tx}
}

// Create creates a new transfer
func (r *transferRepository) Create(transfer *models.Transfer) error {
	if transfer == nil {
		return errors.New("transfer cannot be nil")
	}

	if err := r.db.Create(transfer).Error; err != nil {
		return fmt.Errorf("failed to create transfer: %w", err)
	}

	return nil
}

// Update updates an existing transfer
func (r *transferRepository) Update(transfer *models.Transfer) error {
	if transfer == nil {
		return errors.New("transfer cannot be nil")
	}

	if err := r.db.Omit("Company").Save(transfer).Error; err != nil {
		return fmt.Errorf("failed to update transfer: %w", err)
	}

	return nil
}

// GetByRef retrieves a transfer by numeric ID or UUID
func (r *transferRepository) GetByRef(ref EntityRef) (*models.Transfer, error) {
	var transfer models.Transfer

	query := r.db.Preload("Company")
	if ref.IsNumeric() {
		query = query.Where("transfers.id = ?", ref.ID)
	} else {
		query = query.Where("transfers.uuid = ?", ref.UUID)
	}

	if err := query.First(&transfer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to find transfer: %w", err)
	}

	return &transfer, nil
}

// GetByCompanyID retrieves transfers belonging to a company
func (r *transferRepository) GetByCompanyID(companyID uint, offset, limit int) ([]models.Transfer, int64, error) {
	var transfers []models.Transfer
	var total int64

	query := r.db.Model(&models.Transfer{}).Where("company_id = ?", companyID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transfers: %w", err)
	}

	if err := query.Order("transfer_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&transfers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find transfers by company: %w", err)
	}

	return transfers, total, nil
}

// GetAll retrieves transfers with filtering and pagination
func (r *transferRepository) GetAll(filters models.TransferFilters, offset, limit int) ([]models.Transfer, int64, error) {
	var transfers []models.Transfer
	var total int64

	query := r.db.Model(&models.Transfer{})

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	if filters.CompanyID != nil {
		query = query.Where("company_id = ?", *filters.CompanyID)
	}

	if filters.MinAmount != nil {
		query = query.Where("amount >= ?", *filters.MinAmount)
	}

	if filters.MaxAmount != nil {
		query = query.Where("amount <= ?", *filters.MaxAmount)
	}

	if filters.StartDate != nil {
		query = query.Where("transfer_date >= ?", *filters.StartDate)
	}

	if filters.EndDate != nil {
		query = query.Where("transfer_date < ?", *filters.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transfers: %w", err)
	}

	if err := query.Order("transfer_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&transfers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find transfers: %w", err)
	}

	return transfers, total, nil
}

// UpdateStatus sets a transfer's status and processed date and returns the
// updated record
func (r *transferRepository) UpdateStatus(ref EntityRef, status string, processedDate *time.Time) (*models.Transfer, error) {
	transfer, err := r.GetByRef(ref)
	if err != nil {
		return nil, err
	}

	transfer.Status = status
	if processedDate != nil {
		transfer.ProcessedDate = processedDate
	}

	if err := r.db.Omit("Company").Save(transfer).Error; err != nil {
		return nil, fmt.Errorf("failed to update transfer status: %w", err)
	}

	return transfer, nil
}

// DistinctCompanyIDsWithCompletedBetween returns the IDs of companies that
// have at least one completed transfer dated in [start, end)
func (r *transferRepository) DistinctCompanyIDsWithCompletedBetween(start, end time.Time) ([]uint, error) {
	var companyIDs []uint

	if err := r.db.Model(&models.Transfer{}).
		Where("status = ?", models.TransferStatusCompleted).
		Where("transfer_date >= ? AND transfer_date < ?", start, end).
		Distinct("company_id").
		Pluck("company_id", &companyIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to find companies with completed transfers: %w", err)
	}

	return companyIDs, nil
}
