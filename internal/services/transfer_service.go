package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"transfers-api/internal/dto"
	"transfers-api/internal/models"
	"transfers-api/internal/repositories"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransferNotFound     = errors.New("transfer not found")
	ErrInvalidAmount        = errors.New("transfer amount must be greater than zero")
	ErrAmountTooLarge       = errors.New("transfer amount exceeds maximum allowed")
	ErrSameAccount          = errors.New("debit and credit accounts cannot be the same")
	ErrInvalidAccountNumber = errors.New("account number must be numeric and between 5-12 digits")
	ErrInvalidStatus        = errors.New("invalid transfer status")
)

// transferService implements TransferServiceInterface
type transferService struct {
	db           *gorm.DB
	transferRepo repositories.TransferRepositoryInterface
	companyRepo  repositories.CompanyRepositoryInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewTransferService creates a transfer service
func NewTransferService(
	db *gorm.DB,
	transferRepo repositories.TransferRepositoryInterface,
	companyRepo repositories.CompanyRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransferServiceInterface {
	return &transferService{
		db:           db,
		transferRepo: transferRepo,
		companyRepo:  companyRepo,
		metrics:      metrics,
		logger:       logger,
	}
}

// sanitizeAmount coerces a raw amount into an absolute value rounded to two
// decimal places
func sanitizeAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Abs().Round(2)
}

// CreateTransfer registers a transfer for an existing company. The company
// lookup and the insert run in a single transaction.
func (s *transferService) CreateTransfer(req *dto.CreateTransferRequest) (*models.Transfer, error) {
	start := time.Now()

	amount := sanitizeAmount(req.Amount)
	if amount.LessThanOrEqual(decimal.Zero) {
		s.metrics.IncrementCounter("transfer_created_failed", map[string]string{"reason": "invalid_amount"})
		return nil, ErrInvalidAmount
	}
	if amount.GreaterThan(models.MaxTransferAmount) {
		s.metrics.IncrementCounter("transfer_created_failed", map[string]string{"reason": "amount_too_large"})
		return nil, ErrAmountTooLarge
	}

	debitAccount := models.SanitizeAccountNumber(req.DebitAccount)
	creditAccount := models.SanitizeAccountNumber(req.CreditAccount)
	if !models.IsValidAccountNumber(debitAccount) || !models.IsValidAccountNumber(creditAccount) {
		return nil, ErrInvalidAccountNumber
	}
	if debitAccount == creditAccount {
		return nil, ErrSameAccount
	}

	companyRef, err := repositories.ParseEntityRef(req.CompanyID)
	if err != nil {
		return nil, ErrCompanyNotFound
	}

	transfer := &models.Transfer{
		Amount:        amount,
		DebitAccount:  debitAccount,
		CreditAccount: creditAccount,
		Status:        req.Status,
		Description:   req.Description,
		ReferenceID:   req.ReferenceID,
		Currency:      req.Currency,
	}
	if req.TransferDate != nil {
		transfer.TransferDate = *req.TransferDate
	}

	var company *models.Company
	err = s.db.Transaction(func(tx *gorm.DB) error {
		company, err = s.companyRepo.WithTx(tx).GetByRef(companyRef)
		if err != nil {
			if errors.Is(err, repositories.ErrCompanyNotFound) {
				return ErrCompanyNotFound
			}
			return fmt.Errorf("failed to verify company: %w", err)
		}

		transfer.CompanyID = company.ID

		return s.transferRepo.WithTx(tx).Create(transfer)
	})
	if err != nil {
		if !errors.Is(err, ErrCompanyNotFound) {
			s.logger.Error("failed to create transfer", "error", err, "company_ref", companyRef.String())
		}
		return nil, err
	}
	transfer.Company = *company

	s.metrics.IncrementCounter("transfer_created", map[string]string{"status": transfer.Status})
	s.metrics.RecordGauge("transfer_amount", transfer.Amount.InexactFloat64(), nil)
	s.metrics.RecordProcessingTime("transfer_create", time.Since(start))
	s.logger.Info("transfer created",
		"transfer_id", transfer.ID,
		"company_id", transfer.CompanyID,
		"amount", transfer.Amount.String(),
		"status", transfer.Status)

	return transfer, nil
}

// GetTransfers retrieves transfers with pagination
func (s *transferService) GetTransfers(filters models.TransferFilters, page, limit int) ([]models.Transfer, int64, error) {
	offset := (page - 1) * limit

	transfers, total, err := s.transferRepo.GetAll(filters, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transfers: %w", err)
	}

	return transfers, total, nil
}

// GetTransferByRef retrieves a transfer by numeric ID or UUID
func (s *transferService) GetTransferByRef(ref repositories.EntityRef) (*models.Transfer, error) {
	transfer, err := s.transferRepo.GetByRef(ref)
	if err != nil {
		if errors.Is(err, repositories.ErrTransferNotFound) {
			return nil, ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}

	return transfer, nil
}

// GetTransfersByCompany retrieves the transfers of one company
func (s *transferService) GetTransfersByCompany(companyRef repositories.EntityRef, page, limit int) ([]models.Transfer, int64, error) {
	company, err := s.companyRepo.GetByRef(companyRef)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, 0, ErrCompanyNotFound
		}
		return nil, 0, fmt.Errorf("failed to verify company: %w", err)
	}

	offset := (page - 1) * limit
	transfers, total, err := s.transferRepo.GetByCompanyID(company.ID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list company transfers: %w", err)
	}

	return transfers, total, nil
}

// UpdateTransferStatus moves a transfer to a new status, stamping the
// processed date when the transfer reaches a processed state
func (s *transferService) UpdateTransferStatus(ref repositories.EntityRef, status string) (*models.Transfer, error) {
	if !models.IsValidTransferStatus(status) {
		return nil, ErrInvalidStatus
	}

	var transfer *models.Transfer
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.transferRepo.WithTx(tx)

		current, err := repo.GetByRef(ref)
		if err != nil {
			if errors.Is(err, repositories.ErrTransferNotFound) {
				return ErrTransferNotFound
			}
			return err
		}

		if !current.CanTransitionTo(status) {
			s.logger.Warn("transfer status transition outside nominal lifecycle",
				"transfer_id", current.ID,
				"from", current.Status,
				"to", status)
		}

		var processedDate *time.Time
		if (status == models.TransferStatusCompleted || status == models.TransferStatusFailed) &&
			current.ProcessedDate == nil {
			now := time.Now()
			processedDate = &now
		}

		transfer, err = repo.UpdateStatus(ref, status, processedDate)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrTransferNotFound) {
			s.logger.Error("failed to update transfer status", "error", err, "ref", ref.String())
		}
		return nil, err
	}

	s.metrics.IncrementCounter("transfer_status_updated", map[string]string{"status": status})
	s.logger.Info("transfer status updated", "transfer_id", transfer.ID, "status", status)

	return transfer, nil
}

// GetCompaniesWithTransfersLastMonth reports companies that completed at
// least one transfer during the previous calendar month relative to now
func (s *transferService) GetCompaniesWithTransfersLastMonth(now time.Time) ([]models.Company, error) {
	start, end := models.PreviousMonthWindow(now)

	companyIDs, err := s.transferRepo.DistinctCompanyIDsWithCompletedBetween(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to collect companies with transfers: %w", err)
	}

	companies, err := s.companyRepo.GetByIDs(companyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load companies: %w", err)
	}
	if len(companies) < len(companyIDs) {
		// Soft-deleted companies can still own completed transfers; the
		// report drops them instead of failing outright.
		s.logger.Warn("report skipped unresolved companies",
			"expected", len(companyIDs), "resolved", len(companies))
	}
	if len(companies) == 0 {
		return nil, ErrNoReportResults
	}

	s.metrics.IncrementCounter("report_requested", map[string]string{"report": "companies_with_transfers"})

	return companies, nil
}
