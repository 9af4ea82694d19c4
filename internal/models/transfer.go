package models

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransferStatusPending   = "pending"
	TransferStatusCompleted = "completed"
	TransferStatusFailed    = "failed"
	TransferStatusReversed  = "reversed"

	// DefaultCurrency is applied when a transfer carries no currency.
	DefaultCurrency = "ARS"
)

// MaxTransferAmount is the upper bound accepted for a single transfer.
var MaxTransferAmount = decimal.NewFromInt(1_000_000)

var (
	ErrInvalidTransferAmount  = errors.New("transfer amount must be greater than zero")
	ErrTransferAmountTooLarge = errors.New("transfer amount exceeds maximum allowed")
	ErrSameAccountTransfer    = errors.New("debit and credit accounts cannot be the same")
	ErrInvalidAccountNumber   = errors.New("account number must be numeric and between 5-12 digits")
	ErrCompanyRequired        = errors.New("company reference is required")
)

// Transfer represents a money movement between two external accounts,
// performed on behalf of a company
type Transfer struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UUID          uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"uuid"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	CompanyID     uint            `gorm:"not null;index:idx_transfers_company_id" json:"company_id"`
	DebitAccount  string          `gorm:"type:varchar(12);not null" json:"debit_account"`
	CreditAccount string          `gorm:"type:varchar(12);not null" json:"credit_account"`
	TransferDate  time.Time       `gorm:"not null;index:idx_transfers_transfer_date" json:"transfer_date"`
	Status        string          `gorm:"type:varchar(20);not null;default:'pending';index:idx_transfers_status" json:"status"`
	Description   *string         `gorm:"type:text" json:"description,omitempty"`
	ReferenceID   *string         `gorm:"type:varchar(50)" json:"reference_id,omitempty"`
	ProcessedDate *time.Time      `json:"processed_date,omitempty"`
	Currency      string          `gorm:"type:varchar(3);not null;default:'ARS'" json:"currency"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`

	// Associations
	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
}

// BeforeCreate hook for Transfer
func (t *Transfer) BeforeCreate(tx *gorm.DB) error {
	if t.UUID == uuid.Nil {
		t.UUID = uuid.New()
	}

	now := time.Now()
	if t.TransferDate.IsZero() {
		t.TransferDate = now
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	t.normalize()
	return t.Validate()
}

// BeforeUpdate hook for Transfer
func (t *Transfer) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	t.normalize()
	return t.Validate()
}

// normalize coerces the record into its storage invariants: absolute
// 2-decimal amount, digit-only accounts, a known status, a currency, and a
// processed date once the transfer reaches a processed status.
func (t *Transfer) normalize() {
	t.Amount = t.Amount.Abs().Round(2)
	t.DebitAccount = SanitizeAccountNumber(t.DebitAccount)
	t.CreditAccount = SanitizeAccountNumber(t.CreditAccount)

	if !IsValidTransferStatus(t.Status) {
		t.Status = TransferStatusPending
	}

	if t.Currency == "" {
		t.Currency = DefaultCurrency
	}

	if (t.Status == TransferStatusCompleted || t.Status == TransferStatusFailed) && t.ProcessedDate == nil {
		now := time.Now()
		t.ProcessedDate = &now
	}
}

// Validate validates the transfer fields
func (t *Transfer) Validate() error {
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidTransferAmount
	}

	if t.CompanyID == 0 {
		return ErrCompanyRequired
	}

	if !IsValidAccountNumber(t.DebitAccount) || !IsValidAccountNumber(t.CreditAccount) {
		return ErrInvalidAccountNumber
	}

	if t.DebitAccount == t.CreditAccount {
		return ErrSameAccountTransfer
	}

	return nil
}

// IsPending returns true if the transfer is pending
func (t *Transfer) IsPending() bool {
	return t.Status == TransferStatusPending
}

// IsProcessed returns true if the transfer reached a processed status
func (t *Transfer) IsProcessed() bool {
	return t.Status == TransferStatusCompleted || t.Status == TransferStatusFailed
}

// CanTransitionTo reports whether moving to newStatus follows the nominal
// lifecycle. The update workflow does not enforce this table; terminal
// states stay mutable on purpose and the permissive behavior is part of the
// data contract.
func (t *Transfer) CanTransitionTo(newStatus string) bool {
	validTransitions := map[string][]string{
		TransferStatusPending:   {TransferStatusCompleted, TransferStatusFailed, TransferStatusReversed},
		TransferStatusCompleted: {},
		TransferStatusFailed:    {},
		TransferStatusReversed:  {},
	}

	allowedStatuses, exists := validTransitions[t.Status]
	if !exists {
		return false
	}

	return slices.Contains(allowedStatuses, newStatus)
}

// TableName returns the table name for Transfer
func (t *Transfer) TableName() string {
	return "transfers"
}

// IsValidTransferStatus checks if the transfer status is valid
func IsValidTransferStatus(status string) bool {
	switch status {
	case TransferStatusPending, TransferStatusCompleted, TransferStatusFailed, TransferStatusReversed:
		return true
	default:
		return false
	}
}
