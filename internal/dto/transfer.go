package dto

import (
	"time"

	"transfers-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer Request DTOs

// CreateTransferRequest represents the request payload for creating a transfer
type CreateTransferRequest struct {
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	CompanyID     string          `json:"company_id" validate:"required,entity_ref"`
	DebitAccount  string          `json:"debit_account" validate:"required,account_number"`
	CreditAccount string          `json:"credit_account" validate:"required,account_number"`
	TransferDate  *time.Time      `json:"transfer_date,omitempty"`
	Status        string          `json:"status,omitempty" validate:"omitempty,transfer_status"`
	Description   *string         `json:"description,omitempty" validate:"omitempty,max=255"`
	ReferenceID   *string         `json:"reference_id,omitempty" validate:"omitempty,reference_id"`
	Currency      string          `json:"currency,omitempty" validate:"omitempty,currency_code"`
}

// UpdateTransferStatusRequest represents the request payload for a status change
type UpdateTransferStatusRequest struct {
	Status string `json:"status" validate:"required,transfer_status"`
}

// Transfer Response DTOs

// TransferResponse represents a single transfer in API responses. Account
// numbers are always masked before leaving the service.
type TransferResponse struct {
	ID            uint               `json:"id"`
	UUID          uuid.UUID          `json:"uuid"`
	Amount        decimal.Decimal    `json:"amount"`
	CompanyID     uint               `json:"company_id"`
	DebitAccount  string             `json:"debit_account"`
	CreditAccount string             `json:"credit_account"`
	TransferDate  time.Time          `json:"transfer_date"`
	Status        string             `json:"status"`
	Description   *string            `json:"description,omitempty"`
	ReferenceID   *string            `json:"reference_id,omitempty"`
	ProcessedDate *time.Time         `json:"processed_date,omitempty"`
	Currency      string             `json:"currency"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	Company       *SimplifiedCompany `json:"company,omitempty"`
}

// NewTransferResponse maps a transfer model to its API representation,
// masking both account numbers
func NewTransferResponse(transfer *models.Transfer) TransferResponse {
	response := TransferResponse{
		ID:            transfer.ID,
		UUID:          transfer.UUID,
		Amount:        transfer.Amount,
		CompanyID:     transfer.CompanyID,
		DebitAccount:  models.MaskAccountNumber(transfer.DebitAccount),
		CreditAccount: models.MaskAccountNumber(transfer.CreditAccount),
		TransferDate:  transfer.TransferDate,
		Status:        transfer.Status,
		Description:   transfer.Description,
		ReferenceID:   transfer.ReferenceID,
		ProcessedDate: transfer.ProcessedDate,
		Currency:      transfer.Currency,
		CreatedAt:     transfer.CreatedAt,
		UpdatedAt:     transfer.UpdatedAt,
	}

	if transfer.Company.ID != 0 {
		company := NewSimplifiedCompany(&transfer.Company)
		response.Company = &company
	}

	return response
}

// NewTransferResponseList maps a slice of transfer models
func NewTransferResponseList(transfers []models.Transfer) []TransferResponse {
	responses := make([]TransferResponse, 0, len(transfers))
	for i := range transfers {
		responses = append(responses, NewTransferResponse(&transfers[i]))
	}
	return responses
}

// TransferListResponse represents a paginated list of transfers
type TransferListResponse struct {
	Transfers  []TransferResponse `json:"transfers"`
	Pagination PaginationMeta     `json:"pagination"`
}
