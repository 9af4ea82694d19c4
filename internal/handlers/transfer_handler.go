package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"transfers-api/internal/dto"
	apierrors "transfers-api/internal/errors"
	"transfers-api/internal/models"
	"transfers-api/internal/repositories"
	"transfers-api/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransferHandler handles transfer-related HTTP requests
type TransferHandler struct {
	transferService services.TransferServiceInterface
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(transferService services.TransferServiceInterface) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

// CreateTransfer registers a new transfer
// @Summary Create a transfer
// @Description Create a transfer between two accounts on behalf of a registered company. Account numbers are masked in the response.
// @Tags Transfers
// @Accept json
// @Produce json
// @Param request body dto.CreateTransferRequest true "Transfer data"
// @Success 201 {object} dto.TransferResponse "Transfer created"
// @Failure 400 {object} errors.ErrorResponse "TRANSFER_002 - Invalid amount or TRANSFER_004 - Same debit and credit account"
// @Failure 404 {object} errors.ErrorResponse "COMPANY_001 - Company not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transfers [post]
func (h *TransferHandler) CreateTransfer(c echo.Context) error {
	var req dto.CreateTransferRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	transfer, err := h.transferService.CreateTransfer(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			return SendError(c, apierrors.TransferInvalidAmount)
		case errors.Is(err, services.ErrAmountTooLarge):
			return SendError(c, apierrors.TransferAmountTooLarge)
		case errors.Is(err, services.ErrSameAccount):
			return SendError(c, apierrors.TransferSameAccount)
		case errors.Is(err, services.ErrInvalidAccountNumber):
			return SendError(c, apierrors.TransferInvalidAccount)
		case errors.Is(err, services.ErrCompanyNotFound):
			return SendError(c, apierrors.CompanyNotFound)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, dto.NewTransferResponse(transfer))
}

// GetTransfers lists transfers
// @Summary List transfers
// @Description List transfers with pagination and optional filters. Account numbers are masked.
// @Tags Transfers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(10)
// @Param status query string false "Filter by status" Enums(pending, completed, failed, reversed)
// @Param company_id query int false "Filter by company numeric ID"
// @Param min_amount query number false "Minimum amount"
// @Param max_amount query number false "Maximum amount"
// @Param start_date query string false "Transfer date from (YYYY-MM-DD)"
// @Param end_date query string false "Transfer date until (YYYY-MM-DD)"
// @Success 200 {object} dto.TransferListResponse "Transfers"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid filter parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transfers [get]
func (h *TransferHandler) GetTransfers(c echo.Context) error {
	page, limit := getPagination(c)

	filters, err := parseTransferFilters(c)
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	transfers, total, err := h.transferService.GetTransfers(filters, page, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransferListResponse{
		Transfers:  dto.NewTransferResponseList(transfers),
		Pagination: dto.NewPaginationMeta(page, limit, total),
	})
}

// GetTransfer retrieves one transfer
// @Summary Get a transfer
// @Description Retrieve a transfer by numeric ID or UUID. Account numbers are masked.
// @Tags Transfers
// @Produce json
// @Param id path string true "Transfer ID or UUID"
// @Success 200 {object} dto.TransferResponse "Transfer"
// @Failure 400 {object} errors.ErrorResponse "TRANSFER_008 - Invalid identifier"
// @Failure 404 {object} errors.ErrorResponse "TRANSFER_001 - Transfer not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transfers/{id} [get]
func (h *TransferHandler) GetTransfer(c echo.Context) error {
	ref, err := repositories.ParseEntityRef(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.TransferInvalidID)
	}

	transfer, err := h.transferService.GetTransferByRef(ref)
	if err != nil {
		if errors.Is(err, services.ErrTransferNotFound) {
			return SendError(c, apierrors.TransferNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransferResponse(transfer))
}

// UpdateTransferStatus changes the status of a transfer
// @Summary Update transfer status
// @Description Change a transfer's status. Moving to completed or failed stamps the processed date.
// @Tags Transfers
// @Accept json
// @Produce json
// @Param id path string true "Transfer ID or UUID"
// @Param request body dto.UpdateTransferStatusRequest true "New status"
// @Success 200 {object} dto.TransferResponse "Updated transfer"
// @Failure 400 {object} errors.ErrorResponse "TRANSFER_006 - Invalid status or TRANSFER_008 - Invalid identifier"
// @Failure 404 {object} errors.ErrorResponse "TRANSFER_001 - Transfer not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transfers/{id}/status [patch]
func (h *TransferHandler) UpdateTransferStatus(c echo.Context) error {
	ref, err := repositories.ParseEntityRef(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.TransferInvalidID)
	}

	var req dto.UpdateTransferStatusRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.TransferInvalidStatus, apierrors.WithDetails(err.Error()))
	}

	transfer, err := h.transferService.UpdateTransferStatus(ref, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTransferNotFound):
			return SendError(c, apierrors.TransferNotFound)
		case errors.Is(err, services.ErrInvalidStatus):
			return SendError(c, apierrors.TransferInvalidStatus)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.NewTransferResponse(transfer))
}

// GetTransfersByCompany lists a company's transfers
// @Summary List transfers for a company
// @Description List all transfers belonging to a company, identified by numeric ID or UUID
// @Tags Transfers
// @Produce json
// @Param companyId path string true "Company ID or UUID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(10)
// @Success 200 {object} dto.TransferListResponse "Transfers"
// @Failure 400 {object} errors.ErrorResponse "COMPANY_004 - Invalid identifier"
// @Failure 404 {object} errors.ErrorResponse "COMPANY_001 - Company not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transfers/company/{companyId} [get]
func (h *TransferHandler) GetTransfersByCompany(c echo.Context) error {
	ref, err := repositories.ParseEntityRef(c.Param("companyId"))
	if err != nil {
		return SendError(c, apierrors.CompanyInvalidID)
	}

	page, limit := getPagination(c)

	transfers, total, err := h.transferService.GetTransfersByCompany(ref, page, limit)
	if err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			return SendError(c, apierrors.CompanyNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransferListResponse{
		Transfers:  dto.NewTransferResponseList(transfers),
		Pagination: dto.NewPaginationMeta(page, limit, total),
	})
}

// GetCompaniesWithTransfersLastMonth reports last month's active companies
// @Summary Companies with transfers last month
// @Description List companies that completed at least one transfer during the previous calendar month
// @Tags Reports
// @Produce json
// @Success 200 {object} dto.SimplifiedCompanyListResponse "Companies with completed transfers"
// @Failure 404 {object} errors.ErrorResponse "REPORT_001 - No results for the period"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transfers/companies/last-month [get]
func (h *TransferHandler) GetCompaniesWithTransfersLastMonth(c echo.Context) error {
	companies, err := h.transferService.GetCompaniesWithTransfersLastMonth(time.Now())
	if err != nil {
		if errors.Is(err, services.ErrNoReportResults) {
			return SendError(c, apierrors.ReportNoResults)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SimplifiedCompanyListResponse{
		Companies:  dto.NewSimplifiedCompanyList(companies),
		Pagination: dto.NewPaginationMeta(1, len(companies), int64(len(companies))),
	})
}

// parseTransferFilters parses and validates transfer filter parameters
func parseTransferFilters(c echo.Context) (models.TransferFilters, error) {
	var filters models.TransferFilters

	if status := c.QueryParam("status"); status != "" {
		if !models.IsValidTransferStatus(status) {
			return filters, fmt.Errorf("invalid status")
		}
		filters.Status = status
	}

	if companyIDStr := c.QueryParam("company_id"); companyIDStr != "" {
		companyID, err := strconv.ParseUint(companyIDStr, 10, 32)
		if err != nil {
			return filters, fmt.Errorf("invalid company_id format")
		}
		id := uint(companyID)
		filters.CompanyID = &id
	}

	if minAmountStr := c.QueryParam("min_amount"); minAmountStr != "" {
		minAmount, err := decimal.NewFromString(minAmountStr)
		if err != nil {
			return filters, fmt.Errorf("invalid min_amount format")
		}
		filters.MinAmount = &minAmount
	}

	if maxAmountStr := c.QueryParam("max_amount"); maxAmountStr != "" {
		maxAmount, err := decimal.NewFromString(maxAmountStr)
		if err != nil {
			return filters, fmt.Errorf("invalid max_amount format")
		}
		filters.MaxAmount = &maxAmount
	}

	if startDateStr := c.QueryParam("start_date"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			return filters, fmt.Errorf("invalid start_date format, use YYYY-MM-DD")
		}
		filters.StartDate = &startDate
	}

	if endDateStr := c.QueryParam("end_date"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			return filters, fmt.Errorf("invalid end_date format, use YYYY-MM-DD")
		}
		// The repository treats the end bound as exclusive, so move it to
		// the start of the following day to keep the whole day in range.
		nextDay := endDate.AddDate(0, 0, 1)
		filters.EndDate = &nextDay
	}

	return filters, nil
}
