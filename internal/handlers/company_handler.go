package handlers

import (
	"errors"
	"net/http"
	"time"

	"transfers-api/internal/dto"
	apierrors "transfers-api/internal/errors"
	"transfers-api/internal/models"
	"transfers-api/internal/repositories"
	"transfers-api/internal/services"

	"github.com/labstack/echo/v4"
)

// CompanyHandler handles company-related HTTP requests
type CompanyHandler struct {
	companyService services.CompanyServiceInterface
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService services.CompanyServiceInterface) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// CreateCompany registers a new company
// @Summary Register a company
// @Description Register a company identified by its CUIT. The CUIT checksum is verified server-side.
// @Tags Companies
// @Accept json
// @Produce json
// @Param request body dto.CreateCompanyRequest true "Company data"
// @Success 201 {object} dto.CompanyResponse "Company registered"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request payload"
// @Failure 409 {object} errors.ErrorResponse "COMPANY_002 - CUIT already registered"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /companies [post]
func (h *CompanyHandler) CreateCompany(c echo.Context) error {
	var req dto.CreateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	company, err := h.companyService.CreateCompany(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCuit):
			return SendError(c, apierrors.CompanyInvalidCuit)
		case errors.Is(err, services.ErrCompanyCuitExists):
			return SendError(c, apierrors.CompanyCuitExists)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, dto.NewCompanyResponse(company))
}

// GetCompanies lists companies
// @Summary List companies
// @Description List registered companies with pagination and optional filters
// @Tags Companies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(10)
// @Param cuit query string false "Filter by CUIT"
// @Param is_active query bool false "Filter by active state"
// @Success 200 {object} dto.CompanyListResponse "Companies"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /companies [get]
func (h *CompanyHandler) GetCompanies(c echo.Context) error {
	page, limit := getPagination(c)

	filters := models.CompanyFilters{
		Cuit: c.QueryParam("cuit"),
	}
	if raw := c.QueryParam("is_active"); raw != "" {
		isActive := raw == "true"
		filters.IsActive = &isActive
	}

	companies, total, err := h.companyService.GetCompanies(filters, page, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CompanyListResponse{
		Companies:  dto.NewCompanyResponseList(companies),
		Pagination: dto.NewPaginationMeta(page, limit, total),
	})
}

// GetCompany retrieves one company
// @Summary Get a company
// @Description Retrieve a company by numeric ID or UUID
// @Tags Companies
// @Produce json
// @Param id path string true "Company ID or UUID"
// @Success 200 {object} dto.CompanyResponse "Company"
// @Failure 400 {object} errors.ErrorResponse "COMPANY_004 - Invalid identifier"
// @Failure 404 {object} errors.ErrorResponse "COMPANY_001 - Company not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /companies/{id} [get]
func (h *CompanyHandler) GetCompany(c echo.Context) error {
	ref, err := repositories.ParseEntityRef(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.CompanyInvalidID)
	}

	company, err := h.companyService.GetCompanyByRef(ref)
	if err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			return SendError(c, apierrors.CompanyNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCompanyResponse(company))
}

// DeleteCompany soft deletes a company
// @Summary Delete a company
// @Description Soft delete a company by numeric ID or UUID
// @Tags Companies
// @Produce json
// @Param id path string true "Company ID or UUID"
// @Success 200 {object} dto.MessageResponse "Company deleted"
// @Failure 400 {object} errors.ErrorResponse "COMPANY_004 - Invalid identifier"
// @Failure 404 {object} errors.ErrorResponse "COMPANY_001 - Company not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /companies/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c echo.Context) error {
	ref, err := repositories.ParseEntityRef(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.CompanyInvalidID)
	}

	if err := h.companyService.DeleteCompany(ref); err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			return SendError(c, apierrors.CompanyNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Company deleted successfully"})
}

// GetCompaniesAdheringLastMonth reports last month's adhesions
// @Summary Companies adhering last month
// @Description List companies whose adhesion date falls in the previous calendar month
// @Tags Reports
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(10)
// @Success 200 {object} dto.SimplifiedCompanyListResponse "Adhering companies"
// @Failure 404 {object} errors.ErrorResponse "REPORT_001 - No results for the period"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /companies/adhering/last-month [get]
func (h *CompanyHandler) GetCompaniesAdheringLastMonth(c echo.Context) error {
	page, limit := getPagination(c)

	companies, total, err := h.companyService.GetCompaniesAdheringLastMonth(time.Now(), page, limit)
	if err != nil {
		if errors.Is(err, services.ErrNoReportResults) {
			return SendError(c, apierrors.ReportNoResults)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SimplifiedCompanyListResponse{
		Companies:  dto.NewSimplifiedCompanyList(companies),
		Pagination: dto.NewPaginationMeta(page, limit, total),
	})
}
