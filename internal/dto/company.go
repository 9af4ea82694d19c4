package dto

import (
	"time"

	"transfers-api/internal/models"

	"github.com/google/uuid"
)

// Company Request DTOs

// CreateCompanyRequest represents the request payload for registering a company
type CreateCompanyRequest struct {
	Cuit         string     `json:"cuit" validate:"required,cuit"`
	BusinessName string     `json:"business_name" validate:"required,min=1,max=100"`
	AdhesionDate *time.Time `json:"adhesion_date,omitempty"`
	Address      *string    `json:"address,omitempty" validate:"omitempty,max=255"`
	ContactEmail *string    `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone *string    `json:"contact_phone,omitempty" validate:"omitempty,contact_phone"`
}

// Company Response DTOs

// CompanyResponse represents a single company in API responses
type CompanyResponse struct {
	ID           uint      `json:"id"`
	UUID         uuid.UUID `json:"uuid"`
	Cuit         string    `json:"cuit"`
	BusinessName string    `json:"business_name"`
	AdhesionDate time.Time `json:"adhesion_date"`
	Address      *string   `json:"address,omitempty"`
	ContactEmail *string   `json:"contact_email,omitempty"`
	ContactPhone *string   `json:"contact_phone,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewCompanyResponse maps a company model to its API representation
func NewCompanyResponse(company *models.Company) CompanyResponse {
	return CompanyResponse{
		ID:           company.ID,
		UUID:         company.UUID,
		Cuit:         company.Cuit,
		BusinessName: company.BusinessName,
		AdhesionDate: company.AdhesionDate,
		Address:      company.Address,
		ContactEmail: company.ContactEmail,
		ContactPhone: company.ContactPhone,
		IsActive:     company.IsActive,
		CreatedAt:    company.CreatedAt,
		UpdatedAt:    company.UpdatedAt,
	}
}

// NewCompanyResponseList maps a slice of company models
func NewCompanyResponseList(companies []models.Company) []CompanyResponse {
	responses := make([]CompanyResponse, 0, len(companies))
	for i := range companies {
		responses = append(responses, NewCompanyResponse(&companies[i]))
	}
	return responses
}

// CompanyListResponse represents a paginated list of companies
type CompanyListResponse struct {
	Companies  []CompanyResponse `json:"companies"`
	Pagination PaginationMeta    `json:"pagination"`
}

// SimplifiedCompany is the compact company representation used by reports
// and embedded inside transfer responses
type SimplifiedCompany struct {
	ID           uint      `json:"id"`
	UUID         uuid.UUID `json:"uuid"`
	Cuit         string    `json:"cuit"`
	BusinessName string    `json:"business_name"`
}

// NewSimplifiedCompany maps a company model to its compact representation
func NewSimplifiedCompany(company *models.Company) SimplifiedCompany {
	return SimplifiedCompany{
		ID:           company.ID,
		UUID:         company.UUID,
		Cuit:         company.Cuit,
		BusinessName: company.BusinessName,
	}
}

// NewSimplifiedCompanyList maps a slice of company models
func NewSimplifiedCompanyList(companies []models.Company) []SimplifiedCompany {
	simplified := make([]SimplifiedCompany, 0, len(companies))
	for i := range companies {
		simplified = append(simplified, NewSimplifiedCompany(&companies[i]))
	}
	return simplified
}

// SimplifiedCompanyListResponse represents a report over companies
type SimplifiedCompanyListResponse struct {
	Companies  []SimplifiedCompany `json:"companies"`
	Pagination PaginationMeta      `json:"pagination"`
}
