package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidCuit         = errors.New("cuit is invalid or has an incorrect checksum")
	ErrEmptyBusinessName   = errors.New("business name is required")
	ErrBusinessNameTooLong = errors.New("business name cannot exceed 100 characters")
)

// businessNameSanitizer escapes the characters that must never reach storage
// verbatim inside a business name.
var businessNameSanitizer = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	"'", "&#39;",
	`"`, "&quot;",
	";", "&#59;",
)

// SanitizeBusinessName escapes markup characters in a business name and
// trims surrounding whitespace.
func SanitizeBusinessName(name string) string {
	return strings.TrimSpace(businessNameSanitizer.Replace(name))
}

// Company represents a company enrolled in the transfer platform,
// identified publicly by UUID and fiscally by CUIT
type Company struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UUID         uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"uuid"`
	Cuit         string         `gorm:"type:varchar(13);uniqueIndex;not null" json:"cuit"`
	BusinessName string         `gorm:"type:varchar(100);not null" json:"business_name"`
	AdhesionDate time.Time      `gorm:"not null;index:idx_companies_adhesion_date" json:"adhesion_date"`
	Address      *string        `gorm:"type:varchar(255)" json:"address,omitempty"`
	ContactEmail *string        `gorm:"type:varchar(100)" json:"contact_email,omitempty"`
	ContactPhone *string        `gorm:"type:varchar(50)" json:"contact_phone,omitempty"`
	IsActive     bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Associations
	Transfers []Transfer `gorm:"foreignKey:CompanyID" json:"-"`
}

// BeforeCreate hook for Company
func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.UUID == uuid.Nil {
		c.UUID = uuid.New()
	}

	now := time.Now()
	if c.AdhesionDate.IsZero() {
		c.AdhesionDate = now
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	c.normalize()
	return c.Validate()
}

// BeforeUpdate hook for Company
func (c *Company) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now()
	c.normalize()
	return c.Validate()
}

// normalize brings the CUIT into canonical XX-XXXXXXXX-X form and trims the
// business name.
func (c *Company) normalize() {
	if c.Cuit != "" && !strings.Contains(c.Cuit, "-") {
		c.Cuit = FormatCuit(c.Cuit)
	}
	c.BusinessName = strings.TrimSpace(c.BusinessName)
}

// Validate validates the company fields
func (c *Company) Validate() error {
	if !IsValidCuit(c.Cuit) {
		return ErrInvalidCuit
	}

	if c.BusinessName == "" {
		return ErrEmptyBusinessName
	}

	if len(c.BusinessName) > 100 {
		return ErrBusinessNameTooLong
	}

	return nil
}

// TableName returns the table name for Company
func (c *Company) TableName() string {
	return "companies"
}
