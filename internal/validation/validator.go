package validation

import (
	"reflect"
	"regexp"
	"strings"

	"transfers-api/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("cuit", validateCuit)
	_ = v.RegisterValidation("account_number", validateAccountNumber)
	_ = v.RegisterValidation("transfer_status", validateTransferStatus)
	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("reference_id", validateReferenceID)
	_ = v.RegisterValidation("entity_ref", validateEntityRef)
	_ = v.RegisterValidation("contact_phone", validateContactPhone)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateCuit validates an Argentine CUIT including its checksum digit
func validateCuit(fl validator.FieldLevel) bool {
	return models.IsValidCuit(fl.Field().String())
}

// validateAccountNumber validates that an account number is 5-12 digits
func validateAccountNumber(fl validator.FieldLevel) bool {
	return models.IsValidAccountNumber(fl.Field().String())
}

// validateTransferStatus validates that a status is one of the known
// lifecycle states. Statuses are stored lowercase, so case matters here:
// accepting "COMPLETED" would let the create path silently coerce it back
// to pending.
func validateTransferStatus(fl validator.FieldLevel) bool {
	return models.IsValidTransferStatus(fl.Field().String())
}

// validateCurrencyCode validates an ISO 4217 style three-letter currency code
func validateCurrencyCode(fl validator.FieldLevel) bool {
	matched, _ := regexp.MatchString(`^[A-Z]{3}$`, fl.Field().String())
	return matched
}

// validateReferenceID validates an external reference identifier
// Format: 1-50 alphanumeric characters, dashes or underscores
func validateReferenceID(fl validator.FieldLevel) bool {
	matched, _ := regexp.MatchString(`^[A-Za-z0-9_-]{1,50}$`, fl.Field().String())
	return matched
}

// validateEntityRef validates an identifier that is either numeric or a UUID
func validateEntityRef(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}

	if matched, _ := regexp.MatchString(`^\d+$`, value); matched {
		return true
	}

	_, err := uuid.Parse(value)
	return err == nil
}

// validateContactPhone validates a phone number with optional country prefix
func validateContactPhone(fl validator.FieldLevel) bool {
	matched, _ := regexp.MatchString(`^\+?[0-9 ()-]{6,20}$`, fl.Field().String())
	return matched
}
