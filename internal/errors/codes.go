package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidCuit   ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
)

// Company error codes (COMPANY_*)
const (
	CompanyNotFound     ErrorCode = "COMPANY_001"
	CompanyCuitExists   ErrorCode = "COMPANY_002"
	CompanyInactive     ErrorCode = "COMPANY_003"
	CompanyInvalidID    ErrorCode = "COMPANY_004"
	CompanyInvalidCuit  ErrorCode = "COMPANY_005"
	CompanyNameRequired ErrorCode = "COMPANY_006"
)

// Transfer error codes (TRANSFER_*)
const (
	TransferNotFound       ErrorCode = "TRANSFER_001"
	TransferInvalidAmount  ErrorCode = "TRANSFER_002"
	TransferAmountTooLarge ErrorCode = "TRANSFER_003"
	TransferSameAccount    ErrorCode = "TRANSFER_004"
	TransferInvalidAccount ErrorCode = "TRANSFER_005"
	TransferInvalidStatus  ErrorCode = "TRANSFER_006"
	TransferCompanyMissing ErrorCode = "TRANSFER_007"
	TransferInvalidID      ErrorCode = "TRANSFER_008"
)

// Report error codes (REPORT_*)
const (
	ReportNoResults ErrorCode = "REPORT_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidCuit:   "Invalid CUIT format or checksum",
	ValidationInvalidDate:   "Invalid date format or range",

	// Company errors
	CompanyNotFound:     "Company not found",
	CompanyCuitExists:   "A company with this CUIT is already registered",
	CompanyInactive:     "Company is inactive",
	CompanyInvalidID:    "Invalid company identifier format",
	CompanyInvalidCuit:  "Invalid CUIT format or checksum",
	CompanyNameRequired: "Business name is required",

	// Transfer errors
	TransferNotFound:       "Transfer not found",
	TransferInvalidAmount:  "Transfer amount must be greater than zero",
	TransferAmountTooLarge: "Transfer amount exceeds the maximum allowed",
	TransferSameAccount:    "Debit and credit accounts cannot be the same",
	TransferInvalidAccount: "Account number must be numeric and between 5-12 digits",
	TransferInvalidStatus:  "Invalid transfer status",
	TransferCompanyMissing: "Transfer must reference an existing company",
	TransferInvalidID:      "Invalid transfer identifier format",

	// Report errors
	ReportNoResults: "No results found for the requested period",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
