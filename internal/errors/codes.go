package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingSession     ErrorCode = "AUTH_001"
	AuthExpiredToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound ErrorCode = "CATEGORY_001"
)

// Sub-category error codes (SUBCATEGORY_*)
const (
	SubCategoryInvalidName  ErrorCode = "SUBCATEGORY_001"
	SubCategoryNotFound     ErrorCode = "SUBCATEGORY_002"
	SubCategoryCreateFailed ErrorCode = "SUBCATEGORY_003"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInvalidAmount    ErrorCode = "TRANSACTION_001"
	TransactionTypeMismatch     ErrorCode = "TRANSACTION_002"
	TransactionSubCategoryOwner ErrorCode = "TRANSACTION_003"
	TransactionInvalidType      ErrorCode = "TRANSACTION_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingSession:     "No user found for this session",
	AuthExpiredToken:       "Session has expired",
	AuthInvalidTokenFormat: "Invalid session token",

	// Validation errors
	ValidationGeneral:       "Invalid data",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Category errors
	CategoryNotFound: "Category not found",

	// Sub-category errors
	SubCategoryInvalidName:  "Name must be at least 2 characters",
	SubCategoryNotFound:     "Sub-category not found",
	SubCategoryCreateFailed: "Unable to create this sub-category",

	// Transaction errors
	TransactionInvalidAmount:    "Amount must be greater than zero",
	TransactionTypeMismatch:     "Transaction type does not match the category type",
	TransactionSubCategoryOwner: "Sub-category does not belong to the selected category",
	TransactionInvalidType:      "Invalid transaction type",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Unable to save your data right now",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
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
