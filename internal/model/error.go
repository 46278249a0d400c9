package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeInvalidName         = "INVALID_NAME"
	ErrCodeInvalidRegistration = "INVALID_REGISTRATION"
	ErrCodeInvalidNotes        = "INVALID_NOTES"
	ErrCodeEmptyCart           = "EMPTY_CART"
	ErrCodeStoreClosed         = "STORE_CLOSED"
	ErrCodeDuplicateItem       = "DUPLICATE_ITEM"
	ErrCodeItemNotFound        = "ITEM_NOT_FOUND"
	ErrCodeSubmissionInFlight  = "SUBMISSION_IN_FLIGHT"
	ErrCodeOrderPersist        = "ORDER_PERSIST_FAILED"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors. Validation errors carry a field-specific message;
// persistence failures deliberately share one generic message regardless of
// which write step failed.
var (
	ErrInvalidName         = NewDomainError(ErrCodeInvalidName, "Name must contain only letters and spaces")
	ErrInvalidRegistration = NewDomainError(ErrCodeInvalidRegistration, "Registration must be exactly 4 digits")
	ErrInvalidNotes        = NewDomainError(ErrCodeInvalidNotes, "Notes may contain only letters, digits, spaces and . , ! ? -")
	ErrEmptyCart           = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrStoreClosed         = NewDomainError(ErrCodeStoreClosed, "The store is closed right now")
	ErrDuplicateItem       = NewDomainError(ErrCodeDuplicateItem, "Item is already in the cart")
	ErrItemNotFound        = NewDomainError(ErrCodeItemNotFound, "Menu item not found")
	ErrSubmissionInFlight  = NewDomainError(ErrCodeSubmissionInFlight, "A submission is already in progress")
	ErrOrderPersist        = NewDomainError(ErrCodeOrderPersist, "Could not place the order, please try again")
)
