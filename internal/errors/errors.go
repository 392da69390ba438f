package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotAuthenticated is returned when no session user is present.
	ErrNotAuthenticated = errors.New("Not authenticated")
	// ErrAdminRequired is returned when the session user is not an admin.
	ErrAdminRequired = errors.New("Admin access required")
	// ErrCSRFMismatch is returned when the CSRF token is missing or wrong.
	ErrCSRFMismatch = errors.New("Invalid CSRF token")
	// ErrRateLimited is returned when a rate-limited route is over budget.
	ErrRateLimited = errors.New("Too many requests, please try again later")
	// ErrInvalidCredentials is deliberately generic to resist enumeration.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// ErrUserExists is deliberately generic to resist enumeration.
	ErrUserExists = errors.New("User already exists")
	// ErrUserNotFound is returned for updates/deletes on absent users.
	ErrUserNotFound = errors.New("User not found")
	// ErrWeakPassword is returned when the password policy is not met.
	ErrWeakPassword = errors.New("Password must be at least 8 characters and contain a lowercase letter, an uppercase letter, and a digit")
	// ErrUnknownMenuItem is returned when an item is not on the menu.
	ErrUnknownMenuItem = errors.New("Unknown menu item")
	// ErrInvalidQuantity is returned when quantity is outside 1-100.
	ErrInvalidQuantity = errors.New("Quantity must be between 1 and 100")
	// ErrCartItemNotFound is returned for updates/deletes on absent cart rows.
	ErrCartItemNotFound = errors.New("Cart item not found")
	// ErrCartEmpty is returned when placing an order with an empty cart.
	ErrCartEmpty = errors.New("Cart is empty")
	// ErrInvalidRating is returned when a rating is outside 1-5.
	ErrInvalidRating = errors.New("Rating must be between 1 and 5")
	// ErrInvalidResetCode covers absent, wrong, and expired codes alike.
	ErrInvalidResetCode = errors.New("Invalid or expired reset code")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors become a
// generic 500; the cause is logged server-side, never returned to the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "NOT_AUTHENTICATED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrAdminRequired):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ADMIN_REQUIRED")
	case errors.Is(err, ErrCSRFMismatch):
		return NewHTTPError(http.StatusForbidden, err.Error(), "CSRF_MISMATCH")
	case errors.Is(err, ErrRateLimited):
		return NewHTTPError(http.StatusTooManyRequests, err.Error(), "RATE_LIMITED")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrCartItemNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CART_ITEM_NOT_FOUND")
	case errors.Is(err, ErrUserExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USER_EXISTS")
	case errors.Is(err, ErrWeakPassword):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "WEAK_PASSWORD")
	case errors.Is(err, ErrUnknownMenuItem):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNKNOWN_MENU_ITEM")
	case errors.Is(err, ErrInvalidQuantity):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_QUANTITY")
	case errors.Is(err, ErrCartEmpty):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CART_EMPTY")
	case errors.Is(err, ErrInvalidRating):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_RATING")
	case errors.Is(err, ErrInvalidResetCode):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_RESET_CODE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
