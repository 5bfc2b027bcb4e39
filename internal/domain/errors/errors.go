package errors

import (
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return pkgerrors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same business code, so errors built
// with WithDetails still match their predefined sentinel.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !pkgerrors.As(target, &other) || other == nil {
		return false
	}

	return e.errorCode == other.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. Messages are returned to API clients verbatim.
var (
	// Account errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"There is a user with this email already",
		"",
	)

	ErrWrongPassword = NewBaseError(
		http.StatusUnauthorized,
		"WRONG_PASSWORD",
		"Wrong password",
		"",
	)

	ErrVerificationNotFound = NewBaseError(
		http.StatusNotFound,
		"VERIFICATION_NOT_FOUND",
		"Verification not found",
		"",
	)

	ErrAccountCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ACCOUNT_CREATION_FAILED",
		"Could not create an account",
		"",
	)

	ErrLoginFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOGIN_FAILED",
		"Could not log in",
		"",
	)

	ErrProfileUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROFILE_UPDATE_FAILED",
		"Could not update profile",
		"",
	)

	ErrVerifyEmailFailed = NewBaseError(
		http.StatusInternalServerError,
		"VERIFY_EMAIL_FAILED",
		"Could not verify email",
		"",
	)

	// Catalog errors
	ErrRestaurantNotFound = NewBaseError(
		http.StatusNotFound,
		"RESTAURANT_NOT_FOUND",
		"Restaurant not found",
		"",
	)

	ErrDishNotFound = NewBaseError(
		http.StatusNotFound,
		"DISH_NOT_FOUND",
		"Dish not found",
		"",
	)

	ErrRestaurantCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"RESTAURANT_CREATION_FAILED",
		"Could not create restaurant",
		"",
	)

	ErrDishCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"DISH_CREATION_FAILED",
		"Could not create dish",
		"",
	)

	ErrLoadRestaurantsFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOAD_RESTAURANTS_FAILED",
		"Could not load restaurants",
		"",
	)

	ErrLoadCategoriesFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOAD_CATEGORIES_FAILED",
		"Could not load categories",
		"",
	)

	ErrQRCodeFailed = NewBaseError(
		http.StatusInternalServerError,
		"QR_CODE_FAILED",
		"Could not generate QR code",
		"",
	)

	// Order errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrOrderCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ORDER_CREATION_FAILED",
		"Could not create an order",
		"",
	)

	ErrGetOrdersFailed = NewBaseError(
		http.StatusInternalServerError,
		"GET_ORDERS_FAILED",
		"Could not get orders",
		"",
	)

	ErrGetOrderFailed = NewBaseError(
		http.StatusInternalServerError,
		"GET_ORDER_FAILED",
		"Could not load order",
		"",
	)

	ErrOrderNotVisible = NewBaseError(
		http.StatusForbidden,
		"ORDER_NOT_VISIBLE",
		"You can't see that",
		"",
	)

	// Payment errors
	ErrPaymentCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"PAYMENT_CREATION_FAILED",
		"Could not create payment",
		"",
	)

	ErrGetPaymentsFailed = NewBaseError(
		http.StatusInternalServerError,
		"GET_PAYMENTS_FAILED",
		"Could not load payments",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You can't do that",
		"",
	)

	ErrForbiddenResource = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN_RESOURCE",
		"Forbidden resource",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// AsAppError returns the first AppError in err's chain.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if pkgerrors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// UserMessage returns the client-safe message carried by err. Errors that are
// not a *BaseError map to fallback so database and transport details stay internal.
func UserMessage(err error, fallback *BaseError) string {
	var baseErr *BaseError
	if pkgerrors.As(err, &baseErr) {
		return baseErr.Message()
	}

	return fallback.Message()
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return pkgerrors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
