package error

import (
	"errors"
	"net/http"
)

// Base error types. Repositories translate driver errors into these;
// handlers map them to HTTP statuses via HTTPStatus.
var (
	// ErrInvalidAmount is returned when a transaction amount is not a strictly positive number
	ErrInvalidAmount = errors.New("Invalid amount")

	// ErrAmountOverflow is returned when the amount is too large to represent in cents
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrAmountTooLarge is returned when the amount exceeds the configured maximum
	ErrAmountTooLarge = errors.New("amount exceeds the configured maximum")

	// ErrInvalidTransactionType is returned when the type is not income or expense
	ErrInvalidTransactionType = errors.New("transaction type must be income or expense")

	// ErrEmptyCategoryName is returned when a category name is empty after trimming
	ErrEmptyCategoryName = errors.New("category name cannot be empty")

	// ErrUsernameTooShort is returned on registration with a username under 3 characters
	ErrUsernameTooShort = errors.New("username must be at least 3 characters long")

	// ErrPasswordTooShort is returned on registration with a password under 6 characters
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")

	// ErrInvalidEmail is returned on registration with a malformed email
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidUserID is returned when a user id is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrDuplicateCategory is returned when the owner already has a category with the same name
	ErrDuplicateCategory = errors.New("category with this name already exists")

	// ErrCategoryInUse is returned when deleting a category that transactions still reference
	ErrCategoryInUse = errors.New("cannot delete a category with associated transactions")

	// ErrDuplicateEmail is returned when registering an email that is already taken
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrDuplicateUsername is returned when registering a username that is already taken
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrCategoryNotFound is returned when no category with the given id is owned by the caller
	ErrCategoryNotFound = errors.New("category not found")

	// ErrTransactionNotFound is returned when no transaction with the given id is owned by the caller
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrMissingToken is returned when the Authorization header is absent or malformed
	ErrMissingToken = errors.New("authorization token required")

	// ErrInvalidToken is returned when the identity token is rejected
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInvalidCredentials is returned when login email or password is wrong
	ErrInvalidCredentials = errors.New("Invalid credentials")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// IsValidationError reports whether the error describes malformed or out-of-range input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrAmountOverflow) ||
		errors.Is(err, ErrAmountTooLarge) ||
		errors.Is(err, ErrInvalidTransactionType) ||
		errors.Is(err, ErrEmptyCategoryName) ||
		errors.Is(err, ErrUsernameTooShort) ||
		errors.Is(err, ErrPasswordTooShort) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsConflictError reports whether the error describes a uniqueness or referential guard violation.
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateCategory) ||
		errors.Is(err, ErrCategoryInUse) ||
		errors.Is(err, ErrDuplicateEmail) ||
		errors.Is(err, ErrDuplicateUsername)
}

// IsNotFoundError reports whether the error is any "not found" type of error.
// Ownership misses surface this way too, deliberately indistinguishable from absence.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsAuthError reports whether the error describes a missing or rejected identity token
// or failed credentials.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrMissingToken) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrInvalidCredentials)
}

// HTTPStatus maps a domain error to the HTTP status code the API surfaces.
func HTTPStatus(err error) int {
	switch {
	case IsValidationError(err), IsConflictError(err):
		return http.StatusBadRequest
	case IsNotFoundError(err):
		return http.StatusNotFound
	case IsAuthError(err):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
