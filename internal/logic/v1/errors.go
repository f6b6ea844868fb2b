// Package v1 provides the business logic behind API version 1: accounts,
// login, and the password, note and shopping resources.
//
// Error Handling:
// This package defines sentinel errors for the failures handlers must tell
// apart. They are wrapped with context using fmt.Errorf("%w") and checked
// with errors.Is. Input problems are reported as *ValidationError, whose
// Message is safe to show to the client.
//
// Example Usage:
//
//	if row == nil {
//	    return nil, fmt.Errorf("authenticate %q: %w", email, ErrInvalidCredentials)
//	}
//
// Error Checking (in handlers):
//
//	var verr *logicv1.ValidationError
//	switch {
//	case errors.As(err, &verr):
//	    c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
//	case errors.Is(err, logicv1.ErrInvalidCredentials):
//	    c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
//	default:
//	    c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
//	}
package v1

import "errors"

// Sentinel errors for business operations.
// These errors should be wrapped with context using fmt.Errorf("%w") when returned.
var (
	// ErrInvalidCredentials indicates an unknown email or a wrong password.
	// The two cases are deliberately indistinguishable.
	// HTTP Status: 401 Unauthorized
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserExists indicates the email is already registered.
	// HTTP Status: 409 Conflict
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound indicates no user has the requested id or email.
	// HTTP Status: 404 Not Found
	ErrUserNotFound = errors.New("user not found")

	// ErrPasswordNotFound indicates the entry is missing or owned by someone else.
	// HTTP Status: 404 Not Found
	ErrPasswordNotFound = errors.New("password not found")

	// ErrNoteNotFound indicates the note is missing or owned by someone else.
	// HTTP Status: 404 Not Found
	ErrNoteNotFound = errors.New("note not found")

	// ErrListNotFound indicates the shopping list is missing or owned by someone else.
	// HTTP Status: 404 Not Found
	ErrListNotFound = errors.New("shopping list not found")

	// ErrListAccessDenied is returned by item operations when the parent list
	// is missing or not owned by the caller.
	// HTTP Status: 404 Not Found
	ErrListAccessDenied = errors.New("shopping list not found or access denied")

	// ErrItemAccessDenied indicates the item is missing or sits on a list the
	// caller does not own.
	// HTTP Status: 404 Not Found
	ErrItemAccessDenied = errors.New("shopping item not found or access denied")

	// ErrItemNotFound indicates the item vanished between the ownership
	// check and the write.
	// HTTP Status: 404 Not Found
	ErrItemNotFound = errors.New("shopping item not found")
)

// ValidationError reports unusable input.
// HTTP Status: 400 Bad Request
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}
