package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Sentinel errors shared by the services. Handlers translate these to
// HTTP statuses with errors.Is.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("operation not allowed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrDuplicateCode      = errors.New("code already in use")
	ErrCapacityExceeded   = errors.New("route does not have enough seats left")
	ErrAlreadyCancelled   = errors.New("booking is already cancelled")
)

// SeatUnavailableError reports which requested seats could not be
// reserved. The whole reservation is rejected, none of the seats were
// taken.
type SeatUnavailableError struct {
	SeatIDs []uuid.UUID
}

func (e *SeatUnavailableError) Error() string {
	ids := make([]string, 0, len(e.SeatIDs))
	for _, id := range e.SeatIDs {
		ids = append(ids, id.String())
	}
	return fmt.Sprintf("seats no longer available: %s", strings.Join(ids, ", "))
}

// ValidationError wraps field-level validation failures so handlers can
// return them in the response errors payload.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}
