package leasesdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error codes carried in ErrorResponse.Error.
const (
	ErrorCodeInvalidRequest   = "invalid_request"
	ErrorCodeValidation       = "validation_error"
	ErrorCodeUnauthorized     = "unauthorized"
	ErrorCodeInvalidGrant     = "invalid_grant"
	ErrorCodeForbidden        = "forbidden"
	ErrorCodeNotFound         = "not_found"
	ErrorCodeExpired          = "expired"
	ErrorCodeAlreadyUsed      = "already_used"
	ErrorCodePropertyOccupied = "property_occupied"
	ErrorCodeConflict         = "conflict"
	ErrorCodeRateLimited      = "rate_limit_exceeded"
	ErrorCodeServerError      = "server_error"
)

// Sentinels matched by APIError.Is on the error code.
var (
	ErrValidation       = errors.New(ErrorCodeValidation)
	ErrUnauthorized     = errors.New(ErrorCodeUnauthorized)
	ErrForbidden        = errors.New(ErrorCodeForbidden)
	ErrNotFound         = errors.New(ErrorCodeNotFound)
	ErrExpired          = errors.New(ErrorCodeExpired)
	ErrAlreadyUsed      = errors.New(ErrorCodeAlreadyUsed)
	ErrPropertyOccupied = errors.New(ErrorCodePropertyOccupied)
	ErrConflict         = errors.New(ErrorCodeConflict)
)

// APIError is a decoded non-2xx response.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
	Details     map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Is reports whether target is the sentinel for e.Code.
func (e *APIError) Is(target error) bool {
	return target != nil && target.Error() == e.Code && isSentinel(target)
}

func isSentinel(err error) bool {
	switch err {
	case ErrValidation, ErrUnauthorized, ErrForbidden, ErrNotFound,
		ErrExpired, ErrAlreadyUsed, ErrPropertyOccupied, ErrConflict:
		return true
	}
	return false
}

// parseErrorResponse turns an error body into *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        er.Error,
			Description: er.ErrorDescription,
			Details:     er.Details,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
