package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrExpired          = errors.New("invitation has expired")
	ErrAlreadyUsed      = errors.New("invitation has already been used")
	ErrPropertyOccupied = errors.New("property is already occupied")
	ErrForbidden        = errors.New("forbidden")
	ErrConflict         = errors.New("conflict")
	ErrValidation       = errors.New("validation failed")
	ErrInvalidLogin     = errors.New("invalid credentials")
)

// ValidationError carries per-field messages. It matches ErrValidation under
// errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// FieldError builds a single-field ValidationError.
func FieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// fieldErrors accumulates messages, keeping the first per field.
type fieldErrors map[string]string

func (f fieldErrors) add(field, msg string) {
	if _, ok := f[field]; !ok {
		f[field] = msg
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}
