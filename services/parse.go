package services

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Validation failures. They are reported next to the offending field and
// never treated as system errors.
var (
	ErrRequired    = errors.New("required")
	ErrNotANumber  = errors.New("must be a number")
	ErrNotPositive = errors.New("must be greater than zero")
)

// FieldError ties a validation failure to the form field that produced it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// numberPattern accepts an optional minus, digits and at most one decimal
// separator (dot or comma) followed by digits.
var numberPattern = regexp.MustCompile(`^-?\d+(?:[.,]\d+)?$`)

// ParsePositiveNumber converts a locale-formatted decimal string into a
// float64. Checks run in order and stop at the first failure: empty input,
// malformed input, value not above zero.
func ParsePositiveNumber(field, raw string) (float64, error) {
	if raw == "" {
		return 0, &FieldError{Field: field, Err: ErrRequired}
	}
	if !numberPattern.MatchString(raw) {
		return 0, &FieldError{Field: field, Err: ErrNotANumber}
	}

	value, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil || math.IsInf(value, 0) {
		return 0, &FieldError{Field: field, Err: ErrNotANumber}
	}
	if value <= 0 {
		return 0, &FieldError{Field: field, Err: ErrNotPositive}
	}
	return value, nil
}

// ParseName only requires the name to be present.
func ParseName(field, raw string) (string, error) {
	if raw == "" {
		return "", &FieldError{Field: field, Err: ErrRequired}
	}
	return raw, nil
}

// ValidationMessage returns the user-facing message for a validation error.
func ValidationMessage(err error) string {
	switch {
	case errors.Is(err, ErrRequired):
		return "Este campo é obrigatório"
	case errors.Is(err, ErrNotANumber):
		return "Este campo deve receber um número"
	case errors.Is(err, ErrNotPositive):
		return "O valor deve ser maior que zero"
	default:
		return "Valor inválido"
	}
}
