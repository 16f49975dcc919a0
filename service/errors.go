package service

import "errors"

// Validation errors returned by ComputePayment.
var (
	ErrNegativeInterest     = errors.New("interest rate cannot be negative")
	ErrNonPositiveTerm      = errors.New("loan term must be greater than zero")
	ErrNonPositivePrincipal = errors.New("present value must be greater than zero")

	// 1+rate rounding to 1 divides by zero; huge rate and term overflow Pow.
	ErrNonFinitePayment = errors.New("payment is not representable for these inputs")
)

// ErrorKind identifies which input constraint was violated.
type ErrorKind string

const (
	NegativeInterest     ErrorKind = "NegativeInterest"
	NonPositiveTerm      ErrorKind = "NonPositiveTerm"
	NonPositivePrincipal ErrorKind = "NonPositivePrincipal"
	NonFinitePayment     ErrorKind = "NonFinitePayment"
)

// ValidationError is returned when a loan input is rejected. Input checks
// run before any computation; NonFinitePayment is reported after it. It
// unwraps to one of the sentinel errors above.
type ValidationError struct {
	Kind  ErrorKind
	Field string
	Value float64
	err   error
}

func (e *ValidationError) Error() string {
	return e.err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

func newValidationError(kind ErrorKind, field string, value float64, err error) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Value: value, err: err}
}
