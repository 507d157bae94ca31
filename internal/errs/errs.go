// Package errs defines nzcore's closed error-code taxonomy.
//
// Every failure mode the core can raise surfaces as an *Error carrying one
// of the Code constants below, a human-readable message, and optional
// structured context. The root package re-exports Code and Error as type
// aliases so callers never need to import this package directly.
package errs

import "fmt"

// Code is a closed set of failure reasons. New values are never added
// without updating every switch over Code in this module.
type Code string

const (
	InvalidMnemonic     Code = "InvalidMnemonic"
	InvalidSeed         Code = "InvalidSeed"
	InvalidKey          Code = "InvalidKey"
	InvalidSignature    Code = "InvalidSignature"
	NonCanonicalJSON    Code = "NonCanonicalJson"
	ForkDetected        Code = "ForkDetected"
	LogicalTimeViolation Code = "LogicalTimeViolation"
	CryptoSuiteMismatch Code = "CryptoSuiteMismatch"
	ValidationFailed    Code = "ValidationFailed"
)

// Error is the single error type used across the core. Context is optional
// structured data (for example, the offending field name) useful to a
// caller deciding how to react, never secret material.
type Error struct {
	Code    Code
	Message string
	Context map[string]any
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New constructs an *Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf constructs an *Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithContext returns a copy of e carrying the given context entries.
func (e *Error) WithContext(ctx map[string]any) *Error {
	cp := *e
	cp.Context = ctx
	return &cp
}

// Is enables errors.Is(err, errs.New(code, "")) style comparisons by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
