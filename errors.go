package nzcore

import "nzcore/internal/errs"

// Code and Error are re-exported as type aliases so callers never need to
// import the internal errs package directly.
type (
	Code  = errs.Code
	Error = errs.Error
)

// The closed taxonomy of failure codes a Facade operation can return.
const (
	InvalidMnemonic      = errs.InvalidMnemonic
	InvalidSeed          = errs.InvalidSeed
	InvalidKey           = errs.InvalidKey
	InvalidSignature     = errs.InvalidSignature
	NonCanonicalJSON     = errs.NonCanonicalJSON
	ForkDetected         = errs.ForkDetected
	LogicalTimeViolation = errs.LogicalTimeViolation
	CryptoSuiteMismatch  = errs.CryptoSuiteMismatch
	ValidationFailed     = errs.ValidationFailed
)
