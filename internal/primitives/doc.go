// Package primitives exposes the low-level byte-handling helpers shared by
// every other nzcore package.
//
// Contents
//
//   - Hex and base64url encoding used for wire-form identifiers and signatures
//   - Byte-slice merge used when hashing concatenated fields
//   - Constant-time equality for signatures, hashes, and canonical forms
//   - Best-effort memory zeroization for secret buffers
//
// None of these functions are cryptographic primitives themselves; the
// cryptographic suite lives in internal/suite and is built on top of this
// package.
package primitives
