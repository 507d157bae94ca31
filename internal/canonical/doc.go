// Package canonical implements RFC 8785 JSON Canonicalization (JCS):
// recursive key sorting in lexicographic order on UTF-16 code units, no
// insignificant whitespace, numbers in shortest ECMAScript form, and
// strings with minimal escaping.
//
// Verification must reject any encoding variance before a signature check
// runs; otherwise semantically equivalent but textually distinct forms
// would hash — and therefore sign — differently.
package canonical
