package primitives

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b in place with three passes (0x00, 0xff, 0x00) and then
// reads the buffer back to defeat dead-store elimination by the compiler.
// It is best-effort: Go gives no hard guarantee that secret material never
// lingers in registers or has been copied elsewhere, but this is the same
// discipline Ciphera's wipe helpers aim for.
//
//go:noinline
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	for i := range b {
		b[i] = 0x00
	}
	for i := range b {
		b[i] = 0xff
	}
	for i := range b {
		b[i] = 0x00
	}
	runtime.KeepAlive(&b)
	checkZeroed(b)
}

// checkZeroed re-reads b in constant time so the compiler cannot prove the
// wipe loop above is dead code and elide it.
//
//go:noinline
func checkZeroed(b []byte) bool {
	zero := make([]byte, len(b))
	return subtle.ConstantTimeCompare(b, zero) == 1
}

// ConstantTimeEqual reports whether a and b are byte-identical without
// short-circuiting on the first mismatch. Lengths differing is itself a
// non-match, resolved without leaking which byte first differed.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// ConstantTimeEqualString is ConstantTimeEqual for strings, used for
// canonical-form and hex comparisons.
func ConstantTimeEqualString(a, b string) bool {
	return ConstantTimeEqual([]byte(a), []byte(b))
}
