package suite

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/scrypt"

	"nzcore/internal/errs"
	"nzcore/internal/primitives"
)

// Memory-hard KDF parameters, fixed by the suite.
const (
	ScryptN      = 32768
	ScryptR      = 8
	ScryptP      = 1
	ScryptDKLen  = 64
)

// Scrypt derives ScryptDKLen bytes from ikm and salt using the suite's fixed
// scrypt parameters.
func Scrypt(ikm, salt []byte) ([]byte, error) {
	out, err := scrypt.Key(ikm, salt, ScryptN, ScryptR, ScryptP, ScryptDKLen)
	if err != nil {
		return nil, errs.Newf(errs.InvalidKey, "scrypt: %v", err)
	}
	return out, nil
}

// HKDFDerive implements the combined extract-then-expand operation.
// golang.org/x/crypto/hkdf does not expose the intermediate PRK (extract
// output) for direct zeroization — it is consumed internally by the
// returned io.Reader — so this zeroizes ikm itself once expand has
// finished, since ikm is the caller's scrypt output and nothing downstream
// needs it again.
func HKDFDerive(ikm, salt, info []byte, length int) ([]byte, error) {
	reader := hkdf.New(sha256.New, ikm, salt, info)
	out := make([]byte, length)
	if _, err := io.ReadFull(reader, out); err != nil {
		return nil, errs.Newf(errs.InvalidKey, "hkdf: %v", err)
	}
	primitives.Zero(ikm)
	return out, nil
}
