package canonical

import (
	"encoding/json"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"

	"nzcore/internal/errs"
	"nzcore/internal/primitives"
)

// Serialize marshals value to JSON and canonicalizes the result per RFC 8785.
func Serialize(value any) (string, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return "", errs.Newf(errs.NonCanonicalJSON, "marshal: %v", err)
	}
	return canonicalizeBytes(raw)
}

func canonicalizeBytes(raw []byte) (string, error) {
	out, err := jsoncanonicalizer.Transform(raw)
	if err != nil {
		return "", errs.Newf(errs.NonCanonicalJSON, "canonicalize: %v", err)
	}
	return string(out), nil
}

// AssertCanonical re-canonicalizes s and compares it byte-for-byte (in
// constant time) against s itself. Any difference means s was not already
// in canonical form.
func AssertCanonical(s string) error {
	recanonicalized, err := canonicalizeBytes([]byte(s))
	if err != nil {
		return err
	}
	if !primitives.ConstantTimeEqualString(recanonicalized, s) {
		return errs.New(errs.NonCanonicalJSON, "input is not in RFC 8785 canonical form")
	}
	return nil
}

// PrepareForSigning removes any "signature" field from doc's JSON object
// form and returns the canonical serialization of the remainder. doc may be
// a struct (via its MarshalJSON) or a map; either way it must marshal to a
// JSON object.
func PrepareForSigning(doc any) (string, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", errs.Newf(errs.NonCanonicalJSON, "marshal: %v", err)
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", errs.Newf(errs.NonCanonicalJSON, "document is not a JSON object: %v", err)
	}
	delete(obj, "signature")
	stripped, err := json.Marshal(obj)
	if err != nil {
		return "", errs.Newf(errs.NonCanonicalJSON, "remarshal: %v", err)
	}
	return canonicalizeBytes(stripped)
}

// CanonicalEqual reports whether a and b canonicalize to the same form,
// comparing in constant time.
func CanonicalEqual(a, b any) (bool, error) {
	ca, err := Serialize(a)
	if err != nil {
		return false, err
	}
	cb, err := Serialize(b)
	if err != nil {
		return false, err
	}
	return primitives.ConstantTimeEqualString(ca, cb), nil
}
