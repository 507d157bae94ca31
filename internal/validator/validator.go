package validator

import (
	"crypto/ed25519"
	"encoding/json"
	"regexp"
	"sort"

	"nzcore/internal/canonical"
	"nzcore/internal/document"
	"nzcore/internal/errs"
	"nzcore/internal/primitives"
	"nzcore/internal/suite"
)

var parentHashPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// Context supplies the inputs the cryptographic and policy layers need
// beyond the document itself.
type Context struct {
	TrustedKeys []ed25519.PublicKey
	CurrentTime *int64 // nil means "not provided"
	Policy      PolicyEvaluator
}

// Result is the four-boolean outcome of §4.8, with accumulated errors and
// warnings explaining any failure.
type Result struct {
	StructuralValid    bool     `json:"structural_valid"`
	CryptographicValid bool     `json:"cryptographic_valid"`
	PolicyValid        bool     `json:"policy_valid"`
	Final              bool     `json:"final"`
	Errors             []string `json:"errors,omitempty"`
	Warnings           []string `json:"warnings,omitempty"`
}

// Validate runs the structural, cryptographic, and policy layers in order.
// Validate never returns an error itself; every failure mode is encoded in
// the returned Result.
func Validate(doc document.Document, ctx Context) Result {
	var res Result

	structErrs := structuralErrors(doc)
	res.StructuralValid = len(structErrs) == 0
	res.Errors = append(res.Errors, structErrs...)
	if !res.StructuralValid {
		res.Final = false
		return res
	}

	cryptoErrs, warnings := cryptographicErrors(doc, ctx)
	res.CryptographicValid = len(cryptoErrs) == 0
	res.Errors = append(res.Errors, cryptoErrs...)
	res.Warnings = append(res.Warnings, warnings...)
	if !res.CryptographicValid {
		res.Final = false
		return res
	}

	if ctx.Policy == nil {
		res.PolicyValid = true
	} else {
		res.PolicyValid = runPolicy(ctx.Policy, doc, &res.Errors)
	}

	res.Final = res.StructuralValid && res.CryptographicValid && res.PolicyValid
	return res
}

// runPolicy calls evaluator.Evaluate, converting any panic into a recorded
// failure rather than propagating it.
func runPolicy(evaluator PolicyEvaluator, doc document.Document, errsOut *[]string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			*errsOut = append(*errsOut, errs.Newf(errs.ValidationFailed, "policy evaluator panicked: %v", r).Error())
			ok = false
		}
	}()
	if err := evaluator.Evaluate(doc); err != nil {
		*errsOut = append(*errsOut, err.Error())
		return false
	}
	return true
}

func structuralErrors(doc document.Document) []string {
	var errsList []string
	req := []struct {
		name string
		val  string
	}{
		{"type", doc.Type},
		{"version", doc.Version},
		{"id", doc.ID},
		{"chain_id", doc.ChainID},
		{"parent_hash", doc.ParentHash},
		{"crypto_suite", doc.CryptoSuite},
		{"created_at", doc.CreatedAt},
		{"signature", doc.Signature},
	}
	for _, f := range req {
		if f.val == "" {
			errsList = append(errsList, errs.Newf(errs.ValidationFailed, "required field %q is missing or empty", f.name).Error())
		}
	}
	if doc.LogicalTime < 1 {
		errsList = append(errsList, errs.Newf(errs.LogicalTimeViolation, "logical_time %d is not >= 1", doc.LogicalTime).Error())
	}
	if doc.CryptoSuite != "" && doc.CryptoSuite != suite.ID {
		errsList = append(errsList, errs.Newf(errs.CryptoSuiteMismatch, "crypto_suite %q does not match %q", doc.CryptoSuite, suite.ID).Error())
	}
	if doc.Version != "" && doc.Version != "1.0" {
		errsList = append(errsList, errs.Newf(errs.ValidationFailed, "version %q does not match \"1.0\"", doc.Version).Error())
	}
	if doc.ParentHash != "" && !parentHashPattern.MatchString(doc.ParentHash) {
		errsList = append(errsList, errs.Newf(errs.ValidationFailed, "parent_hash %q does not match ^[0-9a-f]{64}$", doc.ParentHash).Error())
	}
	return errsList
}

func cryptographicErrors(doc document.Document, ctx Context) (errsList, warnings []string) {
	raw, err := json.Marshal(doc.WithoutSignature())
	if err != nil {
		return []string{errs.Newf(errs.NonCanonicalJSON, "marshal: %v", err).Error()}, nil
	}
	if err := canonical.AssertCanonical(string(raw)); err != nil {
		return []string{err.Error()}, nil
	}
	canonicalStr, err := canonical.PrepareForSigning(doc)
	if err != nil {
		return []string{err.Error()}, nil
	}

	sigBytes, err := primitives.DecodeHex(doc.Signature)
	if err != nil {
		return []string{errs.Newf(errs.InvalidSignature, "signature is not valid hex: %v", err).Error()}, nil
	}

	if len(ctx.TrustedKeys) == 0 {
		return []string{errs.New(errs.InvalidSignature, "no trusted public keys provided").Error()}, nil
	}
	verified := false
	for _, key := range ctx.TrustedKeys {
		if suite.Verify(key, []byte(canonicalStr), sigBytes) {
			verified = true
			break
		}
	}
	if !verified {
		return []string{errs.New(errs.InvalidSignature, "signature did not verify against any trusted key").Error()}, nil
	}

	if ctx.CurrentTime != nil && doc.LogicalTime > *ctx.CurrentTime {
		warnings = append(warnings, "logical_time is ahead of current_time")
	}
	return nil, warnings
}

// QuickValidate returns the cryptographic-layer boolean alone, verifying
// against a single public key.
func QuickValidate(doc document.Document, pub ed25519.PublicKey) bool {
	errsList, _ := cryptographicErrors(doc, Context{TrustedKeys: []ed25519.PublicKey{pub}})
	return len(errsList) == 0
}

// ValidateChain sorts documents by logical_time and checks hash linkage and
// strictly increasing logical_time between every adjacent pair.
func ValidateChain(docs []document.Document) bool {
	sorted := make([]document.Document, len(docs))
	copy(sorted, docs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LogicalTime < sorted[j].LogicalTime })

	for i := 1; i < len(sorted); i++ {
		prev, curr := sorted[i-1], sorted[i]
		if curr.ParentHash != prev.ID {
			return false
		}
		if curr.LogicalTime <= prev.LogicalTime {
			return false
		}
	}
	return true
}
