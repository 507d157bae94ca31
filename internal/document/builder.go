package document

import (
	"encoding/json"

	"nzcore/internal/canonical"
	"nzcore/internal/errs"
	"nzcore/internal/identity"
	"nzcore/internal/suite"
)

// Builder records fields for exactly one Document and is consumed once by
// Build. It never touches private key material — signing happens in the
// facade, after Build has returned a canonicalizable, unsigned document.
type Builder struct {
	doc Document
	set map[string]bool
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{
		doc: Document{Extra: make(map[string]json.RawMessage)},
		set: make(map[string]bool),
	}
}

func (b *Builder) Type(v string) *Builder        { b.doc.Type = v; b.set["type"] = true; return b }
func (b *Builder) Version(v string) *Builder      { b.doc.Version = v; b.set["version"] = true; return b }
func (b *Builder) ID(v string) *Builder           { b.doc.ID = v; b.set["id"] = true; return b }
func (b *Builder) ChainID(v string) *Builder      { b.doc.ChainID = v; b.set["chain_id"] = true; return b }
func (b *Builder) ParentHash(v string) *Builder   { b.doc.ParentHash = v; b.set["parent_hash"] = true; return b }
func (b *Builder) LogicalTime(v int64) *Builder   { b.doc.LogicalTime = v; b.set["logical_time"] = true; return b }
func (b *Builder) CryptoSuite(v string) *Builder  { b.doc.CryptoSuite = v; b.set["crypto_suite"] = true; return b }
func (b *Builder) CreatedAt(v string) *Builder    { b.doc.CreatedAt = v; b.set["created_at"] = true; return b }
func (b *Builder) Signature(v string) *Builder    { b.doc.Signature = v; b.set["signature"] = true; return b }

// Payload sets the opaque payload. Any JSON-marshalable value is accepted;
// the core never interprets its contents.
func (b *Builder) Payload(v any) (*Builder, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return b, errs.Newf(errs.ValidationFailed, "payload is not JSON-serializable: %v", err)
	}
	b.doc.Payload = raw
	b.set["payload"] = true
	return b, nil
}

// AddField records an unknown top-level field. It is a no-op returning an
// error if key names an already-set field — unknown fields must never
// shadow a field the builder already knows about.
func (b *Builder) AddField(key string, value any) (*Builder, error) {
	if knownFields[key] {
		return b, errs.Newf(errs.ValidationFailed, "%q is a named field and cannot be set via AddField", key)
	}
	if _, exists := b.doc.Extra[key]; exists {
		return b, errs.Newf(errs.ValidationFailed, "field %q is already set", key)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return b, errs.Newf(errs.ValidationFailed, "field %q is not JSON-serializable: %v", key, err)
	}
	b.doc.Extra[key] = raw
	return b, nil
}

// requiredStringFields are asserted present (non-empty, for strings) by Build.
// logical_time and id are checked separately since one is numeric and the
// other may be auto-derived.
var requiredStringFields = []struct {
	name string
	get  func(Document) string
}{
	{"type", func(d Document) string { return d.Type }},
	{"chain_id", func(d Document) string { return d.ChainID }},
	{"parent_hash", func(d Document) string { return d.ParentHash }},
	{"created_at", func(d Document) string { return d.CreatedAt }},
}

// Build validates required fields, applies the version/crypto_suite
// defaults, derives id if the caller did not set one explicitly, and
// confirms the result canonicalizes before returning it.
func (b *Builder) Build() (Document, error) {
	if !b.set["version"] {
		b.doc.Version = "1.0"
	}
	if !b.set["crypto_suite"] {
		b.doc.CryptoSuite = suite.ID
	}

	for _, f := range requiredStringFields {
		if f.get(b.doc) == "" {
			return Document{}, errs.Newf(errs.ValidationFailed, "required field %q is missing", f.name)
		}
	}
	if b.doc.LogicalTime < 1 {
		return Document{}, errs.Newf(errs.LogicalTimeViolation, "logical_time %d is not a positive integer", b.doc.LogicalTime)
	}

	if !b.set["id"] {
		id, err := identity.DeriveDocumentID(b.doc.ChainID, b.doc.ParentHash, uint64(b.doc.LogicalTime))
		if err != nil {
			return Document{}, err
		}
		b.doc.ID = id
	}

	if _, err := canonical.Serialize(b.doc); err != nil {
		return Document{}, err
	}
	return b.doc, nil
}
