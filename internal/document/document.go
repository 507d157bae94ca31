package document

import (
	"encoding/json"

	"nzcore/internal/errs"
)

// knownFields lists every named field Document marshals explicitly; any
// other key encountered on unmarshal goes into Extra.
var knownFields = map[string]bool{
	"type":         true,
	"version":      true,
	"id":           true,
	"chain_id":     true,
	"parent_hash":  true,
	"logical_time": true,
	"crypto_suite": true,
	"created_at":   true,
	"payload":      true,
	"signature":    true,
}

// Document is the ordered record described by spec §3. Field order in this
// struct has no bearing on the wire form: canonicalization (RFC 8785)
// always recursively sorts keys before signing or hashing.
type Document struct {
	Type        string                     `json:"type"`
	Version     string                     `json:"version"`
	ID          string                     `json:"id"`
	ChainID     string                     `json:"chain_id"`
	ParentHash  string                     `json:"parent_hash"`
	LogicalTime int64                      `json:"logical_time"`
	CryptoSuite string                     `json:"crypto_suite"`
	CreatedAt   string                     `json:"created_at"`
	Payload     json.RawMessage            `json:"payload,omitempty"`
	Signature   string                     `json:"signature,omitempty"`
	Extra       map[string]json.RawMessage `json:"-"`
}

// MarshalJSON flattens Extra alongside the named fields into a single JSON
// object, so unknown fields round-trip and stay covered by the signature.
func (d Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(knownFields)+len(d.Extra))
	for k, v := range d.Extra {
		if knownFields[k] {
			continue // a named field always wins over a same-keyed extra
		}
		out[k] = v
	}

	put := func(key string, v any) error {
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		out[key] = raw
		return nil
	}
	if err := put("type", d.Type); err != nil {
		return nil, err
	}
	if err := put("version", d.Version); err != nil {
		return nil, err
	}
	if err := put("id", d.ID); err != nil {
		return nil, err
	}
	if err := put("chain_id", d.ChainID); err != nil {
		return nil, err
	}
	if err := put("parent_hash", d.ParentHash); err != nil {
		return nil, err
	}
	if err := put("logical_time", d.LogicalTime); err != nil {
		return nil, err
	}
	if err := put("crypto_suite", d.CryptoSuite); err != nil {
		return nil, err
	}
	if err := put("created_at", d.CreatedAt); err != nil {
		return nil, err
	}
	if len(d.Payload) > 0 {
		out["payload"] = d.Payload
	}
	if d.Signature != "" {
		if err := put("signature", d.Signature); err != nil {
			return nil, err
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON splits the incoming object into named fields and Extra.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errs.Newf(errs.ValidationFailed, "document is not a JSON object: %v", err)
	}

	get := func(key string, dst any) error {
		v, ok := raw[key]
		if !ok {
			return nil
		}
		return json.Unmarshal(v, dst)
	}
	if err := get("type", &d.Type); err != nil {
		return err
	}
	if err := get("version", &d.Version); err != nil {
		return err
	}
	if err := get("id", &d.ID); err != nil {
		return err
	}
	if err := get("chain_id", &d.ChainID); err != nil {
		return err
	}
	if err := get("parent_hash", &d.ParentHash); err != nil {
		return err
	}
	if err := get("logical_time", &d.LogicalTime); err != nil {
		return err
	}
	if err := get("crypto_suite", &d.CryptoSuite); err != nil {
		return err
	}
	if err := get("created_at", &d.CreatedAt); err != nil {
		return err
	}
	if v, ok := raw["payload"]; ok {
		d.Payload = v
	}
	if err := get("signature", &d.Signature); err != nil {
		return err
	}

	d.Extra = make(map[string]json.RawMessage)
	for k, v := range raw {
		if !knownFields[k] {
			d.Extra[k] = v
		}
	}
	return nil
}

// WithoutSignature returns a shallow copy of d with Signature cleared,
// suitable for canonicalizing before signing or verifying.
func (d Document) WithoutSignature() Document {
	cp := d
	cp.Signature = ""
	return cp
}
