package document

import (
	"encoding/json"
	"testing"
)

const (
	testChainID = "26b0b83e7281be3b117658b6f2636d0368cad3d74f22243428f5401a4b70897e"
	zeroHash64  = "0000000000000000000000000000000000000000000000000000000000000000"
)

func validBuilder() *Builder {
	return New().
		Type("genesis").
		ChainID(testChainID).
		ParentHash(zeroHash64).
		LogicalTime(1).
		CreatedAt("2026-08-02T00:00:00Z")
}

func TestBuild_AppliesDefaults(t *testing.T) {
	doc, err := validBuilder().Build()
	if err != nil {
		t.Fatal(err)
	}
	if doc.Version != "1.0" {
		t.Fatalf("version = %q, want 1.0", doc.Version)
	}
	if doc.CryptoSuite != "nzcore-crypto-01" {
		t.Fatalf("crypto_suite = %q, want nzcore-crypto-01", doc.CryptoSuite)
	}
	if doc.ID == "" {
		t.Fatal("expected id to be derived")
	}
}

func TestBuild_RejectsMissingRequiredField(t *testing.T) {
	_, err := New().Type("genesis").LogicalTime(1).Build()
	if err == nil {
		t.Fatal("expected error for missing chain_id/parent_hash/created_at")
	}
}

func TestBuild_RejectsNonPositiveLogicalTime(t *testing.T) {
	b := New().Type("genesis").ChainID("c").ParentHash(zeroHash64).CreatedAt("t").LogicalTime(0)
	if _, err := b.Build(); err == nil {
		t.Fatal("expected error for logical_time 0")
	}
}

func TestBuild_IDIsDeterministic(t *testing.T) {
	d1, err := validBuilder().Build()
	if err != nil {
		t.Fatal(err)
	}
	d2, err := validBuilder().Build()
	if err != nil {
		t.Fatal(err)
	}
	if d1.ID != d2.ID {
		t.Fatalf("expected deterministic id, got %q and %q", d1.ID, d2.ID)
	}
}

func TestBuild_ExplicitIDIsPreserved(t *testing.T) {
	doc, err := validBuilder().ID("custom-id").Build()
	if err != nil {
		t.Fatal(err)
	}
	if doc.ID != "custom-id" {
		t.Fatalf("id = %q, want custom-id", doc.ID)
	}
}

func TestAddField_RejectsKnownFieldName(t *testing.T) {
	if _, err := New().AddField("type", "x"); err == nil {
		t.Fatal("expected error adding a named field via AddField")
	}
}

func TestAddField_RejectsDuplicate(t *testing.T) {
	b := New()
	if _, err := b.AddField("note", "first"); err != nil {
		t.Fatal(err)
	}
	if _, err := b.AddField("note", "second"); err == nil {
		t.Fatal("expected error overwriting an already-set extra field")
	}
}

func TestMarshalUnmarshal_RoundTripsExtraFields(t *testing.T) {
	b, err := validBuilder().AddField("note", "hello")
	if err != nil {
		t.Fatal(err)
	}
	doc, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}

	var restored Document
	if err := json.Unmarshal(raw, &restored); err != nil {
		t.Fatal(err)
	}
	if string(restored.Extra["note"]) != `"hello"` {
		t.Fatalf("note = %s, want \"hello\"", restored.Extra["note"])
	}
	if restored.ID != doc.ID {
		t.Fatalf("id did not round-trip: got %q, want %q", restored.ID, doc.ID)
	}
}

func TestWithoutSignature_ClearsSignatureOnly(t *testing.T) {
	doc, err := validBuilder().Build()
	if err != nil {
		t.Fatal(err)
	}
	doc.Signature = "deadbeef"
	stripped := doc.WithoutSignature()
	if stripped.Signature != "" {
		t.Fatal("expected signature to be cleared")
	}
	if stripped.ID != doc.ID {
		t.Fatal("expected all other fields to be preserved")
	}
	if doc.Signature == "" {
		t.Fatal("expected original document to be unmodified")
	}
}
