package validator

import (
	"crypto/ed25519"
	"errors"
	"testing"

	"nzcore/internal/canonical"
	"nzcore/internal/document"
	"nzcore/internal/primitives"
	"nzcore/internal/suite"
)

const zeroHash64 = "0000000000000000000000000000000000000000000000000000000000000000"

type keypair struct {
	pub  ed25519.PublicKey
	priv ed25519.PrivateKey
}

func signedDoc(t *testing.T) (document.Document, keypair) {
	t.Helper()
	pub, priv, err := suite.GenerateEd25519()
	if err != nil {
		t.Fatal(err)
	}
	doc, err := document.New().
		Type("event").
		ChainID("26b0b83e7281be3b117658b6f2636d0368cad3d74f22243428f5401a4b70897e").
		ParentHash(zeroHash64).
		LogicalTime(1).
		CreatedAt("2026-08-02T00:00:00Z").
		Build()
	if err != nil {
		t.Fatal(err)
	}

	canonicalStr, err := canonical.PrepareForSigning(doc)
	if err != nil {
		t.Fatal(err)
	}
	sig, err := suite.Sign(priv, []byte(canonicalStr))
	if err != nil {
		t.Fatal(err)
	}
	doc.Signature = primitives.Hex(sig)

	return doc, keypair{pub: pub, priv: priv}
}

func TestValidate_AcceptsWellFormedSignedDocument(t *testing.T) {
	doc, kp := signedDoc(t)
	res := Validate(doc, Context{TrustedKeys: []ed25519.PublicKey{kp.pub}})
	if !res.Final {
		t.Fatalf("expected valid document to pass, got %+v", res)
	}
}

func TestValidate_RejectsMissingRequiredField(t *testing.T) {
	doc, kp := signedDoc(t)
	doc.Type = ""
	res := Validate(doc, Context{TrustedKeys: []ed25519.PublicKey{kp.pub}})
	if res.StructuralValid || res.Final {
		t.Fatalf("expected structural failure, got %+v", res)
	}
	if res.CryptographicValid {
		t.Fatal("expected cryptographic layer to be skipped after structural failure")
	}
}

func TestValidate_RejectsTamperedField(t *testing.T) {
	doc, kp := signedDoc(t)
	doc.Type = "tampered"
	res := Validate(doc, Context{TrustedKeys: []ed25519.PublicKey{kp.pub}})
	if res.CryptographicValid || res.Final {
		t.Fatalf("expected cryptographic failure on tampered document, got %+v", res)
	}
}

func TestValidate_RejectsWrongTrustedKey(t *testing.T) {
	doc, _ := signedDoc(t)
	otherPub, _, err := suite.GenerateEd25519()
	if err != nil {
		t.Fatal(err)
	}
	res := Validate(doc, Context{TrustedKeys: []ed25519.PublicKey{otherPub}})
	if res.CryptographicValid {
		t.Fatal("expected verification against an unrelated key to fail")
	}
}

func TestValidate_WarnsOnFutureLogicalTime(t *testing.T) {
	doc, kp := signedDoc(t)
	currentTime := int64(0)
	res := Validate(doc, Context{TrustedKeys: []ed25519.PublicKey{kp.pub}, CurrentTime: &currentTime})
	if !res.Final {
		t.Fatalf("expected document to still pass with a warning, got %+v", res)
	}
	if len(res.Warnings) == 0 {
		t.Fatal("expected a warning for logical_time ahead of current_time")
	}
}

func TestValidate_PolicyFailureBlocksFinal(t *testing.T) {
	doc, kp := signedDoc(t)
	deny := PolicyFunc(func(document.Document) error {
		return errors.New("document denied by policy")
	})
	res := Validate(doc, Context{TrustedKeys: []ed25519.PublicKey{kp.pub}, Policy: deny})
	if res.PolicyValid || res.Final {
		t.Fatalf("expected policy failure to block final, got %+v", res)
	}
	if !res.StructuralValid || !res.CryptographicValid {
		t.Fatal("expected earlier layers to still have passed")
	}
}

func TestValidate_PolicyPanicIsRecordedNotPropagated(t *testing.T) {
	doc, kp := signedDoc(t)
	panicking := PolicyFunc(func(document.Document) error {
		panic("boom")
	})
	res := Validate(doc, Context{TrustedKeys: []ed25519.PublicKey{kp.pub}, Policy: panicking})
	if res.PolicyValid || res.Final {
		t.Fatal("expected a panicking policy evaluator to fail validation, not crash the test")
	}
}

func TestQuickValidate(t *testing.T) {
	doc, kp := signedDoc(t)
	if !QuickValidate(doc, kp.pub) {
		t.Fatal("expected quick validate to accept a well-signed document")
	}
	doc.Type = "tampered"
	if QuickValidate(doc, kp.pub) {
		t.Fatal("expected quick validate to reject a tampered document")
	}
}

func linkedDoc(t *testing.T, id, parentHash string, logicalTime int64) document.Document {
	t.Helper()
	d, err := document.New().
		Type("event").
		ID(id).
		ChainID("chain").
		ParentHash(parentHash).
		LogicalTime(logicalTime).
		CreatedAt("t").
		Build()
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestValidateChain_AcceptsLinkedDocuments(t *testing.T) {
	d1 := linkedDoc(t, "id-1", zeroHash64, 1)
	d2 := linkedDoc(t, "id-2", "id-1", 2)
	if !ValidateChain([]document.Document{d2, d1}) {
		t.Fatal("expected a properly linked chain to validate regardless of input order")
	}
}

func TestValidateChain_RejectsBrokenLinkage(t *testing.T) {
	d1 := linkedDoc(t, "id-1", zeroHash64, 1)
	d2 := linkedDoc(t, "id-2", "not-id-1", 2)
	if ValidateChain([]document.Document{d1, d2}) {
		t.Fatal("expected mismatched parent_hash to fail chain validation")
	}
}

func TestCELPolicy_EvaluatesDocumentFields(t *testing.T) {
	doc, kp := signedDoc(t)

	pass, err := CompileCELPolicy(`logical_time >= 1`)
	if err != nil {
		t.Fatal(err)
	}
	res := Validate(doc, Context{TrustedKeys: []ed25519.PublicKey{kp.pub}, Policy: pass})
	if !res.Final {
		t.Fatalf("expected passing CEL policy to allow document, got %+v", res)
	}

	deny, err := CompileCELPolicy(`type == "never-matches"`)
	if err != nil {
		t.Fatal(err)
	}
	res = Validate(doc, Context{TrustedKeys: []ed25519.PublicKey{kp.pub}, Policy: deny})
	if res.PolicyValid || res.Final {
		t.Fatalf("expected failing CEL policy to block document, got %+v", res)
	}
}
