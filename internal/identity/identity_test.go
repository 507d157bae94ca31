package identity

import (
	"encoding/hex"
	"strings"
	"testing"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

var zeroHash64 = strings.Repeat("0", 64)

func TestDerive_Deterministic(t *testing.T) {
	a, err := Derive(testMnemonic)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Derive(testMnemonic)
	if err != nil {
		t.Fatal(err)
	}
	if hex.EncodeToString(a.PublicKey) != hex.EncodeToString(b.PublicKey) {
		t.Fatal("public keys differ across derivations of the same mnemonic")
	}
	if a.ChainID != b.ChainID {
		t.Fatal("chain ids differ across derivations of the same mnemonic")
	}
	if len(a.ChainID) != 64 {
		t.Fatalf("chain id length = %d, want 64", len(a.ChainID))
	}
}

func TestDerive_RejectsInvalidMnemonic(t *testing.T) {
	if _, err := Derive("not a real mnemonic phrase at all nope"); err == nil {
		t.Fatal("expected invalid mnemonic to be rejected")
	}
}

func TestDeriveDocumentID_PureFunction(t *testing.T) {
	root, err := Derive(testMnemonic)
	if err != nil {
		t.Fatal(err)
	}
	id1, err := DeriveDocumentID(root.ChainID, zeroHash64, 1)
	if err != nil {
		t.Fatal(err)
	}
	id2, err := DeriveDocumentID(root.ChainID, zeroHash64, 1)
	if err != nil {
		t.Fatal(err)
	}
	if id1 != id2 {
		t.Fatal("document id derivation is not a pure function of its inputs")
	}
	if len(id1) != 64 {
		t.Fatalf("document id length = %d, want 64", len(id1))
	}

	id3, err := DeriveDocumentID(root.ChainID, zeroHash64, 2)
	if err != nil {
		t.Fatal(err)
	}
	if id1 == id3 {
		t.Fatal("different logical_time produced the same document id")
	}
}

func TestDeriveDocumentID_RejectsOversizedLogicalTime(t *testing.T) {
	if _, err := DeriveDocumentID("00", zeroHash64, 1<<32); err == nil {
		t.Fatal("expected logical_time overflow to be rejected")
	}
}

func TestRoot_DestroyZeroizesPrivateKey(t *testing.T) {
	root, err := Derive(testMnemonic)
	if err != nil {
		t.Fatal(err)
	}
	priv := root.PrivateKey
	root.Destroy()
	for i, b := range priv {
		if b != 0 {
			t.Fatalf("private key byte %d = %#x, want 0 after Destroy", i, b)
		}
	}
}
