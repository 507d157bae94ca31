package vault

import "testing"

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestSealUnseal_RoundTrips(t *testing.T) {
	sealed, err := Seal("correct horse battery staple", testMnemonic)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Unseal("correct horse battery staple", sealed)
	if err != nil {
		t.Fatal(err)
	}
	if got != testMnemonic {
		t.Fatalf("unsealed mnemonic = %q, want %q", got, testMnemonic)
	}
}

func TestUnseal_RejectsWrongPassphrase(t *testing.T) {
	sealed, err := Seal("correct horse battery staple", testMnemonic)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Unseal("wrong passphrase", sealed); err == nil {
		t.Fatal("expected wrong passphrase to fail authentication")
	}
}

func TestSeal_ProducesDistinctCiphertextsForSameInput(t *testing.T) {
	a, err := Seal("pw", testMnemonic)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Seal("pw", testMnemonic)
	if err != nil {
		t.Fatal(err)
	}
	if a.Nonce == b.Nonce {
		t.Fatal("expected independent seals to use independent nonces")
	}
}

func TestMarshalUnmarshal_RoundTrips(t *testing.T) {
	sealed, err := Seal("pw", testMnemonic)
	if err != nil {
		t.Fatal(err)
	}
	data, err := sealed.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	restored, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Unseal("pw", restored)
	if err != nil {
		t.Fatal(err)
	}
	if got != testMnemonic {
		t.Fatalf("mnemonic = %q, want %q", got, testMnemonic)
	}
}
