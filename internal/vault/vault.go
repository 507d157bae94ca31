package vault

import (
	"crypto/rand"
	"encoding/json"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"nzcore/internal/errs"
	"nzcore/internal/primitives"
)

const (
	keyBytes  = 32
	saltBytes = 16

	argon2Time    = 1
	argon2Memory  = 1 << 16 // 64 MiB
	argon2Threads = 4
)

// Sealed is the persisted, passphrase-protected form of a mnemonic.
type Sealed struct {
	Salt       string `json:"salt"`       // hex
	Nonce      string `json:"nonce"`      // hex
	Ciphertext string `json:"ciphertext"` // hex
}

// deriveKEK derives a key-encryption key from passphrase and salt via
// Argon2id.
func deriveKEK(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, argon2Time, argon2Memory, argon2Threads, keyBytes)
}

// Seal encrypts mnemonic under a key derived from passphrase, returning a
// self-contained Sealed blob. The byte copy of mnemonic used as plaintext is
// zeroized after sealing; the mnemonic string itself is immutable and is not.
func Seal(passphrase, mnemonic string) (*Sealed, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, errs.Newf(errs.InvalidKey, "generating vault salt: %v", err)
	}

	kek := deriveKEK(passphrase, salt)
	defer primitives.Zero(kek)

	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return nil, errs.Newf(errs.InvalidKey, "constructing aead: %v", err)
	}

	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, errs.Newf(errs.InvalidKey, "generating vault nonce: %v", err)
	}

	plaintext := []byte(mnemonic)
	ciphertext := aead.Seal(nil, nonce, plaintext, nil)
	primitives.Zero(plaintext)

	return &Sealed{
		Salt:       primitives.Hex(salt),
		Nonce:      primitives.Hex(nonce),
		Ciphertext: primitives.Hex(ciphertext),
	}, nil
}

// Unseal decrypts s with a key derived from passphrase, returning the
// original mnemonic. A wrong passphrase fails AEAD authentication.
func Unseal(passphrase string, s *Sealed) (string, error) {
	salt, err := primitives.DecodeHex(s.Salt)
	if err != nil {
		return "", errs.Newf(errs.InvalidKey, "vault salt: %v", err)
	}
	nonce, err := primitives.DecodeHex(s.Nonce)
	if err != nil {
		return "", errs.Newf(errs.InvalidKey, "vault nonce: %v", err)
	}
	ciphertext, err := primitives.DecodeHex(s.Ciphertext)
	if err != nil {
		return "", errs.Newf(errs.InvalidKey, "vault ciphertext: %v", err)
	}

	kek := deriveKEK(passphrase, salt)
	defer primitives.Zero(kek)

	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return "", errs.Newf(errs.InvalidKey, "constructing aead: %v", err)
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", errs.New(errs.InvalidKey, "vault authentication failed: wrong passphrase or corrupted blob")
	}
	defer primitives.Zero(plaintext)
	return string(plaintext), nil
}

// Marshal and Unmarshal round-trip a Sealed blob through JSON, for embedding
// in a larger file or wire payload.
func (s *Sealed) Marshal() ([]byte, error) { return json.Marshal(s) }

func Unmarshal(data []byte) (*Sealed, error) {
	var s Sealed
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errs.Newf(errs.ValidationFailed, "vault blob: %v", err)
	}
	return &s, nil
}
