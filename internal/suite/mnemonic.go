package suite

import (
	"strings"

	"github.com/tyler-smith/go-bip39"

	"nzcore/internal/errs"
)

// mnemonicEntropyBits is the entropy used by GenerateMnemonic, yielding a
// 24-word phrase per spec.
const mnemonicEntropyBits = 256

// validWordCounts enumerates the BIP-39 phrase lengths this suite accepts.
var validWordCounts = map[int]bool{12: true, 15: true, 18: true, 21: true, 24: true}

// GenerateMnemonic returns a fresh 24-word BIP-39 English mnemonic.
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", errs.Newf(errs.InvalidMnemonic, "entropy: %v", err)
	}
	m, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errs.Newf(errs.InvalidMnemonic, "mnemonic: %v", err)
	}
	return m, nil
}

// ValidateMnemonic checks word count and the embedded BIP-39 checksum.
func ValidateMnemonic(mnemonic string) error {
	words := strings.Fields(mnemonic)
	if !validWordCounts[len(words)] {
		return errs.Newf(errs.InvalidMnemonic, "mnemonic has %d words, want one of 12/15/18/21/24", len(words))
	}
	if !bip39.IsMnemonicValid(mnemonic) {
		return errs.New(errs.InvalidMnemonic, "mnemonic checksum invalid")
	}
	return nil
}

// ToSeed derives the 64-byte BIP-39 seed from mnemonic with the mandatory
// empty passphrase. Any non-empty passphrase would silently derive a
// different identity, so this suite never accepts one.
func ToSeed(mnemonic string) ([]byte, error) {
	if err := ValidateMnemonic(mnemonic); err != nil {
		return nil, err
	}
	return bip39.NewSeed(mnemonic, ""), nil
}

// ToEntropy recovers the original entropy bytes backing mnemonic.
func ToEntropy(mnemonic string) ([]byte, error) {
	if err := ValidateMnemonic(mnemonic); err != nil {
		return nil, err
	}
	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, errs.Newf(errs.InvalidMnemonic, "entropy recovery: %v", err)
	}
	return entropy, nil
}

// FromEntropy rebuilds a mnemonic from raw entropy bytes.
func FromEntropy(entropy []byte) (string, error) {
	m, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errs.Newf(errs.InvalidMnemonic, "mnemonic from entropy: %v", err)
	}
	return m, nil
}

// maskPlaceholder is the bullet character substituted for each letter of
// every word after the third.
const maskPlaceholder = '•'

// MaskMnemonic keeps the first three words verbatim and replaces every
// character of the remaining words with maskPlaceholder, preserving word
// boundaries and each word's original length. Whether the leaked per-word
// length is an acceptable privacy tradeoff is left to the embedding
// application, per spec.
func MaskMnemonic(mnemonic string) string {
	words := strings.Fields(mnemonic)
	for i := 3; i < len(words); i++ {
		words[i] = strings.Repeat(string(maskPlaceholder), len([]rune(words[i])))
	}
	return strings.Join(words, " ")
}
