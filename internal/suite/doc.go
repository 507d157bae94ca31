// Package suite implements the fixed cryptographic suite identified by the
// string "nzcore-crypto-01".
//
// Contents
//
//   - BLAKE2b-256 hashing, a domain-separated variant, and a double-hash
//   - Ed25519 key generation, signing, and verification (64-byte signatures
//     only; anything else is a backend error)
//   - scrypt as the memory-hard identity KDF (N=32768, r=8, p=1, dkLen=64)
//   - HKDF-SHA256 as the expansion KDF, zeroizing its input key material
//   - BIP-39 mnemonic generation, validation, seed derivation, and masking
//
// Every function that touches secret material zeroizes its intermediates
// before returning, using internal/primitives.Zero.
package suite

// ID is the fixed identifier for this cryptographic suite. It is compared
// against a document's crypto_suite field and never varies at runtime.
const ID = "nzcore-crypto-01"
