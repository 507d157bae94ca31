// Package identity implements the deterministic mnemonic-to-keypair
// pipeline and the chain/document id derivations built on top of it.
//
// The pipeline is entirely deterministic: the same mnemonic always yields
// the same public key and chain id, in this process or any other. No
// randomness, wall-clock time, or external state enters it.
package identity

// Domain-separation constants, fixed by the wire-form spec. They are ASCII
// and used as UTF-8 bytes; none of them are ever derived at runtime.
const (
	scryptSalt     = "nzcore-identity-v1"
	hkdfSalt       = "nzcore-hkdf-salt"
	hkdfInfo       = "ed25519-root-key"
	chainIDDomain  = "nzcore-nzcore-crypto-01-chain"
	documentDomain = "nzcore-nzcore-crypto-01-document"
)
