// Package nzcore is a personal autonomous Root of Trust: it turns a
// BIP-39 mnemonic into a deterministic Ed25519 identity and maintains a
// hash-linked, signed, linear document chain under that identity.
//
// A Facade is the single owning handle for one identity's chain state.
// Construct one with Create, append documents with CreateDocument, verify
// arbitrary documents with VerifyDocument, and release all key material
// with Destroy once the facade is no longer needed.
package nzcore
