// Package vault seals and unseals a mnemonic at rest behind a
// passphrase-derived key, using Argon2id for key derivation and
// ChaCha20-Poly1305 for authenticated encryption — the same pairing
// Ciphera uses to protect its identity secrets on disk.
//
// The vault is an ambient, optional convenience: the core's determinism and
// signature invariants never depend on it, and a caller is free to hold the
// mnemonic in memory instead.
package vault
