package suite

import (
	"crypto/ed25519"
	"crypto/rand"

	"nzcore/internal/errs"
)

// SignatureSize is the fixed length of an Ed25519 signature under this suite.
const SignatureSize = ed25519.SignatureSize // 64

// GenerateEd25519 returns a fresh, randomly seeded Ed25519 key pair. It is
// not used on the identity-derivation path (that path is deterministic from
// a seed via KeypairFromSeed) but is useful for tests and throwaway keys.
func GenerateEd25519() (pub ed25519.PublicKey, priv ed25519.PrivateKey, err error) {
	return ed25519.GenerateKey(rand.Reader)
}

// KeypairFromSeed derives an Ed25519 key pair deterministically from a
// 32-byte seed, as required by the identity-derivation pipeline.
func KeypairFromSeed(seed []byte) (pub ed25519.PublicKey, priv ed25519.PrivateKey, err error) {
	if len(seed) != ed25519.SeedSize {
		return nil, nil, errs.Newf(errs.InvalidKey, "ed25519 seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	priv = ed25519.NewKeyFromSeed(seed)
	pub, ok := priv.Public().(ed25519.PublicKey)
	if !ok {
		return nil, nil, errs.New(errs.InvalidKey, "ed25519 backend returned unexpected public key type")
	}
	return pub, priv, nil
}

// Sign signs msg with priv and requires the backend to return exactly a
// 64-byte signature, per spec.
func Sign(priv ed25519.PrivateKey, msg []byte) ([]byte, error) {
	sig := ed25519.Sign(priv, msg)
	if len(sig) != SignatureSize {
		return nil, errs.Newf(errs.InvalidSignature, "signing backend returned %d bytes, want %d", len(sig), SignatureSize)
	}
	return sig, nil
}

// Verify checks sig over msg against pub.
func Verify(pub ed25519.PublicKey, msg, sig []byte) bool {
	if len(sig) != SignatureSize {
		return false
	}
	return ed25519.Verify(pub, msg, sig)
}
