package identity

import (
	"crypto/ed25519"
	"encoding/binary"

	"nzcore/internal/errs"
	"nzcore/internal/primitives"
	"nzcore/internal/suite"
)

// Root is the triple {public_key, private_key, chain_id} derived once from
// a mnemonic and held immutable for the identity's lifetime. PrivateKey
// must be zeroized via Destroy when the owning facade is destroyed.
type Root struct {
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
	ChainID    string // 64-character lowercase hex
}

// Destroy zeroizes the private key buffer. Subsequent use of the zeroed
// PrivateKey for signing will fail cryptographic verification, which is the
// intended fail-closed behavior once a facade has been destroyed.
func (r *Root) Destroy() {
	if r == nil {
		return
	}
	primitives.Zero(r.PrivateKey)
}

// Derive runs the full mnemonic -> seed -> scrypt -> HKDF -> Ed25519 ->
// chain id pipeline described by the wire-form spec. The empty BIP-39
// passphrase is mandatory: any deviation changes the derived identity.
func Derive(mnemonic string) (*Root, error) {
	if err := suite.ValidateMnemonic(mnemonic); err != nil {
		return nil, err
	}

	seed, err := suite.ToSeed(mnemonic)
	if err != nil {
		return nil, err
	}
	defer primitives.Zero(seed)

	scryptKey, err := suite.Scrypt(seed, []byte(scryptSalt))
	if err != nil {
		return nil, err
	}
	defer primitives.Zero(scryptKey)

	derived, err := suite.HKDFDerive(scryptKey, []byte(hkdfSalt), []byte(hkdfInfo), 32)
	if err != nil {
		return nil, err
	}
	defer primitives.Zero(derived)

	pub, priv, err := suite.KeypairFromSeed(derived)
	if err != nil {
		return nil, err
	}

	chainID := deriveChainID(pub)

	return &Root{PublicKey: pub, PrivateKey: priv, ChainID: chainID}, nil
}

// deriveChainID computes chain_id = hex(domain_hash(chainIDDomain, pub)).
func deriveChainID(pub ed25519.PublicKey) string {
	h := suite.DomainHash(chainIDDomain, pub)
	return primitives.Hex(h[:])
}

// DeriveDocumentID computes
// id = hex(domain_hash(documentDomain, chain_id || parent_hash || u32_le(logical_time))).
//
// logical_time is encoded as 4 little-endian bytes, bounding practical
// logical time at 2^32-1 for id-derivation purposes. Callers must reject a
// larger logical time before calling this.
func DeriveDocumentID(chainID, parentHashHex string, logicalTime uint64) (string, error) {
	if logicalTime > 0xFFFFFFFF {
		return "", errs.Newf(errs.LogicalTimeViolation, "logical_time %d exceeds 32-bit id-derivation bound", logicalTime)
	}
	chainIDBytes, err := primitives.DecodeHex(chainID)
	if err != nil {
		return "", errs.Newf(errs.InvalidKey, "chain_id is not valid hex: %v", err)
	}
	parentHashBytes, err := primitives.DecodeHex(parentHashHex)
	if err != nil {
		return "", errs.Newf(errs.InvalidKey, "parent_hash is not valid hex: %v", err)
	}
	var lt [4]byte
	binary.LittleEndian.PutUint32(lt[:], uint32(logicalTime))

	input := primitives.Merge(chainIDBytes, parentHashBytes, lt[:])
	h := suite.DomainHash(documentDomain, input)
	return primitives.Hex(h[:]), nil
}
