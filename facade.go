package nzcore

import (
	"crypto/ed25519"
	"sync"
	"time"

	"nzcore/internal/canonical"
	"nzcore/internal/chain"
	"nzcore/internal/document"
	"nzcore/internal/errs"
	"nzcore/internal/fork"
	"nzcore/internal/identity"
	"nzcore/internal/logging"
	"nzcore/internal/primitives"
	"nzcore/internal/suite"
	"nzcore/internal/telemetry"
	"nzcore/internal/validator"
)

// Document, ForkInfo, and ValidationResult are re-exported so callers never
// need to import the internal packages that define them.
type (
	Document        = document.Document
	ForkInfo        = fork.Info
	ValidationResult = validator.Result
)

// ChainState is a read-only snapshot of a Facade's chain, returned by
// GetChainState.
type ChainState struct {
	ChainID     string
	LastHash    string
	LogicalTime int64
	Documents   []Document
	Forks       []ForkInfo
}

// Facade is the single owning handle for one identity's key material and
// document chain. Each method holds an internal mutex for its duration, so
// single calls are serialized; a sequence of calls is not atomic, and callers
// that need one must serialize their own access.
type Facade struct {
	mu        sync.Mutex
	destroyed bool

	mnemonic string
	root     *identity.Root
	chain    *chain.Manager
	policy   validator.PolicyEvaluator
	logger   *logging.Logger
	metrics  *telemetry.Metrics
}

// Create derives an identity from mnemonic and constructs a fresh, empty
// chain under it. On any failure, partially constructed state is
// discarded; there is nothing left to destroy.
func Create(mnemonic string, opts ...Option) (*Facade, error) {
	o := resolveOptions(opts)

	root, err := identity.Derive(mnemonic)
	if err != nil {
		return nil, err
	}

	chainID := root.ChainID
	if o.chainID != "" {
		chainID = o.chainID
	}

	mgr, err := chain.New(chainID, o.initialTime)
	if err != nil {
		root.Destroy()
		return nil, err
	}

	f := &Facade{
		mnemonic: mnemonic,
		root:     root,
		chain:    mgr,
		policy:   o.policy,
		logger:   o.logger,
		metrics:  o.metrics,
	}
	f.logger.Info("facade created", "chain_id", chainID)
	return f, nil
}

// checkAlive returns the precondition error every operation raises once
// Destroy has run. Caller must hold f.mu.
func (f *Facade) checkAlive() error {
	if f.destroyed {
		return errs.New(errs.ValidationFailed, "facade has been destroyed")
	}
	return nil
}

// CreateDocument builds, signs, and appends a new document of the given
// type with an optional JSON-marshalable payload. A failure leaves the
// chain state unchanged.
func (f *Facade) CreateDocument(docType string, payload any) (Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkAlive(); err != nil {
		return Document{}, err
	}

	// Append is what actually ticks the clock (on successful insert), so the
	// prospective logical_time here is Current()+1, not a Tick() of our own —
	// ticking here too would advance the clock twice per document.
	t := f.chain.Clock().Current() + 1
	parent := f.chain.LastHash()

	b := document.New().
		Type(docType).
		ChainID(f.chain.ChainID()).
		ParentHash(parent).
		LogicalTime(t).
		CreatedAt(time.Now().UTC().Format(time.RFC3339))

	if payload != nil {
		var perr error
		b, perr = b.Payload(payload)
		if perr != nil {
			return Document{}, perr
		}
	}

	doc, err := b.Build()
	if err != nil {
		return Document{}, err
	}

	canonicalStr, err := canonical.PrepareForSigning(doc)
	if err != nil {
		return Document{}, err
	}
	sig, err := suite.Sign(f.root.PrivateKey, []byte(canonicalStr))
	if err != nil {
		return Document{}, err
	}
	doc.Signature = primitives.Hex(sig)

	if err := f.chain.Append(doc); err != nil {
		return Document{}, err
	}

	f.metrics.DocumentAppended(docType)
	f.logger.Info("document appended", "id", doc.ID, "type", doc.Type, "logical_time", doc.LogicalTime)
	return doc, nil
}

// VerifyDocument runs the three-layer validator against doc, trusting only
// this facade's own public key and using its current logical time.
func (f *Facade) VerifyDocument(doc Document) ValidationResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.destroyed {
		return ValidationResult{Errors: []string{"facade has been destroyed"}}
	}

	current := f.chain.Clock().Current()
	res := validator.Validate(doc, validator.Context{
		TrustedKeys: []ed25519.PublicKey{f.root.PublicKey},
		CurrentTime: &current,
		Policy:      f.policy,
	})
	f.metrics.VerificationOutcome(res.Final)
	if !res.Final {
		f.logger.Warn("document failed verification", "id", doc.ID, "errors", res.Errors)
	}
	return res
}

// GetChainState returns a snapshot of the chain: chain id, last hash,
// current logical time, all documents, and all detected forks.
func (f *Facade) GetChainState() (ChainState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkAlive(); err != nil {
		return ChainState{}, err
	}
	return ChainState{
		ChainID:     f.chain.ChainID(),
		LastHash:    f.chain.LastHash(),
		LogicalTime: f.chain.Clock().Current(),
		Documents:   f.chain.Documents(),
		Forks:       f.chain.Forks(),
	}, nil
}

// DetectFork scans the current document set for forks, stamping each entry
// with the current logical time and leaving it unresolved.
func (f *Facade) DetectFork() ([]ForkInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkAlive(); err != nil {
		return nil, err
	}
	docs := f.chain.Documents()
	current := f.chain.Clock().Current()
	forks := fork.Scan(docs)
	for i := range forks {
		forks[i].DetectedAt = current
		forks[i].Resolved = false
		f.metrics.ForkDetected()
		f.logger.Warn("fork detected", "parent_hash", forks[i].ParentHash, "document_ids", forks[i].DocumentIDs)
	}
	return forks, nil
}

// ExportIdentity returns the mnemonic and chain id backing this facade.
// Callers that persist the mnemonic are responsible for sealing it (see
// internal/vault) since nzcore applies no protection of its own once the
// caller holds a copy.
func (f *Facade) ExportIdentity() (mnemonic, chainID string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.checkAlive(); err != nil {
		return "", "", err
	}
	return f.mnemonic, f.chain.ChainID(), nil
}

// ExportState serializes the full chain state to a self-describing byte
// blob suitable for ImportState.
func (f *Facade) ExportState() ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.checkAlive(); err != nil {
		return nil, err
	}
	return f.chain.Export()
}

// ImportState replaces the facade's chain state with the one encoded in
// blob, after confirming its chain id matches. On failure the prior state
// is left completely intact.
func (f *Facade) ImportState(blob []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.checkAlive(); err != nil {
		return err
	}
	mgr, err := chain.Import(blob, f.chain.ChainID())
	if err != nil {
		return err
	}
	f.chain = mgr
	return nil
}

// GetPublicKey returns the identity's Ed25519 public key.
func (f *Facade) GetPublicKey() (ed25519.PublicKey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.checkAlive(); err != nil {
		return nil, err
	}
	return f.root.PublicKey, nil
}

// GetPublicKeyHex returns the identity's public key, hex-encoded.
func (f *Facade) GetPublicKeyHex() (string, error) {
	pub, err := f.GetPublicKey()
	if err != nil {
		return "", err
	}
	return primitives.Hex(pub), nil
}

// GetChainID returns the facade's chain id.
func (f *Facade) GetChainID() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.checkAlive(); err != nil {
		return "", err
	}
	return f.chain.ChainID(), nil
}

// Destroy zeroizes the private key buffer and drops the facade's references
// to the mnemonic, identity, chain, and policy; the logger and metrics are
// kept. Every subsequent operation fails with a precondition error.
func (f *Facade) Destroy() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.destroyed {
		return
	}
	f.root.Destroy()
	// Go strings are immutable; there is no backing buffer to zero in
	// place. Dropping the reference is the most a string-typed field can do.
	f.mnemonic = ""
	f.root = nil
	f.chain = nil
	f.policy = nil
	f.destroyed = true
	f.logger.Info("facade destroyed")
}
