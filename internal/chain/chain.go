package chain

import (
	"encoding/json"
	"sort"
	"sync"

	"nzcore/internal/clock"
	"nzcore/internal/document"
	"nzcore/internal/errs"
	"nzcore/internal/fork"
	"nzcore/internal/identity"
)

// ZeroHash is the sentinel parent_hash/last_hash of an empty chain: 64 ASCII
// zeros, matching the reference implementation's "0"*64.
const ZeroHash = "0000000000000000000000000000000000000000000000000000000000000000"

// Manager owns the authoritative, hash-linked document table for one chain
// id. All operations are sequential; concurrent callers must take their own
// lock, but Manager also serializes internally against its own bookkeeping
// (last_hash, clock, fork cache) so a single instance is safe to share
// across goroutines that don't require atomicity across multiple calls.
type Manager struct {
	mu       sync.Mutex
	chainID  string
	lastHash string
	clock    *clock.Clock
	docs     map[string]document.Document
	order    []string // insertion order, for deterministic export
	forks    []fork.Info
	forksOK  bool // true when forks reflects the current doc set
}

// New constructs an empty Manager for chainID, with its clock starting at
// initialTime.
func New(chainID string, initialTime int64) (*Manager, error) {
	c, err := clock.New(initialTime)
	if err != nil {
		return nil, err
	}
	return &Manager{
		chainID:  chainID,
		lastHash: ZeroHash,
		clock:    c,
		docs:     make(map[string]document.Document),
	}, nil
}

// ChainID returns the manager's chain id.
func (m *Manager) ChainID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.chainID
}

// LastHash returns the id of the most recently appended document, or the
// zero hash if the chain is empty.
func (m *Manager) LastHash() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastHash
}

// Clock returns the manager's owned logical clock.
func (m *Manager) Clock() *clock.Clock { return m.clock }

// Append runs the §4.6 append protocol: reject on chain id mismatch, detect
// a fork if parent_hash has diverged from last_hash, insert the document,
// advance last_hash, invalidate the fork cache, and tick the clock.
func (m *Manager) Append(doc document.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if doc.ChainID != m.chainID {
		return errs.Newf(errs.ValidationFailed, "document chain_id %q does not match chain %q", doc.ChainID, m.chainID)
	}

	if doc.ParentHash != m.lastHash {
		var sameParent []string
		for _, id := range m.order {
			if m.docs[id].ParentHash == doc.ParentHash {
				sameParent = append(sameParent, id)
			}
		}
		if len(sameParent) > 0 {
			ids := append(sameParent, doc.ID)
			sort.Strings(ids)
			m.forks = append(m.forks, fork.Info{
				ParentHash:  doc.ParentHash,
				DocumentIDs: ids,
				DetectedAt:  m.clock.Current(),
				Resolved:    false,
			})
		}
	}

	m.docs[doc.ID] = doc
	m.order = append(m.order, doc.ID)
	m.lastHash = doc.ID
	m.forksOK = false
	if _, err := m.clock.Tick(); err != nil {
		return err
	}
	return nil
}

// documentsLocked returns all documents sorted by logical_time. Caller must
// hold m.mu.
func (m *Manager) documentsLocked() []document.Document {
	out := make([]document.Document, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.docs[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LogicalTime < out[j].LogicalTime })
	return out
}

// Documents returns all documents sorted by logical_time.
func (m *Manager) Documents() []document.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.documentsLocked()
}

// Get returns the document with the given id, if present.
func (m *Manager) Get(id string) (document.Document, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.docs[id]
	return d, ok
}

// Forks returns the manager's cached fork table, rescanning the full
// document set only when it has been invalidated by an append.
func (m *Manager) Forks() []fork.Info {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.forksOK {
		m.forks = fork.Scan(m.documentsLocked())
		m.forksOK = true
	}
	return m.forks
}

// VerifyIntegrity sorts documents by logical_time and walks the chain,
// requiring parent_hash continuity and recomputed ids at every step.
func (m *Manager) VerifyIntegrity() bool {
	m.mu.Lock()
	docs := m.documentsLocked()
	chainID := m.chainID
	m.mu.Unlock()

	prev := ZeroHash
	for _, d := range docs {
		if d.ParentHash != prev {
			return false
		}
		wantID, err := identity.DeriveDocumentID(chainID, d.ParentHash, uint64(d.LogicalTime))
		if err != nil || wantID != d.ID {
			return false
		}
		prev = d.ID
	}
	return true
}

// page is the JSON wire form of a List window. List itself returns the
// documents, total, and has_more values separately, not a page.
type page struct {
	Documents []document.Document `json:"documents"`
	Total     int                 `json:"total"`
	HasMore   bool                `json:"has_more"`
}

// List returns a pagination window over the documents sorted by
// logical_time, applying limit/offset. A non-positive limit returns every
// remaining document.
func (m *Manager) List(limit, offset int) ([]document.Document, int, bool) {
	m.mu.Lock()
	docs := m.documentsLocked()
	m.mu.Unlock()

	total := len(docs)
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return nil, total, false
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return docs[offset:end], total, end < total
}

// ByType returns documents of the given type, sorted by logical_time.
func (m *Manager) ByType(docType string) []document.Document {
	m.mu.Lock()
	docs := m.documentsLocked()
	m.mu.Unlock()

	var out []document.Document
	for _, d := range docs {
		if d.Type == docType {
			out = append(out, d)
		}
	}
	return out
}

// exportForm is the self-describing JSON blob produced by Export.
type exportForm struct {
	ChainID   string              `json:"chainId"`
	LastHash  string              `json:"lastHash"`
	Clock     json.RawMessage     `json:"clock"`
	Documents [][2]json.RawMessage `json:"documents"`
	Forks     [][2]json.RawMessage `json:"forks"`
}

// Export serializes the full chain state: chain id, last hash, clock,
// document table, and fork table.
func (m *Manager) Export() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	clockBytes, err := m.clock.MarshalJSON()
	if err != nil {
		return nil, err
	}

	docs := make([][2]json.RawMessage, 0, len(m.order))
	for _, id := range m.order {
		d := m.docs[id]
		idBytes, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		docBytes, err := json.Marshal(d)
		if err != nil {
			return nil, err
		}
		docs = append(docs, [2]json.RawMessage{idBytes, docBytes})
	}

	if !m.forksOK {
		m.forks = fork.Scan(m.documentsLocked())
		m.forksOK = true
	}
	forks := make([][2]json.RawMessage, 0, len(m.forks))
	for _, f := range m.forks {
		keyBytes, err := json.Marshal(f.ParentHash)
		if err != nil {
			return nil, err
		}
		valBytes, err := json.Marshal(f)
		if err != nil {
			return nil, err
		}
		forks = append(forks, [2]json.RawMessage{keyBytes, valBytes})
	}

	return json.Marshal(exportForm{
		ChainID:   m.chainID,
		LastHash:  m.lastHash,
		Clock:     clockBytes,
		Documents: docs,
		Forks:     forks,
	})
}

// Import rebuilds a Manager from a blob previously produced by Export. It
// rejects the blob if its chain id does not match expectedChainID.
func Import(blob []byte, expectedChainID string) (*Manager, error) {
	var ef exportForm
	if err := json.Unmarshal(blob, &ef); err != nil {
		return nil, errs.Newf(errs.ValidationFailed, "state blob is not valid JSON: %v", err)
	}
	if ef.ChainID != expectedChainID {
		return nil, errs.Newf(errs.ValidationFailed, "state chain_id %q does not match expected %q", ef.ChainID, expectedChainID)
	}

	var c clock.Clock
	if err := json.Unmarshal(ef.Clock, &c); err != nil {
		return nil, errs.Newf(errs.ValidationFailed, "state clock: %v", err)
	}

	m := &Manager{
		chainID:  ef.ChainID,
		lastHash: ef.LastHash,
		clock:    &c,
		docs:     make(map[string]document.Document, len(ef.Documents)),
	}
	for _, pair := range ef.Documents {
		var id string
		if err := json.Unmarshal(pair[0], &id); err != nil {
			return nil, errs.Newf(errs.ValidationFailed, "state document key: %v", err)
		}
		var d document.Document
		if err := json.Unmarshal(pair[1], &d); err != nil {
			return nil, errs.Newf(errs.ValidationFailed, "state document value: %v", err)
		}
		m.docs[id] = d
		m.order = append(m.order, id)
	}
	for _, pair := range ef.Forks {
		var f fork.Info
		if err := json.Unmarshal(pair[1], &f); err != nil {
			return nil, errs.Newf(errs.ValidationFailed, "state fork value: %v", err)
		}
		m.forks = append(m.forks, f)
	}
	m.forksOK = true
	return m, nil
}
