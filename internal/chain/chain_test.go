package chain

import (
	"testing"

	"nzcore/internal/document"
	"nzcore/internal/identity"
)

const testChainID = "26b0b83e7281be3b117658b6f2636d0368cad3d74f22243428f5401a4b70897e"

func buildDoc(t *testing.T, chainID, parentHash string, logicalTime int64) document.Document {
	t.Helper()
	id, err := identity.DeriveDocumentID(chainID, parentHash, uint64(logicalTime))
	if err != nil {
		t.Fatal(err)
	}
	d, err := document.New().
		Type("event").
		ID(id).
		ChainID(chainID).
		ParentHash(parentHash).
		LogicalTime(logicalTime).
		CreatedAt("2026-08-02T00:00:00Z").
		Build()
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestAppend_RejectsChainIDMismatch(t *testing.T) {
	m, err := New(testChainID, 1)
	if err != nil {
		t.Fatal(err)
	}
	const otherChainID = "1111111111111111111111111111111111111111111111111111111111111111"
	doc := buildDoc(t, otherChainID, ZeroHash, 1)
	if err := m.Append(doc); err == nil {
		t.Fatal("expected chain_id mismatch to be rejected")
	}
}

func TestAppend_LinksHashesAndTicksClock(t *testing.T) {
	m, err := New(testChainID, 1)
	if err != nil {
		t.Fatal(err)
	}
	d1 := buildDoc(t, testChainID, ZeroHash, m.Clock().Current()+1)
	if err := m.Append(d1); err != nil {
		t.Fatal(err)
	}
	if m.LastHash() != d1.ID {
		t.Fatalf("last_hash = %q, want %q", m.LastHash(), d1.ID)
	}

	d2 := buildDoc(t, testChainID, d1.ID, m.Clock().Current()+1)
	if err := m.Append(d2); err != nil {
		t.Fatal(err)
	}
	if m.LastHash() != d2.ID {
		t.Fatalf("last_hash = %q, want %q", m.LastHash(), d2.ID)
	}
	if !m.VerifyIntegrity() {
		t.Fatal("expected a well-linked chain to verify")
	}
}

func TestAppend_DetectsForkOnDivergentParentHash(t *testing.T) {
	m, err := New(testChainID, 1)
	if err != nil {
		t.Fatal(err)
	}
	d1 := buildDoc(t, testChainID, ZeroHash, 2)
	if err := m.Append(d1); err != nil {
		t.Fatal(err)
	}
	d2a := buildDoc(t, testChainID, d1.ID, 3)
	if err := m.Append(d2a); err != nil {
		t.Fatal(err)
	}
	// A second document also claiming parent d1, appended out of band
	// (parent_hash == d1.ID != current last_hash) triggers fork detection.
	d2b := buildDoc(t, testChainID, d1.ID, 4)
	if err := m.Append(d2b); err != nil {
		t.Fatal(err)
	}

	forks := m.Forks()
	if len(forks) != 1 {
		t.Fatalf("expected 1 fork, got %d", len(forks))
	}
	if forks[0].ParentHash != d1.ID {
		t.Fatalf("fork parent_hash = %q, want %q", forks[0].ParentHash, d1.ID)
	}
	if len(forks[0].DocumentIDs) != 2 {
		t.Fatalf("expected 2 conflicting ids, got %d", len(forks[0].DocumentIDs))
	}
}

func TestVerifyIntegrity_RejectsBrokenLinkage(t *testing.T) {
	m, err := New(testChainID, 1)
	if err != nil {
		t.Fatal(err)
	}
	d1 := buildDoc(t, testChainID, ZeroHash, 2)
	if err := m.Append(d1); err != nil {
		t.Fatal(err)
	}
	// A document whose parent_hash does not reference any prior id.
	orphan := buildDoc(t, testChainID, "deadbeef", 3)
	m.docs[orphan.ID] = orphan
	m.order = append(m.order, orphan.ID)

	if m.VerifyIntegrity() {
		t.Fatal("expected broken linkage to fail integrity verification")
	}
}

func TestExportImport_RoundTrips(t *testing.T) {
	m, err := New(testChainID, 1)
	if err != nil {
		t.Fatal(err)
	}
	d1 := buildDoc(t, testChainID, ZeroHash, 2)
	if err := m.Append(d1); err != nil {
		t.Fatal(err)
	}
	d2 := buildDoc(t, testChainID, d1.ID, 3)
	if err := m.Append(d2); err != nil {
		t.Fatal(err)
	}

	blob, err := m.Export()
	if err != nil {
		t.Fatal(err)
	}

	restored, err := Import(blob, testChainID)
	if err != nil {
		t.Fatal(err)
	}
	if restored.LastHash() != m.LastHash() {
		t.Fatalf("last_hash mismatch after round trip: got %q, want %q", restored.LastHash(), m.LastHash())
	}
	if restored.Clock().Current() != m.Clock().Current() {
		t.Fatalf("clock mismatch after round trip: got %d, want %d", restored.Clock().Current(), m.Clock().Current())
	}
	if len(restored.Documents()) != len(m.Documents()) {
		t.Fatalf("document count mismatch: got %d, want %d", len(restored.Documents()), len(m.Documents()))
	}
}

func TestImport_RejectsChainIDMismatch(t *testing.T) {
	m, err := New(testChainID, 1)
	if err != nil {
		t.Fatal(err)
	}
	blob, err := m.Export()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Import(blob, "some-other-chain-id"); err == nil {
		t.Fatal("expected chain_id mismatch on import to be rejected")
	}
}

func TestList_Paginates(t *testing.T) {
	m, err := New(testChainID, 1)
	if err != nil {
		t.Fatal(err)
	}
	prev := ZeroHash
	for i := int64(2); i <= 5; i++ {
		d := buildDoc(t, testChainID, prev, i)
		if err := m.Append(d); err != nil {
			t.Fatal(err)
		}
		prev = d.ID
	}

	page, total, hasMore := m.List(2, 0)
	if total != 4 || len(page) != 2 || !hasMore {
		t.Fatalf("got len=%d total=%d hasMore=%v", len(page), total, hasMore)
	}
	page2, _, hasMore2 := m.List(2, 2)
	if len(page2) != 2 || hasMore2 {
		t.Fatalf("got len=%d hasMore=%v", len(page2), hasMore2)
	}
}
