package fork

import (
	"sort"

	"nzcore/internal/document"
	"nzcore/internal/errs"
)

// Info records a detected fork: two or more documents that share a
// parent_hash. Resolution is never performed automatically.
type Info struct {
	ParentHash  string   `json:"parent_hash"`
	DocumentIDs []string `json:"document_ids"`
	DetectedAt  int64    `json:"detected_at"`
	Resolved    bool     `json:"resolved"`
	Resolution  string   `json:"resolution,omitempty"`
}

// Scan groups docs by parent_hash and emits a fork entry for every group of
// size >= 2, stamped with the highest logical_time in the group. Entries are
// returned sorted by detected_at ascending.
func Scan(docs []document.Document) []Info {
	groups := make(map[string][]document.Document)
	for _, d := range docs {
		groups[d.ParentHash] = append(groups[d.ParentHash], d)
	}

	var forks []Info
	for parentHash, group := range groups {
		if len(group) < 2 {
			continue
		}
		ids := make([]string, 0, len(group))
		var maxTime int64
		for _, d := range group {
			ids = append(ids, d.ID)
			if d.LogicalTime > maxTime {
				maxTime = d.LogicalTime
			}
		}
		sort.Strings(ids)
		forks = append(forks, Info{
			ParentHash:  parentHash,
			DocumentIDs: ids,
			DetectedAt:  maxTime,
			Resolved:    false,
		})
	}

	sort.Slice(forks, func(i, j int) bool { return forks[i].DetectedAt < forks[j].DetectedAt })
	return forks
}

// CreateMergeDocument returns a partially built "merge" document referencing
// conflictHashes, annotated with resolution. The caller (the facade) still
// owns chain_id, parent_hash, logical_time, created_at and signing; this
// helper never marks the fork it addresses as resolved.
func CreateMergeDocument(conflictHashes []string, resolution string) (*document.Builder, error) {
	if len(conflictHashes) < 2 {
		return nil, errs.New(errs.ForkDetected, "merge document requires at least two conflicting hashes")
	}
	b := document.New().Type("merge")
	if _, err := b.AddField("conflict_hashes", conflictHashes); err != nil {
		return nil, err
	}
	if _, err := b.AddField("resolution", resolution); err != nil {
		return nil, err
	}
	return b, nil
}

// IsForkActive reports whether more than one of f's branches still appears
// in currentDocs (by id) or is referenced by one of them (as a parent_hash),
// meaning the fork has not yet converged onto a single branch.
func IsForkActive(f Info, currentDocs []document.Document) bool {
	present := make(map[string]bool, len(currentDocs))
	referenced := make(map[string]bool, len(currentDocs))
	for _, d := range currentDocs {
		present[d.ID] = true
		referenced[d.ParentHash] = true
	}

	live := 0
	for _, branch := range f.DocumentIDs {
		if present[branch] || referenced[branch] {
			live++
		}
	}
	return live > 1
}

// ResolveFork returns a copy of f with resolved set and resolution recorded.
// It never mutates f and the core never calls this on its own initiative.
func ResolveFork(f Info, resolutionDocID string) Info {
	cp := f
	cp.Resolved = true
	cp.Resolution = resolutionDocID
	return cp
}
