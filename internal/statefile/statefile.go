package statefile

import (
	"errors"
	"os"
	"path/filepath"

	"nzcore/internal/errs"
)

// Write stores data at path via a temp file in the same directory, fsync'd
// and then renamed into place, so a crash mid-write never leaves a
// truncated or partially-written file at path.
func Write(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return errs.Newf(errs.ValidationFailed, "creating temp state file: %v", err)
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return errs.Newf(errs.ValidationFailed, "writing temp state file: %v", err)
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return errs.Newf(errs.ValidationFailed, "chmod temp state file: %v", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return errs.Newf(errs.ValidationFailed, "fsync temp state file: %v", err)
	}
	if err := f.Close(); err != nil {
		return errs.Newf(errs.ValidationFailed, "closing temp state file: %v", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return errs.Newf(errs.ValidationFailed, "renaming state file into place: %v", err)
	}
	return nil
}

// Read loads path. A missing file returns (nil, nil), not an error — a
// caller that has never exported state should treat that as "no state yet".
func Read(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Newf(errs.ValidationFailed, "reading state file: %v", err)
	}
	return b, nil
}
