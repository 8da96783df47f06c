// Package fs provides file-based storage for page snapshots and saved
// articles.
package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/frontpage"
)

// Ensure SnapshotStore implements frontpage.SnapshotStore at compile time.
var _ frontpage.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore saves page markup that defeated every selector strategy,
// for offline inspection when a site's layout changes. File names are
// content-addressed, so saving the same markup twice writes one file.
type SnapshotStore struct {
	dir string
}

// NewSnapshotStore creates a store that writes snapshots under dir.
func NewSnapshotStore(dir string) *SnapshotStore {
	return &SnapshotStore{dir: dir}
}

// Save writes the markup to <dir>/page-<hash>.html and returns the path.
func (s *SnapshotStore) Save(markup string) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("page-%016x.html", xxhash.Sum64String(markup))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(markup), 0644); err != nil {
		return "", err
	}
	return path, nil
}
