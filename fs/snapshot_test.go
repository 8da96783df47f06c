package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/frontpage"
	"github.com/fwojciec/frontpage/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("writes markup and returns the path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewSnapshotStore(dir)

		path, err := store.Save("<html><body>drifted layout</body></html>")

		require.NoError(t, err)
		assert.Equal(t, dir, filepath.Dir(path))
		assert.True(t, filepath.Base(path) != "", "path must name a file")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>drifted layout</body></html>", string(content))
	})

	t.Run("names files page-<hash>.html", func(t *testing.T) {
		t.Parallel()

		store := fs.NewSnapshotStore(t.TempDir())

		path, err := store.Save("<html></html>")

		require.NoError(t, err)
		name := filepath.Base(path)
		assert.Regexp(t, `^page-[0-9a-f]{16}\.html$`, name)
	})

	t.Run("same markup maps to the same file", func(t *testing.T) {
		t.Parallel()

		store := fs.NewSnapshotStore(t.TempDir())

		first, err := store.Save("<html>same</html>")
		require.NoError(t, err)
		second, err := store.Save("<html>same</html>")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("different markup maps to different files", func(t *testing.T) {
		t.Parallel()

		store := fs.NewSnapshotStore(t.TempDir())

		first, err := store.Save("<html>one</html>")
		require.NoError(t, err)
		second, err := store.Save("<html>two</html>")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("creates the directory when missing", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "snapshots", "nested")
		store := fs.NewSnapshotStore(dir)

		path, err := store.Save("<html></html>")

		require.NoError(t, err)
		_, err = os.Stat(path)
		require.NoError(t, err)
	})
}

func TestSnapshotStore_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ frontpage.SnapshotStore = &fs.SnapshotStore{}
}
