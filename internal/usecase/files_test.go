package usecase

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir(), 5, NewRegistry(), zerolog.Nop())
	require.NoError(t, err)
	return store
}

func TestSaveFilenamePattern(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Save("Grace Hopper", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d+_\d+_Grace_Hopper_resume\.pdf$`), name)

	data, err := os.ReadFile(filepath.Join(store.dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), data)
}

func TestSaveSanitizesNameFragment(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Save("  a/b\\c  d ", []byte("x"))
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d+_\d+_abc_d_resume\.pdf$`), name)
}

// saveSpread writes n PDFs with distinct creation and modification times so
// retention ordering is unambiguous. Returns names oldest first.
func saveSpread(t *testing.T, store *FileStore, n int) []string {
	t.Helper()
	base := time.Now().Add(-time.Hour)
	var names []string
	for i := 0; i < n; i++ {
		ts := base.Add(time.Duration(i) * time.Minute)
		store.now = func() time.Time { return ts }
		name, err := store.Save("User", []byte("pdf"))
		require.NoError(t, err)
		require.NoError(t, os.Chtimes(filepath.Join(store.dir, name), ts, ts))
		names = append(names, name)
	}
	store.now = time.Now
	return names
}

func TestPruneKeepsFiveNewest(t *testing.T) {
	store := newTestStore(t)

	names := saveSpread(t, store, 7)

	store.Prune()

	entries, err := os.ReadDir(store.dir)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	// the two oldest are gone
	for _, old := range names[:2] {
		_, err := os.Stat(filepath.Join(store.dir, old))
		assert.True(t, os.IsNotExist(err), "expected %s to be pruned", old)
	}
	for _, kept := range names[2:] {
		_, err := os.Stat(filepath.Join(store.dir, kept))
		assert.NoError(t, err)
	}
}

func TestPruneSkipsActiveDownload(t *testing.T) {
	store := newTestStore(t)

	names := saveSpread(t, store, 6)

	// oldest file is mid-download
	dl, err := store.OpenDownload(names[0])
	require.NoError(t, err)

	store.Prune()

	_, err = os.Stat(filepath.Join(store.dir, names[0]))
	assert.NoError(t, err, "mid-download file must not be pruned")

	require.NoError(t, dl.Close())
}

func TestOpenDownloadLifecycle(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Save("Ada", []byte("%PDF-data"))
	require.NoError(t, err)

	dl, err := store.OpenDownload(name)
	require.NoError(t, err)
	assert.Equal(t, int64(len("%PDF-data")), dl.Size)

	// duplicate download rejected while the first is in flight
	_, err = store.OpenDownload(name)
	assert.ErrorIs(t, err, ErrDownloadInProgress)

	data, err := io.ReadAll(dl)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-data"), data)

	require.NoError(t, dl.Close())

	// terminal state: the file is gone and the claim released
	_, err = os.Stat(filepath.Join(store.dir, name))
	assert.True(t, os.IsNotExist(err))
	_, err = store.OpenDownload(name)
	assert.ErrorIs(t, err, ErrResumeNotFound)
}

func TestOpenDownloadMissingFileReleasesClaim(t *testing.T) {
	store := newTestStore(t)

	_, err := store.OpenDownload("nope.pdf")
	assert.ErrorIs(t, err, ErrResumeNotFound)

	// the failed attempt must not leave a stale claim behind
	assert.False(t, store.registry.Contains("nope.pdf"))
}

func TestOpenDownloadRejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"../secret.pdf", "a/b.pdf", ".hidden.pdf", ""} {
		_, err := store.OpenDownload(name)
		assert.ErrorIs(t, err, ErrResumeNotFound, "name %q", name)
	}
}

func TestRegistryCheckAndSet(t *testing.T) {
	reg := NewRegistry()

	assert.True(t, reg.TryAcquire("f.pdf"))
	assert.False(t, reg.TryAcquire("f.pdf"))
	assert.True(t, reg.Contains("f.pdf"))

	reg.Release("f.pdf")
	assert.False(t, reg.Contains("f.pdf"))
	assert.True(t, reg.TryAcquire("f.pdf"))
}
