package usecase

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	// ErrDownloadInProgress means the same file is already being streamed
	// to another client.
	ErrDownloadInProgress = errors.New("download already in progress")
	// ErrResumeNotFound means the requested file does not exist, usually
	// because it was already downloaded and deleted.
	ErrResumeNotFound = errors.New("resume not found")
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// FileStore owns the generated-PDF directory: filename generation, retention
// pruning, and the download-then-delete state machine guarded by a Registry.
type FileStore struct {
	dir      string
	keep     int
	registry *Registry
	log      zerolog.Logger
	now      func() time.Time
}

func NewFileStore(dir string, keep int, reg *Registry, log zerolog.Logger) (*FileStore, error) {
	if keep <= 0 {
		keep = 5
	}
	if reg == nil {
		reg = NewRegistry()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage dir: %w", err)
	}
	return &FileStore{dir: dir, keep: keep, registry: reg, log: log, now: time.Now}, nil
}

// Save writes a freshly converted PDF under a generated filename of the form
// {epoch-millis}_{0-999}_{sanitized-name}_resume.pdf and returns the name.
func (s *FileStore) Save(name string, pdf []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating storage dir: %w", err)
	}
	filename := fmt.Sprintf("%d_%d_%s_resume.pdf", s.now().UnixMilli(), rand.Intn(1000), sanitizeName(name))
	if err := os.WriteFile(filepath.Join(s.dir, filename), pdf, 0o644); err != nil {
		return "", fmt.Errorf("writing pdf: %w", err)
	}
	return filename, nil
}

// sanitizeName collapses whitespace into underscores and drops path
// separator characters so the fragment is safe inside a filename.
func sanitizeName(name string) string {
	name = whitespaceRe.ReplaceAllString(strings.TrimSpace(name), "_")
	name = strings.ReplaceAll(name, "/", "")
	name = strings.ReplaceAll(name, "\\", "")
	return name
}

// Prune deletes every .pdf beyond the newest keep files, ordered by
// modification time. Deletion failures are logged, never fatal, and a file
// that is currently mid-download is left alone.
func (s *FileStore) Prune() {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.log.Warn().Err(err).Str("dir", s.dir).Msg("prune: listing storage dir failed")
		return
	}

	type pdfFile struct {
		name  string
		mtime time.Time
	}
	var files []pdfFile
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".pdf") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, pdfFile{name: e.Name(), mtime: info.ModTime()})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].mtime.After(files[j].mtime) })

	for _, f := range files[min(s.keep, len(files)):] {
		if s.registry.Contains(f.name) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, f.name)); err != nil {
			s.log.Warn().Err(err).Str("file", f.name).Msg("prune: delete failed")
		}
	}
}

// Download is a claimed, open generated file. Closing it always removes the
// file from disk and releases the registry claim, whatever happened to the
// stream.
type Download struct {
	Name string
	Size int64

	f     *os.File
	path  string
	store *FileStore
}

func (d *Download) Read(p []byte) (int, error) { return d.f.Read(p) }

func (d *Download) Close() error {
	if err := d.f.Close(); err != nil {
		d.store.log.Warn().Err(err).Str("file", d.Name).Msg("download: close failed")
	}
	if err := os.Remove(d.path); err != nil {
		d.store.log.Warn().Err(err).Str("file", d.Name).Msg("download: delete failed")
	}
	d.store.registry.Release(d.Name)
	return nil
}

var _ io.ReadCloser = (*Download)(nil)

// OpenDownload claims filename for a one-time download. It returns
// ErrDownloadInProgress when another download of the same file is in flight,
// and ErrResumeNotFound when the name is unsafe or the file is gone. A
// successful claim must be Closed to reach the terminal deleted state.
func (s *FileStore) OpenDownload(filename string) (*Download, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return nil, ErrResumeNotFound
	}

	if !s.registry.TryAcquire(filename) {
		return nil, ErrDownloadInProgress
	}

	path := filepath.Join(s.dir, filename)
	f, err := os.Open(path)
	if err != nil {
		s.registry.Release(filename)
		return nil, ErrResumeNotFound
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		s.registry.Release(filename)
		return nil, ErrResumeNotFound
	}

	return &Download{Name: filename, Size: info.Size(), f: f, path: path, store: s}, nil
}
