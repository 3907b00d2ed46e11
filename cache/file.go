package cache

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
)

// loggerPtr stores the package logger. The parent package propagates its
// logger here so cache warnings share the caller's handler configuration.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// nopHandler discards all records; Enabled returns false so disabled
// logging costs nothing.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// SetLogger configures the logger used for cache read warnings.
// Pass nil to silence the package (the default).
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

func logger() *slog.Logger { return loggerPtr.Load() }

// FileStore persists one Entry as an opaque gob blob at a fixed path.
//
// Concurrent passes writing the same path get last-writer-wins semantics;
// there is no locking.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path. The file need
// not exist yet; a missing file reads as a cache miss.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Get implements Store. Unreadable or corrupt files are logged at warn
// level and read as a miss, so callers fall back to a full rebuild.
func (s *FileStore) Get(hash uint64) (Entry, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger().Warn("list cache unreadable, rebuilding", "path", s.path, "error", err)
		}
		return Entry{}, false
	}
	var e Entry
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&e); err != nil {
		logger().Warn("list cache corrupt, rebuilding", "path", s.path, "error", err)
		return Entry{}, false
	}
	if !e.Usable(hash) {
		logger().Debug("list cache stale", "path", s.path, "want", hash, "have", e.Hash)
		return Entry{}, false
	}
	return e, true
}

// Put implements Store. The entry is encoded to a buffer first so a
// failed encode never truncates an existing cache file.
func (s *FileStore) Put(e Entry) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(e); err != nil {
		return fmt.Errorf("cache: encode entry: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cache: create cache directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("cache: write %s: %w", s.path, err)
	}
	return nil
}
