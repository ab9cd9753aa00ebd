// Package scratch manages the run-scoped scratch directory.
//
// The directory holds preview image bytes keyed by URL so that
// highlighting the same entry twice does not fetch it again. It is
// created once per run and must be removed on every exit path; Remove is
// idempotent so it can be both deferred and called from a signal path.
package scratch

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/sha3"
)

// ErrRemoved is returned when the directory is used after Remove.
var ErrRemoved = errors.New("scratch directory already removed")

// Dir is a scratch directory.
type Dir struct {
	path  string
	owned bool

	mu      sync.Mutex
	removed bool
	once    sync.Once
	err     error
}

// New creates a fresh directory below base. An empty or missing base
// falls back to the system temporary directory.
func New(base string) (*Dir, error) {
	if base != "" {
		if err := os.MkdirAll(base, 0o700); err != nil {
			base = ""
		}
	}
	path, err := os.MkdirTemp(base, "imgscan-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	return &Dir{path: path, owned: true}, nil
}

// Open attaches to a directory created by another process of the same
// run. Remove never deletes a directory obtained this way.
func Open(path string) (*Dir, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scratch directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("failed to open scratch directory: %s is not a directory", path)
	}
	return &Dir{path: path}, nil
}

// Path returns the directory path.
func (d *Dir) Path() string {
	return d.path
}

// Key returns the file name used for url: the hex SHA3-256 of the URL.
func Key(url string) string {
	sum := sha3.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}

// Load returns the bytes stored for url.
func (d *Dir) Load(url string) ([]byte, bool) {
	if d.isRemoved() {
		return nil, false
	}
	data, err := os.ReadFile(filepath.Join(d.path, Key(url)))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Store saves data for url. The file appears complete or not at all.
func (d *Dir) Store(url string, data []byte) error {
	if d.isRemoved() {
		return ErrRemoved
	}

	tmp, err := os.CreateTemp(d.path, ".store-*")
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", url, err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to store %s: %w", url, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to store %s: %w", url, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(d.path, Key(url))); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to store %s: %w", url, err)
	}
	return nil
}

// Remove deletes the directory and everything in it. Only the first call
// does any work; later calls return the first result.
func (d *Dir) Remove() error {
	d.once.Do(func() {
		d.mu.Lock()
		d.removed = true
		d.mu.Unlock()
		if d.owned {
			d.err = os.RemoveAll(d.path)
		}
	})
	return d.err
}

func (d *Dir) isRemoved() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.removed
}
