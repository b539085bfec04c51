package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Store publishes the current page. Readers get an immutable snapshot.
type Store struct {
	mu   sync.RWMutex
	page *Page
}

// NewStore creates a store serving the given page.
func NewStore(page *Page) *Store {
	return &Store{page: page}
}

// Page returns the current snapshot.
func (s *Store) Page() *Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page
}

// Set swaps in a page that has already been validated.
func (s *Store) Set(page *Page) {
	s.mu.Lock()
	s.page = page
	s.mu.Unlock()
}

// Parse overlays a YAML document on the default copy, then sanitizes and
// validates the result. Fields absent from the document keep their defaults.
// Rich text that sanitizes to nothing counts as missing.
func Parse(data []byte) (*Page, error) {
	page := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(page); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode content overlay: %w", err)
	}
	page.Sanitize()
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return page, nil
}

// Load reads the overlay at path and swaps it in. On error the previous page stays.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read content file %s: %w", path, err)
	}
	page, err := Parse(data)
	if err != nil {
		return fmt.Errorf("content file %s: %w", path, err)
	}

	s.Set(page)
	return nil
}

// Watch reloads the overlay whenever it changes, until ctx is cancelled.
// The parent directory is watched so editors that replace the file are seen.
func (s *Store) Watch(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	target := filepath.Clean(path)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				slog.Debug("Content watcher stopped", "path", target)
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := s.Load(target); err != nil {
					slog.Error("Failed to reload content, keeping previous page", "path", target, "error", err)
					continue
				}
				slog.Info("Reloaded page content", "path", target)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("Content watcher error", "error", err)
			}
		}
	}()

	return nil
}
