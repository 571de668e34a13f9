package model

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk representation of a catalog.
type catalogFile struct {
	Models []ModelConfig `json:"models" yaml:"models" toml:"models"`
}

// LoadCatalog reads a catalog from a YAML, TOML, or JSON file, chosen by
// extension. Entry order in the file becomes catalog order.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var file catalogFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		err = toml.Unmarshal(data, &file)
	case ".json":
		err = json.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (want .yaml, .toml, or .json)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(file.Models) == 0 {
		return nil, fmt.Errorf("catalog %s contains no models", path)
	}
	return NewCatalog(file.Models...)
}

// Watcher keeps a file-backed catalog current, reloading it when the file
// changes. Catalog is safe to call concurrently with reloads.
type Watcher struct {
	path      string
	fw        *fsnotify.Watcher
	logger    *slog.Logger
	current   atomic.Pointer[Catalog]
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// Watch loads the catalog at path and starts watching for changes. A reload
// that fails to parse keeps the previous catalog and logs a warning; the
// watcher never serves a broken table.
func Watch(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	catalog, err := LoadCatalog(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory rather than the file: editors and config
	// management tools replace files on save, which silently drops a
	// watch pointed at the file itself.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w := &Watcher{
		path:   path,
		fw:     fw,
		logger: logger,
		done:   make(chan struct{}),
	}
	w.current.Store(catalog)
	go w.loop()
	return w, nil
}

// Catalog returns the most recently loaded catalog.
func (w *Watcher) Catalog() *Catalog {
	return w.current.Load()
}

// Path returns the file being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		w.closeErr = w.fw.Close()
	})
	return w.closeErr
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			catalog, err := LoadCatalog(w.path)
			if err != nil {
				w.logger.Warn("catalog reload failed, keeping previous table",
					slog.String("path", w.path),
					slog.Any("error", err))
				continue
			}
			w.current.Store(catalog)
			w.logger.Info("catalog reloaded",
				slog.String("path", w.path),
				slog.Int("models", catalog.Len()))
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("catalog watch error",
				slog.String("path", w.path),
				slog.Any("error", err))
		}
	}
}
