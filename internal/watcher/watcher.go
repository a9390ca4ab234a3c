package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Operation represents a file system operation type.
type Operation int

const (
	// OpCreate indicates a new file or directory was created.
	OpCreate Operation = iota
	// OpModify indicates an existing file was modified.
	OpModify
	// OpDelete indicates a file or directory was deleted.
	OpDelete
	// OpRename indicates a file or directory was renamed.
	OpRename
)

// String returns a human-readable representation of the operation.
func (op Operation) String() string {
	switch op {
	case OpCreate:
		return "CREATE"
	case OpModify:
		return "MODIFY"
	case OpDelete:
		return "DELETE"
	case OpRename:
		return "RENAME"
	default:
		return "UNKNOWN"
	}
}

// FileEvent represents a file system event.
type FileEvent struct {
	// Path is the path to the file or directory.
	Path string

	// Operation is the type of file system operation.
	Operation Operation

	// Timestamp is when the event was detected.
	Timestamp time.Time
}

// Options configures the watcher behavior.
type Options struct {
	// DebounceWindow is the time to wait before emitting coalesced events.
	// Default: 500ms
	DebounceWindow time.Duration

	// Extensions restricts events to files with these extensions
	// (e.g. ".txt", ".md", ".json"). Empty means all files.
	Extensions []string
}

// DefaultOptions returns the default watcher options.
func DefaultOptions() Options {
	return Options{
		DebounceWindow: 500 * time.Millisecond,
	}
}

// CorpusWatcher watches a document file or directory and emits debounced
// event batches, one batch per burst of changes.
type CorpusWatcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	opts      Options
	errors    chan error
	stopCh    chan struct{}
	stopOnce  sync.Once
}

// New creates a corpus watcher.
func New(opts Options) (*CorpusWatcher, error) {
	if opts.DebounceWindow <= 0 {
		opts.DebounceWindow = DefaultOptions().DebounceWindow
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	return &CorpusWatcher{
		fsWatcher: fsw,
		debouncer: NewDebouncer(opts.DebounceWindow),
		opts:      opts,
		errors:    make(chan error, 10),
		stopCh:    make(chan struct{}),
	}, nil
}

// Start begins watching path (a file or a directory, recursively) until the
// context is cancelled or Stop is called. Blocks while watching.
func (w *CorpusWatcher) Start(ctx context.Context, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve absolute path: %w", err)
	}

	if err := w.addRecursive(absPath); err != nil {
		return fmt.Errorf("add watch targets: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			_ = w.Stop()
			return ctx.Err()
		case <-w.stopCh:
			return nil
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.emitError(err)
		}
	}
}

// Events returns batched, debounced file events.
func (w *CorpusWatcher) Events() <-chan []FileEvent {
	return w.debouncer.Output()
}

// Errors returns non-fatal watcher errors.
func (w *CorpusWatcher) Errors() <-chan error {
	return w.errors
}

// Stop stops the watcher and releases resources. Safe to call repeatedly.
func (w *CorpusWatcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopCh)
		err = w.fsWatcher.Close()
		w.debouncer.Stop()
		close(w.errors)
	})
	return err
}

func (w *CorpusWatcher) addRecursive(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return w.fsWatcher.Add(path)
	}

	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && p != path {
				return filepath.SkipDir
			}
			return w.fsWatcher.Add(p)
		}
		return nil
	})
}

func (w *CorpusWatcher) handleEvent(event fsnotify.Event) {
	if !w.wantsFile(event.Name) {
		// A newly created sub-directory still needs a watch.
		if event.Op.Has(fsnotify.Create) {
			if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
				_ = w.fsWatcher.Add(event.Name)
			}
		}
		return
	}

	var op Operation
	switch {
	case event.Op.Has(fsnotify.Create):
		op = OpCreate
	case event.Op.Has(fsnotify.Write):
		op = OpModify
	case event.Op.Has(fsnotify.Remove):
		op = OpDelete
	case event.Op.Has(fsnotify.Rename):
		op = OpRename
	default:
		return
	}

	w.debouncer.Add(FileEvent{
		Path:      event.Name,
		Operation: op,
		Timestamp: time.Now(),
	})
}

// wantsFile reports whether the path matches the configured extensions.
func (w *CorpusWatcher) wantsFile(path string) bool {
	if len(w.opts.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range w.opts.Extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

func (w *CorpusWatcher) emitError(err error) {
	select {
	case w.errors <- err:
	default:
	}
}
