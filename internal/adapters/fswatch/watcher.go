package fswatch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"shootlist/internal/application"
	"shootlist/internal/domain"
	"shootlist/internal/ports"
)

// Watcher implements ports.FolderWatcher using OS file notifications.
// A background goroutine filters raw notifications down to one event
// per newly created image file and hands them over on a channel.
type Watcher struct {
	extensions map[string]bool

	mu      sync.Mutex
	fw      *fsnotify.Watcher
	started bool
	stopped bool
}

// Ensure Watcher implements the port
var _ ports.FolderWatcher = (*Watcher)(nil)

// NewWatcher creates a watcher that fires for files with one of the
// given extensions (compared case-insensitively)
func NewWatcher(extensions []string) *Watcher {
	exts := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		exts[strings.ToLower(ext)] = true
	}
	return &Watcher{extensions: exts}
}

// Start begins monitoring dir and returns the event channel. The
// channel is closed when Stop is called.
func (w *Watcher) Start(dir string) (<-chan domain.PhotoEvent, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return nil, &application.WatchError{Dir: dir, Err: fmt.Errorf("watcher already started")}
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, &application.WatchError{Dir: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &application.WatchError{Dir: dir, Err: fmt.Errorf("not a directory")}
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &application.WatchError{Dir: dir, Err: err}
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, &application.WatchError{Dir: dir, Err: err}
	}

	w.fw = fw
	w.started = true

	events := make(chan domain.PhotoEvent, 16)
	go w.run(fw, events)
	return events, nil
}

// run owns the outgoing channel: it closes it once the underlying
// watcher shuts down. seen guards against double-fire for one path
// within a single watch.
func (w *Watcher) run(fw *fsnotify.Watcher, events chan<- domain.PhotoEvent) {
	defer close(events)
	seen := make(map[string]bool)

	for {
		select {
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if !ev.Op.Has(fsnotify.Create) {
				continue
			}
			if !w.extensions[strings.ToLower(filepath.Ext(ev.Name))] {
				continue
			}
			if seen[ev.Name] {
				continue
			}
			seen[ev.Name] = true
			events <- domain.PhotoEvent{Path: ev.Name, DetectedAt: time.Now()}

		case _, ok := <-fw.Errors:
			if !ok {
				return
			}
			// Transient notification errors are not actionable here;
			// the session keeps waiting for the expected file.
		}
	}
}

// Stop releases the OS watch handle and closes the event channel.
// Safe to call more than once, including before Start.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fw == nil || w.stopped {
		return nil
	}
	w.stopped = true
	return w.fw.Close()
}
