package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"ksc/internal/errors"
	"ksc/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Event reports that the watched file was created or written.
type Event struct {
	Path      string
	Op        fsnotify.Op
	Timestamp time.Time
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce coalesces events arriving within d of each other into one.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// Watcher monitors a single file for changes using fsnotify. The parent
// directory is watched so that editors which replace the file on save are
// still seen.
type Watcher struct {
	path     string
	debounce time.Duration

	// Channel to deliver events, closed once the watcher stops
	events chan Event

	stopChan chan struct{}
	done     chan struct{}

	fsWatcher *fsnotify.Watcher

	mutex   sync.Mutex
	running bool
	stopped bool
}

// New creates a watcher for path, which must be an existing regular file.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.NewFileError("invalid path", path, errors.FileOperationFailed, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFileError("file not found", path, errors.FileNotFound, err)
		}
		return nil, errors.NewFileError("error accessing file", path, errors.FileAccessDenied, err)
	}
	if info.IsDir() {
		return nil, errors.NewFileError("is a directory", path, errors.FileOperationFailed, nil)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		_ = fsWatcher.Close()
		return nil, errors.NewFileError("failed to watch directory", filepath.Dir(abs), errors.FileOperationFailed, err)
	}

	w := &Watcher{
		path:      abs,
		events:    make(chan Event, 10),
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
		fsWatcher: fsWatcher,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns the channel that delivers change events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start begins watching. The watcher stops when ctx is done or Stop is
// called, whichever happens first.
func (w *Watcher) Start(ctx context.Context) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.stopped {
		return errors.New("watcher already stopped")
	}
	if w.running {
		return errors.New("watcher already running")
	}
	w.running = true

	go w.loop(ctx)
	log.LogWithFields(log.F("file", w.path)).Debug("Watching file")
	return nil
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)
	defer w.shutdown()

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending Event
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}

			if timerC != nil {
				pending.Op |= event.Op
			} else {
				pending = Event{Path: w.path, Op: event.Op}
			}
			if w.debounce <= 0 {
				w.send(pending)
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			w.send(pending)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithError(err).Error("fsnotify watcher error")

		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		}
	}
}

func (w *Watcher) send(ev Event) {
	ev.Timestamp = time.Now()
	// Never block the event loop on a slow reader.
	select {
	case w.events <- ev:
	default:
		log.LogWithFields(log.F("file", ev.Path)).Warn("Event channel is full, dropped event")
	}
}

func (w *Watcher) shutdown() {
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithError(err).Error("Error closing fsnotify watcher")
	}
	close(w.events)
}

// Stop halts the watcher and closes the Events channel. It is safe to call
// more than once.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	if w.stopped {
		w.mutex.Unlock()
		return
	}
	w.stopped = true
	running := w.running
	w.mutex.Unlock()

	close(w.stopChan)
	if running {
		<-w.done
		return
	}
	w.shutdown()
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if !w.running || w.stopped {
		return false
	}
	select {
	case <-w.done:
		return false
	default:
		return true
	}
}
