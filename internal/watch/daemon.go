package watch

import (
	"context"
	"sync"
	"time"

	"ksc/internal/log"
)

// Handler processes the watched file. Errors are logged and do not stop the
// daemon.
type Handler func(path string) error

// DaemonStatus represents the current status of the daemon
type DaemonStatus struct {
	Running      bool      // Whether the daemon is currently active
	Path         string    // File being watched
	LastActivity time.Time // Time of the last run
	Runs         int       // Total handler runs
	Failures     int       // Runs that returned an error
}

// Daemon runs a handler once up front and again every time the watched file
// changes.
type Daemon struct {
	watcher *Watcher
	handler Handler

	runs         int
	failures     int
	lastActivity time.Time
	running      bool

	mutex sync.RWMutex
}

// NewDaemon watches path with the given debounce and calls handler on change.
func NewDaemon(path string, debounce time.Duration, handler Handler) (*Daemon, error) {
	w, err := New(path, WithDebounce(debounce))
	if err != nil {
		return nil, err
	}
	return &Daemon{watcher: w, handler: handler}, nil
}

// Run blocks until ctx is done.
func (d *Daemon) Run(ctx context.Context) error {
	if err := d.watcher.Start(ctx); err != nil {
		d.watcher.Stop()
		return err
	}
	defer d.watcher.Stop()

	d.mutex.Lock()
	d.running = true
	d.mutex.Unlock()
	defer func() {
		d.mutex.Lock()
		d.running = false
		d.mutex.Unlock()
	}()

	d.process()
	for range d.watcher.Events() {
		d.process()
	}
	return nil
}

func (d *Daemon) process() {
	path := d.watcher.Path()
	err := d.handler(path)

	d.mutex.Lock()
	d.runs++
	d.lastActivity = time.Now()
	if err != nil {
		d.failures++
	}
	d.mutex.Unlock()

	if err != nil {
		log.LogWithError(err).With(log.F("file", path)).Warn("Conversion failed")
		return
	}
	log.LogWithFields(log.F("file", path)).Debug("Converted")
}

// Status returns the current daemon status
func (d *Daemon) Status() DaemonStatus {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return DaemonStatus{
		Running:      d.running,
		Path:         d.watcher.Path(),
		LastActivity: d.lastActivity,
		Runs:         d.runs,
		Failures:     d.failures,
	}
}
