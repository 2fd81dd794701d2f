// Package watch regenerates reports when the contents of an audit folder
// change.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce collapses rapid writes (an export copying many photos)
// into one regeneration.
const DefaultDebounce = 500 * time.Millisecond

// Watcher observes a batch directory and its audit folders.
type Watcher struct {
	dir      string
	prefix   string
	debounce time.Duration
	onChange func(folder string)
	log      *zap.Logger

	fw      *fsnotify.Watcher
	pending map[string]time.Time
}

// New watches dir. onChange is called with the folder path once its
// contents have been quiet for debounce.
func New(dir, prefix string, debounce time.Duration, onChange func(folder string), log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		dir:      dir,
		prefix:   prefix,
		debounce: debounce,
		onChange: onChange,
		log:      log,
		fw:       fw,
		pending:  make(map[string]time.Time),
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		fw.Close()
		return nil, err
	}
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), prefix) {
			w.add(filepath.Join(dir, e.Name()))
		}
	}
	return w, nil
}

func (w *Watcher) add(folder string) {
	if err := w.fw.Add(folder); err != nil {
		w.log.Warn("watch failed", zap.String("folder", folder), zap.Error(err))
		return
	}
	w.log.Debug("watching", zap.String("folder", folder))
}

// Run blocks until ctx is done, then releases the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fw.Close()

	tick := w.debounce / 5
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			w.handle(ev)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watch error", zap.Error(err))
		case <-ticker.C:
			w.flush(time.Now())
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	name := filepath.Base(ev.Name)
	if strings.HasPrefix(name, ".") || ev.Op == fsnotify.Chmod {
		return
	}
	parent := filepath.Dir(ev.Name)

	if filepath.Clean(parent) == filepath.Clean(w.dir) {
		if !strings.HasPrefix(name, w.prefix) {
			return
		}
		if ev.Has(fsnotify.Create) {
			if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
				w.add(ev.Name)
				w.pending[ev.Name] = time.Now()
			}
		}
		return
	}
	w.pending[parent] = time.Now()
}

func (w *Watcher) flush(now time.Time) {
	for folder, last := range w.pending {
		if now.Sub(last) < w.debounce {
			continue
		}
		delete(w.pending, folder)
		if _, err := os.Stat(folder); err != nil {
			continue
		}
		w.log.Info("audit folder changed", zap.String("folder", folder))
		w.onChange(folder)
	}
}
