package policy

import (
	"context"
	"log/slog"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"budget-scheduler/internal/core/domain"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher is a port.PolicySource that reloads the policy file when it
// changes on disk. Edits that fail to parse or validate are logged and the
// last good policy stays in effect.
type Watcher struct {
	path     string
	logger   *slog.Logger
	debounce time.Duration
	cur      current

	subsMu sync.Mutex
	subs   []func(domain.Policy)
}

// NewWatcher loads path once and returns a Watcher serving it.
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	p, err := Load(path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	w := &Watcher{path: path, logger: logger, debounce: defaultDebounce}
	w.cur.set(p)
	return w, nil
}

// Policy returns the last valid policy.
func (w *Watcher) Policy() domain.Policy { return w.cur.get() }

// OnChange registers fn to be called after a new policy is committed.
func (w *Watcher) OnChange(fn func(domain.Policy)) {
	w.subsMu.Lock()
	w.subs = append(w.subs, fn)
	w.subsMu.Unlock()
}

// Reload re-reads the file and commits it when it is valid and differs
// from the current policy. It reports whether a new policy was committed.
func (w *Watcher) Reload() (bool, error) {
	p, err := Load(w.path)
	if err != nil {
		return false, err
	}
	if reflect.DeepEqual(p, w.cur.get()) {
		return false, nil
	}
	w.cur.set(p)

	w.subsMu.Lock()
	subs := append([]func(domain.Policy){}, w.subs...)
	w.subsMu.Unlock()
	for _, fn := range subs {
		fn(p)
	}
	return true, nil
}

// Watch blocks until ctx is done, reloading the policy on file events.
// The parent directory is watched so editors that replace the file by
// rename are picked up.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	dir, file := filepath.Dir(w.path), filepath.Base(w.path)
	if err = fw.Add(dir); err != nil {
		return err
	}
	w.logger.Debug("policy watcher started", slog.String("path", w.path))

	var (
		timerMu sync.Mutex
		timer   *time.Timer
	)
	defer func() {
		timerMu.Lock()
		if timer != nil {
			timer.Stop()
		}
		timerMu.Unlock()
	}()
	schedule := func() {
		timerMu.Lock()
		defer timerMu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(w.debounce, w.reloadAndLog)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !strings.EqualFold(filepath.Base(ev.Name), file) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				schedule()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("policy watch error", slog.Any("error", err))
		}
	}
}

func (w *Watcher) reloadAndLog() {
	changed, err := w.Reload()
	switch {
	case err != nil:
		w.logger.Warn("policy rejected, keeping previous", slog.String("path", w.path), slog.Any("error", err))
	case changed:
		p := w.Policy()
		w.logger.Info("policy reloaded",
			slog.String("path", w.path),
			slog.String("timezone", p.Timezone),
			slog.Bool("dry_run", p.DryRun),
		)
	}
}
