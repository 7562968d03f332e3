package store

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher surfaces profile-file changes made outside this process (another
// instance, a sync tool, a stray editor) as EventExternal notifications.
// Delivery is best effort; the store's own writes will also echo through
// here, which is harmless because subscribers are reload-idempotent.
type Watcher struct {
	fsw    *fsnotify.Watcher
	store  *Store
	log    *zap.Logger
	stopCh chan struct{}
	doneCh chan struct{}
}

// debounce window for bursts of writes to the same file.
const watchDebounce = 250 * time.Millisecond

// Watch starts a directory watcher over the store's data dir. Close it to
// stop. Failure to start is not fatal to the application; callers may log
// and continue without external-change notifications.
func Watch(s *Store, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(s.dir); err != nil {
		fsw.Close() //nolint:errcheck
		return nil, err
	}
	w := &Watcher{
		fsw:    fsw,
		store:  s,
		log:    log,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	close(w.stopCh)
	err := w.fsw.Close()
	<-w.doneCh
	return err
}

func (w *Watcher) run() {
	defer close(w.doneCh)
	lastSeen := make(map[string]time.Time)
	for {
		select {
		case <-w.stopCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			name := filepath.Base(ev.Name)
			if !strings.HasPrefix(name, keyPrefix) || !strings.HasSuffix(name, keySuffix) {
				continue
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			now := time.Now()
			if t, ok := lastSeen[name]; ok && now.Sub(t) < watchDebounce {
				continue
			}
			lastSeen[name] = now
			id := strings.TrimSuffix(strings.TrimPrefix(name, keyPrefix), keySuffix)
			w.store.notifier.Publish(Event{Kind: EventExternal, ProfileID: id})
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch data dir", zap.Error(err))
		}
	}
}
