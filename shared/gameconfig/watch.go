package gameconfig

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watcher reloads a settings file whenever it changes on disk. Settings that
// fail to parse are reported on Errors and do not replace the last good ones.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	Updates chan Settings
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// Watch starts watching path. The directory is watched rather than the file
// so editors that replace the file on save keep working.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	watcher := &Watcher{
		path:    abs,
		watcher: w,
		Updates: make(chan Settings, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Done is closed once Close has been called. Updates and Errors are never
// closed, so readers select on Done to stop.
func (w *Watcher) Done() <-chan struct{} {
	return w.closeCh
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// run reloads once the file has been quiet for watchDebounce, so a save that
// truncates and then writes is read only when complete.
func (w *Watcher) run() {
	var settle <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			settle = time.After(watchDebounce)
		case <-settle:
			settle = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	s, err := Load(w.path)
	if err != nil {
		w.sendError(err)
		return
	}
	log.Printf("[config] reloaded %s", w.path)
	select { // latest wins
	case <-w.Updates:
	default:
	}
	w.Updates <- s
}

func (w *Watcher) sendError(err error) {
	select {
	case w.Errors <- err:
	default:
		log.Printf("[config] watch error dropped: %v", err)
	}
}
