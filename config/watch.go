package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const settleDelay = 100 * time.Millisecond

// TuningWatcher reloads a tuning file whenever it changes on disk. Reloaded
// values arrive on Updates; parse failures are logged and skipped.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Updates chan Tuning
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchTuning starts watching path. The directory is watched rather than the
// file so that editors which replace the file on save are still seen.
func WatchTuning(path string) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		watcher: w,
		path:    filepath.Clean(path),
		Updates: make(chan Tuning, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

// Close stops the watcher. It is safe to call more than once.
func (tw *TuningWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		close(tw.closeCh)
		err = tw.watcher.Close()
		<-tw.done
		close(tw.Updates)
	})
	return err
}

func (tw *TuningWatcher) run() {
	defer close(tw.done)

	// Editors often truncate then write; reload once the file has been quiet
	// for the settle period.
	settle := time.NewTimer(time.Hour)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != tw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			settle.Reset(settleDelay)
		case <-settle.C:
			t, err := LoadTuning(tw.path)
			if err != nil {
				log.Printf("[config] reload failed: %v", err)
				continue
			}
			select {
			case <-tw.Updates:
			default:
			}
			select {
			case tw.Updates <- t:
			case <-tw.closeCh:
				return
			}
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[config] watch error: %v", err)
		case <-tw.closeCh:
			return
		}
	}
}
