// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce coalesces the bursts of events editors produce on save.
var debounce = 100 * time.Millisecond

// Watcher reloads a scene file whenever it changes on disk.
type Watcher struct {
	path string
	fs   *fsnotify.Watcher
}

// NewWatcher starts watching the directory containing path. Changes
// made after NewWatcher returns are reported by Run.
func NewWatcher(path string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("scene: create watcher: %w", err)
	}
	// Editors often replace the file, so watch its directory.
	if err := fs.Add(filepath.Dir(path)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("scene: watch directory: %w", err)
	}
	return &Watcher{path: path, fs: fs}, nil
}

// Run calls fn with the reloaded scene, or the load error, after every
// change to the file. fn runs on the calling goroutine. Run returns
// nil when ctx is done and closes the watcher.
func (w *Watcher) Run(ctx context.Context, fn func(*Scene, error)) error {
	defer w.fs.Close()
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	reload := make(chan struct{}, 1)
	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		case <-reload:
			fn(Load(w.path))
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			fn(nil, fmt.Errorf("scene: watch: %w", err))
		}
	}
}

// Close stops watching without running.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
