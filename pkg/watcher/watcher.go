package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DrawingWatcher watches an opened drawing file and triggers a reload
// callback when it changes on disk. Editors often emit several write
// events in quick succession, so callbacks are debounced.
type DrawingWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	path     string
	onChange func(string)
	debounce time.Duration
	timer    *time.Timer
}

// NewDrawingWatcher creates a watcher with the given debounce window
func NewDrawingWatcher(debounce time.Duration) (*DrawingWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &DrawingWatcher{
		watcher:  watcher,
		debounce: debounce,
	}, nil
}

// Watch replaces the watched drawing file. The callback fires after the
// file has been written and the debounce window has passed.
func (dw *DrawingWatcher) Watch(file string, onChange func(string)) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}

	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.path != "" {
		if err := dw.watcher.Remove(dw.path); err != nil {
			return fmt.Errorf("failed to unwatch %s: %w", dw.path, err)
		}
	}
	if err := dw.watcher.Add(absPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	dw.path = absPath
	dw.onChange = onChange
	return nil
}

// Start begins delivering change events in a background goroutine
func (dw *DrawingWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-dw.watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					dw.handleChange(event.Name)
				}

			case err, ok := <-dw.watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("Watcher error: %v\n", err)
			}
		}
	}()
}

// handleChange resets the debounce timer for the watched file
func (dw *DrawingWatcher) handleChange(path string) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if path != dw.path || dw.onChange == nil {
		return
	}

	if dw.timer != nil {
		dw.timer.Stop()
	}
	callback := dw.onChange
	dw.timer = time.AfterFunc(dw.debounce, func() {
		callback(path)
	})
}

// Close stops the watcher
func (dw *DrawingWatcher) Close() error {
	return dw.watcher.Close()
}
