// Package watcher re-runs a job when its input files change.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher debounces change events of a set of files into callbacks.
// All files share one debounce timer: a burst of changes across several
// files fires once, calling the callback of the last changed file.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	log       *slog.Logger
	mu        sync.Mutex
	callbacks map[string]func(string)
	debounce  time.Duration
	timer     *time.Timer
	pending   string
}

// NewFileWatcher creates a new file watcher
func NewFileWatcher(debounce time.Duration, log *slog.Logger) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}

	return &FileWatcher{
		watcher:   watcher,
		log:       log,
		callbacks: make(map[string]func(string)),
		debounce:  debounce,
	}, nil
}

// Watch registers callback for changes to any of files
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		if err := fw.watcher.Add(absPath); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}

		fw.callbacks[absPath] = callback
		fw.log.Debug("watching", "path", absPath)
	}

	return nil
}

// Files returns the watched paths
func (fw *FileWatcher) Files() []string {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	files := make([]string, 0, len(fw.callbacks))
	for file := range fw.callbacks {
		files = append(files, file)
	}
	return files
}

// Start dispatches events until ctx is done or the watcher is closed
func (fw *FileWatcher) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				fw.stopTimers()
				return

			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}

				// editors often replace files instead of writing them in place
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					fw.handleFileChange(event.Name)
				}
				if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					fw.rewatch(event.Name)
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fw.log.Warn("watcher error", "err", err)
			}
		}
	}()
}

// handleFileChange handles a file change event with debouncing
func (fw *FileWatcher) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, exists := fw.callbacks[filePath]; !exists {
		return
	}

	fw.log.Debug("change detected", "path", filePath, "debounce", fw.debounce)
	fw.pending = filePath
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, fw.fire)
}

// fire runs the callback of the last changed file
func (fw *FileWatcher) fire() {
	fw.mu.Lock()
	path := fw.pending
	callback := fw.callbacks[path]
	fw.pending = ""
	fw.timer = nil
	fw.mu.Unlock()

	if callback != nil {
		callback(path)
	}
}

// rewatch re-adds a path that was replaced, so later writes are still seen
func (fw *FileWatcher) rewatch(filePath string) {
	fw.mu.Lock()
	_, exists := fw.callbacks[filePath]
	fw.mu.Unlock()
	if !exists {
		return
	}

	// the replacement may not exist yet
	if err := fw.watcher.Add(filePath); err != nil {
		fw.log.Debug("rewatch failed", "path", filePath, "err", err)
		return
	}
	fw.handleFileChange(filePath)
}

func (fw *FileWatcher) stopTimers() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.timer != nil {
		fw.timer.Stop()
		fw.timer = nil
	}
	fw.pending = ""
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	fw.stopTimers()
	return fw.watcher.Close()
}

// RemoveAll removes all watched files
func (fw *FileWatcher) RemoveAll() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for file := range fw.callbacks {
		if err := fw.watcher.Remove(file); err != nil {
			return err
		}
	}

	fw.callbacks = make(map[string]func(string))
	if fw.timer != nil {
		fw.timer.Stop()
		fw.timer = nil
	}
	fw.pending = ""
	return nil
}
