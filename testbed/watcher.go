package testbed

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/opal/core"
)

// ShaderWatcher watches the shader source directory and reports changed
// files. GL work never happens here; the render loop drains Changed and
// rebuilds on its own thread.
type ShaderWatcher struct {
	fsnotify *fsnotify.Watcher
	done     chan struct{}

	// Changed carries the paths of modified shader sources, debounced.
	Changed chan string
}

// NewShaderWatcher starts watching dir.
func NewShaderWatcher(dir string) (*ShaderWatcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(dir); err != nil {
		fsWatch.Close()
		return nil, err
	}

	w := &ShaderWatcher{
		fsnotify: fsWatch,
		done:     make(chan struct{}),
		Changed:  make(chan string, 8),
	}
	go w.run()
	return w, nil
}

func (w *ShaderWatcher) run() {
	// Editors fire several writes per save; collapse bursts per file.
	lastSeen := make(map[string]time.Time)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			ext := filepath.Ext(event.Name)
			if ext != ".vert" && ext != ".frag" {
				continue
			}
			now := time.Now()
			if now.Sub(lastSeen[event.Name]) < 100*time.Millisecond {
				continue
			}
			lastSeen[event.Name] = now
			select {
			case w.Changed <- event.Name:
			default:
				// The render loop is behind; it reloads on the next
				// drain anyway.
			}
		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogWarn("shader watcher: %v", err)
		}
	}
}

// Close stops the watcher.
func (w *ShaderWatcher) Close() error {
	close(w.done)
	return w.fsnotify.Close()
}
