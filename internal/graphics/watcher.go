package graphics

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ShaderWatcher reports edits to shader sources in a directory. Events are
// coalesced: any number of edits between two Changed calls count as one.
type ShaderWatcher struct {
	watcher *fsnotify.Watcher
	changed chan string
	done    chan struct{}
	logger  *slog.Logger
}

// NewShaderWatcher starts watching dir for .vert and .frag changes.
func NewShaderWatcher(dir string, logger *slog.Logger) (*ShaderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shader watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	sw := &ShaderWatcher{
		watcher: w,
		changed: make(chan string, 1),
		done:    make(chan struct{}),
		logger:  logger,
	}
	go sw.watch()
	return sw, nil
}

func (sw *ShaderWatcher) watch() {
	defer close(sw.done)
	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if isShaderEdit(event) {
				sw.logger.Debug("shader changed", "file", event.Name, "op", event.Op.String())
				select {
				case sw.changed <- event.Name:
				default:
				}
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			sw.logger.Warn("shader watcher", "err", err)
		}
	}
}

func isShaderEdit(event fsnotify.Event) bool {
	switch filepath.Ext(event.Name) {
	case ".vert", ".frag":
	default:
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// Changed reports, without blocking, whether a shader file changed since
// the last call.
func (sw *ShaderWatcher) Changed() bool {
	select {
	case <-sw.changed:
		return true
	default:
		return false
	}
}

// Close stops watching and waits for the event goroutine to exit.
func (sw *ShaderWatcher) Close() error {
	err := sw.watcher.Close()
	<-sw.done
	return err
}
