package ui

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce groups the bursts of events that a single save produces.
const watchDebounce = 100 * time.Millisecond

// sceneWatcher calls onChange once per burst of modifications to any of the watched files.
type sceneWatcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]struct{}
	onChange func()
	debounce time.Duration
}

// newSceneWatcher watches the parent directories of the files, as editors often replace files instead of writing
// them in place (which would stop a watch on the file itself).
func newSceneWatcher(files []string, onChange func()) (*sceneWatcher, error) {
	w, err := newFsWatcher()
	if err != nil {
		return nil, err
	}
	sw := &sceneWatcher{watcher: w, files: map[string]struct{}{}, onChange: onChange, debounce: watchDebounce}
	dirs := map[string]struct{}{}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = w.Close()
			return nil, err
		}
		sw.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err = w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}
	return sw, nil
}

// Run processes events until the context is done or the watcher is closed.
func (sw *sceneWatcher) Run(ctx context.Context) {
	var fire <-chan time.Time
	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 || !sw.watches(event.Name) {
				continue
			}
			fire = time.After(sw.debounce)
		case <-fire:
			fire = nil
			sw.onChange()
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			log.Println("[HexRenderer] File watcher error:", err)
		case <-ctx.Done():
			return
		}
	}
}

func (sw *sceneWatcher) watches(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	_, ok := sw.files[abs]
	return ok
}

func (sw *sceneWatcher) Close() error {
	return sw.watcher.Close()
}
