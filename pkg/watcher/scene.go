package watcher

import (
	"github.com/philipparndt/gowire/pkg/scene"
)

// WatchScene loads path whenever it changes and hands the result to onReload.
// Parse errors are passed through so the caller can keep the last good scene.
// The returned watcher is already started; Close it when done.
func WatchScene(path string, onReload func(*scene.Scene, error)) (*FileWatcher, error) {
	fw, err := NewFileWatcher(DefaultDebounce)
	if err != nil {
		return nil, err
	}
	if err := fw.Watch([]string{path}, func(changed string) {
		onReload(scene.Load(changed))
	}); err != nil {
		fw.Close()
		return nil, err
	}
	fw.Start()
	return fw, nil
}
