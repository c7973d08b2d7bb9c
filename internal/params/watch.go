package params

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the burst of events a single snapshot rewrite
// produces (create of the temp file, rename over the target).
const watchDebounce = 200 * time.Millisecond

// Watch observes the snapshot file and invokes onChange with the freshly
// loaded mapping whenever it is rewritten. It watches the parent directory
// so the rename-based Save is seen, and it runs until ctx is cancelled.
//
// The store's own saves also fire onChange; feeding the result through
// Store.Merge makes those self-notifications no-ops, so only genuinely
// external edits produce mutations.
func (p *FilePersister) Watch(ctx context.Context, onChange func(map[string]string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(p.path)); err != nil {
		return err
	}

	var debounce *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(p.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			values, err := p.Load()
			if err != nil {
				continue
			}
			onChange(values)

		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			// Watch errors degrade to no live reload; the dashboard
			// keeps running on in-memory state.
		}
	}
}
