package keybindings

import (
	"context"

	"keybindings/internal/watch"
)

// FileEvent describes a change to the backing file made by anyone,
// including this store's own Save.
type FileEvent = watch.FileEvent

// Watch reports creation, writes, removal and renames of the backing file
// until ctx is done, then closes the channel. The store is not reloaded
// automatically; call Reload when an event warrants it.
func (s *Store) Watch(ctx context.Context) (<-chan FileEvent, error) {
	w, err := watch.New(s.path, s.logger)
	if err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		w.Stop()
		return nil, err
	}

	out := make(chan FileEvent)
	go func() {
		defer close(out)
		defer w.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events():
				if !ok {
					return
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
