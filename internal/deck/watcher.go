package deck

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"storyviewer/internal/logging"
)

// Update is emitted by a Watcher every time the deck file changes
type Update struct {
	Deck *Deck
	Err  error
}

// Watcher reloads a deck file whenever it is written
type Watcher struct {
	path string
}

// NewWatcher creates a Watcher for the deck at path
func NewWatcher(path string) *Watcher {
	return &Watcher{path: path}
}

// Watch begins watching the deck and returns a channel of reloads. The
// containing directory is watched so editors that replace the file on
// save are handled. The channel is closed when ctx is done.
func (w *Watcher) Watch(ctx context.Context) (<-chan Update, error) {
	abs, err := filepath.Abs(w.path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve deck path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch deck %s: %w", w.path, err)
	}

	out := make(chan Update)
	log := logging.WithComponent("deck-watcher")

	go func() {
		defer close(out)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				d, err := Load(abs)
				if err != nil {
					log.Warn().Err(err).Str("path", abs).Msg("deck reload failed")
				} else {
					log.Info().Str("path", abs).Int("stories", len(d.Stories)).Msg("deck reloaded")
				}

				select {
				case out <- Update{Deck: d, Err: err}:
				case <-ctx.Done():
					return
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Continue watching despite errors
				log.Warn().Err(err).Msg("watch error")
			}
		}
	}()

	return out, nil
}
