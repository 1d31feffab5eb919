package assets

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports shader files changed on disk by their base name
type Watcher struct {
	watcher *fsnotify.Watcher
	changes chan string
	done    chan struct{}
}

func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %q: %w", dir, err)
	}

	w := &Watcher{
		watcher: fw,
		changes: make(chan string, 16),
		done:    make(chan struct{}),
	}

	go w.run()

	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.changes)

	// a rename reports the old name, the new one arrives as create
	change := fsnotify.Write | fsnotify.Create

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&change == 0 {
				continue
			}

			name := filepath.Base(event.Name)

			// drop if the render loop is behind, it reloads on the next one
			select {
			case w.changes <- name:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Println("shader watcher:", err)
		}
	}
}

// Changes is closed after Close
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
