package main

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
)

// watchFile re-invokes run once immediately and again on every write to
// path, per spec.md §5's "each re-parse is a fresh full parse" — no
// incremental state is carried between runs.
func watchFile(path string, run func() error) error {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("rubyparse: watch: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("rubyparse: watch %s: %w", path, err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := run(); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "rubyparse: watch:", err)
		}
	}
}
