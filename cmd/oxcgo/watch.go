package main

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 200 * time.Millisecond

// watchAndRerun watches the directories containing patterns' matches and
// calls run every time a matching file changes, debouncing bursts of
// events (a save often fires write+chmod together) into a single rerun.
// It blocks until the process receives an interrupt.
func watchAndRerun(patterns []string, run func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dirs := map[string]bool{}
	files, err := resolveFiles(patterns)
	if err != nil {
		return err
	}
	for _, f := range files {
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			logger.Sugar().Warnf("watch: failed to add %s: %v", dir, err)
		}
	}

	if err := run(); err != nil {
		logger.Sugar().Errorf("run: %v", err)
	}

	var timer *time.Timer
	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				if err := run(); err != nil {
					logger.Sugar().Errorf("run: %v", err)
				}
			})
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Sugar().Errorf("watch error: %v", err)
		}
	}
}
