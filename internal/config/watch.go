package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces bursts of events produced by a single save.
const watchDebounce = 200 * time.Millisecond

// Watch re-reads the config file at path whenever it changes and passes the
// result to onChange. It blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file itself so that
// atomic replacements (rename over the old file) are still observed.
func (s *Store) Watch(ctx context.Context, path string, onChange func(*Configuration, error)) error {
	path = s.resolve(path)
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve watch path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch config directory: %w", err)
	}

	logger := s.log()
	logger.Info().
		Str("event", "config.watcher_started").
		Str("path", abs).
		Msg("watching config file for changes")

	var (
		timer    *time.Timer
		debounce <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Str("event", "config.watcher_stopped").Msg("config watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			logger.Debug().
				Str("event", "config.file_changed").
				Str("op", event.Op.String()).
				Msg("config file changed")

			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			debounce = timer.C

		case <-debounce:
			debounce = nil
			cfg, err := s.read(abs)
			if err != nil {
				logger.Warn().
					Err(err).
					Str("event", "config.reload_failed").
					Msg("config reload failed")
			}
			onChange(cfg, err)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().
				Err(err).
				Str("event", "config.watcher_error").
				Msg("config watcher error")
		}
	}
}
