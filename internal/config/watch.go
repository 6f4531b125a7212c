package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/akarpov/go-web-skeleton/internal/logger"
)

// debounceInterval coalesces bursts of filesystem events (editors often
// produce several per save) into a single reload.
const debounceInterval = 100 * time.Millisecond

// Watch observes the JSON config file at path and invokes onChange with the
// freshly parsed file layer whenever it changes. The pipeline itself is
// frozen at startup; watching exists so that reload-safe settings (the log
// level, currently) can be adjusted without a restart.
//
// Watch blocks until ctx is done. Parse failures of a changed file are
// logged and skipped; the previous configuration stays in effect.
func Watch(ctx context.Context, path string, log *logger.Logger, onChange func(*StructuredConfig)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating config watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: most editors and config mounts
	// replace the file, which drops a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("error watching config directory: %w", err)
	}

	log.Info().Str("path", path).Msg("watching config file for changes")

	debounce := time.NewTimer(debounceInterval)
	if !debounce.Stop() {
		<-debounce.C
	}

	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
				continue
			}
			debounce.Reset(debounceInterval)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("config watcher error")

		case <-debounce.C:
			cfg, err := parseJSON(path)
			if err != nil {
				log.Warn().Err(err).Msg("error reloading changed config file")
				continue
			}
			log.Info().Str("path", path).Msg("config file changed")
			onChange(cfg)
		}
	}
}
