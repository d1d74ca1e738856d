// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// =============================================================================
// FILE WATCHER
// =============================================================================

// debounceWindow absorbs the write+rename event pairs editors and
// atomic saves produce for a single logical change.
const debounceWindow = 250 * time.Millisecond

// Watcher reloads the config file when it changes on disk.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	log     zerolog.Logger

	// Reloaded delivers each successfully reloaded config. Parse
	// failures are logged and skipped; the previous config stays in
	// effect.
	Reloaded chan *Config

	done chan struct{}
}

// NewWatcher watches path for changes. The watch is placed on the
// parent directory because atomic saves replace the file inode.
func NewWatcher(path string, log zerolog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		watcher:  fsw,
		log:      log.With().Str("component", "config-watcher").Logger(),
		Reloaded: make(chan *Config, 1),
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher. The Reloaded channel is closed after the
// loop exits.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	defer close(w.Reloaded)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
			} else {
				timer.Reset(debounceWindow)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watch error")
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadFromPath(w.path)
	if err != nil {
		w.log.Warn().Err(err).Msg("config reload failed, keeping previous")
		return
	}
	w.log.Info().Msg("config reloaded")

	// Drop a pending config nobody consumed; newest wins.
	select {
	case <-w.Reloaded:
	default:
	}
	select {
	case w.Reloaded <- cfg:
	case <-w.done:
	}
}
