// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avlbst/fault"
	"github.com/bitmark-inc/avlbst/util"
)

const (
	watcherLoggerPrefix = "watcher"
)

// WatcherChannel - events are delivered here, a full channel drops
// the event since one pending notification is enough
type WatcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

func newWatcherChannel() WatcherChannel {
	return WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

// FileWatcher - report writes to and removal of a single file
type FileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	channel  WatcherChannel
	filePath string
	done     chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L, channel WatcherChannel) (*FileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file: %q  error: %s", targetFile, err)
		return nil, err
	}

	if !util.EnsureFileExists(filePath) {
		return nil, fmt.Errorf("script: %q  error: %w", filePath, fault.ErrScriptFileNotFound)
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	return &FileWatcher{
		log:      log,
		watcher:  watcher,
		channel:  channel,
		filePath: filePath,
		done:     make(chan struct{}),
	}, nil
}

// Start - begin watching in a background go routine
func (w *FileWatcher) Start() error {
	err := w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go w.loop()

	return nil
}

// Stop - close the watcher and wait for the background go routine
func (w *FileWatcher) Stop() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *FileWatcher) loop() {
	defer close(w.done)

	base := filepath.Base(w.filePath)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				w.log.Info("event channel closed")
				return
			}
			w.log.Debugf("file event: %v", event)

			if watcherEventFileRemove(event) {
				w.log.Warnf("file: %s removed, stop", w.filePath)
				w.sendEvent(w.channel.remove, "remove")
				return
			}

			if filepath.Base(event.Name) != base {
				w.log.Debugf("file: %s not match, discard event", event.Name)
				continue
			}

			if watcherEventFileChange(event) {
				w.sendEvent(w.channel.change, "change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				w.log.Info("error channel closed")
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func (w *FileWatcher) sendEvent(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel: %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Name == "" ||
		event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
