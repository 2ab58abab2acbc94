// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/inboxd/fault"
)

// Watcher - report changes to a configuration file
type Watcher interface {
	Start() error
	Stop()
	Change() <-chan struct{}
	Remove() <-chan struct{}
}

type fileWatcher struct {
	sync.Mutex
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
	stopped  bool
}

// NewWatcher - watcher for a single existing file
func NewWatcher(fileName string, log *logger.L) (Watcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.Wrapf(fault.FileNotFound, "configuration: %q", filePath)
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// Change - receives once for any burst of writes
func (w *fileWatcher) Change() <-chan struct{} {
	return w.change
}

// Remove - receives when the file is deleted or renamed away
func (w *fileWatcher) Remove() <-chan struct{} {
	return w.remove
}

// Start - begin delivering events
//
// the directory is watched rather than the file so that editors that
// replace the file on save are still seen
func (w *fileWatcher) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watch: %q  error: %s", w.filePath, err)
		return err
	}

	go w.run()
	return nil
}

// Stop - close the underlying watcher
func (w *fileWatcher) Stop() {
	w.Lock()
	defer w.Unlock()

	if w.stopped {
		return
	}
	w.stopped = true
	_ = w.watcher.Close()
}

func (w *fileWatcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			w.log.Debugf("file event: %s", event)

			switch {
			case isRemove(event):
				w.log.Warnf("file: %q removed", w.filePath)
				send(w.remove)
			case isChange(event):
				w.log.Infof("file: %q changed", w.filePath)
				send(w.change)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watch: %q  error: %s", w.filePath, err)
		}
	}
}

// drop the event if one is already pending
func send(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func isRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
