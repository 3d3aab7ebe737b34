package stacks

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change reports that the catalog file of Locale was written or replaced.
type Change struct {
	Locale string
}

// WatchDelay coalesces bursts of writes to one catalog into a single Change.
var WatchDelay = 100 * time.Millisecond

// Watch streams changes to catalog files in s.Dir until ctx is cancelled. The
// returned channel is closed when ctx is done or the watcher fails. Changes
// are dropped if the consumer falls behind.
func (s FileSource) Watch(ctx context.Context) (<-chan Change, error) {
	if s.Dir == "" {
		return nil, errors.New("stacks: catalog directory unknown")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("stacks: create watcher: %w", err)
	}
	if err := watcher.Add(s.Dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("stacks: watch %s: %w", s.Dir, err)
	}

	changes := make(chan Change, 8)
	throttle := newThrottle(WatchDelay, changes)

	go func() {
		defer throttle.close()
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) && !evt.Has(fsnotify.Rename) {
					continue
				}
				if l := localeForFile(s.Pattern, filepath.Base(evt.Name)); l != "" {
					throttle.enqueue(l)
				}
			}
		}
	}()

	return changes, nil
}

// throttle delivers each pending locale once per delay window.
type throttle struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	pending map[string]struct{}
	out     chan Change
	closed  bool
}

func newThrottle(delay time.Duration, out chan Change) *throttle {
	return &throttle{delay: delay, out: out, pending: make(map[string]struct{})}
}

func (t *throttle) enqueue(locale string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.pending[locale] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, t.flush)
	}
}

func (t *throttle) flush() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.timer = nil
	if t.closed {
		return
	}
	for _, l := range locales {
		if _, ok := t.pending[l]; !ok {
			continue
		}
		select {
		case t.out <- Change{Locale: l}:
		default:
		}
	}
	t.pending = make(map[string]struct{})
}

// close stops pending flushes and closes the output channel.
func (t *throttle) close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.closed = true
	close(t.out)
}
