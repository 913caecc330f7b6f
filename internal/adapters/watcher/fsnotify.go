package watcher

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/snobb/imk/internal/core/domain"
	"github.com/snobb/imk/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Notifier = (*FSNotify)(nil)

// FSNotify is a portable notifier built on fsnotify.
// fsnotify has no one-shot watches, so a watch is removed as soon as it delivers an
// event and only comes back when the path is armed again.
type FSNotify struct {
	fsw *fsnotify.Watcher

	mu   sync.Mutex
	next domain.WatchHandle
	live map[string]domain.WatchHandle
}

// NewFSNotify creates a new fsnotify-backed notifier.
func NewFSNotify() (*FSNotify, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrNotifierInitFailed.Error())
	}
	return &FSNotify{
		fsw:  fsw,
		live: make(map[string]domain.WatchHandle),
	}, nil
}

// Arm watches path until its next event. Arming a path that is already live
// returns its current handle.
func (w *FSNotify) Arm(path string) (domain.WatchHandle, error) {
	name := filepath.Clean(path)

	w.mu.Lock()
	defer w.mu.Unlock()

	if h, ok := w.live[name]; ok {
		return h, nil
	}
	if err := w.fsw.Add(name); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrWatchArmFailed.Error()), "path", path)
	}

	w.next++
	w.live[name] = w.next
	return w.next, nil
}

// Wait blocks for the next event and returns it together with any others already queued.
func (w *FSNotify) Wait(ctx context.Context) ([]domain.WatchEvent, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil, domain.ErrNotifierClosed
			}
			batch := w.appendEvent(nil, ev)
			batch = w.drain(batch)
			if len(batch) > 0 {
				return batch, nil
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil, domain.ErrNotifierClosed
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				continue
			}
			return nil, zerr.Wrap(err, domain.ErrEventReadFailed.Error())
		}
	}
}

// Close stops the underlying watcher.
func (w *FSNotify) Close() error {
	return w.fsw.Close()
}

// drain appends events that are ready without blocking.
func (w *FSNotify) drain(batch []domain.WatchEvent) []domain.WatchEvent {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return batch
			}
			batch = w.appendEvent(batch, ev)
		default:
			return batch
		}
	}
}

// appendEvent translates ev and consumes the watch it belongs to.
// Writes to a file inside a watched directory count as a modification of the directory.
func (w *FSNotify) appendEvent(batch []domain.WatchEvent, ev fsnotify.Event) []domain.WatchEvent {
	name := filepath.Clean(ev.Name)

	w.mu.Lock()
	defer w.mu.Unlock()

	if h, ok := w.live[name]; ok {
		kind := selfKind(ev.Op)
		if kind == domain.KindOther {
			return batch
		}
		w.consume(name)
		return append(batch, domain.WatchEvent{Handle: h, Kind: kind})
	}

	if ev.Has(fsnotify.Write) {
		dir := filepath.Dir(name)
		if h, ok := w.live[dir]; ok {
			w.consume(dir)
			return append(batch, domain.WatchEvent{Handle: h, Kind: domain.KindModify})
		}
	}

	return batch
}

func (w *FSNotify) consume(name string) {
	delete(w.live, name)
	// The watch may already be gone after a remove or rename.
	_ = w.fsw.Remove(name)
}

func selfKind(op fsnotify.Op) domain.EventKind {
	switch {
	case op.Has(fsnotify.Write):
		return domain.KindModify
	case op.Has(fsnotify.Rename):
		return domain.KindMoveSelf
	case op.Has(fsnotify.Remove):
		return domain.KindIgnored
	default:
		return domain.KindOther
	}
}
