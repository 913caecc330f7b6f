//go:build linux

package watcher

import (
	"context"
	"errors"
	"os"
	"time"
	"unsafe"

	"github.com/snobb/imk/internal/core/domain"
	"github.com/snobb/imk/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

const inotifySupported = true

// inotifyMask subscribes to writes and moves of the path itself. The kernel drops the
// watch after its first event and reports IN_IGNORED for it.
const inotifyMask = unix.IN_MODIFY | unix.IN_MOVE_SELF | unix.IN_ONESHOT

var _ ports.Notifier = (*Inotify)(nil)

// Inotify is a Linux notifier with native one-shot watches.
// Handles are kernel watch descriptors.
type Inotify struct {
	fd   int
	file *os.File
	buf  []byte
}

// NewInotify creates a new inotify instance.
func NewInotify() (*Inotify, error) {
	fd, err := unix.InotifyInit1(unix.IN_CLOEXEC | unix.IN_NONBLOCK)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrNotifierInitFailed.Error())
	}
	return &Inotify{
		fd: fd,
		// A non-blocking descriptor is registered with the runtime poller,
		// which makes read deadlines work.
		file: os.NewFile(uintptr(fd), "inotify"),
		buf:  make([]byte, unix.SizeofInotifyEvent*4096),
	}, nil
}

func newInotify() (ports.Notifier, error) {
	n, err := NewInotify()
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Arm adds a one-shot watch on path.
func (w *Inotify) Arm(path string) (domain.WatchHandle, error) {
	wd, err := unix.InotifyAddWatch(w.fd, path, inotifyMask)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrWatchArmFailed.Error()), "path", path)
	}
	return domain.WatchHandle(wd), nil
}

// Wait blocks until the kernel delivers events or ctx is cancelled.
func (w *Inotify) Wait(ctx context.Context) ([]domain.WatchEvent, error) {
	if err := w.file.SetReadDeadline(time.Time{}); err != nil {
		return nil, w.readError(err)
	}
	stop := context.AfterFunc(ctx, func() {
		_ = w.file.SetReadDeadline(time.Now())
	})
	defer stop()

	for {
		n, err := w.file.Read(w.buf)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, w.readError(err)
		}

		if events := parseInotify(w.buf[:n]); len(events) > 0 {
			return events, nil
		}
	}
}

// Close closes the inotify descriptor, unblocking a pending Wait.
func (w *Inotify) Close() error {
	return w.file.Close()
}

func (w *Inotify) readError(err error) error {
	if errors.Is(err, os.ErrClosed) {
		return domain.ErrNotifierClosed
	}
	return zerr.Wrap(err, domain.ErrEventReadFailed.Error())
}

// parseInotify decodes raw events in delivery order. Queue overflows carry no
// descriptor and are skipped.
func parseInotify(buf []byte) []domain.WatchEvent {
	var events []domain.WatchEvent
	for offset := 0; offset+unix.SizeofInotifyEvent <= len(buf); {
		raw := (*unix.InotifyEvent)(unsafe.Pointer(&buf[offset])) //nolint:gosec // kernel event layout
		offset += unix.SizeofInotifyEvent + int(raw.Len)

		if raw.Mask&unix.IN_Q_OVERFLOW != 0 {
			continue
		}
		events = append(events, domain.WatchEvent{
			Handle: domain.WatchHandle(raw.Wd),
			Kind:   inotifyKind(raw.Mask),
		})
	}
	return events
}

func inotifyKind(mask uint32) domain.EventKind {
	switch {
	case mask&unix.IN_MODIFY != 0:
		return domain.KindModify
	case mask&unix.IN_MOVE_SELF != 0:
		return domain.KindMoveSelf
	case mask&unix.IN_IGNORED != 0:
		return domain.KindIgnored
	default:
		return domain.KindOther
	}
}
