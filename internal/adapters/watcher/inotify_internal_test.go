//go:build linux

package watcher

import (
	"testing"
	"unsafe"

	"github.com/snobb/imk/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

// rawEvent encodes an inotify event the way the kernel lays it out, name padded to 16 bytes.
func rawEvent(wd int32, mask uint32, name string) []byte {
	var nameLen int
	if name != "" {
		nameLen = (len(name)/16 + 1) * 16
	}
	ev := unix.InotifyEvent{Wd: wd, Mask: mask, Len: uint32(nameLen)} //nolint:gosec // small test value
	out := append([]byte(nil), unsafe.Slice((*byte)(unsafe.Pointer(&ev)), unix.SizeofInotifyEvent)...)
	padded := make([]byte, nameLen)
	copy(padded, name)
	return append(out, padded...)
}

func TestParseInotify(t *testing.T) {
	var buf []byte
	buf = append(buf, rawEvent(1, unix.IN_MODIFY, "child.go")...)
	buf = append(buf, rawEvent(-1, unix.IN_Q_OVERFLOW, "")...)
	buf = append(buf, rawEvent(2, unix.IN_MOVE_SELF, "")...)
	buf = append(buf, rawEvent(1, unix.IN_IGNORED, "")...)
	buf = append(buf, rawEvent(3, unix.IN_ATTRIB, "")...)

	aligned := make([]byte, len(buf))
	copy(aligned, buf)

	assert.Equal(t, []domain.WatchEvent{
		{Handle: 1, Kind: domain.KindModify},
		{Handle: 2, Kind: domain.KindMoveSelf},
		{Handle: 1, Kind: domain.KindIgnored},
		{Handle: 3, Kind: domain.KindOther},
	}, parseInotify(aligned))
}

func TestParseInotify_Truncated(t *testing.T) {
	buf := rawEvent(1, unix.IN_MODIFY, "")
	assert.Empty(t, parseInotify(buf[:unix.SizeofInotifyEvent-1]))
}
