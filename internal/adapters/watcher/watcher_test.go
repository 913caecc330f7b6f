package watcher_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/snobb/imk/internal/adapters/watcher"
	"github.com/snobb/imk/internal/core/domain"
	"github.com/snobb/imk/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect waits for events until stop returns true for one of them or d elapses.
func collect(t *testing.T, n ports.Notifier, d time.Duration, stop func(domain.WatchEvent) bool) []domain.WatchEvent {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()

	var all []domain.WatchEvent
	for {
		events, err := n.Wait(ctx)
		if err != nil {
			require.ErrorIs(t, err, context.DeadlineExceeded)
			return all
		}
		all = append(all, events...)
		for _, ev := range events {
			if stop(ev) {
				return all
			}
		}
	}
}

func kindIs(kind domain.EventKind) func(domain.WatchEvent) bool {
	return func(ev domain.WatchEvent) bool { return ev.Kind == kind }
}

func never(domain.WatchEvent) bool { return false }

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newFSNotify(t *testing.T) *watcher.FSNotify {
	t.Helper()
	n, err := watcher.NewFSNotify()
	require.NoError(t, err)
	t.Cleanup(func() { _ = n.Close() })
	return n
}

func TestFSNotify_ModifyIsOneShot(t *testing.T) {
	n := newFSNotify(t)
	file := filepath.Join(t.TempDir(), "main.go")
	writeFile(t, file, "package main")

	h, err := n.Arm(file)
	require.NoError(t, err)

	writeFile(t, file, "package main // changed")
	events := collect(t, n, 2*time.Second, kindIs(domain.KindModify))
	require.NotEmpty(t, events)
	assert.Equal(t, domain.WatchEvent{Handle: h, Kind: domain.KindModify}, events[0])

	// Consumed: further writes are not reported until the path is armed again.
	writeFile(t, file, "package main // again")
	assert.Empty(t, collect(t, n, 300*time.Millisecond, never))

	h2, err := n.Arm(file)
	require.NoError(t, err)
	assert.NotEqual(t, h, h2)

	writeFile(t, file, "package main // rearmed")
	events = collect(t, n, 2*time.Second, kindIs(domain.KindModify))
	require.NotEmpty(t, events)
	assert.Equal(t, h2, events[0].Handle)
}

func TestFSNotify_ArmLivePathKeepsHandle(t *testing.T) {
	n := newFSNotify(t)
	dir := t.TempDir()

	h1, err := n.Arm(dir)
	require.NoError(t, err)
	h2, err := n.Arm(dir + string(filepath.Separator))
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}

func TestFSNotify_WriteInsideDirectory(t *testing.T) {
	n := newFSNotify(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	writeFile(t, file, "a")

	h, err := n.Arm(dir)
	require.NoError(t, err)

	writeFile(t, file, "b")
	events := collect(t, n, 2*time.Second, kindIs(domain.KindModify))
	require.NotEmpty(t, events)
	assert.Equal(t, domain.WatchEvent{Handle: h, Kind: domain.KindModify}, events[len(events)-1])
}

func TestFSNotify_Rename(t *testing.T) {
	n := newFSNotify(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "old.txt")
	writeFile(t, file, "a")

	h, err := n.Arm(file)
	require.NoError(t, err)

	require.NoError(t, os.Rename(file, filepath.Join(dir, "new.txt")))
	events := collect(t, n, 2*time.Second, kindIs(domain.KindMoveSelf))
	require.NotEmpty(t, events)
	assert.Equal(t, domain.WatchEvent{Handle: h, Kind: domain.KindMoveSelf}, events[len(events)-1])
}

func TestFSNotify_ArmMissingPath(t *testing.T) {
	n := newFSNotify(t)

	_, err := n.Arm(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrWatchArmFailed.Error())
}

func TestFSNotify_WaitCancelled(t *testing.T) {
	n := newFSNotify(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := n.Wait(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFSNotify_WaitAfterClose(t *testing.T) {
	n, err := watcher.NewFSNotify()
	require.NoError(t, err)
	require.NoError(t, n.Close())

	_, err = n.Wait(context.Background())
	require.True(t, errors.Is(err, domain.ErrNotifierClosed), "got %v", err)
}

func TestFactory_New(t *testing.T) {
	f := watcher.NewFactory()

	n, err := f.New(domain.BackendFSNotify)
	require.NoError(t, err)
	assert.IsType(t, &watcher.FSNotify{}, n)
	require.NoError(t, n.Close())

	n, err = f.New(domain.BackendAuto)
	require.NoError(t, err)
	require.NotNil(t, n)
	require.NoError(t, n.Close())

	_, err = f.New("kqueue")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownBackend.Error())
}
