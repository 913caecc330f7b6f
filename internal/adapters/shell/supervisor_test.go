//go:build unix

package shell_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/snobb/imk/internal/adapters/shell"
	"github.com/snobb/imk/internal/core/domain"
	"github.com/snobb/imk/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// lockedBuffer is a bytes.Buffer safe for the concurrent copy goroutines.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newSupervisor(t *testing.T, stdout io.Writer) (*shell.Supervisor, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return shell.NewSupervisor(log, shell.WithOutput(stdout, io.Discard), shell.WithKillGrace(100*time.Millisecond)), log
}

func TestSupervisor_Run_ExitCode(t *testing.T) {
	tests := []struct {
		name string
		spec domain.CommandSpec
		want domain.RunResult
	}{
		{
			name: "success",
			spec: domain.CommandSpec{Invocation: "true"},
			want: domain.Exited(0),
		},
		{
			name: "direct failure",
			spec: domain.CommandSpec{Invocation: "false"},
			want: domain.Exited(1),
		},
		{
			name: "shell exit code",
			spec: domain.CommandSpec{Invocation: "exit 3", ShellWrap: true},
			want: domain.Exited(3),
		},
		{
			name: "exits before timeout",
			spec: domain.CommandSpec{Invocation: "exit 7", ShellWrap: true, Timeout: 5 * time.Second},
			want: domain.Exited(7),
		},
		{
			name: "killed by signal",
			spec: domain.CommandSpec{Invocation: "kill -KILL $$", ShellWrap: true},
			want: domain.Killed(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sup, _ := newSupervisor(t, io.Discard)

			got := sup.Run(context.Background(), tt.spec)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSupervisor_Run_DirectSplitsOnWhitespace(t *testing.T) {
	var out lockedBuffer
	sup, _ := newSupervisor(t, &out)

	res := sup.Run(context.Background(), domain.CommandSpec{Invocation: "echo  hello   world"})
	require.Equal(t, domain.Exited(0), res)
	assert.Equal(t, "hello world\n", out.String())
}

func TestSupervisor_Run_ShellWrap(t *testing.T) {
	var out lockedBuffer
	sup, _ := newSupervisor(t, &out)

	res := sup.Run(context.Background(), domain.CommandSpec{Invocation: "echo 'a  b' | tr a c", ShellWrap: true})
	require.Equal(t, domain.Exited(0), res)
	assert.Equal(t, "c  b\n", out.String())
}

func TestSupervisor_Run_SpawnError(t *testing.T) {
	sup, _ := newSupervisor(t, io.Discard)

	res := sup.Run(context.Background(), domain.CommandSpec{Invocation: "imk-no-such-command --flag"})
	require.Equal(t, domain.OutcomeSpawnError, res.Outcome)
	require.Error(t, res.Err)
	assert.ErrorContains(t, res.Err, domain.ErrSpawnFailed.Error())
	assert.Equal(t, 1, res.ExitCode())
}

func TestSupervisor_Run_TimeoutTerminates(t *testing.T) {
	sup, _ := newSupervisor(t, io.Discard)
	marker := filepath.Join(t.TempDir(), "sigterm")

	start := time.Now()
	res := sup.Run(context.Background(), domain.CommandSpec{
		Invocation: "trap 'touch " + marker + "; exit 143' TERM; sleep 5 & wait",
		ShellWrap:  true,
		Timeout:    200 * time.Millisecond,
	})

	assert.Equal(t, domain.Killed(), res)

	info, err := os.Stat(marker)
	require.NoError(t, err, "the command must receive SIGTERM")
	received := info.ModTime().Sub(start)
	assert.GreaterOrEqual(t, received, 200*time.Millisecond)
	assert.Less(t, received, 400*time.Millisecond)
}

func TestSupervisor_Run_TimeoutKills(t *testing.T) {
	sup, _ := newSupervisor(t, io.Discard)

	start := time.Now()
	res := sup.Run(context.Background(), domain.CommandSpec{Invocation: "sleep 5", Timeout: 200 * time.Millisecond})
	elapsed := time.Since(start)

	assert.Equal(t, domain.Killed(), res)
	assert.GreaterOrEqual(t, elapsed, 200*time.Millisecond)
	assert.Less(t, elapsed, 400*time.Millisecond)
}

func TestSupervisor_Run_TimeoutTerminatesProcessGroup(t *testing.T) {
	var out lockedBuffer
	sup, _ := newSupervisor(t, &out)

	start := time.Now()
	res := sup.Run(context.Background(), domain.CommandSpec{
		Invocation: "sleep 5; echo done",
		ShellWrap:  true,
		Timeout:    200 * time.Millisecond,
	})

	assert.Equal(t, domain.Killed(), res)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.NotContains(t, out.String(), "done")
}

func TestSupervisor_Run_Teardown(t *testing.T) {
	sup, log := newSupervisor(t, io.Discard)
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrTeardownFailed.Error())
	})

	pidFile := filepath.Join(t.TempDir(), "pid")
	res := sup.Run(context.Background(), domain.CommandSpec{
		Invocation: "sleep 5",
		Timeout:    200 * time.Millisecond,
		Teardown:   "echo $CMD_PID > " + pidFile + "; kill $CMD_PID; exit 3",
	})

	assert.Equal(t, domain.Killed(), res)

	data, err := os.ReadFile(pidFile)
	require.NoError(t, err)
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	require.NoError(t, err)
	assert.Positive(t, pid)
}

func TestSupervisor_Run_TeardownIgnoredThenKilled(t *testing.T) {
	sup, _ := newSupervisor(t, io.Discard)

	start := time.Now()
	res := sup.Run(context.Background(), domain.CommandSpec{
		Invocation: "sleep 5",
		Timeout:    100 * time.Millisecond,
		Teardown:   "true",
	})

	assert.Equal(t, domain.Killed(), res)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestSupervisor_Run_ContextCancelledDuringTeardown(t *testing.T) {
	sup, _ := newSupervisor(t, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	start := time.Now()
	res := sup.Run(ctx, domain.CommandSpec{
		Invocation: "sleep 10",
		Timeout:    100 * time.Millisecond,
		Teardown:   "sleep 4",
	})

	assert.Equal(t, domain.Killed(), res)
	assert.Less(t, time.Since(start), time.Second)
}

func TestSupervisor_Run_ContextCancelled(t *testing.T) {
	sup, _ := newSupervisor(t, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	res := sup.Run(ctx, domain.CommandSpec{Invocation: "sleep 5"})

	assert.Equal(t, domain.Killed(), res)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestSupervisor_Run_PTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pseudo-terminals unavailable: %v", err)
	}
	_ = ptmx.Close()
	_ = tty.Close()

	var out lockedBuffer
	sup, _ := newSupervisor(t, &out)

	res := sup.Run(context.Background(), domain.CommandSpec{Invocation: "test -t 1 && echo tty", ShellWrap: true, PTY: true})
	require.Equal(t, domain.Exited(0), res)
	assert.Contains(t, out.String(), "tty")
}
