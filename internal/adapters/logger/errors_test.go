package logger_test

import (
	"errors"
	"testing"

	"github.com/snobb/imk/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []logger.ErrorEntry
	}{
		{
			name: "standard error",
			err:  errors.New("simple error"),
			want: []logger.ErrorEntry{{Message: "simple error"}},
		},
		{
			name: "zerr chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			want: []logger.ErrorEntry{
				{Message: "outer layer", Metadata: map[string]any{}},
				{Message: "middle layer", Metadata: map[string]any{}},
				{Message: "root cause"},
			},
		},
		{
			name: "metadata on wrapped sentinel",
			err:  zerr.With(zerr.Wrap(errors.New("permission denied"), "could not recurse"), "path", "/src"),
			want: []logger.ErrorEntry{
				{Message: "could not recurse", Metadata: map[string]any{"path": "/src"}},
				{Message: "permission denied"},
			},
		},
		{
			name: "metadata on standard error moves to the cause",
			err:  zerr.With(errors.New("exit status 3"), "teardown", "kill $CMD_PID"),
			want: []logger.ErrorEntry{
				{Message: "exit status 3", Metadata: map[string]any{"teardown": "kill $CMD_PID"}},
			},
		},
		{
			name: "nil",
			err:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.CollectErrorEntriesExported(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "causes",
			entries: []logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			want:    "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "metadata sorted",
			entries: []logger.ErrorEntry{
				{Message: "error", Metadata: map[string]any{"zebra": "z", "alpha": "a", "pid": 42}},
			},
			want: "Error: error\n       alpha: a\n       pid: 42\n       zebra: z",
		},
		{
			name: "metadata on cause",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"path": "a.go"}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      path: a.go",
		},
		{
			name:    "multiline",
			entries: []logger.ErrorEntry{{Message: "line1\nline2"}, {Message: "cause1\ncause2"}},
			want:    "Error: line1\n       line2\n\n  Caused by:\n    → cause1\n      cause2",
		},
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntriesExported(tt.entries))
		})
	}
}
