package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingCommand is returned when no command to execute was configured.
	ErrMissingCommand = zerr.New("command must be specified")

	// ErrNoPaths is returned when no files or directories to watch were given.
	ErrNoPaths = zerr.New("files/directories must be specified")

	// ErrTeardownWithoutTimeout is returned when a teardown command is configured without a kill timeout.
	ErrTeardownWithoutTimeout = zerr.New("teardown command requires a kill timeout")

	// ErrNegativeThreshold is returned when the debounce threshold is negative.
	ErrNegativeThreshold = zerr.New("threshold must not be negative")

	// ErrDurationOutOfRange is returned when a timeout or threshold does not fit in a time.Duration.
	ErrDurationOutOfRange = zerr.New("duration out of range")

	// ErrInvalidLogFormat is returned when an unknown log format is requested.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'auto', 'pretty', 'plain' or 'json'")

	// ErrUnknownBackend is returned when an unknown watch backend is requested.
	ErrUnknownBackend = zerr.New("unknown watch backend, expected 'auto', 'inotify' or 'fsnotify'")

	// ErrUnsupportedBackend is returned when a watch backend is not available on this platform.
	ErrUnsupportedBackend = zerr.New("watch backend is not supported on this platform")

	// ErrConfigReadFailed is returned when the profile file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the profile file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrExpansionFailed is returned when a directory cannot be read during recursive expansion.
	ErrExpansionFailed = zerr.New("could not recurse")

	// ErrNotifierInitFailed is returned when the kernel event source cannot be created.
	ErrNotifierInitFailed = zerr.New("failed to initialise file watcher")

	// ErrWatchArmFailed is returned when a single path cannot be subscribed to.
	ErrWatchArmFailed = zerr.New("failed to add file watch")

	// ErrEventReadFailed is returned when reading events from the kernel fails.
	ErrEventReadFailed = zerr.New("failed to read file events")

	// ErrNotifierClosed is returned by Wait after the notifier has been closed.
	ErrNotifierClosed = zerr.New("file watcher closed")

	// ErrSpawnFailed is returned when the child process could not be created.
	ErrSpawnFailed = zerr.New("failed to run the command")

	// ErrTeardownFailed is returned when the teardown command fails or exits non-zero.
	ErrTeardownFailed = zerr.New("teardown command failed")

	// ErrSignalFailed is returned when the terminate signal cannot be delivered to a timed-out child.
	ErrSignalFailed = zerr.New("failed to signal the command")
)
