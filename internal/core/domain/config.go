package domain

import (
	"fmt"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// DefaultIgnoreSuffixes are directory suffixes never descended into during recursive expansion.
var DefaultIgnoreSuffixes = []string{"/.git", "/.hg", "/.jj", "/node_modules", "/target"}

// Watch backends.
const (
	BackendAuto     = "auto"
	BackendInotify  = "inotify"
	BackendFSNotify = "fsnotify"
)

// Log formats.
const (
	LogFormatAuto   = "auto"
	LogFormatPretty = "pretty"
	LogFormatPlain  = "plain"
	LogFormatJSON   = "json"
)

// Config is the fully resolved run configuration.
type Config struct {
	Command CommandSpec
	// Threshold is the debounce window shared by all watched paths. Zero disables debouncing.
	Threshold time.Duration
	// Recurse expands directory arguments into all of their sub-directories.
	Recurse bool
	// Immediate runs the command once before arming any watch.
	Immediate bool
	// Paths are the file and directory arguments as given.
	Paths []string
	// Ignore holds additional directory suffixes skipped during expansion.
	Ignore []string
	// Backend selects the kernel event source.
	Backend string
	// LogFormat selects the log output format.
	LogFormat string
	// Timings logs the duration of every run.
	Timings bool
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Backend:   BackendAuto,
		LogFormat: LogFormatAuto,
	}
}

// IgnoreSuffixes returns the default denylist followed by the configured extras.
// Extras without a leading separator get one, so "build" only matches a whole path element.
func (c *Config) IgnoreSuffixes() []string {
	out := make([]string, 0, len(DefaultIgnoreSuffixes)+len(c.Ignore))
	out = append(out, DefaultIgnoreSuffixes...)
	for _, s := range c.Ignore {
		s = strings.TrimSuffix(s, "/")
		if s == "" {
			continue
		}
		if !strings.HasPrefix(s, "/") {
			s = "/" + s
		}
		out = append(out, s)
	}
	return out
}

// Validate reports the first configuration error, if any.
func (c *Config) Validate() error {
	if err := c.Command.Validate(); err != nil {
		return err
	}
	if len(c.Paths) == 0 {
		return ErrNoPaths
	}
	if c.Threshold < 0 {
		return zerr.With(ErrNegativeThreshold, "threshold", c.Threshold.String())
	}
	switch c.Backend {
	case "", BackendAuto, BackendInotify, BackendFSNotify:
	default:
		return zerr.With(ErrUnknownBackend, "backend", c.Backend)
	}
	switch c.LogFormat {
	case "", LogFormatAuto, LogFormatPretty, LogFormatPlain, LogFormatJSON:
	default:
		return zerr.With(ErrInvalidLogFormat, "format", c.LogFormat)
	}
	return nil
}

// String renders the startup banner.
func (c *Config) String() string {
	opts := []string{c.Command.String()}

	if c.Threshold > 0 {
		opts = append(opts, fmt.Sprintf("threshold[%d]", int64(c.Threshold/time.Second)))
	}
	if c.Recurse {
		opts = append(opts, "recurse")
	}
	if c.Immediate {
		opts = append(opts, "immediate")
	}
	opts = append(opts, fmt.Sprintf("files%q", c.Paths))

	return strings.Join(opts, " ")
}
