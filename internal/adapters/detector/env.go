// Package detector provides environment detection for log output selection.
package detector

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/snobb/imk/internal/core/domain"
	"golang.org/x/term"
)

// DetectEnvironment returns the log format suited to w.
// Interactive terminals get pretty output; pipes, files and CI get plain output.
func DetectEnvironment(w io.Writer) string {
	if !IsTerminal(w) || IsCI() {
		return domain.LogFormatPlain
	}
	return domain.LogFormatPretty
}

// ResolveFormat applies the user's choice on top of the detected format.
func ResolveFormat(detected, userFlag string) string {
	switch userFlag {
	case domain.LogFormatPretty, domain.LogFormatPlain, domain.LogFormatJSON:
		return userFlag
	default:
		return detected
	}
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

// IsCI reports whether the CI environment variable is set to a truthy value.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// ColorProfile returns the color profile for pretty output.
// NO_COLOR forces Ascii; otherwise the terminal's capabilities decide.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}
