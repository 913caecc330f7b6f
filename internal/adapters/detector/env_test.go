package detector_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/muesli/termenv"
	"github.com/snobb/imk/internal/adapters/detector"
	"github.com/snobb/imk/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectEnvironment_NonTerminal(t *testing.T) {
	t.Setenv("CI", "")
	assert.Equal(t, domain.LogFormatPlain, detector.DetectEnvironment(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "log")
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck // test cleanup

	assert.Equal(t, domain.LogFormatPlain, detector.DetectEnvironment(f))
	assert.False(t, detector.IsTerminal(f))
}

func TestIsCI(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "true", want: true},
		{value: "1", want: true},
		{value: "false", want: false},
		{value: "", want: false},
	}

	for _, tt := range tests {
		t.Run("CI="+tt.value, func(t *testing.T) {
			t.Setenv("CI", tt.value)
			assert.Equal(t, tt.want, detector.IsCI())
		})
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name     string
		detected string
		userFlag string
		want     string
	}{
		{name: "auto keeps detection", detected: domain.LogFormatPretty, userFlag: domain.LogFormatAuto, want: domain.LogFormatPretty},
		{name: "empty keeps detection", detected: domain.LogFormatPlain, userFlag: "", want: domain.LogFormatPlain},
		{name: "pretty override", detected: domain.LogFormatPlain, userFlag: domain.LogFormatPretty, want: domain.LogFormatPretty},
		{name: "plain override", detected: domain.LogFormatPretty, userFlag: domain.LogFormatPlain, want: domain.LogFormatPlain},
		{name: "json override", detected: domain.LogFormatPretty, userFlag: domain.LogFormatJSON, want: domain.LogFormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.ResolveFormat(tt.detected, tt.userFlag))
		})
	}
}

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, detector.ColorProfile())
}
