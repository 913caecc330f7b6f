// Package config provides the run profile loader.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/snobb/imk/internal/core/domain"
	"github.com/snobb/imk/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using YAML files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load returns the default configuration, overlaid with the profile at path
// when path is not empty.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg := domain.NewConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var dto ProfileDTO
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if err := apply(cfg, &dto); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func apply(cfg *domain.Config, dto *ProfileDTO) error {
	timeout, err := domain.KillTimeoutFromMillis(dto.KillTimeout)
	if err != nil {
		return err
	}
	threshold, err := domain.ThresholdFromSeconds(dto.Threshold)
	if err != nil {
		return err
	}

	cfg.Command = domain.CommandSpec{
		Invocation: dto.Command,
		ShellWrap:  dto.WrapShell,
		Timeout:    timeout,
		Teardown:   dto.Teardown,
		RunOnce:    dto.Once,
		PTY:        dto.PTY,
	}
	cfg.Threshold = threshold
	cfg.Recurse = dto.Recurse
	cfg.Immediate = dto.Immediate
	cfg.Paths = dto.Paths
	cfg.Ignore = dto.Ignore
	cfg.Timings = dto.Timings

	if dto.Backend != "" {
		cfg.Backend = dto.Backend
	}
	if dto.LogFormat != "" {
		cfg.LogFormat = dto.LogFormat
	}
	return nil
}
