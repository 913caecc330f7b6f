//go:build !linux

package watcher

import (
	"github.com/snobb/imk/internal/core/domain"
	"github.com/snobb/imk/internal/core/ports"
	"go.trai.ch/zerr"
)

const inotifySupported = false

func newInotify() (ports.Notifier, error) {
	return nil, zerr.With(domain.ErrUnsupportedBackend, "backend", domain.BackendInotify)
}
