// Package watcher implements kernel event sources with one-shot watch semantics.
package watcher

import (
	"github.com/snobb/imk/internal/core/domain"
	"github.com/snobb/imk/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.NotifierFactory = (*Factory)(nil)

// Factory creates notifiers by backend name.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// New returns a notifier for backend. "auto" prefers inotify where the platform has it.
func (f *Factory) New(backend string) (ports.Notifier, error) {
	switch backend {
	case "", domain.BackendAuto:
		if inotifySupported {
			return newInotify()
		}
		return newFSNotify()
	case domain.BackendInotify:
		return newInotify()
	case domain.BackendFSNotify:
		return newFSNotify()
	default:
		return nil, zerr.With(domain.ErrUnknownBackend, "backend", backend)
	}
}

func newFSNotify() (ports.Notifier, error) {
	n, err := NewFSNotify()
	if err != nil {
		return nil, err
	}
	return n, nil
}
