package ports

import (
	"context"

	"github.com/snobb/imk/internal/core/domain"
)

//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks

// Notifier is a kernel event source with one-shot subscriptions.
// A handle delivers at most one qualifying event; after that the path must be armed again.
type Notifier interface {
	// Arm subscribes to modification and move-self events on path.
	Arm(path string) (domain.WatchHandle, error)
	// Wait blocks until at least one event is available and returns the batch in delivery order.
	// It returns ctx.Err() when ctx is cancelled; any other error means the event source is unusable.
	Wait(ctx context.Context) ([]domain.WatchEvent, error)
	// Close releases the event source.
	Close() error
}

// NotifierFactory creates notifiers for a named backend.
type NotifierFactory interface {
	// New returns a notifier for backend ("auto", "inotify" or "fsnotify").
	New(backend string) (Notifier, error)
}
