package dispatcher

import (
	"unique"

	"github.com/snobb/imk/internal/core/domain"
	"github.com/snobb/imk/internal/core/ports"
)

// Registry maps live watch handles to the paths they were armed for.
// It is owned by the dispatch loop and is not safe for concurrent use.
type Registry struct {
	notifier ports.Notifier
	byHandle map[domain.WatchHandle]domain.InternedPath
	byPath   map[unique.Handle[string]]domain.WatchHandle
}

// NewRegistry creates an empty Registry arming watches through notifier.
func NewRegistry(notifier ports.Notifier) *Registry {
	return &Registry{
		notifier: notifier,
		byHandle: make(map[domain.WatchHandle]domain.InternedPath),
		byPath:   make(map[unique.Handle[string]]domain.WatchHandle),
	}
}

// Arm subscribes to one-shot events on path.
// A path that already has a live handle keeps it.
func (r *Registry) Arm(path string) (domain.WatchHandle, error) {
	p := domain.NewInternedPath(path)
	if h, ok := r.byPath[p.Value()]; ok {
		return h, nil
	}

	h, err := r.notifier.Arm(path)
	if err != nil {
		return 0, err
	}

	// Backends that coalesce watches per inode may hand out a handle that is
	// already registered for another spelling of the same path.
	if old, ok := r.byHandle[h]; ok {
		delete(r.byPath, old.Value())
	}
	r.byHandle[h] = p
	r.byPath[p.Value()] = h
	return h, nil
}

// Disarm consumes a fired handle and returns its path.
// Unknown or already consumed handles report false.
func (r *Registry) Disarm(h domain.WatchHandle) (string, bool) {
	p, ok := r.byHandle[h]
	if !ok {
		return "", false
	}
	delete(r.byHandle, h)
	delete(r.byPath, p.Value())
	return p.String(), true
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	return len(r.byHandle)
}
