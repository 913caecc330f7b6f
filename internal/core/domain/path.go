package domain

import "unique"

// InternedPath is a watched path interned through unique.Handle.
// Every path is re-armed after each event for the lifetime of the process, so
// the watch registry keys paths by handle rather than by string.
type InternedPath struct {
	h unique.Handle[string]
}

// NewInternedPath interns p as given; no cleaning is applied so log lines
// show the path the way the user wrote it.
func NewInternedPath(p string) InternedPath {
	return InternedPath{h: unique.Make(p)}
}

// String returns the path.
func (p InternedPath) String() string {
	return p.h.Value()
}

// Value returns the underlying handle.
func (p InternedPath) Value() unique.Handle[string] {
	return p.h
}
