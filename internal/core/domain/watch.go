package domain

// WatchHandle is an opaque token identifying one armed subscription.
// A path re-armed after an event gets a fresh handle.
type WatchHandle int64

// EventKind classifies a delivered event.
type EventKind uint8

const (
	// KindOther is any event that does not trigger a command run.
	KindOther EventKind = iota
	// KindModify means the watched file, or a file inside a watched directory, was written.
	KindModify
	// KindMoveSelf means the watched path itself was moved or renamed.
	KindMoveSelf
	// KindIgnored means the subscription was dropped, e.g. because the path was deleted.
	KindIgnored
)

// Qualifies reports whether the event kind may trigger a command run.
func (k EventKind) Qualifies() bool {
	return k == KindModify || k == KindMoveSelf
}

// String returns a short name for the kind.
func (k EventKind) String() string {
	switch k {
	case KindModify:
		return "modify"
	case KindMoveSelf:
		return "move_self"
	case KindIgnored:
		return "ignored"
	default:
		return "other"
	}
}

// WatchEvent is one event delivered by a notifier.
type WatchEvent struct {
	Handle WatchHandle
	Kind   EventKind
}
