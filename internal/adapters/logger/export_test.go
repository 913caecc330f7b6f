package logger

// ErrorEntry exposes errorEntry for white-box testing.
type ErrorEntry = errorEntry

var (
	CollectErrorEntriesExported = collectErrorEntries
	FormatErrorEntriesExported  = formatErrorEntries
)
