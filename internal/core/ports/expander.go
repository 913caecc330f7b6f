package ports

// PathExpander turns path arguments into the final list of paths to watch.
//
//go:generate mockgen -source=expander.go -destination=mocks/mock_expander.go -package=mocks
type PathExpander interface {
	// Expand returns paths unchanged when recurse is false. Otherwise every directory
	// argument is followed by its sub-directories in depth-first order, skipping any
	// directory whose path ends with one of the ignore suffixes.
	Expand(paths []string, recurse bool, ignore []string) ([]string, error)
}
