// Package fs provides file system adapters.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/snobb/imk/internal/core/domain"
	"github.com/snobb/imk/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathExpander = (*Expander)(nil)

// Expander expands directory arguments into their sub-directories.
type Expander struct{}

// NewExpander creates a new Expander.
func NewExpander() *Expander {
	return &Expander{}
}

// Expand returns paths unchanged unless recurse is set. With recurse, each argument is
// followed by the sub-directories found below it in depth-first lexical order.
// Arguments themselves are never filtered; arguments that do not exist are kept so that
// arming them reports the failure.
func (e *Expander) Expand(paths []string, recurse bool, ignore []string) ([]string, error) {
	if !recurse {
		return paths, nil
	}

	out := make([]string, 0, len(paths))
	for _, root := range paths {
		out = append(out, root)

		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			continue
		}

		if err := e.walk(root, ignore, &out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// walk appends every sub-directory of root to out. Symbolic links are not followed.
func (e *Expander) walk(root string, ignore []string, out *[]string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrExpansionFailed.Error()), "path", path)
		}
		if path == root || !d.IsDir() {
			return nil
		}
		if ignored(path, ignore) {
			return fs.SkipDir
		}
		*out = append(*out, path)
		return nil
	})
}

// ignored reports whether path ends with one of the suffixes.
// A relative path like ".git" is matched as if it were "/.git".
func ignored(path string, suffixes []string) bool {
	p := "/" + filepath.ToSlash(path)
	for _, sfx := range suffixes {
		if strings.HasSuffix(p, sfx) {
			return true
		}
	}
	return false
}
