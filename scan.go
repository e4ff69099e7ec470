package fastdl

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Walk returns the regular files reachable from root. Symbolic links are
// followed, hidden entries (a name starting with ".") are skipped along with
// their subtrees, and any entry that cannot be read or stat'd is dropped.
//
// Only an inaccessible root is an error. The root itself is never treated as
// hidden, so Walk(".") scans the working directory.
func Walk(root string, log *zap.Logger) (iter.Seq[string], error) {
	if log == nil {
		log = zap.NewNop()
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRoot, err)
	}
	w := &walker{log: log}
	return func(yield func(string) bool) {
		if info.Mode().IsRegular() {
			yield(root)
			return
		}
		if !info.IsDir() {
			return
		}
		w.dir(root, []os.FileInfo{info}, yield)
	}, nil
}

type walker struct {
	log *zap.Logger
}

// dir visits the entries of path in name order. ancestors holds the stat of
// every directory from the root down to path and is used to break symlink
// cycles. It returns false once yield has asked to stop.
func (w *walker) dir(path string, ancestors []os.FileInfo, yield func(string) bool) bool {
	entries, err := os.ReadDir(path)
	if err != nil {
		w.log.Debug("skip unreadable directory", zap.String("path", path), zap.Error(err))
		// ReadDir may still return the entries it read before failing.
		if len(entries) == 0 {
			return true
		}
	}
	for _, e := range entries {
		if isHidden(e.Name()) {
			continue
		}
		child := filepath.Join(path, e.Name())
		info, err := os.Stat(child)
		if err != nil {
			w.log.Debug("skip entry", zap.String("path", child), zap.Error(err))
			continue
		}
		switch {
		case info.IsDir():
			if loopsBack(info, ancestors) {
				w.log.Debug("skip symlink loop", zap.String("path", child))
				continue
			}
			if !w.dir(child, append(ancestors, info), yield) {
				return false
			}
		case info.Mode().IsRegular():
			if !yield(child) {
				return false
			}
		}
	}
	return true
}

func loopsBack(info os.FileInfo, ancestors []os.FileInfo) bool {
	for _, a := range ancestors {
		if os.SameFile(info, a) {
			return true
		}
	}
	return false
}
