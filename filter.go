package fastdl

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// WorkList is the materialized set of files to compress. It is computed once,
// before compression starts, and its size never changes afterwards.
type WorkList struct {
	Root  string
	Items []string
}

// Total returns the number of work items.
func (wl *WorkList) Total() int {
	return len(wl.Items)
}

// Eligible reports whether path is an asset without an existing artifact.
//
// The existence test is point-in-time and takes no lock: an artifact created
// by another process after this returns will be overwritten.
func Eligible(path string, cfg *Config) bool {
	cfg = cfg.withDefaults()
	if !IsAsset(path) {
		return false
	}
	// Lstat so a dangling artifact symlink still counts as present.
	if _, err := os.Lstat(ArtifactName(path, cfg.Algorithm)); err == nil {
		return false
	}
	return true
}

// Plan scans root and returns the files that still need an artifact, in scan
// order. Paths reached twice through directory symlinks would share one
// artifact; only the first is kept, so no two items write the same file.
func Plan(root string, cfg *Config) (*WorkList, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	files, err := Walk(root, cfg.Logger)
	if err != nil {
		return nil, err
	}
	wl := &WorkList{Root: root}
	seen := make(map[string]bool)
	for path := range files {
		if !Eligible(path, cfg) {
			continue
		}
		key := artifactKey(path)
		if seen[key] {
			cfg.Logger.Debug("skip duplicate", zap.String("path", path))
			continue
		}
		seen[key] = true
		wl.Items = append(wl.Items, path)
	}
	cfg.Logger.Info("planned work list",
		zap.String("root", root),
		zap.String("algorithm", string(cfg.Algorithm)),
		zap.Int("total", wl.Total()))
	return wl, nil
}

// artifactKey identifies where path's artifact really lands: the resolved
// parent directory plus the file name. Falls back to path if the parent
// cannot be resolved.
func artifactKey(path string) string {
	dir, err := filepath.EvalSymlinks(filepath.Dir(path))
	if err != nil {
		return path
	}
	return filepath.Join(dir, filepath.Base(path))
}
