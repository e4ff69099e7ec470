package fastdl

import (
	"path/filepath"
	"strings"
)

// Asset types served over FastDL. Matching is exact, "model.MDL" is not an asset.
var assetExtensions = map[string]bool{
	"vmt": true,
	"vtf": true,
	"vtx": true,
	"phy": true,
	"mdl": true,
	"vvd": true,
	"wav": true,
	"mp3": true,
	"bsp": true,
}

// Extension mapping
var extensionMap = map[Algorithm]string{
	AlgorithmBzip2:  ".bz2",
	AlgorithmGzip:   ".gz",
	AlgorithmZstd:   ".zst",
	AlgorithmLZ4:    ".lz4",
	AlgorithmBrotli: ".br",
	AlgorithmSnappy: ".sz",
}

type levelRange struct{ min, max int }

var levelRanges = map[Algorithm]levelRange{
	AlgorithmBzip2:  {1, 9},
	AlgorithmGzip:   {1, 9},
	AlgorithmZstd:   {1, 22},
	AlgorithmLZ4:    {1, 9},
	AlgorithmBrotli: {1, 11},
	AlgorithmSnappy: {0, 0},
}

// GetExtension returns the file extension for an algorithm
func GetExtension(algo Algorithm) string {
	if ext, ok := extensionMap[algo]; ok {
		return ext
	}
	return ""
}

// IsAsset reports whether name carries one of the FastDL asset extensions.
func IsAsset(name string) bool {
	ext := filepath.Ext(filepath.Base(name))
	if ext == "" {
		return false
	}
	return assetExtensions[strings.TrimPrefix(ext, ".")]
}

// ArtifactName returns the sibling artifact path for name. The suffix is
// appended to the full filename, model.mdl becomes model.mdl.bz2.
func ArtifactName(name string, algo Algorithm) string {
	return name + GetExtension(algo)
}

// isHidden reports whether a directory entry name is hidden.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
