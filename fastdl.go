package fastdl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"
)

// Algorithm represents a compression algorithm
type Algorithm string

const (
	AlgorithmBzip2  Algorithm = "bzip2"
	AlgorithmGzip   Algorithm = "gzip"
	AlgorithmZstd   Algorithm = "zstd"
	AlgorithmLZ4    Algorithm = "lz4"
	AlgorithmBrotli Algorithm = "brotli"
	AlgorithmSnappy Algorithm = "snappy"
)

// Config holds mirror preparation configuration
type Config struct {
	// Algorithm used for artifacts (default: bzip2).
	// Source engine clients only download .bz2, other algorithms are for
	// HTTP front ends serving pre-compressed siblings.
	Algorithm Algorithm

	// Compression level (algorithm-specific, 0 selects the best level)
	// bzip2: 1-9 (9 best)
	// gzip: 1-9 (9 best)
	// zstd: 1-22 (mapped onto the encoder's speed tiers)
	// lz4: 1-9 (9 best)
	// brotli: 1-11 (11 best)
	// snappy: ignored (no levels)
	Level int

	// Number of compression workers (default: runtime.NumCPU())
	Workers int

	// Destination for progress lines (default: os.Stdout)
	Output io.Writer

	// Diagnostics logger (default: no-op)
	Logger *zap.Logger
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Algorithm: AlgorithmBzip2,
		Level:     0,
		Workers:   0,
		Output:    os.Stdout,
		Logger:    zap.NewNop(),
	}
}

// withDefaults returns a copy of cfg with zero fields filled in.
func (cfg *Config) withDefaults() *Config {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	if c.Algorithm == "" {
		c.Algorithm = AlgorithmBzip2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Output == nil {
		c.Output = os.Stdout
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return &c
}

// Validate checks the algorithm and level against the supported ranges.
func (cfg *Config) Validate() error {
	c := cfg.withDefaults()
	r, ok := levelRanges[c.Algorithm]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, c.Algorithm)
	}
	if c.Level != 0 && (c.Level < r.min || c.Level > r.max) {
		return fmt.Errorf("%w: %d for %s (want %d-%d)", ErrInvalidLevel, c.Level, c.Algorithm, r.min, r.max)
	}
	return nil
}

// Stats holds compression statistics
type Stats struct {
	FilesCompressed int64
	BytesRead       int64
	BytesWritten    int64
}

// CompressionRatio returns the overall compression ratio
func (s *Stats) CompressionRatio() float64 {
	return GetCompressionRatio(s.BytesRead, s.BytesWritten)
}

// counters is the live, atomically updated form of Stats.
type counters struct {
	filesCompressed atomic.Int64
	bytesRead       atomic.Int64
	bytesWritten    atomic.Int64
}

func (c *counters) snapshot() *Stats {
	return &Stats{
		FilesCompressed: c.filesCompressed.Load(),
		BytesRead:       c.bytesRead.Load(),
		BytesWritten:    c.bytesWritten.Load(),
	}
}

var (
	ErrUnsupportedAlgorithm = errors.New("fastdl: unsupported compression algorithm")
	ErrInvalidLevel         = errors.New("fastdl: invalid compression level")
	ErrInvalidRoot          = errors.New("fastdl: invalid root")
)

// ItemError reports the work item and operation that aborted a run.
type ItemError struct {
	Op   string // "open", "create", "compress", "close", "report"
	Path string
	Err  error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("fastdl: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }
