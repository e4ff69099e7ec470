package fastdl

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Compressor compresses a work list on a fixed set of workers.
type Compressor struct {
	config *Config
	stats  counters
}

// NewCompressor creates a compressor. A nil config uses DefaultConfig.
func NewCompressor(config *Config) (*Compressor, error) {
	config = config.withDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Compressor{config: config}, nil
}

// Workers returns the size of the worker pool.
func (c *Compressor) Workers() int {
	return c.config.Workers
}

// Stats returns a snapshot of what has been compressed so far.
func (c *Compressor) Stats() *Stats {
	return c.stats.snapshot()
}

// Run compresses every item of wl. Each worker claims the next unclaimed item
// and finishes it before claiming another. The first failure stops workers
// from claiming new items; items already in flight still complete, and Run
// returns that first error. Nothing is retried.
func (c *Compressor) Run(ctx context.Context, wl *WorkList) error {
	progress := NewProgress(wl.Total(), c.config.Output)
	g, gctx := errgroup.WithContext(ctx)

	var next atomic.Int64
	workers := min(c.config.Workers, wl.Total())
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for gctx.Err() == nil {
				idx := int(next.Add(1)) - 1
				if idx >= wl.Total() {
					return nil
				}
				if err := c.compressOne(wl.Items[idx], progress); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		c.config.Logger.Error("compression aborted",
			zap.Int("completed", progress.Completed()),
			zap.Int("total", wl.Total()),
			zap.Error(err))
		return err
	}
	// gctx is always done once Wait returns; only the caller's ctx matters here.
	return ctx.Err()
}

func (c *Compressor) compressOne(path string, progress *Progress) error {
	dst := ArtifactName(path, c.config.Algorithm)
	read, written, err := CompressFile(path, dst, c.config.Algorithm, c.config.Level)
	c.stats.bytesRead.Add(read)
	c.stats.bytesWritten.Add(written)
	if err != nil {
		return err
	}
	c.stats.filesCompressed.Add(1)
	// A progress line that cannot be written is as fatal as a failed write.
	if _, err := progress.Done(path); err != nil {
		return &ItemError{Op: "report", Path: path, Err: err}
	}
	return nil
}
