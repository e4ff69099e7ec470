package fastdl

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// Progress numbers completed items and writes one "[n/total] path" line per
// completion. It is safe for concurrent use; n values are unique and cover
// 1..total, in whatever order the workers finish.
type Progress struct {
	total int
	done  atomic.Int64
	out   io.Writer
	mu    sync.Mutex // serializes whole lines on out
}

// NewProgress returns a counter for a work list of total items.
func NewProgress(total int, out io.Writer) *Progress {
	return &Progress{total: total, out: out}
}

// Done records one completed item and prints its progress line. It returns
// the completion number observed by the caller and any error writing the line.
func (p *Progress) Done(path string) (int, error) {
	n := int(p.done.Add(1))
	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := fmt.Fprintf(p.out, "[%d/%d] %s\n", n, p.total, path)
	return n, err
}

// Completed returns how many items have been recorded.
func (p *Progress) Completed() int {
	return int(p.done.Load())
}
