package fastdl

import (
	"io"
	"os"
)

// countingWriter counts bytes passed through to w.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// CompressFile streams src through the algorithm's encoder into dst. dst is
// created (or truncated) in place; an interrupted call can leave a partial
// file behind. It returns the bytes read from src and written to dst.
func CompressFile(src, dst string, algo Algorithm, level int) (read, written int64, err error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, 0, &ItemError{Op: "open", Path: src, Err: err}
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, 0, &ItemError{Op: "create", Path: dst, Err: err}
	}

	cw := &countingWriter{w: out}
	compressor, err := createCompressor(algo, cw, level)
	if err != nil {
		out.Close()
		return 0, 0, &ItemError{Op: "compress", Path: src, Err: err}
	}

	read, err = io.Copy(compressor, in)
	if err != nil {
		compressor.Close()
		out.Close()
		return read, cw.n, &ItemError{Op: "compress", Path: src, Err: err}
	}

	// Close compressor to flush the stream trailer
	if err = compressor.Close(); err != nil {
		out.Close()
		return read, cw.n, &ItemError{Op: "compress", Path: src, Err: err}
	}
	if err = out.Close(); err != nil {
		return read, cw.n, &ItemError{Op: "close", Path: dst, Err: err}
	}
	return read, cw.n, nil
}
