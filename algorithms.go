package fastdl

import (
	"io"

	"github.com/andybalholm/brotli"
	"github.com/dsnet/compress/bzip2"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// createCompressor creates a compressor for the specified algorithm.
// A zero level selects the best compression the algorithm offers.
func createCompressor(algo Algorithm, w io.Writer, level int) (io.WriteCloser, error) {
	switch algo {
	case AlgorithmBzip2:
		return createBzip2Compressor(w, level)
	case AlgorithmGzip:
		return createGzipCompressor(w, level)
	case AlgorithmZstd:
		return createZstdCompressor(w, level)
	case AlgorithmLZ4:
		return createLZ4Compressor(w, level)
	case AlgorithmBrotli:
		return createBrotliCompressor(w, level)
	case AlgorithmSnappy:
		return createSnappyCompressor(w, level)
	default:
		return nil, ErrUnsupportedAlgorithm
	}
}

// createDecompressor creates a decompressor for the specified algorithm
func createDecompressor(algo Algorithm, r io.Reader) (io.ReadCloser, error) {
	switch algo {
	case AlgorithmBzip2:
		return createBzip2Decompressor(r)
	case AlgorithmGzip:
		return createGzipDecompressor(r)
	case AlgorithmZstd:
		return createZstdDecompressor(r)
	case AlgorithmLZ4:
		return createLZ4Decompressor(r)
	case AlgorithmBrotli:
		return createBrotliDecompressor(r)
	case AlgorithmSnappy:
		return createSnappyDecompressor(r)
	default:
		return nil, ErrUnsupportedAlgorithm
	}
}

// Bzip2 has no block parallelism here, each file is one sequential stream.
func createBzip2Compressor(w io.Writer, level int) (io.WriteCloser, error) {
	if level == 0 {
		level = bzip2.BestCompression
	}
	return bzip2.NewWriter(w, &bzip2.WriterConfig{Level: level})
}

func createBzip2Decompressor(r io.Reader) (io.ReadCloser, error) {
	return bzip2.NewReader(r, nil)
}

func createGzipCompressor(w io.Writer, level int) (io.WriteCloser, error) {
	if level == 0 {
		level = gzip.BestCompression
	}
	return gzip.NewWriterLevel(w, level)
}

func createGzipDecompressor(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

func createZstdCompressor(w io.Writer, level int) (io.WriteCloser, error) {
	encLevel := zstd.SpeedBestCompression
	if level != 0 {
		encLevel = zstd.EncoderLevelFromZstd(level)
	}
	// Workers already run one file each.
	return zstd.NewWriter(w, zstd.WithEncoderLevel(encLevel), zstd.WithEncoderConcurrency(1))
}

func createZstdDecompressor(r io.Reader) (io.ReadCloser, error) {
	d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return d.IOReadCloser(), nil
}

var lz4Levels = []lz4.CompressionLevel{
	lz4.Level1, lz4.Level2, lz4.Level3,
	lz4.Level4, lz4.Level5, lz4.Level6,
	lz4.Level7, lz4.Level8, lz4.Level9,
}

func createLZ4Compressor(w io.Writer, level int) (io.WriteCloser, error) {
	lvl := lz4.Level9
	if level >= 1 && level <= len(lz4Levels) {
		lvl = lz4Levels[level-1]
	} else if level != 0 {
		return nil, ErrInvalidLevel
	}
	zw := lz4.NewWriter(w)
	if err := zw.Apply(lz4.CompressionLevelOption(lvl)); err != nil {
		return nil, err
	}
	return zw, nil
}

func createLZ4Decompressor(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

func createBrotliCompressor(w io.Writer, level int) (io.WriteCloser, error) {
	if level == 0 {
		level = brotli.BestCompression
	}
	return brotli.NewWriterLevel(w, level), nil
}

func createBrotliDecompressor(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(brotli.NewReader(r)), nil
}

// Snappy has no levels; the framed format is used so artifacts are streamable.
func createSnappyCompressor(w io.Writer, level int) (io.WriteCloser, error) {
	return snappy.NewBufferedWriter(w), nil
}

func createSnappyDecompressor(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(snappy.NewReader(r)), nil
}
