package fastdl

import (
	"bytes"
	"context"
	"io"

	"go.uber.org/zap"
)

// Run plans root and compresses the resulting work list. Scanning finishes
// before any compression starts. On the first compression failure Run
// returns that error along with the stats for what did complete.
func Run(ctx context.Context, root string, config *Config) (*Stats, error) {
	config = config.withDefaults()
	c, err := NewCompressor(config)
	if err != nil {
		return nil, err
	}
	wl, err := Plan(root, config)
	if err != nil {
		return nil, err
	}
	err = c.Run(ctx, wl)
	stats := c.Stats()
	if err != nil {
		return stats, err
	}
	config.Logger.Info("mirror ready",
		zap.String("root", root),
		zap.Int64("files", stats.FilesCompressed),
		zap.Int64("bytes_read", stats.BytesRead),
		zap.Int64("bytes_written", stats.BytesWritten),
		zap.Float64("ratio", stats.CompressionRatio()),
		zap.Float64("saved_pct", GetCompressionPercentage(stats.BytesRead, stats.BytesWritten)))
	return stats, nil
}

// CompressBytes compresses a byte slice using the specified algorithm and level
func CompressBytes(data []byte, algo Algorithm, level int) ([]byte, error) {
	var buf bytes.Buffer
	compressor, err := createCompressor(algo, &buf, level)
	if err != nil {
		return nil, err
	}

	if _, err := compressor.Write(data); err != nil {
		return nil, err
	}

	if err := compressor.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// DecompressBytes decompresses a byte slice using the specified algorithm
func DecompressBytes(data []byte, algo Algorithm) ([]byte, error) {
	decompressor, err := createDecompressor(algo, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer decompressor.Close()

	return io.ReadAll(decompressor)
}

// GetCompressionRatio calculates the compression ratio for given original and compressed sizes
// Returns a value between 0 and 1, where lower is better
// E.g., 0.5 means the compressed size is 50% of the original
func GetCompressionRatio(originalSize, compressedSize int64) float64 {
	if originalSize == 0 {
		return 0
	}
	return float64(compressedSize) / float64(originalSize)
}

// GetCompressionPercentage calculates the compression percentage
// Returns the percentage of space saved (0-100)
// E.g., 50 means 50% space savings
func GetCompressionPercentage(originalSize, compressedSize int64) float64 {
	if originalSize == 0 {
		return 0
	}
	return (1 - float64(compressedSize)/float64(originalSize)) * 100
}
