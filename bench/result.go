package bench

import (
	"time"

	"github.com/fastcompress/blockbench/format"
)

// Result holds the aggregate metrics of one completed run.
type Result struct {
	// Algorithm is the codec the run was driven with.
	Algorithm format.Algorithm

	// FileBytes is the usable input size after block truncation.
	FileBytes int64

	// Blocks is the number of blocks per iteration.
	Blocks int

	// Iterations is the number of compression/decompression passes.
	Iterations int

	// CompressedBytes is the compressed output summed across all iterations
	// and blocks.
	CompressedBytes int64

	// CompressTime and DecompressTime are the wall-clock durations of the
	// two loops.
	CompressTime   time.Duration
	DecompressTime time.Duration
}

// TotalBytes is the data volume each loop processed: the usable file size
// times the iteration count.
func (r Result) TotalBytes() int64 {
	return r.FileBytes * int64(r.Iterations)
}

// CompressionThroughput returns the compression data rate in MiB per second.
func (r Result) CompressionThroughput() float64 {
	return throughput(r.TotalBytes(), r.CompressTime)
}

// DecompressionThroughput returns the decompression data rate in MiB per second.
func (r Result) DecompressionThroughput() float64 {
	return throughput(r.TotalBytes(), r.DecompressTime)
}

// Ratio returns the compression ratio as original size over compressed size.
func (r Result) Ratio() float64 {
	if r.CompressedBytes == 0 {
		return 0
	}

	return float64(r.TotalBytes()) / float64(r.CompressedBytes)
}

// InverseRatio returns compressed size over original size.
func (r Result) InverseRatio() float64 {
	if r.TotalBytes() == 0 {
		return 0
	}

	return float64(r.CompressedBytes) / float64(r.TotalBytes())
}

func throughput(bytes int64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}

	return float64(bytes) / MiB / elapsed.Seconds()
}
