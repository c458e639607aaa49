package bench

import (
	"errors"
	"fmt"

	"github.com/fastcompress/blockbench/format"
)

const (
	// PageSize is the granularity of buffer alignment and of the optional
	// shuffle pass.
	PageSize = 4096

	// MiB is the unit throughput is reported in.
	MiB = 1 << 20
)

// Config holds the immutable parameters of one benchmark run. It is built
// once at startup and never mutated afterwards.
type Config struct {
	// Path is the input file to benchmark against; its content is treated as
	// opaque bytes.
	Path string

	// BlockPages is the block size in pages; each block of
	// BlockPages*PageSize bytes is one compression unit.
	BlockPages int

	// Iterations is how many times the whole file is re-compressed and
	// re-decompressed to amortize timing noise.
	Iterations int

	// Shuffle randomly permutes the loaded buffer at page granularity before
	// the run, decorrelating source-file ordering from measured throughput.
	Shuffle bool

	// Algorithm selects the codec driven by the run.
	Algorithm format.Algorithm
}

// BlockSize returns the block size in bytes.
func (c Config) BlockSize() int {
	return c.BlockPages * PageSize
}

func (c Config) Validate() error {
	if c.Path == "" {
		return errors.New("input file path is required")
	}
	if c.BlockPages <= 0 {
		return fmt.Errorf("block size must be a positive number of pages, got %d", c.BlockPages)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("iteration count must be positive, got %d", c.Iterations)
	}

	return nil
}
