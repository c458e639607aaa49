// Package bench drives block-wise compression benchmarks.
//
// A Driver loads a file into a page-aligned buffer, truncates it to a whole
// number of fixed-size blocks, optionally shuffles it at page granularity,
// then times N full compression passes followed by N full decompression
// passes with one codec instance. Per-block compressed lengths are recorded
// so the decompression loop can hand each block exactly the bytes its final
// compression produced.
//
// The driver is strictly sequential: one goroutine, one codec instance, one
// block at a time. Any codec error is fatal for the run; a silently degraded
// run would report misleading numbers.
package bench

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/fastcompress/blockbench/codec"
	"github.com/fastcompress/blockbench/internal/alloc"
)

// compressWindowFactor sizes each block's destination window at a fixed
// worst-case multiple of the block size.
const compressWindowFactor = 2

// Driver owns the buffers and bookkeeping of one benchmark run.
type Driver struct {
	cfg   Config
	codec codec.Codec

	// src holds the usable file content, page-aligned. The decompression
	// loop writes back into it in place.
	src []byte

	// compressed holds one window of compressWindowFactor*blockSize bytes
	// per block, page-aligned.
	compressed []byte

	// sizes records the compressed length per block index. Each iteration
	// overwrites the previous one; only the final iteration's lengths feed
	// the decompression loop, which is sound because iterations re-compress
	// identical content with a deterministic codec.
	sizes []int

	// digest is the xxhash64 of src taken after load and shuffle, re-checked
	// after the decompression loop.
	digest uint64
}

// NewDriver validates the configuration and constructs the codec. The input
// file is not touched until Load or Run.
func NewDriver(cfg Config) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c, err := codec.New(cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	return &Driver{cfg: cfg, codec: c}, nil
}

// Size returns the usable input size in bytes after block truncation.
// It is zero before Load.
func (d *Driver) Size() int64 {
	return int64(len(d.src))
}

// Blocks returns the number of blocks per iteration. It is zero before Load.
func (d *Driver) Blocks() int {
	return len(d.sizes)
}

// Load reads the input file into a page-aligned buffer, truncating the
// logical size down to the nearest block multiple. A trailing partial block
// is dropped rather than padded, trading a sliver of coverage for uniform
// block timing. A file smaller than one block leaves nothing to benchmark
// and is rejected.
func (d *Driver) Load() error {
	f, err := os.Open(d.cfg.Path)
	if err != nil {
		return fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat input file: %w", err)
	}

	blockSize := int64(d.cfg.BlockSize())
	size := info.Size() / blockSize * blockSize
	if size == 0 {
		return fmt.Errorf("file %s (%d bytes) is smaller than one block (%d bytes)",
			d.cfg.Path, info.Size(), blockSize)
	}

	d.src = alloc.Bytes(int(size), PageSize)
	if _, err := io.ReadFull(f, d.src); err != nil {
		return fmt.Errorf("read input file: %w", err)
	}

	nblock := len(d.src) / int(blockSize)
	d.compressed = alloc.Bytes(nblock*compressWindowFactor*int(blockSize), PageSize)
	d.sizes = make([]int, nblock)

	if d.cfg.Shuffle {
		d.shufflePages()
	}
	d.digest = xxhash.Sum64(d.src)

	return nil
}

// shufflePages permutes the loaded buffer at page granularity with an
// unbiased Fisher-Yates shuffle. The process-global generator is seeded from
// the runtime's entropy source.
func (d *Driver) shufflePages() {
	var tmp [PageSize]byte

	rand.Shuffle(len(d.src)/PageSize, func(i, j int) {
		pi := d.src[i*PageSize : (i+1)*PageSize]
		pj := d.src[j*PageSize : (j+1)*PageSize]
		copy(tmp[:], pi)
		copy(pi, pj)
		copy(pj, tmp[:])
	})
}

// Run executes the benchmark and returns its metrics. Load is performed
// first if the caller has not done so. The run either completes or the first
// codec failure aborts it; there is no retry, because the codecs are
// deterministic and identical input would fail identically.
func (d *Driver) Run() (*Result, error) {
	if d.src == nil {
		if err := d.Load(); err != nil {
			return nil, err
		}
	}

	res := &Result{
		Algorithm:  d.cfg.Algorithm,
		FileBytes:  int64(len(d.src)),
		Blocks:     len(d.sizes),
		Iterations: d.cfg.Iterations,
	}

	if err := d.compressLoop(res); err != nil {
		return nil, err
	}
	if err := d.decompressLoop(res); err != nil {
		return nil, err
	}

	if xxhash.Sum64(d.src) != d.digest {
		return nil, errors.New("round-trip verification failed: source buffer digest mismatch")
	}

	return res, nil
}

func (d *Driver) compressLoop(res *Result) error {
	blockSize := d.cfg.BlockSize()
	window := compressWindowFactor * blockSize

	start := time.Now()
	for it := 0; it < d.cfg.Iterations; it++ {
		for bid := range d.sizes {
			src := d.src[bid*blockSize : (bid+1)*blockSize]
			// Full slice expressions keep codec writes confined to this
			// block's window even through append-style library calls.
			dst := d.compressed[bid*window : (bid+1)*window : (bid+1)*window]

			n, err := d.codec.Compress(dst, src)
			if err != nil {
				return fmt.Errorf("compress block %d: %w", bid, err)
			}
			res.CompressedBytes += int64(n)
			d.sizes[bid] = n
		}
	}
	res.CompressTime = time.Since(start)

	return nil
}

func (d *Driver) decompressLoop(res *Result) error {
	blockSize := d.cfg.BlockSize()
	window := compressWindowFactor * blockSize

	start := time.Now()
	for it := 0; it < d.cfg.Iterations; it++ {
		for bid := range d.sizes {
			src := d.compressed[bid*window : bid*window+d.sizes[bid]]
			dst := d.src[bid*blockSize : (bid+1)*blockSize : (bid+1)*blockSize]

			n, err := d.codec.Decompress(dst, src)
			if err != nil {
				return fmt.Errorf("decompress block %d: %w", bid, err)
			}
			if n != blockSize {
				return fmt.Errorf("decompress block %d: got %d bytes, want %d", bid, n, blockSize)
			}
		}
	}
	res.DecompressTime = time.Since(start)

	return nil
}
