// Command blockbench measures compression and decompression throughput of a
// chosen codec over fixed-size, page-aligned blocks of a file.
//
// Usage:
//
//	blockbench <file> <pages> <iterations> [shuffle] [algorithm]
package main

import (
	"os"
	"runtime"

	"github.com/alecthomas/kingpin/v2"
	"github.com/sirupsen/logrus"

	"github.com/fastcompress/blockbench/bench"
	"github.com/fastcompress/blockbench/format"
	"github.com/fastcompress/blockbench/internal/cpuaffinity"
)

var (
	app        = kingpin.New("blockbench", "Block-wise lossless compression benchmark.")
	filePath   = app.Arg("file", "Input file to benchmark against.").Required().ExistingFile()
	blockPages = app.Arg("pages", "Block size in 4 KiB pages.").Required().Int()
	iterations = app.Arg("iterations", "Number of benchmark iterations.").Required().Int()
	shuffle    = app.Arg("shuffle", "Shuffle the input at page granularity before the run.").Default("false").Bool()
	algorithm  = app.Arg("algorithm", "Compression algorithm: lz4hc, lz4, lzo, lzo-rle, zstd, deflate842, s2 or none.").
			Default("zstd").String()
)

func main() {
	log := logrus.New()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	alg, err := format.ParseAlgorithm(*algorithm)
	if err != nil {
		log.Fatal(err)
	}

	cfg := bench.Config{
		Path:       *filePath,
		BlockPages: *blockPages,
		Iterations: *iterations,
		Shuffle:    *shuffle,
		Algorithm:  alg,
	}

	// Keep the benchmark loop on one pinned thread so scheduling noise does
	// not leak into the timings. Failure to pin is not fatal.
	runtime.LockOSThread()
	if err := cpuaffinity.Pin(0); err != nil {
		log.WithError(err).Warn("CPU pinning failed, timings may be noisier")
	}

	driver, err := bench.NewDriver(cfg)
	if err != nil {
		log.Fatal(err)
	}

	log.Infof("algorithm %s, block size %d pages, number of iterations %d",
		cfg.Algorithm, cfg.BlockPages, cfg.Iterations)

	if err := driver.Load(); err != nil {
		log.Fatal(err)
	}
	log.Infof("file size %d, number of blocks %d", driver.Size(), driver.Blocks())

	res, err := driver.Run()
	if err != nil {
		log.Fatal(err)
	}

	log.Infof("compression throughput %.2f MiB/second", res.CompressionThroughput())
	log.Infof("compression ratio (original size / compressed size) %.3f, compressed size / original size %.3f",
		res.Ratio(), res.InverseRatio())
	log.Infof("decompression throughput %.2f MiB/second", res.DecompressionThroughput())
}
