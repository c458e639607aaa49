package bench

import (
	"bytes"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fastcompress/blockbench/format"
)

// makeFileContent builds deterministic, moderately compressible content:
// text-like stripes with zero padding and a little noise, the shape real
// files tend to have.
func makeFileContent(size int) []byte {
	data := make([]byte, size)
	pattern := []byte("record 000042 metric=cpu.usage value=73.5 status=ok")
	rng := rand.New(rand.NewPCG(11, 17))

	for i := range data {
		switch {
		case i%512 < 320:
			data[i] = pattern[i%len(pattern)]
		case i%512 < 448:
			data[i] = 0
		default:
			data[i] = byte(rng.Uint32())
		}
	}

	return data
}

func writeTempFile(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.bin")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

func TestConfigValidate(t *testing.T) {
	valid := Config{Path: "x", BlockPages: 1, Iterations: 1, Algorithm: format.AlgorithmLZ4}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing path", func(c *Config) { c.Path = "" }},
		{"zero block pages", func(c *Config) { c.BlockPages = 0 }},
		{"negative block pages", func(c *Config) { c.BlockPages = -1 }},
		{"zero iterations", func(c *Config) { c.Iterations = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestNewDriverUnknownAlgorithm(t *testing.T) {
	_, err := NewDriver(Config{Path: "x", BlockPages: 1, Iterations: 1})
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	d, err := NewDriver(Config{
		Path:       filepath.Join(t.TempDir(), "does-not-exist"),
		BlockPages: 1,
		Iterations: 1,
		Algorithm:  format.AlgorithmLZ4,
	})
	require.NoError(t, err)
	require.Error(t, d.Load())
}

func TestLoadFileSmallerThanBlock(t *testing.T) {
	path := writeTempFile(t, makeFileContent(100))

	d, err := NewDriver(Config{Path: path, BlockPages: 1, Iterations: 1, Algorithm: format.AlgorithmLZ4})
	require.NoError(t, err)
	require.Error(t, d.Load())
}

func TestBlockTruncation(t *testing.T) {
	// 7 whole blocks plus a 100-byte tail: the tail must be dropped, never
	// read into any block.
	blockSize := PageSize
	content := makeFileContent(7*blockSize + 100)
	for i := 7 * blockSize; i < len(content); i++ {
		content[i] = 0xEE
	}
	path := writeTempFile(t, content)

	d, err := NewDriver(Config{Path: path, BlockPages: 1, Iterations: 1, Algorithm: format.AlgorithmLZ4})
	require.NoError(t, err)
	require.NoError(t, d.Load())

	require.Equal(t, int64(7*blockSize), d.Size())
	require.Equal(t, 7, d.Blocks())
	require.Equal(t, content[:7*blockSize], d.src)

	res, err := d.Run()
	require.NoError(t, err)
	require.Equal(t, 7, res.Blocks)
	require.Equal(t, content[:7*blockSize], d.src)
}

func TestRunRestoresSource(t *testing.T) {
	content := makeFileContent(16 * PageSize)
	path := writeTempFile(t, content)

	for _, alg := range []format.Algorithm{
		format.AlgorithmNone,
		format.AlgorithmLZ4,
		format.AlgorithmLZO,
		format.AlgorithmLZORLE,
		format.AlgorithmZstd,
		format.AlgorithmDeflate,
		format.AlgorithmS2,
	} {
		t.Run(alg.String(), func(t *testing.T) {
			d, err := NewDriver(Config{Path: path, BlockPages: 2, Iterations: 2, Algorithm: alg})
			require.NoError(t, err)

			res, err := d.Run()
			require.NoError(t, err)
			require.Equal(t, content, d.src)
			require.Equal(t, int64(len(content)), res.FileBytes)
			require.Equal(t, 8, res.Blocks)
			require.Equal(t, 2, res.Iterations)
			require.Positive(t, res.CompressedBytes)
		})
	}
}

func TestShufflePreservesPages(t *testing.T) {
	content := makeFileContent(32 * PageSize)
	path := writeTempFile(t, content)

	d, err := NewDriver(Config{
		Path:       path,
		BlockPages: 4,
		Iterations: 1,
		Shuffle:    true,
		Algorithm:  format.AlgorithmZstd,
	})
	require.NoError(t, err)
	require.NoError(t, d.Load())

	// The shuffled buffer must be a permutation of the original pages.
	want := map[string]int{}
	got := map[string]int{}
	for i := 0; i < len(content); i += PageSize {
		want[string(content[i:i+PageSize])]++
		got[string(d.src[i:i+PageSize])]++
	}
	require.Equal(t, want, got)

	_, err = d.Run()
	require.NoError(t, err)
}

func TestEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 16 MiB end-to-end run in short mode")
	}

	// 16 MiB file, 4-page (16 KiB) blocks, 3 iterations, lzo-rle.
	content := makeFileContent(16 * MiB)
	path := writeTempFile(t, content)

	d, err := NewDriver(Config{
		Path:       path,
		BlockPages: 4,
		Iterations: 3,
		Algorithm:  format.AlgorithmLZORLE,
	})
	require.NoError(t, err)

	res, err := d.Run()
	require.NoError(t, err)
	require.Equal(t, 1024, res.Blocks)
	require.Len(t, d.sizes, 1024)
	require.True(t, bytes.Equal(content, d.src), "reassembled blocks must match the original file")
	require.Positive(t, res.CompressionThroughput())
	require.Positive(t, res.DecompressionThroughput())
	require.Greater(t, res.Ratio(), 1.0)
}
