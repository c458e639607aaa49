package format

import "fmt"

// Algorithm identifies a lossless compression algorithm.
type Algorithm uint8

const (
	AlgorithmNone    Algorithm = 0x1 // AlgorithmNone represents no compression (pass-through baseline).
	AlgorithmLZ4     Algorithm = 0x2 // AlgorithmLZ4 represents LZ4 block compression.
	AlgorithmLZ4HC   Algorithm = 0x3 // AlgorithmLZ4HC represents LZ4 high-compression mode.
	AlgorithmLZO     Algorithm = 0x4 // AlgorithmLZO represents LZO1X compression.
	AlgorithmLZORLE  Algorithm = 0x5 // AlgorithmLZORLE represents LZO1X followed by a run-length pass.
	AlgorithmZstd    Algorithm = 0x6 // AlgorithmZstd represents Zstandard compression.
	AlgorithmDeflate Algorithm = 0x7 // AlgorithmDeflate represents zlib/deflate compression.
	AlgorithmS2      Algorithm = 0x8 // AlgorithmS2 represents S2 compression.
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmNone:
		return "none"
	case AlgorithmLZ4:
		return "lz4"
	case AlgorithmLZ4HC:
		return "lz4hc"
	case AlgorithmLZO:
		return "lzo"
	case AlgorithmLZORLE:
		return "lzo-rle"
	case AlgorithmZstd:
		return "zstd"
	case AlgorithmDeflate:
		return "deflate842"
	case AlgorithmS2:
		return "s2"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a textual algorithm name to its Algorithm value.
//
// Recognized names: none, lz4, lz4hc, lzo, lzo-rle, zstd, deflate842, s2.
// An unrecognized name is a configuration error, detected before any data
// is touched.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "none":
		return AlgorithmNone, nil
	case "lz4":
		return AlgorithmLZ4, nil
	case "lz4hc":
		return AlgorithmLZ4HC, nil
	case "lzo":
		return AlgorithmLZO, nil
	case "lzo-rle":
		return AlgorithmLZORLE, nil
	case "zstd":
		return AlgorithmZstd, nil
	case "deflate842":
		return AlgorithmDeflate, nil
	case "s2":
		return AlgorithmS2, nil
	default:
		return 0, fmt.Errorf("unrecognized compression algorithm: %q", name)
	}
}
