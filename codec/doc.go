// Package codec provides interchangeable lossless block codecs behind one
// destination-buffer-oriented contract.
//
// # Overview
//
// Every codec implements the same three-method interface:
//
//	type Codec interface {
//	    CompressBound(srcLen int) int
//	    Compress(dst, src []byte) (int, error)
//	    Decompress(dst, src []byte) (int, error)
//	}
//
// The contract is built for benchmarking fixed-size blocks: the caller owns
// and pre-sizes every buffer, operations never allocate destination memory,
// and Decompress is handed exactly the compressed bytes a prior Compress
// produced. CompressBound reports the worst-case expansion so destinations
// can be sized once up front.
//
// # Supported algorithms
//
//   - lz4, lz4hc — LZ4 block format (github.com/pierrec/lz4/v4), default and
//     high-compression modes
//   - lzo — LZO1X-1 (github.com/woozymasta/lzo)
//   - lzo-rle — LZO1X followed by a fixed-width run-length pass; the layered
//     codec implemented by this package itself
//   - zstd — Zstandard (github.com/klauspost/compress/zstd, or libzstd via
//     the cgo_zstd build tag)
//   - deflate842 — zlib/deflate (github.com/klauspost/compress/zlib)
//   - s2 — S2 (github.com/klauspost/compress/s2)
//   - none — pass-through baseline
//
// Codecs are constructed through the factory:
//
//	c, err := codec.New(format.AlgorithmLZORLE)
//	if err != nil {
//	    // unknown algorithm: configuration error
//	}
//	dst := make([]byte, c.CompressBound(len(src)))
//	n, err := c.Compress(dst, src)
//
// # Error model
//
// Failures are never absorbed: a codec either returns the exact byte count it
// wrote or an error. Output that would overflow the destination is detected
// before any out-of-bounds write and reported wrapping ErrDstTooSmall.
// Malformed run-length streams decode to an error wrapping ErrMalformedRLE.
// Callers running benchmarks should treat any codec error as fatal for the
// run, since silently degraded results are worse than a clean abort.
//
// # Concurrency
//
// Codec instances may keep scratch state between calls (the lzo-rle
// intermediate, the deflate reader/writer) and are not safe for concurrent
// use. Construct one instance per goroutine.
package codec
