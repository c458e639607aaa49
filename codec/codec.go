package codec

import (
	"errors"
	"fmt"

	"github.com/fastcompress/blockbench/format"
)

var (
	// ErrUnknownAlgorithm is returned by New for an unrecognized algorithm
	// value. This is a configuration error, raised before any data is touched.
	ErrUnknownAlgorithm = errors.New("unknown compression algorithm")

	// ErrDstTooSmall is returned when an operation's output would exceed the
	// destination capacity. It is detected before any out-of-bounds write.
	ErrDstTooSmall = errors.New("destination buffer too small")

	// ErrMalformedRLE is returned when a run-length stream cannot be decoded
	// as consecutive (value, count) pairs.
	ErrMalformedRLE = errors.New("malformed run-length stream")
)

// Codec provides one-shot block compression and decompression over
// caller-owned, pre-sized buffers.
//
// Both operations write only within dst and return the number of bytes
// written. The interface never allocates destination memory: callers size dst
// from CompressBound before compressing, and from the known original length
// before decompressing.
//
// Decompress must be given exactly the bytes produced by Compress on the same
// codec; the caller is responsible for tracking the compressed length.
//
// Codec instances may retain internal scratch state between calls and are not
// safe for concurrent use. Concurrent workers must construct one instance
// each.
type Codec interface {
	// CompressBound returns the worst-case compressed size for srcLen input
	// bytes. A dst of at least this length never fails with ErrDstTooSmall.
	CompressBound(srcLen int) int

	// Compress compresses src into dst and returns the compressed length.
	Compress(dst, src []byte) (int, error)

	// Decompress decompresses src into dst and returns the decompressed
	// length. src must be exactly one compressed block, nothing more.
	Decompress(dst, src []byte) (int, error)
}

// New constructs a Codec for the given algorithm.
//
// Construction is cheap; any per-algorithm scratch state is owned by the
// returned instance, so there is no process-wide initialization to perform.
//
// Returns an error wrapping ErrUnknownAlgorithm for unrecognized values.
func New(alg format.Algorithm) (Codec, error) {
	switch alg {
	case format.AlgorithmNone:
		return NewNoOpCodec(), nil
	case format.AlgorithmLZ4:
		return NewLZ4Codec(), nil
	case format.AlgorithmLZ4HC:
		return NewLZ4HCCodec(), nil
	case format.AlgorithmLZO:
		return NewLZOCodec(), nil
	case format.AlgorithmLZORLE:
		return NewLZORLECodec(), nil
	case format.AlgorithmZstd:
		return NewZstdCodec(), nil
	case format.AlgorithmDeflate:
		return NewDeflateCodec(), nil
	case format.AlgorithmS2:
		return NewS2Codec(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
}

// NewFromName constructs a Codec from a textual algorithm name.
func NewFromName(name string) (Codec, error) {
	alg, err := format.ParseAlgorithm(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return New(alg)
}
