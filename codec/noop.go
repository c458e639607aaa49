package codec

import "fmt"

// NoOpCodec copies bytes without compressing them.
//
// It is useful as a baseline: the benchmark overhead measured with this codec
// (block loop, buffer traffic, bookkeeping) is the floor every real algorithm
// pays before doing any compression work.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a new pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

func (c NoOpCodec) CompressBound(srcLen int) int {
	return srcLen
}

// Compress copies src into dst unchanged.
func (c NoOpCodec) Compress(dst, src []byte) (int, error) {
	if len(src) > len(dst) {
		return 0, fmt.Errorf("noop: input size %d exceeds destination capacity %d: %w",
			len(src), len(dst), ErrDstTooSmall)
	}

	return copy(dst, src), nil
}

// Decompress copies src into dst unchanged.
func (c NoOpCodec) Decompress(dst, src []byte) (int, error) {
	if len(src) > len(dst) {
		return 0, fmt.Errorf("noop: input size %d exceeds destination capacity %d: %w",
			len(src), len(dst), ErrDstTooSmall)
	}

	return copy(dst, src), nil
}
