package codec

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

// NewS2Codec creates a new S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

func (c S2Codec) CompressBound(srcLen int) int {
	return s2.MaxEncodedLen(srcLen)
}

// Compress compresses src into dst using S2 block encoding.
func (c S2Codec) Compress(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	// Encode uses dst in place when its capacity covers MaxEncodedLen and
	// allocates otherwise; the allocated result may still fit dst. Clipping
	// keeps Encode from spilling past len(dst) into a larger backing array.
	out := s2.Encode(dst[:len(dst):len(dst)], src)
	if len(out) > len(dst) {
		return 0, fmt.Errorf("s2: compressed size %d exceeds destination capacity %d: %w",
			len(out), len(dst), ErrDstTooSmall)
	}
	if &out[0] != &dst[0] {
		copy(dst, out)
	}

	return len(out), nil
}

// Decompress decompresses one S2 block from src into dst.
func (c S2Codec) Decompress(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	out, err := s2.Decode(dst[:len(dst):len(dst)], src)
	if err != nil {
		return 0, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if len(out) > len(dst) {
		return 0, fmt.Errorf("s2: decompressed size %d exceeds destination capacity %d: %w",
			len(out), len(dst), ErrDstTooSmall)
	}
	if len(out) > 0 && &out[0] != &dst[0] {
		copy(dst, out)
	}

	return len(out), nil
}
