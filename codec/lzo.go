package codec

import (
	"fmt"

	"github.com/woozymasta/lzo"
)

// LZOCodec compresses with LZO1X-1, the fast single-level variant of the LZO
// family. The underlying library keeps no global work-area; all scratch state
// is per call, so instances carry no hidden shared memory.
type LZOCodec struct{}

var _ Codec = (*LZOCodec)(nil)

// NewLZOCodec creates a new LZO1X codec.
func NewLZOCodec() LZOCodec {
	return LZOCodec{}
}

func (c LZOCodec) CompressBound(srcLen int) int {
	return lzoCompressBound(srcLen)
}

// lzoCompressBound is the classic LZO worst-case margin for incompressible
// input: srcLen + srcLen/16 + 64 + 3.
func lzoCompressBound(srcLen int) int {
	return srcLen + srcLen/16 + 64 + 3
}

// Compress compresses src into dst as an LZO1X stream.
func (c LZOCodec) Compress(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	out, err := lzo.Compress(src, nil)
	if err != nil {
		return 0, fmt.Errorf("lzo compression failed: %w", err)
	}
	if len(out) > len(dst) {
		return 0, fmt.Errorf("lzo: compressed size %d exceeds destination capacity %d: %w",
			len(out), len(dst), ErrDstTooSmall)
	}

	return copy(dst, out), nil
}

// Decompress decompresses one LZO1X stream from src into dst. src must be
// exactly the compressed bytes; dst caps the decompressed size.
func (c LZOCodec) Decompress(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	out, err := lzo.DecompressInto(src, dst)
	if err != nil {
		return 0, fmt.Errorf("lzo decompression failed: %w", err)
	}

	return len(out), nil
}
