//go:build cgo_zstd

package codec

import (
	"fmt"

	"github.com/valyala/gozstd"
)

// Compress compresses src into dst as a single Zstandard frame using libzstd
// at level 1.
func (c ZstdCodec) Compress(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	out := gozstd.CompressLevel(dst[:0:len(dst)], src, 1)
	if len(out) > len(dst) {
		return 0, fmt.Errorf("zstd: compressed size %d exceeds destination capacity %d: %w",
			len(out), len(dst), ErrDstTooSmall)
	}
	if &out[0] != &dst[0] {
		copy(dst, out)
	}

	return len(out), nil
}

// Decompress decompresses one Zstandard frame from src into dst using libzstd.
func (c ZstdCodec) Decompress(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	out, err := gozstd.Decompress(dst[:0:len(dst)], src)
	if err != nil {
		return 0, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if len(out) > len(dst) {
		return 0, fmt.Errorf("zstd: decompressed size %d exceeds destination capacity %d: %w",
			len(out), len(dst), ErrDstTooSmall)
	}
	if len(out) > 0 && &out[0] != &dst[0] {
		copy(dst, out)
	}

	return len(out), nil
}
