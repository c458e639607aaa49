package codec

import (
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal hash-table state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// lz4HCCompressorPool pools high-compression-mode compressors at level 1,
// matching the fast end of the HC range.
var lz4HCCompressorPool = sync.Pool{
	New: func() any {
		return &lz4.CompressorHC{Level: lz4.Level1}
	},
}

type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

// NewLZ4Codec creates a new LZ4 block codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

func (c LZ4Codec) CompressBound(srcLen int) int {
	return lz4.CompressBlockBound(srcLen)
}

// Compress compresses src into dst using the LZ4 block format.
//
// The block API reports incompressible input by returning a zero length; such
// input is stored as a single literal-only sequence so that the output is
// always a valid LZ4 block and decompression needs no side channel.
func (c LZ4Codec) Compress(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	zc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(zc)

	n, err := zc.CompressBlock(src, dst)
	if err != nil {
		return 0, fmt.Errorf("lz4 compression failed: %w", err)
	}
	if n == 0 {
		return emitLiteralBlock(dst, src)
	}

	return n, nil
}

// Decompress decompresses one LZ4 block from src into dst.
func (c LZ4Codec) Decompress(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return 0, fmt.Errorf("lz4 decompression failed: %w", err)
	}

	return n, nil
}

// LZ4HCCodec is the high-compression variant of the LZ4 block codec. It shares
// the block format with LZ4Codec, so either codec can decode the other's
// output.
type LZ4HCCodec struct{}

var _ Codec = (*LZ4HCCodec)(nil)

// NewLZ4HCCodec creates a new LZ4 high-compression block codec.
func NewLZ4HCCodec() LZ4HCCodec {
	return LZ4HCCodec{}
}

func (c LZ4HCCodec) CompressBound(srcLen int) int {
	return lz4.CompressBlockBound(srcLen)
}

func (c LZ4HCCodec) Compress(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	zc, _ := lz4HCCompressorPool.Get().(*lz4.CompressorHC)
	defer lz4HCCompressorPool.Put(zc)

	n, err := zc.CompressBlock(src, dst)
	if err != nil {
		return 0, fmt.Errorf("lz4hc compression failed: %w", err)
	}
	if n == 0 {
		return emitLiteralBlock(dst, src)
	}

	return n, nil
}

func (c LZ4HCCodec) Decompress(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return 0, fmt.Errorf("lz4hc decompression failed: %w", err)
	}

	return n, nil
}

// emitLiteralBlock writes src into dst as one literal-only LZ4 sequence:
// a token with literal length 15, length extension bytes, then the raw
// literals. The result stays within CompressBlockBound(len(src)).
func emitLiteralBlock(dst, src []byte) (int, error) {
	need := literalBlockLen(len(src))
	if need > len(dst) {
		return 0, fmt.Errorf("lz4: literal block size %d exceeds destination capacity %d: %w",
			need, len(dst), ErrDstTooSmall)
	}

	i := 0
	if len(src) < 15 {
		dst[i] = byte(len(src)) << 4
		i++
	} else {
		dst[i] = 0xF0
		i++
		for rem := len(src) - 15; ; rem -= 255 {
			if rem < 255 {
				dst[i] = byte(rem)
				i++

				break
			}
			dst[i] = 255
			i++
		}
	}
	copy(dst[i:], src)

	return i + len(src), nil
}

// literalBlockLen returns the encoded size of a literal-only block holding
// srcLen raw bytes.
func literalBlockLen(srcLen int) int {
	if srcLen < 15 {
		return 1 + srcLen
	}

	return 1 + 1 + (srcLen-15)/255 + srcLen
}
