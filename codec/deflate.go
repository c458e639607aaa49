package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// DeflateCodec compresses with zlib-wrapped deflate at the default level.
//
// The zlib writer and reader are retained and reset between calls, so an
// instance must not be shared between goroutines.
type DeflateCodec struct {
	buf bytes.Buffer
	zw  *zlib.Writer
	zr  io.ReadCloser
}

var _ Codec = (*DeflateCodec)(nil)

// NewDeflateCodec creates a new zlib/deflate codec.
func NewDeflateCodec() *DeflateCodec {
	c := &DeflateCodec{}
	c.zw = zlib.NewWriter(&c.buf)

	return c
}

// CompressBound follows the zlib compressBound margin, rounded up.
func (c *DeflateCodec) CompressBound(srcLen int) int {
	return srcLen + srcLen>>12 + srcLen>>14 + 64
}

// Compress compresses src into dst as a zlib stream.
func (c *DeflateCodec) Compress(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	c.buf.Reset()
	c.zw.Reset(&c.buf)
	if _, err := c.zw.Write(src); err != nil {
		return 0, fmt.Errorf("deflate compression failed: %w", err)
	}
	if err := c.zw.Close(); err != nil {
		return 0, fmt.Errorf("deflate compression failed: %w", err)
	}

	if c.buf.Len() > len(dst) {
		return 0, fmt.Errorf("deflate: compressed size %d exceeds destination capacity %d: %w",
			c.buf.Len(), len(dst), ErrDstTooSmall)
	}

	return copy(dst, c.buf.Bytes()), nil
}

// Decompress decompresses one zlib stream from src into dst.
func (c *DeflateCodec) Decompress(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	r := bytes.NewReader(src)
	if c.zr == nil {
		zr, err := zlib.NewReader(r)
		if err != nil {
			return 0, fmt.Errorf("deflate decompression failed: %w", err)
		}
		c.zr = zr
	} else if err := c.zr.(zlib.Resetter).Reset(r, nil); err != nil {
		return 0, fmt.Errorf("deflate decompression failed: %w", err)
	}

	n, err := io.ReadFull(c.zr, dst)
	switch {
	case err == nil:
		// dst is full; anything left in the stream means it does not fit.
		var one [1]byte
		if m, _ := c.zr.Read(one[:]); m > 0 {
			return 0, fmt.Errorf("deflate: decompressed size exceeds destination capacity %d: %w",
				len(dst), ErrDstTooSmall)
		}
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		// Decompressed to fewer bytes than the destination capacity.
	default:
		return 0, fmt.Errorf("deflate decompression failed: %w", err)
	}

	return n, nil
}
