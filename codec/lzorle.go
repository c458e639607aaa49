package codec

import (
	"fmt"

	"github.com/woozymasta/lzo"
)

// rleMaxRun is the longest run a single (value, count) pair can encode; the
// count is one byte, so longer runs restart a new pair.
const rleMaxRun = 255

// LZORLECodec layers a run-length pass on top of LZO1X.
//
// Compression runs LZO1X over src into an instance-owned intermediate, then
// run-length encodes the intermediate into dst as fixed 2-byte
// (value, count) pairs. The RLE pass is deliberately non-adaptive: a pair is
// emitted even for runs of length 1, so incompressible intermediates can
// expand up to 2x. Its value is collapsing long byte runs the dictionary pass
// leaves behind (zero padding in particular) at near-zero cost.
//
// Decompression reverses the layers: strict pair-wise RLE decode into the
// intermediate, then LZO1X decode of the intermediate using the
// intermediate's own length, which is unrelated to the on-wire compressed
// length.
//
// The intermediate buffer is retained across calls, so instances must not be
// shared between goroutines.
type LZORLECodec struct {
	scratch []byte
}

var _ Codec = (*LZORLECodec)(nil)

// NewLZORLECodec creates a new layered LZO+RLE codec.
func NewLZORLECodec() *LZORLECodec {
	return &LZORLECodec{}
}

// CompressBound accounts for the dictionary pass expanding to its own worst
// case and the run-length pass doubling that.
func (c *LZORLECodec) CompressBound(srcLen int) int {
	return 2 * lzoCompressBound(srcLen)
}

func (c *LZORLECodec) Compress(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	inter, err := lzo.Compress(src, nil)
	if err != nil {
		return 0, fmt.Errorf("lzo-rle: dictionary pass failed: %w", err)
	}

	n, err := rleEncode(dst, inter)
	if err != nil {
		return 0, fmt.Errorf("lzo-rle: %w", err)
	}

	return n, nil
}

func (c *LZORLECodec) Decompress(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	inter, err := rleDecode(c.scratch[:0], src)
	if err != nil {
		return 0, fmt.Errorf("lzo-rle: %w", err)
	}
	c.scratch = inter

	// The dictionary decoder consumes exactly the intermediate produced by
	// the RLE decode, not the on-wire length of src.
	out, err := lzo.DecompressInto(inter, dst)
	if err != nil {
		return 0, fmt.Errorf("lzo-rle: dictionary pass failed: %w", err)
	}

	return len(out), nil
}

// rleEncode writes src into dst as (value, count) pairs with runs capped at
// rleMaxRun. The capacity check runs before every pair, so nothing is written
// past dst even when the input would overflow it.
func rleEncode(dst, src []byte) (int, error) {
	w := 0
	for i := 0; i < len(src); {
		b := src[i]
		run := 1
		for i+run < len(src) && src[i+run] == b && run < rleMaxRun {
			run++
		}
		if w+2 > len(dst) {
			return 0, fmt.Errorf("encoded output exceeds destination capacity %d: %w",
				len(dst), ErrDstTooSmall)
		}
		dst[w] = b
		dst[w+1] = byte(run)
		w += 2
		i += run
	}

	return w, nil
}

// rleDecode appends the expansion of src's (value, count) pairs to dst and
// returns the extended slice. An odd-length stream has a truncated trailing
// pair and is rejected; a zero count cannot be produced by rleEncode and is
// rejected as corruption.
func rleDecode(dst, src []byte) ([]byte, error) {
	if len(src)%2 != 0 {
		return nil, fmt.Errorf("%w: truncated pair at offset %d", ErrMalformedRLE, len(src)-1)
	}

	for i := 0; i < len(src); i += 2 {
		b, run := src[i], int(src[i+1])
		if run == 0 {
			return nil, fmt.Errorf("%w: zero run length at offset %d", ErrMalformedRLE, i+1)
		}
		for j := 0; j < run; j++ {
			dst = append(dst, b)
		}
	}

	return dst, nil
}
