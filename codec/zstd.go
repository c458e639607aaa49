package codec

// ZstdCodec provides Zstandard compression at the fast end of the level range,
// where a throughput benchmark spends its time in practice.
//
// Two implementations exist behind the cgo_zstd build tag:
//   - Default: pure Go via github.com/klauspost/compress/zstd
//   - cgo_zstd: libzstd bindings via github.com/valyala/gozstd
//
// Both produce standard Zstandard frames, so outputs are interchangeable.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// CompressBound returns the worst-case Zstandard frame size for srcLen input
// bytes, following the reference ZSTD_compressBound margin.
func (c ZstdCodec) CompressBound(srcLen int) int {
	return srcLen + srcLen>>8 + 64
}
