package alloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestBytesAlignment(t *testing.T) {
	for _, align := range []int{1, 64, 4096} {
		for _, size := range []int{1, 100, 4096, 1 << 20} {
			buf := Bytes(size, align)
			require.Len(t, buf, size)
			require.Equal(t, size, cap(buf))
			addr := uintptr(unsafe.Pointer(&buf[0]))
			require.Zero(t, addr%uintptr(align), "size=%d align=%d", size, align)
		}
	}
}

func TestBytesZeroed(t *testing.T) {
	buf := Bytes(4096, 4096)
	for _, b := range buf {
		require.Zero(t, b)
	}
}

func TestBytesEmpty(t *testing.T) {
	require.Nil(t, Bytes(0, 4096))
}

func TestBytesBadAlignment(t *testing.T) {
	require.Panics(t, func() { Bytes(16, 3) })
	require.Panics(t, func() { Bytes(16, 0) })
	require.Panics(t, func() { Bytes(16, -4) })
}
