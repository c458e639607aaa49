package codec

import (
	"fmt"
	"testing"
)

func BenchmarkCompress(b *testing.B) {
	benchSizes := []int{4096, 16384, 65536}

	for _, alg := range allAlgorithms {
		for _, size := range benchSizes {
			data := generateTestData(size, "mixed")
			c, err := New(alg)
			if err != nil {
				b.Fatal(err)
			}
			dst := make([]byte, c.CompressBound(size))

			b.Run(fmt.Sprintf("%s/%dKB", alg, size/1024), func(b *testing.B) {
				b.SetBytes(int64(size))
				b.ResetTimer()

				for b.Loop() {
					if _, err := c.Compress(dst, data); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	const size = 16384

	for _, alg := range allAlgorithms {
		data := generateTestData(size, "mixed")
		c, err := New(alg)
		if err != nil {
			b.Fatal(err)
		}

		dst := make([]byte, c.CompressBound(size))
		n, err := c.Compress(dst, data)
		if err != nil {
			b.Fatal(err)
		}
		out := make([]byte, size)

		b.Run(fmt.Sprintf("%s/%dKB", alg, size/1024), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ResetTimer()

			for b.Loop() {
				if _, err := c.Decompress(out, dst[:n]); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
