package sha256

import (
	stdsha256 "crypto/sha256"
	"fmt"
	"testing"
)

func BenchmarkIncremental(b *testing.B) {
	run := func(b *testing.B, size int) {
		h := new(hasher)
		h.reset()
		var out [32]byte
		buf := make([]byte, size)
		b.ReportAllocs()
		b.SetBytes(int64(len(buf)))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = h.update(buf)
			h.finalize(&out)
			h.reset()
		}
	}

	for _, n := range []int{
		1, 4, 8, 12, 16,
	} {
		b.Run(fmt.Sprintf("%04d_block", n), func(b *testing.B) { run(b, n*64) })
	}

	for _, n := range []int{
		1, 4, 16, 64, 256, 1024,
	} {
		b.Run(fmt.Sprintf("%04d_kib", n), func(b *testing.B) { run(b, n*1024) })
	}
}

func BenchmarkSum256(b *testing.B) {
	run := func(b *testing.B, size int) {
		buf := make([]byte, size)
		b.ReportAllocs()
		b.SetBytes(int64(len(buf)))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = Sum256(buf)
		}
	}

	for _, n := range []int{
		64, 1024, 8192, 65536,
	} {
		b.Run(fmt.Sprintf("%05d", n), func(b *testing.B) { run(b, n) })
	}
}

// the platform implementation, for comparison
func BenchmarkStdlibSum256(b *testing.B) {
	run := func(b *testing.B, size int) {
		buf := make([]byte, size)
		b.ReportAllocs()
		b.SetBytes(int64(len(buf)))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = stdsha256.Sum256(buf)
		}
	}

	for _, n := range []int{
		64, 1024, 8192, 65536,
	} {
		b.Run(fmt.Sprintf("%05d", n), func(b *testing.B) { run(b, n) })
	}
}
