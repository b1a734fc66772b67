package sha256

import (
	"math/bits"

	"github.com/zeebo/sha256/internal/consts"
)

func ch(x, y, z uint32) uint32  { return (x & y) ^ (^x & z) }
func maj(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }

func sigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

func sigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}

func gamma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ x>>3
}

func gamma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ x>>10
}

// compress folds one block into the chain value and returns the next one.
// It does not modify its arguments.
func compress(chain *[8]uint32, block *[16]uint32) [8]uint32 {
	var w [64]uint32
	copy(w[:16], block[:])
	for t := 16; t < 64; t++ {
		w[t] = w[t-16] + gamma0(w[t-15]) + w[t-7] + gamma1(w[t-2])
	}

	a, b, c, d := chain[0], chain[1], chain[2], chain[3]
	e, f, g, h := chain[4], chain[5], chain[6], chain[7]

	for t := 0; t < 64; t++ {
		t1 := h + sigma1(e) + ch(e, f, g) + consts.K[t] + w[t]
		t2 := sigma0(a) + maj(a, b, c)
		h, g, f, e = g, f, e, d+t1
		d, c, b, a = c, b, a, t1+t2
	}

	return [8]uint32{
		chain[0] + a, chain[1] + b, chain[2] + c, chain[3] + d,
		chain[4] + e, chain[5] + f, chain[6] + g, chain[7] + h,
	}
}
