// Package sha256 implements the SHA-256 hash algorithm from FIPS 180-4.
package sha256

import (
	"github.com/zeebo/sha256/internal/consts"
	"github.com/zeebo/sha256/internal/utils"
)

//
// hasher contains state for an incremental sha256 hash
//

type hasher struct {
	chain [8]uint32
	buf   [consts.BlockLen]byte
	bufn  int
	len   uint64
}

func (a *hasher) reset() {
	a.chain = consts.IV
	a.bufn = 0
	a.len = 0
}

func (a *hasher) update(buf []byte) error {
	if uint64(len(buf)) > consts.MaxLen-a.len {
		return ErrInputTooLarge
	}
	a.len += uint64(len(buf))

	if a.bufn > 0 {
		n := copy(a.buf[a.bufn:], buf)
		a.bufn += n
		buf = buf[n:]
		if a.bufn < consts.BlockLen {
			return nil
		}
		compressBlocks(&a.chain, a.buf[:])
		a.bufn = 0
	}

	if n := len(buf) &^ (consts.BlockLen - 1); n > 0 {
		compressBlocks(&a.chain, buf[:n])
		buf = buf[n:]
	}

	a.bufn = copy(a.buf[:], buf)
	return nil
}

// finalize pads the buffered tail and writes the digest to out. The hasher
// is left untouched so that more writes may follow.
func (a *hasher) finalize(out *[consts.Size]byte) {
	chain := a.chain

	var tail [2 * consts.BlockLen]byte
	n := copy(tail[:], a.buf[:a.bufn])
	tail[n] = 0x80

	end := consts.BlockLen
	if n+1 > consts.BlockLen-8 {
		end = 2 * consts.BlockLen
	}

	bitlen := a.len * 8
	tail[end-8] = byte(bitlen >> 56)
	tail[end-7] = byte(bitlen >> 48)
	tail[end-6] = byte(bitlen >> 40)
	tail[end-5] = byte(bitlen >> 32)
	tail[end-4] = byte(bitlen >> 24)
	tail[end-3] = byte(bitlen >> 16)
	tail[end-2] = byte(bitlen >> 8)
	tail[end-1] = byte(bitlen)

	compressBlocks(&chain, tail[:end])
	utils.WordsToBytes(&chain, out[:])
}
