package sha256

import (
	"github.com/zeebo/sha256/internal/consts"
	"github.com/zeebo/sha256/internal/utils"
)

// pad appends the 0x80 marker byte, zero fill, and the big-endian 64 bit
// message bit length so that the result is a whole number of blocks.
func pad(m []byte) ([]byte, error) {
	if uint64(len(m)) > consts.MaxLen {
		return nil, ErrInputTooLarge
	}

	padded := make([]byte, 0, len(m)+consts.BlockLen+8)
	padded = append(padded, m...)
	padded = append(padded, 0x80)
	for len(padded)%consts.BlockLen != consts.BlockLen-8 {
		padded = append(padded, 0)
	}

	bitlen := uint64(len(m)) * 8
	padded = append(padded,
		byte(bitlen>>56), byte(bitlen>>48), byte(bitlen>>40), byte(bitlen>>32),
		byte(bitlen>>24), byte(bitlen>>16), byte(bitlen>>8), byte(bitlen),
	)

	return padded, nil
}

// compressBlocks folds every block of buf into the chain value, in order.
// buf must be a whole number of blocks: anything else means padding was
// skipped or botched, which is a bug in the caller, not bad input.
func compressBlocks(chain *[8]uint32, buf []byte) {
	if len(buf)%consts.BlockLen != 0 {
		panic("sha256: input not a multiple of the block size")
	}

	for ; len(buf) > 0; buf = buf[consts.BlockLen:] {
		var block [16]uint32
		utils.BytesToWords((*[64]uint8)(buf[:consts.BlockLen]), &block)
		*chain = compress(chain, &block)
	}
}
