package sha256

import (
	"encoding/hex"
	"errors"

	"github.com/zeebo/sha256/internal/consts"
	"github.com/zeebo/sha256/internal/utils"
)

// Size is the number of bytes in a digest.
const Size = consts.Size

// BlockSize is the block size of the hash in bytes.
const BlockSize = consts.BlockLen

// ErrInputTooLarge is returned when the message bit length no longer fits
// the 64 bit length field appended by padding (messages of 2^61 bytes or
// more).
var ErrInputTooLarge = errors.New("sha256: input too large")

// Hasher is a hash.Hash for SHA-256.
type Hasher struct {
	h hasher
}

// New returns a new Hasher.
func New() *Hasher {
	return &Hasher{
		h: hasher{
			chain: consts.IV,
		},
	}
}

// Write implements part of the hash.Hash interface. It returns
// ErrInputTooLarge, consuming none of p, if the total message would
// overflow the length field.
func (h *Hasher) Write(p []byte) (int, error) {
	if err := h.h.update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString is Write for strings.
func (h *Hasher) WriteString(s string) (int, error) {
	return h.Write([]byte(s))
}

// Reset implements part of the hash.Hash interface. It causes the Hasher to
// act as if it was newly created.
func (h *Hasher) Reset() {
	h.h.reset()
}

// Size implements part of the hash.Hash interface. It returns the number of
// bytes the hash will output.
func (h *Hasher) Size() int {
	return Size
}

// BlockSize implements part of the hash.Hash interface.
func (h *Hasher) BlockSize() int {
	return BlockSize
}

// Sum implements part of the hash.Hash interface. It appends the digest of
// the Hasher to the provided buffer and returns it. The running state is
// unchanged, so writes may continue afterward.
func (h *Hasher) Sum(b []byte) []byte {
	var d [Size]byte
	h.h.finalize(&d)
	return append(b, d[:]...)
}

// SumHex returns the digest as 64 lowercase hex characters.
func (h *Hasher) SumHex() string {
	var d [Size]byte
	h.h.finalize(&d)
	return hex.EncodeToString(d[:])
}

// Clone returns a copy of the Hasher sharing no state with the original.
func (h *Hasher) Clone() *Hasher {
	c := *h
	return &c
}

// Sum256 returns the SHA-256 digest of data. It panics on inputs of 2^61
// bytes or more, which no allocatable slice can reach.
func Sum256(data []byte) [Size]byte {
	padded, err := pad(data)
	if err != nil {
		panic(err)
	}

	chain := consts.IV
	compressBlocks(&chain, padded)

	var d [Size]byte
	utils.WordsToBytes(&chain, d[:])
	return d
}

// SumHex256 returns the SHA-256 digest of data as 64 lowercase hex
// characters.
func SumHex256(data []byte) string {
	d := Sum256(data)
	return hex.EncodeToString(d[:])
}
