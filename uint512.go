package streebog

import (
	"encoding/binary"
	"math/bits"
)

// block is a 512-bit vector, least-significant byte first.
type block [BlockSize]byte

// uint512 is an unsigned integer modulo 2^512 stored as little-endian limbs.
type uint512 [8]uint64

// add sets x = x + y mod 2^512.
func (x *uint512) add(y *uint512) {
	var carry uint64
	for i := range x {
		x[i], carry = bits.Add64(x[i], y[i], carry)
	}
}

// addUint64 sets x = x + v mod 2^512.
func (x *uint512) addUint64(v uint64) {
	var carry uint64
	x[0], carry = bits.Add64(x[0], v, 0)
	for i := 1; i < len(x) && carry != 0; i++ {
		x[i], carry = bits.Add64(x[i], 0, carry)
	}
}

// setBlock reads b as a 512-bit integer.
func (x *uint512) setBlock(b *block) {
	for i := range x {
		x[i] = binary.LittleEndian.Uint64(b[8*i:])
	}
}

// putBlock writes x into b.
func (x *uint512) putBlock(b *block) {
	for i, w := range x {
		binary.LittleEndian.PutUint64(b[8*i:], w)
	}
}

// pad writes the final block for a message tail shorter than a block: the
// tail, a single marker bit above it, then zeros up to the most-significant
// end.
func pad(dst *block, tail []byte) {
	if len(tail) >= BlockSize {
		panic("streebog: pad called with a full block")
	}
	*dst = block{}
	copy(dst[:], tail)
	dst[len(tail)] = 0x01
}
