package streebog

import (
	"crypto/subtle"
	"encoding/binary"
)

// The reference transforms below follow the standard step by step. The
// compression function uses lps, which evaluates L∘P∘S with table lookups.

// substitute is the transform S: π applied to every byte.
func substitute(dst, src *block) {
	for i, b := range src {
		dst[i] = sbox[b]
	}
}

// permute is the transform P: dst[i] = src[τ(i)]. dst and src must not alias.
func permute(dst, src *block) {
	for i := range dst {
		dst[i] = src[tau[i]]
	}
}

// linearWord is the transform l, a product with the matrix A over GF(2).
// Input bit j counted from the most-significant end selects row j.
func linearWord(w uint64) uint64 {
	var r uint64
	for j := 0; j < 64; j++ {
		if w&(1<<(63-j)) != 0 {
			r ^= matrixA[j]
		}
	}
	return r
}

// linearWordFast computes linearWord with one table lookup per byte.
func linearWordFast(w uint64) uint64 {
	return linearTable[0][byte(w)] ^
		linearTable[1][byte(w>>8)] ^
		linearTable[2][byte(w>>16)] ^
		linearTable[3][byte(w>>24)] ^
		linearTable[4][byte(w>>32)] ^
		linearTable[5][byte(w>>40)] ^
		linearTable[6][byte(w>>48)] ^
		linearTable[7][byte(w>>56)]
}

// linear is the transform L: l applied to each of the eight 64-bit words.
func linear(dst, src *block) {
	for i := 0; i < 8; i++ {
		w := binary.LittleEndian.Uint64(src[8*i:])
		binary.LittleEndian.PutUint64(dst[8*i:], linearWordFast(w))
	}
}

// xorBlock is the transform X[a]: dst = a ⊕ b.
func xorBlock(dst, a, b *block) {
	subtle.XORBytes(dst[:], a[:], b[:])
}

// lps computes L(P(S(src))). Output word i takes byte j from src[τ(8i+j)].
func lps(dst, src *block) {
	var out [8]uint64
	for i := range out {
		t := tau[8*i:]
		out[i] = lpsTable[0][src[t[0]]] ^
			lpsTable[1][src[t[1]]] ^
			lpsTable[2][src[t[2]]] ^
			lpsTable[3][src[t[3]]] ^
			lpsTable[4][src[t[4]]] ^
			lpsTable[5][src[t[5]]] ^
			lpsTable[6][src[t[6]]] ^
			lpsTable[7][src[t[7]]]
	}
	for i, w := range out {
		binary.LittleEndian.PutUint64(dst[8*i:], w)
	}
}

// lpsx computes L(P(S(k ⊕ a))). dst may alias k or a.
func lpsx(dst, k, a *block) {
	var t block
	xorBlock(&t, k, a)
	lps(dst, &t)
}
