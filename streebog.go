// Package streebog implements the Streebog hash function defined in
// GOST R 34.11-2012 (GOST 34.11-2018, RFC 6986), with 256-bit and 512-bit
// digests.
//
// Vectors are held in memory in the reverse of the byte order the standard
// prints them in: byte 0 is the least significant. This is the order in which
// messages are consumed, so Sum512([]byte("...")) matches every published
// digest of an ASCII string and other implementations such as gogost.
//
// The constant tables are validated and the implementation checked against
// the standard's example message when the package is initialized.
package streebog

import (
	"errors"
	"fmt"
)

const (
	// BlockSize is the block size of Streebog in bytes.
	BlockSize = 64
	// Size256 is the size of a 256-bit digest in bytes.
	Size256 = 32
	// Size512 is the size of a 512-bit digest in bytes.
	Size512 = 64
)

var (
	// ErrInvalidSize is returned by New for a digest size other than 256 or 512 bits.
	ErrInvalidSize = errors.New("streebog: invalid digest size")
	// ErrFinalized is returned when a finalized Hasher is written to or finalized again.
	ErrFinalized = errors.New("streebog: hasher already finalized")
)

// Sum256 computes the 256-bit Streebog digest of data.
func Sum256(data []byte) (digest [Size256]byte) {
	d := Hasher{short: true}
	d.Reset()
	d.Write(data)
	d.finish()
	copy(digest[:], d.digest())
	return
}

// Sum512 computes the 512-bit Streebog digest of data.
func Sum512(data []byte) (digest [Size512]byte) {
	var d Hasher
	d.Write(data)
	d.finish()
	copy(digest[:], d.digest())
	return
}

type phase uint8

const (
	active phase = iota
	finalized
)

// Hasher is a streaming Streebog hasher. It implements hash.Hash. The zero
// value is a 512-bit hasher ready for use; the 512-bit IV is the zero vector.
//
// A Hasher is single-use: once Finalize has been called it rejects further
// writes until Reset. Unlike the hash.Hash contract, Write then returns
// ErrFinalized, so an io.Copy into a finalized Hasher fails. Sum never
// finalizes the receiver. A Hasher is not safe for concurrent use.
type Hasher struct {
	short bool // 256-bit digest
	h     block
	n     uint512 // bits processed
	sigma uint512 // sum of processed blocks
	buf   block
	nx    int
	phase phase
}

// New returns a Hasher for a digest of size bits, which must be 256 or 512.
func New(size int) (*Hasher, error) {
	switch size {
	case 256:
		return New256(), nil
	case 512:
		return New512(), nil
	}
	return nil, fmt.Errorf("%w: %d bits", ErrInvalidSize, size)
}

// New256 returns a Hasher computing 256-bit digests.
func New256() *Hasher {
	d := &Hasher{short: true}
	d.Reset()
	return d
}

// New512 returns a Hasher computing 512-bit digests.
func New512() *Hasher {
	return new(Hasher)
}

// Reset returns the hasher to its initial state, including after Finalize.
func (d *Hasher) Reset() {
	if d.short {
		d.h = iv256
	} else {
		d.h = iv512
	}
	d.n = uint512{}
	d.sigma = uint512{}
	d.buf = block{}
	d.nx = 0
	d.phase = active
}

// Size returns the digest size in bytes.
func (d *Hasher) Size() int {
	if d.short {
		return Size256
	}
	return Size512
}

// BlockSize returns the block size in bytes.
func (d *Hasher) BlockSize() int { return BlockSize }

// Write feeds p into the hash. It fails with ErrFinalized after Finalize.
func (d *Hasher) Write(p []byte) (int, error) {
	if d.phase == finalized {
		return 0, ErrFinalized
	}
	n := len(p)

	if d.nx > 0 {
		c := copy(d.buf[d.nx:], p)
		d.nx += c
		p = p[c:]
		if d.nx < BlockSize {
			return n, nil
		}
		d.processBlock(&d.buf)
		d.nx = 0
	}

	for len(p) >= BlockSize {
		d.processBlock((*block)(p[:BlockSize]))
		p = p[BlockSize:]
	}

	if len(p) > 0 {
		d.nx = copy(d.buf[:], p)
	}
	return n, nil
}

// processBlock folds one full message block into the state.
func (d *Hasher) processBlock(m *block) {
	compress(&d.h, &d.n, m)
	d.n.addUint64(BlockSize * 8)
	var v uint512
	v.setBlock(m)
	d.sigma.add(&v)
}

// Finalize completes the hash and returns the digest. The hasher accepts no
// more input until Reset; a second Finalize fails with ErrFinalized.
func (d *Hasher) Finalize() ([]byte, error) {
	if d.phase == finalized {
		return nil, ErrFinalized
	}
	d.finish()
	return append([]byte(nil), d.digest()...), nil
}

// Sum appends the digest of the data written so far to b. It does not change
// the state of the hasher.
func (d *Hasher) Sum(b []byte) []byte {
	if d.phase == finalized {
		return append(b, d.digest()...)
	}
	d0 := *d
	d0.finish()
	return append(b, d0.digest()...)
}

func (d *Hasher) finish() {
	var m block
	pad(&m, d.buf[:d.nx])
	compress(&d.h, &d.n, &m)

	d.n.addUint64(uint64(d.nx) * 8)
	var v uint512
	v.setBlock(&m)
	d.sigma.add(&v)

	var zero uint512
	d.n.putBlock(&m)
	compress(&d.h, &zero, &m)
	d.sigma.putBlock(&m)
	compress(&d.h, &zero, &m)

	d.buf = block{}
	d.nx = 0
	d.phase = finalized
}

// digest returns the output part of a finalized state. The 256-bit digest is
// the most-significant half.
func (d *Hasher) digest() []byte {
	return d.h[BlockSize-d.Size():]
}
