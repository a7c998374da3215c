// Package dataset holds the constant tables of GOST R 34.11-2012 (RFC 6986)
// and validates them once before the hash function may use them.
//
// The tables are written exactly as the standard prints them: every
// multi-byte vector most-significant byte first. Parse reverses them into
// the in-memory order used by the hash, where byte 0 is the least
// significant byte of the vector.
package dataset

import (
	"encoding/binary"
	"encoding/hex"
	"sync"

	"github.com/pkg/errors"
)

const (
	// BlockSize is the width of a state, key or message block in bytes.
	BlockSize = 64
	// Rounds is the number of rounds of the compression function cipher.
	Rounds = 12
)

// Source is the printed form of the constant tables.
type Source struct {
	Pi             []byte   // substitution π, indexed by input byte
	Tau            []byte   // byte permutation τ
	Matrix         []string // rows of A, 16 hex digits each, row 0 first
	RoundConstants []string // C1..C12, 128 hex digits each
	IV512          string
	IV256          string
}

// Dataset is the validated, read-only form of the tables.
type Dataset struct {
	Pi    [256]byte
	Tau   [BlockSize]byte
	A     [64]uint64
	C     [Rounds][BlockSize]byte
	IV512 [BlockSize]byte
	IV256 [BlockSize]byte
}

// IV returns the initial vector for a digest of size bits.
func (d *Dataset) IV(size int) ([BlockSize]byte, bool) {
	switch size {
	case 512:
		return d.IV512, true
	case 256:
		return d.IV256, true
	}
	return [BlockSize]byte{}, false
}

var (
	defaultOnce sync.Once
	defaultSet  *Dataset
)

// Default returns the standard dataset. It panics if the built-in tables
// do not validate.
func Default() *Dataset {
	defaultOnce.Do(func() {
		d, err := Load()
		if err != nil {
			panic(err)
		}
		defaultSet = d
	})
	return defaultSet
}

// Load parses and validates the standard tables.
func Load() (*Dataset, error) {
	return Parse(Standard())
}

// Parse validates src and converts it to in-memory order.
func Parse(src Source) (*Dataset, error) {
	d := new(Dataset)

	if err := permutation(src.Pi, 256); err != nil {
		return nil, errors.WithMessage(err, "substitution pi")
	}
	copy(d.Pi[:], src.Pi)

	if err := permutation(src.Tau, BlockSize); err != nil {
		return nil, errors.WithMessage(err, "permutation tau")
	}
	copy(d.Tau[:], src.Tau)

	if len(src.Matrix) != len(d.A) {
		return nil, errors.Errorf("matrix A: got %d rows, want %d", len(src.Matrix), len(d.A))
	}
	for i, row := range src.Matrix {
		b, err := decode(row, 8)
		if err != nil {
			return nil, errors.WithMessagef(err, "matrix A row %d", i)
		}
		d.A[i] = binary.BigEndian.Uint64(b)
		if d.A[i] == 0 {
			return nil, errors.Errorf("matrix A row %d is zero", i)
		}
	}

	if len(src.RoundConstants) != Rounds {
		return nil, errors.Errorf("round constants: got %d, want %d", len(src.RoundConstants), Rounds)
	}
	for i, c := range src.RoundConstants {
		if err := vector(&d.C[i], c); err != nil {
			return nil, errors.WithMessagef(err, "round constant C%d", i+1)
		}
	}

	if err := vector(&d.IV512, src.IV512); err != nil {
		return nil, errors.WithMessage(err, "IV512")
	}
	if d.IV512 != ([BlockSize]byte{}) {
		return nil, errors.New("IV512 must be the zero vector")
	}
	if err := vector(&d.IV256, src.IV256); err != nil {
		return nil, errors.WithMessage(err, "IV256")
	}
	if d.IV256 == ([BlockSize]byte{}) {
		return nil, errors.New("IV256 must not be the zero vector")
	}

	return d, nil
}

// vector decodes a printed 512-bit vector into in-memory order.
func vector(dst *[BlockSize]byte, s string) error {
	b, err := decode(s, BlockSize)
	if err != nil {
		return err
	}
	for i := range b {
		dst[BlockSize-1-i] = b[i]
	}
	return nil
}

func decode(s string, n int) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %q", s)
	}
	if len(b) != n {
		return nil, errors.Errorf("got %d bytes, want %d", len(b), n)
	}
	return b, nil
}

func permutation(p []byte, n int) error {
	if len(p) != n {
		return errors.Errorf("got %d entries, want %d", len(p), n)
	}
	var seen [256]bool
	for i, v := range p {
		if int(v) >= n {
			return errors.Errorf("entry %d out of range: %d", i, v)
		}
		if seen[v] {
			return errors.Errorf("entry %d repeats value %d", i, v)
		}
		seen[v] = true
	}
	return nil
}
