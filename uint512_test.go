package streebog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint512Wraparound(t *testing.T) {
	allOnes := uint512{math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64,
		math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64}

	x := allOnes
	x.addUint64(1)
	require.Equal(t, uint512{}, x)

	x = allOnes
	one := uint512{1}
	x.add(&one)
	require.Equal(t, uint512{}, x)
}

func TestUint512Carry(t *testing.T) {
	x := uint512{math.MaxUint64, math.MaxUint64, 7}
	x.addUint64(2)
	require.Equal(t, uint512{1, 0, 8}, x)

	y := uint512{math.MaxUint64, 1, 0, 0, 0, 0, 0, 5}
	z := uint512{1, math.MaxUint64, 0, 0, 0, 0, 0, 6}
	y.add(&z)
	require.Equal(t, uint512{0, 1, 1, 0, 0, 0, 0, 11}, y)
}

func TestUint512Block(t *testing.T) {
	var b block
	b[0] = 0x01
	b[8] = 0x02
	b[63] = 0x80

	var x uint512
	x.setBlock(&b)
	require.Equal(t, uint512{1, 2, 0, 0, 0, 0, 0, 0x80 << 56}, x)

	var back block
	x.putBlock(&back)
	require.Equal(t, b, back)
}

func TestPad(t *testing.T) {
	var b block

	pad(&b, nil)
	require.Equal(t, block{0x01}, b)

	tail := []byte("abc")
	pad(&b, tail)
	require.Equal(t, block{'a', 'b', 'c', 0x01}, b)

	long := make([]byte, BlockSize-1)
	for i := range long {
		long[i] = 0xff
	}
	pad(&b, long)
	require.Equal(t, byte(0x01), b[BlockSize-1])
	require.Equal(t, long, b[:BlockSize-1])

	require.Panics(t, func() { pad(&b, make([]byte, BlockSize)) })
}
