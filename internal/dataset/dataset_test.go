package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)

	require.Equal(t, byte(0xfc), d.Pi[0])
	require.Equal(t, byte(0xb6), d.Pi[255])
	require.Equal(t, byte(8), d.Tau[1])
	require.Equal(t, uint64(0x8e20faa72ba0b470), d.A[0])
	require.Equal(t, uint64(0x641c314b2b8ee083), d.A[63])

	// C1 is printed most-significant byte first; in memory it is reversed.
	require.Equal(t, byte(0x07), d.C[0][0])
	require.Equal(t, byte(0xb1), d.C[0][BlockSize-1])

	require.Equal(t, [BlockSize]byte{}, d.IV512)
	for _, b := range d.IV256 {
		require.Equal(t, byte(0x01), b)
	}
}

func TestDefault(t *testing.T) {
	require.Same(t, Default(), Default())
}

func TestIV(t *testing.T) {
	d := Default()
	iv, ok := d.IV(256)
	require.True(t, ok)
	require.Equal(t, d.IV256, iv)
	iv, ok = d.IV(512)
	require.True(t, ok)
	require.Equal(t, d.IV512, iv)
	_, ok = d.IV(128)
	require.False(t, ok)
}

func TestStandardReturnsCopies(t *testing.T) {
	src := Standard()
	src.Pi[0] = 0
	src.Matrix[0] = "0000000000000000"
	require.Equal(t, byte(0xfc), Standard().Pi[0])
	require.Equal(t, "8e20faa72ba0b470", Standard().Matrix[0])
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Source)
		errMsg string
	}{
		{
			name:   "short pi",
			mutate: func(s *Source) { s.Pi = s.Pi[:255] },
			errMsg: "substitution pi: got 255 entries, want 256",
		},
		{
			name:   "pi not a permutation",
			mutate: func(s *Source) { s.Pi[1] = s.Pi[0] },
			errMsg: "substitution pi: entry 1 repeats value 252",
		},
		{
			name:   "tau out of range",
			mutate: func(s *Source) { s.Tau[3] = 64 },
			errMsg: "permutation tau: entry 3 out of range: 64",
		},
		{
			name:   "missing matrix row",
			mutate: func(s *Source) { s.Matrix = s.Matrix[:63] },
			errMsg: "matrix A: got 63 rows, want 64",
		},
		{
			name:   "short matrix row",
			mutate: func(s *Source) { s.Matrix[5] = "3601161cf20526" },
			errMsg: "matrix A row 5: got 7 bytes, want 8",
		},
		{
			name:   "zero matrix row",
			mutate: func(s *Source) { s.Matrix[9] = "0000000000000000" },
			errMsg: "matrix A row 9 is zero",
		},
		{
			name:   "malformed round constant",
			mutate: func(s *Source) { s.RoundConstants[0] = s.RoundConstants[0][:127] },
			errMsg: "round constant C1: decoding",
		},
		{
			name:   "eleven round constants",
			mutate: func(s *Source) { s.RoundConstants = s.RoundConstants[:11] },
			errMsg: "round constants: got 11, want 12",
		},
		{
			name: "nonzero IV512",
			mutate: func(s *Source) {
				s.IV512 = s.IV256
			},
			errMsg: "IV512 must be the zero vector",
		},
		{
			name: "zero IV256",
			mutate: func(s *Source) {
				s.IV256 = iv512
			},
			errMsg: "IV256 must not be the zero vector",
		},
		{
			name:   "short IV256",
			mutate: func(s *Source) { s.IV256 = "01" },
			errMsg: "IV256: got 1 bytes, want 64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := Standard()
			tt.mutate(&src)
			d, err := Parse(src)
			require.Nil(t, d)
			require.ErrorContains(t, err, tt.errMsg)
		})
	}
}
