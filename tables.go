package streebog

import "github.com/Giulio2002/streebog/internal/dataset"

// Tables derived from the constant dataset. Written once in init, read-only
// afterwards.
var (
	sbox           [256]byte
	tau            [BlockSize]byte
	matrixA        [64]uint64
	roundConstants [rounds]block
	iv256, iv512   block

	// linearTable[j][v] is l applied to the word holding v in byte j.
	linearTable [8][256]uint64
	// lpsTable[j][v] is linearTable[j][π(v)].
	lpsTable [8][256]uint64
)

func init() {
	load(dataset.Default())
	if err := selfTest(); err != nil {
		panic(err)
	}
}

func load(ds *dataset.Dataset) {
	sbox = ds.Pi
	tau = ds.Tau
	matrixA = ds.A
	for i := range roundConstants {
		roundConstants[i] = ds.C[i]
	}
	iv256 = ds.IV256
	iv512 = ds.IV512

	for j := 0; j < 8; j++ {
		for v := 0; v < 256; v++ {
			linearTable[j][v] = linearWord(uint64(v) << (8 * j))
		}
	}
	for j := 0; j < 8; j++ {
		for v := 0; v < 256; v++ {
			lpsTable[j][v] = linearTable[j][sbox[v]]
		}
	}
}
