package streebog

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// Example 1 of GOST R 34.11-2012, in message order.
const (
	selfTestMessage = "012345678901234567890123456789012345678901234567890123456789012"
	selfTest512     = "1b54d01a4af5b9d5cc3d86d68d285462b19abc2475222f35c085122be4ba1ffa" +
		"00ad30f8767b3a82384c6574f024c311e2a481332b08ef7f41797891c1646f48"
	selfTest256 = "9d151eefd8590b89daa6ba6cb74af9275dd051026bb149a452fd84e5e57b5500"

	// l(fcfcfcfcfcfcfcfc), the first key of the example computation.
	selfTestWordIn  = 0xfcfcfcfcfcfcfcfc
	selfTestWordOut = 0xb383fc2eced4a574
)

// selfTest checks the loaded tables against the standard's example. A wrong
// table produces digests that look plausible, so this runs before first use.
func selfTest() error {
	if got := linearWord(selfTestWordIn); got != selfTestWordOut {
		return fmt.Errorf("streebog: self test: l(%016x) = %016x, want %016x", uint64(selfTestWordIn), got, uint64(selfTestWordOut))
	}
	if got := linearWordFast(selfTestWordIn); got != selfTestWordOut {
		return fmt.Errorf("streebog: self test: table l(%016x) = %016x, want %016x", uint64(selfTestWordIn), got, uint64(selfTestWordOut))
	}

	d512 := Sum512([]byte(selfTestMessage))
	if err := expect("512", d512[:], selfTest512); err != nil {
		return err
	}
	d256 := Sum256([]byte(selfTestMessage))
	return expect("256", d256[:], selfTest256)
}

func expect(name string, got []byte, want string) error {
	w, err := hex.DecodeString(want)
	if err != nil {
		return fmt.Errorf("streebog: self test %s: %w", name, err)
	}
	if !bytes.Equal(got, w) {
		return fmt.Errorf("streebog: self test %s: got %x, want %s", name, got, want)
	}
	return nil
}
