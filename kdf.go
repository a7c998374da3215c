package streebog

import (
	"crypto/hmac"
	"hash"

	"golang.org/x/crypto/pbkdf2"
)

// NewHMAC256 returns HMAC_GOSTR3411_2012_256 keyed with key (R 50.1.113-2016).
func NewHMAC256(key []byte) hash.Hash {
	return hmac.New(newHash256, key)
}

// NewHMAC512 returns HMAC_GOSTR3411_2012_512 keyed with key (R 50.1.113-2016).
func NewHMAC512(key []byte) hash.Hash {
	return hmac.New(newHash512, key)
}

// KDF256 derives a 256-bit key with KDF_GOSTR3411_2012_256:
// HMAC256(key, 0x01 || label || 0x00 || seed || 0x01 || 0x00).
func KDF256(key, label, seed []byte) []byte {
	m := NewHMAC256(key)
	m.Write([]byte{0x01})
	m.Write(label)
	m.Write([]byte{0x00})
	m.Write(seed)
	m.Write([]byte{0x01, 0x00})
	return m.Sum(nil)
}

// PBKDF2 derives keyLen bytes from password and salt with PBKDF2 over
// HMAC_GOSTR3411_2012_512, as profiled in R 50.1.111-2016.
func PBKDF2(password, salt []byte, iter, keyLen int) []byte {
	return pbkdf2.Key(password, salt, iter, keyLen, newHash512)
}

func newHash256() hash.Hash { return New256() }

func newHash512() hash.Hash { return New512() }
