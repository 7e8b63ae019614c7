// Package word implements the 32-bit word primitives the Salsa20 core is
// built from: modular addition, left rotation, and little-endian byte
// conversions. Every operation here is branch-free with respect to its
// input value - only the fixed-length checks in LoadLE32 branch, and those
// depend on len(b), never on the bytes themselves.
package word

import (
	"encoding/binary"
	"errors"
)

// ErrInvalidWordLength is returned when LoadLE32 is given a slice that
// isn't exactly 4 bytes long.
var ErrInvalidWordLength = errors.New("word: need exactly 4 bytes")

// Add32 returns (a + b) mod 2^32. Go's uint32 addition already wraps; this
// just gives the operation a name that reads clearly at call sites.
func Add32(a, b uint32) uint32 {
	return a + b
}

// RotL32 rotates x left by n bits within a 32-bit word. n must be in
// [1, 31]; the cipher never calls this with n outside that range.
func RotL32(x uint32, n uint) uint32 {
	return (x << n) | (x >> (32 - n))
}

// LoadLE32 reads exactly four bytes as a little-endian unsigned word.
func LoadLE32(b []byte) (uint32, error) {
	if len(b) != 4 {
		return 0, ErrInvalidWordLength
	}
	return binary.LittleEndian.Uint32(b), nil
}

// StoreLE32 writes a word as four little-endian bytes.
func StoreLE32(w uint32) [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], w)
	return b
}
