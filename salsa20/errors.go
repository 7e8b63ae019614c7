package salsa20

import "errors"

var (
	// ErrInvalidKeyLength is returned when a key is not exactly KeySize bytes.
	ErrInvalidKeyLength = errors.New("salsa20: key must be 32 bytes")

	// ErrInvalidNonceLength is returned when a nonce is not exactly NonceSize bytes.
	ErrInvalidNonceLength = errors.New("salsa20: nonce must be 8 bytes")

	// ErrCounterOverflow is returned when a StreamXOR call would need to
	// advance the 64-bit block counter past its maximum value; Cipher's
	// XORKeyStream panics with it in the same situation.
	ErrCounterOverflow = errors.New("salsa20: counter overflow")
)
