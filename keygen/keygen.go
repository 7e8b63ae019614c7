// Package keygen generates cryptographically strong random keys and nonces
// for use with package salsa20. It is deliberately outside the cipher
// core: the core never generates its own key material.
package keygen

import (
	"crypto/rand"

	"github.com/nmetens/salsa20-go/salsa20"
)

// Key returns a fresh random 32-byte Salsa20 key.
func Key() ([salsa20.KeySize]byte, error) {
	var key [salsa20.KeySize]byte
	if _, err := rand.Read(key[:]); err != nil {
		return key, err
	}
	return key, nil
}

// Nonce returns a fresh random 8-byte Salsa20 nonce.
//
// A random nonce is only safe to use once per key: Salsa20's security
// depends on never reusing a (key, nonce) pair across distinct messages
// with overlapping counter ranges.
func Nonce() ([salsa20.NonceSize]byte, error) {
	var nonce [salsa20.NonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nonce, err
	}
	return nonce, nil
}
