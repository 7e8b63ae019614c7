// Package salsa20 implements the Salsa20/20 stream cipher as specified by
// D. J. Bernstein (https://cr.yp.to/snuffle/spec.pdf): a 256-bit-key,
// 64-bit-nonce, 64-bit-counter keystream generator built from a 4x4 matrix
// of 32-bit words mixed by ten "doublerounds" (twenty rounds total), and
// the XOR transform that turns that keystream into encryption/decryption.
//
// This package is the cryptographic core only. It has no opinion about key
// derivation, message authentication, nonce management policy, or
// transport - combine it with a MAC if you need authenticated encryption,
// and never reuse a (key, nonce) pair across distinct plaintexts.
package salsa20

// KeySize is the required length, in bytes, of a Salsa20 key.
const KeySize = 32

// NonceSize is the required length, in bytes, of a Salsa20 nonce.
const NonceSize = 8

// BlockSize is the length, in bytes, of one Salsa20 keystream block.
const BlockSize = 64
