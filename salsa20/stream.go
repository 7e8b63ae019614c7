package salsa20

import "math"

// StreamXOR XORs data against the Salsa20 keystream starting at
// initialBlock and returns a freshly allocated buffer of the same length as
// data. The same function performs both encryption and decryption, since
// XOR is its own inverse. initialBlock lets a caller seek into the
// keystream: the result is identical to discarding the first
// 64*initialBlock bytes of the keystream generated from block 0.
//
// Never reuse a (key, nonce) pair across distinct plaintexts with
// overlapping counter ranges - the core does not and cannot track that for
// you.
func StreamXOR(key, nonce []byte, data []byte, initialBlock uint64) ([]byte, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}
	if len(nonce) != NonceSize {
		return nil, ErrInvalidNonceLength
	}

	numBlocks := uint64(len(data) / BlockSize)
	if len(data)%BlockSize != 0 {
		numBlocks++
	}
	if numBlocks > 0 && initialBlock > math.MaxUint64-numBlocks+1 {
		return nil, ErrCounterOverflow
	}

	out := make([]byte, len(data))
	counter := initialBlock
	for i := 0; i < len(data); i += BlockSize {
		ks, err := Block(key, nonce, counter)
		if err != nil {
			return nil, err
		}
		counter++

		end := i + BlockSize
		if end > len(data) {
			end = len(data)
		}
		for j := i; j < end; j++ {
			out[j] = data[j] ^ ks[j-i]
		}
	}
	return out, nil
}

// Cipher is a stateful Salsa20 keystream cursor. It implements the standard
// library's crypto/cipher.Stream interface, so it composes with any code
// written against that interface, the way golang.org/x/crypto/salsa20's
// cipher.Stream implementation does.
type Cipher struct {
	key     []byte
	nonce   []byte
	counter uint64

	// leftover holds keystream bytes generated for a previous
	// XORKeyStream call but not yet consumed, so callers can pass
	// src slices of any length without wasting keystream.
	leftover []byte
}

// NewCipher returns a Cipher that starts emitting keystream at
// initialBlock. key and nonce are copied; the caller's slices are not
// retained.
func NewCipher(key, nonce []byte, initialBlock uint64) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}
	if len(nonce) != NonceSize {
		return nil, ErrInvalidNonceLength
	}

	c := &Cipher{
		key:     make([]byte, KeySize),
		nonce:   make([]byte, NonceSize),
		counter: initialBlock,
	}
	copy(c.key, key)
	copy(c.nonce, nonce)
	return c, nil
}

// XORKeyStream XORs each byte of src with the next byte of the keystream
// and writes the result to dst. dst and src must have the same length; dst
// and src may overlap exactly like crypto/cipher.Stream implementations in
// the standard library.
func (c *Cipher) XORKeyStream(dst, src []byte) {
	if len(dst) != len(src) {
		panic("salsa20: dst and src must have the same length")
	}

	for i := 0; i < len(src); i++ {
		if len(c.leftover) == 0 {
			// The counter only comes back to 0 after a block has been
			// generated (leftover is then non-nil) if it wrapped past
			// 2^64-1; refuse to reuse keystream in that case.
			if c.counter == 0 && c.leftover != nil {
				panic(ErrCounterOverflow)
			}
			block, err := Block(c.key, c.nonce, c.counter)
			if err != nil {
				// key/nonce were validated in NewCipher and never
				// change afterward, so Block cannot fail here.
				panic(err)
			}
			c.counter++
			c.leftover = append([]byte(nil), block[:]...)
		}

		dst[i] = src[i] ^ c.leftover[0]
		c.leftover = c.leftover[1:]
	}
}
