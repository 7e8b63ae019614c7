package salsa20_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/nmetens/salsa20-go/salsa20"
)

func rangeKey() []byte {
	key := make([]byte, salsa20.KeySize)
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

func TestBlockLength(t *testing.T) {
	key := rangeKey()
	nonce := make([]byte, salsa20.NonceSize)

	for _, counter := range []uint64{0, 1, 42, 0xffffffffffffffff} {
		block, err := salsa20.Block(key, nonce, counter)
		if err != nil {
			t.Fatalf("Block(counter=%d): %v", counter, err)
		}
		if len(block) != salsa20.BlockSize {
			t.Errorf("counter=%d: want %d bytes, got %d", counter, salsa20.BlockSize, len(block))
		}
	}
}

func TestBlockRejectsInvalidLengths(t *testing.T) {
	validKey := rangeKey()
	validNonce := make([]byte, salsa20.NonceSize)

	tt := map[string]struct {
		key   []byte
		nonce []byte
		err   error
	}{
		"31-byte key":  {key: make([]byte, 31), nonce: validNonce, err: salsa20.ErrInvalidKeyLength},
		"33-byte key":  {key: make([]byte, 33), nonce: validNonce, err: salsa20.ErrInvalidKeyLength},
		"7-byte nonce": {key: validKey, nonce: make([]byte, 7), err: salsa20.ErrInvalidNonceLength},
		"9-byte nonce": {key: validKey, nonce: make([]byte, 9), err: salsa20.ErrInvalidNonceLength},
	}

	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := salsa20.Block(tc.key, tc.nonce, 0)
			if !errors.Is(err, tc.err) {
				t.Errorf("want error %v, got %v", tc.err, err)
			}
		})
	}
}

func TestBlockIsDeterministic(t *testing.T) {
	key := rangeKey()
	nonce := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	a, err := salsa20.Block(key, nonce, 7)
	if err != nil {
		t.Fatalf("Block: %v", err)
	}
	b, err := salsa20.Block(key, nonce, 7)
	if err != nil {
		t.Fatalf("Block: %v", err)
	}

	if a != b {
		t.Errorf("two calls with identical inputs produced different output")
	}
}

func TestBlockIsSensitiveToCounter(t *testing.T) {
	key := rangeKey()
	nonce := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	for counter := uint64(0); counter < 8; counter++ {
		a, err := salsa20.Block(key, nonce, counter)
		if err != nil {
			t.Fatalf("Block(%d): %v", counter, err)
		}
		b, err := salsa20.Block(key, nonce, counter+1)
		if err != nil {
			t.Fatalf("Block(%d): %v", counter+1, err)
		}
		if bytes.Equal(a[:], b[:]) {
			t.Errorf("Block(%d) == Block(%d), expected distinct blocks", counter, counter+1)
		}
	}
}
