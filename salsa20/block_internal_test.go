package salsa20

import (
	"testing"

	"github.com/nmetens/salsa20-go/internal/word"
)

func TestInitialStateLayout(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	nonce := []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}
	counter := uint64(0x1122334455667788)

	state, err := initialState(key, nonce, counter)
	if err != nil {
		t.Fatalf("initialState: %v", err)
	}

	sigma0, _ := word.LoadLE32(sigma[0:4])
	sigma1, _ := word.LoadLE32(sigma[4:8])
	sigma2, _ := word.LoadLE32(sigma[8:12])
	sigma3, _ := word.LoadLE32(sigma[12:16])

	if state[0] != sigma0 || state[5] != sigma1 || state[10] != sigma2 || state[15] != sigma3 {
		t.Errorf("sigma words not placed at 0, 5, 10, 15: got %#08x", state)
	}

	if state[6] != 0x44332211 {
		t.Errorf("state[6]: want 0x44332211, got %#08x", state[6])
	}
	if state[7] != 0x88776655 {
		t.Errorf("state[7]: want 0x88776655, got %#08x", state[7])
	}
	if state[8] != 0x55667788 {
		t.Errorf("state[8] (counter low): want 0x55667788, got %#08x", state[8])
	}
	if state[9] != 0x11223344 {
		t.Errorf("state[9] (counter high): want 0x11223344, got %#08x", state[9])
	}
}

func TestInitialStateRejectsBadLengths(t *testing.T) {
	validKey := make([]byte, 32)
	validNonce := make([]byte, 8)

	tt := map[string]struct {
		key   []byte
		nonce []byte
		err   error
	}{
		"key too short":   {key: make([]byte, 31), nonce: validNonce, err: ErrInvalidKeyLength},
		"key too long":    {key: make([]byte, 33), nonce: validNonce, err: ErrInvalidKeyLength},
		"nonce too short": {key: validKey, nonce: make([]byte, 7), err: ErrInvalidNonceLength},
		"nonce too long":  {key: validKey, nonce: make([]byte, 9), err: ErrInvalidNonceLength},
	}

	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := initialState(tc.key, tc.nonce, 0)
			if err != tc.err {
				t.Errorf("want error %v, got %v", tc.err, err)
			}
		})
	}
}
