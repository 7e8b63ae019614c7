package salsa20

import "github.com/nmetens/salsa20-go/internal/word"

// sigma is the 16-byte ASCII constant "expand 32-byte k" used in the
// 256-bit-key Salsa20 state. It is the only process-wide constant in the
// core and never changes at runtime.
var sigma = [16]byte{
	0x65, 0x78, 0x70, 0x61, 0x6e, 0x64, 0x20, 0x33,
	0x32, 0x2d, 0x62, 0x79, 0x74, 0x65, 0x20, 0x6b,
}

// initialState builds the 16-word Salsa20 state for a 32-byte key, an
// 8-byte nonce and a 64-bit block counter: sigma words at 0, 5, 10, 15;
// the low key half at 1..4; the nonce at 6..7; the counter's low/high
// words at 8/9; the high key half at 11..14.
func initialState(key, nonce []byte, counter uint64) ([16]uint32, error) {
	var state [16]uint32

	if len(key) != KeySize {
		return state, ErrInvalidKeyLength
	}
	if len(nonce) != NonceSize {
		return state, ErrInvalidNonceLength
	}

	// load32 can't fail here: every slice it's given is a fixed 4-byte
	// window into key, nonce or sigma, all already length-checked above.
	load32 := func(b []byte) uint32 {
		w, _ := word.LoadLE32(b)
		return w
	}

	state[0] = load32(sigma[0:4])
	state[1] = load32(key[0:4])
	state[2] = load32(key[4:8])
	state[3] = load32(key[8:12])
	state[4] = load32(key[12:16])
	state[5] = load32(sigma[4:8])
	state[6] = load32(nonce[0:4])
	state[7] = load32(nonce[4:8])
	state[8] = uint32(counter)
	state[9] = uint32(counter >> 32)
	state[10] = load32(sigma[8:12])
	state[11] = load32(key[16:20])
	state[12] = load32(key[20:24])
	state[13] = load32(key[24:28])
	state[14] = load32(key[28:32])
	state[15] = load32(sigma[12:16])

	return state, nil
}

// coreHash applies ten doublerounds (twenty rounds total) to state, adds
// the original state back in word-wise modulo 2^32 (the feed-forward step
// that makes the function one-way), and serializes the result to 64
// little-endian bytes.
func coreHash(state [16]uint32) [64]byte {
	w := state
	for i := 0; i < 10; i++ {
		w = doubleRound(w)
	}

	var out [16]uint32
	for i := range out {
		out[i] = word.Add32(w[i], state[i])
	}

	var block [64]byte
	for i, v := range out {
		b := word.StoreLE32(v)
		copy(block[i*4:i*4+4], b[:])
	}
	return block
}

// Block returns the 64-byte keystream block for the given key, nonce and
// counter. It is a pure function: the same inputs always produce the same
// output, and it never mutates key or nonce.
func Block(key, nonce []byte, counter uint64) ([64]byte, error) {
	state, err := initialState(key, nonce, counter)
	if err != nil {
		return [64]byte{}, err
	}
	return coreHash(state), nil
}

// Rounds returns the state after each of the ten doublerounds, with index 0
// holding the initial, unmixed state and index 10 holding the fully mixed
// state before feed-forward. It exists for diagnostic tooling (package
// tracer) and is not part of the stable stream-cipher API.
func Rounds(key, nonce []byte, counter uint64) ([11][16]uint32, error) {
	state, err := initialState(key, nonce, counter)
	if err != nil {
		return [11][16]uint32{}, err
	}

	var out [11][16]uint32
	out[0] = state
	w := state
	for i := 1; i <= 10; i++ {
		w = doubleRound(w)
		out[i] = w
	}
	return out, nil
}
