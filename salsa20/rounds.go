package salsa20

import "github.com/nmetens/salsa20-go/internal/word"

// quarterRound is the Salsa20 quarterround: the smallest ARX (add-rotate-xor)
// mixing step, acting on four words. The four output equations must be
// evaluated in this order - each depends on a previously computed z value.
func quarterRound(y0, y1, y2, y3 uint32) (z0, z1, z2, z3 uint32) {
	z1 = y1 ^ word.RotL32(word.Add32(y0, y3), 7)
	z2 = y2 ^ word.RotL32(word.Add32(z1, y0), 9)
	z3 = y3 ^ word.RotL32(word.Add32(z2, z1), 13)
	z0 = y0 ^ word.RotL32(word.Add32(z3, z2), 18)
	return z0, z1, z2, z3
}

// rowRound applies quarterRound across the four rows of the 4x4 state,
// rotated so each row's diffusion depends on its position in the matrix.
func rowRound(state [16]uint32) [16]uint32 {
	var out [16]uint32
	out[0], out[1], out[2], out[3] = quarterRound(state[0], state[1], state[2], state[3])
	out[5], out[6], out[7], out[4] = quarterRound(state[5], state[6], state[7], state[4])
	out[10], out[11], out[8], out[9] = quarterRound(state[10], state[11], state[8], state[9])
	out[15], out[12], out[13], out[14] = quarterRound(state[15], state[12], state[13], state[14])
	return out
}

// columnRound applies quarterRound across the four columns of the 4x4 state.
func columnRound(state [16]uint32) [16]uint32 {
	var out [16]uint32
	out[0], out[4], out[8], out[12] = quarterRound(state[0], state[4], state[8], state[12])
	out[5], out[9], out[13], out[1] = quarterRound(state[5], state[9], state[13], state[1])
	out[10], out[14], out[2], out[6] = quarterRound(state[10], state[14], state[2], state[6])
	out[15], out[3], out[7], out[11] = quarterRound(state[15], state[3], state[7], state[11])
	return out
}

// doubleRound applies one columnround followed by one rowround. Order
// matters: columnround runs first.
func doubleRound(state [16]uint32) [16]uint32 {
	return rowRound(columnRound(state))
}
