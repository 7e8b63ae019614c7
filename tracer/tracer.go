// Package tracer replays the Salsa20 block function one doubleround at a
// time and returns a Report describing the initial state and every
// intermediate state, for debugging and teaching rather than for
// production use.
package tracer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/nmetens/salsa20-go/salsa20"
)

// Round is a single snapshot of the 16-word Salsa20 state.
type Round struct {
	// Index is 0 for the initial state and 1..10 for the state after each
	// doubleround (so Index 10 is the fully mixed, pre-feed-forward state).
	Index int        `json:"round"`
	State [16]uint32 `json:"state"`
}

// Report is the full trace of one Block call: the initial state, the
// state after each of the ten doublerounds, and the final 64-byte block
// after feed-forward.
type Report struct {
	Rounds []Round `json:"-"`
	Block  [64]byte
}

// Trace runs the Salsa20 block function for (key, nonce, counter),
// recording the state after every doubleround.
func Trace(key, nonce []byte, counter uint64) (Report, error) {
	states, err := salsa20.Rounds(key, nonce, counter)
	if err != nil {
		return Report{}, err
	}

	block, err := salsa20.Block(key, nonce, counter)
	if err != nil {
		return Report{}, err
	}

	rounds := make([]Round, len(states))
	for i, state := range states {
		rounds[i] = Round{Index: i, State: state}
	}

	return Report{
		Rounds: rounds,
		Block:  block,
	}, nil
}

// MarshalNDJSON writes one JSON object per line to w, one line per recorded
// round, starting with the initial state (round 0). The final block is not
// written.
func (r Report) MarshalNDJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, round := range r.Rounds {
		if err := enc.Encode(round); err != nil {
			return err
		}
	}
	return nil
}

// String renders the trace as a sequence of 4x4 hex matrices, one per
// round.
func (r Report) String() string {
	var sb strings.Builder
	for _, round := range r.Rounds {
		if round.Index == 0 {
			fmt.Fprintf(&sb, "Initial state (round 0):\n")
		} else {
			fmt.Fprintf(&sb, "After doubleround %d (round %d):\n", round.Index, 2*round.Index)
		}
		sb.WriteString(formatMatrix(round.State))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func formatMatrix(state [16]uint32) string {
	var sb strings.Builder
	sb.WriteString("      c0        c1        c2        c3\n")
	for row := 0; row < 4; row++ {
		fmt.Fprintf(&sb, "r%d   %08x  %08x  %08x  %08x\n", row,
			state[4*row], state[4*row+1], state[4*row+2], state[4*row+3])
	}
	return sb.String()
}
