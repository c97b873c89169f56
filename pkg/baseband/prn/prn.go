// Package prn generates the GPS L1 C/A Gold codes used by acquisition and
// tracking to despread a given satellite's signal.
package prn

import (
	"fmt"

	"github.com/bramburn/gnssbaseband/pkg/baseband"
)

// Length is the number of chips in one GPS L1 C/A code period.
const Length = 1023

const registerWidth = 10

// g1Taps and g2Taps are the feedback tap positions (1-indexed stage
// numbers) for the two length-1023 maximal-length LFSRs that generate the
// C/A Gold codes: G1 = x^10 + x^3 + 1, G2 = x^10 + x^9 + x^8 + x^6 + x^3 + x^2 + 1.
var (
	g1Taps = [...]int{3, 10}
	g2Taps = [...]int{2, 3, 6, 8, 9, 10}
)

// g2Delays is the standard G2 delay table, indexed by satellite id-1, per
// spec.md §6. It must be reproduced verbatim.
var g2Delays = [...]int{
	5, 6, 7, 8, 17, 18, 139, 140, 141, 251, 252, 254, 255,
	256, 257, 258, 469, 470, 471, 472, 473, 474, 509, 512,
	513, 514, 515, 516, 859, 860, 861, 862, 863,
}

// ErrInvalidSatelliteID is the error Generate returns for an id outside
// 1..32. It carries the offending id and unwraps to
// baseband.ErrInvalidSatelliteID, so callers that use the shared error
// taxonomy can match it with errors.Is.
type ErrInvalidSatelliteID struct {
	ID int
}

func (e *ErrInvalidSatelliteID) Error() string {
	return fmt.Sprintf("prn: invalid satellite id %d, want 1..32", e.ID)
}

func (e *ErrInvalidSatelliteID) Unwrap() error {
	return baseband.ErrInvalidSatelliteID
}

// lfsr generates the length-2^n-1 maximal-length sequence produced by an
// n-bit Fibonacci LFSR with feedback at the given 1-indexed tap
// positions, all registers initialized to 1. Each step outputs the value
// at the last stage, then shifts, inserting the XOR of the tapped stages
// at the first stage.
func lfsr(n int, taps []int) []int {
	m := (1 << n) - 1
	state := make([]int, n)
	for i := range state {
		state[i] = 1
	}

	seq := make([]int, m)
	for i := 0; i < m; i++ {
		seq[i] = state[n-1]

		feedback := 0
		for _, tap := range taps {
			feedback ^= state[tap-1]
		}
		for j := n - 1; j > 0; j-- {
			state[j] = state[j-1]
		}
		state[0] = feedback
	}
	return seq
}

// Generate produces the length-1023 bipolar (±1) GPS L1 C/A Gold code for
// satellite id (1..32).
func Generate(id int) ([]int8, error) {
	if id < 1 || id > 32 {
		return nil, &ErrInvalidSatelliteID{ID: id}
	}

	g1 := lfsr(registerWidth, g1Taps[:])
	g2 := lfsr(registerWidth, g2Taps[:])
	delay := g2Delays[id-1]

	code := make([]int8, Length)
	for i := 0; i < Length; i++ {
		g2Shifted := g2[mod(i-delay, Length)]
		bit := g1[i] ^ g2Shifted
		code[i] = int8(2*bit - 1)
	}
	return code, nil
}

// mod computes the Euclidean remainder of a/b for non-negative b, handling
// negative a correctly (unlike Go's % operator).
func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
