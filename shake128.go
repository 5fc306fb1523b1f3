// Package shake128 implements SHAKE128, the 128-bit-security
// extendable-output function from the SHA-3 family (FIPS 202), over a
// portable Keccak-f[1600] permutation.
//
// Unlike a fixed-size hash, SHAKE128 produces output of any requested
// length: Sum takes the length as an argument rather than returning a
// fixed-size digest. This package deliberately carries no platform
// assembly — it runs identically, and byte-for-byte compatibly, on any
// GOARCH Go supports, at the cost of the speed a hand-tuned permutation
// would get on amd64/arm64.
package shake128

import (
	"errors"
	"io"

	"github.com/keccak-sponge/shake128/internal/keccakf"
)

const (
	// Rate is the SHAKE128 sponge rate in bytes: 200 - 2*(128/8).
	Rate = 168

	// suffix is the SHAKE domain-separation bits, appended before the
	// pad10*1 end bit.
	suffix = 0x1F

	// padEnd is the final bit of the pad10*1 rule.
	padEnd = 0x80
)

// ErrWriteAfterSum is returned by Write once Sum has been called. The
// sponge has entered the squeeze phase and no longer accepts input.
var ErrWriteAfterSum = errors.New("shake128: write after sum")

// Hasher is a SHAKE128 sponge. The zero value is a valid, empty context.
// A Hasher is not safe for concurrent use; independent Hashers share no
// state and may be used from different goroutines freely.
type Hasher struct {
	state      keccakf.State
	absorbed   int
	finalized  bool
	finalState keccakf.State // snapshot taken right after padding + permute
}

var _ io.Writer = (*Hasher)(nil)

// Write absorbs p into the sponge. It returns ErrWriteAfterSum, leaving
// the sponge unchanged, if Sum has already been called.
func (h *Hasher) Write(p []byte) (int, error) {
	if h.finalized {
		return 0, ErrWriteAfterSum
	}

	n := len(p)
	for len(p) > 0 {
		chunk := Rate - h.absorbed
		if chunk > len(p) {
			chunk = len(p)
		}
		h.state.XORBytes(h.absorbed, p[:chunk])
		h.absorbed += chunk
		p = p[chunk:]

		if h.absorbed == Rate {
			h.state.Permute()
			h.absorbed = 0
		}
	}
	return n, nil
}

// Sum finalizes the sponge (if it has not been already) and returns n
// bytes of output. Sum does not mutate the sponge beyond the one-time
// finalization: calling Sum repeatedly, with the same or different n,
// always re-squeezes from the same padded state, so Sum(n) is idempotent
// and Sum(n1) is a prefix of Sum(n2) for n1 <= n2.
func (h *Hasher) Sum(n int) []byte {
	if !h.finalized {
		h.finalize()
	}

	out := make([]byte, n)
	work := h.finalState
	rest := out
	blockOff := 0
	for len(rest) > 0 {
		if blockOff == Rate {
			work.Permute()
			blockOff = 0
		}
		chunk := Rate - blockOff
		if chunk > len(rest) {
			chunk = len(rest)
		}
		work.ExtractBytes(rest[:chunk], blockOff)
		blockOff += chunk
		rest = rest[chunk:]
	}
	return out
}

// finalize applies SHAKE padding to the absorb-phase state and performs
// the one permutation that transitions the sponge into the squeeze phase.
func (h *Hasher) finalize() {
	h.state.XORByte(h.absorbed, suffix)
	h.state.XORByte(Rate-1, padEnd)
	h.state.Permute()
	h.finalized = true
	h.finalState = h.state
}

// Reset returns the sponge to its zero-value state; a Hasher after Reset
// behaves exactly like a newly constructed one.
func (h *Hasher) Reset() {
	h.state.Reset()
	h.absorbed = 0
	h.finalized = false
	h.finalState.Reset()
}

// Sum128 is a one-shot convenience equivalent to constructing a fresh
// Hasher, writing data into it, and returning Sum(n).
func Sum128(data []byte, n int) []byte {
	var h Hasher
	_, _ = h.Write(data) // a fresh Hasher never returns ErrWriteAfterSum
	return h.Sum(n)
}
