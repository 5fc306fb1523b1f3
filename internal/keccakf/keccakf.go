// Package keccakf implements the Keccak-f[1600] permutation and the
// byte-addressable 200-byte state it operates on.
//
// This is the primitive the sponge construction in the shake128 package is
// built on. It has no notion of rate, capacity or padding; it only knows how
// to XOR bytes in, read bytes out, and permute.
package keccakf

import (
	"crypto/subtle"
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// Size is the number of addressable bytes in a Keccak state (25 lanes of 8
// bytes each, 1600 bits).
const Size = 200

// State is the 1600-bit Keccak state, addressed as 200 bytes. Byte b lives
// in lane b/8 at bit position 8*(b%8); lanes are little-endian.
type State [Size]byte

// lanes reinterprets the state as its 25 underlying uint64 lanes, which is
// the representation the permutation actually operates on. The cast is
// free: it aliases the same 200 bytes instead of copying through
// encoding/binary.
func (s *State) lanes() *[25]uint64 {
	return (*[25]uint64)(unsafe.Pointer(s))
}

// Reset zeroes every lane.
func (s *State) Reset() {
	*s = State{}
}

// XORByte XORs the low 8 bits of v into the state byte at offset.
func (s *State) XORByte(offset int, v byte) {
	s[offset] ^= v
}

// XORBytes XORs src into the state starting at offset. The caller must
// ensure offset+len(src) <= Size.
func (s *State) XORBytes(offset int, src []byte) {
	dst := s[offset : offset+len(src)]
	subtle.XORBytes(dst, dst, src)
}

// ExtractBytes copies len(dst) state bytes starting at offset into dst. The
// caller must ensure offset+len(dst) <= Size.
func (s *State) ExtractBytes(dst []byte, offset int) {
	copy(dst, s[offset:offset+len(dst)])
}

// rc holds the 24 round constants for the Iota step, FIPS 202 section 3.2.5.
var rc = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rho holds the per-lane rotation offsets, indexed by lane i = x + 5y.
var rho = [25]uint{
	0, 1, 62, 28, 27, 36, 44, 6, 55, 20, 3, 10, 43, 25, 39,
	41, 45, 15, 21, 8, 18, 2, 61, 56, 14,
}

// pi holds the lane's destination index after the Rho/Pi step, indexed the
// same way as rho.
var pi = [25]int{
	0, 10, 20, 5, 15, 16, 1, 11, 21, 6, 7, 17, 2, 12, 22,
	23, 8, 18, 3, 13, 14, 24, 9, 19, 4,
}

// Permute applies the 24-round Keccak-f[1600] permutation to the state.
func (s *State) Permute() {
	a := s.lanes()

	// The cast yields host-order lanes; on a big-endian host, swap them to
	// the little-endian lane order for the rounds and back afterwards.
	bigEndian := binary.NativeEndian.Uint16([]byte{0, 1}) == 1
	if bigEndian {
		for i := range a {
			a[i] = bits.ReverseBytes64(a[i])
		}
	}

	var c, d [5]uint64
	var b [25]uint64

	for round := 0; round < 24; round++ {
		// Theta.
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		}
		for i := 0; i < 25; i++ {
			a[i] ^= d[i%5]
		}

		// Rho + Pi, fused via the scratch buffer b.
		for i := 0; i < 25; i++ {
			b[pi[i]] = bits.RotateLeft64(a[i], int(rho[i]))
		}

		// Chi.
		for y := 0; y < 25; y += 5 {
			for x := 0; x < 5; x++ {
				a[y+x] = b[y+x] ^ (^b[y+(x+1)%5] & b[y+(x+2)%5])
			}
		}

		// Iota.
		a[0] ^= rc[round]
	}

	if bigEndian {
		for i := range a {
			a[i] = bits.ReverseBytes64(a[i])
		}
	}
}
