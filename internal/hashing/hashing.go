// Package hashing builds stable 64-bit digests for value types.
//
// Digests are independent of process and map ordering, so two equal
// descriptors always hash identically, including across runs.
package hashing

import (
	"encoding/binary"
	"math"

	"lukechampine.com/blake3"
)

// Hasher accumulates fields into a digest. Field order matters.
type Hasher struct {
	h   *blake3.Hasher
	buf [8]byte
}

// New returns an empty Hasher.
func New() *Hasher {
	return &Hasher{h: blake3.New(8, nil)}
}

// Uint64 writes v.
func (h *Hasher) Uint64(v uint64) *Hasher {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.h.Write(h.buf[:])
	return h
}

// Uint32 writes v.
func (h *Hasher) Uint32(v uint32) *Hasher {
	return h.Uint64(uint64(v))
}

// Int writes v.
func (h *Hasher) Int(v int) *Hasher {
	return h.Uint64(uint64(v))
}

// Float writes v. Negative zero hashes like zero.
func (h *Hasher) Float(v float64) *Hasher {
	if v == 0 {
		v = 0
	}
	return h.Uint64(math.Float64bits(v))
}

// Bool writes v.
func (h *Hasher) Bool(v bool) *Hasher {
	if v {
		return h.Uint64(1)
	}
	return h.Uint64(0)
}

// String writes a length-prefixed string.
func (h *Hasher) String(s string) *Hasher {
	h.Int(len(s))
	_, _ = h.h.Write([]byte(s))
	return h
}

// Sum64 returns the digest of everything written so far.
func (h *Hasher) Sum64() uint64 {
	return binary.LittleEndian.Uint64(h.h.Sum(nil))
}
