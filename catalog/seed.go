package catalog

import (
	"hash/fnv"
	"math/rand/v2"
	"strconv"
)

// Seed derives the random seed of a catalog entry.
//
// The seed is the 64-bit FNV-1a hash of the UTF-8 bytes
//
//	style + "\x00" + section + "\x00" + decimal(index)
//
// where decimal(index) has no sign or padding for positive indices. FNV-1a
// uses offset basis 0xcbf29ce484222325 and prime 0x100000001b3, so the value
// is reproducible in any language.
func Seed(style, section string, index int) uint64 {
	h := fnv.New64a()
	// hash.Hash writes never fail.
	_, _ = h.Write([]byte(style))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(section))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(strconv.AppendInt(nil, int64(index), 10))
	return h.Sum64()
}

// NewRand returns the random source for a seed: a PCG generator whose two
// state words are both the seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
