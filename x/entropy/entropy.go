// Package entropy supplies the 32-bit random words bigint.Random and the
// prime package's candidate generation draw on.
//
// Each raw entropy byte is remapped through a fixed 256-entry permutation
// table before assembly into a word, the same indirection the C library
// this package is modeled on used to decorrelate a possibly weak platform
// source from its output. The primary source is crypto/rand; if it ever
// fails to produce bytes (practically never, but the original's own
// platform source could fail too), generation falls back to a
// wall-clock-seeded PRNG rather than blocking forever.
//
// A Source is not safe for concurrent use: it holds no internal lock, in
// keeping with the single-threaded model the rest of this module assumes.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"
	"time"
)

// Source supplies 32-bit random words.
type Source interface {
	Uint32() uint32
}

// permutationTable is carried byte-for-byte from the source library's
// fixed table: a permutation of [0,255] used to remap every raw entropy
// byte before it contributes to a word.
var permutationTable = [256]byte{
	47, 73, 116, 45, 69, 61, 202, 144, 192, 235,
	201, 170, 139, 77, 228, 117, 32, 215, 9, 178,
	214, 193, 64, 200, 58, 132, 89, 60, 63, 141,
	35, 234, 76, 95, 20, 182, 173, 190, 68, 229,
	27, 28, 226, 143, 186, 86, 138, 54, 75, 242,
	90, 42, 211, 15, 100, 1, 254, 243, 134, 156,
	218, 26, 24, 187, 128, 14, 175, 53, 67, 246,
	230, 167, 236, 146, 18, 23, 177, 213, 142, 74,
	118, 147, 203, 159, 112, 196, 171, 249, 240, 56,
	16, 244, 169, 70, 3, 191, 150, 57, 126, 30,
	10, 160, 206, 37, 109, 25, 6, 66, 46, 210,
	157, 212, 145, 2, 39, 204, 72, 224, 250, 88,
	104, 155, 52, 108, 105, 81, 85, 151, 93, 103,
	184, 83, 34, 255, 51, 239, 4, 162, 222, 59,
	22, 161, 12, 91, 50, 199, 101, 216, 80, 119,
	164, 71, 82, 107, 251, 13, 129, 94, 44, 96,
	225, 8, 223, 135, 153, 165, 174, 220, 102, 238,
	154, 197, 33, 149, 41, 19, 140, 40, 247, 114,
	195, 78, 43, 168, 233, 209, 148, 180, 237, 253,
	185, 166, 11, 98, 198, 241, 133, 21, 207, 248,
	219, 245, 36, 172, 55, 152, 188, 84, 125, 189,
	163, 127, 120, 205, 124, 5, 31, 122, 110, 217,
	181, 87, 137, 115, 131, 252, 7, 183, 111, 176,
	231, 65, 194, 0, 113, 79, 49, 97, 99, 179,
	121, 158, 29, 17, 106, 227, 38, 62, 123, 130,
	92, 221, 136, 208, 48, 232,
}

// generator is the default Source implementation.
type generator struct {
	table    [256]byte
	fallback *mathrand.Rand
}

// New returns a Source configured by opts.
func New(opts ...Option) Source {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &generator{
		table:    cfg.Table,
		fallback: mathrand.New(mathrand.NewPCG(uint64(time.Now().UnixNano()), cfg.FallbackSeed)),
	}
}

// defaultSource is the package-wide Source returned by Default.
var defaultSource Source

func init() {
	defaultSource = New()
}

// Default returns the package-wide default Source, backed by crypto/rand.
func Default() Source {
	return defaultSource
}

// Uint32 returns one 32-bit word of entropy.
func (g *generator) Uint32() uint32 {
	var raw [4]byte
	if _, err := rand.Read(raw[:]); err == nil {
		return g.assemble(raw[:])
	}
	for i := range raw {
		raw[i] = byte(g.fallback.Uint32())
	}
	return g.assemble(raw[:])
}

// assemble remaps each raw byte through the permutation table and packs
// the four resulting bytes into a little-endian word, mirroring
// rand_get_number's byte-at-a-time accumulation.
func (g *generator) assemble(raw []byte) uint32 {
	var remapped [4]byte
	for i, b := range raw {
		remapped[i] = g.table[b]
	}
	return binary.LittleEndian.Uint32(remapped[:])
}
