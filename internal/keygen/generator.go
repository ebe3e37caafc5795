// Package keygen produces hex-encoded random key strings from a
// non-cryptographic pseudo-random source.
package keygen

import (
	"encoding/hex"
	"math/rand"
	"time"
)

const (
	// KeyBytes is the number of random bytes drawn per key.
	KeyBytes = 32

	// KeyHexLen is the length of a hex-encoded key string.
	KeyHexLen = KeyBytes * 2
)

// Generator draws uniform random bytes and renders them as lowercase
// hexadecimal key strings.
//
// The underlying source is math/rand, which is NOT cryptographically
// secure. Output must never be used as real key material; any such use
// requires swapping in a crypto/rand-backed source. The rest of the
// contract (key length, encoding, batch semantics) is unaffected by
// the source choice.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator with an explicit seed. Two Generators with
// the same seed produce the same key sequence.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewFromClock creates a Generator seeded from a high-resolution clock
// reading taken at the call site.
func NewFromClock() *Generator {
	return New(time.Now().UnixNano())
}

// Key draws KeyBytes independent uniform bytes, each in [0,255], and
// returns them as KeyHexLen lowercase hex characters in draw order.
// It always succeeds; the only side effect is consuming source state.
//
// A Generator is not safe for concurrent use. Callers that generate
// from multiple goroutines must give each goroutine its own instance.
func (g *Generator) Key() string {
	buf := make([]byte, KeyBytes)
	for i := range buf {
		buf[i] = byte(g.rng.Intn(256))
	}
	return hex.EncodeToString(buf)
}
