// Package random provides the injectable randomness used by every generator.
// The default source reads crypto/rand; tests substitute a seeded source.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	mathrand "math/rand/v2"
	"strings"
	"sync"
)

// Source is the math/rand/v2 source interface. Implementations passed to
// generators must be safe for concurrent use if the generator is shared.
type Source = mathrand.Source

// cryptoSource draws 64-bit values from crypto/rand.
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	mustRead(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// Crypto returns a source backed by crypto/rand. It is safe for concurrent use.
func Crypto() Source {
	return cryptoSource{}
}

// lockedSource serializes access to a PCG generator.
type lockedSource struct {
	mu  sync.Mutex
	pcg *mathrand.PCG
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pcg.Uint64()
}

// NewSeeded returns a deterministic source. It is safe for concurrent use,
// but the sequence each caller observes is only reproducible from a single
// goroutine.
func NewSeeded(seed uint64) Source {
	return &lockedSource{pcg: mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
}

// Rand wraps a Source with the helpers the generators need.
// A Rand holds no state of its own beyond the source.
type Rand struct {
	r *mathrand.Rand
}

// New wraps src. A nil src falls back to Crypto.
func New(src Source) *Rand {
	if src == nil {
		src = Crypto()
	}
	return &Rand{r: mathrand.New(src)}
}

// IntN returns a random int in [0, n).
func (r *Rand) IntN(n int) int {
	return r.r.IntN(n)
}

// Between returns a random int in [lo, hi].
func (r *Rand) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Bool returns true or false with equal probability.
func (r *Rand) Bool() bool {
	return r.r.Uint64()&1 == 1
}

// Read fills p with random bytes. It never fails, which lets a Rand serve as
// the io.Reader for uuid generation.
func (r *Rand) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := r.r.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}

// Hex returns n random bytes hex-encoded (2n characters).
func (r *Rand) Hex(n int) string {
	b := make([]byte, n)
	_, _ = r.Read(b)
	return hex.EncodeToString(b)
}

// Digits returns n random decimal digits.
func (r *Rand) Digits(n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(byte('0' + r.r.IntN(10)))
	}
	return b.String()
}

// Template expands a digit template: '#' becomes any digit, '%' a digit
// 1-9 and '?' an uppercase letter. Everything else is copied.
func (r *Rand) Template(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))
	for _, c := range pattern {
		switch c {
		case '#':
			b.WriteByte(byte('0' + r.r.IntN(10)))
		case '%':
			b.WriteByte(byte('1' + r.r.IntN(9)))
		case '?':
			b.WriteByte(byte('A' + r.r.IntN(26)))
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Pick returns a random element of s. s must not be empty.
func Pick[T any](r *Rand, s []T) T {
	return s[r.IntN(len(s))]
}

// mustRead fills b with cryptographically random bytes.
func mustRead(b []byte) {
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
}
