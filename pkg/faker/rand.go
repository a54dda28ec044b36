package faker

import (
	"fmt"
	"math/rand/v2"

	"github.com/ajitpratap0/fakes/pkg/option"
)

const (
	alphaNumChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	passwordChars = alphaNumChars + "!@#$%^&*()+-={}[]:;<>,./?_~|"
)

// asciiChars holds the printable ASCII characters '!' through '~'.
var asciiChars = func() string {
	b := make([]byte, 0, '~'-'!'+1)
	for c := byte('!'); c <= '~'; c++ {
		b = append(b, c)
	}
	return string(b)
}()

// genRange draws uniformly from the inclusive range [lo, hi].
func genRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// genRange64 draws uniformly from [lo, hi] without overflowing on wide ranges.
func genRange64(rng *rand.Rand, lo, hi int64) int64 {
	span := uint64(hi) - uint64(lo) + 1
	if span == 0 {
		return int64(rng.Uint64())
	}
	return lo + int64(rng.Uint64N(span))
}

// selectOne picks a uniform entry of table. An empty table is a defective
// locale and panics with the table name.
func selectOne[T any](rng *rand.Rand, table string, values []T) T {
	if len(values) == 0 {
		panic(fmt.Sprintf("faker: table %q is empty", table))
	}
	return values[rng.IntN(len(values))]
}

// selectMany picks between lo and hi distinct entries of values, capped at
// the table size.
func selectMany(rng *rand.Rand, table string, values []string, lo, hi uint) []string {
	if len(values) == 0 {
		panic(fmt.Sprintf("faker: table %q is empty", table))
	}
	size := uint(len(values))
	lo, hi = min(lo, size), min(hi, size)
	n := genRange(rng, int(lo), int(hi))
	out := make([]string, n)
	for i, idx := range rng.Perm(len(values))[:n] {
		out[i] = values[idx]
	}
	return out
}

// genChars draws a string of length [lo, hi] from charset. Both bounds are
// capped at option.MaxLength.
func genChars(rng *rand.Rand, charset string, lo, hi uint) string {
	lo, hi = min(lo, option.MaxLength), min(hi, option.MaxLength)
	n := genRange(rng, int(lo), int(hi))
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[rng.IntN(len(charset))]
	}
	return string(b)
}

// streamReader exposes a generation stream as an io.Reader.
type streamReader struct {
	rng *rand.Rand
}

func (r streamReader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := r.rng.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}
