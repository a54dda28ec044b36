package faker

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/ajitpratap0/fakes/pkg/locale"
	"github.com/ajitpratap0/fakes/pkg/option"
)

// PersonName is one synthesized identity. Every name column of a record reads
// from the same PersonName.
type PersonName struct {
	First         string
	FirstFurigana string
	Last          string
	LastFurigana  string
	Full          string
	FullFurigana  string
}

// NewPersonName draws a last name, then a first name, and composes the full
// name separately for the plain and furigana channels.
func NewPersonName(rng *rand.Rand, ds locale.Dataset) PersonName {
	t := ds.Tables()
	last, lastReading := splitName(selectOne(rng, "last_names", t.LastNames))
	first, firstReading := splitName(selectOne(rng, "first_names", t.FirstNames))
	return PersonName{
		First:         first,
		FirstFurigana: firstReading,
		Last:          last,
		LastFurigana:  lastReading,
		Full:          ds.ComposeFullName(last, first),
		FullFurigana:  ds.ComposeFullName(lastReading, firstReading),
	}
}

// Values returns the record values of a name option. It panics for any other
// option.
func (p PersonName) Values(opt option.Option) []string {
	switch o := opt.(type) {
	case option.FirstName:
		return paired(p.First, p.FirstFurigana, o.Furigana)
	case option.FirstNameFurigana:
		return []string{p.FirstFurigana}
	case option.LastName:
		return paired(p.Last, p.LastFurigana, o.Furigana)
	case option.LastNameFurigana:
		return []string{p.LastFurigana}
	case option.FullName:
		return paired(p.Full, p.FullFurigana, o.Furigana)
	case option.FullNameFurigana:
		return []string{p.FullFurigana}
	default:
		panic(fmt.Sprintf("faker: %T is not a name option", opt))
	}
}

func paired(name, reading string, withReading bool) []string {
	if withReading {
		return []string{name, reading}
	}
	return []string{name}
}

// splitName splits a "name:furigana" entry on its first colon. Without a
// colon the name is also its own reading.
func splitName(entry string) (name, reading string) {
	name, reading, ok := strings.Cut(entry, ":")
	name = strings.TrimSpace(name)
	if !ok {
		return name, name
	}
	return name, strings.TrimSpace(reading)
}
