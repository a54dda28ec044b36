// Package japan registers the Japanese locale under "jpn" and "ja_JP".
package japan

import (
	"fmt"
	"math/rand/v2"

	"github.com/ajitpratap0/fakes/pkg/locale"
)

// ID is the registry identifier of the locale.
const ID = "jpn"

func init() {
	locale.MustRegister(ID, New, "ja_JP")
}

// Dataset is the Japanese locale.
type Dataset struct {
	tables *locale.Tables
}

// New builds the Japanese dataset on top of the common tables.
func New() (locale.Dataset, error) {
	t := locale.Common()
	t.Words = words
	t.Sentences = sentences
	t.Paragraphs = paragraphs
	t.FirstNames = firstNames
	t.LastNames = lastNames
	t.CompanySuffixes = companySuffixes
	t.CompanyNames = companyNames
	t.Industries = industries
	t.Buildings = buildings
	t.StreetNames = streetNames
	t.CityNames = cityNames
	t.StateNames = stateNames
	t.CountryNames = countryNames
	return &Dataset{tables: t}, nil
}

func (d *Dataset) Tables() *locale.Tables { return d.tables }

// ComposeFullName puts the family name first, with no separator.
func (*Dataset) ComposeFullName(last, first string) string {
	return last + first
}

// ComposeAddress renders prefecture, city, then street.
func (*Dataset) ComposeAddress(street, city, state string) string {
	return state + city + street
}

// RenderPostalCode renders a 7-digit postal code as 123-4567 or 1234567.
func (*Dataset) RenderPostalCode(rng *rand.Rand, hyphen bool) string {
	a, b := rng.IntN(1000), rng.IntN(10000)
	if hyphen {
		return fmt.Sprintf("%03d-%04d", a, b)
	}
	return fmt.Sprintf("%03d%04d", a, b)
}

// RenderDomesticPhone renders a number as 03-123-4567 or 031234567.
func (*Dataset) RenderDomesticPhone(rng *rand.Rand, hyphen bool) string {
	a, b, c := rng.IntN(10), rng.IntN(1000), rng.IntN(10000)
	if hyphen {
		return fmt.Sprintf("%02d-%03d-%04d", a, b, c)
	}
	return fmt.Sprintf("%02d%03d%04d", a, b, c)
}
