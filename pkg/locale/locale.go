// Package locale defines the capability interface the generator reads locale
// data through, and the registry that resolves locale identifiers to it.
//
// A locale is a set of fixed lookup tables plus four composition functions.
// Implementations register a Factory under one or more identifiers, usually
// from an init function:
//
//	func init() {
//		locale.MustRegister("jpn", New, "ja_JP")
//	}
//
// Datasets are immutable once built and are shared by every generation call
// for the locale.
package locale

import (
	"fmt"
	"math/rand/v2"

	"github.com/ajitpratap0/fakes/pkg/errors"
)

// Dataset is the locale data read by the generator.
type Dataset interface {
	// Tables returns the lookup tables. Callers must not modify them.
	Tables() *Tables
	// ComposeFullName joins a last and first name in locale order.
	ComposeFullName(last, first string) string
	// ComposeAddress joins street, city and state in locale order.
	ComposeAddress(street, city, state string) string
	// RenderPostalCode draws a postal code, with separators when hyphen is set.
	RenderPostalCode(rng *rand.Rand, hyphen bool) string
	// RenderDomesticPhone draws a phone number, with separators when hyphen is set.
	RenderDomesticPhone(rng *rand.Rand, hyphen bool) string
}

// Tables holds the fixed lookup tables of a locale. Name tables store
// "name:furigana" pairs; an entry without a colon uses the name as its reading.
type Tables struct {
	Words      []string
	Sentences  []string
	Paragraphs []string

	FirstNames []string
	LastNames  []string

	CompanySuffixes []string
	CompanyNames    []string
	Industries      []string

	Buildings    []string
	StreetNames  []string
	CityNames    []string
	StateNames   []string
	CountryNames []string
	CountryCodes []string
	TimeZones    []string

	CreditCards  []string
	Domains      []string
	IPv4Prefixes [][3]byte
	UserAgents   []string
	StatusCodes  []int

	Extensions []string
}

func (t *Tables) sizes() []struct {
	name string
	n    int
} {
	return []struct {
		name string
		n    int
	}{
		{"words", len(t.Words)},
		{"sentences", len(t.Sentences)},
		{"paragraphs", len(t.Paragraphs)},
		{"first_names", len(t.FirstNames)},
		{"last_names", len(t.LastNames)},
		{"company_suffixes", len(t.CompanySuffixes)},
		{"company_names", len(t.CompanyNames)},
		{"industries", len(t.Industries)},
		{"buildings", len(t.Buildings)},
		{"street_names", len(t.StreetNames)},
		{"city_names", len(t.CityNames)},
		{"state_names", len(t.StateNames)},
		{"country_names", len(t.CountryNames)},
		{"country_codes", len(t.CountryCodes)},
		{"time_zones", len(t.TimeZones)},
		{"credit_cards", len(t.CreditCards)},
		{"domains", len(t.Domains)},
		{"ipv4_prefixes", len(t.IPv4Prefixes)},
		{"user_agents", len(t.UserAgents)},
		{"status_codes", len(t.StatusCodes)},
		{"extensions", len(t.Extensions)},
	}
}

// Validate fails when ds has no tables or any table is empty.
func Validate(ds Dataset) error {
	if ds == nil {
		return errors.New(errors.ErrorTypeLocale, "dataset is nil")
	}
	t := ds.Tables()
	if t == nil {
		return errors.New(errors.ErrorTypeLocale, "dataset has no tables")
	}

	var empty []string
	for _, s := range t.sizes() {
		if s.n == 0 {
			empty = append(empty, s.name)
		}
	}
	if len(empty) > 0 {
		return errors.New(errors.ErrorTypeLocale, fmt.Sprintf("dataset has empty tables: %v", empty)).
			WithDetail("tables", empty)
	}
	return nil
}
