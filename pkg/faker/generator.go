package faker

import (
	"fmt"
	"math/rand/v2"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/strftime"

	"github.com/ajitpratap0/fakes/pkg/locale"
	"github.com/ajitpratap0/fakes/pkg/option"
)

// Generator turns one option into values using a locale dataset. It holds no
// mutable state; the random stream is passed to every call, so one Generator
// can serve any number of streams.
type Generator struct {
	dataset locale.Dataset
	now     func() time.Time
}

// NewGenerator returns a Generator reading ds. now is the clock Date options
// count years back from; nil means time.Now.
func NewGenerator(ds locale.Dataset, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{dataset: ds, now: now}
}

// Dataset returns the locale dataset of g.
func (g *Generator) Dataset() locale.Dataset {
	return g.dataset
}

// Generate returns the record values of opt: two for names paired with their
// furigana, one otherwise. Name options draw a fresh person.
func (g *Generator) Generate(rng *rand.Rand, opt option.Option) []string {
	return g.generate(rng, opt, nil)
}

// Value returns the values of opt joined with ":".
func (g *Generator) Value(rng *rand.Rand, opt option.Option) string {
	return strings.Join(g.Generate(rng, opt), ":")
}

func (g *Generator) generate(rng *rand.Rand, opt option.Option, person *PersonName) []string {
	if j, ok := opt.(option.Join); ok {
		if person == nil && option.IsPersonName(j) {
			p := NewPersonName(rng, g.dataset)
			person = &p
		}
		parts := make([]string, 0, len(j.Options))
		for _, member := range j.Options {
			parts = append(parts, g.generate(rng, member, person)...)
		}
		return []string{strings.Join(parts, j.Separator)}
	}

	if option.IsPersonName(opt) {
		if person == nil {
			p := NewPersonName(rng, g.dataset)
			person = &p
		}
		return person.Values(opt)
	}

	return []string{g.value(rng, opt)}
}

func (g *Generator) value(rng *rand.Rand, opt option.Option) string {
	t := g.dataset.Tables()

	switch o := opt.(type) {
	// Fixed
	case option.FixedString:
		return o.Value
	case option.FixedNotString:
		return o.Value

	// Select
	case option.SelectString:
		return selectOne(rng, "choices", o.Choices)
	case option.SelectNotString:
		return selectOne(rng, "choices", o.Choices)

	// Lorem
	case option.Word:
		return selectOne(rng, "words", t.Words)
	case option.Words:
		return strings.Join(selectMany(rng, "words", t.Words, o.Min, o.Max), " ")
	case option.Sentence:
		return selectOne(rng, "sentences", t.Sentences)
	case option.Sentences:
		return strings.Join(selectMany(rng, "sentences", t.Sentences, o.Min, o.Max), " ")
	case option.Paragraph:
		return selectOne(rng, "paragraphs", t.Paragraphs)
	case option.Paragraphs:
		return strings.Join(selectMany(rng, "paragraphs", t.Paragraphs, o.Min, o.Max), "\n")

	// Primitive
	case option.Integer:
		return strconv.Itoa(int(int16(rng.Uint32())))
	case option.IntegerRange:
		return strconv.FormatInt(genRange64(rng, o.Min, o.Max), 10)
	case option.Float:
		return fmt.Sprintf("%.2f", float64(int16(rng.Uint32()))+rng.Float64())
	case option.FloatRange:
		return fmt.Sprintf("%.2f", float64(o.Min)+(float64(o.Max)-float64(o.Min))*rng.Float64())
	case option.ASCII:
		return genChars(rng, asciiChars, o.Min, o.Max)
	case option.Boolean:
		return strconv.FormatBool(rng.Uint32()%2 == 0)

	// Internet
	case option.Email:
		return genChars(rng, alphaNumChars, 8, 20) + "@example.com"
	case option.UserName:
		return genChars(rng, alphaNumChars, 4, 15)
	case option.Password:
		return genChars(rng, passwordChars, o.Min, o.Max)
	case option.CreditCard:
		return selectOne(rng, "credit_cards", t.CreditCards)
	case option.URL:
		domain := selectOne(rng, "domains", t.Domains)
		return fmt.Sprintf("http://%s/%s/%s", domain,
			genChars(rng, alphaNumChars, 1, 10), genChars(rng, alphaNumChars, 1, 10))
	case option.IPv4:
		p := selectOne(rng, "ipv4_prefixes", t.IPv4Prefixes)
		return netip.AddrFrom4([4]byte{p[0], p[1], p[2], byte(rng.IntN(256))}).String()
	case option.IPv6:
		b := [16]byte{0x20, 0x01, 0x0d, 0xb8}
		for i := 4; i < len(b); i += 2 {
			v := rng.Uint32()
			b[i], b[i+1] = byte(v>>8), byte(v)
		}
		return netip.AddrFrom16(b).String()
	case option.RGB:
		return fmt.Sprintf("#%02X%02X%02X", rng.IntN(256), rng.IntN(256), rng.IntN(256))
	case option.RGBA:
		return fmt.Sprintf("#%02X%02X%02X%02X", rng.IntN(256), rng.IntN(256), rng.IntN(256), rng.IntN(256))
	case option.UserAgent:
		return selectOne(rng, "user_agents", t.UserAgents)
	case option.StatusCode:
		return strconv.Itoa(selectOne(rng, "status_codes", t.StatusCodes))
	case option.UUID:
		id, err := uuid.NewRandomFromReader(streamReader{rng: rng})
		if err != nil {
			panic(fmt.Sprintf("faker: uuid from stream: %v", err))
		}
		return id.String()

	// Company
	case option.CompanySuffix:
		return selectOne(rng, "company_suffixes", t.CompanySuffixes)
	case option.CompanyName:
		name := selectOne(rng, "company_names", t.CompanyNames)
		return name + selectOne(rng, "company_suffixes", t.CompanySuffixes)
	case option.Industry:
		return selectOne(rng, "industries", t.Industries)

	// Address
	case option.Building:
		return selectOne(rng, "buildings", t.Buildings)
	case option.StreetName:
		return selectOne(rng, "street_names", t.StreetNames)
	case option.CityName:
		return selectOne(rng, "city_names", t.CityNames)
	case option.StateName:
		return selectOne(rng, "state_names", t.StateNames)
	case option.CountryCode:
		return selectOne(rng, "country_codes", t.CountryCodes)
	case option.CountryName:
		return selectOne(rng, "country_names", t.CountryNames)
	case option.TimeZone:
		return selectOne(rng, "time_zones", t.TimeZones)
	case option.Address:
		street := selectOne(rng, "street_names", t.StreetNames)
		city := selectOne(rng, "city_names", t.CityNames)
		state := selectOne(rng, "state_names", t.StateNames)
		return g.dataset.ComposeAddress(street, city, state)
	case option.ZipCode:
		return g.dataset.RenderPostalCode(rng, o.Hyphen)
	case option.DomesticPhoneNumber:
		return g.dataset.RenderDomesticPhone(rng, o.Hyphen)
	case option.Latitude:
		return fmt.Sprintf("%+010.6f", -90+180*rng.Float64())
	case option.Longitude:
		return fmt.Sprintf("%+011.6f", -180+360*rng.Float64())

	// DateTime
	case option.Time:
		return format(o.Format, g.clock(rng, g.now()))
	case option.Date:
		return format(o.Format, g.date(rng))
	case option.DateTime:
		return format(o.Format, g.clock(rng, g.date(rng)))

	// FileSystem
	case option.FileName:
		return genChars(rng, alphaNumChars, 3, 15) + "." + selectOne(rng, "extensions", t.Extensions)
	case option.Extension:
		return selectOne(rng, "extensions", t.Extensions)

	default:
		panic(fmt.Sprintf("faker: unsupported option %T", opt))
	}
}

// date draws a year within the last hundred years and a month, then redraws
// only the day until it exists in that month.
func (g *Generator) date(rng *rand.Rand) time.Time {
	current := g.now().Year()
	year := genRange(rng, current-100, current)
	month := time.Month(genRange(rng, 1, 12))
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for {
		if day := genRange(rng, 1, 31); day <= last {
			return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		}
	}
}

// clock sets a random time of day on the date of day.
func (g *Generator) clock(rng *rand.Rand, day time.Time) time.Time {
	h, m, s := genRange(rng, 0, 23), genRange(rng, 0, 59), genRange(rng, 0, 59)
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, s, 0, time.UTC)
}

func format(pattern string, t time.Time) string {
	out, err := strftime.Format(pattern, t)
	if err != nil {
		panic(fmt.Sprintf("faker: date format %q: %v", pattern, err))
	}
	return out
}
