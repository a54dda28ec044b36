package faker

import (
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/fakes/pkg/locale"
	"github.com/ajitpratap0/fakes/pkg/locale/japan"
	"github.com/ajitpratap0/fakes/pkg/metrics"
	"github.com/ajitpratap0/fakes/pkg/option"
	fakestest "github.com/ajitpratap0/fakes/pkg/testutil"
)

func japanDataset(t *testing.T) locale.Dataset {
	t.Helper()
	ds, err := locale.Get(japan.ID)
	require.NoError(t, err)
	return ds
}

func allColumns() []option.Column {
	return []option.Column{
		{Name: "fixed", Option: option.FixedString{Value: "const"}},
		{Name: "fixed_raw", Option: option.FixedNotString{Value: "null"}},
		{Name: "pick", Option: option.SelectString{Choices: []string{"a", "b", "c"}}},
		{Name: "pick_raw", Option: option.SelectNotString{Choices: []string{"1", "2"}}},
		{Name: "word", Option: option.Word{}},
		{Name: "words", Option: option.Words{Min: 1, Max: 4}},
		{Name: "sentence", Option: option.Sentence{}},
		{Name: "sentences", Option: option.Sentences{Min: 1, Max: 2}},
		{Name: "paragraph", Option: option.Paragraph{}},
		{Name: "paragraphs", Option: option.Paragraphs{Min: 1, Max: 2}},
		{Name: "first", Option: option.FirstName{Furigana: true}},
		{Name: "first_kana", Option: option.FirstNameFurigana{}},
		{Name: "last", Option: option.LastName{}},
		{Name: "last_kana", Option: option.LastNameFurigana{}},
		{Name: "full", Option: option.FullName{Furigana: true}},
		{Name: "full_kana", Option: option.FullNameFurigana{}},
		{Name: "int", Option: option.Integer{}},
		{Name: "int_range", Option: option.IntegerRange{Min: 1, Max: 99}},
		{Name: "float", Option: option.Float{}},
		{Name: "float_range", Option: option.FloatRange{Min: -5, Max: 5}},
		{Name: "ascii", Option: option.ASCII{Min: 8, Max: 15}},
		{Name: "bool", Option: option.Boolean{}},
		{Name: "email", Option: option.Email{}},
		{Name: "user", Option: option.UserName{}},
		{Name: "password", Option: option.Password{Min: 8, Max: 16}},
		{Name: "card", Option: option.CreditCard{}},
		{Name: "url", Option: option.URL{}},
		{Name: "ipv4", Option: option.IPv4{}},
		{Name: "ipv6", Option: option.IPv6{}},
		{Name: "rgb", Option: option.RGB{}},
		{Name: "rgba", Option: option.RGBA{}},
		{Name: "agent", Option: option.UserAgent{}},
		{Name: "status", Option: option.StatusCode{}},
		{Name: "uuid", Option: option.UUID{}},
		{Name: "suffix", Option: option.CompanySuffix{}},
		{Name: "company", Option: option.CompanyName{}},
		{Name: "industry", Option: option.Industry{}},
		{Name: "building", Option: option.Building{}},
		{Name: "street", Option: option.StreetName{}},
		{Name: "city", Option: option.CityName{}},
		{Name: "state", Option: option.StateName{}},
		{Name: "country_code", Option: option.CountryCode{}},
		{Name: "country", Option: option.CountryName{}},
		{Name: "tz", Option: option.TimeZone{}},
		{Name: "address", Option: option.Address{}},
		{Name: "zip", Option: option.ZipCode{Hyphen: true}},
		{Name: "phone", Option: option.DomesticPhoneNumber{}},
		{Name: "lat", Option: option.Latitude{}},
		{Name: "lon", Option: option.Longitude{}},
		{Name: "time", Option: option.Time{Format: option.DefaultTimeFormat}},
		{Name: "date", Option: option.Date{Format: option.DefaultDateFormat}},
		{Name: "datetime", Option: option.DateTime{Format: option.DefaultDateTimeFormat}},
		{Name: "file", Option: option.FileName{}},
		{Name: "ext", Option: option.Extension{}},
		{Name: "joined", Option: option.Join{Separator: " ", Options: []option.Option{option.CityName{}, option.Building{}}}},
	}
}

func TestGenRecordAlignsWithFields(t *testing.T) {
	f := NewSeeded(1, japanDataset(t), WithClock(clock), WithLogger(fakestest.TestLogger(t)))
	columns := allColumns()

	record := f.GenRecord(columns)
	assert.Len(t, record, len(option.Fields(columns)))
	for i, v := range record {
		assert.NotEmpty(t, v, "value %d", i)
	}
}

func TestDeterministicWithSameSeed(t *testing.T) {
	ds := japanDataset(t)
	a := NewSeeded(42, ds, WithClock(clock), WithLogger(fakestest.TestLogger(t)))
	b := NewSeeded(42, ds, WithClock(clock), WithLogger(fakestest.TestLogger(t)))

	assert.Equal(t, a.GenDataSet(20, allColumns()), b.GenDataSet(20, allColumns()))

	c := NewSeeded(43, ds, WithClock(clock), WithLogger(fakestest.TestLogger(t)))
	assert.NotEqual(t, a.GenDataSet(5, allColumns()), c.GenDataSet(5, allColumns()))
}

func TestRecordSharesPerson(t *testing.T) {
	ds := japanDataset(t)
	f := NewSeeded(5, ds, WithClock(clock), WithLogger(fakestest.TestLogger(t)))
	columns := []option.Column{
		{Name: "full", Option: option.FullName{Furigana: true}},
		{Name: "first", Option: option.FirstName{}},
		{Name: "last", Option: option.LastName{Furigana: true}},
		{Name: "first_kana", Option: option.FirstNameFurigana{}},
		{Name: "full_kana", Option: option.FullNameFurigana{}},
	}

	for _, r := range f.GenDataSet(50, columns) {
		require.Len(t, r, 7)
		full, fullKana, first, last, lastKana, firstKana, fullKana2 := r[0], r[1], r[2], r[3], r[4], r[5], r[6]
		assert.Equal(t, ds.ComposeFullName(last, first), full)
		assert.Equal(t, ds.ComposeFullName(lastKana, firstKana), fullKana)
		assert.Equal(t, fullKana, fullKana2)
	}
}

func TestFuriganaReadsSameField(t *testing.T) {
	ds := japanDataset(t)
	f := NewSeeded(9, ds, WithClock(clock), WithLogger(fakestest.TestLogger(t)))

	readings := map[string]string{}
	for _, e := range ds.Tables().LastNames {
		name, reading := splitName(e)
		readings[name] = reading
	}

	columns := []option.Column{
		{Name: "last", Option: option.LastName{}},
		{Name: "last_kana", Option: option.LastNameFurigana{}},
	}
	for _, r := range f.GenDataSet(30, columns) {
		assert.Equal(t, readings[r[0]], r[1])
	}
}

func TestFirstNameWithFuriganaPairsReading(t *testing.T) {
	ds := japanDataset(t)
	f := NewSeeded(5, ds, WithClock(clock), WithLogger(fakestest.TestLogger(t)))

	readings := map[string]string{}
	for _, e := range ds.Tables().FirstNames {
		name, reading := splitName(e)
		readings[name] = reading
	}

	columns := []option.Column{
		{Name: "first", Option: option.FirstName{Furigana: true}},
		{Name: "first_kana", Option: option.FirstNameFurigana{}},
	}
	for _, r := range f.GenDataSet(20, columns) {
		require.Len(t, r, 3)
		assert.Equal(t, readings[r[0]], r[1])
		assert.Equal(t, r[1], r[2])
	}
}

func TestDateTimeYearDataSet(t *testing.T) {
	f := NewSeeded(3, japanDataset(t), WithClock(clock), WithLogger(fakestest.TestLogger(t)))
	opt, err := option.NewDateTime("%Y")
	require.NoError(t, err)

	records := f.GenDataSet(3, []option.Column{{Name: "year", Option: opt}})
	require.Len(t, records, 3)
	for _, r := range records {
		require.Len(t, r, 1)
		require.Len(t, r[0], 4)
		year, err := strconv.Atoi(r[0])
		require.NoError(t, err)
		assert.True(t, year >= fixedNow.Year()-100 && year <= fixedNow.Year(), year)
	}
}

func TestGenDataSetRecordsMetrics(t *testing.T) {
	f := NewSeeded(3, japanDataset(t), WithLocaleName("metrics_test"), WithLogger(fakestest.TestLogger(t)))
	records := metrics.RecordsGenerated.WithLabelValues("metrics_test")
	values := metrics.ValuesGenerated.WithLabelValues("Internet")
	beforeValues := testutil.ToFloat64(values)

	f.GenDataSet(4, []option.Column{{Name: "a", Option: option.Email{}}, {Name: "b", Option: option.URL{}}})
	f.GenRecord([]option.Column{{Name: "a", Option: option.Email{}}})

	assert.Equal(t, float64(5), testutil.ToFloat64(records))
	assert.Equal(t, beforeValues+9, testutil.ToFloat64(values))
}

func TestGenEmptyDataSet(t *testing.T) {
	f := NewSeeded(3, japanDataset(t), WithLogger(fakestest.TestLogger(t)))
	assert.Empty(t, f.GenDataSet(0, allColumns()))
	assert.Empty(t, f.GenRecord(nil))
}
