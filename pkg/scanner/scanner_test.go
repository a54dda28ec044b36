package scanner

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/fakes/pkg/option"
)

func scanErr(t *testing.T, input string) *Error {
	t.Helper()
	_, err := Scan(input)
	require.Error(t, err, input)
	var e *Error
	require.True(t, errors.As(err, &e), "%T", err)
	return e
}

func TestScanExamples(t *testing.T) {
	for _, expr := range Examples() {
		c, err := Scan(expr)
		require.NoError(t, err, expr)
		assert.Equal(t, "column", c.Name)
		assert.NotNil(t, c.Option, expr)
	}
}

func TestScanOptions(t *testing.T) {
	tests := []struct {
		input  string
		column string
		want   option.Option
	}{
		{"Primitive.Int(age#1#99)", "age", option.IntegerRange{Min: 1, Max: 99}},
		{"Primitive.Int(n)", "n", option.Integer{}},
		{"Primitive.Int(n#-5#-1)", "n", option.IntegerRange{Min: -5, Max: -1}},
		{"Primitive.Float(f#0#1)", "f", option.FloatRange{Min: 0, Max: 1}},
		{"Primitive.Ascii(code)", "code", option.ASCII{Min: 8, Max: 15}},
		{"Primitive.Bool(ok)", "ok", option.Boolean{}},
		{"Name.FirstName(name)", "name", option.FirstName{Furigana: false}},
		{"Name.FullName(name#true)", "name", option.FullName{Furigana: true}},
		{"Name.LastNameFurigana(kana)", "kana", option.LastNameFurigana{}},
		{"Fixed.String(kind#user)", "kind", option.FixedString{Value: "user"}},
		{`Fixed.String(note#"a#b")`, "note", option.FixedString{Value: "a#b"}},
		{`Fixed.NotString("deleted at"#null)`, "deleted at", option.FixedNotString{Value: "null"}},
		{"Select.String(color#[red#green])", "color", option.SelectString{Choices: []string{"red", "green"}}},
		{"Select.NotString(n#1#2#3)", "n", option.SelectNotString{Choices: []string{"1", "2", "3"}}},
		{"Lorem.Word(w)", "w", option.Word{}},
		{"Lorem.Word(w#2#4)", "w", option.Words{Min: 2, Max: 4}},
		{"Lorem.Paragraph(p#1#1)", "p", option.Paragraphs{Min: 1, Max: 1}},
		{"Internet.Password(pw#8#16)", "pw", option.Password{Min: 8, Max: 16}},
		{"Internet.StatusCode(status)", "status", option.StatusCode{}},
		{"Address.ZipCode(zip#true)", "zip", option.ZipCode{Hyphen: true}},
		{"Address.Phone(tel)", "tel", option.DomesticPhoneNumber{}},
		{"Company.Suffix(s)", "s", option.CompanySuffix{}},
		{"DateTime.Date(d)", "d", option.Date{Format: option.DefaultDateFormat}},
		{"DateTime.Time(t#%H)", "t", option.Time{Format: "%H"}},
		{`DateTime.DateTime(at#"%Y/%m/%d %H:%M")`, "at", option.DateTime{Format: "%Y/%m/%d %H:%M"}},
		{"FileSystem.Extension(ext)", "ext", option.Extension{}},
		{"  Address.City(city)  ", "city", option.CityName{}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := Scan(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.column, c.Name)
			assert.Equal(t, tt.want, c.Option)
		})
	}
}

func TestScanJoin(t *testing.T) {
	c, err := Scan(`With.Join(full#" "#Name.LastName#Name.FirstName)`)
	require.NoError(t, err)
	assert.Equal(t, "full", c.Name)
	assert.Equal(t, option.Join{
		Separator: " ",
		Options:   []option.Option{option.LastName{}, option.FirstName{}},
	}, c.Option)

	c, err = Scan("With.Join(code#-#Address.State#Primitive.Int)")
	require.NoError(t, err)
	assert.Equal(t, "-", c.Option.(option.Join).Separator)

	c, err = Scan(`With.Join(x#""#Address.City#Address.Building)`)
	require.NoError(t, err)
	assert.Equal(t, "", c.Option.(option.Join).Separator)

	c, err = Scan("With.Join(x#Address.City#Address.Building)")
	require.NoError(t, err)
	assert.Equal(t, "", c.Option.(option.Join).Separator)
	assert.Len(t, c.Option.(option.Join).Options, 2)
}

func TestScanJoinErrors(t *testing.T) {
	e := scanErr(t, "With.Join(x# #With.Join)")
	assert.Equal(t, UnknownStringListFormat, e.Kind)
	assert.Equal(t, "With.Join", e.Input)

	e = scanErr(t, "With.Join(x# #Bogus.Foo)")
	assert.Equal(t, UnknownCategory, e.Kind)
	assert.Equal(t, "Bogus", e.Category)

	e = scanErr(t, "With.Join(x# #Address.Nope)")
	assert.Equal(t, UnknownOption, e.Kind)

	e = scanErr(t, "With.Join(x# #name)")
	assert.Equal(t, UnknownStringListFormat, e.Kind)

	e = scanErr(t, "With.Join(x# )")
	assert.Equal(t, UnknownStringListFormat, e.Kind)
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"Bogus.Foo(x)", UnknownCategory},
		{"fixed.String(x#a)", UnknownOptionFormat},
		{"Primitive.Int", UnknownOptionFormat},
		{"Primitive.Int()", UnknownOptionFormat},
		{"Primitive.Int(a(b)#1#2)", UnknownOptionFormat},
		{"Primitive.Number(x)", UnknownOption},
		{"Internet.Email(x#y)", UnknownCharacters},
		{"Primitive.Bool(x#true)", UnknownCharacters},
		{"Fixed.String(x)", UnknownStringFormat},
		{"Fixed.String(x#a#b)", UnknownStringFormat},
		{"DateTime.Date(d#%Q)", UnknownStringFormat},
		{"Name.FirstName(x#yes)", UnknownBooleanFormat},
		{"Address.ZipCode(x#true#false)", UnknownBooleanFormat},
		{"Select.String(x)", UnknownStringListFormat},
		{"Select.String(x#[])", UnknownStringListFormat},
		{"Select.String(x#[a#b)", UnknownStringListFormat},
		{"Primitive.Int(x#1)", UnknownIntegerListFormat},
		{"Primitive.Int(x#a#b)", UnknownIntegerListFormat},
		{"Lorem.Word(x#-1#3)", UnknownIntegerListFormat},
		{"Internet.Password(x)", UnknownIntegerListFormat},
		{"Primitive.Int(x#9#1)", RangeErr},
		{"Internet.Password(x#16#8)", RangeErr},
		{"Primitive.Ascii(a#0#18446744073709551615)", UnknownIntegerListFormat},
		{"Internet.Password(p#8#65537)", UnknownIntegerListFormat},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e := scanErr(t, tt.input)
			assert.Equal(t, tt.kind, e.Kind, e.Error())
		})
	}
}

func TestErrorMessages(t *testing.T) {
	e := scanErr(t, "Bogus.Foo(x)")
	assert.Equal(t, "Bogus", e.Category)
	assert.Contains(t, e.Error(), `unknown category "Bogus"`)
	assert.Contains(t, e.Error(), strings.Join(Categories(), ", "))

	e = scanErr(t, "Primitive.Number(x)")
	assert.Contains(t, e.Error(), "Primitive.Int(<column_name>[#<signed_integer_range>])")

	e = scanErr(t, "Primitive.Int(x#9#1)")
	assert.Equal(t, "9", e.Lower)
	assert.Equal(t, "1", e.Upper)
	var rangeErr *option.RangeError
	assert.True(t, errors.As(e, &rangeErr))
	assert.Contains(t, e.Error(), "lower bound 9 is greater than upper bound 1")

	e = scanErr(t, "Name.FirstName(x#yes)")
	assert.Contains(t, e.Error(), boolRule.String())

	e = scanErr(t, "DateTime.Date(d#%Q)")
	var formatErr *option.FormatError
	assert.True(t, errors.As(e, &formatErr))
}

func TestScanAllCollectsErrors(t *testing.T) {
	columns, err := ScanAll([]string{"Address.City(city)", "Bogus.Foo(x)", "Primitive.Int(n)", "Primitive.Int(x#5#1)"})
	require.Error(t, err)
	assert.Nil(t, columns)

	var errs Errors
	require.True(t, errors.As(err, &errs))
	require.Len(t, errs, 2)
	assert.Equal(t, 1, errs[0].Index)
	assert.Equal(t, UnknownCategory, errs[0].Kind)
	assert.Equal(t, 3, errs[1].Index)
	assert.Equal(t, RangeErr, errs[1].Kind)

	assert.True(t, strings.HasPrefix(err.Error(), "[1] "))
	assert.Contains(t, err.Error(), "\n[3] ")

	var single *Error
	assert.True(t, errors.As(err, &single))
}

func TestScanAllKeepsOrder(t *testing.T) {
	columns, err := ScanAll([]string{"Address.City(city)", "Name.FullName(name#true)", "Primitive.Int(n)"})
	require.NoError(t, err)
	require.Len(t, columns, 3)
	assert.Equal(t, []string{"city", "name", "n"}, []string{columns[0].Name, columns[1].Name, columns[2].Name})
	assert.Len(t, option.Fields(columns), 4)
}

func TestIntrospection(t *testing.T) {
	assert.Equal(t, "Fixed", Categories()[0])
	assert.Len(t, Categories(), len(option.Categories()))

	for _, cat := range option.Categories() {
		assert.NotEmpty(t, Productions(cat), cat.String())
		usable := Usable(cat)
		assert.Len(t, usable, len(Productions(cat)))
		for _, u := range usable {
			_, err := Scan(u)
			assert.NoError(t, err, u)
		}
	}

	assert.Contains(t, Productions(option.CategoryInternet), "Internet.Password(<column_name>#<unsigned_integer_range>)")
	assert.Contains(t, Productions(option.CategoryInternet), "Internet.Email(<column_name>)")
	assert.True(t, strings.HasPrefix(Grammar()[0], "<option> := "))
	assert.Len(t, Examples(), len(productions))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "range", RangeErr.String())
	assert.Equal(t, "unknown_category", UnknownCategory.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestLookupCoversEveryProduction(t *testing.T) {
	for _, p := range productions {
		got, ok := lookup(p.category, p.name)
		require.True(t, ok, "%s.%s", p.category, p.name)
		assert.Equal(t, p.name, got.name)
	}
}
