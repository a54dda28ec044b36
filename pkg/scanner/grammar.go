package scanner

import (
	"fmt"
	"strings"

	"github.com/ajitpratap0/fakes/pkg/option"
)

type arity int

const (
	noArg arity = iota
	optionalArg
	requiredArg
)

// argKind is the shape of the sub-option of a production.
type argKind int

const (
	argNone argKind = iota
	argString
	argStringList
	argUnsignedRange
	argSignedRange
	argBool
	argFormat
	argJoin
)

// Grammar variables.
const (
	optionVar        = "<option>"
	categoryVar      = "<category>"
	optionNameVar    = "<option_name>"
	columnNameVar    = "<column_name>"
	subOptionVar     = "<sub_option>"
	stringVar        = "<string>"
	stringListVar    = "<string_list>"
	unsignedRangeVar = "<unsigned_integer_range>"
	signedRangeVar   = "<signed_integer_range>"
	unsignedIntVar   = "<unsigned_integer>"
	boolVar          = "<bool>"
	formatVar        = "<format_string>"
	joinVar          = "<join>"
)

type rule struct {
	name, format string
}

func (r rule) String() string { return r.name + " := " + r.format }

var (
	optionRule        = rule{optionVar, "<category>.<option_name>(<column_name>[#<sub_option>])"}
	categoryRule      = rule{categoryVar, "[A-Z][0-9a-zA-Z]*"}
	optionNameRule    = rule{optionNameVar, "[A-Z][0-9a-zA-Z]*"}
	columnNameRule    = rule{columnNameVar, `"<text>" | <text without '#', '(' and ')'>`}
	subOptionRule     = rule{subOptionVar, "<string> | <string_list> | <unsigned_integer_range> | <signed_integer_range> | <bool> | <format_string> | <join>"}
	stringRule        = rule{stringVar, `"<text>" | <text without '#'>`}
	stringListRule    = rule{stringListVar, "[<string>(#<string>)*]"}
	unsignedRangeRule = rule{unsignedRangeVar, "<unsigned_integer>#<unsigned_integer>"}
	signedRangeRule   = rule{signedRangeVar, "[-]<unsigned_integer>#[-]<unsigned_integer>"}
	unsignedIntRule   = rule{unsignedIntVar, "[0-9]+"}
	boolRule          = rule{boolVar, "true | false"}
	formatRule        = rule{formatVar, "<string> with strftime directives such as %Y-%m-%d %H:%M:%S"}
	joinRule          = rule{joinVar, "<string>#<category>.<option_name>(#<category>.<option_name>)*"}
)

// rules returns the grammar rules describing the argument of k.
func (k argKind) rules() []rule {
	switch k {
	case argString:
		return []rule{stringRule}
	case argStringList:
		return []rule{stringListRule, stringRule}
	case argUnsignedRange:
		return []rule{unsignedRangeRule, unsignedIntRule}
	case argSignedRange:
		return []rule{signedRangeRule, unsignedIntRule}
	case argBool:
		return []rule{boolRule}
	case argFormat:
		return []rule{formatRule, stringRule}
	case argJoin:
		return []rule{joinRule, stringRule}
	default:
		return nil
	}
}

func (k argKind) variable() string {
	switch k {
	case argString:
		return stringVar
	case argStringList:
		return stringListVar
	case argUnsignedRange:
		return unsignedRangeVar
	case argSignedRange:
		return signedRangeVar
	case argBool:
		return boolVar
	case argFormat:
		return formatVar
	case argJoin:
		return joinVar
	default:
		return ""
	}
}

// formatKind is the error reported when an argument of k cannot be parsed.
func (k argKind) formatKind() Kind {
	switch k {
	case argStringList, argJoin:
		return UnknownStringListFormat
	case argUnsignedRange, argSignedRange:
		return UnknownIntegerListFormat
	case argBool:
		return UnknownBooleanFormat
	default:
		return UnknownStringFormat
	}
}

// production is one Category.Option pair of the language.
type production struct {
	category option.Category
	name     string
	arity    arity
	arg      argKind
	// example is a placeholder argument accepted by parse.
	example string
	parse   func(tokens []string) (option.Option, error)
}

// usage renders the production, e.g. Primitive.Int(<column_name>[#<signed_integer_range>]).
func (p production) usage() string {
	head := p.category.String() + "." + p.name
	switch p.arity {
	case requiredArg:
		return fmt.Sprintf("%s(%s#%s)", head, columnNameVar, p.arg.variable())
	case optionalArg:
		return fmt.Sprintf("%s(%s[#%s])", head, columnNameVar, p.arg.variable())
	default:
		return fmt.Sprintf("%s(%s)", head, columnNameVar)
	}
}

// exampleExpr renders an expression accepted by Scan, with column as the column name.
func (p production) exampleExpr(column string) string {
	if p.example == "" {
		return fmt.Sprintf("%s.%s(%s)", p.category, p.name, column)
	}
	return fmt.Sprintf("%s.%s(%s#%s)", p.category, p.name, column, p.example)
}

func noArgs(cat option.Category, name string, o option.Option) production {
	return production{
		category: cat,
		name:     name,
		arity:    noArg,
		parse:    func([]string) (option.Option, error) { return o, nil },
	}
}

func withArg(cat option.Category, name string, a arity, k argKind, example string, parse func([]string) (option.Option, error)) production {
	return production{category: cat, name: name, arity: a, arg: k, example: example, parse: parse}
}

// loremRange yields single when no range is given.
func loremRange(single option.Option, build func(lo, hi uint) (option.Option, error)) func([]string) (option.Option, error) {
	return func(tokens []string) (option.Option, error) {
		if len(tokens) == 0 {
			return single, nil
		}
		lo, hi, err := parseUnsignedRange(tokens)
		if err != nil {
			return nil, err
		}
		return build(lo, hi)
	}
}

func nameFlag(build func(furigana bool) option.Option) func([]string) (option.Option, error) {
	return func(tokens []string) (option.Option, error) {
		if len(tokens) == 0 {
			return build(false), nil
		}
		b, err := parseBool(tokens)
		if err != nil {
			return nil, err
		}
		return build(b), nil
	}
}

func hyphenFlag(build func(hyphen bool) option.Option) func([]string) (option.Option, error) {
	return nameFlag(build)
}

func dateFormat(build func(format string) (option.Option, error)) func([]string) (option.Option, error) {
	return func(tokens []string) (option.Option, error) {
		format := ""
		if len(tokens) > 0 {
			s, err := parseString(tokens)
			if err != nil {
				return nil, err
			}
			format = s
		}
		return build(format)
	}
}

func wrap[T option.Option](o T, err error) (option.Option, error) {
	if err != nil {
		return nil, err
	}
	return o, nil
}

var productions = []production{
	// Fixed
	withArg(option.CategoryFixed, "String", requiredArg, argString, "text", func(tokens []string) (option.Option, error) {
		s, err := parseString(tokens)
		if err != nil {
			return nil, err
		}
		return option.FixedString{Value: s}, nil
	}),
	withArg(option.CategoryFixed, "NotString", requiredArg, argString, "null", func(tokens []string) (option.Option, error) {
		s, err := parseString(tokens)
		if err != nil {
			return nil, err
		}
		return option.FixedNotString{Value: s}, nil
	}),

	// Select
	withArg(option.CategorySelect, "String", requiredArg, argStringList, "[red#green#blue]", func(tokens []string) (option.Option, error) {
		list, err := parseStringList(tokens)
		if err != nil {
			return nil, err
		}
		return option.SelectString{Choices: list}, nil
	}),
	withArg(option.CategorySelect, "NotString", requiredArg, argStringList, "[1#2#3]", func(tokens []string) (option.Option, error) {
		list, err := parseStringList(tokens)
		if err != nil {
			return nil, err
		}
		return option.SelectNotString{Choices: list}, nil
	}),

	// Lorem
	withArg(option.CategoryLorem, "Word", optionalArg, argUnsignedRange, "1#5",
		loremRange(option.Word{}, func(lo, hi uint) (option.Option, error) { return wrap(option.NewWords(lo, hi)) })),
	withArg(option.CategoryLorem, "Sentence", optionalArg, argUnsignedRange, "1#3",
		loremRange(option.Sentence{}, func(lo, hi uint) (option.Option, error) { return wrap(option.NewSentences(lo, hi)) })),
	withArg(option.CategoryLorem, "Paragraph", optionalArg, argUnsignedRange, "1#2",
		loremRange(option.Paragraph{}, func(lo, hi uint) (option.Option, error) { return wrap(option.NewParagraphs(lo, hi)) })),

	// Name
	withArg(option.CategoryName, "FirstName", optionalArg, argBool, "true",
		nameFlag(func(f bool) option.Option { return option.FirstName{Furigana: f} })),
	noArgs(option.CategoryName, "FirstNameFurigana", option.FirstNameFurigana{}),
	withArg(option.CategoryName, "LastName", optionalArg, argBool, "true",
		nameFlag(func(f bool) option.Option { return option.LastName{Furigana: f} })),
	noArgs(option.CategoryName, "LastNameFurigana", option.LastNameFurigana{}),
	withArg(option.CategoryName, "FullName", optionalArg, argBool, "true",
		nameFlag(func(f bool) option.Option { return option.FullName{Furigana: f} })),
	noArgs(option.CategoryName, "FullNameFurigana", option.FullNameFurigana{}),

	// Primitive
	withArg(option.CategoryPrimitive, "Int", optionalArg, argSignedRange, "-10#10", func(tokens []string) (option.Option, error) {
		if len(tokens) == 0 {
			return option.Integer{}, nil
		}
		lo, hi, err := parseSignedRange(tokens)
		if err != nil {
			return nil, err
		}
		return wrap(option.NewIntegerRange(lo, hi))
	}),
	withArg(option.CategoryPrimitive, "Float", optionalArg, argSignedRange, "-10#10", func(tokens []string) (option.Option, error) {
		if len(tokens) == 0 {
			return option.Float{}, nil
		}
		lo, hi, err := parseSignedRange(tokens)
		if err != nil {
			return nil, err
		}
		return wrap(option.NewFloatRange(lo, hi))
	}),
	withArg(option.CategoryPrimitive, "Ascii", optionalArg, argUnsignedRange, "8#15", func(tokens []string) (option.Option, error) {
		if len(tokens) == 0 {
			return wrap(option.NewASCII(8, 15))
		}
		lo, hi, err := parseUnsignedRange(tokens)
		if err != nil {
			return nil, err
		}
		return wrap(option.NewASCII(lo, hi))
	}),
	noArgs(option.CategoryPrimitive, "Bool", option.Boolean{}),

	// Internet
	noArgs(option.CategoryInternet, "Email", option.Email{}),
	noArgs(option.CategoryInternet, "UserName", option.UserName{}),
	withArg(option.CategoryInternet, "Password", requiredArg, argUnsignedRange, "8#16", func(tokens []string) (option.Option, error) {
		lo, hi, err := parseUnsignedRange(tokens)
		if err != nil {
			return nil, err
		}
		return wrap(option.NewPassword(lo, hi))
	}),
	noArgs(option.CategoryInternet, "CreditCard", option.CreditCard{}),
	noArgs(option.CategoryInternet, "URL", option.URL{}),
	noArgs(option.CategoryInternet, "IPv4", option.IPv4{}),
	noArgs(option.CategoryInternet, "IPv6", option.IPv6{}),
	noArgs(option.CategoryInternet, "RGB", option.RGB{}),
	noArgs(option.CategoryInternet, "RGBA", option.RGBA{}),
	noArgs(option.CategoryInternet, "UserAgent", option.UserAgent{}),
	noArgs(option.CategoryInternet, "StatusCode", option.StatusCode{}),
	noArgs(option.CategoryInternet, "UUID", option.UUID{}),

	// Company
	noArgs(option.CategoryCompany, "Suffix", option.CompanySuffix{}),
	noArgs(option.CategoryCompany, "Name", option.CompanyName{}),
	noArgs(option.CategoryCompany, "Industry", option.Industry{}),

	// Address
	noArgs(option.CategoryAddress, "Building", option.Building{}),
	noArgs(option.CategoryAddress, "Street", option.StreetName{}),
	noArgs(option.CategoryAddress, "City", option.CityName{}),
	noArgs(option.CategoryAddress, "State", option.StateName{}),
	noArgs(option.CategoryAddress, "CountryCode", option.CountryCode{}),
	noArgs(option.CategoryAddress, "CountryName", option.CountryName{}),
	noArgs(option.CategoryAddress, "TimeZone", option.TimeZone{}),
	noArgs(option.CategoryAddress, "Address", option.Address{}),
	withArg(option.CategoryAddress, "ZipCode", optionalArg, argBool, "true",
		hyphenFlag(func(h bool) option.Option { return option.ZipCode{Hyphen: h} })),
	withArg(option.CategoryAddress, "Phone", optionalArg, argBool, "true",
		hyphenFlag(func(h bool) option.Option { return option.DomesticPhoneNumber{Hyphen: h} })),
	noArgs(option.CategoryAddress, "Latitude", option.Latitude{}),
	noArgs(option.CategoryAddress, "Longitude", option.Longitude{}),

	// DateTime
	withArg(option.CategoryDateTime, "Time", optionalArg, argFormat, "%H:%M",
		dateFormat(func(f string) (option.Option, error) { return wrap(option.NewTime(f)) })),
	withArg(option.CategoryDateTime, "Date", optionalArg, argFormat, "%Y/%m/%d",
		dateFormat(func(f string) (option.Option, error) { return wrap(option.NewDate(f)) })),
	withArg(option.CategoryDateTime, "DateTime", optionalArg, argFormat, `"%Y-%m-%d %H:%M:%S"`,
		dateFormat(func(f string) (option.Option, error) { return wrap(option.NewDateTime(f)) })),

	// FileSystem
	noArgs(option.CategoryFileSystem, "FileName", option.FileName{}),
	noArgs(option.CategoryFileSystem, "Extension", option.Extension{}),

	// With
	withArg(option.CategoryWith, "Join", requiredArg, argJoin, `" "#Name.LastName#Name.FirstName`, parseJoin),
}

// index is filled in init since productions reach it through parseJoin.
var index map[option.Category]map[string]production

func init() {
	index = buildIndex()
}

func buildIndex() map[option.Category]map[string]production {
	m := make(map[option.Category]map[string]production)
	for _, p := range productions {
		if m[p.category] == nil {
			m[p.category] = make(map[string]production)
		}
		m[p.category][p.name] = p
	}
	return m
}

func lookup(cat option.Category, name string) (production, bool) {
	p, ok := index[cat][name]
	return p, ok
}

// Categories returns the category tokens of the language.
func Categories() []string {
	cats := option.Categories()
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.String()
	}
	return out
}

// Grammar returns the BNF-style rules of the option language.
func Grammar() []string {
	rules := []rule{
		optionRule, categoryRule, optionNameRule, columnNameRule, subOptionRule,
		stringRule, stringListRule, unsignedRangeRule, signedRangeRule, unsignedIntRule,
		boolRule, formatRule, joinRule,
	}
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.String()
	}
	return out
}

// Productions returns the usage form of every option of cat.
func Productions(cat option.Category) []string {
	var out []string
	for _, p := range productions {
		if p.category == cat {
			out = append(out, p.usage())
		}
	}
	return out
}

// Usable returns one example expression per option of cat.
func Usable(cat option.Category) []string {
	var out []string
	for _, p := range productions {
		if p.category == cat {
			out = append(out, p.exampleExpr(strings.ToLower(p.name)))
		}
	}
	return out
}

// Examples returns an accepted expression for every option of the language.
func Examples() []string {
	out := make([]string, 0, len(productions))
	for _, p := range productions {
		out = append(out, p.exampleExpr("column"))
	}
	return out
}
