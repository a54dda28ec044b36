package scanner

import (
	"fmt"
	"strings"

	"github.com/ajitpratap0/fakes/pkg/option"
)

// Kind classifies a scan failure.
type Kind int

const (
	UnknownCategory Kind = iota
	UnknownOptionFormat
	UnknownOption
	UnknownCharacters
	UnknownStringFormat
	UnknownBooleanFormat
	UnknownStringListFormat
	UnknownIntegerListFormat
	RangeErr
)

var kindNames = [...]string{
	UnknownCategory:          "unknown_category",
	UnknownOptionFormat:      "unknown_option_format",
	UnknownOption:            "unknown_option",
	UnknownCharacters:        "unknown_characters",
	UnknownStringFormat:      "unknown_string_format",
	UnknownBooleanFormat:     "unknown_boolean_format",
	UnknownStringListFormat:  "unknown_string_list_format",
	UnknownIntegerListFormat: "unknown_integer_list_format",
	RangeErr:                 "range",
}

// String returns the snake_case name used as a metrics label.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// rules lists the grammar rules a user should follow to fix an error of kind k.
func (k Kind) rules() []rule {
	switch k {
	case UnknownOptionFormat:
		return []rule{optionRule, categoryRule, optionNameRule, columnNameRule}
	case UnknownStringFormat:
		return argString.rules()
	case UnknownBooleanFormat:
		return argBool.rules()
	case UnknownStringListFormat:
		return argStringList.rules()
	case UnknownIntegerListFormat:
		return []rule{unsignedRangeRule, signedRangeRule, unsignedIntRule}
	default:
		return nil
	}
}

// Error describes why one expression could not be scanned.
type Error struct {
	Kind Kind
	// Input is the expression, or the offending member of a join.
	Input    string
	Category string
	Option   string
	// Tokens are the sub-option tokens that could not be read.
	Tokens []string
	// Lower and Upper are set for RangeErr.
	Lower string
	Upper string
	Err   error
	// Index is the position of Input within ScanAll's arguments.
	Index int
}

func (e *Error) Error() string {
	var b strings.Builder
	switch e.Kind {
	case UnknownCategory:
		fmt.Fprintf(&b, "unknown category %q in %q\nusable categories: %s",
			e.Category, e.Input, strings.Join(Categories(), ", "))
	case UnknownOptionFormat:
		fmt.Fprintf(&b, "cannot read %q as an option", e.Input)
	case UnknownOption:
		cat, _ := option.ParseCategory(e.Category)
		fmt.Fprintf(&b, "unknown option %q of category %s\nusable options:\n  %s",
			e.Option, e.Category, strings.Join(Productions(cat), "\n  "))
	case UnknownCharacters:
		fmt.Fprintf(&b, "%s.%s takes no argument, got %q", e.Category, e.Option, strings.Join(e.Tokens, "#"))
	case RangeErr:
		fmt.Fprintf(&b, "%s.%s: lower bound %s is greater than upper bound %s", e.Category, e.Option, e.Lower, e.Upper)
	default:
		fmt.Fprintf(&b, "%s.%s: cannot read argument %q", e.Category, e.Option, strings.Join(e.Tokens, "#"))
		if e.Err != nil && e.Err != errFormat {
			fmt.Fprintf(&b, ": %v", e.Err)
		}
	}
	if rules := e.Kind.rules(); len(rules) > 0 {
		b.WriteString("\nexpected:")
		for _, r := range rules {
			b.WriteString("\n  ")
			b.WriteString(r.String())
		}
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Errors collects the failures of ScanAll in argument order.
type Errors []*Error

func (es Errors) Error() string {
	lines := make([]string, 0, len(es))
	for _, e := range es {
		lines = append(lines, fmt.Sprintf("[%d] %s", e.Index, strings.ReplaceAll(e.Error(), "\n", "\n    ")))
	}
	return strings.Join(lines, "\n")
}

func (es Errors) Unwrap() []error {
	out := make([]error, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}
