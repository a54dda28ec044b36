// Package scanner reads column expressions such as
//
//	Primitive.Int(age#1#99)
//	DateTime.Date(birthday#"%Y/%m/%d")
//	With.Join(name#" "#Name.LastName#Name.FirstName)
//
// into typed option.Column values. An expression names a category, an option
// of that category and the column, followed by the option's argument
// tokens separated by '#'.
package scanner

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/ajitpratap0/fakes/pkg/option"
)

var (
	optionPattern = regexp.MustCompile(`^(?P<category>[A-Z][[:alnum:]]*?)\.(?P<option>[A-Z][[:alnum:]]*?)\((?P<column>.+?)(?:#(?P<sub>.*?))?\)$`)
	memberPattern = regexp.MustCompile(`^([A-Z][[:alnum:]]*)\.([A-Z][[:alnum:]]*)$`)

	errFormat = errors.New("malformed argument")
)

// Scan reads one expression. Failures are returned as *Error.
func Scan(input string) (option.Column, error) {
	c, err := scan(input)
	if err != nil {
		return option.Column{}, err
	}
	return c, nil
}

// ScanAll reads every expression, in order. It does not stop at the first
// failure; all of them are returned together as Errors.
func ScanAll(inputs []string) ([]option.Column, error) {
	columns := make([]option.Column, 0, len(inputs))
	var errs Errors
	for i, in := range inputs {
		c, err := scan(in)
		if err != nil {
			err.Index = i
			errs = append(errs, err)
			continue
		}
		columns = append(columns, c)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return columns, nil
}

func scan(input string) (option.Column, *Error) {
	expr := strings.TrimSpace(input)
	m := optionPattern.FindStringSubmatch(expr)
	if m == nil {
		return option.Column{}, &Error{Kind: UnknownOptionFormat, Input: input}
	}
	catToken := m[optionPattern.SubexpIndex("category")]
	optToken := m[optionPattern.SubexpIndex("option")]
	column := m[optionPattern.SubexpIndex("column")]
	sub := m[optionPattern.SubexpIndex("sub")]

	if strings.ContainsAny(column, "()") {
		return option.Column{}, &Error{Kind: UnknownOptionFormat, Input: input}
	}
	column = unquote(strings.TrimSpace(column))
	if column == "" {
		return option.Column{}, &Error{Kind: UnknownOptionFormat, Input: input}
	}

	o, err := resolve(input, catToken, optToken, splitTokens(sub))
	if err != nil {
		return option.Column{}, err
	}
	return option.Column{Name: column, Option: o}, nil
}

// resolve finds the production of cat.name and parses its tokens.
func resolve(input, cat, name string, tokens []string) (option.Option, *Error) {
	category, ok := option.ParseCategory(cat)
	if !ok {
		return nil, &Error{Kind: UnknownCategory, Input: input, Category: cat, Option: name}
	}
	p, ok := lookup(category, name)
	if !ok {
		return nil, &Error{Kind: UnknownOption, Input: input, Category: cat, Option: name}
	}

	fail := func(kind Kind, err error) *Error {
		return &Error{Kind: kind, Input: input, Category: cat, Option: name, Tokens: tokens, Err: err}
	}
	switch {
	case p.arity == noArg && len(tokens) > 0:
		return nil, fail(UnknownCharacters, nil)
	case p.arity == requiredArg && len(tokens) == 0:
		return nil, fail(p.arg.formatKind(), errFormat)
	}

	o, err := p.parse(tokens)
	if err == nil {
		return o, nil
	}

	var (
		scanErr   *Error
		rangeErr  *option.RangeError
		formatErr *option.FormatError
	)
	switch {
	case errors.As(err, &scanErr):
		return nil, scanErr
	case errors.As(err, &rangeErr):
		e := fail(RangeErr, err)
		e.Lower, e.Upper = rangeErr.Lower, rangeErr.Upper
		return nil, e
	case errors.As(err, &formatErr):
		return nil, fail(UnknownStringFormat, err)
	default:
		return nil, fail(p.arg.formatKind(), err)
	}
}

// splitTokens splits a sub-option on '#', dropping empty tokens.
func splitTokens(sub string) []string {
	if sub == "" {
		return nil
	}
	parts := strings.Split(sub, "#")
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

func quoted(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

func unquote(s string) string {
	if quoted(s) {
		return s[1 : len(s)-1]
	}
	return s
}

// parseString reads one string. A quoted string may span tokens, so it can
// hold '#'.
func parseString(tokens []string) (string, error) {
	switch {
	case len(tokens) == 1:
		return unquote(tokens[0]), nil
	case len(tokens) > 1:
		if joined := strings.Join(tokens, "#"); quoted(joined) {
			return unquote(joined), nil
		}
	}
	return "", errFormat
}

// parseStringList reads [a#b#c]; the brackets may be left out.
func parseStringList(tokens []string) ([]string, error) {
	joined := strings.TrimSpace(strings.Join(tokens, "#"))
	open, closed := strings.HasPrefix(joined, "["), strings.HasSuffix(joined, "]")
	if open != closed {
		return nil, errFormat
	}
	if open {
		joined = joined[1 : len(joined)-1]
	}

	var list []string
	for _, s := range splitTokens(joined) {
		list = append(list, unquote(s))
	}
	if len(list) == 0 {
		return nil, errFormat
	}
	return list, nil
}

func parseUnsignedRange(tokens []string) (uint, uint, error) {
	if len(tokens) != 2 {
		return 0, 0, errFormat
	}
	lo, err := strconv.ParseUint(strings.TrimSpace(tokens[0]), 10, strconv.IntSize)
	if err != nil {
		return 0, 0, err
	}
	hi, err := strconv.ParseUint(strings.TrimSpace(tokens[1]), 10, strconv.IntSize)
	if err != nil {
		return 0, 0, err
	}
	return uint(lo), uint(hi), nil
}

func parseSignedRange(tokens []string) (int64, int64, error) {
	if len(tokens) != 2 {
		return 0, 0, errFormat
	}
	lo, err := strconv.ParseInt(strings.TrimSpace(tokens[0]), 10, 64)
	if err != nil {
		return 0, 0, err
	}
	hi, err := strconv.ParseInt(strings.TrimSpace(tokens[1]), 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

func parseBool(tokens []string) (bool, error) {
	if len(tokens) != 1 {
		return false, errFormat
	}
	switch strings.TrimSpace(tokens[0]) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, errFormat
	}
}

// parseJoin reads <separator>#Cat.Opt#Cat.Opt... Members take no argument.
// When the first token is already a member the separator is empty.
func parseJoin(tokens []string) (option.Option, error) {
	if len(tokens) == 0 {
		return nil, errFormat
	}
	sep, members := tokens[0], tokens[1:]
	if memberPattern.MatchString(strings.TrimSpace(sep)) {
		sep, members = "", tokens
	}
	if len(members) == 0 {
		return nil, errFormat
	}

	opts := make([]option.Option, 0, len(members))
	for _, tok := range members {
		member := strings.TrimSpace(tok)
		m := memberPattern.FindStringSubmatch(member)
		if m == nil {
			return nil, errFormat
		}
		o, err := resolve(member, m[1], m[2], nil)
		if err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}

	j, err := option.NewJoin(unquote(sep), opts...)
	if err != nil {
		return nil, err
	}
	return j, nil
}
