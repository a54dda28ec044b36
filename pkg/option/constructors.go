package option

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/lestrrat-go/strftime"
)

// Default strftime patterns for the DateTime category.
const (
	DefaultTimeFormat     = "%H:%M:%S"
	DefaultDateFormat     = "%Y-%m-%d"
	DefaultDateTimeFormat = "%Y-%m-%d %H:%M:%S"
)

var (
	// ErrEmptyJoin is returned by NewJoin without member options.
	ErrEmptyJoin = errors.New("join needs at least one option")
	// ErrNestedJoin is returned by NewJoin when a member is itself a Join.
	ErrNestedJoin = errors.New("join cannot contain another join")
)

// MaxLength bounds the length of generated ASCII strings and passwords.
const MaxLength = 1 << 16

// LengthError reports a string length above MaxLength.
type LengthError struct {
	Length uint
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("length %d exceeds the maximum of %d", e.Length, MaxLength)
}

// RangeError reports a range whose lower bound exceeds its upper bound.
type RangeError struct {
	Lower string
	Upper string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("lower bound %s is greater than upper bound %s", e.Lower, e.Upper)
}

// FormatError reports a strftime pattern that cannot be compiled.
type FormatError struct {
	Format string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid date format %q: %v", e.Format, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func checkRange[T cmp.Ordered](lower, upper T) error {
	if lower > upper {
		return &RangeError{Lower: fmt.Sprint(lower), Upper: fmt.Sprint(upper)}
	}
	return nil
}

func checkLength(lower, upper uint) error {
	if err := checkRange(lower, upper); err != nil {
		return err
	}
	if upper > MaxLength {
		return &LengthError{Length: upper}
	}
	return nil
}

func checkFormat(format string) error {
	if _, err := strftime.New(format); err != nil {
		return &FormatError{Format: format, Err: err}
	}
	return nil
}

func NewIntegerRange(lower, upper int64) (IntegerRange, error) {
	if err := checkRange(lower, upper); err != nil {
		return IntegerRange{}, err
	}
	return IntegerRange{Min: lower, Max: upper}, nil
}

func NewFloatRange(lower, upper int64) (FloatRange, error) {
	if err := checkRange(lower, upper); err != nil {
		return FloatRange{}, err
	}
	return FloatRange{Min: lower, Max: upper}, nil
}

func NewWords(lower, upper uint) (Words, error) {
	if err := checkRange(lower, upper); err != nil {
		return Words{}, err
	}
	return Words{Min: lower, Max: upper}, nil
}

func NewSentences(lower, upper uint) (Sentences, error) {
	if err := checkRange(lower, upper); err != nil {
		return Sentences{}, err
	}
	return Sentences{Min: lower, Max: upper}, nil
}

func NewParagraphs(lower, upper uint) (Paragraphs, error) {
	if err := checkRange(lower, upper); err != nil {
		return Paragraphs{}, err
	}
	return Paragraphs{Min: lower, Max: upper}, nil
}

func NewASCII(lower, upper uint) (ASCII, error) {
	if err := checkLength(lower, upper); err != nil {
		return ASCII{}, err
	}
	return ASCII{Min: lower, Max: upper}, nil
}

func NewPassword(lower, upper uint) (Password, error) {
	if err := checkLength(lower, upper); err != nil {
		return Password{}, err
	}
	return Password{Min: lower, Max: upper}, nil
}

// NewTime validates format, using DefaultTimeFormat when it is empty.
func NewTime(format string) (Time, error) {
	format = cmp.Or(format, DefaultTimeFormat)
	if err := checkFormat(format); err != nil {
		return Time{}, err
	}
	return Time{Format: format}, nil
}

// NewDate validates format, using DefaultDateFormat when it is empty.
func NewDate(format string) (Date, error) {
	format = cmp.Or(format, DefaultDateFormat)
	if err := checkFormat(format); err != nil {
		return Date{}, err
	}
	return Date{Format: format}, nil
}

// NewDateTime validates format, using DefaultDateTimeFormat when it is empty.
func NewDateTime(format string) (DateTime, error) {
	format = cmp.Or(format, DefaultDateTimeFormat)
	if err := checkFormat(format); err != nil {
		return DateTime{}, err
	}
	return DateTime{Format: format}, nil
}

// NewJoin builds a Join of one or more non-Join options.
func NewJoin(separator string, options ...Option) (Join, error) {
	if len(options) == 0 {
		return Join{}, ErrEmptyJoin
	}
	for _, o := range options {
		if _, ok := o.(Join); ok {
			return Join{}, ErrNestedJoin
		}
	}
	return Join{Separator: separator, Options: options}, nil
}
