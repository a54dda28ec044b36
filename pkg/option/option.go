// Package option defines the closed set of typed generation requests.
//
// An Option is a sealed sum type: every variant is a struct declared in this
// package and the marker method is unexported, so no other package can add
// variants. The category of a variant is derived from its type and is never
// stored alongside it.
//
// Variants that carry a range or a date format have checked constructors
// (NewIntegerRange, NewWords, NewDate, ...). The scanner always builds options
// through them, which is the single place where lower <= upper and pattern
// validity are enforced. Building a variant with a struct literal skips those
// checks, and generation panics on invalid input.
package option

// Option is one parameterised generation request.
type Option interface {
	Category() Category
	isOption()
}

type fixed struct{}

func (fixed) Category() Category { return CategoryFixed }
func (fixed) isOption()          {}

type selection struct{}

func (selection) Category() Category { return CategorySelect }
func (selection) isOption()          {}

type lorem struct{}

func (lorem) Category() Category { return CategoryLorem }
func (lorem) isOption()          {}

type name struct{}

func (name) Category() Category { return CategoryName }
func (name) isOption()          {}

type primitive struct{}

func (primitive) Category() Category { return CategoryPrimitive }
func (primitive) isOption()          {}

type internet struct{}

func (internet) Category() Category { return CategoryInternet }
func (internet) isOption()          {}

type company struct{}

func (company) Category() Category { return CategoryCompany }
func (company) isOption()          {}

type address struct{}

func (address) Category() Category { return CategoryAddress }
func (address) isOption()          {}

type dateTime struct{}

func (dateTime) Category() Category { return CategoryDateTime }
func (dateTime) isOption()          {}

type fileSystem struct{}

func (fileSystem) Category() Category { return CategoryFileSystem }
func (fileSystem) isOption()          {}

type with struct{}

func (with) Category() Category { return CategoryWith }
func (with) isOption()          {}

// Fixed

// FixedString always yields Value, quoted on output.
type FixedString struct {
	fixed
	Value string
}

// FixedNotString always yields Value, written literally on output.
type FixedNotString struct {
	fixed
	Value string
}

// Select

// SelectString picks one of Choices, quoted on output.
type SelectString struct {
	selection
	Choices []string
}

// SelectNotString picks one of Choices, written literally on output.
type SelectNotString struct {
	selection
	Choices []string
}

// Lorem

type Word struct{ lorem }

// Words joins between Min and Max distinct words with a space.
type Words struct {
	lorem
	Min, Max uint
}

type Sentence struct{ lorem }

// Sentences joins between Min and Max distinct sentences with a space.
type Sentences struct {
	lorem
	Min, Max uint
}

type Paragraph struct{ lorem }

// Paragraphs joins between Min and Max distinct paragraphs with a newline.
type Paragraphs struct {
	lorem
	Min, Max uint
}

// Name

// FirstName yields a first name, followed by its furigana when Furigana is set.
type FirstName struct {
	name
	Furigana bool
}

type FirstNameFurigana struct{ name }

// LastName yields a last name, followed by its furigana when Furigana is set.
type LastName struct {
	name
	Furigana bool
}

type LastNameFurigana struct{ name }

// FullName yields last and first name composed in locale order, followed by
// the composed furigana when Furigana is set.
type FullName struct {
	name
	Furigana bool
}

type FullNameFurigana struct{ name }

// Primitive

// Integer is any int16.
type Integer struct{ primitive }

// IntegerRange is an integer in the inclusive range [Min, Max].
type IntegerRange struct {
	primitive
	Min, Max int64
}

// Float is an int16 plus a fraction, with two decimals.
type Float struct{ primitive }

// FloatRange is a float in [Min, Max), with two decimals.
type FloatRange struct {
	primitive
	Min, Max int64
}

// ASCII is a string of printable ASCII characters with a length in [Min, Max].
type ASCII struct {
	primitive
	Min, Max uint
}

type Boolean struct{ primitive }

// Internet

type Email struct{ internet }

type UserName struct{ internet }

// Password is a string of letters, digits and symbols with a length in [Min, Max].
type Password struct {
	internet
	Min, Max uint
}

type CreditCard struct{ internet }

type URL struct{ internet }

type IPv4 struct{ internet }

type IPv6 struct{ internet }

type RGB struct{ internet }

type RGBA struct{ internet }

type UserAgent struct{ internet }

type StatusCode struct{ internet }

// UUID is a random version 4 UUID drawn from the generation stream.
type UUID struct{ internet }

// Company

type CompanySuffix struct{ company }

type CompanyName struct{ company }

type Industry struct{ company }

// Address

type Building struct{ address }

type StreetName struct{ address }

type CityName struct{ address }

type StateName struct{ address }

type CountryCode struct{ address }

type CountryName struct{ address }

type TimeZone struct{ address }

// Address is street, city and state composed in locale order.
type Address struct{ address }

// ZipCode is a locale postal code, hyphenated when Hyphen is set.
type ZipCode struct {
	address
	Hyphen bool
}

// DomesticPhoneNumber is a locale phone number, hyphenated when Hyphen is set.
type DomesticPhoneNumber struct {
	address
	Hyphen bool
}

type Latitude struct{ address }

type Longitude struct{ address }

// DateTime

// Time is a random time of day rendered with a strftime pattern.
type Time struct {
	dateTime
	Format string
}

// Date is a random date within the last hundred years rendered with a strftime pattern.
type Date struct {
	dateTime
	Format string
}

// DateTime is a random date and time rendered with a strftime pattern.
type DateTime struct {
	dateTime
	Format string
}

// FileSystem

type FileName struct{ fileSystem }

type Extension struct{ fileSystem }

// With

// Join generates every member in order and joins the values with Separator.
type Join struct {
	with
	Separator string
	Options   []Option
}
