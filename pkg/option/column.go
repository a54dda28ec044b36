package option

// Column pairs an output column name with the option generating its values.
type Column struct {
	Name   string
	Option Option
}

// Field describes one output value position of a record.
type Field struct {
	Name   string
	Quoted bool
}

// FuriganaSuffix is appended to a column name for its furigana value.
const FuriganaSuffix = "_furigana"

// IsString reports whether values of opt are quoted by converters.
// Numbers, booleans and the NotString variants are written literally.
func IsString(opt Option) bool {
	switch opt.(type) {
	case Boolean, Integer, IntegerRange, Float, FloatRange, FixedNotString, SelectNotString:
		return false
	default:
		return true
	}
}

// IsPersonName reports whether opt reads the synthesized person of a record.
// A Join is a person name when any of its members is.
func IsPersonName(opt Option) bool {
	switch o := opt.(type) {
	case FirstName, FirstNameFurigana, LastName, LastNameFurigana, FullName, FullNameFurigana:
		return true
	case Join:
		for _, m := range o.Options {
			if IsPersonName(m) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Width is the number of record values opt produces: 2 for names paired with
// their furigana, 1 otherwise.
func Width(opt Option) int {
	switch o := opt.(type) {
	case FirstName:
		if o.Furigana {
			return 2
		}
	case LastName:
		if o.Furigana {
			return 2
		}
	case FullName:
		if o.Furigana {
			return 2
		}
	}
	return 1
}

// Fields expands columns into the output header, one Field per record value.
func Fields(columns []Column) []Field {
	fields := make([]Field, 0, len(columns))
	for _, c := range columns {
		quoted := IsString(c.Option)
		fields = append(fields, Field{Name: c.Name, Quoted: quoted})
		if Width(c.Option) == 2 {
			fields = append(fields, Field{Name: c.Name + FuriganaSuffix, Quoted: quoted})
		}
	}
	return fields
}
