package option

// Category is the top-level grouping of generation options.
type Category int

const (
	CategoryFixed Category = iota
	CategorySelect
	CategoryLorem
	CategoryName
	CategoryPrimitive
	CategoryInternet
	CategoryCompany
	CategoryAddress
	CategoryDateTime
	CategoryFileSystem
	CategoryWith
)

var categoryNames = [...]string{
	CategoryFixed:      "Fixed",
	CategorySelect:     "Select",
	CategoryLorem:      "Lorem",
	CategoryName:       "Name",
	CategoryPrimitive:  "Primitive",
	CategoryInternet:   "Internet",
	CategoryCompany:    "Company",
	CategoryAddress:    "Address",
	CategoryDateTime:   "DateTime",
	CategoryFileSystem: "FileSystem",
	CategoryWith:       "With",
}

// String returns the token used for the category in option expressions.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Unknown"
	}
	return categoryNames[c]
}

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, len(categoryNames))
	for i := range categoryNames {
		out[i] = Category(i)
	}
	return out
}

// ParseCategory resolves an expression token such as "Primitive".
func ParseCategory(token string) (Category, bool) {
	for i, name := range categoryNames {
		if name == token {
			return Category(i), true
		}
	}
	return 0, false
}
