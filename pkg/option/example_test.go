package option_test

import (
	"fmt"

	"github.com/ajitpratap0/fakes/pkg/option"
)

func ExampleIsString() {
	for _, o := range []option.Option{option.Integer{}, option.Email{}, option.FixedNotString{Value: "null"}} {
		fmt.Printf("%s %T quoted=%v\n", o.Category(), o, option.IsString(o))
	}

	// Output:
	// Primitive option.Integer quoted=false
	// Internet option.Email quoted=true
	// Fixed option.FixedNotString quoted=false
}

func ExampleNewIntegerRange() {
	if _, err := option.NewIntegerRange(99, 1); err != nil {
		fmt.Println(err)
	}

	// Output:
	// lower bound 99 is greater than upper bound 1
}
