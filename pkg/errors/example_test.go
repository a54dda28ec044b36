// Package errors provides examples of structured error handling in fakes.
package errors_test

import (
	"fmt"
	"os"

	"github.com/ajitpratap0/fakes/pkg/errors"
)

// Example demonstrates basic error creation.
func Example() {
	err := errors.New(errors.ErrorTypeLocale, "locale not registered").
		WithDetail("locale", "fra")

	fmt.Println(err.Error())

	// Output:
	// locale: locale not registered
}

// ExampleWrap shows how to wrap existing errors with context.
func ExampleWrap() {
	_, openErr := os.Open("/nonexistent/fakes.yaml")

	err := errors.Wrap(openErr, errors.ErrorTypeConfig, "failed to read config").
		WithDetail("path", "/nonexistent/fakes.yaml")

	if errors.IsType(err, errors.ErrorTypeConfig) {
		fmt.Println("This is a config error")
	}
	if os.IsNotExist(err.Cause) {
		fmt.Println("Original error was not-exist")
	}

	// Output:
	// This is a config error
	// Original error was not-exist
}

// Example_errorChain shows how context accumulates across layers.
func Example_errorChain() {
	err := errors.Wrap(renderOutput(), errors.ErrorTypeInternal, "generation run failed")

	fmt.Println("Full error chain:", err)

	// Output:
	// Full error chain: internal: generation run failed: output: unknown converter "xml"
}

func renderOutput() error {
	return errors.Newf(errors.ErrorTypeOutput, "unknown converter %q", "xml").
		WithDetail("converter", "xml")
}

// ExampleIsType demonstrates checking error types.
func ExampleIsType() {
	valErr := errors.New(errors.ErrorTypeValidation, "invalid option")
	wrapped := errors.Wrap(valErr, errors.ErrorTypeConfig, "bad columns")

	fmt.Printf("Is validation error: %v\n", errors.IsType(valErr, errors.ErrorTypeValidation))
	fmt.Printf("Wrapped error is config type: %v\n", errors.IsType(wrapped, errors.ErrorTypeConfig))
	fmt.Printf("Wrapped error type: %s\n", errors.GetType(wrapped))
	fmt.Printf("Plain error type: %s\n", errors.GetType(fmt.Errorf("boom")))

	// Output:
	// Is validation error: true
	// Wrapped error is config type: true
	// Wrapped error type: config
	// Plain error type: internal
}

// Example_customErrorHandling shows how to read structured details.
func Example_customErrorHandling() {
	err := errors.New(errors.ErrorTypeValidation, "record count must be at least 1").
		WithDetail("count", 0)

	if fakesErr, ok := interface{}(err).(*errors.Error); ok {
		fmt.Printf("Error Type: %s\n", fakesErr.Type)
		fmt.Printf("Message: %s\n", fakesErr.Message)
		fmt.Printf("  count: %v\n", fakesErr.Details["count"])
	}

	// Output:
	// Error Type: validation
	// Message: record count must be at least 1
	//   count: 0
}
