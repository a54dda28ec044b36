package config_test

import (
	"fmt"
	"log"

	"github.com/ajitpratap0/fakes/pkg/config"
)

// ExampleNewDefault demonstrates the values used when nothing is configured.
func ExampleNewDefault() {
	cfg := config.NewDefault()

	fmt.Printf("Locale: %s\n", cfg.Locale)
	fmt.Printf("Count: %d\n", cfg.Count)
	fmt.Printf("Converter: %s\n", cfg.Converter)
	fmt.Printf("Compression: %s/%s\n", cfg.Compression.Algorithm, cfg.Compression.Level)

	// Output:
	// Locale: jpn
	// Count: 1
	// Converter: csv
	// Compression: none/default
}

// ExampleConfig_Validate shows how to validate a configuration
// before using it.
func ExampleConfig_Validate() {
	cfg := config.NewDefault()
	cfg.Count = 1000
	cfg.Converter = "json"
	cfg.Compression.Algorithm = "zstd"

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	fmt.Println("Configuration is valid!")

	cfg.Count = 0
	fmt.Println(cfg.Validate())

	// Output:
	// Configuration is valid!
	// config: count must be at least 1, got 0
}
