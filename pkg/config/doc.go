// Package config holds the settings of a generation run.
//
// # Sources
//
// Values are resolved in this order, later sources winning:
//
//  1. NewDefault
//  2. an optional YAML file passed to Load
//  3. FAKES_* environment variables (FAKES_LOCALE, FAKES_COMPRESSION_ALGORITHM, ...)
//  4. command line flags, applied by the caller
//
// ## Environment Variable Substitution
//
// ${VAR_NAME} inside the YAML file is replaced before parsing:
//
//	# fakes.yaml
//	locale: jpn
//	count: 100
//	seed: ${FAKES_SEED}
//	columns:
//	  - Name.FullName(name#true)
//	  - Primitive.Int(age#18#65)
//
// # Configuration Structure
//
//	type Config struct {
//		Locale    string
//		Count     int
//		Seed      uint64
//		Converter string
//		Header    bool
//		Output    string
//		Columns   []string
//
//		Compression   CompressionConfig
//		Logging       LoggingConfig
//		Observability ObservabilityConfig
//	}
//
// Validate checks every enumerated value, so a bad file fails before any
// record is generated.
package config
