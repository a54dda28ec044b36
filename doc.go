// Package fakes generates fake records from a small option language.
//
// A column is described by an expression such as
//
//	Primitive.Int(age#1#99)
//	Name.FullName(name#true)
//	With.Join(full#" "#Name.LastName#Name.FirstName)
//
// The scanner turns each expression into a typed option, a seeded faker
// draws the values from a locale dataset and a converter writes them as
// CSV, TSV or JSON. The same seed, clock reading and expressions always
// produce the same bytes.
//
// # Quick Start
//
// Generate three records on the command line:
//
//	fakes gen -s 3 -H "Name.FullName(name#true)" "Primitive.Int(age#20#60)"
//
// Or from Go:
//
//	import (
//	    "github.com/ajitpratap0/fakes/pkg/faker"
//	    "github.com/ajitpratap0/fakes/pkg/locale"
//	    _ "github.com/ajitpratap0/fakes/pkg/locale/japan"
//	    "github.com/ajitpratap0/fakes/pkg/scanner"
//	)
//
//	columns, err := scanner.ScanAll([]string{"Name.FullName(name)", "Address.City(city)"})
//	if err != nil {
//	    return err // every malformed expression is reported
//	}
//	ds, _ := locale.Get("jpn")
//	records := faker.NewSeeded(42, ds).GenDataSet(10, columns)
//
// # Key Packages
//
//	pkg/option       - The closed set of options and their output fields
//	pkg/scanner      - Expression scanner, grammar and introspection
//	pkg/locale       - Locale datasets and their registry
//	pkg/faker        - Seeded value generation
//	pkg/converter    - CSV, TSV and JSON rendering
//	pkg/compression  - Streaming output compression
//	pkg/history      - Recorded runs for replay
//	pkg/config       - YAML and FAKES_* environment configuration
//	pkg/errors       - Structured error handling
//	pkg/logger       - Structured logging
//	pkg/metrics      - Prometheus metrics
//	pkg/observability - OpenTelemetry tracing
//
// # Configuration
//
// Every gen flag has a configuration key:
//
//	locale: jpn
//	count: 100
//	converter: json
//	columns:
//	  - Name.FullName(name#true)
//	  - Primitive.Int(age#20#60)
//	compression:
//	  algorithm: zstd
//	history:
//	  path: ${HOME}/.fakes/history.db
//
// Environment variables are supported with ${VAR_NAME} syntax, and
// FAKES_COUNT style variables override the file.
package fakes
