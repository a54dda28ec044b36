// Package faker generates records of fake values from typed options.
//
// A Generator maps a single option to its values. A Faker owns a random
// stream and assembles records: when a record asks for any name column, one
// PersonName is drawn for it and every name column of that record reads from
// it, so "FullName" and "FirstName" in the same record describe the same
// person. Records of a data set share nothing.
//
//	ds, _ := locale.Get("jpn")
//	f := faker.New(rand.New(rand.NewPCG(seed, seed)), ds)
//	records := f.GenDataSet(10, columns)
//
// Given the same seed, locale, clock and columns, a Faker produces the same
// output.
package faker

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/ajitpratap0/fakes/pkg/locale"
	"github.com/ajitpratap0/fakes/pkg/logger"
	"github.com/ajitpratap0/fakes/pkg/metrics"
	"github.com/ajitpratap0/fakes/pkg/option"
)

// Faker assembles records from columns. It is not safe for concurrent use;
// run one Faker per goroutine, each with its own stream.
type Faker struct {
	rng        *rand.Rand
	gen        *Generator
	localeName string
	now        func() time.Time
	logger     *zap.Logger
}

// Option configures a Faker.
type Option func(*Faker)

// WithClock sets the clock Date options count back from.
func WithClock(now func() time.Time) Option {
	return func(f *Faker) { f.now = now }
}

// WithLogger sets the logger used for data set summaries.
func WithLogger(l *zap.Logger) Option {
	return func(f *Faker) { f.logger = l }
}

// WithLocaleName sets the locale label reported in metrics.
func WithLocaleName(name string) Option {
	return func(f *Faker) { f.localeName = name }
}

// New returns a Faker drawing from rng and reading ds.
func New(rng *rand.Rand, ds locale.Dataset, opts ...Option) *Faker {
	f := &Faker{
		rng:        rng,
		localeName: "unknown",
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.logger == nil {
		f.logger = logger.Get().With(zap.String("component", "faker"))
	}
	f.gen = NewGenerator(ds, f.now)
	return f
}

// NewSeeded returns a Faker on a PCG stream seeded with seed.
func NewSeeded(seed uint64, ds locale.Dataset, opts ...Option) *Faker {
	return New(rand.New(rand.NewPCG(seed, seed)), ds, opts...)
}

// Generator returns the single-option generator of f.
func (f *Faker) Generator() *Generator {
	return f.gen
}

// Gen returns the values of one option, with a fresh person for name options.
func (f *Faker) Gen(opt option.Option) []string {
	return f.gen.Generate(f.rng, opt)
}

// GenRecord generates one record. Values follow the column order; names
// paired with furigana take two adjacent values.
func (f *Faker) GenRecord(columns []option.Column) []string {
	record := f.genRecord(columns, needsPerson(columns))
	f.observe(1, columns)
	return record
}

// GenDataSet generates count independent records.
func (f *Faker) GenDataSet(count int, columns []option.Column) [][]string {
	timer := metrics.NewTimer("dataset")
	person := needsPerson(columns)

	records := make([][]string, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, f.genRecord(columns, person))
	}

	f.observe(count, columns)
	f.logger.Debug("data set generated",
		zap.Int("records", count),
		zap.Int("columns", len(columns)),
		zap.Bool("person", person),
		zap.Duration("duration", timer.ObservePhase()))
	return records
}

func (f *Faker) genRecord(columns []option.Column, person bool) []string {
	var p *PersonName
	if person {
		name := NewPersonName(f.rng, f.gen.dataset)
		p = &name
	}

	record := make([]string, 0, len(columns))
	for _, c := range columns {
		record = append(record, f.gen.generate(f.rng, c.Option, p)...)
	}
	return record
}

func (f *Faker) observe(records int, columns []option.Column) {
	if records == 0 {
		return
	}
	metrics.RecordsGenerated.WithLabelValues(f.localeName).Add(float64(records))

	perCategory := make(map[string]int, len(columns))
	for _, c := range columns {
		perCategory[c.Option.Category().String()]++
	}
	for category, n := range perCategory {
		metrics.ValuesGenerated.WithLabelValues(category).Add(float64(n * records))
	}
}

func needsPerson(columns []option.Column) bool {
	for _, c := range columns {
		if option.IsPersonName(c.Option) {
			return true
		}
	}
	return false
}
