// Package pipeline runs one generation from configuration to output.
//
// # Overview
//
// A run goes through four phases, each traced and timed:
//
//	locale    resolve and validate the locale dataset
//	scan      read the column expressions
//	generate  draw the records from a seeded stream
//	write     render, compress and write the output
//
// A successful run can be kept in a history.Store through WithRecorder.
// The recorded seed and clock reading let ReplayConfig and WithClock
// regenerate the same bytes later.
//
// # Basic Usage
//
//	cfg, _ := config.Load("fakes.yaml")
//	result, err := pipeline.New(cfg, pipeline.WithLogger(log)).Run(ctx, os.Stdout)
package pipeline

import (
	"context"
	"io"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/ajitpratap0/fakes/pkg/compression"
	"github.com/ajitpratap0/fakes/pkg/config"
	"github.com/ajitpratap0/fakes/pkg/converter"
	"github.com/ajitpratap0/fakes/pkg/errors"
	"github.com/ajitpratap0/fakes/pkg/faker"
	"github.com/ajitpratap0/fakes/pkg/history"
	"github.com/ajitpratap0/fakes/pkg/locale"
	"github.com/ajitpratap0/fakes/pkg/logger"
	"github.com/ajitpratap0/fakes/pkg/metrics"
	"github.com/ajitpratap0/fakes/pkg/observability"
	"github.com/ajitpratap0/fakes/pkg/option"
	"github.com/ajitpratap0/fakes/pkg/scanner"
)

// Recorder keeps finished runs. *history.Store implements it.
type Recorder interface {
	Record(run history.Run) error
	Prune(keep int) (int, error)
}

// Pipeline generates the records described by a Config.
type Pipeline struct {
	cfg      *config.Config
	logger   *zap.Logger
	now      func() time.Time
	seeder   func() uint64
	recorder Recorder
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the run logger; the run id and locale are added to it.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithClock sets the clock for Date options and the JSON full form.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// WithSeeder sets the source of seeds used when the config seed is 0.
func WithSeeder(seeder func() uint64) Option {
	return func(p *Pipeline) { p.seeder = seeder }
}

// WithRecorder records every successful run, then prunes the history to
// the configured size.
func WithRecorder(r Recorder) Option {
	return func(p *Pipeline) { p.recorder = r }
}

// Result summarizes a finished run.
type Result struct {
	RunID string
	// Time is the single clock reading the run was generated at
	Time    time.Time
	Seed    uint64
	Records int
	Fields  []option.Field
	Form    converter.Form
	// Bytes is the rendered size before compression
	Bytes    int64
	Duration time.Duration
}

// New returns a Pipeline for cfg. cfg should already be validated.
func New(cfg *config.Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:    cfg,
		now:    time.Now,
		seeder: rand.Uint64,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logger.Get()
	}
	return p
}

// Run executes the pipeline and writes the rendered records to w.
func (p *Pipeline) Run(ctx context.Context, w io.Writer) (*Result, error) {
	start := time.Now()
	result := &Result{RunID: logger.NewRunID()}
	ctx = logger.ContextWithRun(ctx, result.RunID, p.cfg.Locale)
	log := logger.WithContext(ctx, p.logger)

	ctx, span := observability.NewSpan(ctx, "fakes.run")
	defer span.End()

	if err := p.run(ctx, span, log, w, result); err != nil {
		span.Fail(err)
		log.Debug("run failed", zap.Error(err))
		return nil, err
	}

	result.Duration = time.Since(start)
	p.record(log, result)
	log.Info("run completed",
		zap.Int("records", result.Records),
		zap.Int("fields", len(result.Fields)),
		zap.Uint64("seed", result.Seed),
		zap.String("form", result.Form.String()),
		zap.Int64("bytes", result.Bytes),
		zap.Duration("duration", result.Duration))
	return result, nil
}

func (p *Pipeline) run(ctx context.Context, span *observability.Span, log *zap.Logger, w io.Writer, result *Result) error {
	var (
		ds      locale.Dataset
		columns []option.Column
		records [][]string
	)

	err := observability.TracePhase(ctx, "locale", func(ctx context.Context, s *observability.Span) error {
		s.SetAttribute("fakes.locale", p.cfg.Locale)
		var err error
		ds, err = locale.Get(p.cfg.Locale)
		return err
	})
	if err != nil {
		return err
	}

	err = observability.TracePhase(ctx, "scan", func(ctx context.Context, s *observability.Span) error {
		s.SetAttribute("fakes.columns", p.cfg.Columns)
		var err error
		columns, err = p.scan()
		return err
	})
	if err != nil {
		return err
	}
	result.Fields = option.Fields(columns)

	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, errors.ErrorTypeInternal, "run cancelled")
	}

	result.Seed = p.cfg.Seed
	if result.Seed == 0 {
		result.Seed = p.seeder()
		log.Info("drew random seed", zap.Uint64("seed", result.Seed))
	}
	span.SetAttribute("fakes.seed", result.Seed)

	// one reading for the whole run so that a replay can pin it
	result.Time = p.now()
	clock := func() time.Time { return result.Time }

	err = observability.TracePhase(ctx, "generate", func(ctx context.Context, s *observability.Span) error {
		f := faker.NewSeeded(result.Seed, ds,
			faker.WithClock(clock),
			faker.WithLogger(log),
			faker.WithLocaleName(p.cfg.Locale))
		records = f.GenDataSet(p.cfg.Count, columns)
		result.Records = len(records)
		s.SetAttribute("fakes.records", result.Records)
		return nil
	})
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, errors.ErrorTypeInternal, "run cancelled")
	}

	return observability.TracePhase(ctx, "write", func(ctx context.Context, s *observability.Span) error {
		n, form, err := p.write(w, clock, result.Fields, records)
		result.Bytes, result.Form = n, form
		s.SetAttribute("fakes.bytes", n)
		s.SetAttribute("fakes.form", form.String())
		return err
	})
}

// scan reads the configured expressions and counts each failure by kind.
func (p *Pipeline) scan() ([]option.Column, error) {
	if len(p.cfg.Columns) == 0 {
		return nil, errors.New(errors.ErrorTypeValidation, "no column expressions given").
			WithDetail("usage", "fakes gen Category.Option(column[#argument])...")
	}

	columns, err := scanner.ScanAll(p.cfg.Columns)
	if err != nil {
		var errs scanner.Errors
		if errors.As(err, &errs) {
			for _, e := range errs {
				metrics.ScanErrors.WithLabelValues(e.Kind.String()).Inc()
			}
		}
		return nil, errors.Wrap(err, errors.ErrorTypeValidation, "invalid column expressions")
	}
	return columns, nil
}

// write renders records into w through the configured compression and
// returns the number of rendered bytes.
func (p *Pipeline) write(w io.Writer, now func() time.Time, fields []option.Field, records [][]string) (int64, converter.Form, error) {
	ft, err := converter.ParseFileType(p.cfg.Converter)
	if err != nil {
		return 0, 0, err
	}
	conv, err := converter.New(ft, now)
	if err != nil {
		return 0, 0, err
	}
	form := converter.SelectForm(p.cfg.Header, p.cfg.Count)

	compressionCfg := p.cfg.CompressionSettings()
	cw, err := compression.NewWriter(w, compressionCfg)
	if err != nil {
		return 0, form, err
	}
	counter := &countingWriter{w: cw}

	renderErr := converter.Render(counter, conv, form, fields, records)
	if renderErr == nil {
		_, renderErr = io.WriteString(counter, "\n")
	}
	if err := cw.Close(); err != nil && renderErr == nil {
		renderErr = errors.Wrap(err, errors.ErrorTypeOutput, "failed to flush compressed output")
	}

	metrics.OutputBytes.WithLabelValues(string(ft), string(compressionCfg.Algorithm)).Add(float64(counter.n))
	return counter.n, form, renderErr
}

// record stores result in the history. Failures are logged, never
// returned: the output is already written.
func (p *Pipeline) record(log *zap.Logger, result *Result) {
	if p.recorder == nil {
		return
	}
	run := history.Run{
		ID:               result.RunID,
		Time:             result.Time,
		Seed:             result.Seed,
		Locale:           p.cfg.Locale,
		Converter:        p.cfg.Converter,
		Count:            p.cfg.Count,
		Header:           p.cfg.Header,
		Columns:          p.cfg.Columns,
		Compression:      p.cfg.Compression.Algorithm,
		CompressionLevel: p.cfg.Compression.Level,
		Output:           p.cfg.Output,
		Records:          result.Records,
		Bytes:            result.Bytes,
	}
	if err := p.recorder.Record(run); err != nil {
		log.Warn("failed to record run", zap.Error(err))
		return
	}
	if pruned, err := p.recorder.Prune(p.cfg.History.Keep); err != nil {
		log.Warn("failed to prune history", zap.Error(err))
	} else if pruned > 0 {
		log.Debug("pruned history", zap.Int("runs", pruned))
	}
}

// ReplayConfig returns the configuration that regenerates run. Logging,
// observability and concurrency settings come from base; the output goes
// to stdout.
func ReplayConfig(base *config.Config, run history.Run) *config.Config {
	cfg := *base
	cfg.Locale = run.Locale
	cfg.Converter = run.Converter
	cfg.Count = run.Count
	cfg.Header = run.Header
	cfg.Seed = run.Seed
	cfg.Columns = append([]string(nil), run.Columns...)
	cfg.Output = Stdout
	cfg.Compression.Algorithm = run.Compression
	cfg.Compression.Level = run.CompressionLevel
	return &cfg
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
