package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/fakes/internal/pipeline"
	"github.com/ajitpratap0/fakes/pkg/compression"
	"github.com/ajitpratap0/fakes/pkg/config"
	"github.com/ajitpratap0/fakes/pkg/converter"
	"github.com/ajitpratap0/fakes/pkg/history"
	"github.com/ajitpratap0/fakes/pkg/metrics"
	"github.com/ajitpratap0/fakes/pkg/observability"
)

// genFlags mirror the generation fields of config.Config. Only flags set
// on the command line override the configuration.
type genFlags struct {
	converter        string
	size             int
	locale           string
	header           bool
	seed             uint64
	output           string
	compression      string
	compressionLevel string
	trace            bool
	metrics          bool
}

func newGenCmd(global *globalFlags) *cobra.Command {
	flags := &genFlags{}

	cmd := &cobra.Command{
		Use:   "gen [options...]",
		Short: "Generate fake records",
		Long: `Generate fake records, one column per option expression.

Each expression has the form Category.Option(column[#argument]). Without
expressions on the command line, the columns of the configuration file
are used. Run "fakes usable" to list the options.

Example:
  fakes gen -s 3 -H "Name.FullName(name#true)" "Address.ZipCode(zip#true)"
  fakes gen -s 1000 -c json --compression zstd -o people.json.zst "Name.FullName(name)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.loadConfig()
			if err != nil {
				return err
			}
			flags.apply(cmd, cfg, args)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runGen(cmd, cfg, true)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.converter, "converter", "c", "csv",
		fmt.Sprintf("Output format (%s)", strings.Join(fileTypeNames(), ", ")))
	f.IntVarP(&flags.size, "size", "s", 1, "Number of records to generate")
	f.StringVarP(&flags.locale, "locale", "l", "jpn", "Locale of the generated data")
	f.BoolVarP(&flags.header, "header", "H", false, "Write a header, or the timestamped object for json")
	f.Uint64Var(&flags.seed, "seed", 0, "Seed of the random stream; 0 draws one and logs it")
	f.StringVarP(&flags.output, "output", "o", pipeline.Stdout, `Output file, "-" for stdout`)
	f.StringVar(&flags.compression, "compression", string(compression.None),
		fmt.Sprintf("Output compression (%s)", strings.Join(algorithmNames(), ", ")))
	f.StringVar(&flags.compressionLevel, "compression-level", compression.Default.String(),
		"Compression level (fastest, default, better, best or 1-9)")
	f.BoolVar(&flags.trace, "trace", false, "Export run spans to stderr")
	f.BoolVar(&flags.metrics, "metrics", false, "Dump metrics to stderr on exit")

	return cmd
}

// apply copies the flags set on the command line and the positional
// expressions into cfg.
func (g *genFlags) apply(cmd *cobra.Command, cfg *config.Config, args []string) {
	changed := cmd.Flags().Changed
	if changed("converter") {
		cfg.Converter = g.converter
	}
	if changed("size") {
		cfg.Count = g.size
	}
	if changed("locale") {
		cfg.Locale = g.locale
	}
	if changed("header") {
		cfg.Header = g.header
	}
	if changed("seed") {
		cfg.Seed = g.seed
	}
	if changed("output") {
		cfg.Output = g.output
	}
	if changed("compression") {
		cfg.Compression.Algorithm = g.compression
	}
	if changed("compression-level") {
		cfg.Compression.Level = g.compressionLevel
	}
	if changed("trace") {
		cfg.Observability.Tracing = g.trace
	}
	if changed("metrics") {
		cfg.Observability.Metrics = g.metrics
	}
	if len(args) > 0 {
		cfg.Columns = args
	}
}

// runGen runs one generation into the configured output. With record set
// and a history path configured, the run is added to the history.
func runGen(cmd *cobra.Command, cfg *config.Config, record bool, extra ...pipeline.Option) (err error) {
	log, err := initLogger(cfg)
	if err != nil {
		return err
	}
	log = log.With(zap.String("component", "fakes-cli"))
	defer func() { _ = log.Sync() }()

	if cfg.Observability.Tracing {
		tc := observability.DefaultTracingConfig(version)
		tc.Writer = cmd.ErrOrStderr()
		if err := observability.InitTracing(tc); err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if serr := observability.Shutdown(ctx); serr != nil {
				log.Warn("failed to flush traces", zap.Error(serr))
			}
		}()
	}
	if cfg.Observability.Metrics {
		defer func() {
			if derr := metrics.Dump(cmd.ErrOrStderr()); derr != nil {
				log.Warn("failed to dump metrics", zap.Error(derr))
			}
		}()
	}

	w, err := pipeline.OpenOutput(cfg.Output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	log.Debug("starting generation",
		zap.String("locale", cfg.Locale),
		zap.Int("count", cfg.Count),
		zap.String("converter", cfg.Converter),
		zap.Strings("columns", cfg.Columns),
		zap.String("output", cfg.Output),
		zap.String("compression", cfg.Compression.Algorithm))

	opts := []pipeline.Option{pipeline.WithLogger(log)}
	if record && cfg.IsHistoryEnabled() {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, pipeline.WithRecorder(store))
	}
	opts = append(opts, extra...)

	_, err = pipeline.New(cfg, opts...).Run(cmd.Context(), w)
	return err
}

func fileTypeNames() []string {
	var names []string
	for _, ft := range converter.FileTypes() {
		names = append(names, string(ft))
	}
	return names
}

func algorithmNames() []string {
	var names []string
	for _, alg := range compression.Algorithms() {
		names = append(names, string(alg))
	}
	return names
}
