package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/fakes/pkg/config"
	"github.com/ajitpratap0/fakes/pkg/logger"

	// Register the bundled locales
	_ "github.com/ajitpratap0/fakes/pkg/locale/japan"
)

var version = "0.1.0"

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configFile  string
	logLevel    string
	logFormat   string
	historyPath string
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		logger.Get().Debug("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		_ = logger.Sync()
		stop()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "fakes",
		Short: "fakes - fake data generator",
		Long: `fakes generates fake records from column expressions such as
Primitive.Int(age#1#99) or Name.FullName(name#true), and writes them as
CSV, TSV or JSON.

Example:
  fakes gen -s 10 -c json "Name.FullName(name)" "Primitive.Int(age#20#60)"`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "Path to a YAML configuration file")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log encoding (console, json)")
	root.PersistentFlags().StringVar(&flags.historyPath, "history", "", "Path to the run history database")

	root.AddCommand(
		newGenCmd(flags),
		newHistoryCmd(flags),
		newReplayCmd(flags),
		newExplainCmd(),
		newTryCmd(flags),
		newUsableCmd(),
		newBNFCmd(),
		newLocalesCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// loadConfig reads the configuration file and the FAKES_* environment,
// then applies the persistent logging flags. Callers validate again after
// applying their own flags.
func (f *globalFlags) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(f.configFile)
	if err != nil {
		return nil, err
	}

	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Logging.Encoding = f.logFormat
	}
	if f.historyPath != "" {
		cfg.History.Path = f.historyPath
	}
	return cfg, nil
}

// initLogger builds the command logger and installs it as the global one
// on first use.
func initLogger(cfg *config.Config) (*zap.Logger, error) {
	if err := logger.Init(cfg.LoggerConfig()); err != nil {
		return nil, err
	}
	return logger.New(cfg.LoggerConfig())
}
