// Package cli implements the pi command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/govalues/pi/internal/config"
	"github.com/govalues/pi/internal/logger"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// app carries the state shared by the commands of one invocation.
type app struct {
	cfg       config.Config
	log       *slog.Logger
	printer   *message.Printer
	logLevel  string
	logFormat string
	quiet     bool
}

// NewRootCommand returns the pi command with all subcommands attached.
// Flag defaults are taken from cfg.
func NewRootCommand(cfg config.Config) *cobra.Command {
	a := &app{
		cfg:     cfg,
		log:     slog.Default(),
		printer: message.NewPrinter(language.English),
	}

	rootCmd := &cobra.Command{
		Use:   "pi",
		Short: "Computes π",
		Long: `pi computes π with one of three methods.

Methods:
  leibniz  - partial sum of the Leibniz series in float64
  decimal  - partial sum of the Leibniz series in fixed-point decimal
  digits   - exact digits from the spigot algorithm

Defaults are read from PI_ITERATIONS, PI_PRECISION, PI_DIGITS,
PI_LOG_LEVEL and PI_LOG_FORMAT.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (default: $PI_LOG_LEVEL or info)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format, text or json (default: $PI_LOG_FORMAT or text)")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "do not print the summary line")

	rootCmd.AddCommand(
		a.leibnizCommand(),
		a.decimalCommand(),
		a.digitsCommand(),
		newVersionCommand(),
	)
	return rootCmd
}

// Execute loads the configuration from the environment and runs the
// command line given by args.
func Execute(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}
	rootCmd := NewRootCommand(cfg)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}

// setup applies the logging flags before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	level := a.cfg.LogLevel
	if a.logLevel != "" {
		var err error
		if level, err = logger.ParseLevel(a.logLevel); err != nil {
			return err
		}
	}
	format := a.cfg.LogFormat
	if a.logFormat != "" {
		format = a.logFormat
	}
	if err := config.ValidateFormat(format); err != nil {
		return err
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = level
	logCfg.Format = format
	logCfg.Output = cmd.ErrOrStderr()
	logger.Init(logCfg)
	a.log = logger.ForComponent(cmd.Name())
	return nil
}

// timed runs a computation, logging its start, duration, and failure.
func (a *app) timed(method string, compute func() error) (time.Duration, error) {
	a.log.Debug("computation started", "method", method)
	start := time.Now()
	err := compute()
	elapsed := time.Since(start)
	if err != nil {
		a.log.Error("computation failed", "method", method, "error", err)
		return elapsed, err
	}
	a.log.Debug("computation finished", "method", method, "elapsed", elapsed)
	return elapsed, nil
}

// summary prints a line to stderr with thousands grouped, unless quiet.
func (a *app) summary(cmd *cobra.Command, format string, args ...any) {
	if a.quiet {
		return
	}
	a.printer.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}

func round(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}
