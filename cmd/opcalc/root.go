package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/leofalp/opcalc/core/calculator"
	"github.com/leofalp/opcalc/internal/config"
	"github.com/leofalp/opcalc/providers/listener"
	"github.com/leofalp/opcalc/providers/observability"
	"github.com/leofalp/opcalc/providers/observability/slogobs"
	"github.com/leofalp/opcalc/providers/observability/zapobs"
)

// app holds what the commands share once the configuration is loaded.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfg      *config.Config
	observer observability.Provider
	sync     func() error
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	cmd := &cobra.Command{
		Use:   "opcalc",
		Short: "Interactive calculator",
		Long: "opcalc evaluates arithmetic, trigonometric, combinatorial and geometric\n" +
			"operations selected by a short symbol such as +, sq or nCr.\n" +
			"Without a subcommand it starts the interactive loop.",
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runREPL(cmd)
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file (YAML, TOML or JSON)")
	flags.StringSlice("env-file", nil, "dotenv files to load (default .env)")
	flags.String("log-level", "INFO", "log level: DEBUG, INFO, WARN or ERROR")
	flags.String("log-format", "text", "log format: text or json")
	flags.String("log-backend", config.BackendSlog, "log backend: slog or zap")
	flags.Int("precision", -1, "decimals in printed results, -1 for the shortest form")
	flags.Bool("prompt", true, "print the operation menu before each calculation")

	cmd.AddCommand(newReplCmd(a), newEvalCmd(a), newListCmd(a))
	return cmd
}

// setup loads the configuration and builds the log backend.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	envFiles, err := cmd.Flags().GetStringSlice("env-file")
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.Options{
		ConfigFile: configFile,
		EnvFiles:   envFiles,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}
	a.cfg = cfg

	observer, sync, err := newObserver(cfg, a.errOut)
	if err != nil {
		return err
	}
	a.observer = observer
	a.sync = sync

	a.observer.Debug(cmd.Context(), "configuration loaded",
		observability.String(observability.AttrCommand, cmd.Name()),
		observability.String("log.backend", cfg.LogBackend),
	)
	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	if a.sync == nil {
		return nil
	}
	// Syncing stderr fails with EINVAL on some platforms; nothing is lost.
	_ = a.sync()
	return nil
}

// newCalculator returns a calculator that prints results to the app output.
func (a *app) newCalculator() *calculator.Calculator {
	calc := calculator.New(calculator.WithObserver(a.observer))
	calc.Subscribe(listener.NewPrinter(a.out, listener.WithPrecision(a.cfg.Precision)))
	return calc
}

func newObserver(cfg *config.Config, w io.Writer) (observability.Provider, func() error, error) {
	level := slogobs.ParseLogLevel(cfg.LogLevel)

	if cfg.LogBackend == config.BackendZap {
		encoding := "console"
		if cfg.LogFormat == string(slogobs.FormatJSON) {
			encoding = "json"
		}
		observer, err := zapobs.New(zapobs.Config{
			Level:    zapLevel(level),
			Encoding: encoding,
			Output:   w,
		})
		if err != nil {
			return nil, nil, err
		}
		return observer, observer.Sync, nil
	}

	observer := slogobs.New(
		slogobs.WithFormat(slogobs.ParseFormat(cfg.LogFormat)),
		slogobs.WithLevel(level),
		slogobs.WithOutput(w),
	)
	return observer, nil, nil
}

func zapLevel(level slog.Level) zapcore.Level {
	switch {
	case level <= slog.LevelDebug:
		return zapcore.DebugLevel
	case level <= slog.LevelInfo:
		return zapcore.InfoLevel
	case level <= slog.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
