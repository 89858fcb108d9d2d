package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/metatsp/instance"
	"github.com/katalvlaran/metatsp/internal/config"
	"github.com/katalvlaran/metatsp/internal/metrics"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// Flag keys, shared by cobra and viper.
const (
	keyConfig      = "config"
	keyInstance    = "instance"
	keySeed        = "seed"
	keyPlot        = "plot"
	keyMetricsFile = "metrics-file"
	keyPretty      = "pretty"
	keyLogLevel    = "log-level"
	keyPolish      = "polish"
	keyProgress    = "progress"
	keyRepeats     = "repeats"
	keyJobs        = "jobs"
	keySelection   = "selection"
	keyCrossover   = "crossover"
	keyHistory     = "history"
)

// app carries the state resolved once per invocation.
type app struct {
	v      *viper.Viper
	logger zerolog.Logger
	rec    *metrics.Recorder
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "metatsp",
		Short:         "Metaheuristic solvers for the travelling salesman problem",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "INI preset file (defaults apply when empty)")
	pf.String(keyInstance, "", "YAML instance file (reference 10-city matrix when empty)")
	pf.Int64(keySeed, 0, "seed override; 0 keeps the preset seed")
	pf.String(keyPlot, "", "write a convergence chart to this file (.png, .svg, .pdf)")
	pf.String(keyMetricsFile, "", "write Prometheus metrics in textfile format to this path")
	pf.Bool(keyPretty, stderrIsTerminal(), "human-readable console logs instead of JSON")
	pf.String(keyLogLevel, "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		newSolveCmd(a, "ga", "Run the genetic algorithm"),
		newSolveCmd(a, "sa", "Run simulated annealing"),
		newSolveCmd(a, "tabu", "Run tabu search"),
		newCompareCmd(a),
		newPresetCmd(a),
		newVersionCmd(),
	)

	return root
}

// init binds flags and environment, then builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("METATSP")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	logger, err := newLogger(cmd.ErrOrStderr(), a.v.GetBool(keyPretty), a.v.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	a.logger = logger.With().
		Str("run_id", strings.Split(uuid.NewString(), "-")[0]).
		Str("command", cmd.Name()).
		Logger()
	log.Logger = a.logger

	if a.v.GetString(keyMetricsFile) != "" {
		a.rec = metrics.New()
	}

	return nil
}

func newLogger(w io.Writer, pretty bool, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("log level %q: %w", level, err)
	}
	if pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// loadPreset loads --config (or the defaults) and applies --seed.
func (a *app) loadPreset() (*config.Preset, error) {
	p := config.Default()
	if path := a.v.GetString(keyConfig); path != "" {
		var err error
		if p, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if seed := a.v.GetInt64(keySeed); seed != 0 {
		p.Run.Seed = seed
	}

	return p, nil
}

// loadInstance loads --instance or falls back to the reference matrix.
func (a *app) loadInstance() (*instance.Instance, error) {
	path := a.v.GetString(keyInstance)
	if path == "" {
		return instance.Reference10(), nil
	}

	return instance.Load(path)
}

// flushMetrics writes the textfile when --metrics-file is set.
func (a *app) flushMetrics() error {
	if a.rec == nil {
		return nil
	}
	path := a.v.GetString(keyMetricsFile)
	if err := a.rec.WriteTextfile(path); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	a.logger.Debug().Str("path", path).Msg("metrics written")

	return nil
}

func newPresetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preset",
		Short: "Print the effective preset as INI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.loadPreset()
			if err != nil {
				return err
			}
			_, err = p.WriteTo(cmd.OutOrStdout())

			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "metatsp", version)
		},
	}
}

// stderrIsTerminal reports whether stderr looks like an interactive terminal.
func stderrIsTerminal() bool {
	fi, err := os.Stderr.Stat()

	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
