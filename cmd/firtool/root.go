package main

import (
	"fmt"

	"github.com/cwbudde/algo-blockfir/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	configFile string
	verbose    bool

	v   *viper.Viper
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "firtool",
		Short: "Design and run block FIR filters",
		Long: `firtool designs Kaiser-windowed lowpass FIR coefficients and runs the
standard, decimating, interpolating and resampling block filters over
generated Q15, Q31 or float32 signals.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "",
		"YAML run description (environment overrides use the FIRTOOL_ prefix)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"development logging at debug level")

	root.AddCommand(newDesignCmd(a), newRunCmd(a), newBackendsCmd())

	return root
}

func (a *app) init() error {
	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
		a.v.SetConfigType("yaml")

		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.configFile, err)
		}
	}

	log, err := newLogger(a.verbose, a.v.GetString("log_level"))
	if err != nil {
		return err
	}

	a.log = log

	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("using config file", zap.String("path", used))
	}

	return nil
}

func newLogger(verbose bool, level string) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Sampling = nil

	return cfg.Build()
}
