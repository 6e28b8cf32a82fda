package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mathkit/foundation/core/error"
	"github.com/msto63/mathkit/foundation/core/log"
	"github.com/msto63/mathkit/pkg/core/config"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
	precision int
	plain     bool

	appConfig *config.Config
	logger    *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mathkit",
	Short: "mathkit - complex numbers and triangles",
	Long: `mathkit evaluates operations on complex numbers and triangles.

Commands:
  complex   - arithmetic, phase and square root of complex numbers
  triangle  - perimeter, area, validity and classification of triangles
  version   - version information`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the command tree and returns the process exit status
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		reportError(rootCmd, err)
		return mdwerror.GetCode(err).ExitCode()
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $MATHKIT_CONFIG or ./mathkit.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: json, text, console or logfmt")
	rootCmd.PersistentFlags().IntVarP(&precision, "precision", "p", -1, "fraction digits, -1 for the shortest exact form")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "print plain text without styling")
}

// setup loads the configuration, applies flag overrides and builds the
// logger for this invocation
func setup(cmd *cobra.Command, args []string) error {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-format") {
		cfg.General.LogFormat = logFormat
	}
	if flags.Changed("precision") {
		cfg.Output.Precision = precision
	}
	if plain {
		cfg.Output.Plain = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	logger = log.NewWithConfig(log.Config{
		Level:  cfg.Level(),
		Format: cfg.LogFormat(),
		Output: cmd.ErrOrStderr(),
	}).
		WithName(strings.ReplaceAll(cmd.CommandPath(), " ", ".")).
		WithCorrelationID(uuid.NewString())
	if verbose {
		logger = logger.WithLevel(log.LevelDebug)
	}

	logger.Info("configuration loaded", log.Fields{
		"log_level": cfg.General.LogLevel,
		"precision": cfg.Output.Precision,
		"plain":     cfg.Output.Plain,
	})
	return nil
}

// reportError logs err with its structured context and prints a short
// message for the user
func reportError(cmd *cobra.Command, err error) {
	if logger != nil {
		logger.LogError(err)
	}

	msg := "error: " + err.Error()
	if appConfig == nil || !appConfig.Output.Plain {
		msg = errorStyle.Render(msg)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), msg)
}
