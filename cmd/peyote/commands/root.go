package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dyluth/peyote/internal/beads"
	"github.com/dyluth/peyote/internal/config"
	"github.com/dyluth/peyote/internal/printer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version string
	commit  string
	date    string

	verbose bool
)

const rootLong = `Peyote checks whether a bead count works for a three-drop peyote stitch
project and suggests the nearest usable counts when it does not.

A usable count is at least %d and divisible by %s. Each matching
divisor unlocks a short/long pair of design element widths.

Run "peyote serve" for the web form or "peyote suggest <beads>" for a
one-off answer in the terminal.`

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "peyote",
	Short:   "Peyote - bead count calculator for three-drop peyote stitch",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		printer.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
	// Prevent silent success when unknown flags are passed to root command
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Silence Cobra's default error and usage printing
	// We print formatted colored errors directly in the printer package
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

// newLogger builds the structured logger from config.
// --verbose forces debug level regardless of the configured level.
func newLogger(cfg config.LogConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// divisorList renders divisors as "6, 9 or 12".
func divisorList(divisors []int) string {
	parts := make([]string, len(divisors))
	for i, d := range divisors {
		parts[i] = strconv.Itoa(d)
	}
	if len(parts) < 2 {
		return strings.Join(parts, "")
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}

func init() {
	rootCmd.Long = fmt.Sprintf(rootLong, beads.MinBeads, divisorList(beads.Divisors()))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
