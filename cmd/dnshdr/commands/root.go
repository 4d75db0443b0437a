// Package commands implements the dnshdr command-line interface.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jroosing/dnsheader/internal/cli/output"
	"github.com/jroosing/dnsheader/internal/config"
	"github.com/jroosing/dnsheader/internal/logging"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// options holds the persistent flags and what PersistentPreRunE derives from them.
type options struct {
	cfgFile  string
	logLevel string
	output   string

	cfg    *config.Config
	logger *slog.Logger
	format output.Format
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "dnshdr",
		Short: "Decode and encode DNS message headers",
		Long: `dnshdr inspects the fixed 12-byte DNS message header (RFC 1035 Section 4.1.1).

Use "dnshdr decode" to explain header bytes, "dnshdr encode" to build them,
and "dnshdr serve" to run the same codec behind an HTTP API.

Use "dnshdr [command] --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "Path to YAML config file (env "+config.EnvConfigPath+")")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override logging.level (DEBUG|INFO|WARN|ERROR)")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "table", "Output format (table|json|yaml)")

	rootCmd.AddCommand(newDecodeCmd(opts))
	rootCmd.AddCommand(newEncodeCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	return rootCmd
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *options) init(cmd *cobra.Command) error {
	format, err := output.ParseFormat(o.output)
	if err != nil {
		return err
	}
	o.format = format

	cfg, err := config.Load(config.ResolveConfigPath(o.cfgFile))
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		if !logging.ValidLevel(o.logLevel) {
			return fmt.Errorf("invalid --log-level %q", o.logLevel)
		}
		cfg.Logging.Level = o.logLevel
	}
	o.cfg = cfg

	logOpts := cfg.LoggingOptions()
	logOpts.Output = cmd.ErrOrStderr()
	o.logger = logging.Configure(logOpts)
	return nil
}
