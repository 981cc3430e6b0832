// Package cmd implements the bpx command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/bpx/pkg/logger"
	"github.com/oakwood-commons/bpx/pkg/settings"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	debug      bool
	noColor    bool
	configFile string
	logFile    string

	logSink io.Closer
}

// NewRootCommand builds the full command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   settings.CliBinaryName,
		Short: "Resolve breakpoint tables against terminal widths",
		Long: `bpx resolves breakpoint tables: ordered width intervals mapped to a class
or to substitute content. The first interval containing the width wins.

Tables are written in YAML, JSON, TOML or the compact notation
  "0..sm => px-1; sm+1..md => px-4; md+1.. => px-8"
and may reference width tokens from the config file.`,
		Example: `  bpx resolve --width 100 --table "0..80 => px-1; 81.. => px-4"
  bpx resolve --width 60,100,140 --name content -o json
  bpx lint --file tables/footer.yaml
  bpx preview --snapshot --width 100 --height 20`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if opts.logSink != nil {
				logger.Sync()
				_ = opts.logSink.Close()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable color output")
	pf.StringVar(&opts.configFile, "config-file", "", "path to a YAML config file (tokens, classes, tables)")
	pf.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")

	root.Version = versionString()
	root.SetVersionTemplate("{{.Version}}\n")

	root.AddCommand(
		newResolveCommand(),
		newLintCommand(),
		newPreviewCommand(),
		newConfigCommand(),
		newVersionCommand(),
	)
	return root
}

// setup initializes logging and stores run settings in the command context.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	level := settings.LogLevel(o.debug)
	logOpts := logger.Options{Level: level}
	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		o.logSink = f
		logOpts.Writer = f
	}
	lgr := logger.Setup(logOpts)
	lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())

	run := settings.NewCliParams()
	run.MinLogLevel = level
	run.NoColor = o.noColor || os.Getenv("NO_COLOR") != ""
	run.ConfigFile = resolveConfigPath(o.configFile)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithLogger(ctx, lgr)
	ctx = settings.IntoContext(ctx, run)
	cmd.SetContext(ctx)
	return nil
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}
