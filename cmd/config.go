package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oakwood-commons/bpx/internal/config"
)

type configOptions struct {
	defaults bool
	output   outputFormat
}

func newConfigCommand() *cobra.Command {
	opts := &configOptions{}
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `config prints the embedded defaults merged with the user config file.
Use --default to print the embedded YAML unchanged, as a starting point
for a config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if opts.defaults {
				_, err := out.Write(config.DefaultYAML())
				return err
			}
			cfg, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			format := opts.output
			if format == outputText {
				format = outputYAML
			}
			_, err = writeStructured(out, format, cfg)
			return err
		},
	}
	cmd.Flags().BoolVar(&opts.defaults, "default", false, "print the embedded default config")
	addOutputFlag(cmd.Flags(), &opts.output)
	return cmd
}
