package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/bpx/pkg/settings"
)

type versionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildTime string `json:"buildTime" yaml:"buildTime"`
	Go        string `json:"go" yaml:"go"`
}

func currentVersion() versionInfo {
	v := settings.VersionInformation
	return versionInfo{
		Version:   v.BuildVersion,
		Commit:    v.Commit,
		BuildTime: v.BuildTime,
		Go:        runtime.Version(),
	}
}

func versionString() string {
	v := currentVersion()
	return fmt.Sprintf("%s %s (commit %s, built %s, %s)",
		settings.CliBinaryName, v.Version, v.Commit, v.BuildTime, v.Go)
}

func newVersionCommand() *cobra.Command {
	var output outputFormat
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if ok, err := writeStructured(out, output, currentVersion()); ok {
				return err
			}
			_, err := fmt.Fprintln(out, versionString())
			return err
		},
	}
	addOutputFlag(cmd.Flags(), &output)
	return cmd
}
