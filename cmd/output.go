package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// outputFormat is the value of the -o flag.
type outputFormat string

const (
	outputText outputFormat = "text"
	outputYAML outputFormat = "yaml"
	outputJSON outputFormat = "json"
)

var _ pflag.Value = (*outputFormat)(nil)

func (o *outputFormat) String() string { return string(*o) }

func (o *outputFormat) Set(v string) error {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(v))); f {
	case outputText, outputYAML, outputJSON:
		*o = f
		return nil
	case "yml":
		*o = outputYAML
		return nil
	default:
		return fmt.Errorf("invalid output format %q (expected text|yaml|json)", v)
	}
}

func (o *outputFormat) Type() string { return "format" }

func addOutputFlag(fs *pflag.FlagSet, o *outputFormat) {
	*o = outputText
	fs.VarP(o, "output", "o", "output format: text|yaml|json")
}

// writeStructured writes v as YAML or JSON. It reports false for text so the
// caller can fall back to its own rendering.
func writeStructured(w io.Writer, format outputFormat, v any) (bool, error) {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}
