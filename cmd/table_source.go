package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/oakwood-commons/bpx/internal/config"
	"github.com/oakwood-commons/bpx/pkg/breakpoint"
	"github.com/oakwood-commons/bpx/pkg/loader"
)

var errNoTable = errors.New("one of --table, --file or --name is required")

// tableSource selects where a command reads its table from.
type tableSource struct {
	inline string
	file   string
	name   string
	strict bool
}

func (s *tableSource) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&s.inline, "table", "t", "", `inline table, e.g. "0..80 => px-1; 81.. => px-4"`)
	fs.StringVarP(&s.file, "file", "f", "", "path to a table file (yaml, json, toml or compact notation)")
	fs.StringVarP(&s.name, "name", "n", "", "name of a table from the config file")
	fs.BoolVar(&s.strict, "strict", false, "never fall back to the first entry on a miss")
}

// load reads the table, resolving tokens from cfg.
func (s *tableSource) load(cfg config.Config) (breakpoint.Table, string, error) {
	set := 0
	for _, v := range []string{s.inline, s.file, s.name} {
		if v != "" {
			set++
		}
	}
	if set == 0 {
		return breakpoint.Table{}, "", errNoTable
	}
	if set > 1 {
		return breakpoint.Table{}, "", errors.New("--table, --file and --name are mutually exclusive")
	}

	var (
		t      breakpoint.Table
		origin string
		err    error
	)
	switch {
	case s.inline != "":
		origin = "inline"
		t, err = loader.Parse(s.inline, cfg.Tokens)
	case s.file != "":
		origin = s.file
		t, err = loader.ParseFile(s.file, cfg.Tokens)
	default:
		origin = "config:" + s.name
		def, ok := cfg.Tables[s.name]
		if !ok {
			return breakpoint.Table{}, origin, fmt.Errorf("no table named %q in config (available: %v)", s.name, cfg.TableNames())
		}
		t, err = loader.Parse(def, cfg.Tokens)
	}
	if err != nil {
		return breakpoint.Table{}, origin, err
	}
	if s.strict {
		t = t.WithStrict(true)
	}
	return t, origin, nil
}
