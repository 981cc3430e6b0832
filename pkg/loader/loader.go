// Package loader reads breakpoint tables from YAML, JSON, TOML or the compact
// table notation, resolving token and CEL bound expressions.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/bpx/internal/cel"
	"github.com/oakwood-commons/bpx/internal/dsl"
	"github.com/oakwood-commons/bpx/pkg/breakpoint"
)

// ErrEmptyTable is returned for blank input.
var ErrEmptyTable = errors.New("empty table definition")

// BoundError reports a bound that could not be resolved.
type BoundError struct {
	Entry int
	Field string
	Expr  string
	Err   error
}

func (e *BoundError) Error() string {
	return fmt.Sprintf("entry %d: %s %q: %v", e.Entry, e.Field, e.Expr, e.Err)
}

func (e *BoundError) Unwrap() error { return e.Err }

// Format identifies an input syntax.
type Format string

const (
	FormatDSL  Format = "dsl"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// DetectFormat guesses the syntax of input.
func DetectFormat(input string) Format {
	input = strings.TrimSpace(input)
	switch {
	case dsl.Looks(input):
		return FormatDSL
	case strings.HasPrefix(input, "{"):
		return FormatJSON
	case isLikelyTOML(input):
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Parse builds a table from input in any supported syntax. base supplies
// tokens that the input may reference; tokens declared in the input win.
func Parse(input string, base map[string]int) (breakpoint.Table, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return breakpoint.Table{}, ErrEmptyTable
	}

	format := DetectFormat(input)
	if format == FormatDSL {
		doc, err := dsl.Parse(input)
		if err != nil {
			return breakpoint.Table{}, err
		}
		return FromDocument(doc, base)
	}

	spec, err := Decode(input, format)
	if err != nil {
		return breakpoint.Table{}, err
	}
	return spec.Build(base)
}

// ParseFile reads and parses a table file.
func ParseFile(path string, base map[string]int) (breakpoint.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return breakpoint.Table{}, fmt.Errorf("read table: %w", err)
	}
	table, err := Parse(string(data), base)
	if err != nil {
		return breakpoint.Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Decode unmarshals a structured (non-DSL) table definition.
func Decode(input string, format Format) (TableSpec, error) {
	var spec TableSpec
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal([]byte(input), &spec)
	case FormatTOML:
		err = toml.Unmarshal([]byte(input), &spec)
	case FormatYAML:
		err = yaml.Unmarshal([]byte(input), &spec)
	default:
		return spec, fmt.Errorf("unsupported table format %q", format)
	}
	if err != nil {
		return spec, fmt.Errorf("decode %s table: %w", format, err)
	}
	return spec, nil
}

// Build resolves bounds and outputs into a table.
func (s TableSpec) Build(base map[string]int) (breakpoint.Table, error) {
	tokens := mergeTokens(base, s.Tokens)
	var ev *cel.Evaluator

	bound := func(i int, field string, v any) (int, error) {
		n, expr, err := literalBound(v)
		if err != nil {
			return 0, &BoundError{Entry: i, Field: field, Expr: fmt.Sprint(v), Err: err}
		}
		if expr == "" {
			return n, nil
		}
		if ev == nil {
			if ev, err = cel.NewEvaluator(tokens); err != nil {
				return 0, err
			}
		}
		n, err = ev.EvaluateInt(expr)
		if err != nil {
			return 0, &BoundError{Entry: i, Field: field, Expr: expr, Err: err}
		}
		return n, nil
	}

	table := breakpoint.Table{Strict: s.Strict}
	for i, e := range s.Entries {
		min, err := bound(i, "min", e.Min)
		if err != nil {
			return breakpoint.Table{}, err
		}
		iv := breakpoint.AtLeast(min)
		if e.Max != nil {
			max, err := bound(i, "max", e.Max)
			if err != nil {
				return breakpoint.Table{}, err
			}
			iv = breakpoint.Between(min, max)
		}
		out, err := OutputSpec{Class: e.Class, Content: e.Content}.Output()
		if err != nil {
			return breakpoint.Table{}, fmt.Errorf("entry %d: %w", i, err)
		}
		table.Entries = append(table.Entries, breakpoint.When(iv, out))
	}
	if s.Default != nil {
		out, err := s.Default.Output()
		if err != nil {
			return breakpoint.Table{}, fmt.Errorf("default: %w", err)
		}
		table.Default = out
	}
	return table, nil
}

// Output converts the spec into a breakpoint output. Exactly one of Class and
// Content must be set.
func (o OutputSpec) Output() (breakpoint.Output, error) {
	switch {
	case o.Class != nil && o.Content != nil:
		return breakpoint.Output{}, errors.New("class and content are mutually exclusive")
	case o.Content != nil:
		return breakpoint.Content(breakpoint.Text(*o.Content)), nil
	case o.Class != nil:
		return breakpoint.ClassName(strings.TrimSpace(*o.Class)), nil
	default:
		return breakpoint.Output{}, errors.New("class or content is required")
	}
}

// FromDocument converts a parsed DSL document into a table.
func FromDocument(doc *dsl.Document, base map[string]int) (breakpoint.Table, error) {
	tokens := mergeTokens(base, doc.Tokens)
	resolve := func(i int, field string, b dsl.Bound) (int, error) {
		if b.Token == "" {
			return b.Value, nil
		}
		v, ok := tokens[b.Token]
		if !ok {
			return 0, &BoundError{Entry: i, Field: field, Expr: b.String(), Err: fmt.Errorf("unknown token %q", b.Token)}
		}
		return v + b.Offset, nil
	}

	table := breakpoint.Table{Strict: doc.Strict}
	for i, r := range doc.Rules {
		min, err := resolve(i, "min", r.Min)
		if err != nil {
			return breakpoint.Table{}, err
		}
		iv := breakpoint.AtLeast(min)
		if r.Max != nil {
			max, err := resolve(i, "max", *r.Max)
			if err != nil {
				return breakpoint.Table{}, err
			}
			iv = breakpoint.Between(min, max)
		}
		table.Entries = append(table.Entries, breakpoint.When(iv, dslOutput(r.Output)))
	}
	if doc.Default != nil {
		table.Default = dslOutput(*doc.Default)
	}
	return table, nil
}

func dslOutput(o dsl.Output) breakpoint.Output {
	if o.IsContent {
		return breakpoint.Content(breakpoint.Text(o.Content))
	}
	return breakpoint.ClassName(o.Class)
}

func mergeTokens(base, own map[string]int) map[string]int {
	out := make(map[string]int, len(base)+len(own))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range own {
		out[k] = v
	}
	return out
}

// literalBound returns a numeric bound, or the expression text when v is a
// non-numeric string.
func literalBound(v any) (int, string, error) {
	switch n := v.(type) {
	case nil:
		return 0, "", errors.New("bound is required")
	case int:
		return n, "", nil
	case int64:
		return int(n), "", nil
	case uint64:
		if n > math.MaxInt32 {
			return 0, "", fmt.Errorf("bound %d out of range", n)
		}
		return int(n), "", nil
	case float64:
		if n != math.Trunc(n) {
			return 0, "", fmt.Errorf("bound %v is not a whole number", n)
		}
		return int(n), "", nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, "", errors.New("bound is empty")
		}
		if i, err := strconv.Atoi(s); err == nil {
			return i, "", nil
		}
		return 0, s, nil
	default:
		return 0, "", fmt.Errorf("unsupported bound type %T", v)
	}
}

// isLikelyTOML looks for [section] headers or mostly key = value lines.
func isLikelyTOML(input string) bool {
	sectionPattern := regexp.MustCompile(`^\s*\[{1,2}[a-zA-Z_][a-zA-Z0-9_.-]*\]{1,2}\s*$`)
	keyValuePattern := regexp.MustCompile(`^\s*[a-zA-Z_][a-zA-Z0-9_.-]*\s*=\s*.+$`)

	sectionCount := 0
	keyValueCount := 0
	nonEmptyCount := 0
	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		nonEmptyCount++
		if sectionPattern.MatchString(line) {
			sectionCount++
		}
		if keyValuePattern.MatchString(line) {
			keyValueCount++
		}
	}
	if sectionCount > 0 {
		return true
	}
	return nonEmptyCount > 0 && keyValueCount > nonEmptyCount/2
}
