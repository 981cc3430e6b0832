// Package cel evaluates interval bound expressions such as "sm + 1" or
// "math.greatest(md, 900)" against a set of named width tokens.
package cel

import (
	"fmt"
	"math"
	"regexp"
	"sort"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	celext "github.com/google/cel-go/ext"
)

// TokensVar is the map variable holding every token, for names that are not
// valid identifiers.
const TokensVar = "tokens"

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Evaluator compiles bound expressions in an environment where each token is
// an int variable.
type Evaluator struct {
	env    *cel.Env
	tokens map[string]int64
}

// NewEvaluator creates an evaluator for the given tokens. Token names that are
// not CEL identifiers (or collide with TokensVar) are only reachable through
// tokens["name"].
func NewEvaluator(tokens map[string]int) (*Evaluator, error) {
	values := make(map[string]int64, len(tokens))
	names := make([]string, 0, len(tokens))
	for name, v := range tokens {
		values[name] = int64(v)
		names = append(names, name)
	}
	sort.Strings(names)

	opts := []cel.EnvOption{
		cel.Variable(TokensVar, cel.MapType(cel.StringType, cel.IntType)),
		celext.Math(),
		celext.Strings(),
	}
	for _, name := range names {
		if identPattern.MatchString(name) && name != TokensVar {
			opts = append(opts, cel.Variable(name, cel.IntType))
		}
	}
	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return &Evaluator{env: env, tokens: values}, nil
}

// GetEnvironment returns the CEL environment for introspection.
func (e *Evaluator) GetEnvironment() *cel.Env {
	return e.env
}

// EvaluateInt evaluates expr and requires an integral result.
func (e *Evaluator) EvaluateInt(expr string) (int, error) {
	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return 0, fmt.Errorf("compilation error: %w", issues.Err())
	}
	prg, err := e.env.Program(ast)
	if err != nil {
		return 0, fmt.Errorf("program error: %w", err)
	}

	vars := make(map[string]any, len(e.tokens)+1)
	for name, v := range e.tokens {
		vars[name] = v
	}
	vars[TokensVar] = e.tokens

	result, _, err := prg.Eval(vars)
	if err != nil {
		return 0, fmt.Errorf("eval error: %w", err)
	}
	return toInt(result)
}

func toInt(val ref.Val) (int, error) {
	switch v := val.(type) {
	case types.Int:
		return int(v), nil
	case types.Uint:
		if uint64(v) > math.MaxInt32 {
			return 0, fmt.Errorf("bound %d out of range", uint64(v))
		}
		return int(v), nil
	case types.Double:
		f := float64(v)
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("bound %v is not a whole number", f)
		}
		return int(f), nil
	default:
		return 0, fmt.Errorf("bound must be a number, got %s", val.Type().TypeName())
	}
}
