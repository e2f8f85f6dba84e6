// Package expreval compiles arithmetic expressions over data set columns,
// such as "CHOICE == 1 && CAR_AV_SP > 0" or "TRAIN_CO * (GA == 0 ? 1 : 0) / 100",
// into dataset.Evaluator values.
//
// Expressions use the expr-lang syntax. Each column becomes a float64
// variable; exp, log and sqrt are available in addition to the expr-lang
// builtins. Boolean results evaluate to 1 or 0.
package expreval

import (
	"fmt"
	"math"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/katalvlaran/choicedata/dataset"
)

// Expression is a compiled expression bound to a set of column names.
// An Expression owns a scratch environment and must not be shared between
// goroutines; Clone returns an independent copy that shares the program.
type Expression struct {
	src     string
	program *vm.Program
	columns []string
	env     map[string]any
	machine vm.VM
}

var mathFunctions = []expr.Option{
	unary("exp", math.Exp),
	unary("log", math.Log),
	unary("sqrt", math.Sqrt),
}

func unary(name string, f func(float64) float64) expr.Option {
	return expr.Function(name, func(params ...any) (any, error) {
		x, err := toFloat(params[0])
		if err != nil {
			return nil, err
		}

		return f(x), nil
	}, new(func(float64) float64))
}

// Compile parses src with every name of columns declared as a float64
// variable.
func Compile(src string, columns []string) (*Expression, error) {
	env := newEnv(columns)
	opts := append([]expr.Option{expr.Env(env)}, mathFunctions...)
	program, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("Compile %q: %w: %v", src, ErrCompile, err)
	}

	return &Expression{src: src, program: program, columns: slices.Clone(columns), env: env}, nil
}

func newEnv(columns []string) map[string]any {
	env := make(map[string]any, len(columns))
	for _, c := range columns {
		env[c] = 0.0
	}

	return env
}

// String returns the source text.
func (e *Expression) String() string { return e.src }

// Evaluate binds the columns of row and runs the program.
func (e *Expression) Evaluate(row dataset.Row) (float64, error) {
	for _, c := range e.columns {
		v, ok := row.Value(c)
		if !ok {
			return 0, fmt.Errorf("%q: %s: %w", e.src, c, ErrMissingColumn)
		}
		e.env[c] = v
	}

	out, err := e.machine.Run(e.program, e.env)
	if err != nil {
		return 0, fmt.Errorf("%q: %w: %v", e.src, ErrEval, err)
	}
	x, err := toFloat(out)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", e.src, err)
	}

	return x, nil
}

// Clone returns a copy with its own environment and virtual machine.
func (e *Expression) Clone() dataset.Evaluator {
	return &Expression{src: e.src, program: e.program, columns: e.columns, env: newEnv(e.columns)}
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case float32:
		return float64(x), nil
	case bool:
		if x {
			return 1, nil
		}

		return 0, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrResultType, v)
	}
}

// CompileAll compiles a name → source mapping against the same columns.
func CompileAll(sources map[string]string, columns []string) (map[string]*Expression, error) {
	out := make(map[string]*Expression, len(sources))
	for name, src := range sources {
		e, err := Compile(src, columns)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[name] = e
	}

	return out, nil
}
