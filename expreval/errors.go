package expreval

import "errors"

var (
	// ErrCompile reports an expression that does not parse or type-check.
	ErrCompile = errors.New("expreval: invalid expression")

	// ErrEval reports a runtime failure of the expression.
	ErrEval = errors.New("expreval: evaluation failed")

	// ErrResultType reports a result that is neither a number nor a boolean.
	ErrResultType = errors.New("expreval: result is not numeric")

	// ErrMissingColumn reports a row lacking a column the expression was
	// compiled against.
	ErrMissingColumn = errors.New("expreval: column missing from row")
)
