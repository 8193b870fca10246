// Package filter applies expr-lang expressions to the JSON documents the
// FTC Events API returns, so CLI users can narrow results client-side
// without the client needing to know the response schema.
package filter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// CompilationError describes a filter expression that failed to compile
type CompilationError struct {
	Expression string
	Reason     string
	Err        error
}

func (e *CompilationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("filter %q: %s: %v", e.Expression, e.Reason, e.Err)
	}
	return fmt.Sprintf("filter %q: %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

// Filter is a compiled expression that can be matched against the rows
// of a decoded JSON response.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into a Filter. Row fields are exposed
// as undeclared variables, so `teamNumber > 10000` works against any
// response shape.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.AllowUndefinedVariables(), // Row fields vary per endpoint
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the source expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a single row.
func (f *Filter) Match(row map[string]any) (bool, error) {
	result, err := expr.Run(f.program, row)
	if err != nil {
		return false, fmt.Errorf("filter %q: %w", f.expression, err)
	}
	keep, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q: expression did not return a boolean", f.expression)
	}
	return keep, nil
}

// Apply filters a raw API response. Top-level arrays are filtered
// directly; for envelope objects every array-valued field is filtered
// and the remaining fields pass through unchanged. Rows that are not
// objects are kept as-is.
func (f *Filter) Apply(raw json.RawMessage) (json.RawMessage, error) {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response for filtering: %w", err)
	}

	switch v := decoded.(type) {
	case []any:
		kept, err := f.filterRows(v)
		if err != nil {
			return nil, err
		}
		decoded = kept
	case map[string]any:
		for key, value := range v {
			rows, ok := value.([]any)
			if !ok {
				continue
			}
			kept, err := f.filterRows(rows)
			if err != nil {
				return nil, err
			}
			v[key] = kept
		}
	default:
		return raw, nil
	}

	filtered, err := json.Marshal(decoded)
	if err != nil {
		return nil, fmt.Errorf("failed to encode filtered response: %w", err)
	}
	return filtered, nil
}

func (f *Filter) filterRows(rows []any) ([]any, error) {
	kept := make([]any, 0, len(rows))
	for _, row := range rows {
		fields, ok := row.(map[string]any)
		if !ok {
			kept = append(kept, row)
			continue
		}
		match, err := f.Match(fields)
		if err != nil {
			return nil, err
		}
		if match {
			kept = append(kept, row)
		}
	}
	return kept, nil
}
