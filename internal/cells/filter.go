package cells

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// RecordEnv defines the variables available during filter expression
// evaluation.
type RecordEnv struct {
	Plugin   string `expr:"plugin"`
	EditorID string `expr:"edid"`
	FormID   string `expr:"formid"`
}

// RecordFilter decides which parsed records survive into the output.
// The zero filter keeps everything.
type RecordFilter struct {
	// Substrings matched case-insensitively against the editor ID.
	exclusions []string

	// Advanced filtering
	filterProgram *vm.Program
}

// NewRecordFilter initializes a new empty filter.
func NewRecordFilter() *RecordFilter {
	return &RecordFilter{}
}

// WithExclusions excludes records whose lowercased editor ID contains any
// of the given substrings.
func (f *RecordFilter) WithExclusions(substrings []string) *RecordFilter {
	lowered := make([]string, 0, len(substrings))
	for _, s := range substrings {
		lowered = append(lowered, strings.ToLower(s))
	}
	f.exclusions = lowered
	return f
}

// WithFilterExpression applies a compiled Expr program for advanced
// filtering.
func (f *RecordFilter) WithFilterExpression(program *vm.Program) *RecordFilter {
	f.filterProgram = program
	return f
}

// CompileFilterExpression compiles a filter expression against the record
// environment. The expression must evaluate to a boolean.
func CompileFilterExpression(expression string) (*vm.Program, error) {
	program, err := expr.Compile(expression, expr.Env(RecordEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return program, nil
}

// Keep reports whether the record passes every filter criterion.
func (f *RecordFilter) Keep(record Record) (bool, error) {
	lowered := strings.ToLower(record.EditorID)
	for _, substring := range f.exclusions {
		if strings.Contains(lowered, substring) {
			return false, nil
		}
	}

	if f.filterProgram == nil {
		return true, nil
	}

	env := RecordEnv{
		Plugin:   record.Plugin,
		EditorID: record.EditorID,
		FormID:   record.FormID,
	}
	result, err := expr.Run(f.filterProgram, env)
	if err != nil {
		return false, fmt.Errorf("filter expression failed: %w", err)
	}
	keep, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression returned %T, want bool", result)
	}
	return keep, nil
}
