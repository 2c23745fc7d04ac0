package semantic

import (
	"fmt"
	"strings"
)

// DiagnosticClass separates the two families of diagnostics the analyzer
// produces.
type DiagnosticClass string

const (
	ClassSymbol DiagnosticClass = "symbol"
	ClassType   DiagnosticClass = "type"
)

// SemanticError is a single structured diagnostic. Its Error form is the
// exact line the analyzer writes to the listing stream.
type SemanticError struct {
	Message string
	Class   DiagnosticClass
	Line    int
}

func (e *SemanticError) Error() string {
	if e.Class == ClassType {
		return fmt.Sprintf("Type error at line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("Symbol error at line %d: %s", e.Line, e.Message)
}

// AnalysisError aggregates every diagnostic of an analysis run.
type AnalysisError struct {
	Errors []string
}

// Error returns a formatted error message containing all semantic errors.
func (e *AnalysisError) Error() string {
	if len(e.Errors) == 0 {
		return "semantic analysis failed"
	}

	if len(e.Errors) == 1 {
		return fmt.Sprintf("semantic error: %s", e.Errors[0])
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("semantic analysis failed with %d errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err))
	}

	return sb.String()
}
