// Package semantic implements the C− semantic analysis core: a
// hierarchically scoped symbol table built in one traversal of the AST,
// and a type-check pass that re-enters the recorded scopes and verifies
// the language's type rules.
//
// Analysis is strictly single-threaded. One Analyzer analyzes one
// program: run BuildSymtab, then TypeCheck, then inspect Failed, Errors,
// or the symbol table. Diagnostics are accumulated, never fatal; the only
// hard failure is the scope-capacity limit.
package semantic

import (
	"io"

	"github.com/cwbudde/go-cminus/internal/ast"
)

// Analyzer carries the whole analysis context: the scope stack with its
// per-scope location counters, the registry of every scope ever created,
// the ambient traversal state, and the diagnostic sink. The context is
// explicit so several analyses can run in one process without
// interference.
type Analyzer struct {
	listing io.Writer

	global   *Scope
	registry []*Scope
	stack    []*Scope
	locs     []int

	currentFunction string
	preserveScope   bool

	errors    []string
	semErrors []*SemanticError
	limitErr  error
	failed    bool
	trace     bool
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithListing directs diagnostics (and the traced symbol table dump) to w
// instead of discarding them. The listing carries plain line-oriented
// text, matching the compiler's listing-file model.
func WithListing(w io.Writer) Option {
	return func(a *Analyzer) { a.listing = w }
}

// WithTrace makes BuildSymtab write the symbol table dump to the listing
// once the table is complete.
func WithTrace(trace bool) Option {
	return func(a *Analyzer) { a.trace = trace }
}

// NewAnalyzer creates a semantic analyzer. Without options, diagnostics
// are still recorded on the analyzer but the listing output is discarded.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{listing: io.Discard}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// symbolError reports a symbol diagnostic at the node's line and sets the
// error flag. Analysis continues.
func (a *Analyzer) symbolError(node ast.Node, message string) {
	a.report(&SemanticError{Class: ClassSymbol, Line: node.Pos().Line, Message: message})
}

// typeError reports a type diagnostic at the node's line and sets the
// error flag. Analysis continues.
func (a *Analyzer) typeError(node ast.Node, message string) {
	a.report(&SemanticError{Class: ClassType, Line: node.Pos().Line, Message: message})
}

func (a *Analyzer) report(err *SemanticError) {
	a.failed = true
	a.semErrors = append(a.semErrors, err)
	a.errors = append(a.errors, err.Error())
	io.WriteString(a.listing, err.Error()+"\n")
}

// Failed reports whether any diagnostic has been emitted. Downstream
// phases consult this flag before consuming the annotated tree.
func (a *Analyzer) Failed() bool {
	return a.failed
}

// Errors returns every diagnostic emitted so far, in listing form.
func (a *Analyzer) Errors() []string {
	return a.errors
}

// SemanticErrors returns the structured form of every diagnostic.
func (a *Analyzer) SemanticErrors() []*SemanticError {
	return a.semErrors
}

// Err returns nil when analysis succeeded, or an aggregate error carrying
// every diagnostic.
func (a *Analyzer) Err() error {
	if !a.failed {
		return nil
	}
	return &AnalysisError{Errors: a.errors}
}

// GlobalScope returns the global scope, for phases that run after
// analysis. It is nil until BuildSymtab has run.
func (a *Analyzer) GlobalScope() *Scope {
	return a.global
}

// Scopes returns every scope in creation order.
func (a *Analyzer) Scopes() []*Scope {
	return a.registry
}
