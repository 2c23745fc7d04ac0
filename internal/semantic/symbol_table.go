package semantic

import (
	"fmt"
	"io"

	"github.com/cwbudde/go-cminus/internal/ast"
	"github.com/cwbudde/go-cminus/internal/types"
)

// Insert adds name to the innermost scope with the given declaration line,
// memory location, and declaring node. If the scope already binds the
// name the call is a no-op; the analyzer diagnoses duplicates before
// calling Insert. A negative lineno marks a synthetic binding (the
// built-ins) and is preserved verbatim.
func (a *Analyzer) Insert(name string, lineno, loc int, decl ast.Declaration) {
	top := a.topScope()
	if top == nil {
		return
	}
	top.insert(name, lineno, loc, decl)
}

// BucketFor resolves name across the active scope chain, innermost first.
// When no scope is active, as after the passes have finished, it resolves
// in the global scope. It returns nil when the name is not in scope.
func (a *Analyzer) BucketFor(name string) *Bucket {
	top := a.topScope()
	if top == nil {
		top = a.global
	}
	if top == nil {
		return nil
	}
	return top.Resolve(name)
}

// Lookup returns the memory location of name, or -1 when the name is not
// in scope. Callers probing for existence should prefer BucketFor: a
// location of -1 cannot be distinguished from absence here.
func (a *Analyzer) Lookup(name string) int {
	if b := a.BucketFor(name); b != nil {
		return b.MemLoc
	}
	return -1
}

// LookupTop returns the memory location of name in the innermost scope
// only, or -1 when that scope does not bind it. Used to detect
// redeclarations.
func (a *Analyzer) LookupTop(name string) int {
	top := a.topScope()
	if top == nil {
		return -1
	}
	if b := top.local(name); b != nil {
		return b.MemLoc
	}
	return -1
}

// AddLineNo appends a use line to the bucket that name resolves to. The
// name must already be bound somewhere on the scope chain.
func (a *Analyzer) AddLineNo(name string, lineno int) {
	if b := a.BucketFor(name); b != nil {
		b.Lines = append(b.Lines, lineno)
	}
}

// typeTag renders a type the way the symbol table dump spells it.
func typeTag(t types.Type) string {
	switch {
	case types.IsInteger(t):
		return "Integer"
	case types.IsArray(t):
		return "Array"
	default:
		return "Void"
	}
}

// WriteSymTab writes a formatted listing of every scope, in creation
// order, to w. Each scope block names its nesting level and lists the
// declared names with their type tag and line numbers in insertion order.
func (a *Analyzer) WriteSymTab(w io.Writer) {
	for _, scope := range a.registry {
		fmt.Fprintf(w, "Scope Level : %d\n", scope.Level)
		fmt.Fprintf(w, "Variable Name\tType\tLine Numbers\n")
		fmt.Fprintf(w, "-------------\t----\t------------\n")
		for i := 0; i < tableSize; i++ {
			for b := scope.buckets[i]; b != nil; b = b.next {
				fmt.Fprintf(w, "%-14s ", b.Name)
				fmt.Fprintf(w, "%s\t", typeTag(b.Type()))
				for _, line := range b.Lines {
					fmt.Fprintf(w, "%4d ", line)
				}
				fmt.Fprintln(w)
			}
		}
		fmt.Fprintln(w)
	}
}
