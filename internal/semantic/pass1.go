package semantic

import (
	"fmt"

	"github.com/cwbudde/go-cminus/internal/ast"
	"github.com/cwbudde/go-cminus/internal/token"
	"github.com/cwbudde/go-cminus/internal/types"
)

// builtinLine is the synthetic declaration line recorded for the
// predeclared functions.
const builtinLine = -1

// BuildSymtab runs pass 1: it creates the scope tree, fills the symbol
// table, annotates declarations with their types and compound statements
// with their scope ids, and reports symbol errors to the listing.
//
// The only error return is ErrScopeLimit (or a misuse of the API);
// program errors are accumulated on the analyzer instead.
func (a *Analyzer) BuildSymtab(program *ast.Program) error {
	if program == nil {
		return fmt.Errorf("semantic: cannot analyze nil program")
	}
	if a.global != nil {
		return fmt.Errorf("semantic: BuildSymtab already ran; use a fresh Analyzer per program")
	}

	a.global = a.createScope("")
	a.pushScope(a.global)
	a.insertBuiltins()

	ast.Walk(program, a.insertNode, a.afterInsertNode)

	a.popScope()

	if a.trace {
		fmt.Fprintf(a.listing, "\nSymbol table:\n\n")
		a.WriteSymTab(a.listing)
	}

	return a.limitErr
}

// insertBuiltins binds the two predeclared functions in the global scope:
//
//	input  : () → Integer
//	output : (Integer) → Void
//
// Both are synthesized as real function declarations so call sites check
// arity against them like any other function.
func (a *Analyzer) insertBuiltins() {
	input := &ast.FunctionDecl{
		Token:  token.Token{Type: token.IDENT, Literal: "input"},
		Name:   "input",
		Marker: &ast.TypeMarker{Token: token.Token{Type: token.INTK, Literal: "int"}},
		Body:   &ast.CompoundStatement{ScopeID: -1},
	}
	input.SetType(types.INTEGER)
	a.Insert("input", builtinLine, a.addLoc(), input)

	arg := &ast.ParamDecl{
		Token:  token.Token{Type: token.IDENT, Literal: "arg"},
		Name:   "arg",
		Marker: &ast.TypeMarker{Token: token.Token{Type: token.INTK, Literal: "int"}},
	}
	arg.SetType(types.INTEGER)

	output := &ast.FunctionDecl{
		Token:  token.Token{Type: token.IDENT, Literal: "output"},
		Name:   "output",
		Marker: &ast.TypeMarker{Token: token.Token{Type: token.VOIDK, Literal: "void"}},
		Params: []*ast.ParamDecl{arg},
		Body:   &ast.CompoundStatement{ScopeID: -1},
	}
	output.SetType(types.VOID)
	a.Insert("output", builtinLine, a.addLoc(), output)
}

// insertNode is the pre-order action of pass 1. Returning false stops the
// walker from descending into the node.
func (a *Analyzer) insertNode(node ast.Node) bool {
	switch n := node.(type) {
	case *ast.CompoundStatement:
		if a.preserveScope {
			// The enclosing function already pushed this scope so its
			// parameters and its body share one frame.
			a.preserveScope = false
		} else {
			a.pushScope(a.createScope(a.currentFunction))
		}
		n.ScopeID = a.topScope().ID

	case *ast.Identifier:
		a.recordUse(n, n.Value)

	case *ast.CallExpression:
		a.recordUse(n, n.Name)

	case *ast.FunctionDecl:
		a.currentFunction = n.Name
		if a.LookupTop(n.Name) >= 0 {
			a.symbolError(n, "function already declared")
			return false
		}
		a.Insert(n.Name, n.Pos().Line, a.addLoc(), n)
		a.pushScope(a.createScope(n.Name))
		a.preserveScope = true
		if n.Marker != nil && !n.Marker.IsVoid() {
			n.SetType(types.INTEGER)
		} else {
			n.SetType(types.VOID)
		}

	case *ast.VarDecl:
		if n.Marker != nil && n.Marker.IsVoid() {
			a.symbolError(n, "type should not be void")
			return false
		}
		if n.IsArray {
			n.SetType(types.NewIntegerArray())
		} else {
			n.SetType(types.INTEGER)
		}
		if a.LookupTop(n.Name) < 0 {
			a.Insert(n.Name, n.Pos().Line, a.addLoc(), n)
		} else {
			a.symbolError(n, "symbol already declared in current scope")
		}

	case *ast.ParamDecl:
		if n.Marker != nil && n.Marker.IsVoid() {
			a.symbolError(n.Marker, "invalid parameter type")
		}
		if n.IsArray {
			n.SetType(types.NewIntegerArray())
		} else {
			n.SetType(types.INTEGER)
		}
		if a.LookupTop(n.Name) < 0 {
			a.Insert(n.Name, n.Pos().Line, a.addLoc(), n)
		} else {
			a.symbolError(n, "symbol already declared in current scope")
		}
	}

	return true
}

// recordUse resolves a use site and appends its line to the binding's use
// list, or reports it as undeclared.
func (a *Analyzer) recordUse(node ast.Node, name string) {
	if a.BucketFor(name) == nil {
		a.symbolError(node, "undeclared symbol")
	} else {
		a.AddLineNo(name, node.Pos().Line)
	}
}

// afterInsertNode is the post-order action of pass 1.
func (a *Analyzer) afterInsertNode(node ast.Node) {
	if _, ok := node.(*ast.CompoundStatement); ok {
		a.popScope()
	}
}
