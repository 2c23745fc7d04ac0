// Package ast defines the Abstract Syntax Tree node types for C−.
//
// The tree is produced by an external parser (see internal/astjson for the
// interchange format) and consumed by the semantic analyzer, which writes
// type annotations onto expressions and declarations and a scope id onto
// compound statements.
package ast

import (
	"bytes"

	"github.com/cwbudde/go-cminus/internal/token"
	"github.com/cwbudde/go-cminus/internal/types"
)

// Node is the base interface for all AST nodes.
type Node interface {
	// TokenLiteral returns the literal value of the token this node is
	// associated with.
	TokenLiteral() string

	// String returns a source-like representation of the node for
	// debugging and testing.
	String() string

	// Pos returns the position of the node in the source code for error
	// reporting.
	Pos() token.Position
}

// Expression represents any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement represents a node that performs an action but doesn't produce
// a value.
type Statement interface {
	Node
	statementNode()
}

// Declaration represents a top-level or local declaration.
type Declaration interface {
	Node
	declarationNode()
}

// TypedNode is implemented by nodes that receive a type annotation from
// the semantic analyzer.
type TypedNode interface {
	Node
	GetType() types.Type
	SetType(types.Type)
}

// Program is the root node of the AST. A C− program is a sequence of
// variable and function declarations.
type Program struct {
	Declarations []Declaration
}

func (p *Program) TokenLiteral() string {
	if len(p.Declarations) > 0 {
		return p.Declarations[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, decl := range p.Declarations {
		out.WriteString(decl.String())
		out.WriteString("\n")
	}
	return out.String()
}

func (p *Program) Pos() token.Position {
	if len(p.Declarations) > 0 {
		return p.Declarations[0].Pos()
	}
	return token.Position{Line: 1}
}

// TypeMarker is the parsed `int` or `void` keyword attached to a
// declaration. It is a node of its own because some diagnostics are
// reported against the marker rather than the declaration carrying it.
type TypeMarker struct {
	Token token.Token // The INTK or VOIDK token
}

func (tm *TypeMarker) TokenLiteral() string { return tm.Token.Literal }
func (tm *TypeMarker) String() string       { return tm.Token.Type.String() }
func (tm *TypeMarker) Pos() token.Position  { return tm.Token.Pos }

// IsVoid reports whether the marker names the void type.
func (tm *TypeMarker) IsVoid() bool { return tm.Token.Type == token.VOIDK }
