package ast

import (
	"bytes"

	"github.com/cwbudde/go-cminus/internal/token"
)

// CompoundStatement represents a braced block: a local declaration list
// followed by a statement list. Pass 1 of the analyzer records the id of
// the scope owning this block in ScopeID; pass 2 re-enters that scope.
type CompoundStatement struct {
	Decls      []*VarDecl
	Statements []Statement
	Token      token.Token // The LBRACE token
	ScopeID    int         // -1 until pass 1 has run
}

func (cs *CompoundStatement) statementNode()       {}
func (cs *CompoundStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *CompoundStatement) Pos() token.Position  { return cs.Token.Pos }

func (cs *CompoundStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, d := range cs.Decls {
		out.WriteString(d.String())
		out.WriteString(" ")
	}
	for _, s := range cs.Statements {
		out.WriteString(s.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// IfStatement represents an if or if-else conditional.
// Examples:
//
//	if (x < 0) x = 0;
//	if (x < y) { ... } else { ... }
type IfStatement struct {
	Condition   Expression
	Consequence Statement
	Alternative Statement // nil when there is no else branch
	Token       token.Token
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) Pos() token.Position  { return is.Token.Pos }

func (is *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	if is.Condition != nil {
		out.WriteString(is.Condition.String())
	}
	out.WriteString(") ")
	if is.Consequence != nil {
		out.WriteString(is.Consequence.String())
	}
	if is.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(is.Alternative.String())
	}
	return out.String()
}

// WhileStatement represents a while loop.
// Example:
//
//	while (i < n) { ... }
type WhileStatement struct {
	Condition Expression
	Body      Statement
	Token     token.Token
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) Pos() token.Position  { return ws.Token.Pos }

func (ws *WhileStatement) String() string {
	var out bytes.Buffer
	out.WriteString("while (")
	if ws.Condition != nil {
		out.WriteString(ws.Condition.String())
	}
	out.WriteString(") ")
	if ws.Body != nil {
		out.WriteString(ws.Body.String())
	}
	return out.String()
}

// ReturnStatement represents a return with an optional value.
// Examples:
//
//	return;
//	return x + 1;
type ReturnStatement struct {
	Value Expression // nil for a bare return
	Token token.Token
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) Pos() token.Position  { return rs.Token.Pos }

func (rs *ReturnStatement) String() string {
	var out bytes.Buffer
	out.WriteString("return")
	if rs.Value != nil {
		out.WriteString(" ")
		out.WriteString(rs.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

// ExpressionStatement wraps an expression used as a statement. The
// expression is nil for the empty statement `;`.
type ExpressionStatement struct {
	Expression Expression
	Token      token.Token
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) Pos() token.Position  { return es.Token.Pos }

func (es *ExpressionStatement) String() string {
	if es.Expression == nil {
		return ";"
	}
	return es.Expression.String() + ";"
}
