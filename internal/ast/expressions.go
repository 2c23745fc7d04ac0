package ast

import (
	"bytes"
	"strings"

	"github.com/cwbudde/go-cminus/internal/token"
	"github.com/cwbudde/go-cminus/internal/types"
)

// Identifier represents a plain identifier use (variable or array name).
type Identifier struct {
	Type  types.Type // Set by the analyzer from the declaration
	Value string
	Token token.Token // The IDENT token
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }
func (i *Identifier) Pos() token.Position  { return i.Token.Pos }

func (i *Identifier) GetType() types.Type    { return i.Type }
func (i *Identifier) SetType(typ types.Type) { i.Type = typ }

// IntegerLiteral represents an integer constant.
type IntegerLiteral struct {
	Type  types.Type // Always Integer after pass 2
	Value int64
	Token token.Token // The INT token
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return il.Token.Literal }
func (il *IntegerLiteral) Pos() token.Position  { return il.Token.Pos }

func (il *IntegerLiteral) GetType() types.Type    { return il.Type }
func (il *IntegerLiteral) SetType(typ types.Type) { il.Type = typ }

// IndexExpression represents a subscripted array access, e.g. a[i].
type IndexExpression struct {
	Type  types.Type
	Left  *Identifier // The array name
	Index Expression
	Token token.Token // The LBRACKET token
}

func (ie *IndexExpression) expressionNode()      {}
func (ie *IndexExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IndexExpression) Pos() token.Position  { return ie.Token.Pos }

func (ie *IndexExpression) String() string {
	var out bytes.Buffer
	if ie.Left != nil {
		out.WriteString(ie.Left.String())
	}
	out.WriteString("[")
	if ie.Index != nil {
		out.WriteString(ie.Index.String())
	}
	out.WriteString("]")
	return out.String()
}

func (ie *IndexExpression) GetType() types.Type    { return ie.Type }
func (ie *IndexExpression) SetType(typ types.Type) { ie.Type = typ }

// BinaryExpression represents an arithmetic or relational operation,
// e.g. a + b, x < y.
type BinaryExpression struct {
	Type     types.Type
	Left     Expression
	Right    Expression
	Operator token.TokenType
	Token    token.Token // The operator token
}

func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Literal }
func (be *BinaryExpression) Pos() token.Position  { return be.Token.Pos }

func (be *BinaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	if be.Left != nil {
		out.WriteString(be.Left.String())
	}
	out.WriteString(" " + be.Operator.String() + " ")
	if be.Right != nil {
		out.WriteString(be.Right.String())
	}
	out.WriteString(")")
	return out.String()
}

func (be *BinaryExpression) GetType() types.Type    { return be.Type }
func (be *BinaryExpression) SetType(typ types.Type) { be.Type = typ }

// AssignExpression represents an assignment, e.g. x = 1 or a[i] = x.
// Assignment is an expression in C−; its operands obey the same rules as
// the other binary operators.
type AssignExpression struct {
	Type   types.Type
	Target Expression // Identifier or IndexExpression
	Value  Expression
	Token  token.Token // The ASSIGN token
}

func (ae *AssignExpression) expressionNode()      {}
func (ae *AssignExpression) TokenLiteral() string { return ae.Token.Literal }
func (ae *AssignExpression) Pos() token.Position  { return ae.Token.Pos }

func (ae *AssignExpression) String() string {
	var out bytes.Buffer
	if ae.Target != nil {
		out.WriteString(ae.Target.String())
	}
	out.WriteString(" = ")
	if ae.Value != nil {
		out.WriteString(ae.Value.String())
	}
	return out.String()
}

func (ae *AssignExpression) GetType() types.Type    { return ae.Type }
func (ae *AssignExpression) SetType(typ types.Type) { ae.Type = typ }

// CallExpression represents a function call, e.g. gcd(x, y) or input().
// The callee is a bare name in C−, so it is kept as an attribute rather
// than a child expression.
type CallExpression struct {
	Type      types.Type
	Name      string
	Arguments []Expression
	Token     token.Token // The IDENT token of the callee
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) Pos() token.Position  { return ce.Token.Pos }

func (ce *CallExpression) String() string {
	args := make([]string, len(ce.Arguments))
	for i, a := range ce.Arguments {
		args[i] = a.String()
	}
	return ce.Name + "(" + strings.Join(args, ", ") + ")"
}

func (ce *CallExpression) GetType() types.Type    { return ce.Type }
func (ce *CallExpression) SetType(typ types.Type) { ce.Type = typ }
