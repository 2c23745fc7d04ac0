// Package ast provides test helper functions for creating common AST nodes.
// These reduce boilerplate and make test code more readable.
//
// Usage Examples:
//
//	// int x; at line 3
//	decl := NewTestVarDecl("x", 3)
//
//	// void main(void) { ... }
//	fn := NewTestFunctionDecl("main", true, nil, NewTestCompound(1), 1)
//
//	// x = input()
//	assign := NewTestAssign(
//		NewTestIdentifier("x", 4),
//		NewTestCall("input", nil, 4),
//		4,
//	)
package ast

import (
	"strconv"

	"github.com/cwbudde/go-cminus/internal/token"
)

func identToken(name string, line int) token.Token {
	return token.Token{
		Type:    token.IDENT,
		Literal: name,
		Pos:     token.Position{Line: line},
	}
}

// NewTestTypeMarker creates a TypeMarker for int or void.
func NewTestTypeMarker(void bool, line int) *TypeMarker {
	tt := token.INTK
	lit := "int"
	if void {
		tt = token.VOIDK
		lit = "void"
	}
	return &TypeMarker{Token: token.Token{
		Type:    tt,
		Literal: lit,
		Pos:     token.Position{Line: line},
	}}
}

// NewTestIdentifier creates an Identifier with the given name and line.
func NewTestIdentifier(name string, line int) *Identifier {
	return &Identifier{Token: identToken(name, line), Value: name}
}

// NewTestIntegerLiteral creates an IntegerLiteral with the given value.
func NewTestIntegerLiteral(value int64, line int) *IntegerLiteral {
	lit := strconv.FormatInt(value, 10)
	return &IntegerLiteral{
		Token: token.Token{
			Type:    token.INT,
			Literal: lit,
			Pos:     token.Position{Line: line},
		},
		Value: value,
	}
}

// NewTestVarDecl creates a scalar variable declaration `int name;`.
func NewTestVarDecl(name string, line int) *VarDecl {
	return &VarDecl{
		Token:  identToken(name, line),
		Name:   name,
		Marker: NewTestTypeMarker(false, line),
	}
}

// NewTestVoidVarDecl creates the invalid declaration `void name;`.
func NewTestVoidVarDecl(name string, line int) *VarDecl {
	return &VarDecl{
		Token:  identToken(name, line),
		Name:   name,
		Marker: NewTestTypeMarker(true, line),
	}
}

// NewTestArrayDecl creates an array declaration `int name[size];`.
func NewTestArrayDecl(name string, size int64, line int) *VarDecl {
	return &VarDecl{
		Token:   identToken(name, line),
		Name:    name,
		Marker:  NewTestTypeMarker(false, line),
		IsArray: true,
		Size:    size,
	}
}

// NewTestParam creates a scalar parameter `int name`.
func NewTestParam(name string, line int) *ParamDecl {
	return &ParamDecl{
		Token:  identToken(name, line),
		Name:   name,
		Marker: NewTestTypeMarker(false, line),
	}
}

// NewTestArrayParam creates an array parameter `int name[]`.
func NewTestArrayParam(name string, line int) *ParamDecl {
	return &ParamDecl{
		Token:   identToken(name, line),
		Name:    name,
		Marker:  NewTestTypeMarker(false, line),
		IsArray: true,
	}
}

// NewTestVoidParam creates the invalid parameter `void name`.
func NewTestVoidParam(name string, line int) *ParamDecl {
	return &ParamDecl{
		Token:  identToken(name, line),
		Name:   name,
		Marker: NewTestTypeMarker(true, line),
	}
}

// NewTestCompound creates an empty compound statement; declarations and
// statements can be appended to the returned node.
func NewTestCompound(line int) *CompoundStatement {
	return &CompoundStatement{
		Token: token.Token{
			Type:    token.LBRACE,
			Literal: "{",
			Pos:     token.Position{Line: line},
		},
		ScopeID: -1,
	}
}

// NewTestFunctionDecl creates a function declaration with the given
// parameters and body.
func NewTestFunctionDecl(name string, void bool, params []*ParamDecl, body *CompoundStatement, line int) *FunctionDecl {
	return &FunctionDecl{
		Token:  identToken(name, line),
		Name:   name,
		Marker: NewTestTypeMarker(void, line),
		Params: params,
		Body:   body,
	}
}

// NewTestBinary creates a binary expression with the given operator token
// type.
func NewTestBinary(left Expression, op token.TokenType, right Expression, line int) *BinaryExpression {
	return &BinaryExpression{
		Token: token.Token{
			Type:    op,
			Literal: op.String(),
			Pos:     token.Position{Line: line},
		},
		Left:     left,
		Operator: op,
		Right:    right,
	}
}

// NewTestAssign creates an assignment expression.
func NewTestAssign(target, value Expression, line int) *AssignExpression {
	return &AssignExpression{
		Token: token.Token{
			Type:    token.ASSIGN,
			Literal: "=",
			Pos:     token.Position{Line: line},
		},
		Target: target,
		Value:  value,
	}
}

// NewTestIndex creates a subscript expression `name[index]`.
func NewTestIndex(name string, index Expression, line int) *IndexExpression {
	return &IndexExpression{
		Token: token.Token{
			Type:    token.LBRACKET,
			Literal: "[",
			Pos:     token.Position{Line: line},
		},
		Left:  NewTestIdentifier(name, line),
		Index: index,
	}
}

// NewTestCall creates a call expression `name(args...)`.
func NewTestCall(name string, args []Expression, line int) *CallExpression {
	return &CallExpression{
		Token:     identToken(name, line),
		Name:      name,
		Arguments: args,
	}
}

// NewTestExprStatement wraps an expression as a statement.
func NewTestExprStatement(expr Expression, line int) *ExpressionStatement {
	return &ExpressionStatement{
		Token: token.Token{
			Type:    token.SEMI,
			Literal: ";",
			Pos:     token.Position{Line: line},
		},
		Expression: expr,
	}
}

// NewTestReturn creates a return statement; value may be nil.
func NewTestReturn(value Expression, line int) *ReturnStatement {
	return &ReturnStatement{
		Token: token.Token{
			Type:    token.RETURN,
			Literal: "return",
			Pos:     token.Position{Line: line},
		},
		Value: value,
	}
}
