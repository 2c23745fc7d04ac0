// Package astjson implements the JSON interchange format between the
// external C− parser and this module. Decode turns a parser-produced
// document into the AST the analyzer consumes; EncodeResult serializes an
// analysis outcome for downstream tooling.
//
// The document mirrors the AST one node per object, discriminated by a
// "kind" field:
//
//	{"kind":"program","decls":[
//	  {"kind":"fun","name":"main","returns":"void","line":1,"params":[],
//	   "body":{"kind":"compound","line":1,"decls":[],"stmts":[]}}]}
package astjson

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/cwbudde/go-cminus/internal/ast"
	"github.com/cwbudde/go-cminus/internal/token"
)

var binaryOps = map[string]token.TokenType{
	"+":  token.PLUS,
	"-":  token.MINUS,
	"*":  token.ASTERISK,
	"/":  token.SLASH,
	"<":  token.LT,
	"<=": token.LE,
	">":  token.GT,
	">=": token.GE,
	"==": token.EQ,
	"!=": token.NEQ,
}

// Decode parses a JSON AST document into a Program. It never panics on
// malformed input; the first structural problem is returned as an error
// naming the offending node path.
func Decode(data []byte) (*ast.Program, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("astjson: document is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	if kind := root.Get("kind").String(); kind != "program" {
		return nil, fmt.Errorf("astjson: root kind is %q, want \"program\"", kind)
	}

	program := &ast.Program{}
	for i, decl := range root.Get("decls").Array() {
		path := fmt.Sprintf("decls.%d", i)
		d, err := decodeDecl(decl, path)
		if err != nil {
			return nil, err
		}
		program.Declarations = append(program.Declarations, d)
	}
	return program, nil
}

func line(node gjson.Result) token.Position {
	return token.Position{Line: int(node.Get("line").Int())}
}

func marker(node gjson.Result, field, path string) (*ast.TypeMarker, error) {
	switch node.Get(field).String() {
	case "int":
		return &ast.TypeMarker{Token: token.Token{
			Type:    token.INTK,
			Literal: "int",
			Pos:     line(node),
		}}, nil
	case "void":
		return &ast.TypeMarker{Token: token.Token{
			Type:    token.VOIDK,
			Literal: "void",
			Pos:     line(node),
		}}, nil
	default:
		return nil, fmt.Errorf("astjson: %s: %s must be \"int\" or \"void\"", path, field)
	}
}

func identTok(node gjson.Result, name string) token.Token {
	return token.Token{Type: token.IDENT, Literal: name, Pos: line(node)}
}

func decodeDecl(node gjson.Result, path string) (ast.Declaration, error) {
	switch kind := node.Get("kind").String(); kind {
	case "fun":
		return decodeFun(node, path)
	case "var":
		return decodeVar(node, path)
	default:
		return nil, fmt.Errorf("astjson: %s: unknown declaration kind %q", path, kind)
	}
}

func decodeFun(node gjson.Result, path string) (*ast.FunctionDecl, error) {
	name := node.Get("name").String()
	if name == "" {
		return nil, fmt.Errorf("astjson: %s: function declaration without name", path)
	}

	ret, err := marker(node, "returns", path)
	if err != nil {
		return nil, err
	}

	fun := &ast.FunctionDecl{
		Token:  identTok(node, name),
		Name:   name,
		Marker: ret,
	}

	for i, p := range node.Get("params").Array() {
		param, err := decodeParam(p, fmt.Sprintf("%s.params.%d", path, i))
		if err != nil {
			return nil, err
		}
		fun.Params = append(fun.Params, param)
	}

	body := node.Get("body")
	if !body.Exists() {
		return nil, fmt.Errorf("astjson: %s: function declaration without body", path)
	}
	compound, err := decodeCompound(body, path+".body")
	if err != nil {
		return nil, err
	}
	fun.Body = compound

	return fun, nil
}

func decodeParam(node gjson.Result, path string) (*ast.ParamDecl, error) {
	name := node.Get("name").String()
	if name == "" {
		return nil, fmt.Errorf("astjson: %s: parameter without name", path)
	}
	m, err := marker(node, "type", path)
	if err != nil {
		return nil, err
	}
	return &ast.ParamDecl{
		Token:   identTok(node, name),
		Name:    name,
		Marker:  m,
		IsArray: node.Get("array").Bool(),
	}, nil
}

func decodeVar(node gjson.Result, path string) (*ast.VarDecl, error) {
	name := node.Get("name").String()
	if name == "" {
		return nil, fmt.Errorf("astjson: %s: variable declaration without name", path)
	}
	m, err := marker(node, "type", path)
	if err != nil {
		return nil, err
	}
	return &ast.VarDecl{
		Token:   identTok(node, name),
		Name:    name,
		Marker:  m,
		IsArray: node.Get("array").Bool(),
		Size:    node.Get("size").Int(),
	}, nil
}

func decodeCompound(node gjson.Result, path string) (*ast.CompoundStatement, error) {
	if kind := node.Get("kind").String(); kind != "compound" {
		return nil, fmt.Errorf("astjson: %s: kind is %q, want \"compound\"", path, kind)
	}

	compound := &ast.CompoundStatement{
		Token:   token.Token{Type: token.LBRACE, Literal: "{", Pos: line(node)},
		ScopeID: -1,
	}

	for i, d := range node.Get("decls").Array() {
		decl, err := decodeVar(d, fmt.Sprintf("%s.decls.%d", path, i))
		if err != nil {
			return nil, err
		}
		compound.Decls = append(compound.Decls, decl)
	}
	for i, s := range node.Get("stmts").Array() {
		stmt, err := decodeStmt(s, fmt.Sprintf("%s.stmts.%d", path, i))
		if err != nil {
			return nil, err
		}
		compound.Statements = append(compound.Statements, stmt)
	}
	return compound, nil
}

func decodeStmt(node gjson.Result, path string) (ast.Statement, error) {
	switch kind := node.Get("kind").String(); kind {
	case "compound":
		return decodeCompound(node, path)

	case "if":
		cond, err := decodeExpr(node.Get("cond"), path+".cond")
		if err != nil {
			return nil, err
		}
		then, err := decodeStmt(node.Get("then"), path+".then")
		if err != nil {
			return nil, err
		}
		stmt := &ast.IfStatement{
			Token:       token.Token{Type: token.IF, Literal: "if", Pos: line(node)},
			Condition:   cond,
			Consequence: then,
		}
		if alt := node.Get("else"); alt.Exists() {
			stmt.Alternative, err = decodeStmt(alt, path+".else")
			if err != nil {
				return nil, err
			}
		}
		return stmt, nil

	case "while":
		cond, err := decodeExpr(node.Get("cond"), path+".cond")
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(node.Get("body"), path+".body")
		if err != nil {
			return nil, err
		}
		return &ast.WhileStatement{
			Token:     token.Token{Type: token.WHILE, Literal: "while", Pos: line(node)},
			Condition: cond,
			Body:      body,
		}, nil

	case "return":
		stmt := &ast.ReturnStatement{
			Token: token.Token{Type: token.RETURN, Literal: "return", Pos: line(node)},
		}
		if value := node.Get("value"); value.Exists() {
			expr, err := decodeExpr(value, path+".value")
			if err != nil {
				return nil, err
			}
			stmt.Value = expr
		}
		return stmt, nil

	case "expr":
		stmt := &ast.ExpressionStatement{
			Token: token.Token{Type: token.SEMI, Literal: ";", Pos: line(node)},
		}
		if expr := node.Get("expr"); expr.Exists() {
			e, err := decodeExpr(expr, path+".expr")
			if err != nil {
				return nil, err
			}
			stmt.Expression = e
		}
		return stmt, nil

	default:
		return nil, fmt.Errorf("astjson: %s: unknown statement kind %q", path, kind)
	}
}

func decodeExpr(node gjson.Result, path string) (ast.Expression, error) {
	if !node.Exists() {
		return nil, fmt.Errorf("astjson: %s: missing expression", path)
	}

	switch kind := node.Get("kind").String(); kind {
	case "num":
		value := node.Get("value")
		return &ast.IntegerLiteral{
			Token: token.Token{Type: token.INT, Literal: value.Raw, Pos: line(node)},
			Value: value.Int(),
		}, nil

	case "id":
		name := node.Get("name").String()
		if name == "" {
			return nil, fmt.Errorf("astjson: %s: identifier without name", path)
		}
		return &ast.Identifier{Token: identTok(node, name), Value: name}, nil

	case "index":
		name := node.Get("name").String()
		if name == "" {
			return nil, fmt.Errorf("astjson: %s: subscript without array name", path)
		}
		index, err := decodeExpr(node.Get("index"), path+".index")
		if err != nil {
			return nil, err
		}
		return &ast.IndexExpression{
			Token: token.Token{Type: token.LBRACKET, Literal: "[", Pos: line(node)},
			Left:  &ast.Identifier{Token: identTok(node, name), Value: name},
			Index: index,
		}, nil

	case "call":
		name := node.Get("name").String()
		if name == "" {
			return nil, fmt.Errorf("astjson: %s: call without callee name", path)
		}
		call := &ast.CallExpression{Token: identTok(node, name), Name: name}
		for i, arg := range node.Get("args").Array() {
			expr, err := decodeExpr(arg, fmt.Sprintf("%s.args.%d", path, i))
			if err != nil {
				return nil, err
			}
			call.Arguments = append(call.Arguments, expr)
		}
		return call, nil

	case "assign":
		target, err := decodeExpr(node.Get("target"), path+".target")
		if err != nil {
			return nil, err
		}
		switch target.(type) {
		case *ast.Identifier, *ast.IndexExpression:
		default:
			return nil, fmt.Errorf("astjson: %s.target: assignment target must be a variable", path)
		}
		value, err := decodeExpr(node.Get("value"), path+".value")
		if err != nil {
			return nil, err
		}
		return &ast.AssignExpression{
			Token:  token.Token{Type: token.ASSIGN, Literal: "=", Pos: line(node)},
			Target: target,
			Value:  value,
		}, nil

	case "binop":
		opName := node.Get("op").String()
		op, ok := binaryOps[opName]
		if !ok {
			return nil, fmt.Errorf("astjson: %s: unknown operator %q", path, opName)
		}
		left, err := decodeExpr(node.Get("left"), path+".left")
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(node.Get("right"), path+".right")
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpression{
			Token:    token.Token{Type: op, Literal: opName, Pos: line(node)},
			Left:     left,
			Operator: op,
			Right:    right,
		}, nil

	default:
		return nil, fmt.Errorf("astjson: %s: unknown expression kind %q", path, kind)
	}
}
