package semantic

import (
	"fmt"

	"github.com/cwbudde/go-cminus/internal/ast"
	"github.com/cwbudde/go-cminus/internal/token"
	"github.com/cwbudde/go-cminus/internal/types"
)

// TypeCheck runs pass 2: it re-enters the scopes recorded by pass 1,
// propagates expression types bottom-up, and reports type errors to the
// listing. On a tree that passed analysis once, running TypeCheck again
// produces no diagnostics and identical type annotations.
func (a *Analyzer) TypeCheck(program *ast.Program) error {
	if program == nil {
		return fmt.Errorf("semantic: cannot analyze nil program")
	}
	if a.global == nil {
		return fmt.Errorf("semantic: BuildSymtab must run before TypeCheck")
	}

	a.pushScope(a.global)
	ast.Walk(program, a.beforeCheckNode, a.checkNode)
	a.popScope()

	return nil
}

// exprType reads the type annotation of an expression; nil (unset after
// an earlier error) is treated as Void by the callers' checks.
func exprType(e ast.Expression) types.Type {
	if e == nil {
		return nil
	}
	if tn, ok := e.(ast.TypedNode); ok {
		return tn.GetType()
	}
	return nil
}

// beforeCheckNode is the pre-order action of pass 2: it tracks the
// current function and re-enters compound scopes.
func (a *Analyzer) beforeCheckNode(node ast.Node) bool {
	switch n := node.(type) {
	case *ast.FunctionDecl:
		a.currentFunction = n.Name
	case *ast.CompoundStatement:
		if n.ScopeID >= 0 && n.ScopeID < len(a.registry) {
			a.pushScope(a.registry[n.ScopeID])
		}
	}
	return true
}

// checkNode is the post-order action of pass 2, where the actual type
// checking happens: children carry their types by the time their parent
// is checked.
func (a *Analyzer) checkNode(node ast.Node) {
	switch n := node.(type) {
	case *ast.CompoundStatement:
		if n.ScopeID >= 0 && n.ScopeID < len(a.registry) {
			a.popScope()
		}

	case *ast.WhileStatement:
		if types.IsVoid(exprType(n.Condition)) {
			a.typeError(n.Condition, "while test should not have void value")
		}

	case *ast.ReturnStatement:
		a.checkReturn(n)

	case *ast.IntegerLiteral:
		n.SetType(types.INTEGER)

	case *ast.Identifier:
		if bucket := a.BucketFor(n.Value); bucket != nil {
			n.SetType(bucket.Type())
		}

	case *ast.IndexExpression:
		a.checkIndex(n)

	case *ast.BinaryExpression:
		a.checkOperands(n, n.Operator, n.Left, n.Right)

	case *ast.AssignExpression:
		a.checkOperands(n, token.ASSIGN, n.Target, n.Value)

	case *ast.CallExpression:
		a.checkCall(n)
	}
}

// checkReturn verifies a return statement against the enclosing
// function's declared return type.
func (a *Analyzer) checkReturn(ret *ast.ReturnStatement) {
	bucket := a.BucketFor(a.currentFunction)
	if bucket == nil {
		return
	}
	funDecl, ok := bucket.Decl.(*ast.FunctionDecl)
	if !ok {
		return
	}

	funType := funDecl.GetType()
	expr := ret.Value

	switch {
	case types.IsVoid(funType) && expr != nil && !types.IsVoid(exprType(expr)):
		a.typeError(ret, "unexpected return value")
	case types.IsInteger(funType) && (expr == nil || types.IsVoid(exprType(expr))):
		a.typeError(ret, "expected return value")
	}
}

// checkIndex verifies a subscripted array access: the base must be a
// declared array and the index must be an integer. The whole expression
// then has type Integer.
func (a *Analyzer) checkIndex(idx *ast.IndexExpression) {
	if idx.Left == nil {
		return
	}
	bucket := a.BucketFor(idx.Left.Value)
	if bucket == nil {
		// Pass 1 already reported the undeclared name.
		return
	}

	if !types.IsArray(bucket.Type()) {
		a.typeError(idx, "expected array")
	} else if !types.IsInteger(exprType(idx.Index)) {
		a.typeError(idx, "indexed expression must be of type integer")
	} else {
		idx.SetType(types.INTEGER)
	}
}

// checkOperands applies the binary operand rules shared by the arithmetic
// and relational operators and by assignment. On success the result type
// is Integer; on error the result type is left unset so enclosing checks
// short-circuit.
func (a *Analyzer) checkOperands(node ast.TypedNode, op token.TokenType, left, right ast.Expression) {
	t1 := exprType(left)
	t2 := exprType(right)

	switch {
	case types.IsVoid(t1) || types.IsVoid(t2):
		a.typeError(node, "operands must not have void type")
	case types.IsArray(t1) && types.IsArray(t2):
		a.typeError(node, "operands must not both be arrays")
	case op == token.MINUS && types.IsInteger(t1) && types.IsArray(t2):
		a.typeError(node, "invalid operands")
	case op.IsMulDiv() && (types.IsArray(t1) || types.IsArray(t2)):
		a.typeError(node, "invalid operands")
	default:
		node.SetType(types.INTEGER)
	}
}

// checkCall verifies a call site: the callee must be a function, the
// argument list must match the formal parameter list in length, and no
// argument may be void. The call's type is the function's return type
// regardless of the argument outcome.
func (a *Analyzer) checkCall(call *ast.CallExpression) {
	bucket := a.BucketFor(call.Name)
	if bucket == nil {
		// Pass 1 already reported the undeclared name.
		return
	}

	funDecl, ok := bucket.Decl.(*ast.FunctionDecl)
	if !ok {
		a.typeError(call, "expected function")
		return
	}

	args := call.Arguments
	params := funDecl.Params

	walked := 0
	for i, arg := range args {
		if i >= len(params) {
			a.typeError(arg, "wrong number of parameters")
			break
		}
		if types.IsVoid(exprType(arg)) {
			a.typeError(arg, "cannot pass void value")
			break
		}
		walked++
	}
	if walked == len(args) && len(args) < len(params) {
		if len(args) > 0 {
			a.typeError(args[0], "wrong number of parameters")
		} else {
			a.typeError(call, "wrong number of parameters")
		}
	}

	call.SetType(funDecl.GetType())
}
