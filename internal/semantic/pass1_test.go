package semantic

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/go-cminus/internal/ast"
	"github.com/cwbudde/go-cminus/internal/token"
	"github.com/cwbudde/go-cminus/internal/types"
)

// ============================================================================
// Symbol Errors
// ============================================================================

func TestUndeclaredSymbol(t *testing.T) {
	// void main(void) { x = 1; }
	prog := program(voidMain(1,
		ast.NewTestExprStatement(ast.NewTestAssign(
			ast.NewTestIdentifier("x", 2), ast.NewTestIntegerLiteral(1, 2), 2), 2),
	))
	a := expectError(t, prog, "undeclared symbol")

	if a.SemanticErrors()[0].Line != 2 {
		t.Errorf("error line = %d, want 2", a.SemanticErrors()[0].Line)
	}
	if a.SemanticErrors()[0].Class != ClassSymbol {
		t.Errorf("error class = %q, want symbol", a.SemanticErrors()[0].Class)
	}
}

func TestUndeclaredCall(t *testing.T) {
	// void main(void) { f(); }
	prog := program(voidMain(1,
		ast.NewTestExprStatement(ast.NewTestCall("f", nil, 2), 2),
	))
	expectError(t, prog, "undeclared symbol")
}

func TestFunctionAlreadyDeclared(t *testing.T) {
	// int f(void) { return 0; } int f(void) { return 1; }
	first := ast.NewTestCompound(1)
	first.Statements = []ast.Statement{ast.NewTestReturn(ast.NewTestIntegerLiteral(0, 1), 1)}
	second := ast.NewTestCompound(2)
	second.Statements = []ast.Statement{ast.NewTestReturn(ast.NewTestIntegerLiteral(1, 2), 2)}

	prog := program(
		ast.NewTestFunctionDecl("f", false, nil, first, 1),
		ast.NewTestFunctionDecl("f", false, nil, second, 2),
	)
	a := expectError(t, prog, "function already declared")

	if a.SemanticErrors()[0].Line != 2 {
		t.Errorf("error line = %d, want 2", a.SemanticErrors()[0].Line)
	}
}

func TestVoidVariable(t *testing.T) {
	// void main(void) { void y; }
	body := ast.NewTestCompound(1)
	body.Decls = []*ast.VarDecl{ast.NewTestVoidVarDecl("y", 2)}
	prog := program(ast.NewTestFunctionDecl("main", true, nil, body, 1))
	expectError(t, prog, "type should not be void")
}

func TestVoidVariableNotInserted(t *testing.T) {
	// A declaration-level error skips the insert; uses then cascade to
	// "undeclared symbol", which is acceptable.
	body := ast.NewTestCompound(1)
	body.Decls = []*ast.VarDecl{ast.NewTestVoidVarDecl("y", 2)}
	body.Statements = []ast.Statement{
		ast.NewTestExprStatement(ast.NewTestAssign(
			ast.NewTestIdentifier("y", 3), ast.NewTestIntegerLiteral(0, 3), 3), 3),
	}
	prog := program(ast.NewTestFunctionDecl("main", true, nil, body, 1))
	a := expectError(t, prog, "type should not be void")
	expectErrorIn(t, a, "undeclared symbol")
}

func TestDuplicateLocal(t *testing.T) {
	// void main(void) { int x; int x; }
	body := ast.NewTestCompound(1)
	body.Decls = []*ast.VarDecl{
		ast.NewTestVarDecl("x", 2),
		ast.NewTestVarDecl("x", 3),
	}
	prog := program(ast.NewTestFunctionDecl("main", true, nil, body, 1))
	expectError(t, prog, "symbol already declared in current scope")
}

func TestShadowingAcrossScopesIsLegal(t *testing.T) {
	// int x; void main(void) { int x; { int x; } }
	inner := ast.NewTestCompound(3)
	inner.Decls = []*ast.VarDecl{ast.NewTestVarDecl("x", 3)}
	body := ast.NewTestCompound(2)
	body.Decls = []*ast.VarDecl{ast.NewTestVarDecl("x", 2)}
	body.Statements = []ast.Statement{inner}

	expectNoErrors(t, program(
		ast.NewTestVarDecl("x", 1),
		ast.NewTestFunctionDecl("main", true, nil, body, 2),
	))
}

func TestVoidParameter(t *testing.T) {
	// void f(void a) { }
	prog := program(ast.NewTestFunctionDecl("f", true,
		[]*ast.ParamDecl{ast.NewTestVoidParam("a", 1)},
		ast.NewTestCompound(1), 1))
	expectError(t, prog, "invalid parameter type")
}

func TestDuplicateParameter(t *testing.T) {
	// void f(int a, int a) { }
	prog := program(ast.NewTestFunctionDecl("f", true,
		[]*ast.ParamDecl{ast.NewTestParam("a", 1), ast.NewTestParam("a", 1)},
		ast.NewTestCompound(1), 1))
	expectError(t, prog, "symbol already declared in current scope")
}

func TestParameterShadowsGlobal(t *testing.T) {
	// int x; void f(int x) { x = 1; }
	body := ast.NewTestCompound(2)
	body.Statements = []ast.Statement{
		ast.NewTestExprStatement(ast.NewTestAssign(
			ast.NewTestIdentifier("x", 2), ast.NewTestIntegerLiteral(1, 2), 2), 2),
	}
	fn := ast.NewTestFunctionDecl("f", true,
		[]*ast.ParamDecl{ast.NewTestParam("x", 2)}, body, 2)

	a := expectNoErrors(t, program(ast.NewTestVarDecl("x", 1), fn))

	// The parameter is inserted into the function scope even though a
	// global of the same name exists.
	fnScope := a.Scopes()[1]
	if fnScope.local("x") == nil {
		t.Error("parameter x missing from the function scope")
	}
}

// ============================================================================
// Scope discipline
// ============================================================================

func TestParametersShareTheBodyScope(t *testing.T) {
	// void f(int a) { int a; } — the parameter frame and the body are one
	// scope, so the local collides with the parameter.
	body := ast.NewTestCompound(1)
	body.Decls = []*ast.VarDecl{ast.NewTestVarDecl("a", 2)}
	prog := program(ast.NewTestFunctionDecl("f", true,
		[]*ast.ParamDecl{ast.NewTestParam("a", 1)}, body, 1))
	expectError(t, prog, "symbol already declared in current scope")
}

func TestFunctionBodyDoesNotCreateSecondScope(t *testing.T) {
	// void f(int a) { } — one scope for function+body, none extra.
	prog := program(ast.NewTestFunctionDecl("f", true,
		[]*ast.ParamDecl{ast.NewTestParam("a", 1)}, ast.NewTestCompound(1), 1))
	a := expectNoErrors(t, prog)

	if len(a.Scopes()) != 2 {
		t.Errorf("expected 2 scopes, got %d", len(a.Scopes()))
	}
	body := prog.Declarations[0].(*ast.FunctionDecl).Body
	if body.ScopeID != 1 {
		t.Errorf("body scope id = %d, want 1", body.ScopeID)
	}
}

func TestNonBodyCompoundCreatesScope(t *testing.T) {
	// void f(void) { { } { } }
	body := ast.NewTestCompound(1)
	body.Statements = []ast.Statement{ast.NewTestCompound(2), ast.NewTestCompound(3)}
	prog := program(ast.NewTestFunctionDecl("f", true, nil, body, 1))
	a := expectNoErrors(t, prog)

	if len(a.Scopes()) != 4 {
		t.Errorf("expected 4 scopes, got %d", len(a.Scopes()))
	}
}

// ============================================================================
// Line tracking
// ============================================================================

func TestLineListOrdering(t *testing.T) {
	// 1: int x;
	// 2: void main(void) {
	// 3:   x = 1;
	// 4:   x = x + 1;
	// 5: }
	prog := program(
		ast.NewTestVarDecl("x", 1),
		voidMain(2,
			ast.NewTestExprStatement(ast.NewTestAssign(
				ast.NewTestIdentifier("x", 3), ast.NewTestIntegerLiteral(1, 3), 3), 3),
			ast.NewTestExprStatement(ast.NewTestAssign(
				ast.NewTestIdentifier("x", 4),
				ast.NewTestBinary(ast.NewTestIdentifier("x", 4), token.PLUS, ast.NewTestIntegerLiteral(1, 4), 4), 4), 4),
		),
	)
	a := expectNoErrors(t, prog)

	b := a.GlobalScope().Resolve("x")
	if b == nil {
		t.Fatal("x missing from global scope")
	}
	want := []int{1, 3, 4, 4}
	if diff := cmp.Diff(want, b.Lines); diff != "" {
		t.Errorf("line list mismatch (-want +got):\n%s", diff)
	}
}

func TestBuiltinLineIsSynthetic(t *testing.T) {
	a := expectNoErrors(t, program(voidMain(1)))
	b := a.GlobalScope().Resolve("input")
	if b == nil {
		t.Fatal("input missing")
	}
	if b.Lines[0] != -1 {
		t.Errorf("built-in declaration line = %d, want -1", b.Lines[0])
	}
}

// ============================================================================
// Declared types
// ============================================================================

func TestDeclarationTypes(t *testing.T) {
	// int x; int a[10];
	// int f(void) { return 0; }
	// void g(int p, int q[]) { }
	fBody := ast.NewTestCompound(3)
	fBody.Statements = []ast.Statement{ast.NewTestReturn(ast.NewTestIntegerLiteral(0, 3), 3)}
	g := ast.NewTestFunctionDecl("g", true,
		[]*ast.ParamDecl{ast.NewTestParam("p", 4), ast.NewTestArrayParam("q", 4)},
		ast.NewTestCompound(4), 4)

	prog := program(
		ast.NewTestVarDecl("x", 1),
		ast.NewTestArrayDecl("a", 10, 2),
		ast.NewTestFunctionDecl("f", false, nil, fBody, 3),
		g,
	)
	a := expectNoErrors(t, prog)
	global := a.GlobalScope()

	tests := []struct {
		name string
		kind string
	}{
		{"x", "INTEGER"},
		{"a", "ARRAY"},
		{"f", "INTEGER"},
		{"g", "VOID"},
		{"input", "INTEGER"},
		{"output", "VOID"},
	}
	for _, tt := range tests {
		b := global.Resolve(tt.name)
		if b == nil {
			t.Fatalf("%s missing from global scope", tt.name)
		}
		if b.Type() == nil || b.Type().TypeKind() != tt.kind {
			t.Errorf("%s type = %v, want %s", tt.name, b.Type(), tt.kind)
		}
	}

	if g.Params[0].Type.TypeKind() != "INTEGER" {
		t.Errorf("scalar param type = %v", g.Params[0].Type)
	}
	if g.Params[1].Type.TypeKind() != "ARRAY" {
		t.Errorf("array param type = %v", g.Params[1].Type)
	}
	if !g.Signature().Equals(&types.FunctionType{
		Parameters: []types.Type{types.INTEGER, types.NewIntegerArray()},
		ReturnType: types.VOID,
	}) {
		t.Errorf("g signature = %v", g.Signature())
	}
}

// expectErrorIn checks that an already-analyzed program produced a
// diagnostic containing the given text.
func expectErrorIn(t *testing.T, a *Analyzer, expected string) {
	t.Helper()
	for _, msg := range a.Errors() {
		if strings.Contains(msg, expected) {
			return
		}
	}
	t.Errorf("expected error containing %q, got: %v", expected, a.Errors())
}
