package syntax

import (
	"bufio"
	"strings"
	"testing"

	"pycheck/ast"
	"pycheck/report"
)

// parseSource parses a source string, failing the test on errors.
func parseSource(t *testing.T, src string) []ast.Stmt {
	t.Helper()

	stmts, err := NewParser(bufio.NewReader(strings.NewReader(src))).Parse()
	if err != nil {
		t.Fatalf("unexpected parse error: %s", err)
	}

	return stmts
}

func TestParseSimpleFunction(t *testing.T) {
	src := `
def add(a: int, b: int) -> int:
    return a + b
`

	stmts := parseSource(t, src)
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}

	fd, ok := stmts[0].(*ast.FuncDef)
	if !ok {
		t.Fatalf("expected a function definition, got %T", stmts[0])
	}

	if fd.Name != "add" {
		t.Errorf("expected function name `add`, got `%s`", fd.Name)
	}

	if len(fd.Params) != 2 || fd.Params[0].Name != "a" || fd.Params[1].Name != "b" {
		t.Fatalf("expected parameters (a, b), got %v", fd.Params)
	}

	if fd.Params[0].Annot == nil || fd.Params[0].Annot.Name != "int" {
		t.Error("expected parameter `a` to be annotated `int`")
	}

	if fd.ReturnAnnot == nil || fd.ReturnAnnot.Name != "int" {
		t.Error("expected return annotation `int`")
	}

	if len(fd.Body) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(fd.Body))
	}

	ret, ok := fd.Body[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected a return statement, got %T", fd.Body[0])
	}

	if _, ok := ret.Value.(*ast.BinaryOp); !ok {
		t.Fatalf("expected a binary operation, got %T", ret.Value)
	}
}

func TestParseVariableAnnotation(t *testing.T) {
	src := `
x: int = 5
y: str = "hello"
`

	stmts := parseSource(t, src)
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}

	first, ok := stmts[0].(*ast.AnnAssign)
	if !ok {
		t.Fatalf("expected an annotated assignment, got %T", stmts[0])
	}

	if first.Target != "x" || first.Annot.Name != "int" {
		t.Errorf("expected `x: int`, got `%s: %s`", first.Target, first.Annot.Name)
	}

	lit, ok := first.Value.(*ast.Literal)
	if !ok || lit.Kind != ast.LitInt || lit.Value != "5" {
		t.Errorf("expected the integer literal 5, got %#v", first.Value)
	}

	second := stmts[1].(*ast.AnnAssign)
	strLit, ok := second.Value.(*ast.Literal)
	if !ok || strLit.Kind != ast.LitString || strLit.Value != "hello" {
		t.Errorf("expected the string literal \"hello\", got %#v", second.Value)
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := NewParser(bufio.NewReader(strings.NewReader("def invalid syntax"))).Parse()
	if err == nil {
		t.Fatal("expected a parse error")
	}

	lerr, ok := err.(*report.LocalError)
	if !ok {
		t.Fatalf("expected a local error, got %T", err)
	}

	if lerr.Position.StartLn != 0 {
		t.Errorf("expected the error on the first line, got line %d", lerr.Position.StartLn)
	}
}

func TestParseEmptyFile(t *testing.T) {
	if stmts := parseSource(t, ""); len(stmts) != 0 {
		t.Fatalf("expected no statements, got %d", len(stmts))
	}
}

func TestParseBlankLinesAndComments(t *testing.T) {
	src := `
# a leading comment

x: int = 5  # a trailing comment

# a final comment
`

	stmts := parseSource(t, src)
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
}

func TestParseNestedFunction(t *testing.T) {
	src := `
def outer() -> int:
    def inner() -> str:
        return "deep"
    return 1
`

	stmts := parseSource(t, src)
	outer := stmts[0].(*ast.FuncDef)

	if len(outer.Body) != 2 {
		t.Fatalf("expected 2 body statements, got %d", len(outer.Body))
	}

	inner, ok := outer.Body[0].(*ast.FuncDef)
	if !ok || inner.Name != "inner" {
		t.Fatalf("expected the nested function `inner`, got %#v", outer.Body[0])
	}
}

func TestParseCall(t *testing.T) {
	stmts := parseSource(t, "z = add(x, 10)\n")

	as, ok := stmts[0].(*ast.Assign)
	if !ok {
		t.Fatalf("expected an assignment, got %T", stmts[0])
	}

	call, ok := as.Value.(*ast.Call)
	if !ok {
		t.Fatalf("expected a call, got %T", as.Value)
	}

	callee, ok := call.Func.(*ast.Identifier)
	if !ok || callee.Name != "add" {
		t.Fatalf("expected the callee `add`, got %#v", call.Func)
	}

	if len(call.Args) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(call.Args))
	}
}

func TestParseChainedAssignment(t *testing.T) {
	stmts := parseSource(t, "a = b = 5\n")

	as := stmts[0].(*ast.Assign)
	if len(as.Targets) != 2 || as.Targets[0].Name != "a" || as.Targets[1].Name != "b" {
		t.Fatalf("expected the targets (a, b), got %#v", as.Targets)
	}
}

func TestParseAnnAssignWithoutValue(t *testing.T) {
	stmts := parseSource(t, "x: int\n")

	aa := stmts[0].(*ast.AnnAssign)
	if aa.Value != nil {
		t.Fatal("expected no value on a bare declaration")
	}
}

func TestParseUnindentMismatch(t *testing.T) {
	src := "def f() -> int:\n    x: int = 1\n  y: int = 2\n"

	_, err := NewParser(bufio.NewReader(strings.NewReader(src))).Parse()
	if err == nil {
		t.Fatal("expected an indentation error")
	}
}

func TestParseIllegalAssignmentTarget(t *testing.T) {
	_, err := NewParser(bufio.NewReader(strings.NewReader("1 + 2 = 3\n"))).Parse()
	if err == nil {
		t.Fatal("expected an illegal assignment target error")
	}
}

func TestParsePositionOfValue(t *testing.T) {
	stmts := parseSource(t, `x: int = "hello"` + "\n")

	aa := stmts[0].(*ast.AnnAssign)
	pos := aa.Value.Span()

	if pos.StartLn != 0 || pos.StartCol != 9 {
		t.Errorf("expected the value at 0:9, got %d:%d", pos.StartLn, pos.StartCol)
	}
}
