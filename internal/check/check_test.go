package check_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mill-lang/millc/internal/ast"
	"github.com/mill-lang/millc/internal/check"
	"github.com/mill-lang/millc/internal/diag"
	"github.com/mill-lang/millc/internal/pass"
)

func mustFunc(t *testing.T, name string, params []*ast.Identifier, stmts []ast.Statement, ret *ast.DataType) *ast.Function {
	t.Helper()
	fn, err := ast.NewFunction(ast.NewIdentifier(name, ast.Span{}), params, stmts, ret)
	require.NoError(t, err)
	return fn
}

func TestDuplicateFunctionsRejectsRepeatedName(t *testing.T) {
	a := mustFunc(t, "f", nil, nil, nil)
	b := mustFunc(t, "f", nil, nil, nil)
	program := &ast.Program{Functions: []*ast.Function{a, b}}

	err := pass.NewRunner(check.NewDuplicateFunctions()).Run(program)
	require.Error(t, err)
	require.Equal(t, diag.FunctionDefinedTwice, err.(*diag.Error).Kind)
}

func TestDuplicateFunctionsAcceptsUniqueNames(t *testing.T) {
	a := mustFunc(t, "f", nil, nil, nil)
	b := mustFunc(t, "g", nil, nil, nil)
	program := &ast.Program{Functions: []*ast.Function{a, b}}

	require.NoError(t, pass.NewRunner(check.NewDuplicateFunctions()).Run(program))
}

func TestCallTargetsRejectsUndefinedCallee(t *testing.T) {
	fn := mustFunc(t, "f", nil, []ast.Statement{
		&ast.Definition{
			Ident: ast.NewIdentifier("x", ast.Span{}),
			Expr:  &ast.Call{Callee: "missing"},
		},
	}, nil)
	program := &ast.Program{Functions: []*ast.Function{fn}}

	err := pass.NewRunner(check.NewCallTargets()).Run(program)
	require.Error(t, err)
	require.Equal(t, diag.FunctionNotDefined, err.(*diag.Error).Kind)
}

func TestCallTargetsAcceptsForwardReference(t *testing.T) {
	caller := mustFunc(t, "caller", nil, []ast.Statement{
		&ast.Definition{
			Ident: ast.NewIdentifier("x", ast.Span{}),
			Expr:  &ast.Call{Callee: "callee"},
		},
	}, nil)
	callee := mustFunc(t, "callee", nil, nil, nil)
	program := &ast.Program{Functions: []*ast.Function{caller, callee}}

	require.NoError(t, pass.NewRunner(check.NewCallTargets()).Run(program))
}

func TestReturnTypesRejectsValueFromVoidFunction(t *testing.T) {
	fn := mustFunc(t, "f", nil, []ast.Statement{
		&ast.Ret{Expr: &ast.IntLit{Value: 1}},
	}, nil)
	program := &ast.Program{Functions: []*ast.Function{fn}}

	err := pass.NewRunner(check.NewReturnTypes()).Run(program)
	require.Error(t, err)
	require.Equal(t, diag.TypeMismatch, err.(*diag.Error).Kind)
}

func TestReturnTypesRejectsVoidFromNonVoidFunction(t *testing.T) {
	intType := ast.Int()
	fn := mustFunc(t, "f", nil, []ast.Statement{&ast.RetVoid{}}, &intType)
	program := &ast.Program{Functions: []*ast.Function{fn}}

	err := pass.NewRunner(check.NewReturnTypes()).Run(program)
	require.Error(t, err)
	require.Equal(t, diag.TypeMismatch, err.(*diag.Error).Kind)
}

func TestReturnTypesRejectsStructShapedReturnFromIntFunction(t *testing.T) {
	intType := ast.Int()
	fn := mustFunc(t, "f", nil, []ast.Statement{
		&ast.Ret{Expr: &ast.NewStruct{Struct: "point"}},
	}, &intType)
	program := &ast.Program{Functions: []*ast.Function{fn}}

	err := pass.NewRunner(check.NewReturnTypes()).Run(program)
	require.Error(t, err)
	require.Equal(t, diag.TypeMismatch, err.(*diag.Error).Kind)
}

func TestReturnTypesAcceptsMatchingStructReturn(t *testing.T) {
	structType := ast.StructRef("point")
	fn := mustFunc(t, "f", nil, []ast.Statement{
		&ast.Ret{Expr: &ast.NewStruct{Struct: "point"}},
	}, &structType)
	program := &ast.Program{Functions: []*ast.Function{fn}}

	require.NoError(t, pass.NewRunner(check.NewReturnTypes()).Run(program))
}

func TestAllRunsInFixedOrder(t *testing.T) {
	passes := check.All()
	require.Len(t, passes, 3)
	require.Equal(t, "duplicate-functions", passes[0].Name)
	require.Equal(t, "call-targets", passes[1].Name)
	require.Equal(t, "return-types", passes[2].Name)
}
