package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mill-lang/millc/internal/ast"
	"github.com/mill-lang/millc/internal/diag"
)

func TestStructFieldIndex(t *testing.T) {
	s := ast.NewStructDecl(ast.NewIdentifier("point", ast.Span{}), []*ast.Field{
		ast.NewField(ast.NewIdentifier("x", ast.Span{}), ast.Int()),
		ast.NewField(ast.NewIdentifier("y", ast.Span{}), ast.Int()),
	})

	idx, err := s.FieldIndex("y")
	require.NoError(t, err)
	require.Equal(t, 1, idx)

	_, err = s.FieldIndex("z")
	require.Error(t, err)
	diagErr, ok := err.(*diag.Error)
	require.True(t, ok)
	require.Equal(t, diag.FieldNotFound, diagErr.Kind)
}

func TestNewFunctionRejectsRedefinedLocal(t *testing.T) {
	ident := ast.NewIdentifier("a", ast.Span{})
	stmts := []ast.Statement{
		&ast.Definition{Ident: ident, Expr: &ast.IntLit{Value: 1}},
		&ast.Definition{Ident: ast.NewIdentifier("a", ast.Span{}), Expr: &ast.IntLit{Value: 2}},
	}

	_, err := ast.NewFunction(ast.NewIdentifier("f", ast.Span{}), nil, stmts, nil)
	require.Error(t, err)
	diagErr, ok := err.(*diag.Error)
	require.True(t, ok)
	require.Equal(t, diag.SymbolAlreadyDefined, diagErr.Kind)
}

func TestNewFunctionRejectsAssignToUndefined(t *testing.T) {
	stmts := []ast.Statement{
		&ast.Assign{Target: ast.NewIdentifier("missing", ast.Span{}), Expr: &ast.IntLit{Value: 1}},
	}

	_, err := ast.NewFunction(ast.NewIdentifier("f", ast.Span{}), nil, stmts, nil)
	require.Error(t, err)
	diagErr, ok := err.(*diag.Error)
	require.True(t, ok)
	require.Equal(t, diag.SymbolNotDefined, diagErr.Kind)
}

func TestNewFunctionRecursesIntoConditionalBranches(t *testing.T) {
	inner := ast.NewIdentifier("a", ast.Span{})
	stmts := []ast.Statement{
		&ast.Conditional{
			Cond: &ast.IntLit{Value: 1},
			Then: []ast.Statement{
				&ast.Definition{Ident: inner, Expr: &ast.IntLit{Value: 1}},
			},
			Else: []ast.Statement{
				&ast.Definition{Ident: ast.NewIdentifier("a", ast.Span{}), Expr: &ast.IntLit{Value: 2}},
			},
		},
	}

	fn, err := ast.NewFunction(ast.NewIdentifier("f", ast.Span{}), nil, stmts, nil)
	require.NoError(t, err)
	require.True(t, fn.HasLocal("a"))
}

func TestNewFunctionRejectsRedefinitionAfterConditional(t *testing.T) {
	stmts := []ast.Statement{
		&ast.Conditional{
			Cond: &ast.IntLit{Value: 1},
			Then: []ast.Statement{
				&ast.Definition{Ident: ast.NewIdentifier("a", ast.Span{}), Expr: &ast.IntLit{Value: 1}},
			},
		},
		&ast.Definition{Ident: ast.NewIdentifier("a", ast.Span{}), Expr: &ast.IntLit{Value: 2}},
	}

	_, err := ast.NewFunction(ast.NewIdentifier("f", ast.Span{}), nil, stmts, nil)
	require.Error(t, err)
}

func TestFunctionIsVoid(t *testing.T) {
	voidFn, err := ast.NewFunction(ast.NewIdentifier("f", ast.Span{}), nil, nil, nil)
	require.NoError(t, err)
	require.True(t, voidFn.IsVoid())

	intType := ast.Int()
	nonVoidFn, err := ast.NewFunction(ast.NewIdentifier("g", ast.Span{}), nil, nil, &intType)
	require.NoError(t, err)
	require.False(t, nonVoidFn.IsVoid())
}
