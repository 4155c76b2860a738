package lower_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mill-lang/millc/internal/ast"
	"github.com/mill-lang/millc/internal/lower"
)

func mustFunc(t *testing.T, name string, stmts []ast.Statement, ret *ast.DataType) *ast.Function {
	t.Helper()
	fn, err := ast.NewFunction(ast.NewIdentifier(name, ast.Span{}), nil, stmts, ret)
	require.NoError(t, err)
	return fn
}

func TestLowerStraightLineFunction(t *testing.T) {
	fn := mustFunc(t, "f", []ast.Statement{
		&ast.Definition{Ident: ast.NewIdentifier("x", ast.Span{}), Expr: &ast.IntLit{Value: 1}},
		&ast.RetVoid{},
	}, nil)

	lf, err := lower.NewLowering().Function(fn)
	require.NoError(t, err)
	require.Len(t, lf.Blocks, 1)
	require.Equal(t, lf.Entry, lf.Blocks[0].ID)
	require.Len(t, lf.Blocks[0].Stmts, 2)
	require.Empty(t, lf.Blocks[0].Next)
}

func TestLowerConditionalWithElseProducesDiamond(t *testing.T) {
	fn := mustFunc(t, "f", []ast.Statement{
		&ast.Conditional{
			Cond: &ast.IntLit{Value: 1},
			Then: []ast.Statement{&ast.RetVoid{}},
			Else: []ast.Statement{&ast.RetVoid{}},
		},
	}, nil)

	lf, err := lower.NewLowering().Function(fn)
	require.NoError(t, err)

	// entry, then, else, resume
	require.Len(t, lf.Blocks, 4)

	entry, ok := lf.BlockByID(lf.Entry)
	require.True(t, ok)
	require.Len(t, entry.Stmts, 1)
	jump, ok := entry.Stmts[0].(lower.ConditionalJump)
	require.True(t, ok)
	require.Len(t, entry.Next, 2)
	require.Equal(t, jump.Then, entry.Next[0])
}

func TestLowerConditionalWithoutElseJoinsAtResume(t *testing.T) {
	fn := mustFunc(t, "f", []ast.Statement{
		&ast.Conditional{
			Cond: &ast.IntLit{Value: 1},
			Then: []ast.Statement{&ast.RetVoid{}},
		},
		&ast.RetVoid{},
	}, nil)

	lf, err := lower.NewLowering().Function(fn)
	require.NoError(t, err)

	// entry, then, resume (no else block)
	require.Len(t, lf.Blocks, 3)

	entry, ok := lf.BlockByID(lf.Entry)
	require.True(t, ok)
	jump := entry.Stmts[0].(lower.ConditionalJump)

	resumeID := entry.Next[1]
	resume, ok := lf.BlockByID(resumeID)
	require.True(t, ok)
	require.Len(t, resume.Stmts, 1)
	require.NotEqual(t, jump.Then, resumeID)
}

func TestLowerBlockIDsAreMonotonicAcrossFunctions(t *testing.T) {
	f1 := mustFunc(t, "f1", []ast.Statement{&ast.RetVoid{}}, nil)
	f2 := mustFunc(t, "f2", []ast.Statement{&ast.RetVoid{}}, nil)
	program := &ast.Program{Functions: []*ast.Function{f1, f2}}

	lowered, err := lower.NewLowering().Program(program)
	require.NoError(t, err)
	require.Less(t, lowered.Functions[0].Entry, lowered.Functions[1].Entry)
}

func TestLowerFieldAccessAssignCarriesChain(t *testing.T) {
	target := ast.NewIdentifier("o", ast.Span{}).WithField(ast.NewIdentifier("a", ast.Span{}))
	fn := mustFunc(t, "f", []ast.Statement{
		&ast.Definition{Ident: ast.NewIdentifier("o", ast.Span{}), Expr: &ast.NewStruct{Struct: "point"}},
		&ast.Assign{Target: target, Expr: &ast.IntLit{Value: 3}},
		&ast.RetVoid{},
	}, nil)

	lf, err := lower.NewLowering().Function(fn)
	require.NoError(t, err)

	assign := lf.Blocks[0].Stmts[1].(lower.AssignStmt)
	require.Equal(t, "o", assign.Variable.Name)
	require.Equal(t, []string{"a"}, assign.FieldChain)
}

func TestWriteDOTRendersClusterPerFunction(t *testing.T) {
	fn := mustFunc(t, "f", []ast.Statement{&ast.RetVoid{}}, nil)
	program := &ast.Program{Functions: []*ast.Function{fn}}
	lowered, err := lower.NewLowering().Program(program)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, lower.WriteDOT(&sb, lowered))
	out := sb.String()
	require.Contains(t, out, "digraph millc")
	require.Contains(t, out, "cluster_f")
	require.Contains(t, out, "ret void")
}
