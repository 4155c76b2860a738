package codegen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mill-lang/millc/internal/ast"
	"github.com/mill-lang/millc/internal/codegen"
	"github.com/mill-lang/millc/internal/diag"
	"github.com/mill-lang/millc/internal/lower"
)

func TestGenerateVoidFunction(t *testing.T) {
	fn := &lower.Function{
		Name:  "noop",
		Entry: 0,
		Blocks: []*lower.BasicBlock{
			{ID: 0, Stmts: []lower.Statement{lower.RetVoidStmt{}}},
		},
	}
	program := &lower.Program{Functions: []*lower.Function{fn}}

	module, err := codegen.New().Generate(program)
	require.NoError(t, err)

	ir := module.String()
	require.Contains(t, ir, "define void @noop()")
	require.Contains(t, ir, "ret void")
}

func TestGenerateIntFunctionWithAddAndReturn(t *testing.T) {
	intType := ast.Int()
	fn := &lower.Function{
		Name:    "add",
		Params:  []lower.Variable{{Name: "a"}, {Name: "b"}},
		RetType: &intType,
		Entry:   0,
		Blocks: []*lower.BasicBlock{
			{ID: 0, Stmts: []lower.Statement{
				lower.RetStmt{Expr: lower.BinaryExpression{
					Op:    ast.Add,
					Left:  lower.Ident{Variable: lower.Variable{Name: "a"}},
					Right: lower.Ident{Variable: lower.Variable{Name: "b"}},
				}},
			}},
		},
	}
	program := &lower.Program{Functions: []*lower.Function{fn}}

	module, err := codegen.New().Generate(program)
	require.NoError(t, err)

	ir := module.String()
	require.Contains(t, ir, "define i32 @add(i32 %a, i32 %b)")
	require.Contains(t, ir, "add i32")
}

func TestGenerateMutualRecursionResolvesForwardCall(t *testing.T) {
	intType := ast.Int()
	isEven := &lower.Function{
		Name:    "is_even",
		Params:  []lower.Variable{{Name: "n"}},
		RetType: &intType,
		Entry:   0,
		Blocks: []*lower.BasicBlock{
			{ID: 0, Stmts: []lower.Statement{
				lower.RetStmt{Expr: lower.CallExpression{
					Callee: "is_odd",
					Args:   []lower.Expression{lower.TermExpression{Term: lower.Ident{Variable: lower.Variable{Name: "n"}}}},
				}},
			}},
		},
	}
	isOdd := &lower.Function{
		Name:    "is_odd",
		Params:  []lower.Variable{{Name: "n"}},
		RetType: &intType,
		Entry:   1,
		Blocks: []*lower.BasicBlock{
			{ID: 1, Stmts: []lower.Statement{
				lower.RetStmt{Expr: lower.CallExpression{
					Callee: "is_even",
					Args:   []lower.Expression{lower.TermExpression{Term: lower.Ident{Variable: lower.Variable{Name: "n"}}}},
				}},
			}},
		},
	}
	program := &lower.Program{Functions: []*lower.Function{isEven, isOdd}}

	module, err := codegen.New().Generate(program)
	require.NoError(t, err)

	ir := module.String()
	require.Contains(t, ir, "call i32 @is_odd")
	require.Contains(t, ir, "call i32 @is_even")
}

func TestGenerateStructFieldAssignAndRead(t *testing.T) {
	point := ast.NewStructDecl(ast.NewIdentifier("point", ast.Span{}), []*ast.Field{
		ast.NewField(ast.NewIdentifier("x", ast.Span{}), ast.Int()),
		ast.NewField(ast.NewIdentifier("y", ast.Span{}), ast.Int()),
	})
	structType := ast.StructRef("point")

	fn := &lower.Function{
		Name:    "make_point",
		RetType: &structType,
		Entry:   0,
		Blocks: []*lower.BasicBlock{
			{ID: 0, Stmts: []lower.Statement{
				lower.DefinitionStmt{
					Variable: lower.Variable{Name: "p"},
					Expr:     lower.NewStructExpression{Struct: "point"},
				},
				lower.AssignStmt{
					Variable:   lower.Variable{Name: "p"},
					FieldChain: []string{"x"},
					Expr:       lower.TermExpression{Term: lower.Constant{Value: 7}},
				},
				lower.RetStmt{Expr: lower.TermExpression{Term: lower.Ident{Variable: lower.Variable{Name: "p"}}}},
			}},
		},
	}
	program := &lower.Program{Functions: []*lower.Function{fn}, Structs: []*ast.Struct{point}}

	module, err := codegen.New().Generate(program)
	require.NoError(t, err)

	ir := module.String()
	require.Contains(t, ir, "getelementptr")
	require.True(t, strings.Contains(ir, "%point = type { i32, i32 }") || strings.Contains(ir, "type { i32, i32 }"))
}

func TestGenerateStructTypedParameter(t *testing.T) {
	point := ast.NewStructDecl(ast.NewIdentifier("point", ast.Span{}), []*ast.Field{
		ast.NewField(ast.NewIdentifier("x", ast.Span{}), ast.Int()),
	})
	structType := ast.StructRef("point")
	intType := ast.Int()

	fn := &lower.Function{
		Name:    "get_x",
		Params:  []lower.Variable{{Name: "p", Type: structType}},
		RetType: &intType,
		Entry:   0,
		Blocks: []*lower.BasicBlock{
			{ID: 0, Stmts: []lower.Statement{
				lower.RetStmt{Expr: lower.TermExpression{
					Term: lower.Ident{Variable: lower.Variable{Name: "p"}, FieldChain: []string{"x"}},
				}},
			}},
		},
	}
	program := &lower.Program{Functions: []*lower.Function{fn}, Structs: []*ast.Struct{point}}

	module, err := codegen.New().Generate(program)
	require.NoError(t, err)

	ir := module.String()
	require.Contains(t, ir, "@get_x(")
	require.Contains(t, ir, "getelementptr")
	require.NotContains(t, ir, "@get_x(i32")
}

func TestGenerateRejectsHeadOpcode(t *testing.T) {
	fn := &lower.Function{
		Name:  "f",
		Entry: 0,
		Blocks: []*lower.BasicBlock{
			{ID: 0, Stmts: []lower.Statement{
				lower.DefinitionStmt{
					Variable: lower.Variable{Name: "x"},
					Expr: lower.BinaryExpression{
						Op:    ast.Head,
						Left:  lower.Constant{Value: 1},
						Right: lower.Constant{Value: 0},
					},
				},
				lower.RetVoidStmt{},
			}},
		},
	}
	program := &lower.Program{Functions: []*lower.Function{fn}}

	_, err := codegen.New().Generate(program)
	require.Error(t, err)
	require.Equal(t, diag.CodegenFailure, err.(*diag.Error).Kind)
}
