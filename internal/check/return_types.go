package check

import (
	"github.com/mill-lang/millc/internal/ast"
	"github.com/mill-lang/millc/internal/diag"
	"github.com/mill-lang/millc/internal/pass"
)

// ReturnTypes asserts that every return statement matches its enclosing
// function's declared return type (invariant 4): a void function may
// only use RetVoid, a non-void function may only use Ret, and its
// returned expression's shallow type must flow to the declared type.
type ReturnTypes struct {
	pass.NopVisitor
}

// NewReturnTypes creates the pass.
func NewReturnTypes() pass.Pass {
	return pass.Pass{
		Name:      "return-types",
		Visitor:   ReturnTypes{},
		Traversal: pass.Preorder{},
	}
}

func (ReturnTypes) VisitStatement(stmt ast.Statement, ctx *pass.Context) error {
	fn := ctx.CurrentFunction
	switch s := stmt.(type) {
	case *ast.RetVoid:
		if !fn.IsVoid() {
			return diag.NewAt(diag.TypeMismatch, fn.Name(), s.Span.Left, s.Span.Right,
				"function %q declares return type %s but returns void", fn.Name(), fn.RetType)
		}
	case *ast.Ret:
		if fn.IsVoid() {
			return diag.NewAt(diag.TypeMismatch, fn.Name(), s.Span.Left, s.Span.Right,
				"void function %q may not return a value", fn.Name())
		}
		if err := checkReturnExprType(fn, s); err != nil {
			return err
		}
	}
	return nil
}

// checkReturnExprType performs the shallow check the specification
// requires: an expression that is unambiguously integer-shaped by its
// own AST form may not flow into a struct-typed return, and a `new`
// struct construction may not flow into an integer-typed return.
// Identifier references, calls and bare terms are not checked: no pass
// resolves the type of the name they refer to.
func checkReturnExprType(fn *ast.Function, ret *ast.Ret) error {
	switch expr := ret.Expr.(type) {
	case *ast.IntLit, *ast.BinOp:
		if fn.RetType.Kind != ast.IntKind {
			return diag.NewAt(diag.TypeMismatch, fn.Name(), ret.Span.Left, ret.Span.Right,
				"function %q declares return type %s but returns an integer expression", fn.Name(), fn.RetType)
		}
	case *ast.NewStruct:
		if fn.RetType.Kind != ast.StructKind || fn.RetType.Struct != expr.Struct {
			return diag.NewAt(diag.TypeMismatch, fn.Name(), ret.Span.Left, ret.Span.Right,
				"function %q declares return type %s but returns %s", fn.Name(), fn.RetType, expr.Struct)
		}
	}
	return nil
}
