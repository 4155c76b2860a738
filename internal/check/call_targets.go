package check

import (
	"github.com/mill-lang/millc/internal/ast"
	"github.com/mill-lang/millc/internal/diag"
	"github.com/mill-lang/millc/internal/pass"
)

// CallTargets asserts that every call expression's callee names a
// function declared somewhere in the program (invariant 3). It relies
// on Context.Functions, which the Runner populates from the whole
// program before any pass runs, so declaration order is immaterial.
type CallTargets struct {
	pass.NopVisitor
}

// NewCallTargets creates the pass.
func NewCallTargets() pass.Pass {
	return pass.Pass{
		Name:      "call-targets",
		Visitor:   CallTargets{},
		Traversal: pass.Preorder{},
	}
}

func (CallTargets) VisitExpr(expr ast.Expr, ctx *pass.Context) error {
	call, ok := expr.(*ast.Call)
	if !ok {
		return nil
	}
	if !ctx.Functions.Has(call.Callee) {
		return diag.NewAt(diag.FunctionNotDefined, call.Callee, call.Span.Left, call.Span.Right,
			"call to undefined function %q", call.Callee)
	}
	return nil
}
