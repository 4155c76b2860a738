package check

import (
	"github.com/mill-lang/millc/internal/ast"
	"github.com/mill-lang/millc/internal/diag"
	"github.com/mill-lang/millc/internal/pass"
	"github.com/mill-lang/millc/internal/symtab"
)

// DuplicateFunctions rejects a program that declares the same function
// name twice (invariant 1). It builds its own name set as functions are
// visited rather than relying on Context.Functions, since that table is
// built eagerly from the whole program and would hide the duplicate.
type DuplicateFunctions struct {
	pass.NopVisitor
	seen *symtab.NameSet
}

// NewDuplicateFunctions creates the pass.
func NewDuplicateFunctions() pass.Pass {
	return pass.Pass{
		Name:      "duplicate-functions",
		Visitor:   &DuplicateFunctions{seen: symtab.NewNameSet()},
		Traversal: pass.Preorder{},
	}
}

func (p *DuplicateFunctions) VisitFunc(fn *ast.Function, ctx *pass.Context) error {
	if p.seen.Define(fn.Name()) {
		return diag.NewAt(diag.FunctionDefinedTwice, fn.Name(), fn.Ident.Span.Left, fn.Ident.Span.Right,
			"function %q is already defined", fn.Name())
	}
	return nil
}
