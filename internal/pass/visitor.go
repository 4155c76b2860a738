package pass

import "github.com/mill-lang/millc/internal/ast"

// Visitor exposes one callback per AST node variant. Every callback
// receives the node and the shared Context; a non-nil error halts the
// enclosing Traversal immediately. A Visitor that does not care about a
// particular node kind embeds NopVisitor and only overrides the
// callbacks it needs.
type Visitor interface {
	VisitProgram(program *ast.Program, ctx *Context) error
	VisitStruct(s *ast.Struct, ctx *Context) error
	VisitFunc(fn *ast.Function, ctx *Context) error
	VisitParam(param *ast.Identifier, ctx *Context) error
	VisitStatement(stmt ast.Statement, ctx *Context) error
	VisitExpr(expr ast.Expr, ctx *Context) error
	VisitTerm(term ast.Term, ctx *Context) error
}

// NopVisitor implements Visitor with every callback a no-op, so a
// concrete pass can embed it and override only the callbacks it cares
// about.
type NopVisitor struct{}

func (NopVisitor) VisitProgram(*ast.Program, *Context) error     { return nil }
func (NopVisitor) VisitStruct(*ast.Struct, *Context) error       { return nil }
func (NopVisitor) VisitFunc(*ast.Function, *Context) error       { return nil }
func (NopVisitor) VisitParam(*ast.Identifier, *Context) error    { return nil }
func (NopVisitor) VisitStatement(ast.Statement, *Context) error  { return nil }
func (NopVisitor) VisitExpr(ast.Expr, *Context) error            { return nil }
func (NopVisitor) VisitTerm(ast.Term, *Context) error            { return nil }
