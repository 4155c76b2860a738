package pass

import "github.com/mill-lang/millc/internal/ast"

// Traversal drives a Visitor over a Program in some fixed order.
type Traversal interface {
	Run(visitor Visitor, program *ast.Program, ctx *Context) error
}

// Preorder is the traversal used by every semantic pass: program, then
// structs in declaration order, then functions in declaration order;
// within each function, statements in order and, within each statement,
// its expression tree inorder.
type Preorder struct{}

func (Preorder) Run(v Visitor, program *ast.Program, ctx *Context) error {
	if err := v.VisitProgram(program, ctx); err != nil {
		return err
	}
	for _, s := range program.Structs {
		if err := v.VisitStruct(s, ctx); err != nil {
			return err
		}
	}
	for _, fn := range program.Functions {
		ctx.EnterFunction(fn)
		if err := v.VisitFunc(fn, ctx); err != nil {
			return err
		}
		for _, p := range fn.Params {
			if err := v.VisitParam(p, ctx); err != nil {
				return err
			}
		}
		if err := walkStatements(v, fn.Stmts, ctx); err != nil {
			return err
		}
	}
	return nil
}

func walkStatements(v Visitor, stmts []ast.Statement, ctx *Context) error {
	for _, stmt := range stmts {
		if err := v.VisitStatement(stmt, ctx); err != nil {
			return err
		}
		if err := walkStatementExprs(v, stmt, ctx); err != nil {
			return err
		}
	}
	return nil
}

func walkStatementExprs(v Visitor, stmt ast.Statement, ctx *Context) error {
	switch s := stmt.(type) {
	case *ast.Ret:
		return walkExpr(v, s.Expr, ctx)
	case *ast.Definition:
		return walkExpr(v, s.Expr, ctx)
	case *ast.Assign:
		return walkExpr(v, s.Expr, ctx)
	case *ast.Conditional:
		if err := walkExpr(v, s.Cond, ctx); err != nil {
			return err
		}
		if err := walkStatements(v, s.Then, ctx); err != nil {
			return err
		}
		return walkStatements(v, s.Else, ctx)
	}
	return nil
}

func walkExpr(v Visitor, expr ast.Expr, ctx *Context) error {
	if expr == nil {
		return nil
	}
	if err := v.VisitExpr(expr, ctx); err != nil {
		return err
	}
	switch e := expr.(type) {
	case *ast.BinOp:
		if err := v.VisitTerm(e.Left, ctx); err != nil {
			return err
		}
		return v.VisitTerm(e.Right, ctx)
	case *ast.TermExpr:
		return v.VisitTerm(e.Term, ctx)
	case *ast.Call:
		for _, arg := range e.Args {
			if err := walkExpr(v, arg, ctx); err != nil {
				return err
			}
		}
	}
	return nil
}
