package pass

import (
	"github.com/mill-lang/millc/internal/ast"
	"github.com/mill-lang/millc/internal/symtab"
)

// Context is the mutable state threaded through a single pass run. It is
// rebuilt per program (not shared across Runner invocations): Functions
// is populated once by the Runner before the first pass runs, and
// CurrentFunction is set by the traversal as it enters each function.
type Context struct {
	// Functions is the program-wide function-name → signature table,
	// used by call-target resolution.
	Functions *symtab.FunctionTable

	// Locals holds the parameter names of the function currently being
	// visited. It is nil before the traversal enters the first function.
	Locals *symtab.NameSet

	// CurrentFunction is the function declaration currently being
	// visited, used by return-type consistency checking.
	CurrentFunction *ast.Function
}

// NewContext builds a Context with functions registered from program.
func NewContext(program *ast.Program) *Context {
	return &Context{Functions: symtab.NewFunctionTable(program.Functions)}
}

// EnterFunction positions the context at fn, resetting Locals to fn's
// parameter set.
func (c *Context) EnterFunction(fn *ast.Function) {
	c.CurrentFunction = fn
	locals := symtab.NewNameSet()
	for _, p := range fn.Params {
		locals.Define(p.Name)
	}
	c.Locals = locals
}
