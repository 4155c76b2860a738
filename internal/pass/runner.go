package pass

import "github.com/mill-lang/millc/internal/ast"

// Pass pairs a Visitor with the Traversal strategy that drives it.
type Pass struct {
	Name      string
	Visitor   Visitor
	Traversal Traversal
}

// Run executes the pass's traversal over program.
func (p Pass) Run(program *ast.Program, ctx *Context) error {
	return p.Traversal.Run(p.Visitor, program, ctx)
}

// Runner executes a sequence of passes over a single Program, in order,
// aborting at the first error. Every pass shares one Context, which Run
// builds from the program (including the function table) before the
// first pass runs.
type Runner struct {
	Passes []Pass
}

// NewRunner builds a Runner over passes, executed in the given order.
func NewRunner(passes ...Pass) *Runner {
	return &Runner{Passes: passes}
}

// Run executes every pass against program, returning the first error
// encountered verbatim (no wrapping: the diag.Error a pass returns
// already carries its own Kind and name) or nil if every pass succeeds.
func (r *Runner) Run(program *ast.Program) error {
	ctx := NewContext(program)
	for _, p := range r.Passes {
		if err := p.Run(program, ctx); err != nil {
			return err
		}
	}
	return nil
}
