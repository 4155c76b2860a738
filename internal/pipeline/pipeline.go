package pipeline

import (
	"bytes"

	"github.com/llir/llvm/ir"

	"github.com/mill-lang/millc/internal/ast"
	"github.com/mill-lang/millc/internal/check"
	"github.com/mill-lang/millc/internal/codegen"
	"github.com/mill-lang/millc/internal/lower"
	"github.com/mill-lang/millc/internal/pass"
)

// Result carries every intermediate artifact the compile command
// produces, so a caller (or a test) can inspect any stage's output
// rather than only the final module.
type Result struct {
	Lowered *lower.Program
	Module  *ir.Module
	DOT     string
}

// Run validates program with the full semantic pass chain, lowers it
// to CFG-IR, and generates its LLVM module, in the same order
// cmd/millc's compile command does.
func Run(program *ast.Program) (*Result, error) {
	if err := pass.NewRunner(check.All()...).Run(program); err != nil {
		return nil, err
	}

	lowered, err := lower.NewLowering().Program(program)
	if err != nil {
		return nil, err
	}

	var dot bytes.Buffer
	if err := lower.WriteDOT(&dot, lowered); err != nil {
		return nil, err
	}

	module, err := codegen.New().Generate(lowered)
	if err != nil {
		return nil, err
	}

	return &Result{Lowered: lowered, Module: module, DOT: dot.String()}, nil
}
