// Command millc is an ahead-of-time compiler for the mill language.
package main

import (
	"fmt"
	"os"

	"github.com/mill-lang/millc/cmd/millc/cmd"
	"github.com/mill-lang/millc/internal/diag"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, diag.Chain(err))
		os.Exit(1)
	}
}
