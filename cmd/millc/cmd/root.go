package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "millc",
	Short: "Ahead-of-time compiler for the mill language",
	Long: `millc compiles mill source files to LLVM bitcode.

mill is a small statically-typed imperative language: functions,
integers, user-defined record types, local variable definitions and
assignments, arithmetic and comparison expressions, function calls,
if/else conditionals, and returns.

Source text is parsed to an AST, validated by a sequence of semantic
passes, lowered to a basic-block control-flow IR, and handed to an
LLVM-backed code generator that emits a single bitcode module.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (forces debug-level logging)")
}
