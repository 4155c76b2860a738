package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mill-lang/millc/internal/diag"
	"github.com/mill-lang/millc/internal/logging"
	"github.com/mill-lang/millc/internal/pipeline"
	"github.com/mill-lang/millc/internal/source"
)

// Parser is the grammar front end the compile command depends on.
// Lexing and grammar parsing are outside this module's scope (see
// source.Parser); whatever embeds this CLI wires a concrete
// implementation in here. Left unset, compile fails fast with a clear
// error instead of a nil-pointer panic.
var Parser source.Parser

var (
	outputPath    string
	printLowering bool
)

var compileCmd = &cobra.Command{
	Use:   "compile <source-file>...",
	Short: "Compile mill source files to an LLVM bitcode module",
	Long: `compile reads one or more mill source files, concatenated in the
order given, and runs them through the full pipeline: parse to an AST,
validate with the semantic passes, lower to basic-block CFG-IR, and
generate a single LLVM bitcode module.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().StringVarP(&outputPath, "output", "o", "main.bc", "output bitcode path")
	compileCmd.Flags().BoolVar(&printLowering, "print-lowering", false, "print the lowered CFG-IR as Graphviz DOT to stdout after codegen succeeds (nothing is printed if any stage fails)")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	log := logging.New(verbose)
	defer log.Sync() //nolint:errcheck

	if Parser == nil {
		return fmt.Errorf("no front end wired in: cmd.Parser is nil")
	}

	log.Debug("reading source files", zap.Strings("paths", args))
	text, err := source.ReadFiles(args)
	if err != nil {
		return err
	}

	program, err := Parser.Parse(text)
	if err != nil {
		return err
	}

	log.Debug("running compile pipeline")
	result, err := pipeline.Run(program)
	if err != nil {
		return fatal(log, err)
	}

	if printLowering {
		fmt.Fprint(os.Stdout, result.DOT)
	}

	log.Debug("writing bitcode", zap.String("path", outputPath))
	if err := source.WriteBitcode(result.Module, outputPath); err != nil {
		return fatal(log, err)
	}

	fmt.Printf("wrote %s\n", outputPath)
	return nil
}

// fatal logs err's diagnostic chain and returns it unchanged through
// Cobra's normal RunE error path, so compile failures are reported the
// same way any other Cobra command error is and remain testable
// in-process rather than requiring a subprocess to observe os.Exit.
func fatal(log *zap.Logger, err error) error {
	log.Error("compilation failed", zap.String("chain", diag.Chain(err)))
	return err
}
