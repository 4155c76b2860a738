// Package source defines the compiler's external boundary: the Parser
// contract an external lexer/grammar must satisfy to hand the core a
// Program, multi-file source concatenation, and the bitcode writer that
// turns a generated *ir.Module into the on-disk output file.
package source
