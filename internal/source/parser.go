package source

import "github.com/mill-lang/millc/internal/ast"

// Parser is the only contract the core imposes on lexing and grammar
// parsing: given concatenated source text, yield a Program or a fatal
// parse error. Lexical analysis and grammar parsing are out of scope
// for this module; Parser exists so the compile driver can depend on an
// interface rather than a concrete parser package.
type Parser interface {
	Parse(text string) (*ast.Program, error)
}

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc func(text string) (*ast.Program, error)

func (f ParserFunc) Parse(text string) (*ast.Program, error) { return f(text) }
