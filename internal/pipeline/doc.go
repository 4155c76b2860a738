// Package pipeline wires internal/check, internal/lower, and
// internal/codegen into the single ordered sequence the compile
// command drives, so the full front-to-back path can be exercised and
// snapshot-tested against an ast.Program without going through the CLI
// or an external parser.
package pipeline
