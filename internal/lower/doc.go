// Package lower transforms a validated AST into CFG-IR: a per-function
// list of basic blocks, each a straight-line sequence of lowered
// statements with explicit successor edges. Lowering never fails on a
// well-formed (already-checked) AST; it returns an error only when an
// internal invariant is violated, wrapped as diag.LoweringFailure.
package lower
