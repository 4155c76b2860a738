// Package ast defines the abstract syntax tree for the millc source
// language: functions, integers, records, locals, arithmetic and
// comparison expressions, calls, if/else, and returns.
//
// Nodes are produced by an external parser and are treated as read-only
// once handed to the semantic passes in internal/check and internal/pass.
package ast
