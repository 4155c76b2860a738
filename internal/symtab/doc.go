// Package symtab provides the scoped name-set and function-signature
// tables used by the semantic passes. NameSet is a plain scoped set of
// names; FunctionTable maps each function name to its signature and
// backs call-target resolution. internal/codegen keeps its own tables
// of backend handles and does not use this package.
package symtab
