// Package check implements the three semantic passes that validate a
// Program before it reaches lowering or codegen: function-definition
// uniqueness, call-target resolution, and return-type consistency. The
// fourth logical check, local binding, is embedded in ast.NewFunction
// rather than implemented here (see internal/ast's declarations.go).
package check
