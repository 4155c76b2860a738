// Package pass defines the semantic-pass framework: a Visitor contract,
// a Traversal strategy that drives it over a Program, a Pass pairing the
// two, and a Runner that executes a sequence of passes and stops at the
// first error. Only the semantic side lives here; codegen's own
// two-phase traversal is deliberately a separate, concrete driver in
// internal/codegen rather than a second implementation of Visitor, so
// that backend state never has to flow through a semantic-pass callback
// signature.
package pass
