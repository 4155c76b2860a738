// Package codegen drives github.com/llir/llvm to turn CFG-IR (internal/lower)
// into an in-memory LLVM module. It keeps five tables keyed by name —
// function, per-function symbol, per-function expression stack, block,
// and struct — exactly as the design calls for, and declares every
// function's prototype before defining any body so forward and mutually
// recursive calls resolve.
package codegen
