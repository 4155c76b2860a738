// Package diag defines the compiler's error kinds and formats them with
// source context, mirroring the teacher's internal/errors package but
// carrying a typed Kind (per the eight-entry table the specification
// fixes) instead of a bare message string.
package diag

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind identifies one of the fixed error classes the compiler can raise.
type Kind int

const (
	SymbolAlreadyDefined Kind = iota
	SymbolNotDefined
	FunctionNotDefined
	FunctionDefinedTwice
	FieldNotFound
	TypeMismatch
	LoweringFailure
	CodegenFailure
)

func (k Kind) String() string {
	switch k {
	case SymbolAlreadyDefined:
		return "SymbolAlreadyDefined"
	case SymbolNotDefined:
		return "SymbolNotDefined"
	case FunctionNotDefined:
		return "FunctionNotDefined"
	case FunctionDefinedTwice:
		return "FunctionDefinedTwice"
	case FieldNotFound:
		return "FieldNotFound"
	case TypeMismatch:
		return "TypeMismatch"
	case LoweringFailure:
		return "LoweringFailure"
	case CodegenFailure:
		return "CodegenFailure"
	default:
		return "Unknown"
	}
}

// Error is a single compiler diagnostic: a Kind, the name it concerns
// (a symbol, function, or field name; empty when not applicable), an
// optional source span, and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Name    string
	Left    int
	Right   int
	message string
	cause   error
}

// New creates a diagnostic with no source span (used by passes that run
// before position tracking is meaningful, e.g. internal invariant checks).
func New(kind Kind, name string, format string, args ...any) *Error {
	return &Error{Kind: kind, Name: name, message: fmt.Sprintf(format, args...)}
}

// NewAt creates a diagnostic anchored to a source span.
func NewAt(kind Kind, name string, left, right int, format string, args ...any) *Error {
	e := New(kind, name, format, args...)
	e.Left, e.Right = left, right
	return e
}

// Wrap attaches cause as the underlying reason for a new diagnostic,
// forming a causer chain that Chain can walk.
func Wrap(cause error, kind Kind, name string, format string, args ...any) *Error {
	e := New(kind, name, format, args...)
	e.cause = errors.WithStack(cause)
	return e
}

func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.message, e.Name)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.message)
}

// Cause implements the github.com/pkg/errors causer interface.
func (e *Error) Cause() error { return e.cause }

// Unwrap implements the standard library's errors.Unwrap contract so
// errors.Is/As also see through an *Error to its cause.
func (e *Error) Unwrap() error { return e.cause }

// HasSpan reports whether the diagnostic is anchored to a source range.
func (e *Error) HasSpan() bool { return e.Left != 0 || e.Right != 0 }

// Chain renders err's message followed by one "because: ..." line per
// wrapped cause, matching the original compiler's anyhow-based
// `err.chain().skip(1)` loop in main.rs.
func Chain(err error) string {
	var sb strings.Builder
	sb.WriteString(err.Error())

	type causer interface{ Cause() error }
	cur := err
	for {
		c, ok := cur.(causer)
		if !ok {
			break
		}
		cause := c.Cause()
		if cause == nil {
			break
		}
		sb.WriteString("\nbecause: ")
		sb.WriteString(cause.Error())
		cur = cause
	}
	return sb.String()
}

// LineCol converts a byte offset in source into a 1-indexed line/column
// pair. There is no separate token.Position type: spans are raw byte
// offsets per the specification, and line/column are only reconstructed
// when a diagnostic is about to be printed.
func LineCol(source string, offset int) (line, column int) {
	line, column = 1, 1
	if offset < 0 {
		return line, column
	}
	for i, r := range source {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

// FormatWithSource renders the diagnostic with a source line and caret,
// in the style of the teacher's CompilerError.Format.
func FormatWithSource(err *Error, source, file string) string {
	var sb strings.Builder

	if !err.HasSpan() {
		sb.WriteString(err.Error())
		return sb.String()
	}

	line, column := LineCol(source, err.Left)
	if file != "" {
		fmt.Fprintf(&sb, "%s in %s:%d:%d\n", err.Kind, file, line, column)
	} else {
		fmt.Fprintf(&sb, "%s at %d:%d\n", err.Kind, line, column)
	}

	lines := strings.Split(source, "\n")
	if line >= 1 && line <= len(lines) {
		lineNumStr := fmt.Sprintf("%4d | ", line)
		sb.WriteString(lineNumStr)
		sb.WriteString(lines[line-1])
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+column-1))
		sb.WriteString("^\n")
	}

	sb.WriteString(err.message)
	if err.Name != "" {
		fmt.Fprintf(&sb, " (%s)", err.Name)
	}
	return sb.String()
}
