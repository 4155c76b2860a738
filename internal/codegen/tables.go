package codegen

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"

	"github.com/mill-lang/millc/internal/ast"
)

// functionEntry is the Function table's per-name value: the backend
// function handle plus the signature used to validate call arity.
type functionEntry struct {
	Func    *ir.Func
	ArgC    int
	HasRet  bool
}

// functionTable maps a function name to its declared backend handle.
// Populated in full during the declare phase, before any body is
// defined, so a call to a function defined later in the source still
// resolves.
type functionTable struct {
	entries map[string]functionEntry
}

func newFunctionTable() *functionTable {
	return &functionTable{entries: make(map[string]functionEntry)}
}

func (t *functionTable) Declare(name string, fn *ir.Func, argc int, hasRet bool) {
	t.entries[name] = functionEntry{Func: fn, ArgC: argc, HasRet: hasRet}
}

func (t *functionTable) Lookup(name string) (functionEntry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

// symbolTable is the per-function name → BasicValue map, populated by
// parameter binding and by Definition statements. It is discarded (not
// reused) at function exit.
type symbolTable struct {
	entries map[string]BasicValue
}

func newSymbolTable() *symbolTable {
	return &symbolTable{entries: make(map[string]BasicValue)}
}

func (t *symbolTable) Define(name string, v BasicValue) { t.entries[name] = v }

func (t *symbolTable) Lookup(name string) (BasicValue, bool) {
	v, ok := t.entries[name]
	return v, ok
}

// exprStack is the per-function LIFO of BasicValues produced by
// sub-expression evaluation and drained by the statement that consumes
// them. It must be empty after every statement.
type exprStack struct {
	values []BasicValue
}

func newExprStack() *exprStack { return &exprStack{} }

func (s *exprStack) Push(v BasicValue) { s.values = append(s.values, v) }

func (s *exprStack) Pop() BasicValue {
	n := len(s.values)
	v := s.values[n-1]
	s.values = s.values[:n-1]
	return v
}

func (s *exprStack) Empty() bool { return len(s.values) == 0 }

// structEntry is the Struct table's per-name value: the AST declaration
// (for field-index lookups) plus the backend struct type it was lowered
// to.
type structEntry struct {
	Decl *ast.Struct
	Type *types.StructType
}

// structTable maps a struct name to its AST declaration and backend
// type.
type structTable struct {
	entries map[string]structEntry
}

func newStructTable() *structTable {
	return &structTable{entries: make(map[string]structEntry)}
}

func (t *structTable) Declare(name string, decl *ast.Struct, ty *types.StructType) {
	t.entries[name] = structEntry{Decl: decl, Type: ty}
}

func (t *structTable) Lookup(name string) (structEntry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

// blockTable maps a function name to the ir.Block positioned at its
// entry, used to find where to start appending instructions for a
// function whose body hasn't been visited yet.
type blockTable struct {
	entries map[string]*ir.Block
}

func newBlockTable() *blockTable {
	return &blockTable{entries: make(map[string]*ir.Block)}
}

func (t *blockTable) Declare(name string, b *ir.Block) { t.entries[name] = b }

func (t *blockTable) Lookup(name string) (*ir.Block, bool) {
	b, ok := t.entries[name]
	return b, ok
}
