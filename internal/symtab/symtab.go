package symtab

import "github.com/mill-lang/millc/internal/ast"

// NameSet is a scoped set of names, used wherever a pass only needs to
// know "has this name been bound", not what it is bound to. Lookups
// fall through to an outer scope when one is attached; Define always
// writes to the current scope.
type NameSet struct {
	names map[string]struct{}
	outer *NameSet
}

// NewNameSet creates an empty, unscoped name set.
func NewNameSet() *NameSet {
	return &NameSet{names: make(map[string]struct{})}
}

// NewEnclosedNameSet creates a name set whose lookups fall through to
// outer when a name is not found locally.
func NewEnclosedNameSet(outer *NameSet) *NameSet {
	ns := NewNameSet()
	ns.outer = outer
	return ns
}

// Define adds name to the current scope, reporting whether it was
// already present (in this scope only; callers that need outer-scope
// shadowing rules should consult Has first).
func (ns *NameSet) Define(name string) (alreadyDefined bool) {
	_, exists := ns.names[name]
	ns.names[name] = struct{}{}
	return exists
}

// Has reports whether name is bound in this scope or any enclosing one.
func (ns *NameSet) Has(name string) bool {
	if _, ok := ns.names[name]; ok {
		return true
	}
	if ns.outer != nil {
		return ns.outer.Has(name)
	}
	return false
}

// HasLocal reports whether name is bound in this scope, ignoring outer
// scopes.
func (ns *NameSet) HasLocal(name string) bool {
	_, ok := ns.names[name]
	return ok
}

// FunctionSignature is a function's argument types plus its optional
// return type (nil means void).
type FunctionSignature struct {
	ArgTypes []ast.DataType
	RetType  *ast.DataType
}

// FunctionTable maps a function name to its signature, built once from
// the program's declarations and consulted by call-target resolution.
type FunctionTable struct {
	entries map[string]FunctionSignature
}

// NewFunctionTable builds a FunctionTable from every function in decls.
func NewFunctionTable(decls []*ast.Function) *FunctionTable {
	ft := &FunctionTable{entries: make(map[string]FunctionSignature, len(decls))}
	for _, fn := range decls {
		ft.entries[fn.Name()] = signatureOf(fn)
	}
	return ft
}

func signatureOf(fn *ast.Function) FunctionSignature {
	argTypes := make([]ast.DataType, len(fn.Params))
	for i, p := range fn.Params {
		if p.Type != nil {
			argTypes[i] = *p.Type
		}
	}
	return FunctionSignature{ArgTypes: argTypes, RetType: fn.RetType}
}

// Lookup returns the signature registered for name.
func (ft *FunctionTable) Lookup(name string) (FunctionSignature, bool) {
	sig, ok := ft.entries[name]
	return sig, ok
}

// Has reports whether a function by that name was registered.
func (ft *FunctionTable) Has(name string) bool {
	_, ok := ft.entries[name]
	return ok
}

// Names returns every registered function name in map-iteration order,
// suitable for tests that need a roster rather than an ordered list.
func (ft *FunctionTable) Names() []string {
	names := make([]string, 0, len(ft.entries))
	for name := range ft.entries {
		names = append(names, name)
	}
	return names
}
