package ast

// Span is a source range expressed as two byte offsets into the
// concatenated source buffer the parser consumed. Lexing and grammar
// parsing are out of scope for this package; Span is deliberately just
// two ints rather than a richer token.Position, since nothing downstream
// of the parser needs more than "where did this name come from".
type Span struct {
	Left  int
	Right int
}

// Identifier is a name together with its source span, an optional
// declared type, and an optional field-access chain (for a.b.c style
// references). Equality and use as a map key are always by Name alone;
// Span and Type are metadata carried for diagnostics and codegen.
type Identifier struct {
	Name  string
	Span  Span
	Type  *DataType
	Field *Identifier
}

// NewIdentifier creates an identifier with no declared type and no
// field-access chain.
func NewIdentifier(name string, span Span) *Identifier {
	return &Identifier{Name: name, Span: span}
}

// WithType returns a copy of id with its declared type set.
func (id *Identifier) WithType(t DataType) *Identifier {
	cp := *id
	cp.Type = &t
	return &cp
}

// WithField returns a copy of id with its field-access chain set.
func (id *Identifier) WithField(field *Identifier) *Identifier {
	cp := *id
	cp.Field = field
	return &cp
}

// IsFieldAccess reports whether id carries a chained field reference.
func (id *Identifier) IsFieldAccess() bool {
	return id.Field != nil
}

// Chain returns the field-access chain as a flat slice of names, base
// first: a.b.c becomes ["a", "b", "c"].
func (id *Identifier) Chain() []string {
	names := []string{id.Name}
	for f := id.Field; f != nil; f = f.Field {
		names = append(names, f.Name)
	}
	return names
}

func (id *Identifier) String() string {
	if id.Field == nil {
		return id.Name
	}
	return id.Name + "." + id.Field.String()
}

// DataKind is the tag of the DataType sum.
type DataKind uint8

const (
	IntKind DataKind = iota
	StructKind
)

// DataType is the sum Int | Struct(name). A Struct(name) reference is
// resolved against the program's struct table at codegen time, not here.
type DataType struct {
	Kind   DataKind
	Struct string
}

// Int is the built-in integer type.
func Int() DataType { return DataType{Kind: IntKind} }

// StructRef names a user-defined struct type by name.
func StructRef(name string) DataType { return DataType{Kind: StructKind, Struct: name} }

// Equal reports whether two data types denote the same type.
func (t DataType) Equal(other DataType) bool {
	return t.Kind == other.Kind && t.Struct == other.Struct
}

func (t DataType) String() string {
	if t.Kind == IntKind {
		return "int"
	}
	return t.Struct
}

// Program is the ordered list of functions and struct declarations that
// make up a compilation unit. Function names must be unique (invariant
// 1); this is enforced by internal/check, not by Program itself.
type Program struct {
	Functions []*Function
	Structs   []*Struct
}

// StructByName looks up a struct declaration by name.
func (p *Program) StructByName(name string) (*Struct, bool) {
	for _, s := range p.Structs {
		if s.Ident.Name == name {
			return s, true
		}
	}
	return nil, false
}

// FunctionByName looks up a function declaration by name.
func (p *Program) FunctionByName(name string) (*Function, bool) {
	for _, f := range p.Functions {
		if f.Ident.Name == name {
			return f, true
		}
	}
	return nil, false
}
