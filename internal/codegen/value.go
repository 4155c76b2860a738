package codegen

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// ValueKind tags what a BasicValue represents, independent of its
// backend type: a plain Int, a Pointer to some storage slot, a
// parameter/local Identifier binding, a Function handle, or a Struct
// value.
type ValueKind uint8

const (
	KindInt ValueKind = iota
	KindPointer
	KindIdentifier
	KindFunction
	KindStruct
)

// BasicValue is the codegen's unified handle to a backend value: a Kind
// plus the llir value it wraps.
type BasicValue struct {
	Kind  ValueKind
	Value value.Value
}

// IsPointer reports whether the value must be loaded before use.
func (v BasicValue) IsPointer() bool { return v.Kind == KindPointer }

// Alloca reserves stack storage sized for v's type in block b and
// returns a Pointer-kinded BasicValue wrapping the new slot. The caller
// is responsible for storing into it.
func (v BasicValue) Alloca(b *ir.Block, name string) BasicValue {
	slot := b.NewAlloca(v.Value.Type())
	slot.SetName(name)
	return BasicValue{Kind: KindPointer, Value: slot}
}

// Store emits a store of v into an already-allocated Pointer-kinded
// slot.
func (v BasicValue) Store(b *ir.Block, slot BasicValue) {
	b.NewStore(v.Value, slot.Value)
}

// Load emits a load from a Pointer-kinded value, returning the loaded
// BasicValue tagged with kind (KindInt for scalars, KindStruct for
// struct-typed locals accessed as a whole).
func (v BasicValue) Load(b *ir.Block, elemType types.Type, kind ValueKind, name string) BasicValue {
	loaded := b.NewLoad(elemType, v.Value)
	loaded.SetName(name)
	return BasicValue{Kind: kind, Value: loaded}
}
