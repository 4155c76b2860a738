package codegen

import (
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/mill-lang/millc/internal/ast"
	"github.com/mill-lang/millc/internal/diag"
	"github.com/mill-lang/millc/internal/lower"
)

// emitExpr evaluates a lowered expression, leaving exactly one
// BasicValue on the stack, except for a call to a void function, which
// leaves none.
func (c *Codegen) emitExpr(expr lower.Expression) error {
	switch e := expr.(type) {
	case lower.TermExpression:
		return c.emitTerm(e.Term)

	case lower.BinaryExpression:
		return c.emitBinary(e)

	case lower.CallExpression:
		return c.emitCall(e)

	case lower.NewStructExpression:
		return c.emitNewStruct(e)

	default:
		return diag.New(diag.CodegenFailure, "", "unhandled lowered expression kind %T", expr)
	}
}

func (c *Codegen) emitTerm(term lower.Term) error {
	switch t := term.(type) {
	case lower.Constant:
		c.stack.Push(BasicValue{Kind: KindInt, Value: constant.NewInt(Int, t.Value)})
		return nil

	case lower.Ident:
		return c.emitIdentTerm(t)

	default:
		return diag.New(diag.CodegenFailure, "", "unhandled lowered term kind %T", term)
	}
}

func (c *Codegen) emitIdentTerm(t lower.Ident) error {
	base, ok := c.symbols.Lookup(t.Variable.Name)
	if !ok {
		return diag.New(diag.CodegenFailure, t.Variable.Name, "reference to undefined symbol %q", t.Variable.Name)
	}

	if len(t.FieldChain) > 0 {
		fieldPtr, err := c.resolveFieldPointer(base, t.FieldChain)
		if err != nil {
			return err
		}
		base = fieldPtr
	}

	if !base.IsPointer() {
		c.stack.Push(base)
		return nil
	}
	elemType := base.Value.Type().(*types.PointerType).ElemType
	loaded := base.Load(c.cur, elemType, kindForElem(elemType), c.tempName())
	c.stack.Push(loaded)
	return nil
}

func kindForElem(t types.Type) ValueKind {
	if _, ok := t.(*types.StructType); ok {
		return KindStruct
	}
	return KindInt
}

// kindForType is kindForElem's ast-side counterpart, used where a
// BasicValue's kind must be picked from a declared ast.DataType rather
// than from an already-built backend type (parameter binding runs
// before any getelementptr or load gives us one of those).
func kindForType(t ast.DataType) ValueKind {
	if t.Kind == ast.StructKind {
		return KindStruct
	}
	return KindInt
}

// emitBinary evaluates both operands left-then-right (push order), then
// pops right-then-left (LIFO), per the specification's fixed operand
// order.
func (c *Codegen) emitBinary(e lower.BinaryExpression) error {
	if err := c.emitTerm(e.Left); err != nil {
		return err
	}
	if err := c.emitTerm(e.Right); err != nil {
		return err
	}

	right := c.stack.Pop()
	left := c.stack.Pop()

	result, err := c.emitOpcode(e.Op, left, right)
	if err != nil {
		return err
	}
	c.stack.Push(result)
	return nil
}

// emitOpcode emits the builder instruction for op. Head and Tail hint
// at a list-oriented runtime the source's later evolution never
// finished; the specification explicitly permits rejecting them as
// unsupported rather than inventing lowering for them.
func (c *Codegen) emitOpcode(op ast.Opcode, left, right BasicValue) (BasicValue, error) {
	switch op {
	case ast.Add:
		return BasicValue{Kind: KindInt, Value: c.cur.NewAdd(left.Value, right.Value)}, nil
	case ast.Sub:
		return BasicValue{Kind: KindInt, Value: c.cur.NewSub(left.Value, right.Value)}, nil
	case ast.Mul:
		return BasicValue{Kind: KindInt, Value: c.cur.NewMul(left.Value, right.Value)}, nil
	case ast.Div:
		return BasicValue{Kind: KindInt, Value: c.cur.NewSDiv(left.Value, right.Value)}, nil
	case ast.Or:
		return BasicValue{Kind: KindInt, Value: c.cur.NewOr(left.Value, right.Value)}, nil
	case ast.Not:
		return BasicValue{Kind: KindInt, Value: c.cur.NewXor(left.Value, constI32(1))}, nil
	case ast.Cmp:
		return BasicValue{Kind: KindInt, Value: c.cur.NewICmp(enum.IPredEQ, left.Value, right.Value)}, nil
	case ast.Geq:
		return BasicValue{Kind: KindInt, Value: c.cur.NewICmp(enum.IPredSGE, left.Value, right.Value)}, nil
	case ast.Head, ast.Tail:
		return BasicValue{}, diag.New(diag.CodegenFailure, op.String(), "opcode %q is not supported by this backend", op)
	default:
		return BasicValue{}, diag.New(diag.CodegenFailure, "", "unhandled opcode %v", op)
	}
}

// emitCall evaluates every argument expression left to right (pushing
// each onto the stack as it goes), then pops them in reverse (LIFO)
// into a slice restored to left-to-right order before building the
// call, exactly as the specification requires.
func (c *Codegen) emitCall(e lower.CallExpression) error {
	for _, arg := range e.Args {
		if err := c.emitExpr(arg); err != nil {
			return err
		}
	}

	args := make([]BasicValue, len(e.Args))
	for i := len(e.Args) - 1; i >= 0; i-- {
		args[i] = c.stack.Pop()
	}

	entry, ok := c.functions.Lookup(e.Callee)
	if !ok {
		return diag.New(diag.CodegenFailure, e.Callee, "call to undeclared function %q", e.Callee)
	}
	if len(args) != entry.ArgC {
		return diag.New(diag.CodegenFailure, e.Callee, "call to %q passes %d arguments, want %d", e.Callee, len(args), entry.ArgC)
	}

	argValues := make([]value.Value, len(args))
	for i, a := range args {
		argValues[i] = a.Value
	}

	call := c.cur.NewCall(entry.Func, argValues...)
	if entry.HasRet {
		call.SetName(c.tempName())
		c.stack.Push(BasicValue{Kind: KindInt, Value: call})
	}
	return nil
}

// emitNewStruct constructs a zero-valued instance of a struct type,
// pushing it as a Struct-kinded BasicValue wrapping a zeroinitializer
// constant; the consuming Definition statement allocas and stores it.
func (c *Codegen) emitNewStruct(e lower.NewStructExpression) error {
	entry, ok := c.structs.Lookup(e.Struct)
	if !ok {
		return diag.New(diag.CodegenFailure, e.Struct, "struct %q not registered in struct table", e.Struct)
	}
	c.stack.Push(BasicValue{Kind: KindStruct, Value: constant.NewZeroInitializer(entry.Type)})
	return nil
}
