package codegen

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"

	"github.com/mill-lang/millc/internal/diag"
	"github.com/mill-lang/millc/internal/lower"
)

// emitStatement emits one lowered statement. Every branch that pushes
// onto the expression stack is responsible for popping everything it
// pushed before returning; defineBlock asserts the stack is empty once
// this returns.
func (c *Codegen) emitStatement(stmt lower.Statement) error {
	switch s := stmt.(type) {
	case lower.RetVoidStmt:
		c.cur.NewRet(nil)
		return nil

	case lower.RetStmt:
		if err := c.emitExpr(s.Expr); err != nil {
			return err
		}
		v := c.stack.Pop()
		c.cur.NewRet(v.Value)
		return nil

	case lower.DefinitionStmt:
		if err := c.emitExpr(s.Expr); err != nil {
			return err
		}
		v := c.stack.Pop()
		slot := v.Alloca(c.cur, s.Variable.Name+"_ptr")
		v.Store(c.cur, slot)
		c.symbols.Define(s.Variable.Name, slot)
		return nil

	case lower.AssignStmt:
		return c.emitAssign(s)

	case lower.ConditionalJump:
		return c.emitConditionalJump(s)

	default:
		return diag.New(diag.CodegenFailure, "", "unhandled lowered statement kind %T", stmt)
	}
}

func (c *Codegen) emitAssign(s lower.AssignStmt) error {
	if err := c.emitExpr(s.Expr); err != nil {
		return err
	}
	v := c.stack.Pop()

	base, ok := c.symbols.Lookup(s.Variable.Name)
	if !ok {
		return diag.New(diag.CodegenFailure, s.Variable.Name, "assignment to undefined symbol %q", s.Variable.Name)
	}

	if len(s.FieldChain) == 0 {
		v.Store(c.cur, base)
		return nil
	}

	slot, err := c.resolveFieldPointer(base, s.FieldChain)
	if err != nil {
		return err
	}
	v.Store(c.cur, slot)
	return nil
}

// resolveFieldPointer walks a field-access chain left to right, each
// step looking up the current struct's field index and emitting a
// getelementptr, returning a Pointer-kinded BasicValue to the final
// field.
func (c *Codegen) resolveFieldPointer(base BasicValue, chain []string) (BasicValue, error) {
	cur := base
	for _, field := range chain {
		structType, ok := cur.Value.Type().(*types.PointerType).ElemType.(*types.StructType)
		if !ok {
			return BasicValue{}, diag.New(diag.CodegenFailure, field, "field access on a non-struct pointer")
		}

		entry, err := c.structEntryForType(structType)
		if err != nil {
			return BasicValue{}, err
		}

		idx, err := entry.Decl.FieldIndex(field)
		if err != nil {
			return BasicValue{}, err
		}

		gep := c.cur.NewGetElementPtr(structType, cur.Value,
			constZero(), constI32(int64(idx)))
		gep.SetName(c.tempName())
		cur = BasicValue{Kind: KindPointer, Value: gep}
	}
	return cur, nil
}

func (c *Codegen) structEntryForType(st *types.StructType) (structEntry, error) {
	for _, entry := range c.structs.entries {
		if entry.Type == st {
			return entry, nil
		}
	}
	return structEntry{}, diag.New(diag.CodegenFailure, "", "struct type not registered in struct table")
}

func (c *Codegen) emitConditionalJump(s lower.ConditionalJump) error {
	if err := c.emitExpr(s.Cond); err != nil {
		return err
	}
	cond := c.stack.Pop()

	thenBlock := c.irBlock[s.Then]
	elseBlock, err := c.elseTarget(s.Then)
	if err != nil {
		return err
	}
	c.cur.NewCondBr(cond.Value, thenBlock, elseBlock)
	return nil
}

// elseTarget is the block the current block's successor list names
// besides then: the else/resume block a ConditionalJump branches to
// when its condition is zero. lower.lowerConditional always records
// exactly [then, elseOrResume] as the current block's Next.
func (c *Codegen) elseTarget(then lower.BlockID) (*ir.Block, error) {
	for _, id := range c.curNext {
		if id != then {
			return c.irBlock[id], nil
		}
	}
	return nil, diag.New(diag.CodegenFailure, "", "conditional jump has no else/resume successor")
}
