package codegen

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"

	"github.com/mill-lang/millc/internal/ast"
	"github.com/mill-lang/millc/internal/diag"
	"github.com/mill-lang/millc/internal/lower"
)

// TargetTriple is the only target the driver emits for; the
// specification fixes a single output module and triple rather than
// exposing cross-compilation as a concern of the core.
const TargetTriple = "x86_64-unknown-linux-gnu"

// ModuleName is the fixed name of the emitted LLVM module.
const ModuleName = "main"

// Codegen owns every backend table for the duration of one
// compilation. It is a stateless visitor in the sense the design notes
// call for: the only per-call state that survives across functions is
// the monotonic temp-name counter; symbol table and expression stack
// are rebuilt per function.
type Codegen struct {
	module    *ir.Module
	functions *functionTable
	structs   *structTable
	blocks    *blockTable

	tempCounter int

	// per-function state, valid only while Generate is defining a
	// function's body
	symbols *symbolTable
	stack   *exprStack
	cur     *ir.Block
	curNext []lower.BlockID
	fn      *ir.Func
	irBlock map[lower.BlockID]*ir.Block
}

// New creates a Codegen with an empty module targeting TargetTriple.
func New() *Codegen {
	m := ir.NewModule()
	m.SourceFilename = ModuleName
	m.TargetTriple = TargetTriple
	return &Codegen{
		module:    m,
		functions: newFunctionTable(),
		structs:   newStructTable(),
		blocks:    newBlockTable(),
	}
}

// Generate lowers program's structs and functions into c's module,
// declaring every function prototype before defining any body so
// forward and mutually recursive calls resolve.
func (c *Codegen) Generate(program *lower.Program) (*ir.Module, error) {
	for _, s := range program.Structs {
		if err := c.declareStruct(s); err != nil {
			return nil, err
		}
	}

	for _, fn := range program.Functions {
		if err := c.declareFunction(fn); err != nil {
			return nil, err
		}
	}

	for _, fn := range program.Functions {
		if err := c.defineFunction(fn); err != nil {
			return nil, err
		}
	}

	return c.module, nil
}

func (c *Codegen) declareStruct(s *ast.Struct) error {
	fieldTypes := make([]types.Type, len(s.Fields))
	for i, f := range s.Fields {
		t, err := c.llvmType(f.Type)
		if err != nil {
			return err
		}
		fieldTypes[i] = t
	}
	st := types.NewStruct(fieldTypes...)
	st.SetName(s.Name())
	c.module.TypeDefs = append(c.module.TypeDefs, st)
	c.structs.Declare(s.Name(), s, st)
	return nil
}

func (c *Codegen) declareFunction(fn *lower.Function) error {
	retType, err := c.returnType(fn.RetType)
	if err != nil {
		return err
	}

	irFn := c.module.NewFunc(fn.Name, retType)
	for _, p := range fn.Params {
		paramType, err := c.llvmType(p.Type)
		if err != nil {
			return err
		}
		irFn.Params = append(irFn.Params, ir.NewParam(p.Name, paramType))
	}

	entry := irFn.NewBlock("entry")
	c.functions.Declare(fn.Name, irFn, len(fn.Params), fn.RetType != nil)
	c.blocks.Declare(fn.Name, entry)
	return nil
}

func (c *Codegen) defineFunction(fn *lower.Function) error {
	entry, ok := c.blocks.Lookup(fn.Name)
	if !ok {
		return diag.New(diag.CodegenFailure, fn.Name, "function %q has no declared entry block", fn.Name)
	}
	entryInfo, ok := c.functions.Lookup(fn.Name)
	if !ok {
		return diag.New(diag.CodegenFailure, fn.Name, "function %q has no declared prototype", fn.Name)
	}

	c.fn = entryInfo.Func
	c.symbols = newSymbolTable()
	c.stack = newExprStack()
	c.irBlock = map[lower.BlockID]*ir.Block{fn.Entry: entry}
	c.cur = entry

	for i, p := range fn.Params {
		paramValue := BasicValue{Kind: kindForType(p.Type), Value: entryInfo.Func.Params[i]}
		slot := paramValue.Alloca(c.cur, p.Name+"_ptr")
		paramValue.Store(c.cur, slot)
		c.symbols.Define(p.Name, slot)
	}

	for _, b := range fn.Blocks {
		if b.ID == fn.Entry {
			continue
		}
		c.irBlock[b.ID] = c.fn.NewBlock(fmt.Sprintf("block%d", b.ID))
	}

	for _, b := range fn.Blocks {
		if err := c.defineBlock(fn, b); err != nil {
			return err
		}
	}

	return nil
}

func (c *Codegen) defineBlock(fn *lower.Function, b *lower.BasicBlock) error {
	c.cur = c.irBlock[b.ID]
	c.curNext = b.Next

	for _, stmt := range b.Stmts {
		if err := c.emitStatement(stmt); err != nil {
			return err
		}
		if !c.stack.Empty() {
			return diag.New(diag.CodegenFailure, fn.Name, "expression stack not empty after statement in block %d", b.ID)
		}
	}

	if c.cur.Term != nil {
		return nil
	}

	switch len(b.Next) {
	case 0:
		if fn.RetType == nil {
			c.cur.NewRet(nil)
			return nil
		}
		// A block that no non-returning block leads to (the resume block
		// of a conditional whose branches all return) is unreachable.
		live := b.ID == fn.Entry
		for _, pred := range fn.Blocks {
			if n := len(pred.Stmts); n > 0 {
				switch pred.Stmts[n-1].(type) {
				case lower.RetStmt, lower.RetVoidStmt:
					continue
				}
			}
			for _, id := range pred.Next {
				live = live || id == b.ID
			}
		}
		if live {
			return diag.New(diag.CodegenFailure, fn.Name, "block %d falls off the end of non-void function %q without a return", b.ID, fn.Name)
		}
		c.cur.NewUnreachable()
	default:
		c.cur.NewBr(c.irBlock[b.Next[0]])
	}
	return nil
}
