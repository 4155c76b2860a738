package lower

import (
	"fmt"

	"github.com/mill-lang/millc/internal/ast"
	"github.com/mill-lang/millc/internal/diag"
)

// Lowering owns the monotonic block-id counter used across the whole
// program being lowered. A fresh Lowering must be created per program;
// reusing one across programs would make block ids continue counting
// rather than restart, which is harmless but surprising.
type Lowering struct {
	nextBlock BlockID
}

// NewLowering creates a Lowering with its block counter at zero.
func NewLowering() *Lowering {
	return &Lowering{}
}

// Program lowers every function in program, preserving its struct
// declarations unchanged.
func (l *Lowering) Program(program *ast.Program) (*Program, error) {
	out := &Program{Structs: program.Structs}
	for _, fn := range program.Functions {
		lf, err := l.Function(fn)
		if err != nil {
			return nil, err
		}
		out.Functions = append(out.Functions, lf)
	}
	return out, nil
}

// Function lowers a single AST function to CFG-IR.
func (l *Lowering) Function(fn *ast.Function) (*Function, error) {
	params := make([]Variable, len(fn.Params))
	for i, p := range fn.Params {
		paramType := ast.Int()
		if p.Type != nil {
			paramType = *p.Type
		}
		params[i] = Variable{Name: p.Name, Type: paramType}
	}

	lf := &Function{Name: fn.Name(), Params: params, RetType: fn.RetType}

	entry := l.newBlock(lf)
	lf.Entry = entry.ID

	if _, err := l.lowerStatements(lf, entry, fn.Stmts); err != nil {
		return nil, err
	}

	return lf, nil
}

func (l *Lowering) newBlock(fn *Function) *BasicBlock {
	b := &BasicBlock{ID: l.nextBlock}
	l.nextBlock++
	fn.Blocks = append(fn.Blocks, b)
	return b
}

// lowerStatements appends stmts to cur, spawning new blocks for each
// Conditional encountered, and returns the block execution falls
// through to after the last statement (cur itself, unless a Conditional
// was lowered, in which case it is that conditional's resume block).
func (l *Lowering) lowerStatements(fn *Function, cur *BasicBlock, stmts []ast.Statement) (*BasicBlock, error) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.RetVoid:
			cur.Stmts = append(cur.Stmts, RetVoidStmt{})
		case *ast.Ret:
			expr, err := lowerExpr(s.Expr)
			if err != nil {
				return nil, err
			}
			cur.Stmts = append(cur.Stmts, RetStmt{Expr: expr})
		case *ast.Definition:
			expr, err := lowerExpr(s.Expr)
			if err != nil {
				return nil, err
			}
			cur.Stmts = append(cur.Stmts, DefinitionStmt{Variable: Variable{Name: s.Ident.Name}, Expr: expr})
		case *ast.Assign:
			expr, err := lowerExpr(s.Expr)
			if err != nil {
				return nil, err
			}
			cur.Stmts = append(cur.Stmts, AssignStmt{
				Variable:   Variable{Name: s.Target.Name},
				FieldChain: s.Target.Chain()[1:],
				Expr:       expr,
			})
		case *ast.Conditional:
			next, err := l.lowerConditional(fn, cur, s)
			if err != nil {
				return nil, err
			}
			cur = next
		default:
			return nil, diag.New(diag.LoweringFailure, "", "unhandled statement kind %T", stmt)
		}
	}
	return cur, nil
}

// lowerConditional emits the ConditionalJump terminator in cur, lowers
// both branches into fresh blocks, wires both to a shared resume block,
// and returns resume as the block that subsequent statements append to.
func (l *Lowering) lowerConditional(fn *Function, cur *BasicBlock, cond *ast.Conditional) (*BasicBlock, error) {
	condExpr, err := lowerExpr(cond.Cond)
	if err != nil {
		return nil, err
	}

	thenBlock := l.newBlock(fn)
	cur.Stmts = append(cur.Stmts, ConditionalJump{Cond: condExpr, Then: thenBlock.ID})

	var elseBlock *BasicBlock
	if len(cond.Else) > 0 {
		elseBlock = l.newBlock(fn)
	}

	resume := l.newBlock(fn)

	if elseBlock != nil {
		cur.Next = []BlockID{thenBlock.ID, elseBlock.ID}
	} else {
		cur.Next = []BlockID{thenBlock.ID, resume.ID}
	}

	thenTail, err := l.lowerStatements(fn, thenBlock, cond.Then)
	if err != nil {
		return nil, err
	}
	thenTail.Next = append(thenTail.Next, resume.ID)

	if elseBlock != nil {
		elseTail, err := l.lowerStatements(fn, elseBlock, cond.Else)
		if err != nil {
			return nil, err
		}
		elseTail.Next = append(elseTail.Next, resume.ID)
	}

	return resume, nil
}

func lowerExpr(expr ast.Expr) (Expression, error) {
	switch e := expr.(type) {
	case *ast.IntLit:
		return TermExpression{Term: Constant{Value: e.Value}}, nil
	case *ast.IdentRef:
		return TermExpression{Term: identTerm(e.Ident)}, nil
	case *ast.TermExpr:
		return TermExpression{Term: lowerTerm(e.Term)}, nil
	case *ast.NewStruct:
		return NewStructExpression{Struct: e.Struct}, nil
	case *ast.BinOp:
		return BinaryExpression{Op: e.Op, Left: lowerTerm(e.Left), Right: lowerTerm(e.Right)}, nil
	case *ast.Call:
		args := make([]Expression, len(e.Args))
		for i, a := range e.Args {
			le, err := lowerExpr(a)
			if err != nil {
				return nil, err
			}
			args[i] = le
		}
		return CallExpression{Callee: e.Callee, Args: args}, nil
	default:
		return nil, diag.New(diag.LoweringFailure, "", "unhandled expression kind %T", expr)
	}
}

func lowerTerm(term ast.Term) Term {
	switch t := term.(type) {
	case *ast.IntTerm:
		return Constant{Value: t.Value}
	case *ast.IdentTerm:
		return identTerm(t.Ident)
	default:
		panic(fmt.Sprintf("lower: unhandled term kind %T", term))
	}
}

func identTerm(id *ast.Identifier) Term {
	return Ident{Variable: Variable{Name: id.Name}, FieldChain: id.Chain()[1:]}
}
