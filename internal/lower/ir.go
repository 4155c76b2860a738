package lower

import "github.com/mill-lang/millc/internal/ast"

// BlockID names a basic block. Ids are monotonically increasing and
// dense across the whole program (the implementer's choice the
// specification allows; tests assert program-wide monotonicity).
type BlockID int

// Variable wraps a name with a flag marking whether it was synthesized
// by lowering (e.g. a call-result temporary) rather than declared in
// source, plus its declared type when known (parameters only; the zero
// Type is ast.Int(), which is also the correct answer for a local the
// codegen stage infers from whatever it was defined to, not from this
// field).
type Variable struct {
	Name      string
	Generated bool
	Type      ast.DataType
}

// Term is the lowered leaf form: either a constant or a reference to a
// Variable.
type Term interface {
	lowerTermNode()
}

// Constant is a lowered integer literal.
type Constant struct {
	Value int64
}

func (Constant) lowerTermNode() {}

// Ident is a lowered reference to a Variable, optionally through a
// field-access chain (o.a lowers to Ident{Variable: o, FieldChain: [a]}).
type Ident struct {
	Variable   Variable
	FieldChain []string
}

func (Ident) lowerTermNode() {}

// Expression mirrors ast.Expr but strips nested expressions into a flat
// Term form and a uniform Call(name, [Expression]); a BinOp's operands
// are always Terms, never nested Expressions.
type Expression interface {
	lowerExprNode()
}

// TermExpression wraps a single lowered Term.
type TermExpression struct {
	Term Term
}

func (TermExpression) lowerExprNode() {}

// BinaryExpression applies Op to two lowered terms.
type BinaryExpression struct {
	Op    ast.Opcode
	Left  Term
	Right Term
}

func (BinaryExpression) lowerExprNode() {}

// CallExpression invokes Callee with already-lowered argument
// expressions.
type CallExpression struct {
	Callee string
	Args   []Expression
}

func (CallExpression) lowerExprNode() {}

// NewStructExpression constructs a zero-valued struct instance.
type NewStructExpression struct {
	Struct string
}

func (NewStructExpression) lowerExprNode() {}

// Statement is the lowered sum: the straight-line statement forms
// carried unchanged, Conditional having been rewritten away into
// ConditionalJump plus separate blocks by the lowering pass.
type Statement interface {
	lowerStmtNode()
}

// RetVoidStmt returns with no value.
type RetVoidStmt struct{}

func (RetVoidStmt) lowerStmtNode() {}

// RetStmt returns expr's value.
type RetStmt struct {
	Expr Expression
}

func (RetStmt) lowerStmtNode() {}

// DefinitionStmt introduces Variable, binding it to Expr's value.
type DefinitionStmt struct {
	Variable Variable
	Expr     Expression
}

func (DefinitionStmt) lowerStmtNode() {}

// AssignStmt stores Expr's value into Variable, optionally through
// FieldChain (a.b.c = ... lowers to Variable a, FieldChain [b, c]).
type AssignStmt struct {
	Variable   Variable
	FieldChain []string
	Expr       Expression
}

func (AssignStmt) lowerStmtNode() {}

// ConditionalJump is the terminator a Conditional statement lowers to:
// branch to Then when Cond is non-zero, otherwise to the block's other
// successor (the else block, or the resume block when there is no else).
type ConditionalJump struct {
	Cond Expression
	Then BlockID
}

func (ConditionalJump) lowerStmtNode() {}

// BasicBlock is a straight-line sequence of lowered statements plus its
// explicit successor edges. A block with no successors and no
// terminator statement falls through to function exit.
type BasicBlock struct {
	ID    BlockID
	Stmts []Statement
	Next  []BlockID
}

// Function is an AST function lowered to CFG-IR: an entry block id plus
// the full set of blocks that belong to it, in creation order.
type Function struct {
	Name    string
	Params  []Variable
	RetType *ast.DataType
	Entry   BlockID
	Blocks  []*BasicBlock
}

// BlockByID looks up one of the function's blocks by id.
func (f *Function) BlockByID(id BlockID) (*BasicBlock, bool) {
	for _, b := range f.Blocks {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// Program is every lowered function plus the struct declarations
// lowering leaves untouched (codegen still needs them for field
// indices).
type Program struct {
	Functions []*Function
	Structs   []*ast.Struct
}
