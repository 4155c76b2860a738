package ast

// Expr is the sum IntLit | IdentRef | NewStruct | BinOp | TermExpr | Call.
type Expr interface {
	exprNode()
}

// IntLit is an integer literal.
type IntLit struct {
	Span  Span
	Value int64
}

func (*IntLit) exprNode() {}

// IdentRef reads a local (optionally through a field-access chain
// carried on Ident, e.g. a.b).
type IdentRef struct {
	Ident *Identifier
}

func (*IdentRef) exprNode() {}

// NewStruct constructs a zero-valued instance of a named struct type
// (source syntax `new t`); fields are populated afterward via Assign
// statements through a field-access identifier, not at construction.
type NewStruct struct {
	Span   Span
	Struct string
}

func (*NewStruct) exprNode() {}

// Opcode is a binary operator tag.
type Opcode uint8

const (
	Add Opcode = iota
	Sub
	Mul
	Div
	Not
	Head
	Tail
	Or
	Geq
	Cmp
)

func (op Opcode) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Not:
		return "!"
	case Head:
		return "head"
	case Tail:
		return "tail"
	case Or:
		return "|"
	case Geq:
		return ">="
	case Cmp:
		return "=="
	default:
		return "?"
	}
}

// BinOp applies Op to two terms, Left then Right, in that evaluation
// order. Unary opcodes (Not, Head, Tail) are represented with the same
// shape; the convention is that their Right operand is a zero IntTerm
// the codegen ignores.
type BinOp struct {
	Span  Span
	Op    Opcode
	Left  Term
	Right Term
}

func (*BinOp) exprNode() {}

// TermExpr wraps a single Term as an Expr, for contexts where the
// grammar allows a bare term without a surrounding operator.
type TermExpr struct {
	Term Term
}

func (*TermExpr) exprNode() {}

// Call invokes Callee with Args evaluated left to right.
type Call struct {
	Span   Span
	Callee string
	Args   []Expr
}

func (*Call) exprNode() {}

// Term is the sum IntTerm | IdentTerm, the leaves a BinOp or TermExpr
// bottoms out at.
type Term interface {
	termNode()
}

// IntTerm is an integer literal used as a term.
type IntTerm struct {
	Span  Span
	Value int64
}

func (*IntTerm) termNode() {}

// IdentTerm is a local reference (optionally field-access) used as a
// term.
type IdentTerm struct {
	Ident *Identifier
}

func (*IdentTerm) termNode() {}
