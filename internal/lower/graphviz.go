package lower

import (
	"fmt"
	"io"
	"strings"
)

// WriteDOT renders program as Graphviz DOT text, one subgraph cluster
// per function, one node per basic block, one edge per successor. No
// third-party Graphviz binding is used: the format is a handful of
// string templates, the same scale of problem golang.org/x/tools/go/cfg
// solves with its own unexported digraph() helper rather than pulling in
// a rendering library.
func WriteDOT(w io.Writer, program *Program) error {
	var sb strings.Builder
	sb.WriteString("digraph millc {\n")
	sb.WriteString("  node [shape=box, fontname=\"monospace\"];\n")

	for _, fn := range program.Functions {
		fmt.Fprintf(&sb, "  subgraph cluster_%s {\n", fn.Name)
		fmt.Fprintf(&sb, "    label=%q;\n", fn.Name)
		for _, b := range fn.Blocks {
			fmt.Fprintf(&sb, "    %s [label=%q];\n", blockNode(fn.Name, b.ID), blockLabel(b))
		}
		sb.WriteString("  }\n")
		for _, b := range fn.Blocks {
			for _, next := range b.Next {
				fmt.Fprintf(&sb, "  %s -> %s;\n", blockNode(fn.Name, b.ID), blockNode(fn.Name, next))
			}
		}
	}

	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func blockNode(fnName string, id BlockID) string {
	return fmt.Sprintf("%s_block%d", fnName, id)
}

func blockLabel(b *BasicBlock) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("block %d", b.ID))
	for _, stmt := range b.Stmts {
		lines = append(lines, statementLabel(stmt))
	}
	return strings.Join(lines, "\\l") + "\\l"
}

func statementLabel(stmt Statement) string {
	switch s := stmt.(type) {
	case RetVoidStmt:
		return "ret void"
	case RetStmt:
		return "ret " + exprLabel(s.Expr)
	case DefinitionStmt:
		return fmt.Sprintf("let %s = %s", s.Variable.Name, exprLabel(s.Expr))
	case AssignStmt:
		target := s.Variable.Name
		if len(s.FieldChain) > 0 {
			target += "." + strings.Join(s.FieldChain, ".")
		}
		return fmt.Sprintf("%s = %s", target, exprLabel(s.Expr))
	case ConditionalJump:
		return fmt.Sprintf("if %s goto block%d", exprLabel(s.Cond), s.Then)
	default:
		return fmt.Sprintf("<unknown %T>", stmt)
	}
}

func exprLabel(expr Expression) string {
	switch e := expr.(type) {
	case TermExpression:
		return termLabel(e.Term)
	case BinaryExpression:
		return fmt.Sprintf("%s %s %s", termLabel(e.Left), e.Op, termLabel(e.Right))
	case CallExpression:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = exprLabel(a)
		}
		return fmt.Sprintf("%s(%s)", e.Callee, strings.Join(args, ", "))
	case NewStructExpression:
		return "new " + e.Struct
	default:
		return fmt.Sprintf("<unknown %T>", expr)
	}
}

func termLabel(term Term) string {
	switch t := term.(type) {
	case Constant:
		return fmt.Sprintf("%d", t.Value)
	case Ident:
		name := t.Variable.Name
		if t.Variable.Generated {
			name = "%" + name
		}
		return name
	default:
		return fmt.Sprintf("<unknown %T>", term)
	}
}
