package boolexpr

import (
	"fmt"
	"strings"
)

var dotLabels = map[Operator]string{
	Or:   `\|\|`,
	And:  `&&`,
	Xor:  ` ⊕ `,
	Not:  `~`,
	Nand: `NAND`,
	Nor:  `NOR`,
}

// formatDot emits a Graphviz digraph of the tree. Nodes are numbered in
// pre-order; subtrees shared between transforms render as a DAG.
func formatDot(e Expression) string {
	number := make(map[Expression]int)
	Walk(e, func(node Expression) {
		if _, seen := number[node]; !seen {
			number[node] = len(number)
		}
	})

	var b strings.Builder
	b.WriteString("digraph g {\n")
	b.WriteString("\tnode [ shape=box, style=\"filled,rounded\", fontname=\"Fira Mono\", fontsize=12, fontcolor=\"#111111\" ];\n")

	emitted := make(map[Expression]bool)
	Walk(e, func(node Expression) {
		if emitted[node] {
			return
		}
		emitted[node] = true
		id := number[node]
		switch n := node.(type) {
		case *Variable:
			fmt.Fprintf(&b, "\tn%d [ label=\"%s\", fillcolor=\"#d9c2ff\" ];\n", id, n.Name)
		case *Binary:
			fmt.Fprintf(&b, "\tn%d [ label=\"%s\", fillcolor=\"#fff3b0\" ];\n", id, dotLabels[n.Op])
			fmt.Fprintf(&b, "\tn%d -> n%d;\n", id, number[n.LHS])
			fmt.Fprintf(&b, "\tn%d -> n%d;\n", id, number[n.RHS])
		case *Unary:
			fmt.Fprintf(&b, "\tn%d [ label=\"%s\", fillcolor=\"#b9d7ff\" ];\n", id, dotLabels[n.Op])
			fmt.Fprintf(&b, "\tn%d -> n%d;\n", id, number[n.Operand])
		case *Paren:
			fmt.Fprintf(&b, "\tn%d [ label=\"( )\", fillcolor=\"#c6f6c6\" ];\n", id)
			fmt.Fprintf(&b, "\tn%d -> n%d;\n", id, number[n.Inner])
		case *Constant:
			fmt.Fprintf(&b, "\tn%d [ label=\"%d\", fillcolor=\"#ffd2a6\" ];\n", id, n.Value)
		default:
			panic(fmt.Sprintf("boolexpr: unhandled node %T", node))
		}
	})
	b.WriteString("}")
	return b.String()
}
