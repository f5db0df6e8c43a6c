package automaton

import (
	"strings"

	"github.com/enetx/g"
)

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// ToDOT generates a DOT language description of a: an invisible start node pointing at the
// initial state, accept states drawn as double circles and one edge per (from, to) pair
// labelled with all of its symbols.
func ToDOT(a *Automaton) string {
	b := g.NewBuilder()

	b.WriteString("digraph automaton {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=circle, fontname=\"Helvetica\"];\n")
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	b.WriteString("  __start [shape=point, style=invis];\n")
	b.WriteString(g.Format("  __start -> \"{}\";\n\n", dotEscaper.Replace(a.InitialState)))

	for _, state := range a.States {
		shape := "circle"
		if a.IsFinal(state) {
			shape = "doublecircle"
		}
		b.WriteString(g.Format("  \"{}\" [shape={}];\n", dotEscaper.Replace(state), shape))
	}

	b.WriteByte('\n')

	for _, edge := range GroupEdges(a) {
		var labels g.Slice[g.String]
		for _, symbol := range edge.Symbols {
			labels.Push(g.String(dotEscaper.Replace(symbol)))
		}

		b.WriteString(g.Format("  \"{}\" -> \"{}\" [label=\" {} \"];\n",
			dotEscaper.Replace(edge.From), dotEscaper.Replace(edge.To), labels.Join(", ")))
	}

	b.WriteString("}\n")

	return string(b.String())
}
