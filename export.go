package automaton

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormat is an encoding understood by Export.
type OutputFormat string

const (
	OutputJSON       OutputFormat = "json"
	OutputLegacyJSON OutputFormat = "legacy-json"
	OutputYAML       OutputFormat = "yaml"
	OutputQuintuple  OutputFormat = "quintuple"
	OutputDOT        OutputFormat = "dot"
)

// Export writes a to w in the requested format.
func Export(w io.Writer, a *Automaton, format OutputFormat) error {
	switch format {
	case OutputJSON:
		return writeJSON(w, a)
	case OutputLegacyJSON:
		return writeJSON(w, ToLegacy(a))
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(a); err != nil {
			return fmt.Errorf("automaton: encode yaml: %w", err)
		}
		return enc.Close()
	case OutputQuintuple:
		_, err := io.WriteString(w, Quintuple(a))
		return err
	case OutputDOT:
		_, err := io.WriteString(w, ToDOT(a))
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("automaton: encode json: %w", err)
	}
	return nil
}

// Quintuple describes a as the formal tuple M = (Q, Σ, δ, q0, F), with δ as a table. Missing
// entries print as "-", several targets for one entry are comma separated.
func Quintuple(a *Automaton) string {
	var b strings.Builder
	b.WriteString("M = (Q, Σ, δ, q0, F)\n\n")
	b.WriteString("Q = {" + strings.Join(a.States, ", ") + "}\n\n")
	b.WriteString("Σ = {" + strings.Join(a.Alphabet, ", ") + "}\n\n")
	b.WriteString("δ: Q × Σ → Q\n")

	b.WriteString("state\t|")
	for _, symbol := range a.Alphabet {
		b.WriteString(" δ(q," + symbol + ")\t|")
	}
	b.WriteString("\n" + strings.Repeat("-", 16*(len(a.Alphabet)+1)) + "\n")

	targets := make(map[[2]string][]string, len(a.Transitions))
	for _, t := range a.Transitions {
		key := [2]string{t.From, t.Symbol}
		targets[key] = append(targets[key], t.To)
	}
	for _, s := range a.States {
		b.WriteString(s + "\t|")
		for _, symbol := range a.Alphabet {
			cell := "-"
			if to, ok := targets[[2]string{s, symbol}]; ok {
				cell = strings.Join(to, ",")
			}
			b.WriteString(" " + cell + "\t|")
		}
		b.WriteByte('\n')
	}

	b.WriteString("\nq0 = " + a.InitialState + "\n\n")
	b.WriteString("F = {" + strings.Join(a.FinalStates, ", ") + "}\n")
	return b.String()
}

// Edge is every transition between one pair of states, as drawn by a renderer.
type Edge struct {
	From    string
	To      string
	Symbols []string
}

// GroupEdges groups the transitions of a by (from, to) in order of first appearance.
func GroupEdges(a *Automaton) []Edge {
	edges := make([]Edge, 0, len(a.Transitions))
	position := make(map[[2]string]int, len(a.Transitions))
	for _, t := range a.Transitions {
		key := [2]string{t.From, t.To}
		i, ok := position[key]
		if !ok {
			i = len(edges)
			position[key] = i
			edges = append(edges, Edge{From: t.From, To: t.To})
		}
		edges[i].Symbols = append(edges[i].Symbols, t.Symbol)
	}
	return edges
}
