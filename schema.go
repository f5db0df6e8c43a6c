package automaton

// Schema names the field layout of a serialized automaton.
type Schema int

const (
	// SchemaCanonical uses finalStates and from/symbol/to transitions.
	SchemaCanonical Schema = iota
	// SchemaLegacy uses acceptStates and source/input/target transitions.
	SchemaLegacy
)

func (s Schema) String() string {
	if s == SchemaLegacy {
		return "legacy"
	}
	return "canonical"
}

type schemaFields struct {
	final, from, symbol, to string
}

func (s Schema) fields() schemaFields {
	if s == SchemaLegacy {
		return schemaFields{final: "acceptStates", from: "source", symbol: "input", to: "target"}
	}
	return schemaFields{final: "finalStates", from: "from", symbol: "symbol", to: "to"}
}

// DetectSchema guesses the layout of raw: legacy when acceptStates is given without
// finalStates, or when the first transition has a source field.
func DetectSchema(raw map[string]any) Schema {
	_, hasFinal := raw["finalStates"]
	if _, hasAccept := raw["acceptStates"]; hasAccept && !hasFinal {
		return SchemaLegacy
	}
	if transitions, ok := raw["transitions"].([]any); ok && len(transitions) > 0 {
		if first, ok := transitions[0].(map[string]any); ok {
			if _, ok := first["source"]; ok {
				return SchemaLegacy
			}
		}
	}
	return SchemaCanonical
}

// LegacyAutomaton is the source/input/target layout some callers exchange.
type LegacyAutomaton struct {
	States       []string           `json:"states" yaml:"states"`
	Alphabet     []string           `json:"alphabet" yaml:"alphabet"`
	Transitions  []LegacyTransition `json:"transitions" yaml:"transitions"`
	InitialState string             `json:"initialState" yaml:"initialState"`
	AcceptStates []string           `json:"acceptStates" yaml:"acceptStates"`
}

type LegacyTransition struct {
	Source string `json:"source" yaml:"source"`
	Input  string `json:"input" yaml:"input"`
	Target string `json:"target" yaml:"target"`
}

// ToLegacy converts a into the legacy layout.
func ToLegacy(a *Automaton) *LegacyAutomaton {
	l := &LegacyAutomaton{
		States:       cloneStrings(a.States),
		Alphabet:     cloneStrings(a.Alphabet),
		Transitions:  make([]LegacyTransition, 0, len(a.Transitions)),
		InitialState: a.InitialState,
		AcceptStates: cloneStrings(a.FinalStates),
	}
	for _, t := range a.Transitions {
		l.Transitions = append(l.Transitions, LegacyTransition{Source: t.From, Input: t.Symbol, Target: t.To})
	}
	return l
}

// Canonical converts l into an Automaton.
func (l *LegacyAutomaton) Canonical() *Automaton {
	a := &Automaton{
		States:       cloneStrings(l.States),
		Alphabet:     cloneStrings(l.Alphabet),
		Transitions:  make([]Transition, 0, len(l.Transitions)),
		InitialState: l.InitialState,
		FinalStates:  cloneStrings(l.AcceptStates),
	}
	for _, t := range l.Transitions {
		a.Transitions = append(a.Transitions, Transition{From: t.Source, Symbol: t.Input, To: t.Target})
	}
	return a
}
