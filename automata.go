package automaton

// Automata builds small single-state automata over a given alphabet.
type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a new (deterministic) automaton with the empty language.
func (*Automata) MakeEmpty(alphabet ...string) (*Automaton, error) {
	return makeSingleState(alphabet, false, false)
}

// MakeEmptyString
// Returns a new (deterministic) automaton that accepts only the empty string.
func (*Automata) MakeEmptyString(alphabet ...string) (*Automaton, error) {
	return makeSingleState(alphabet, true, false)
}

// MakeAnyString
// Returns a new (deterministic, complete) automaton that accepts all strings.
func (*Automata) MakeAnyString(alphabet ...string) (*Automaton, error) {
	return makeSingleState(alphabet, true, true)
}

func makeSingleState(alphabet []string, accept, loop bool) (*Automaton, error) {
	b := NewBuilder()
	s := b.CreateState("q0")
	b.SetAccept(s, accept)
	for _, symbol := range alphabet {
		b.AddSymbol(symbol)
	}
	if loop {
		for _, symbol := range b.alphabet {
			b.AddTransition(s, symbol, s)
		}
	}

	a := b.Finish()
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}
