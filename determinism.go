package automaton

// MissingTransition is a (state, symbol) pair without any outgoing transition.
type MissingTransition struct {
	State  string
	Symbol string
}

// IsDeterministic Returns true if no (state, symbol) pair has more than one outgoing
// transition. Invalid automata are reported as not deterministic.
func IsDeterministic(a *Automaton) bool {
	return CheckDeterministic(a) == nil
}

// CheckDeterministic returns a *NotDeterministicError for the first (state, symbol) pair, in
// states then alphabet order, that has more than one outgoing transition.
func CheckDeterministic(a *Automaton) error {
	ia, err := index(a)
	if err != nil {
		return err
	}
	return ia.checkDeterministic()
}

func (ia *indexed) checkDeterministic() error {
	for s := 0; s < ia.numStates; s++ {
		for x := 0; x < ia.numSymbols; x++ {
			if n := len(ia.targets(s, x)); n > 1 {
				return &NotDeterministicError{
					State:  ia.stateName(s),
					Symbol: ia.src.Alphabet[x],
					Count:  n,
				}
			}
		}
	}
	return nil
}

// IsComplete Returns true if every (state, symbol) pair has exactly one outgoing transition.
func IsComplete(a *Automaton) bool {
	ia, err := index(a)
	if err != nil {
		return false
	}
	for slot := range ia.delta {
		if len(ia.delta[slot]) != 1 {
			return false
		}
	}
	return true
}

// MissingTransitions lists the (state, symbol) pairs without any transition, state-major.
func MissingTransitions(a *Automaton) ([]MissingTransition, error) {
	ia, err := index(a)
	if err != nil {
		return nil, err
	}
	return ia.missing(), nil
}

func (ia *indexed) missing() []MissingTransition {
	var missing []MissingTransition
	for s := 0; s < ia.numStates; s++ {
		for x := 0; x < ia.numSymbols; x++ {
			if len(ia.targets(s, x)) == 0 {
				missing = append(missing, MissingTransition{
					State:  ia.stateName(s),
					Symbol: ia.src.Alphabet[x],
				})
			}
		}
	}
	return missing
}
