package automaton

import "github.com/bits-and-blooms/bitset"

// indexed is the integer view every algorithm works on. States and symbols are numbered by
// their position in the source automaton; delta holds, for state s and symbol x, the
// destinations at delta[s*numSymbols+x] in transition order.
type indexed struct {
	src         *Automaton
	stateIndex  map[string]int
	symbolIndex map[string]int
	numStates   int
	numSymbols  int
	initial     int
	isAccept    *bitset.BitSet
	delta       [][]int
}

// index validates a and builds its integer view.
func index(a *Automaton) (*indexed, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	ia := &indexed{
		src:         a,
		stateIndex:  make(map[string]int, len(a.States)),
		symbolIndex: make(map[string]int, len(a.Alphabet)),
		numStates:   len(a.States),
		numSymbols:  len(a.Alphabet),
		isAccept:    bitset.New(uint(len(a.States))),
		delta:       make([][]int, len(a.States)*len(a.Alphabet)),
	}
	for i, s := range a.States {
		ia.stateIndex[s] = i
	}
	for i, x := range a.Alphabet {
		ia.symbolIndex[x] = i
	}
	ia.initial = ia.stateIndex[a.InitialState]
	for _, s := range a.FinalStates {
		ia.isAccept.Set(uint(ia.stateIndex[s]))
	}
	for _, t := range a.Transitions {
		slot := ia.slot(ia.stateIndex[t.From], ia.symbolIndex[t.Symbol])
		ia.delta[slot] = append(ia.delta[slot], ia.stateIndex[t.To])
	}
	return ia, nil
}

func (ia *indexed) slot(state, symbol int) int {
	return state*ia.numSymbols + symbol
}

// IsAccept Returns true if this state is an accept state.
func (ia *indexed) IsAccept(state int) bool {
	return state >= 0 && ia.isAccept.Test(uint(state))
}

// targets returns all destinations of state on symbol.
func (ia *indexed) targets(state, symbol int) []int {
	return ia.delta[ia.slot(state, symbol)]
}

// Step Performs lookup in transitions, assuming determinism. Returns the destination state,
// -1 if state is -1, the symbol is unknown or there is no matching outgoing transition.
func (ia *indexed) Step(state int, symbol string) int {
	if state < 0 {
		return -1
	}
	x, ok := ia.symbolIndex[symbol]
	if !ok {
		return -1
	}
	dest := ia.targets(state, x)
	if len(dest) == 0 {
		return -1
	}
	return dest[0]
}

func (ia *indexed) stateName(state int) string {
	return ia.src.States[state]
}
