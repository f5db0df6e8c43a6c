package automaton

import "github.com/bits-and-blooms/bitset"

// PruneUnreachable removes every state that cannot be reached from the initial state, along
// with the transitions and accept states that mention it. The alphabet and the initial state
// are kept as is. Pruning a pruned automaton returns an equal copy.
func PruneUnreachable(a *Automaton) (*Automaton, error) {
	ia, err := index(a)
	if err != nil {
		return nil, err
	}
	return ia.prune(), nil
}

// reachable returns the states reachable from the initial state.
func (ia *indexed) reachable() *bitset.BitSet {
	live := bitset.New(uint(ia.numStates))
	workList := make([]int, 0, ia.numStates)
	live.Set(uint(ia.initial))
	workList = append(workList, ia.initial)

	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for x := 0; x < ia.numSymbols; x++ {
			for _, dest := range ia.targets(s, x) {
				if !live.Test(uint(dest)) {
					live.Set(uint(dest))
					workList = append(workList, dest)
				}
			}
		}
	}
	return live
}

func (ia *indexed) prune() *Automaton {
	live := ia.reachable()
	a := ia.src

	result := &Automaton{
		States:       make([]string, 0, live.Count()),
		Alphabet:     cloneStrings(a.Alphabet),
		Transitions:  make([]Transition, 0, len(a.Transitions)),
		InitialState: a.InitialState,
		FinalStates:  make([]string, 0, len(a.FinalStates)),
	}
	for i, s := range a.States {
		if live.Test(uint(i)) {
			result.States = append(result.States, s)
		}
	}
	for _, t := range a.Transitions {
		if live.Test(uint(ia.stateIndex[t.From])) && live.Test(uint(ia.stateIndex[t.To])) {
			result.Transitions = append(result.Transitions, t)
		}
	}
	for _, s := range a.FinalStates {
		if live.Test(uint(ia.stateIndex[s])) {
			result.FinalStates = append(result.FinalStates, s)
		}
	}
	return result
}
