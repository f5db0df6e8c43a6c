package automaton

// Complement returns an automaton accepting exactly the words over the alphabet of a that a
// rejects. a must be deterministic; when it is not total it is completed first, opts
// configure that completion.
func Complement(a *Automaton, opts ...CompleteOption) (*Automaton, error) {
	ia, err := index(a)
	if err != nil {
		return nil, err
	}
	if err := ia.checkDeterministic(); err != nil {
		return nil, err
	}

	total, err := ia.complete(newOptionsComplete(opts...))
	if err != nil {
		return nil, err
	}

	accept := make(map[string]struct{}, len(total.FinalStates))
	for _, s := range total.FinalStates {
		accept[s] = struct{}{}
	}
	finals := make([]string, 0, len(total.States)-len(accept))
	for _, s := range total.States {
		if _, ok := accept[s]; !ok {
			finals = append(finals, s)
		}
	}
	total.FinalStates = finals
	return total, nil
}

// Intersect returns the product automaton of a and b over their common alphabet: a product
// state accepts when both components accept. Unreachable product states are pruned.
//
// Both operands are expected to be deterministic; for nondeterministic operands every pair of
// matching transitions yields a product transition.
func Intersect(a, b *Automaton) (*Automaton, error) {
	ia, err := index(a)
	if err != nil {
		return nil, err
	}
	ib, err := index(b)
	if err != nil {
		return nil, err
	}
	return intersect(ia, ib)
}

func intersect(ia, ib *indexed) (*Automaton, error) {
	common := commonAlphabet(ia, ib)
	if len(common) == 0 {
		return nil, &EmptyAlphabetIntersectionError{
			Left:  cloneStrings(ia.src.Alphabet),
			Right: cloneStrings(ib.src.Alphabet),
		}
	}

	ps := newProductSpace(ia, ib, ia.numStates*ib.numStates)
	for _, symbol := range common {
		ps.b.AddSymbol(symbol)
	}

	for s1 := 0; s1 < ia.numStates; s1++ {
		for s2 := 0; s2 < ib.numStates; s2++ {
			id, _ := ps.state(statePair{s1, s2})
			ps.b.SetAccept(id, ia.IsAccept(s1) && ib.IsAccept(s2))
		}
	}
	initial, _ := ps.state(statePair{ia.initial, ib.initial})
	ps.b.SetInitial(initial)

	for s1 := 0; s1 < ia.numStates; s1++ {
		for s2 := 0; s2 < ib.numStates; s2++ {
			from, _ := ps.state(statePair{s1, s2})
			for _, symbol := range common {
				x1, x2 := ia.symbolIndex[symbol], ib.symbolIndex[symbol]
				for _, t1 := range ia.targets(s1, x1) {
					for _, t2 := range ib.targets(s2, x2) {
						to, _ := ps.state(statePair{t1, t2})
						ps.b.AddTransition(from, symbol, to)
					}
				}
			}
		}
	}

	product, err := index(ps.b.Finish())
	if err != nil {
		return nil, err
	}
	return product.prune(), nil
}

// commonAlphabet returns the symbols of ia that ib also has, in ia's order.
func commonAlphabet(ia, ib *indexed) []string {
	common := make([]string, 0, min(ia.numSymbols, ib.numSymbols))
	for _, symbol := range ia.src.Alphabet {
		if _, ok := ib.symbolIndex[symbol]; ok {
			common = append(common, symbol)
		}
	}
	return common
}

// Difference returns an automaton accepting the words accepted by a and rejected by b, over
// the symbols the two alphabets share. It is the intersection of a with the complement of b,
// so b must be deterministic.
func Difference(a, b *Automaton, opts ...CompleteOption) (*Automaton, error) {
	ia, err := index(a)
	if err != nil {
		return nil, err
	}
	cb, err := Complement(b, opts...)
	if err != nil {
		return nil, err
	}
	icb, err := index(cb)
	if err != nil {
		return nil, err
	}
	return intersect(ia, icb)
}
