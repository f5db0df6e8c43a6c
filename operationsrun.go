package automaton

import "github.com/bits-and-blooms/bitset"

type optionsRun struct {
	epsilon    string
	hasEpsilon bool
}

type RunOption func(*optionsRun)

// WithEpsilon makes symbol a silent transition, as produced by ChoiceUnion.
func WithEpsilon(symbol string) RunOption {
	return func(o *optionsRun) {
		o.epsilon = symbol
		o.hasEpsilon = true
	}
}

// Runner decides whether words are accepted. It tracks the set of active states, so it works
// for nondeterministic automata too.
type Runner struct {
	ia      *indexed
	epsilon int
}

func NewRunner(a *Automaton, opts ...RunOption) (*Runner, error) {
	options := &optionsRun{}
	for _, opt := range opts {
		opt(options)
	}

	ia, err := index(a)
	if err != nil {
		return nil, err
	}
	r := &Runner{ia: ia, epsilon: -1}
	if options.hasEpsilon {
		if x, ok := ia.symbolIndex[options.epsilon]; ok {
			r.epsilon = x
		}
	}
	return r, nil
}

// Run Returns true if the word, one symbol per element, is accepted.
func (r *Runner) Run(word ...string) bool {
	ia := r.ia
	current := bitset.New(uint(ia.numStates))
	current.Set(uint(ia.initial))
	r.closure(current)

	for _, symbol := range word {
		x, ok := ia.symbolIndex[symbol]
		if !ok || x == r.epsilon {
			return false
		}
		next := bitset.New(uint(ia.numStates))
		for s, ok := current.NextSet(0); ok; s, ok = current.NextSet(s + 1) {
			for _, dest := range ia.targets(int(s), x) {
				next.Set(uint(dest))
			}
		}
		if next.None() {
			return false
		}
		r.closure(next)
		current = next
	}

	return current.IntersectionCardinality(ia.isAccept) > 0
}

// closure adds every state reachable through epsilon transitions.
func (r *Runner) closure(set *bitset.BitSet) {
	if r.epsilon < 0 {
		return
	}
	workList := make([]int, 0, set.Count())
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		workList = append(workList, int(s))
	}
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for _, dest := range r.ia.targets(s, r.epsilon) {
			if !set.Test(uint(dest)) {
				set.Set(uint(dest))
				workList = append(workList, dest)
			}
		}
	}
}

// Run Returns true if a accepts the word. Invalid automata accept nothing.
func Run(a *Automaton, word ...string) bool {
	r, err := NewRunner(a)
	if err != nil {
		return false
	}
	return r.Run(word...)
}
