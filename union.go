package automaton

import (
	"fmt"
	"strings"
)

// Epsilon is the default choice symbol of ChoiceUnion.
const Epsilon = "ε"

// UnionStrategy builds an automaton whose language is the union of the languages of a and b.
type UnionStrategy interface {
	Union(a, b *Automaton) (*Automaton, error)
}

var (
	_ UnionStrategy = ChoiceUnion{}
	_ UnionStrategy = ProductUnion{}
)

// StrategyByName resolves "choice" or "product".
func StrategyByName(name string) (UnionStrategy, error) {
	switch strings.ToLower(name) {
	case "choice":
		return DefaultChoiceUnion, nil
	case "product":
		return ProductUnion{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// ChoiceUnion is the structural union used for display: both operands are copied side by
// side under distinct prefixes and a new initial state branches into each of them on the
// Epsilon symbol. The result is not deterministic.
type ChoiceUnion struct {
	Epsilon     string
	LeftPrefix  string
	RightPrefix string
	Initial     string
}

var DefaultChoiceUnion = ChoiceUnion{
	Epsilon:     Epsilon,
	LeftPrefix:  "A_",
	RightPrefix: "B_",
	Initial:     "q_union",
}

// UnionChoice applies DefaultChoiceUnion.
func UnionChoice(a, b *Automaton) (*Automaton, error) {
	return DefaultChoiceUnion.Union(a, b)
}

func (c ChoiceUnion) Union(a, b *Automaton) (*Automaton, error) {
	ia, err := index(a)
	if err != nil {
		return nil, err
	}
	ib, err := index(b)
	if err != nil {
		return nil, err
	}
	if _, ok := ia.symbolIndex[c.Epsilon]; ok {
		return nil, fmt.Errorf("%w: %q", ErrChoiceSymbolInAlphabet, c.Epsilon)
	}
	if _, ok := ib.symbolIndex[c.Epsilon]; ok {
		return nil, fmt.Errorf("%w: %q", ErrChoiceSymbolInAlphabet, c.Epsilon)
	}
	if c.LeftPrefix == c.RightPrefix {
		return nil, fmt.Errorf("automaton: choice union prefixes must differ, both are %q", c.LeftPrefix)
	}

	builder := NewBuilderV1(1+ia.numStates+ib.numStates, ia.numSymbols+ib.numSymbols+1)
	initial := builder.CreateState(c.Initial)
	builder.SetInitial(initial)

	leftInitial := c.copyInto(builder, ia, c.LeftPrefix)
	rightInitial := c.copyInto(builder, ib, c.RightPrefix)
	if builder.GetNumStates() != 1+ia.numStates+ib.numStates {
		return nil, fmt.Errorf("automaton: choice union state names %q, %q+state, %q+state are not unique",
			c.Initial, c.LeftPrefix, c.RightPrefix)
	}

	builder.AddSymbol(c.Epsilon)
	result := builder.Finish()

	// the two branch transitions come first, as the UI lists them
	branches := []Transition{
		{From: c.Initial, Symbol: c.Epsilon, To: leftInitial},
		{From: c.Initial, Symbol: c.Epsilon, To: rightInitial},
	}
	result.Transitions = append(branches, result.Transitions...)
	return result, nil
}

// copyInto adds every state and transition of ia under prefix and returns the prefixed
// initial state name.
func (c ChoiceUnion) copyInto(builder *Builder, ia *indexed, prefix string) string {
	for s, name := range ia.src.States {
		id := builder.CreateState(prefix + name)
		builder.SetAccept(id, ia.IsAccept(s))
	}
	for _, symbol := range ia.src.Alphabet {
		builder.AddSymbol(symbol)
	}
	for _, t := range ia.src.Transitions {
		from := builder.CreateState(prefix + t.From)
		to := builder.CreateState(prefix + t.To)
		builder.AddTransition(from, t.Symbol, to)
	}
	return prefix + ia.src.InitialState
}

// ProductUnion is the synchronized product union: both deterministic operands are run in
// lockstep over the union alphabet, a missing transition leads to an implicit dead state, and
// a product state accepts when either component accepts. The result is a complete DFA
// containing only reachable states.
type ProductUnion struct{}

// UnionProduct applies ProductUnion.
func UnionProduct(a, b *Automaton) (*Automaton, error) {
	return ProductUnion{}.Union(a, b)
}

func (ProductUnion) Union(a, b *Automaton) (*Automaton, error) {
	ia, err := index(a)
	if err != nil {
		return nil, err
	}
	ib, err := index(b)
	if err != nil {
		return nil, err
	}
	if err := ia.checkDeterministic(); err != nil {
		return nil, err
	}
	if err := ib.checkDeterministic(); err != nil {
		return nil, err
	}

	alphabet := cloneStrings(ia.src.Alphabet)
	for _, symbol := range ib.src.Alphabet {
		if _, ok := ia.symbolIndex[symbol]; !ok {
			alphabet = append(alphabet, symbol)
		}
	}

	ps := newProductSpace(ia, ib, ia.numStates+ib.numStates)
	for _, symbol := range alphabet {
		ps.b.AddSymbol(symbol)
	}

	start := statePair{ia.initial, ib.initial}
	initial, _ := ps.state(start)
	ps.b.SetInitial(initial)
	ps.b.SetAccept(initial, ia.IsAccept(start.left) || ib.IsAccept(start.right))

	workList := []statePair{start}
	for len(workList) > 0 {
		current := workList[0]
		workList = workList[1:]
		from, _ := ps.state(current)

		for _, symbol := range alphabet {
			next := statePair{ia.Step(current.left, symbol), ib.Step(current.right, symbol)}
			to, created := ps.state(next)
			if created {
				ps.b.SetAccept(to, ia.IsAccept(next.left) || ib.IsAccept(next.right))
				workList = append(workList, next)
			}
			ps.b.AddTransition(from, symbol, to)
		}
	}

	return ps.b.Finish(), nil
}
