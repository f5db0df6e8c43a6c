package automaton

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Automaton is a finite automaton over string symbols. States and symbols are identified by
// name; the order of States and Alphabet only affects the naming and ordering of derived
// automata, never their language. Operations in this package never mutate an Automaton they
// receive, they always return a new value.
type Automaton struct {
	States       []string     `json:"states" yaml:"states"`
	Alphabet     []string     `json:"alphabet" yaml:"alphabet"`
	Transitions  []Transition `json:"transitions" yaml:"transitions"`
	InitialState string       `json:"initialState" yaml:"initialState"`
	FinalStates  []string     `json:"finalStates" yaml:"finalStates"`
}

// Transition is a single (from, symbol, to) triple.
type Transition struct {
	From   string `json:"from" yaml:"from"`
	Symbol string `json:"symbol" yaml:"symbol"`
	To     string `json:"to" yaml:"to"`
}

// Clone returns a deep copy of a.
func (a *Automaton) Clone() *Automaton {
	return &Automaton{
		States:       cloneStrings(a.States),
		Alphabet:     cloneStrings(a.Alphabet),
		Transitions:  append(make([]Transition, 0, len(a.Transitions)), a.Transitions...),
		InitialState: a.InitialState,
		FinalStates:  cloneStrings(a.FinalStates),
	}
}

// IsFinal Returns true if state is an accept state.
func (a *Automaton) IsFinal(state string) bool {
	return slices.Contains(a.FinalStates, state)
}

// Validate checks the structural invariants of a typed automaton: non-empty, duplicate-free
// states and alphabet, and no dangling state or symbol reference.
func (a *Automaton) Validate() error {
	if len(a.States) == 0 {
		return invalid(EmptyField, "states", -1, "")
	}
	if len(a.Alphabet) == 0 {
		return invalid(EmptyField, "alphabet", -1, "")
	}
	states, err := nameTable("states", a.States)
	if err != nil {
		return err
	}
	symbols, err := nameTable("alphabet", a.Alphabet)
	if err != nil {
		return err
	}

	if _, ok := states[a.InitialState]; !ok {
		return invalid(DanglingState, "initialState", -1, a.InitialState)
	}
	for i, s := range a.FinalStates {
		if _, ok := states[s]; !ok {
			return invalid(DanglingState, "finalStates", i, s)
		}
	}
	for i, t := range a.Transitions {
		if _, ok := states[t.From]; !ok {
			return invalid(DanglingState, "transitions.from", i, t.From)
		}
		if _, ok := states[t.To]; !ok {
			return invalid(DanglingState, "transitions.to", i, t.To)
		}
		if _, ok := symbols[t.Symbol]; !ok {
			return invalid(UnknownSymbol, "transitions.symbol", i, t.Symbol)
		}
	}
	return nil
}

// nameTable maps every name to its position, rejecting duplicates.
func nameTable(field string, names []string) (map[string]int, error) {
	table := make(map[string]int, len(names))
	for i, name := range names {
		if _, ok := table[name]; ok {
			return nil, invalid(DuplicateEntry, field, i, name)
		}
		table[name] = i
	}
	return table, nil
}

func cloneStrings(s []string) []string {
	return append(make([]string, 0, len(s)), s...)
}

// Builder assembles an Automaton state by state. States are integers handed out by
// CreateState, in creation order; the first created state is the initial state unless
// SetInitial says otherwise.
type Builder struct {
	states      []string
	stateIndex  map[string]int
	alphabet    []string
	symbolIndex map[string]struct{}
	transitions []Transition
	initial     int
	isAccept    *bitset.BitSet
}

func NewBuilder() *Builder {
	return NewBuilderV1(2, 2)
}

func NewBuilderV1(numStates, numSymbols int) *Builder {
	return &Builder{
		states:      make([]string, 0, numStates),
		stateIndex:  make(map[string]int, numStates),
		alphabet:    make([]string, 0, numSymbols),
		symbolIndex: make(map[string]struct{}, numSymbols),
		isAccept:    bitset.New(uint(numStates)),
	}
}

// CreateState Create a new state, or return the existing one with the same name.
func (b *Builder) CreateState(name string) int {
	if s, ok := b.stateIndex[name]; ok {
		return s
	}
	s := len(b.states)
	b.states = append(b.states, name)
	b.stateIndex[name] = s
	return s
}

// GetNumStates How many states this builder has.
func (b *Builder) GetNumStates() int {
	return len(b.states)
}

// SetAccept Set or clear this state as an accept state.
func (b *Builder) SetAccept(state int, accept bool) {
	b.isAccept.SetTo(uint(state), accept)
}

func (b *Builder) IsAccept(state int) bool {
	return b.isAccept.Test(uint(state))
}

func (b *Builder) SetInitial(state int) {
	b.initial = state
}

// AddSymbol appends symbol to the alphabet unless it is already there.
func (b *Builder) AddSymbol(symbol string) {
	if _, ok := b.symbolIndex[symbol]; ok {
		return
	}
	b.symbolIndex[symbol] = struct{}{}
	b.alphabet = append(b.alphabet, symbol)
}

// AddTransition Add a new transition with the specified source, symbol and dest. The symbol
// joins the alphabet if it is not part of it yet.
func (b *Builder) AddTransition(source int, symbol string, dest int) {
	b.AddSymbol(symbol)
	b.transitions = append(b.transitions, Transition{
		From:   b.states[source],
		Symbol: symbol,
		To:     b.states[dest],
	})
}

// Finish returns the built automaton. The builder must not be used afterwards.
func (b *Builder) Finish() *Automaton {
	result := &Automaton{
		States:      b.states,
		Alphabet:    b.alphabet,
		Transitions: b.transitions,
		FinalStates: make([]string, 0),
	}
	if result.Transitions == nil {
		result.Transitions = make([]Transition, 0)
	}
	if len(b.states) > 0 {
		result.InitialState = b.states[b.initial]
	}

	for s, ok := b.isAccept.NextSet(0); ok && int(s) < len(b.states); s, ok = b.isAccept.NextSet(s + 1) {
		result.FinalStates = append(result.FinalStates, b.states[s])
	}
	return result
}
