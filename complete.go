package automaton

import "strconv"

// SinkNamer yields the i-th candidate name for a sink state, starting at 0.
type SinkNamer func(i int) string

// DefaultSinkNamer yields "sink", "sink1", "sink2", ...
var DefaultSinkNamer = PrefixSinkNamer("sink")

// PrefixSinkNamer yields prefix, prefix1, prefix2, ...
func PrefixSinkNamer(prefix string) SinkNamer {
	return func(i int) string {
		if i == 0 {
			return prefix
		}
		return prefix + strconv.Itoa(i)
	}
}

type optionsComplete struct {
	namer SinkNamer
}

type CompleteOption func(*optionsComplete)

func newOptionsComplete(opts ...CompleteOption) *optionsComplete {
	options := &optionsComplete{
		namer: DefaultSinkNamer,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithSinkNamer sets the generator used to probe for a free sink state name.
func WithSinkNamer(namer SinkNamer) CompleteOption {
	return func(o *optionsComplete) {
		if namer != nil {
			o.namer = namer
		}
	}
}

// WithSinkPrefix probes prefix, prefix1, prefix2, ... for the sink state name.
func WithSinkPrefix(prefix string) CompleteOption {
	return WithSinkNamer(PrefixSinkNamer(prefix))
}

// Complete makes the transition function of a total by routing every missing (state, symbol)
// pair to a fresh, non-accepting sink state that loops on every symbol. An automaton that is
// already total is returned as a copy.
func Complete(a *Automaton, opts ...CompleteOption) (*Automaton, error) {
	ia, err := index(a)
	if err != nil {
		return nil, err
	}
	return ia.complete(newOptionsComplete(opts...))
}

func (ia *indexed) complete(opts *optionsComplete) (*Automaton, error) {
	missing := ia.missing()
	result := ia.src.Clone()
	if len(missing) == 0 {
		return result, nil
	}

	sink, err := ia.sinkName(opts.namer)
	if err != nil {
		return nil, err
	}

	result.States = append(result.States, sink)
	for _, m := range missing {
		result.Transitions = append(result.Transitions, Transition{From: m.State, Symbol: m.Symbol, To: sink})
	}
	for _, symbol := range result.Alphabet {
		result.Transitions = append(result.Transitions, Transition{From: sink, Symbol: symbol, To: sink})
	}
	return result, nil
}

// sinkName probes at most numStates+1 candidates, enough for an injective namer to find a
// free name.
func (ia *indexed) sinkName(namer SinkNamer) (string, error) {
	attempts := ia.numStates + 1
	for i := 0; i < attempts; i++ {
		name := namer(i)
		if _, taken := ia.stateIndex[name]; !taken {
			return name, nil
		}
	}
	return "", &SinkNameExhaustedError{Attempts: attempts}
}
