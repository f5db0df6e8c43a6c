package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		a    *Automaton
		word []string
		want bool
	}{
		{"empty word rejected", oddZeros(), nil, false},
		{"single zero", oddZeros(), []string{"0"}, true},
		{"two zeros", oddZeros(), []string{"0", "1", "0"}, false},
		{"three zeros", oddZeros(), []string{"0", "0", "1", "0"}, true},
		{"unknown symbol", oddZeros(), []string{"0", "2"}, false},
		{"missing transition", startsWithA(), []string{"b", "a"}, false},
		{"partial accepted", startsWithA(), []string{"a", "b", "b"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equalf(t, tt.want, Run(tt.a, tt.word...), "Run(%v)", tt.word)
		})
	}
}

func TestRunInvalid(t *testing.T) {
	a := oddZeros()
	a.FinalStates = []string{"nowhere"}
	assert.False(t, Run(a, "0"))

	_, err := NewRunner(a)
	assert.ErrorIs(t, err, ErrDanglingState)
}

func TestRunnerNondeterministic(t *testing.T) {
	// words over {a, b} whose second to last symbol is a
	nfa := &Automaton{
		States:   []string{"n0", "n1", "n2"},
		Alphabet: []string{"a", "b"},
		Transitions: []Transition{
			{"n0", "a", "n0"},
			{"n0", "b", "n0"},
			{"n0", "a", "n1"},
			{"n1", "a", "n2"},
			{"n1", "b", "n2"},
		},
		InitialState: "n0",
		FinalStates:  []string{"n2"},
	}
	r, err := NewRunner(nfa)
	require.NoError(t, err)

	for _, w := range words(nfa.Alphabet, 5) {
		want := len(w) >= 2 && w[len(w)-2] == "a"
		assert.Equal(t, want, r.Run(w...), "%v", w)
	}
}

func TestRunnerEpsilon(t *testing.T) {
	a := &Automaton{
		States:   []string{"i", "x", "y"},
		Alphabet: []string{"e", "a"},
		Transitions: []Transition{
			{"i", "e", "x"},
			{"x", "e", "y"},
			{"y", "a", "y"},
		},
		InitialState: "i",
		FinalStates:  []string{"y"},
	}

	r, err := NewRunner(a, WithEpsilon("e"))
	require.NoError(t, err)
	assert.True(t, r.Run())
	assert.True(t, r.Run("a", "a"))
	assert.False(t, r.Run("e"))

	// without the option e is an ordinary symbol
	assert.False(t, Run(a))
	assert.True(t, Run(a, "e", "e", "a"))

	// an epsilon that is not in the alphabet changes nothing
	r, err = NewRunner(a, WithEpsilon(Epsilon))
	require.NoError(t, err)
	assert.False(t, r.Run())
}
