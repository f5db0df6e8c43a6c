package automaton

import (
	"encoding/json"
	"strconv"
)

// Validate checks a decoded automaton description (as produced by decoding JSON or YAML into
// map[string]any) and converts it into an Automaton. Either field layout is accepted, see
// DetectSchema. Checks run in a fixed order and the first failure is returned as a
// *ValidationError:
//
//   - states, alphabet, transitions and the final states field are present arrays;
//   - initialState is present;
//   - every state, symbol and final state is a scalar;
//   - states and alphabet are non-empty and duplicate-free;
//   - initialState and every final state are declared states;
//   - every transition is an object with from, symbol and to, referencing declared states
//     and a symbol of the alphabet.
func Validate(raw map[string]any) (*Automaton, error) {
	fields := DetectSchema(raw).fields()

	lists := make(map[string][]any, 4)
	for _, key := range []string{"states", "alphabet", "transitions", fields.final} {
		v, ok := raw[key]
		if !ok || v == nil {
			return nil, invalid(MissingField, key, -1, "")
		}
		list, ok := v.([]any)
		if !ok {
			return nil, invalid(NotArray, key, -1, "")
		}
		lists[key] = list
	}

	rawInitial, ok := raw["initialState"]
	if !ok || rawInitial == nil {
		return nil, invalid(MissingField, "initialState", -1, "")
	}
	initial, ok := scalar(rawInitial)
	if !ok {
		return nil, invalid(NotString, "initialState", -1, "")
	}
	if initial == "" {
		return nil, invalid(MissingField, "initialState", -1, "")
	}

	a := &Automaton{InitialState: initial}
	var err error
	if a.States, err = scalars("states", lists["states"]); err != nil {
		return nil, err
	}
	if a.Alphabet, err = scalars("alphabet", lists["alphabet"]); err != nil {
		return nil, err
	}
	if a.FinalStates, err = scalars(fields.final, lists[fields.final]); err != nil {
		return nil, err
	}

	if len(a.States) == 0 {
		return nil, invalid(EmptyField, "states", -1, "")
	}
	if len(a.Alphabet) == 0 {
		return nil, invalid(EmptyField, "alphabet", -1, "")
	}
	states, err := nameTable("states", a.States)
	if err != nil {
		return nil, err
	}
	symbols, err := nameTable("alphabet", a.Alphabet)
	if err != nil {
		return nil, err
	}

	if _, ok := states[a.InitialState]; !ok {
		return nil, invalid(DanglingState, "initialState", -1, a.InitialState)
	}
	for i, s := range a.FinalStates {
		if _, ok := states[s]; !ok {
			return nil, invalid(DanglingState, fields.final, i, s)
		}
	}

	rawTransitions := lists["transitions"]
	a.Transitions = make([]Transition, 0, len(rawTransitions))
	for i, v := range rawTransitions {
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, invalid(NotObject, "transitions", i, "")
		}

		var t Transition
		for _, f := range []struct {
			key string
			dst *string
		}{{fields.from, &t.From}, {fields.symbol, &t.Symbol}, {fields.to, &t.To}} {
			s, ok := scalar(obj[f.key])
			if !ok || s == "" {
				return nil, invalid(MissingField, "transitions."+f.key, i, "")
			}
			*f.dst = s
		}

		if _, ok := states[t.From]; !ok {
			return nil, invalid(DanglingState, "transitions."+fields.from, i, t.From)
		}
		if _, ok := states[t.To]; !ok {
			return nil, invalid(DanglingState, "transitions."+fields.to, i, t.To)
		}
		if _, ok := symbols[t.Symbol]; !ok {
			return nil, invalid(UnknownSymbol, "transitions."+fields.symbol, i, t.Symbol)
		}
		a.Transitions = append(a.Transitions, t)
	}

	return a, nil
}

func scalars(field string, list []any) ([]string, error) {
	out := make([]string, 0, len(list))
	for i, v := range list {
		s, ok := scalar(v)
		if !ok {
			return nil, invalid(NotString, field, i, "")
		}
		out = append(out, s)
	}
	return out, nil
}

// scalar renders the scalar values decoders produce as a string. YAML turns unquoted 0 and 1
// into integers, JSON into float64.
func scalar(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case json.Number:
		return v.String(), true
	}
	return "", false
}
