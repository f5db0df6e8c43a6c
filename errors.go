package automaton

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingField is returned when a required field or transition attribute is absent.
	ErrMissingField = errors.New("missing field")

	// ErrNotArray is returned when a list field is not an array.
	ErrNotArray = errors.New("field is not an array")

	// ErrNotString is returned when a state or symbol is not a scalar value.
	ErrNotString = errors.New("value is not a string")

	// ErrNotObject is returned when a transition is not an object.
	ErrNotObject = errors.New("value is not an object")

	// ErrEmptyField is returned when states or alphabet is empty.
	ErrEmptyField = errors.New("field is empty")

	// ErrDuplicateEntry is returned when a state or symbol is listed twice.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrDanglingState is returned when a state reference is not declared in states.
	ErrDanglingState = errors.New("state is not declared")

	// ErrUnknownSymbol is returned when a transition symbol is not in the alphabet.
	ErrUnknownSymbol = errors.New("symbol is not in the alphabet")

	// ErrEmptyAlphabetIntersection is returned when two automata share no symbol.
	ErrEmptyAlphabetIntersection = errors.New("automata have no symbols in common")

	// ErrNotDeterministic is returned when an operation needs a deterministic automaton.
	ErrNotDeterministic = errors.New("automaton is not deterministic")

	// ErrSinkNameExhausted is returned when no free sink state name could be found.
	ErrSinkNameExhausted = errors.New("no free sink state name")

	// ErrChoiceSymbolInAlphabet is returned when the union choice symbol clashes with an input symbol.
	ErrChoiceSymbolInAlphabet = errors.New("choice symbol is part of an input alphabet")

	// ErrUnknownStrategy is returned for an unknown union strategy name.
	ErrUnknownStrategy = errors.New("unknown union strategy")

	// ErrMalformedInput is returned when raw input cannot be decoded into an object.
	ErrMalformedInput = errors.New("malformed automaton input")

	// ErrUnsupportedFormat is returned for an unknown input or output format.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// ValidationKind identifies which structural check rejected an automaton.
type ValidationKind int

const (
	MissingField ValidationKind = iota
	NotArray
	NotString
	NotObject
	EmptyField
	DuplicateEntry
	DanglingState
	UnknownSymbol
)

var validationSentinels = [...]error{
	MissingField:   ErrMissingField,
	NotArray:       ErrNotArray,
	NotString:      ErrNotString,
	NotObject:      ErrNotObject,
	EmptyField:     ErrEmptyField,
	DuplicateEntry: ErrDuplicateEntry,
	DanglingState:  ErrDanglingState,
	UnknownSymbol:  ErrUnknownSymbol,
}

func (k ValidationKind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case NotArray:
		return "not an array"
	case NotString:
		return "not a string"
	case NotObject:
		return "not an object"
	case EmptyField:
		return "empty field"
	case DuplicateEntry:
		return "duplicate entry"
	case DanglingState:
		return "dangling state"
	case UnknownSymbol:
		return "unknown symbol"
	}
	return fmt.Sprintf("ValidationKind(%d)", int(k))
}

// ValidationError reports the first failed check on an automaton description.
// Index is the position inside a list field, or -1 when the field itself failed.
type ValidationError struct {
	Kind  ValidationKind
	Field string
	Value string
	Index int
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("automaton: ")
	b.WriteString(e.Field)
	if e.Index >= 0 {
		fmt.Fprintf(&b, "[%d]", e.Index)
	}
	b.WriteString(": ")
	b.WriteString(validationSentinels[e.Kind].Error())
	if e.Value != "" {
		fmt.Fprintf(&b, " (%q)", e.Value)
	}
	return b.String()
}

// Unwrap exposes the per-kind sentinel so callers can use errors.Is.
func (e *ValidationError) Unwrap() error { return validationSentinels[e.Kind] }

func invalid(kind ValidationKind, field string, index int, value string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Index: index, Value: value}
}

// NotDeterministicError is returned when a (state, symbol) pair has more than one transition.
type NotDeterministicError struct {
	State  string
	Symbol string
	Count  int
}

func (e *NotDeterministicError) Error() string {
	return fmt.Sprintf("automaton: %d transitions from state %q on symbol %q, expected at most one",
		e.Count, e.State, e.Symbol)
}

func (e *NotDeterministicError) Unwrap() error { return ErrNotDeterministic }

// EmptyAlphabetIntersectionError carries the two alphabets that failed to overlap.
type EmptyAlphabetIntersectionError struct {
	Left  []string
	Right []string
}

func (e *EmptyAlphabetIntersectionError) Error() string {
	return fmt.Sprintf("automaton: alphabets {%s} and {%s} have no symbols in common",
		strings.Join(e.Left, ", "), strings.Join(e.Right, ", "))
}

func (e *EmptyAlphabetIntersectionError) Unwrap() error { return ErrEmptyAlphabetIntersection }

// SinkNameExhaustedError is returned when every probed sink name is already a state.
type SinkNameExhaustedError struct {
	Attempts int
}

func (e *SinkNameExhaustedError) Error() string {
	return fmt.Sprintf("automaton: no free sink state name after %d attempts", e.Attempts)
}

func (e *SinkNameExhaustedError) Unwrap() error { return ErrSinkNameExhausted }
