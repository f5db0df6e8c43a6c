package automaton

import "strconv"

// deadState marks the implicit absorbing component of a product state.
const deadState = -1

// deadName is how the implicit dead component is printed inside a product state name.
const deadName = "∅"

var _ Hashable = statePair{}

// statePair is a product state: one state of each operand, or deadState.
type statePair struct {
	left, right int
}

func (p statePair) Hash() uint64 {
	return mixPair(p.left, p.right)
}

func (p statePair) Equals(other Hashable) bool {
	o, ok := other.(statePair)
	return ok && o == p
}

// productSpace maps product states to result states while the product is being built.
type productSpace struct {
	left, right *indexed
	ids         *HashMap[int]
	names       map[string]statePair
	b           *Builder
}

func newProductSpace(left, right *indexed, capacity int) *productSpace {
	return &productSpace{
		left:  left,
		right: right,
		ids:   NewHashMap[int](WithCapacity(capacity)),
		names: make(map[string]statePair, capacity),
		b:     NewBuilderV1(capacity, left.numSymbols+right.numSymbols),
	}
}

// state returns the result state of p, creating it on first use. created reports whether
// p was new.
func (ps *productSpace) state(p statePair) (id int, created bool) {
	if id, ok := ps.ids.Get(p); ok {
		return id, false
	}
	id = ps.b.CreateState(ps.name(p))
	ps.ids.Set(p, id)
	return id, true
}

// name renders p as "(l,r)". Two distinct pairs can render to the same text when state names
// contain commas or parentheses, in which case "#n" suffixes are probed.
func (ps *productSpace) name(p statePair) string {
	base := "(" + componentName(ps.left, p.left) + "," + componentName(ps.right, p.right) + ")"
	name := base
	for n := 1; ; n++ {
		owner, taken := ps.names[name]
		if !taken || owner == p {
			break
		}
		name = base + "#" + strconv.Itoa(n)
	}
	ps.names[name] = p
	return name
}

func componentName(ia *indexed, state int) string {
	if state == deadState {
		return deadName
	}
	return ia.stateName(state)
}
