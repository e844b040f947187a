package attached

// Resolution is the outcome of an inheriting read.
type Resolution struct {
	// Value is the resolved value, nil when not found.
	Value any
	// Found reports whether some node on the chain held the property.
	Found bool
	// Source is the node that supplied Value.
	Source any
	// Depth is the number of parent steps from the start node to Source.
	Depth int
}

// Walk visits node and then every node on its inheritance chain until fn
// returns false or the chain ends. The chain is read live from the installed
// hierarchy on each step. A cyclic native hierarchy makes Walk loop forever.
func (p *Properties) Walk(node any, fn func(node any, kind NodeKind, depth int) bool) {
	h := p.Hierarchy()
	current := Unwrap(node)
	for depth := 0; !isNil(current); depth++ {
		if !fn(current, h.Kind(current), depth) {
			return
		}
		current = Unwrap(nextParent(h, current))
	}
}

// Resolve returns the value of name on visual or on its closest ancestor that
// has one. The start node is checked first and an explicit value there ends
// the walk without consulting the hierarchy.
func (p *Properties) Resolve(visual any, name string) Resolution {
	h := p.Hierarchy()
	current := Unwrap(visual)
	for depth := 0; !isNil(current); depth++ {
		if k, ok := readKey(h, current); ok {
			if v, ok := p.store.TryGet(k, name); ok {
				return Resolution{Value: v, Found: true, Source: current, Depth: depth}
			}
		}
		current = Unwrap(nextParent(h, current))
	}
	return Resolution{}
}

// GetInheritedValue returns the value of name on visual or its closest
// ancestor.
func (p *Properties) GetInheritedValue(visual any, name string) (any, bool) {
	r := p.Resolve(visual, name)
	return r.Value, r.Found
}
