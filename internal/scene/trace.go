package scene

import (
	"fmt"

	"github.com/bnema/attachprop/pkg/attached"
)

// Step is one node visited while resolving a property.
type Step struct {
	Name  string
	Kind  attached.NodeKind
	Depth int
	// Has reports whether the node holds the property explicitly.
	Has   bool
	Value any
}

// Trace is the chain visited by an inheriting read.
type Trace struct {
	Node       string
	Property   string
	Steps      []Step
	Resolution attached.Resolution
}

// SourceName returns the name of the node that supplied the value, or "".
func (t Trace) SourceName() string {
	if !t.Resolution.Found {
		return ""
	}
	return t.Steps[len(t.Steps)-1].Name
}

// Trace resolves property on the node named name and records every visited
// node up to the one holding the value.
func (s *Scene) Trace(name, property string) (Trace, error) {
	node, ok := s.nodes[name]
	if !ok {
		return Trace{}, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}

	t := Trace{Node: name, Property: property}
	s.Props.Walk(node, func(n any, kind attached.NodeKind, depth int) bool {
		v, has := s.Props.GetValue(n, property)
		t.Steps = append(t.Steps, Step{
			Name:  s.names[n],
			Kind:  kind,
			Depth: depth,
			Has:   has,
			Value: v,
		})
		return !has
	})
	t.Resolution = s.Props.Resolve(node, property)
	return t, nil
}

// Inherited resolves every scene property on the node named name.
func (s *Scene) Inherited(name string) (map[string]attached.Resolution, error) {
	node, ok := s.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}

	out := make(map[string]attached.Resolution)
	for _, prop := range s.PropertyNames() {
		if r := s.Props.Resolve(node, prop); r.Found {
			out[prop] = r
		}
	}
	return out, nil
}
