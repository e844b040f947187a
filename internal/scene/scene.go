package scene

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/bnema/attachprop/internal/logging"
	"github.com/bnema/attachprop/pkg/attached"
	"github.com/bnema/attachprop/pkg/backend/memtree"
)

const defaultAppName = "application"

var (
	// ErrUnnamedNode is returned when a window or widget has no name.
	ErrUnnamedNode = errors.New("scene node has no name")
	// ErrDuplicateNode is returned when two nodes share a name.
	ErrDuplicateNode = errors.New("duplicate scene node name")
	// ErrUnknownNode is returned by lookups of names the scene does not hold.
	ErrUnknownNode = errors.New("unknown scene node")
)

// Scene is a built tree with its own property façade.
type Scene struct {
	App   *memtree.Application
	Props *attached.Properties

	nodes map[string]any
	names map[any]string
	// order holds node names in tree order.
	order    []string
	levels   map[string]int
	detached []*memtree.Widget
}

// NodeInfo describes one node of a scene.
type NodeInfo struct {
	Name   string
	Kind   attached.NodeKind
	Level  int
	Parent string
	// Explicit holds the properties set directly on the node.
	Explicit map[string]any
}

// Build creates the tree described by f and applies its properties. The
// façade uses a memtree hierarchy over the new tree; opts are applied after
// it.
func Build(ctx context.Context, f *File, opts ...attached.Option) (*Scene, error) {
	log := logging.FromContext(ctx).With().Str("component", "scene").Logger()

	appName := f.Application.Name
	if appName == "" {
		appName = defaultAppName
	}

	app := memtree.NewApplication(appName)
	props := attached.New(append([]attached.Option{
		attached.WithHierarchy(memtree.NewHierarchy(app)),
		attached.WithLogger(log),
	}, opts...)...)

	s := &Scene{
		App:    app,
		Props:  props,
		nodes:  make(map[string]any),
		names:  make(map[any]string),
		levels: make(map[string]int),
	}

	if err := s.register(appName, app, 0, f.Application.Properties); err != nil {
		return nil, err
	}
	for i, ws := range f.Windows {
		if ws.Name == "" {
			return nil, fmt.Errorf("%w: window #%d", ErrUnnamedNode, i+1)
		}
		w := app.NewWindow(ws.Name)
		if err := s.register(ws.Name, w, 1, ws.Properties); err != nil {
			return nil, err
		}
		for _, ns := range ws.Widgets {
			if err := s.buildWidget(ns, 2, w.Add); err != nil {
				return nil, err
			}
		}
	}
	for _, ns := range f.Detached {
		err := s.buildWidget(ns, 0, func(name string) *memtree.Widget {
			wd := memtree.NewWidget(name)
			s.detached = append(s.detached, wd)
			return wd
		})
		if err != nil {
			return nil, err
		}
	}

	log.Debug().Int("nodes", len(s.order)).Int("windows", len(f.Windows)).Msg("scene built")
	return s, nil
}

func (s *Scene) buildWidget(ns NodeDef, level int, add func(string) *memtree.Widget) error {
	if ns.Name == "" {
		return fmt.Errorf("%w: widget at level %d", ErrUnnamedNode, level)
	}
	if _, dup := s.nodes[ns.Name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, ns.Name)
	}

	wd := add(ns.Name)
	if err := s.register(ns.Name, wd, level, ns.Properties); err != nil {
		return err
	}
	for _, child := range ns.Children {
		if err := s.buildWidget(child, level+1, wd.Add); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scene) register(name string, node any, level int, props map[string]any) error {
	if _, dup := s.nodes[name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, name)
	}

	s.nodes[name] = node
	s.names[node] = name
	s.levels[name] = level
	s.order = append(s.order, name)

	for _, prop := range sortedKeys(props) {
		if err := s.Props.SetValue(node, prop, props[prop]); err != nil {
			return fmt.Errorf("failed to set %s on %q: %w", prop, name, err)
		}
	}
	return nil
}

// Node returns the node named name.
func (s *Scene) Node(name string) (any, bool) {
	n, ok := s.nodes[name]
	return n, ok
}

// NameOf returns the scene name of node.
func (s *Scene) NameOf(node any) string {
	return s.names[node]
}

// Names returns node names in tree order.
func (s *Scene) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// PropertyNames returns every property name set anywhere in the scene.
func (s *Scene) PropertyNames() []string {
	seen := make(map[string]struct{})
	for _, node := range s.nodes {
		m, ok := s.Props.Store().Lookup(node)
		if !ok {
			continue
		}
		for _, name := range m.Names() {
			seen[name] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// Info describes the node named name.
func (s *Scene) Info(name string) (NodeInfo, error) {
	node, ok := s.nodes[name]
	if !ok {
		return NodeInfo{}, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}

	info := NodeInfo{
		Name:     name,
		Kind:     s.Props.Kind(node),
		Level:    s.levels[name],
		Explicit: map[string]any{},
	}
	if m, ok := s.Props.Store().Lookup(node); ok {
		info.Explicit = m.Snapshot()
	}

	h := s.Props.Hierarchy()
	switch info.Kind {
	case attached.KindWidget:
		if c := h.Container(node); c != nil {
			info.Parent = s.names[c]
		} else if w := h.Window(node); w != nil {
			info.Parent = s.names[w]
		}
	case attached.KindWindow:
		info.Parent = s.names[h.Application()]
	}
	return info, nil
}

// Nodes describes every node in tree order.
func (s *Scene) Nodes() []NodeInfo {
	out := make([]NodeInfo, 0, len(s.order))
	for _, name := range s.order {
		info, err := s.Info(name)
		if err != nil {
			continue
		}
		out = append(out, info)
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
