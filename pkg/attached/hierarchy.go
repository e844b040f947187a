package attached

// NodeKind classifies a node of a toolkit's containment hierarchy.
type NodeKind uint8

const (
	// KindNone marks non-visual objects such as controllers or view models.
	KindNone NodeKind = iota
	// KindWidget marks a visual element that may sit inside a container.
	KindWidget
	// KindWindow marks a top-level window.
	KindWindow
	// KindApplication marks the process-wide application root.
	KindApplication
)

func (k NodeKind) String() string {
	switch k {
	case KindWidget:
		return "widget"
	case KindWindow:
		return "window"
	case KindApplication:
		return "application"
	default:
		return "none"
	}
}

// IsVisual reports whether nodes of this kind take part in inheritance.
func (k NodeKind) IsVisual() bool {
	return k != KindNone
}

//go:generate mockgen -destination=mocks/mock_hierarchy.go -package=mocks github.com/bnema/attachprop/pkg/attached Hierarchy

// Hierarchy exposes the native containment tree of a UI toolkit.
// Implementations query the toolkit live and never cache parent links.
type Hierarchy interface {
	// Kind classifies node.
	Kind(node any) NodeKind

	// Container returns the immediate visual container of node, or nil.
	Container(node any) any

	// Window returns the top-level window that node belongs to, or nil.
	Window(node any) any

	// Application returns the application root, or nil.
	Application() any
}

// Canonicalizer is implemented by hierarchies whose toolkit hands out
// different Go values for the same native object. Canonical returns the value
// used as the store key for node.
type Canonicalizer interface {
	Canonical(node any) any
}

// CanonicalLookup is implemented by canonicalizers that can find the canonical
// value of node without registering it. Reads go through LookupCanonical so
// they have no side effects on the toolkit; ok is false when node was never
// canonicalized, which means nothing is stored for it.
type CanonicalLookup interface {
	LookupCanonical(node any) (canonical any, ok bool)
}

// Wrapper is implemented by thin view abstractions around a native object.
// The façade unwraps them so every wrapper of an object shares its entry.
type Wrapper interface {
	Native() any
}

// maxUnwrap bounds wrapper chains whose Native returns itself.
const maxUnwrap = 16

// Unwrap strips Wrapper layers from owner.
func Unwrap(owner any) any {
	for range maxUnwrap {
		w, ok := owner.(Wrapper)
		if !ok {
			return owner
		}
		inner := w.Native()
		if isNil(inner) {
			return owner
		}
		owner = inner
	}
	return owner
}

// flatHierarchy is used until a backend is installed. Nothing is visual.
type flatHierarchy struct{}

func (flatHierarchy) Kind(any) NodeKind { return KindNone }
func (flatHierarchy) Container(any) any { return nil }
func (flatHierarchy) Window(any) any    { return nil }
func (flatHierarchy) Application() any  { return nil }

// nextParent returns the node after current on the inheritance chain, or nil
// at the end.
func nextParent(h Hierarchy, current any) any {
	switch h.Kind(current) {
	case KindWidget:
		if c := h.Container(current); !isNil(c) {
			return c
		}
		if w := h.Window(current); !isNil(w) {
			return w
		}
		return nil
	case KindWindow:
		if c := h.Container(current); !isNil(c) {
			return c
		}
		if app := h.Application(); !isNil(app) {
			return app
		}
		return nil
	default:
		return nil
	}
}
