// Package fynebackend implements attached.Hierarchy over Fyne canvas objects.
//
// Fyne objects do not know their parent, so containment is recomputed on
// every query by searching the content tree of each open window.
package fynebackend

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"github.com/rs/zerolog"

	"github.com/bnema/attachprop/internal/logging"
	"github.com/bnema/attachprop/pkg/attached"
)

// Hierarchy reads the containment tree of a Fyne application.
type Hierarchy struct {
	app    fyne.App
	logger zerolog.Logger
}

// NewHierarchy creates a hierarchy over app.
func NewHierarchy(ctx context.Context, app fyne.App) *Hierarchy {
	log := logging.FromContext(ctx)
	return &Hierarchy{
		app:    app,
		logger: log.With().Str("component", "fyne-hierarchy").Logger(),
	}
}

// Kind implements attached.Hierarchy.
func (h *Hierarchy) Kind(node any) attached.NodeKind {
	switch node.(type) {
	case fyne.App:
		return attached.KindApplication
	case fyne.Window:
		return attached.KindWindow
	case fyne.CanvasObject:
		return attached.KindWidget
	default:
		return attached.KindNone
	}
}

// Container implements attached.Hierarchy.
func (h *Hierarchy) Container(node any) any {
	obj, ok := node.(fyne.CanvasObject)
	if !ok {
		return nil
	}
	for _, w := range h.windows() {
		if parent, found := findParent(w.Content(), obj); found {
			if parent == nil {
				return nil
			}
			return parent
		}
	}
	return nil
}

// Window implements attached.Hierarchy.
func (h *Hierarchy) Window(node any) any {
	obj, ok := node.(fyne.CanvasObject)
	if !ok {
		return nil
	}
	for _, w := range h.windows() {
		if _, found := findParent(w.Content(), obj); found {
			return w
		}
	}
	return nil
}

// Application implements attached.Hierarchy.
func (h *Hierarchy) Application() any {
	if h.app == nil {
		return nil
	}
	return h.app
}

func (h *Hierarchy) windows() []fyne.Window {
	if h.app == nil || h.app.Driver() == nil {
		return nil
	}
	return h.app.Driver().AllWindows()
}

// findParent searches root for target. found reports whether target is in
// the tree; parent is nil when target is root itself.
func findParent(root, target fyne.CanvasObject) (parent fyne.CanvasObject, found bool) {
	if root == nil {
		return nil, false
	}
	if root == target {
		return nil, true
	}
	for _, child := range children(root) {
		if child == target {
			return root, true
		}
		if p, ok := findParent(child, target); ok && p != nil {
			return p, true
		}
	}
	return nil, false
}

// children lists the direct children of the container types Fyne exposes.
func children(obj fyne.CanvasObject) []fyne.CanvasObject {
	switch c := obj.(type) {
	case *fyne.Container:
		return c.Objects
	case *container.Scroll:
		return nonNil(c.Content)
	case *container.Split:
		return nonNil(c.Leading, c.Trailing)
	default:
		return nil
	}
}

func nonNil(objs ...fyne.CanvasObject) []fyne.CanvasObject {
	out := objs[:0]
	for _, o := range objs {
		if o != nil {
			out = append(out, o)
		}
	}
	return out
}
