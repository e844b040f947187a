// Package memtree is an in-memory visual tree implementing
// attached.Hierarchy. It mirrors the containment model of native toolkits
// (widgets inside containers inside windows inside one application) and is
// used by tests, tools and headless hosts.
package memtree

import (
	"github.com/bnema/attachprop/pkg/attached"
)

// Application is the root of a tree.
type Application struct {
	name    string
	windows []*Window
}

// NewApplication creates an application root.
func NewApplication(name string) *Application {
	return &Application{name: name}
}

// Name returns the application name.
func (a *Application) Name() string {
	return a.name
}

// NewWindow creates a top-level window owned by a.
func (a *Application) NewWindow(name string) *Window {
	w := &Window{name: name, app: a}
	a.windows = append(a.windows, w)
	return w
}

// Windows returns the windows of a in creation order.
func (a *Application) Windows() []*Window {
	out := make([]*Window, len(a.windows))
	copy(out, a.windows)
	return out
}

// CloseWindow removes w from a.
func (a *Application) CloseWindow(w *Window) bool {
	for i, candidate := range a.windows {
		if candidate == w {
			a.windows = append(a.windows[:i], a.windows[i+1:]...)
			w.app = nil
			return true
		}
	}
	return false
}

// Find returns the first node named name, searching windows and widgets depth
// first.
func (a *Application) Find(name string) (any, bool) {
	if a.name == name {
		return a, true
	}
	for _, w := range a.windows {
		if w.name == name {
			return w, true
		}
		for _, child := range w.widgets {
			if found := child.find(name); found != nil {
				return found, true
			}
		}
	}
	return nil, false
}

// Window is a top-level window.
type Window struct {
	name    string
	app     *Application
	widgets []*Widget
}

// Name returns the window name.
func (w *Window) Name() string {
	return w.name
}

// Application returns the owning application, or nil once closed.
func (w *Window) Application() *Application {
	return w.app
}

// Add creates a top-level widget directly inside w.
func (w *Window) Add(name string) *Widget {
	child := &Widget{name: name, window: w}
	w.widgets = append(w.widgets, child)
	return child
}

// Widgets returns the top-level widgets of w.
func (w *Window) Widgets() []*Widget {
	out := make([]*Widget, len(w.widgets))
	copy(out, w.widgets)
	return out
}

// Widget is a visual element. A widget has either a parent widget or, at the
// top of a window, only a window.
type Widget struct {
	name     string
	parent   *Widget
	window   *Window
	children []*Widget
}

// NewWidget creates a detached widget.
func NewWidget(name string) *Widget {
	return &Widget{name: name}
}

// Name returns the widget name.
func (wd *Widget) Name() string {
	return wd.name
}

// Add creates a child widget.
func (wd *Widget) Add(name string) *Widget {
	child := &Widget{name: name}
	wd.Append(child)
	return child
}

// Append reparents child under wd.
func (wd *Widget) Append(child *Widget) {
	child.Detach()
	child.parent = wd
	wd.children = append(wd.children, child)
}

// Detach removes wd from its parent or window.
func (wd *Widget) Detach() {
	switch {
	case wd.parent != nil:
		wd.parent.children = remove(wd.parent.children, wd)
		wd.parent = nil
	case wd.window != nil:
		wd.window.widgets = remove(wd.window.widgets, wd)
		wd.window = nil
	}
}

// Parent returns the container of wd, or nil.
func (wd *Widget) Parent() *Widget {
	return wd.parent
}

// Window returns the window wd is shown in, or nil when detached.
func (wd *Widget) Window() *Window {
	top := wd
	for top.parent != nil {
		top = top.parent
	}
	return top.window
}

// Children returns the children of wd.
func (wd *Widget) Children() []*Widget {
	out := make([]*Widget, len(wd.children))
	copy(out, wd.children)
	return out
}

func (wd *Widget) find(name string) *Widget {
	if wd.name == name {
		return wd
	}
	for _, child := range wd.children {
		if found := child.find(name); found != nil {
			return found
		}
	}
	return nil
}

func remove(list []*Widget, wd *Widget) []*Widget {
	for i, candidate := range list {
		if candidate == wd {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Hierarchy implements attached.Hierarchy over a memtree application.
type Hierarchy struct {
	app *Application
}

// NewHierarchy returns the hierarchy rooted at app.
func NewHierarchy(app *Application) *Hierarchy {
	return &Hierarchy{app: app}
}

// Kind implements attached.Hierarchy.
func (h *Hierarchy) Kind(node any) attached.NodeKind {
	switch node.(type) {
	case *Widget:
		return attached.KindWidget
	case *Window:
		return attached.KindWindow
	case *Application:
		return attached.KindApplication
	default:
		return attached.KindNone
	}
}

// Container implements attached.Hierarchy.
func (h *Hierarchy) Container(node any) any {
	if wd, ok := node.(*Widget); ok && wd != nil && wd.parent != nil {
		return wd.parent
	}
	return nil
}

// Window implements attached.Hierarchy.
func (h *Hierarchy) Window(node any) any {
	if wd, ok := node.(*Widget); ok && wd != nil {
		if w := wd.Window(); w != nil {
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
