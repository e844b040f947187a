// Package gtkbackend implements attached.Hierarchy over GTK4 widgets through
// gotk4.
//
// gotk4 hands out a fresh Go wrapper every time a widget crosses the cgo
// boundary (Parent, Root, signal arguments), so wrappers are canonicalized to
// one anchor per native GObject. The anchor is released when the GObject is
// finalized, or earlier on the destroy signal for widgets, which lets the
// attached store drop the object's properties. Reads never create anchors.
package gtkbackend

import (
	"context"

	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/attachprop/internal/anchor"
	"github.com/bnema/attachprop/internal/logging"
	"github.com/bnema/attachprop/pkg/attached"
)

// Hierarchy reads the GTK4 containment tree live.
type Hierarchy struct {
	app     *gtk.Application
	anchors *anchor.Registry
	logger  zerolog.Logger
}

// NewHierarchy creates a hierarchy whose application root is app. app may be
// nil for hosts that do not run a GtkApplication.
func NewHierarchy(ctx context.Context, app *gtk.Application) *Hierarchy {
	log := logging.FromContext(ctx)
	log.Debug().Bool("has_application", app != nil).Msg("creating gtk hierarchy")

	return &Hierarchy{
		app:     app,
		anchors: anchor.NewRegistry(),
		logger:  log.With().Str("component", "gtk-hierarchy").Logger(),
	}
}

// Install creates a hierarchy and makes it the default façade's backend.
func Install(ctx context.Context, app *gtk.Application) *Hierarchy {
	h := NewHierarchy(ctx, app)
	attached.UseHierarchy(h)
	return h
}

// Kind implements attached.Hierarchy.
func (h *Hierarchy) Kind(node any) attached.NodeKind {
	switch node.(type) {
	case *gtk.Application:
		return attached.KindApplication
	case gtk.Windower:
		return attached.KindWindow
	case gtk.Widgetter:
		return attached.KindWidget
	default:
		return attached.KindNone
	}
}

// Container implements attached.Hierarchy.
func (h *Hierarchy) Container(node any) any {
	w, ok := node.(gtk.Widgetter)
	if !ok || w == nil {
		return nil
	}
	if parent := gtk.BaseWidget(w).Parent(); parent != nil {
		return parent
	}
	return nil
}

// Window implements attached.Hierarchy.
func (h *Hierarchy) Window(node any) any {
	w, ok := node.(gtk.Widgetter)
	if !ok || w == nil {
		return nil
	}

	root := gtk.BaseWidget(w).Root()
	if root == nil {
		return nil
	}
	if win, ok := root.Cast().(gtk.Windower); ok {
		return win
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

// Canonical implements attached.Canonicalizer. Every wrapper of the same
// GObject maps to the same anchor.
func (h *Hierarchy) Canonical(node any) any {
	obj, native := nativeOf(node)
	if native == 0 {
		return node
	}

	return h.anchors.Acquire(native, func(a *anchor.Anchor) {
		h.watch(obj, a)
	})
}

// LookupCanonical implements attached.CanonicalLookup. A GObject that was
// never anchored has nothing stored, so ok is false for it.
func (h *Hierarchy) LookupCanonical(node any) (any, bool) {
	_, native := nativeOf(node)
	if native == 0 {
		return node, true
	}

	a, ok := h.anchors.Lookup(native)
	if !ok {
		return nil, false
	}
	return a, true
}

func nativeOf(node any) (coreglib.Objector, uintptr) {
	obj, ok := node.(coreglib.Objector)
	if !ok || obj == nil {
		return nil, 0
	}
	return obj, coreglib.InternObject(obj).Native()
}

// Anchors returns the number of native objects currently anchored.
func (h *Hierarchy) Anchors() int {
	return h.anchors.Len()
}

// watch releases a when the GObject behind obj is finalized. Widgets are
// also released on destroy, since GTK may keep a destroyed widget alive for a
// while. The application lives for the whole process and is never released.
func (h *Hierarchy) watch(obj coreglib.Objector, a *anchor.Anchor) {
	handle := a.Handle()
	coreglib.WeakRefObject(obj, func() {
		h.logger.Trace().Uint64("handle", uint64(handle)).Msg("object finalized, releasing anchor")
		a.Release()
	})

	w, ok := obj.(gtk.Widgetter)
	if !ok {
		return
	}
	gtk.BaseWidget(w).ConnectDestroy(func() {
		h.logger.Trace().Uint64("handle", uint64(handle)).Msg("widget destroyed, releasing anchor")
		a.Release()
	})
}
