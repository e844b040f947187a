//go:build gtkintegration

package gtkbackend_test

import (
	"context"
	"testing"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/attachprop/pkg/attached"
	"github.com/bnema/attachprop/pkg/backend/gtkbackend"
)

// Run with a display: go test -tags gtkintegration ./pkg/backend/gtkbackend
func TestHierarchy_GTKTree(t *testing.T) {
	gtk.Init()

	h := gtkbackend.NewHierarchy(context.Background(), nil)
	props := attached.New(attached.WithHierarchy(h))

	win := gtk.NewWindow()
	box := gtk.NewBox(gtk.OrientationVertical, 0)
	label := gtk.NewLabel("row")
	box.Append(label)
	win.SetChild(box)

	assert.Equal(t, attached.KindWindow, h.Kind(win))
	assert.Equal(t, attached.KindWidget, h.Kind(label))

	require.NoError(t, props.SetValue(win, "Theme", "Dark"))

	v, ok := props.GetInheritedValue(label, "Theme")
	assert.True(t, ok)
	assert.Equal(t, "Dark", v)

	// Parent() returns a new wrapper; both must address the same entry.
	require.NoError(t, props.SetValue(box, "Density", "compact"))
	v, ok = props.GetInheritedValue(label, "Density")
	assert.True(t, ok)
	assert.Equal(t, "compact", v)

	win.Destroy()
}

func TestHierarchy_GTKReadsDoNotAnchor(t *testing.T) {
	gtk.Init()

	h := gtkbackend.NewHierarchy(context.Background(), nil)
	props := attached.New(attached.WithHierarchy(h))

	win := gtk.NewWindow()
	label := gtk.NewLabel("row")
	win.SetChild(label)

	_, ok := props.GetValue(label, "Theme")
	assert.False(t, ok)
	_, ok = props.GetInheritedValue(label, "Theme")
	assert.False(t, ok)
	assert.Equal(t, 0, h.Anchors())

	require.NoError(t, props.SetValue(win, "Theme", "Dark"))
	v, ok := props.GetInheritedValue(label, "Theme")
	assert.True(t, ok)
	assert.Equal(t, "Dark", v)
	assert.Equal(t, 1, h.Anchors(), "only the written window is anchored")

	win.Destroy()
	assert.Equal(t, 0, h.Anchors())
}

func TestHierarchy_GTKNonWidgetOwner(t *testing.T) {
	gtk.Init()

	h := gtkbackend.NewHierarchy(context.Background(), nil)
	props := attached.New(attached.WithHierarchy(h))

	gesture := gtk.NewGestureClick()
	assert.Equal(t, attached.KindNone, h.Kind(gesture))

	require.NoError(t, props.SetValue(gesture, "Button", 1))
	assert.Equal(t, 1, h.Anchors())

	v, ok := props.GetValue(gesture, "Button")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, props.ClearValue(gesture, "Button"))
}
