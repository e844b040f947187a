package memtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/attachprop/pkg/attached"
	"github.com/bnema/attachprop/pkg/backend/memtree"
)

func TestHierarchy_Kind(t *testing.T) {
	app := memtree.NewApplication("app")
	win := app.NewWindow("main")
	wd := win.Add("sidebar")
	h := memtree.NewHierarchy(app)

	assert.Equal(t, attached.KindApplication, h.Kind(app))
	assert.Equal(t, attached.KindWindow, h.Kind(win))
	assert.Equal(t, attached.KindWidget, h.Kind(wd))
	assert.Equal(t, attached.KindNone, h.Kind("not a node"))
}

func TestHierarchy_ContainerAndWindow(t *testing.T) {
	// Arrange
	app := memtree.NewApplication("app")
	win := app.NewWindow("main")
	top := win.Add("sidebar")
	leaf := top.Add("list")
	h := memtree.NewHierarchy(app)

	// Act & Assert
	assert.Equal(t, top, h.Container(leaf))
	assert.Nil(t, h.Container(top), "top-level widget has no container")
	assert.Equal(t, win, h.Window(top))
	assert.Equal(t, win, h.Window(leaf))
	assert.Nil(t, h.Container(win))
	assert.Equal(t, app, h.Application())
}

func TestHierarchy_DetachedWidgetHasNoParent(t *testing.T) {
	h := memtree.NewHierarchy(memtree.NewApplication("app"))
	wd := memtree.NewWidget("orphan")

	assert.Nil(t, h.Container(wd))
	assert.Nil(t, h.Window(wd))
}

func TestWidget_AppendReparents(t *testing.T) {
	app := memtree.NewApplication("app")
	win := app.NewWindow("main")
	a := win.Add("a")
	b := win.Add("b")
	child := a.Add("child")

	b.Append(child)

	assert.Empty(t, a.Children())
	require.Len(t, b.Children(), 1)
	assert.Equal(t, b, child.Parent())
}

func TestWidget_Detach(t *testing.T) {
	app := memtree.NewApplication("app")
	win := app.NewWindow("main")
	top := win.Add("top")
	child := top.Add("child")

	child.Detach()
	top.Detach()

	assert.Nil(t, child.Parent())
	assert.Empty(t, top.Children())
	assert.Nil(t, top.Window())
	assert.Empty(t, win.Widgets())
}

func TestApplication_Find(t *testing.T) {
	app := memtree.NewApplication("app")
	win := app.NewWindow("main")
	leaf := win.Add("sidebar").Add("list")

	found, ok := app.Find("list")
	require.True(t, ok)
	assert.Equal(t, leaf, found)

	found, ok = app.Find("main")
	require.True(t, ok)
	assert.Equal(t, win, found)

	_, ok = app.Find("missing")
	assert.False(t, ok)
}

func TestApplication_CloseWindow(t *testing.T) {
	app := memtree.NewApplication("app")
	win := app.NewWindow("main")

	assert.True(t, app.CloseWindow(win))
	assert.False(t, app.CloseWindow(win))
	assert.Nil(t, win.Application())
	assert.Empty(t, app.Windows())
}
