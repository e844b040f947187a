package scene

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/attachprop/internal/logging"
	"github.com/bnema/attachprop/pkg/attached"
	"github.com/bnema/attachprop/pkg/backend/memtree"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), zerolog.Nop())
}

func loadLibrary(t *testing.T) *Scene {
	t.Helper()

	f, err := Load(filepath.Join("testdata", "library.toml"))
	require.NoError(t, err)

	s, err := Build(testContext(), f)
	require.NoError(t, err)
	return s
}

func TestLoad_Library(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "library.toml"))
	require.NoError(t, err)

	assert.Equal(t, "library", f.Application.Name)
	assert.Equal(t, "Dark", f.Application.Properties["Theme"])
	require.Len(t, f.Windows, 2)
	assert.Equal(t, "main", f.Windows[0].Name)
	require.Len(t, f.Windows[0].Widgets, 2)
	assert.Equal(t, "list", f.Windows[0].Widgets[0].Children[0].Name)
	require.Len(t, f.Detached, 1)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scene file")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{
			name:    "empty",
			input:   `application = { name = "a" }`,
			wantErr: ErrEmptyScene,
		},
		{
			name:    "unknown key",
			input:   "[[windows]]\nname = \"main\"\ncolour = \"red\"\n",
			wantMsg: "failed to parse scene",
		},
		{
			name:    "malformed",
			input:   "[[windows]\nname = ",
			wantMsg: "failed to parse scene",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestBuild_Tree(t *testing.T) {
	s := loadLibrary(t)

	assert.Equal(t,
		[]string{"library", "main", "sidebar", "list", "item", "content", "settings", "tooltip"},
		s.Names())

	item, ok := s.Node("item")
	require.True(t, ok)
	wd, ok := item.(*memtree.Widget)
	require.True(t, ok)
	assert.Equal(t, "list", wd.Parent().Name())
	assert.Equal(t, "main", wd.Window().Name())
	assert.Equal(t, "item", s.NameOf(item))

	_, ok = s.Node("missing")
	assert.False(t, ok)
}

func TestBuild_InheritedValues(t *testing.T) {
	s := loadLibrary(t)
	item, _ := s.Node("item")
	settings, _ := s.Node("settings")
	tooltip, _ := s.Node("tooltip")

	theme, ok := s.Props.GetInheritedValue(item, "Theme")
	require.True(t, ok)
	assert.Equal(t, "Light", theme)

	theme, ok = s.Props.GetInheritedValue(settings, "Theme")
	require.True(t, ok)
	assert.Equal(t, "Dark", theme)

	_, ok = s.Props.GetInheritedValue(tooltip, "Theme")
	assert.False(t, ok, "detached widgets do not reach the application")

	content, _ := s.Node("content")
	assert.Equal(t, "BookViewModel", s.Props.GetDataContext(content))
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    File
		wantErr error
	}{
		{
			name:    "unnamed window",
			file:    File{Windows: []WindowDef{{}}},
			wantErr: ErrUnnamedNode,
		},
		{
			name: "unnamed widget",
			file: File{Windows: []WindowDef{{
				Name:    "main",
				Widgets: []NodeDef{{Children: nil}},
			}}},
			wantErr: ErrUnnamedNode,
		},
		{
			name: "duplicate widget",
			file: File{Windows: []WindowDef{{
				Name:    "main",
				Widgets: []NodeDef{{Name: "a"}, {Name: "a"}},
			}}},
			wantErr: ErrDuplicateNode,
		},
		{
			name:    "widget named like the application",
			file:    File{Detached: []NodeDef{{Name: defaultAppName}}},
			wantErr: ErrDuplicateNode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.file
			_, err := Build(testContext(), &f)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuild_SharedStore(t *testing.T) {
	store := attached.NewStore()
	f, err := Load(filepath.Join("testdata", "library.toml"))
	require.NoError(t, err)

	s, err := Build(testContext(), f, attached.WithStore(store))
	require.NoError(t, err)

	assert.Same(t, store, s.Props.Store())
	assert.Equal(t, 5, store.Len(), "only nodes with properties get an entry")
}

func TestScene_Info(t *testing.T) {
	s := loadLibrary(t)

	tests := []struct {
		name       string
		wantKind   attached.NodeKind
		wantLevel  int
		wantParent string
	}{
		{"library", attached.KindApplication, 0, ""},
		{"main", attached.KindWindow, 1, "library"},
		{"sidebar", attached.KindWidget, 2, "main"},
		{"item", attached.KindWidget, 4, "list"},
		{"tooltip", attached.KindWidget, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := s.Info(tt.name)

			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, info.Kind)
			assert.Equal(t, tt.wantLevel, info.Level)
			assert.Equal(t, tt.wantParent, info.Parent)
		})
	}

	_, err := s.Info("ghost")
	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestScene_Nodes(t *testing.T) {
	s := loadLibrary(t)

	nodes := s.Nodes()

	require.Len(t, nodes, 8)
	assert.Equal(t, "library", nodes[0].Name)
	assert.Equal(t, map[string]any{"Theme": "Dark", "Locale": "en"}, nodes[0].Explicit)
	assert.Empty(t, nodes[3].Explicit)
}

func TestScene_PropertyNames(t *testing.T) {
	s := loadLibrary(t)

	assert.Equal(t,
		[]string{"DataContext", "Locale", "Selected", "Theme", "Title"},
		s.PropertyNames())
}

func TestScene_Trace(t *testing.T) {
	s := loadLibrary(t)

	tr, err := s.Trace("item", "Theme")
	require.NoError(t, err)

	require.Len(t, tr.Steps, 3)
	assert.Equal(t, []string{"item", "list", "sidebar"},
		[]string{tr.Steps[0].Name, tr.Steps[1].Name, tr.Steps[2].Name})
	assert.True(t, tr.Steps[2].Has)
	assert.Equal(t, "Light", tr.Steps[2].Value)
	assert.True(t, tr.Resolution.Found)
	assert.Equal(t, 2, tr.Resolution.Depth)
	assert.Equal(t, "sidebar", tr.SourceName())
}

func TestScene_TraceToApplication(t *testing.T) {
	s := loadLibrary(t)

	tr, err := s.Trace("item", "Locale")
	require.NoError(t, err)

	require.Len(t, tr.Steps, 5)
	assert.Equal(t, attached.KindWindow, tr.Steps[3].Kind)
	assert.Equal(t, attached.KindApplication, tr.Steps[4].Kind)
	assert.Equal(t, "library", tr.SourceName())
}

func TestScene_TraceNotFound(t *testing.T) {
	s := loadLibrary(t)

	tr, err := s.Trace("item", "Font")
	require.NoError(t, err)

	assert.False(t, tr.Resolution.Found)
	assert.Len(t, tr.Steps, 5)
	assert.Empty(t, tr.SourceName())

	_, err = s.Trace("ghost", "Theme")
	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestScene_Inherited(t *testing.T) {
	s := loadLibrary(t)

	got, err := s.Inherited("list")
	require.NoError(t, err)

	assert.Equal(t, "Light", got["Theme"].Value)
	assert.Equal(t, "en", got["Locale"].Value)
	assert.Equal(t, "Library", got["Title"].Value)
	assert.NotContains(t, got, "Selected")
	assert.NotContains(t, got, "DataContext")

	_, err = s.Inherited("ghost")
	assert.ErrorIs(t, err, ErrUnknownNode)
}
