package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/attachprop/internal/cli"
	"github.com/bnema/attachprop/internal/scene"
)

var libraryScene = filepath.Join("..", "..", "scene", "testdata", "library.toml")

func resetFlags() {
	app = nil
	configFile = ""
	logLevel = ""
	resolveScene = ""
	resolveJSON = false
	inspectScene = ""
	inspectJSON = false
	exploreScene = ""
	gcOwners = defaultGCOwners
	gcKeep = 0
	configInitForce = false
}

// execute runs attachctl with an empty config so the user's file is never read.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "config.toml")}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestResolve_Table(t *testing.T) {
	out, err := execute(t, "resolve", "--scene", libraryScene, "item", "Theme")

	require.NoError(t, err)
	assert.Contains(t, out, "Theme on item")
	assert.Contains(t, out, "list")
	assert.Contains(t, out, `"Light" from sidebar (depth 2)`)
}

func TestResolve_JSON(t *testing.T) {
	out, err := execute(t, "resolve", "--scene", libraryScene, "--json", "settings", "Theme")
	require.NoError(t, err)

	var got resolveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.True(t, got.Found)
	assert.Equal(t, "Dark", got.Value)
	assert.Equal(t, "library", got.Source)
	assert.Equal(t, 1, got.Depth)
	require.Len(t, got.Steps, 2)
	assert.Equal(t, "window", got.Steps[0].Kind)
	assert.Equal(t, "application", got.Steps[1].Kind)
}

func TestResolve_NotFound(t *testing.T) {
	out, err := execute(t, "resolve", "--scene", libraryScene, "tooltip", "Theme")

	require.NoError(t, err)
	assert.Contains(t, out, "not set on the chain")
}

func TestResolve_Errors(t *testing.T) {
	_, err := execute(t, "resolve", "--scene", libraryScene, "ghost", "Theme")
	assert.ErrorIs(t, err, scene.ErrUnknownNode)

	_, err = execute(t, "resolve", "item", "Theme")
	assert.ErrorIs(t, err, cli.ErrNoScene)

	_, err = execute(t, "resolve", "--scene", libraryScene, "item")
	assert.Error(t, err)
}

func TestInspect_Table(t *testing.T) {
	out, err := execute(t, "inspect", "--scene", libraryScene)

	require.NoError(t, err)
	assert.Contains(t, out, "8 nodes, 5 properties")
	assert.Contains(t, out, "sidebar")
	assert.Contains(t, out, "tooltip")
}

func TestInspect_JSON(t *testing.T) {
	out, err := execute(t, "inspect", "--scene", libraryScene, "--json")
	require.NoError(t, err)

	var nodes []inspectNode
	require.NoError(t, json.Unmarshal([]byte(out), &nodes))
	require.Len(t, nodes, 8)

	byName := map[string]inspectNode{}
	for _, n := range nodes {
		byName[n.Name] = n
	}

	item := byName["item"]
	assert.Equal(t, "list", item.Parent)
	assert.Equal(t, true, item.Explicit["Selected"])
	assert.Equal(t, "Light", item.Inherited["Theme"])
	assert.Equal(t, "en", item.Inherited["Locale"])
	assert.NotContains(t, item.Inherited, "Selected")
	assert.Empty(t, byName["tooltip"].Inherited)
}

func TestGC_Report(t *testing.T) {
	out, err := execute(t, "gc", "--owners", "200", "--keep", "5")

	require.NoError(t, err)
	assert.Contains(t, out, "owners created   200")
	assert.Contains(t, out, "owners kept      5")
	assert.Contains(t, out, "entries before   200")
}

func TestGC_InvalidCounts(t *testing.T) {
	_, err := execute(t, "gc", "--owners", "3", "--keep", "4")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid owner counts")
}

func TestSchema(t *testing.T) {
	out, err := execute(t, "schema")

	require.NoError(t, err)
	assert.Contains(t, out, `"sweep_every"`)
}

func TestConfig_Show(t *testing.T) {
	out, err := execute(t, "config")

	require.NoError(t, err)
	assert.Contains(t, out, "store.sweep_every   256")
	assert.Contains(t, out, "logging.level       info")
}

func TestConfig_Init(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attachprop", "config.toml")

	out, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)
	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = execute(t, "config", "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "config", "init", "--force", path)
	assert.NoError(t, err)
}
