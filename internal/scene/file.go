// Package scene loads TOML scene descriptions into an in-memory visual tree
// with attached properties applied, for tooling and tests.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// File is the decoded form of a scene file.
type File struct {
	Application AppDef      `toml:"application"`
	Windows     []WindowDef `toml:"windows"`
	// Detached lists widgets that belong to no window.
	Detached []NodeDef `toml:"detached"`
}

// AppDef describes the application root.
type AppDef struct {
	Name       string         `toml:"name"`
	Properties map[string]any `toml:"properties"`
}

// WindowDef describes a top-level window and its content.
type WindowDef struct {
	Name       string         `toml:"name"`
	Properties map[string]any `toml:"properties"`
	Widgets    []NodeDef      `toml:"widgets"`
}

// NodeDef describes a widget and its children.
type NodeDef struct {
	Name       string         `toml:"name"`
	Properties map[string]any `toml:"properties"`
	Children   []NodeDef      `toml:"children"`
}

// ErrEmptyScene is returned for a scene without windows or detached widgets.
var ErrEmptyScene = errors.New("scene has no windows")

// Parse decodes a scene. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("failed to parse scene at line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	if len(f.Windows) == 0 && len(f.Detached) == 0 {
		return nil, ErrEmptyScene
	}
	return &f, nil
}

// Load reads and decodes the scene file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return Parse(data)
}
