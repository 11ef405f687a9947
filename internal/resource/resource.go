// Package resource loads and caches the game's textures and fonts.
// Everything is decoded from an embedded sprite sheet at startup; lookups
// after that never touch the filesystem.
package resource

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flappy-magi/internal/core"
)

//go:embed assets/sprites.yaml
var spriteSheetYAML []byte

// ErrNotFound is returned when a texture or font name is not registered.
var ErrNotFound = errors.New("resource: not found")

// TextureNames lists every texture the game draws.
var TextureNames = []string{
	// Magi sprites
	"Magi/up.0",
	"Magi/up.20",
	"Magi/up.-20",
	"Magi/up.-90",
	"Magi/down.0",
	"Magi/down.20",
	"Magi/down.-20",
	"Magi/down.-90",
	"Magi/mid.0",
	"Magi/mid.20",
	"Magi/mid.-20",
	"Magi/mid.-90",

	// Background sprites
	"Back/day",
	"Back/night",
	"Back/ground",

	// Pipe sprites
	"Pipe/top",
	"Pipe/bottom",
}

// FontNames lists every font the game draws with.
var FontNames = []string{
	"DefaultFont",
}

// SheetSpec is the YAML layout of a sprite sheet.
type SheetSpec struct {
	Textures []TextureSpec `yaml:"textures"`
	Fonts    []FontSpec    `yaml:"fonts"`
}

// TextureSpec describes one texture.
type TextureSpec struct {
	Name  string   `yaml:"name"`
	Size  []int    `yaml:"size"`
	Color string   `yaml:"color"`
	Art   []string `yaml:"art"`
}

// FontSpec describes one font.
type FontSpec struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// Manager holds every loaded texture and font, keyed by name.
type Manager struct {
	textures map[string]*core.Sprite
	fonts    map[string]*core.Font
}

// Decode builds a Manager from a YAML sprite sheet.
func Decode(data []byte) (*Manager, error) {
	var spec SheetSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("resource: unmarshal sprite sheet: %w", err)
	}

	m := &Manager{
		textures: make(map[string]*core.Sprite, len(spec.Textures)),
		fonts:    make(map[string]*core.Font, len(spec.Fonts)),
	}

	for _, ts := range spec.Textures {
		if ts.Name == "" {
			return nil, errors.New("resource: texture without name")
		}
		if _, dup := m.textures[ts.Name]; dup {
			return nil, fmt.Errorf("resource: texture %q defined twice", ts.Name)
		}
		if len(ts.Size) != 2 || ts.Size[0] <= 0 || ts.Size[1] <= 0 {
			return nil, fmt.Errorf("resource: texture %q: size must be two positive integers", ts.Name)
		}
		if len(ts.Art) == 0 {
			return nil, fmt.Errorf("resource: texture %q: empty art", ts.Name)
		}
		color, ok := core.ParseColor(ts.Color)
		if !ok {
			return nil, fmt.Errorf("resource: texture %q: unknown color %q", ts.Name, ts.Color)
		}
		m.textures[ts.Name] = &core.Sprite{
			Name:  ts.Name,
			W:     ts.Size[0],
			H:     ts.Size[1],
			Art:   ts.Art,
			Color: color,
		}
	}

	for _, fs := range spec.Fonts {
		color, ok := core.ParseColor(fs.Color)
		if !ok {
			return nil, fmt.Errorf("resource: font %q: unknown color %q", fs.Name, fs.Color)
		}
		m.fonts[fs.Name] = &core.Font{Name: fs.Name, Color: color}
	}

	return m, nil
}

// LoadAll decodes the embedded sprite sheet and checks that every
// registered texture and font is present.
func LoadAll() (*Manager, error) {
	m, err := Decode(spriteSheetYAML)
	if err != nil {
		return nil, err
	}
	if err := m.Verify(); err != nil {
		return nil, err
	}
	return m, nil
}

// Verify returns an error wrapping ErrNotFound for the first registered
// texture or font the manager does not hold.
func (m *Manager) Verify() error {
	for _, name := range TextureNames {
		if _, err := m.Texture(name); err != nil {
			return err
		}
	}
	for _, name := range FontNames {
		if _, err := m.Font(name); err != nil {
			return err
		}
	}
	return nil
}

// Texture fetches a texture by name.
func (m *Manager) Texture(name string) (*core.Sprite, error) {
	sp, ok := m.textures[name]
	if !ok {
		return nil, fmt.Errorf("resource: texture %q: %w", name, ErrNotFound)
	}
	return sp, nil
}

// Font fetches a font by name.
func (m *Manager) Font(name string) (*core.Font, error) {
	f, ok := m.fonts[name]
	if !ok {
		return nil, fmt.Errorf("resource: font %q: %w", name, ErrNotFound)
	}
	return f, nil
}

// Textures returns every loaded texture sorted by name.
func (m *Manager) Textures() []*core.Sprite {
	out := make([]*core.Sprite, 0, len(m.textures))
	for _, sp := range m.textures {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
