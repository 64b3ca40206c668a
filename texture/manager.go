package texture

import (
	"fmt"
	"sort"
)

const (
	Wall   = "wall"
	Sprite = "sprite"

	defaultSize = 64
)

// Handler resolves textures by name.
type Handler interface {
	// TextureAt returns the named texture, or nil if none is registered
	TextureAt(name string) *Texture
}

// Manager keeps every texture the renderer references for its lifetime.
type Manager struct {
	textures map[string]*Texture
	sources  map[string]string
}

func NewManager() *Manager {
	return &Manager{
		textures: make(map[string]*Texture),
		sources:  make(map[string]string),
	}
}

func (m *Manager) Register(name string, t *Texture, source string) {
	m.textures[name] = t
	m.sources[name] = source
}

func (m *Manager) TextureAt(name string) *Texture {
	return m.textures[name]
}

// Source reports where a registered texture came from: a file path or
// "generated".
func (m *Manager) Source(name string) string {
	return m.sources[name]
}

func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.textures))
	for name := range m.textures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load registers the texture at path under name, or the generated fallback
// when path is empty. A path that fails to load is an error, not a fallback.
func (m *Manager) Load(name, path string, fallback func(size int) *Texture) error {
	if path == "" {
		m.Register(name, fallback(defaultSize), "generated")
		return nil
	}

	t, err := LoadFile(path)
	if err != nil {
		return fmt.Errorf("loading %s texture: %w", name, err)
	}
	m.Register(name, t, path)
	return nil
}

// LoadDefaults loads the wall and sprite textures the renderer needs.
func (m *Manager) LoadDefaults(wallPath, spritePath string) error {
	if err := m.Load(Wall, wallPath, Bricks); err != nil {
		return err
	}
	return m.Load(Sprite, spritePath, Plant)
}
