// Package assets handles the lifetime of named GPU resources.
package assets

import (
	"errors"
	"maps"

	"go.uber.org/zap"

	"github.com/Faultbox/modeswitch/internal/logger"
)

// ErrClosed is returned by Close on an already closed manager.
var ErrClosed = errors.New("assets: manager closed")

// Texture is an uploaded texture.
type Texture struct {
	Name   string
	ID     uint32
	Width  int
	Height int
}

// Manager owns the texture cache and releases it on Close.
type Manager struct {
	cache   *Cache
	release func(*Texture)
	closed  bool
}

// NewManager creates a new asset manager. release is called once for every
// cached texture on Close; it may be nil.
func NewManager(release func(*Texture)) *Manager {
	return &Manager{
		cache:   NewCache(),
		release: release,
	}
}

// Textures returns the texture cache.
func (m *Manager) Textures() *Cache {
	return m.cache
}

// Close releases all cached textures and empties the cache.
func (m *Manager) Close() error {
	if m.closed {
		return ErrClosed
	}
	m.closed = true

	n := m.cache.Len()
	if m.release != nil {
		for _, tex := range m.cache.textures {
			m.release(tex)
		}
	}
	m.cache.clear()

	logger.Named("assets").Debug("textures released", zap.Int("count", n))
	return nil
}

// Cache maps names to textures. Entries are never replaced or evicted.
// It is not safe for concurrent use.
type Cache struct {
	textures map[string]*Texture
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		textures: make(map[string]*Texture),
	}
}

// Add stores tex under name unless the name is already taken.
// Returns true if the name now maps to a texture, whether it was inserted by
// this call or before. Returns false for an empty name or nil texture.
func (c *Cache) Add(name string, tex *Texture) bool {
	if name == "" || tex == nil {
		return false
	}
	if _, ok := c.textures[name]; ok {
		return true
	}
	c.textures[name] = tex
	return true
}

// Get retrieves a texture by name.
func (c *Cache) Get(name string) (*Texture, bool) {
	tex, ok := c.textures[name]
	return tex, ok
}

// Textures returns a copy of the full mapping.
func (c *Cache) Textures() map[string]*Texture {
	return maps.Clone(c.textures)
}

// Len returns the number of cached textures.
func (c *Cache) Len() int {
	return len(c.textures)
}

func (c *Cache) clear() {
	c.textures = make(map[string]*Texture)
}
