package graphics

import (
	"sync"
)

// TextureCache loads each texture path once and hands out the same texture
// afterwards.
type TextureCache struct {
	mu       sync.RWMutex
	textures map[string]*Texture
	load     func(path string) (*Texture, error)
}

func NewTextureCache() *TextureCache {
	return newTextureCache(LoadTexture)
}

func newTextureCache(load func(string) (*Texture, error)) *TextureCache {
	return &TextureCache{textures: make(map[string]*Texture), load: load}
}

// Get returns a cached texture for the given path.
// If the texture is already loaded, it returns the cached one.
// Otherwise, it loads the texture from disk and caches it.
func (c *TextureCache) Get(path string) (*Texture, error) {
	c.mu.RLock()
	if tex, ok := c.textures[path]; ok {
		c.mu.RUnlock()
		return tex, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double check locking
	if tex, ok := c.textures[path]; ok {
		return tex, nil
	}

	tex, err := c.load(path)
	if err != nil {
		return nil, err
	}

	c.textures[path] = tex
	return tex, nil
}

func (c *TextureCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.textures)
}

// Delete releases every cached texture and empties the cache.
func (c *TextureCache) Delete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, tex := range c.textures {
		tex.Delete()
	}
	clear(c.textures)
}
