package texture

import (
	"image"
	"sync"
)

// Decoder resolves a texture file path to a decoded NRGBA bitmap.
type Decoder interface {
	Decode(path string) (*image.NRGBA, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(path string) (*image.NRGBA, error)

func (f DecoderFunc) Decode(path string) (*image.NRGBA, error) { return f(path) }

// Cache is a concurrency-safe decode cache keyed by file path. Both
// successful decodes and failures are cached, so a corrupt file is
// reported once per job instead of once per mesh.
type Cache struct {
	mu      sync.RWMutex
	items   map[string]*cacheEntry
	decoder Decoder
}

type cacheEntry struct {
	img *image.NRGBA
	err error
}

// NewCache creates a cache backed by the given decoder. A nil decoder
// uses Load.
func NewCache(decoder Decoder) *Cache {
	if decoder == nil {
		decoder = DecoderFunc(Load)
	}
	return &Cache{
		items:   make(map[string]*cacheEntry),
		decoder: decoder,
	}
}

// Decode returns the cached bitmap for path, decoding it on first use.
func (c *Cache) Decode(path string) (*image.NRGBA, error) {
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.img, entry.err
	}
	c.mu.RUnlock()

	img, err := c.decoder.Decode(path)

	c.mu.Lock()
	if entry, exists := c.items[path]; exists {
		c.mu.Unlock()
		return entry.img, entry.err
	}
	c.items[path] = &cacheEntry{img: img, err: err}
	c.mu.Unlock()

	return img, err
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
