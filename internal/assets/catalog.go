// Package assets resolves sprite paths to terminal glyphs.
//
// Sprites keep their image-file identity so the game can refer to them the
// same way a graphical frontend would; in the terminal each path maps to a
// rune and a color.
package assets

import (
	"sync"

	"github.com/vovakirdan/starfall/internal/core"
)

// Sprite paths used by the game.
const (
	PlayerSprite = "sprites/ball_blue_large.png"
	EnemySprite  = "sprites/ball_red_large.png"
	StarSprite   = "sprites/star.png"
)

// Handle identifies a loaded sprite. The zero handle is the fallback sprite.
type Handle int

// Sprite is the terminal representation of an image.
type Sprite struct {
	Path  string
	Glyph rune
	Color core.Color
}

var fallback = Sprite{Path: "", Glyph: '?', Color: core.ColorMagenta}

var builtin = map[string]Sprite{
	PlayerSprite: {Path: PlayerSprite, Glyph: '●', Color: core.ColorBrightBlue},
	EnemySprite:  {Path: EnemySprite, Glyph: '●', Color: core.ColorBrightRed},
	StarSprite:   {Path: StarSprite, Glyph: '★', Color: core.ColorBrightYellow},
}

// Catalog loads sprites by path and caches their handles.
// Loading the same path twice returns the same handle.
type Catalog struct {
	mu      sync.RWMutex
	handles map[string]Handle
	sprites []Sprite
}

// NewCatalog creates a catalog holding only the fallback sprite.
func NewCatalog() *Catalog {
	return &Catalog{
		handles: make(map[string]Handle),
		sprites: []Sprite{fallback},
	}
}

// Load returns the handle for path. Unknown paths resolve to the zero
// handle, which renders as a visible placeholder instead of failing.
func (c *Catalog) Load(path string) Handle {
	c.mu.RLock()
	h, ok := c.handles[path]
	c.mu.RUnlock()
	if ok {
		return h
	}

	s, known := builtin[path]
	if !known {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if h, ok := c.handles[path]; ok {
		return h
	}
	h = Handle(len(c.sprites))
	c.sprites = append(c.sprites, s)
	c.handles[path] = h
	return h
}

// Sprite returns the sprite behind a handle.
func (c *Catalog) Sprite(h Handle) Sprite {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if h < 0 || int(h) >= len(c.sprites) {
		return fallback
	}
	return c.sprites[h]
}
