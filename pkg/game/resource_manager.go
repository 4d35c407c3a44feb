package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager is responsible for centralized management of game resources.
// The game draws everything with vector shapes, so the only loaded resource is
// the UI font. Faces are cached per size and share a single parsed source.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. Load fonts from the game loop goroutine.
//
// Usage:
//
//	rm := NewResourceManager()
//	face, err := rm.LoadFont(24)
//	if err != nil {
//	    log.Printf("Failed to load font: %v", err)
//	}
type ResourceManager struct {
	fontSource    *text.GoTextFaceSource      // Parsed Go Regular font, created on first use
	fontFaceCache map[float64]*text.GoTextFace // Cache for text faces: size -> face
}

// NewResourceManager creates a ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// LoadFont returns a Go Regular text face of the given size.
// The font face is cached for future use.
//
// Parameters:
//   - size: The font size in pixels. Must be positive.
//
// Returns:
//   - A pointer to the text.GoTextFace ready for rendering.
//   - An error if the size is invalid or the embedded font cannot be parsed.
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %.1f", size)
	}

	if cachedFace, exists := rm.fontFaceCache[size]; exists {
		return cachedFace, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}
