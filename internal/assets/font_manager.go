package assets

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"
)

// EmbeddedFontName is the cache key of the built-in Go Regular face.
const EmbeddedFontName = "embedded:goregular"

// FontLoader hands raw TTF/OTF bytes to the render context at startup.
type FontLoader interface {
	LoadFont() ([]byte, error)
}

// FontLoaderFunc adapts a function to FontLoader.
type FontLoaderFunc func() ([]byte, error)

func (f FontLoaderFunc) LoadFont() ([]byte, error) { return f() }

// FontManager loads and caches font files.
type FontManager struct {
	fonts map[string][]byte
	log   *slog.Logger
}

func NewFontManager(logger *slog.Logger) *FontManager {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &FontManager{
		fonts: make(map[string][]byte),
		log:   logger,
	}
}

// Load returns the bytes of the font at path. An empty path selects the
// embedded Go Regular face.
func (m *FontManager) Load(path string) ([]byte, error) {
	key := path
	if key == "" {
		key = EmbeddedFontName
	}
	if data, ok := m.fonts[key]; ok {
		return data, nil
	}

	var data []byte
	if path == "" {
		data = goregular.TTF
	} else {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file: %w", err)
		}
		data = raw
	}

	m.fonts[key] = data
	m.log.Debug("font loaded", "font", key, "bytes", len(data))
	return data, nil
}

// Loader binds path to a FontLoader for the render startup.
func (m *FontManager) Loader(path string) FontLoader {
	return FontLoaderFunc(func() ([]byte, error) { return m.Load(path) })
}

// Cleanup drops every cached font.
func (m *FontManager) Cleanup() {
	for key := range m.fonts {
		delete(m.fonts, key)
	}
	m.log.Debug("font cache cleared")
}

// Cached reports how many fonts are held.
func (m *FontManager) Cached() int { return len(m.fonts) }

// EmbeddedFont loads the built-in Go Regular face.
func EmbeddedFont() FontLoader {
	return FontLoaderFunc(func() ([]byte, error) { return goregular.TTF, nil })
}

// FileFont reads the font at path on every call, without caching.
func FileFont(path string) FontLoader {
	return FontLoaderFunc(func() ([]byte, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file: %w", err)
		}
		return data, nil
	})
}
