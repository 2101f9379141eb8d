package render

import (
	"fmt"
	"image"
	"log"

	"golang.org/x/image/font"
)

// FontSource resolves a font identifier to a face at a pixel size. A source
// may substitute a usable fallback face and still return a non-nil error to
// report the substitution; callers treat that error as a warning, not a
// failure.
type FontSource interface {
	Face(id string, px int) (font.Face, error)
}

// SymbolSource resolves a symbol identifier (case-insensitive) to a square
// bitmap rasterized at the given pixel size.
type SymbolSource interface {
	Symbol(id string, px int) (image.Image, error)
}

type faceKey struct {
	id string
	px int
}

// face returns the cached face for (id, px), loading it on first use.
// Load problems are absorbed as warnings; a nil face means the region that
// needed it is skipped.
func (r *Renderer) face(id string, px int) font.Face {
	key := faceKey{id, px}
	if f, ok := r.faces[key]; ok {
		return f
	}
	f, err := r.Fonts.Face(id, px)
	if err != nil {
		r.warnOnce("font:"+id, fmt.Sprintf("font %q: %v", id, err))
	}
	r.faces[key] = f
	return f
}

// symbol returns the cached bitmap for (id, px), rasterizing it on first
// use. A nil entry records a known-missing symbol: it is never drawn, but
// its reserved width still advances the cursor.
func (r *Renderer) symbol(id string, px int) image.Image {
	key := faceKey{id, px}
	if img, ok := r.symbols[key]; ok {
		return img
	}
	img, err := r.Symbols.Symbol(id, px)
	if err != nil {
		r.warnOnce("symbol:"+id, fmt.Sprintf("symbol %q: %v", id, err))
		img = nil
	}
	r.symbols[key] = img
	return img
}

func (r *Renderer) warnOnce(key, msg string) {
	if r.warned[key] {
		return
	}
	r.warned[key] = true
	r.warns = append(r.warns, msg)
	log.Println("render:", msg)
}

// Warnings lists the problems absorbed during renders on this session,
// deduplicated by asset.
func (r *Renderer) Warnings() []string {
	return r.warns
}
