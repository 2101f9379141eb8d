package render

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Shared fixtures. Face7x13 advances every glyph exactly 7px, so measured
// widths are character counts × 7 and layout math stays deterministic.

type stubFonts struct{}

func (stubFonts) Face(id string, px int) (font.Face, error) {
	return basicfont.Face7x13, nil
}

// warnFonts substitutes a face but reports it, like a missing font file.
type warnFonts struct{}

func (warnFonts) Face(id string, px int) (font.Face, error) {
	return basicfont.Face7x13, errors.New("substituted fallback")
}

// stubSymbols yields opaque red px×px squares so pastes are visible.
type stubSymbols struct{}

func (stubSymbols) Symbol(id string, px int) (image.Image, error) {
	return imaging.New(px, px, color.NRGBA{0xff, 0x00, 0x00, 0xff}), nil
}

type missingSymbols struct{}

func (missingSymbols) Symbol(id string, px int) (image.Image, error) {
	return nil, errors.New("no bitmap")
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	return New(stubFonts{}, stubSymbols{})
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func opaqueIn(img *image.NRGBA, rect image.Rectangle) bool {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if img.NRGBAAt(x, y).A != 0 {
				return true
			}
		}
	}
	return false
}

func hasColor(img *image.NRGBA, rect image.Rectangle, want color.NRGBA) bool {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if img.NRGBAAt(x, y) == want {
				return true
			}
		}
	}
	return false
}
