package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
)

// ErrInvalidGeometry marks layout or art dimensions the compositor refuses
// to draw with.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Renderer composes one card face at a time. It is not safe for concurrent
// use: create one per render job and share the asset sources behind it,
// which carry their own locking.
type Renderer struct {
	Fonts   FontSource
	Symbols SymbolSource
	Divider image.Image // flavor divider asset, optional

	faces   map[faceKey]font.Face
	symbols map[faceKey]image.Image
	warned  map[string]bool
	warns   []string
}

func New(fonts FontSource, symbols SymbolSource) *Renderer {
	return &Renderer{
		Fonts:   fonts,
		Symbols: symbols,
		faces:   make(map[faceKey]font.Face),
		symbols: make(map[faceKey]image.Image),
		warned:  make(map[string]bool),
	}
}

// CardData is the text side of one card face. Empty fields skip their
// region; power and toughness are drawn only when both are set.
type CardData struct {
	Name       string
	ManaCost   string
	TypeLine   string
	OracleText string
	FlavorText string
	Power      string
	Toughness  string
	Artist     string
	Copyright  string
}

// background fills the canvas when no frame asset could be loaded.
var background = color.NRGBA{0x18, 0x14, 0x10, 0xff}

func (l CardLayout) validate() error {
	named := []struct {
		name string
		box  Box
	}{
		{"art", l.Art},
		{"title", l.Title.Box},
		{"mana", l.Mana.Box},
		{"type", l.TypeLine.Box},
		{"rules", l.Rules.Box},
		{"pt", l.PT.Box},
		{"artist", l.Artist.Box},
		{"copyright", l.Copyright.Box},
	}
	for _, n := range named {
		if !n.box.Valid() {
			return fmt.Errorf("region %s: box %+v: %w", n.name, n.box, ErrInvalidGeometry)
		}
	}
	return nil
}

// Card composes a card face: art cover-fitted into the layout's art window,
// the frame over it, an optional border on top, then the text regions in a
// fixed order. Geometry problems fail the whole render before any pixel
// work; missing assets degrade to skipped draws and warnings.
func (r *Renderer) Card(data CardData, art, frame, border image.Image, layout CardLayout) (*image.NRGBA, error) {
	if err := layout.validate(); err != nil {
		return nil, err
	}
	if art != nil {
		b := art.Bounds()
		if b.Dx() <= 0 || b.Dy() <= 0 {
			return nil, fmt.Errorf("art bounds %v: %w", b, ErrInvalidGeometry)
		}
	}

	canvas := imaging.New(CardWidth, CardHeight, color.NRGBA{})
	if art != nil {
		canvas = placeArt(canvas, art, layout.Art)
	}
	if frame != nil {
		f := frame
		if b := f.Bounds(); b.Dx() != CardWidth || b.Dy() != CardHeight {
			f = imaging.Resize(f, CardWidth, CardHeight, imaging.Lanczos)
		}
		canvas = imaging.Overlay(canvas, f, image.Pt(0, 0), 1.0)
	} else {
		r.warnOnce("frame", "no frame image, drawing on a flat background")
		bg := imaging.New(CardWidth, CardHeight, background)
		canvas = imaging.Overlay(bg, canvas, image.Pt(0, 0), 1.0)
	}
	if border != nil {
		b := border
		if bb := b.Bounds(); bb.Dx() != CardWidth || bb.Dy() != CardHeight {
			b = imaging.Resize(b, CardWidth, CardHeight, imaging.Lanczos)
		}
		canvas = imaging.Overlay(canvas, b, image.Pt(0, 0), 1.0)
	}

	r.drawRegion(canvas, layout.Title, data.Name)
	if data.ManaCost != "" {
		r.drawManaCost(canvas, layout.Mana.Box.Rect(), layout.Mana.Style, data.ManaCost)
	}
	r.drawRegion(canvas, layout.TypeLine, data.TypeLine)
	if data.OracleText != "" || data.FlavorText != "" {
		rect := layout.Rules.Box.Rect()
		block := r.fitBlock(data.OracleText, data.FlavorText, rect, layout.Rules.Style)
		r.drawBlock(canvas, rect, layout.Rules.Style, block)
	}
	if data.Power != "" && data.Toughness != "" {
		r.drawRegion(canvas, layout.PT, data.Power+"/"+data.Toughness)
	}
	r.drawRegion(canvas, layout.Artist, data.Artist)
	r.drawRegion(canvas, layout.Copyright, data.Copyright)

	return canvas, nil
}

func (r *Renderer) drawRegion(canvas *image.NRGBA, re Region, text string) {
	if text == "" {
		return
	}
	r.drawOneLine(canvas, re.Box.Rect(), re.Style, text, re.Style.basePx())
}

// placeArt scales art to cover the window, crops what falls outside the
// canvas and pastes the visible part. Overflow past the window but inside
// the canvas stays: the frame drawn above masks it.
func placeArt(canvas *image.NRGBA, art image.Image, window Box) *image.NRGBA {
	b := art.Bounds()
	p := FitArt(b.Dx(), b.Dy(), window)
	scaled := imaging.Resize(art, p.W, p.H, imaging.Lanczos)
	crop, at := p.CanvasCrop()
	return imaging.Paste(canvas, imaging.Crop(scaled, crop), at)
}
