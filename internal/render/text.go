package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func measureString(face font.Face, s string) float64 {
	if face == nil || s == "" {
		return 0
	}
	return fromFixed(font.MeasureString(face, s))
}

func faceAscent(face font.Face) float64 {
	if face == nil {
		return 0
	}
	return fromFixed(face.Metrics().Ascent)
}

func drawString(dst draw.Image, face font.Face, s string, x, y float64, col color.Color) {
	if face == nil || s == "" || col == nil {
		return
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y)},
	}
	d.DrawString(s)
}

// pasteSymbol draws a symbol bitmap at x with its vertical center at cy.
// Unknown symbols draw nothing; the caller advances by the reserved width
// either way.
func (r *Renderer) pasteSymbol(dst draw.Image, id string, px int, x, cy float64) {
	img := r.symbol(id, px)
	if img == nil {
		return
	}
	b := img.Bounds()
	left := int(math.Round(x))
	top := int(math.Round(cy - float64(b.Dy())/2))
	draw.Draw(dst, image.Rect(left, top, left+b.Dx(), top+b.Dy()), img, b.Min, draw.Over)
}

// drawLine draws one wrapped line's tokens left to right starting at x,
// with y the top of the line box. Symbols are centered against the face's
// ascent. A non-zero stretch is added after every token to justify the line.
func (r *Renderer) drawLine(dst draw.Image, ln Line, face font.Face, col color.Color, x, y float64, symPx int, stretch float64) {
	ascent := faceAscent(face)
	baseline := y + ascent
	for _, t := range ln.Tokens {
		if t.Kind == SymbolToken {
			r.pasteSymbol(dst, t.Text, symPx, x, baseline-ascent/2)
			x += symbolWidth(symPx)
		} else {
			drawString(dst, face, t.Text, x, baseline, col)
			x += measureString(face, t.Text)
		}
		x += stretch
	}
}

// drawDivider pastes the flavor divider centered at the cursor. Without a
// divider asset a plain dark bar of the minimum height stands in.
func (r *Renderer) drawDivider(dst draw.Image, box image.Rectangle, y float64) {
	w, h := r.dividerSize(float64(box.Dx()))
	var img image.Image
	if r.Divider != nil {
		img = imaging.Resize(r.Divider, w, h, imaging.Lanczos)
	} else {
		img = imaging.New(w, h, color.NRGBA{0x26, 0x1d, 0x12, 0xff})
	}
	left := box.Min.X + (box.Dx()-w)/2
	top := int(math.Round(y))
	draw.Draw(dst, image.Rect(left, top, left+w, top+h), img, img.Bounds().Min, draw.Over)
}

// drawBlock draws a fitted layout block into box, vertically centering the
// whole block. Regular lines start at the box's left edge (stretched to the
// right edge when the style justifies); italic lines are centered.
func (r *Renderer) drawBlock(dst draw.Image, box image.Rectangle, st TextStyle, block LayoutBlock) {
	regular := r.face(st.Font, block.Size)
	italic := r.face(st.ItalicFont, block.Size)
	symPx := inlineSymbolPx(block.Size)
	boxW := float64(box.Dx())
	y := float64(box.Min.Y) + (float64(box.Dy())-block.Height)/2

	for _, u := range block.Units {
		switch u.Kind {
		case DividerUnit:
			r.drawDivider(dst, box, y)
		case RegularLine:
			var stretch float64
			if st.Justify && !u.Line.EndsParagraph && len(u.Line.Tokens) > 1 && u.Line.Width < boxW {
				stretch = (boxW - u.Line.Width) / float64(len(u.Line.Tokens)-1)
			}
			r.drawLine(dst, u.Line, regular, st.Color, float64(box.Min.X), y, symPx, stretch)
		case ItalicLine:
			x := float64(box.Min.X) + (boxW-u.Line.Width)/2
			r.drawLine(dst, u.Line, italic, st.Color, x, y, 0, 0)
		}
		y += u.Advance
	}
}

// fitLinePx finds the largest size stepping down from basePx in 2px
// decrements whose measured width fits maxW, stopping at the 10px floor.
func (r *Renderer) fitLinePx(fontID, text string, maxW float64, basePx int) (font.Face, int, float64) {
	px := basePx
	face := r.face(fontID, px)
	w := measureString(face, text)
	for px-autoFitStep >= minLinePx && w > maxW {
		px -= autoFitStep
		face = r.face(fontID, px)
		w = measureString(face, text)
	}
	return face, px, w
}

// drawOneLine shrinks a single line of plain text until it fits the box
// width, then draws it with the style's alignment, vertical centering and
// optional drop shadow. Text still overflowing at the floor is drawn anyway.
func (r *Renderer) drawOneLine(dst draw.Image, box image.Rectangle, st TextStyle, text string, basePx int) {
	face, _, w := r.fitLinePx(st.Font, text, float64(box.Dx()), basePx)
	if face == nil {
		return
	}

	var x float64
	switch st.Align {
	case AlignCenter:
		x = float64(box.Min.X) + (float64(box.Dx())-w)/2
	case AlignRight:
		x = float64(box.Max.X) - w
	default:
		x = float64(box.Min.X)
	}
	m := face.Metrics()
	occupied := fromFixed(m.Ascent + m.Descent)
	baseline := float64(box.Min.Y) + (float64(box.Dy())-occupied)/2 + fromFixed(m.Ascent)

	if st.hasShadow() {
		dx, dy := st.shadowOffset()
		drawString(dst, face, text, x+float64(dx), baseline+float64(dy), st.ShadowColor)
	}
	drawString(dst, face, text, x, baseline, st.Color)
}

// drawManaCost right-aligns the cost's symbols flush against the box's right
// edge, separated by the standard 10% gutters, shrinking the symbol size when
// the row would overflow. Text between symbols is not drawn here; a mana row
// is symbols only.
func (r *Renderer) drawManaCost(dst draw.Image, box image.Rectangle, st TextStyle, cost string) {
	var ids []string
	for _, t := range Lex(cost) {
		if t.Kind == SymbolToken {
			ids = append(ids, t.Text)
		}
	}
	if len(ids) == 0 {
		return
	}

	rowWidth := func(px int) float64 {
		n := float64(len(ids))
		return n*float64(px) + (n-1)*float64(px)/10
	}
	px := st.basePx()
	for px-autoFitStep >= minLinePx && rowWidth(px) > float64(box.Dx()) {
		px -= autoFitStep
	}

	cy := float64(box.Min.Y) + float64(box.Dy())/2
	x := float64(box.Max.X) - float64(px)
	for i := len(ids) - 1; i >= 0; i-- {
		r.pasteSymbol(dst, ids[i], px, x, cy)
		x -= symbolWidth(px)
	}
}

// DrawLabel renders one shrink-to-fit text line into an arbitrary pixel
// rectangle. It is the card compositor's single-line path exposed for sheet
// composition and other callers that work outside the card canvas.
func (r *Renderer) DrawLabel(dst draw.Image, rect image.Rectangle, text, fontID string, px int, col color.Color, align Align) {
	st := TextStyle{Font: fontID, Color: col, Align: align}
	r.drawOneLine(dst, rect, st, text, px)
}
