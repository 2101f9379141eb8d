package deck

import (
	"image"
	"image/color"
	"strconv"

	"github.com/disintegration/imaging"

	"github.com/thraizz/cardconjurer/internal/render"
)

// Sheet geometry. Card faces are pasted at a quarter of the render
// resolution, five to a row like a printed binder page.
const (
	sheetCols   = 5
	sheetMargin = 48
	sheetGutter = 24
	thumbW      = render.CardWidth / 4
	thumbH      = render.CardHeight / 4
	badgeH      = 48
	qrSize      = 120
	headerH     = sheetMargin + qrSize + sheetGutter
)

var sheetInk = color.NRGBA{0x20, 0x20, 0x20, 0xff}

// ComposeSheet lays rendered card faces out in a grid with the deck name in
// the header, a QR code of the decklist at the top right and a copy count
// badge under each face. faces aligns with d.Cards; a nil or missing face
// leaves its cell blank.
func ComposeSheet(d Deck, faces []image.Image, qr image.Image, r *render.Renderer) *image.NRGBA {
	rows := (len(d.Cards) + sheetCols - 1) / sheetCols
	if rows == 0 {
		rows = 1
	}
	w := sheetMargin*2 + sheetCols*thumbW + (sheetCols-1)*sheetGutter
	h := headerH + rows*(thumbH+badgeH+sheetGutter) + sheetMargin
	canvas := imaging.New(w, h, color.NRGBA{0xee, 0xee, 0xee, 0xff})

	if d.Name != "" {
		name := image.Rect(sheetMargin, sheetMargin, w-sheetMargin-qrSize-sheetGutter, sheetMargin+qrSize)
		r.DrawLabel(canvas, name, d.Name, "goudy-medieval", 64, sheetInk, render.AlignLeft)
	}
	if qr != nil {
		q := imaging.Resize(qr, qrSize, qrSize, imaging.Lanczos)
		canvas = imaging.Paste(canvas, q, image.Pt(w-sheetMargin-qrSize, sheetMargin))
	}

	for i, e := range d.Cards {
		x := sheetMargin + (i%sheetCols)*(thumbW+sheetGutter)
		y := headerH + (i/sheetCols)*(thumbH+badgeH+sheetGutter)
		if i < len(faces) && faces[i] != nil {
			thumb := imaging.Resize(faces[i], thumbW, thumbH, imaging.Lanczos)
			canvas = imaging.Paste(canvas, thumb, image.Pt(x, y))
		}
		badge := image.Rect(x, y+thumbH, x+thumbW, y+thumbH+badgeH)
		r.DrawLabel(canvas, badge, strconv.Itoa(e.Count)+"x", "mplantin-bold", 32, sheetInk, render.AlignCenter)
	}
	return canvas
}
