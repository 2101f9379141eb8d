package render

import (
	"image"
	"strings"
)

const (
	// lineHeightScale converts a font pixel size to the vertical advance of
	// one text line.
	lineHeightScale = 1.2
	// paragraphSpacingScale is the extra advance between paragraphs and
	// around the flavor divider, as a fraction of one line height.
	paragraphSpacingScale = 0.3
	// inlineSymbolScale sizes inline symbols relative to the font size so
	// they shrink in step with the text during the fit search.
	inlineSymbolScale = 0.8
	// Divider geometry: scaled to a fraction of the box width, never
	// shorter than the minimum height.
	dividerWidthScale = 0.3
	minDividerHeight  = 4
	// autoFitStep is the size decrement of both shrink searches; the floor
	// of the block search is half the base size, the floor of the one-line
	// search is minLinePx.
	autoFitStep = 2
	minLinePx   = 10
)

// UnitKind tags one rendering unit of a laid-out block.
type UnitKind uint8

const (
	RegularLine UnitKind = iota
	ItalicLine
	DividerUnit
)

// BlockUnit is one drawable row of a LayoutBlock: a wrapped line of regular
// or italic text, or the flavor divider. Advance is the vertical distance the
// cursor moves after drawing it, including any paragraph spacing.
type BlockUnit struct {
	Kind    UnitKind
	Line    Line
	Advance float64
}

// LayoutBlock is the fully measured rules/flavor block at one candidate font
// size. Blocks are rebuilt from scratch on every fit iteration, never mutated.
type LayoutBlock struct {
	Units  []BlockUnit
	Height float64
	Size   int
}

func lineHeight(px int) float64 {
	return float64(px) * lineHeightScale
}

func inlineSymbolPx(px int) int {
	return int(float64(px) * inlineSymbolScale)
}

// splitParagraphs splits newline-delimited text into non-empty paragraphs.
func splitParagraphs(s string) []string {
	var out []string
	for _, p := range strings.Split(s, "\n") {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// dividerSize returns the divider bitmap extent for a box width: 30% of the
// box wide, height from the asset's aspect ratio, floored at 4px.
func (r *Renderer) dividerSize(boxW float64) (int, int) {
	w := int(boxW * dividerWidthScale)
	h := 0
	if r.Divider != nil {
		b := r.Divider.Bounds()
		if b.Dx() > 0 {
			h = int(float64(w) * float64(b.Dy()) / float64(b.Dx()))
		}
	}
	if h < minDividerHeight {
		h = minDividerHeight
	}
	return w, h
}

// buildBlock lays out oracle and flavor text at one candidate size. Oracle
// paragraphs wrap symbol-aware and are tagged regular; flavor wraps on
// whitespace only and is tagged italic. A divider separates the two blocks
// when both are present.
func (r *Renderer) buildBlock(oracle, flavor string, boxW float64, st TextStyle, px int) LayoutBlock {
	lh := lineHeight(px)
	spacing := lh * paragraphSpacingScale
	flavorParas := splitParagraphs(flavor)

	var units []BlockUnit
	paras := splitParagraphs(oracle)
	regular := r.face(st.Font, px)
	for pi, para := range paras {
		lines := breakLines(Lex(para), regular, boxW, inlineSymbolPx(px))
		for li, ln := range lines {
			adv := lh
			if li == len(lines)-1 {
				ln.EndsParagraph = true
				if pi < len(paras)-1 || len(flavorParas) > 0 {
					adv += spacing
				}
			}
			units = append(units, BlockUnit{Kind: RegularLine, Line: ln, Advance: adv})
		}
	}

	if len(flavorParas) > 0 {
		if len(units) > 0 {
			_, divH := r.dividerSize(boxW)
			units = append(units, BlockUnit{Kind: DividerUnit, Advance: float64(divH) + spacing})
		}
		italic := r.face(st.ItalicFont, px)
		for _, para := range flavorParas {
			tokens := []Token{{Kind: TextToken, Text: para}}
			for _, ln := range breakLines(tokens, italic, boxW, 0) {
				units = append(units, BlockUnit{Kind: ItalicLine, Line: ln, Advance: lh})
			}
		}
	}

	var total float64
	for _, u := range units {
		total += u.Advance
	}
	return LayoutBlock{Units: units, Height: total, Size: px}
}

// fitBlock runs the descending size search: starting at the style's base
// size it rebuilds the block in 2px steps until the block height fits the
// box or the floor of half the base size is reached. The floor block is
// returned even when it still overflows; overflow is rendered, not rejected.
func (r *Renderer) fitBlock(oracle, flavor string, box image.Rectangle, st TextStyle) LayoutBlock {
	base := st.basePx()
	floor := base / 2
	size := base
	for {
		block := r.buildBlock(oracle, flavor, float64(box.Dx()), st, size)
		if block.Height <= float64(box.Dy()) || size-autoFitStep < floor {
			return block
		}
		size -= autoFitStep
	}
}
