package render

import (
	"strings"

	"golang.org/x/image/font"
)

// Line is a wrapped, ordered run of tokens plus its measured pixel width.
// Text tokens hold the exact string to draw, spaces included.
type Line struct {
	Tokens        []Token
	Width         float64
	EndsParagraph bool
}

// blank reports a line with nothing to draw: no symbols and no text beyond
// the empty remnant a stripped space leaves behind.
func (l Line) blank() bool {
	for _, t := range l.Tokens {
		if t.Kind == SymbolToken || t.Text != "" {
			return false
		}
	}
	return true
}

// A unit is the smallest thing the breaker places: a single word from a text
// token, or one atomic symbol. spaced marks words that were preceded by a
// space inside their source token; the space is reattached when the word is
// not the first item on its line.
type unit struct {
	sym    bool
	text   string
	spaced bool
}

func splitUnits(tokens []Token) []unit {
	var units []unit
	for _, t := range tokens {
		if t.Kind == SymbolToken {
			units = append(units, unit{sym: true, text: t.Text})
			continue
		}
		for i, w := range strings.Split(t.Text, " ") {
			units = append(units, unit{text: w, spaced: i > 0})
		}
	}
	return units
}

// symbolWidth is the reserved width of an inline symbol: the bitmap plus a
// 10% trailing gutter.
func symbolWidth(px int) float64 {
	return float64(px) * 1.1
}

// breakLines packs tokens into lines whose measured width stays within
// maxWidth. Packing is greedy; a unit that does not fit closes the current
// line and opens the next one. A single oversized unit is never split: it is
// placed alone on its line and may overflow. An empty token sequence yields
// no lines, and a line left blank by a stripped space is never emitted.
func breakLines(tokens []Token, face font.Face, maxWidth float64, symbolPx int) []Line {
	units := splitUnits(tokens)
	if len(units) == 0 {
		return nil
	}

	var lines []Line
	var cur Line
	for _, u := range units {
		if u.sym {
			w := symbolWidth(symbolPx)
			if len(cur.Tokens) > 0 && cur.Width+w > maxWidth {
				if !cur.blank() {
					lines = append(lines, cur)
				}
				cur = Line{}
			}
			cur.Tokens = append(cur.Tokens, Token{Kind: SymbolToken, Text: u.text})
			cur.Width += w
			continue
		}

		text := u.text
		if u.spaced && len(cur.Tokens) > 0 {
			text = " " + text
		}
		w := measureString(face, text)
		if len(cur.Tokens) > 0 && cur.Width+w > maxWidth {
			if !cur.blank() {
				lines = append(lines, cur)
			}
			cur = Line{}
			// A word dropped to a fresh line loses its leading space.
			text = u.text
			w = measureString(face, text)
		}
		cur.Tokens = append(cur.Tokens, Token{Kind: TextToken, Text: text})
		cur.Width += w
	}
	if len(cur.Tokens) > 0 && !cur.blank() {
		lines = append(lines, cur)
	}
	return lines
}
