package assets

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/thraizz/cardconjurer/internal/scryfall"
)

// ErrUnknownFrame reports a frame letter outside the set a pack ships.
var ErrUnknownFrame = errors.New("unknown frame letter")

// frameLetters is every frame background a style directory holds: the five
// colors plus multicolor, artifact and land.
const frameLetters = "wubrgmal"

// ValidFrameLetter reports whether s names a frame background: one of
// W, U, B, R, G, M, A or L, either case.
func ValidFrameLetter(s string) bool {
	return len(s) == 1 && strings.Contains(frameLetters, strings.ToLower(s))
}

// DefaultFrameStyle is the frame directory shipped with the asset pack.
const DefaultFrameStyle = "old/fourth"

// Library resolves every image asset a render needs from one root:
//
//	fonts/                 font files by identifier
//	img/symbols/           mana and tap symbol bitmaps
//	img/frames/<style>/    frame backgrounds by frame letter
//	img/divider.png        flavor text divider
type Library struct {
	root    string
	Fonts   *FontDir
	Symbols *SymbolDir

	dividerOnce sync.Once
	divider     image.Image
}

func NewLibrary(root string) *Library {
	return &Library{
		root:    root,
		Fonts:   NewFontDir(filepath.Join(root, "fonts")),
		Symbols: NewSymbolDir(filepath.Join(root, "img", "symbols")),
	}
}

// Frame loads the frame background for a frame letter of a style. Only the
// eight known letters reach the filesystem; callers pass the letter through
// from flags and request bodies.
func (l *Library) Frame(style, letter string) (image.Image, error) {
	if !ValidFrameLetter(letter) {
		return nil, fmt.Errorf("frame %s/%q: %w", style, letter, ErrUnknownFrame)
	}
	p := filepath.Join(l.root, "img", "frames", style, strings.ToLower(letter)+".png")
	img, err := imaging.Open(p)
	if err != nil {
		return nil, fmt.Errorf("frame %s/%s: %w", style, letter, err)
	}
	return img, nil
}

// Divider returns the flavor divider bar, or nil when the pack has none.
// The file is decoded once per Library and shared; a changed asset pack
// needs a fresh Library.
func (l *Library) Divider() image.Image {
	l.dividerOnce.Do(func() {
		img, err := imaging.Open(filepath.Join(l.root, "img", "divider.png"))
		if err != nil {
			return
		}
		l.divider = img
	})
	return l.divider
}

// Basic land names map straight to a color frame; matched as substrings so
// variants like "Snow-Covered Forest" land on the same frame.
var basicLands = []struct{ name, letter string }{
	{"plains", "W"},
	{"island", "U"},
	{"swamp", "B"},
	{"mountain", "R"},
	{"forest", "G"},
}

// FrameType picks the frame letter for a card: the basic lands and
// single-colored cards get their color letter, gold cards M, artifacts A.
// Other lands follow their color identity, everything left defaults to A.
func FrameType(c *scryfall.Card) string {
	name := strings.ToLower(c.Name)
	for _, b := range basicLands {
		if strings.Contains(name, b.name) {
			return b.letter
		}
	}
	if len(c.Colors) > 1 {
		return "M"
	}
	if len(c.Colors) == 1 {
		return c.Colors[0]
	}
	tl := strings.ToLower(c.TypeLine)
	if strings.Contains(tl, "artifact") {
		return "A"
	}
	if strings.Contains(tl, "land") {
		switch len(c.ColorIdentity) {
		case 0:
			return "L"
		case 1:
			return c.ColorIdentity[0]
		}
		return "M"
	}
	return "A"
}
