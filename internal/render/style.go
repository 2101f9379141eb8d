package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Align is the horizontal alignment of a text region.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle describes how one labeled region is drawn.
type TextStyle struct {
	Font       string  // font identifier for regular text
	ItalicFont string  // font identifier for the flavor block
	Size       float64 // base size as a fraction of canvas height
	Color      color.Color
	Align      Align
	Justify    bool // stretch multi-line regular text to the box width

	// Shadow offset as fractions of the canvas dimensions. The shadow is a
	// duplicate glyph run drawn before the main one; zero offsets disable it.
	ShadowColor color.Color
	ShadowX     float64
	ShadowY     float64
}

func (st TextStyle) basePx() int {
	return int(math.Round(st.Size * CardHeight))
}

func (st TextStyle) shadowOffset() (int, int) {
	return int(math.Round(st.ShadowX * CardWidth)), int(math.Round(st.ShadowY * CardHeight))
}

func (st TextStyle) hasShadow() bool {
	dx, dy := st.shadowOffset()
	return st.ShadowColor != nil && (dx != 0 || dy != 0)
}

// Region pairs a bounding box with the style its text is drawn in.
type Region struct {
	Box   Box
	Style TextStyle
}

// CardLayout holds the art window and every labeled text region of a frame.
// Region field order matches the fixed draw order of the compositor.
type CardLayout struct {
	Art       Box
	Title     Region
	Mana      Region
	TypeLine  Region
	Rules     Region
	PT        Region
	Artist    Region
	Copyright Region
}

var (
	black = color.NRGBA{0x00, 0x00, 0x00, 0xff}
	white = color.NRGBA{0xff, 0xff, 0xff, 0xff}
)

// FourthEdition returns the region layout for the classic fourth edition
// frames shipped under img/frames/old/fourth.
func FourthEdition() CardLayout {
	return CardLayout{
		Art: Box{X: 0.1034, Y: 0.0886, W: 0.7940, H: 0.4543},
		Title: Region{
			Box:   Box{X: 0.0854, Y: 0.0522, W: 0.8292, H: 0.0362},
			Style: TextStyle{Font: "goudy-medieval", Size: 0.0343, Color: black, Align: AlignLeft},
		},
		Mana: Region{
			Box:   Box{X: 0.5246, Y: 0.0522, W: 0.3900, H: 0.0362},
			Style: TextStyle{Size: 0.0320, Align: AlignRight},
		},
		TypeLine: Region{
			Box:   Box{X: 0.0854, Y: 0.5664, W: 0.8292, H: 0.0362},
			Style: TextStyle{Font: "goudy-medieval", Size: 0.0320, Color: black, Align: AlignLeft},
		},
		Rules: Region{
			Box:   Box{X: 0.1000, Y: 0.6302, W: 0.8000, H: 0.2396},
			Style: TextStyle{Font: "mplantin", ItalicFont: "mplantin-italic", Size: 0.0305, Color: black, Align: AlignLeft},
		},
		PT: Region{
			Box:   Box{X: 0.7727, Y: 0.9015, W: 0.1433, H: 0.0429},
			Style: TextStyle{Font: "mplantin-bold", Size: 0.0362, Color: black, Align: AlignCenter},
		},
		Artist: Region{
			Box: Box{X: 0.0960, Y: 0.9330, W: 0.7000, H: 0.0220},
			Style: TextStyle{
				Font: "mplantin", Size: 0.0200, Color: white, Align: AlignLeft,
				ShadowColor: black, ShadowX: 0.0013, ShadowY: 0.0010,
			},
		},
		Copyright: Region{
			Box: Box{X: 0.0960, Y: 0.9560, W: 0.7000, H: 0.0180},
			Style: TextStyle{
				Font: "mplantin", Size: 0.0160, Color: white, Align: AlignLeft,
				ShadowColor: black, ShadowX: 0.0013, ShadowY: 0.0010,
			},
		},
	}
}

// StyleOverride is the JSON shape accepted for re-styling one region.
// Empty fields leave the default untouched.
type StyleOverride struct {
	Box          *[4]float64 `json:"box"` // x, y, w, h as canvas fractions
	Font         string      `json:"font"`
	Size         float64     `json:"size"`
	Color        string      `json:"color"`
	Align        string      `json:"align"`
	ShadowColor  string      `json:"shadow_color"`
	ShadowOffset *[2]float64 `json:"shadow_offset"`
}

func (re *Region) apply(o StyleOverride) error {
	if o.Box != nil {
		re.Box = Box{X: o.Box[0], Y: o.Box[1], W: o.Box[2], H: o.Box[3]}
	}
	if o.Font != "" {
		re.Style.Font = o.Font
	}
	if o.Size > 0 {
		re.Style.Size = o.Size
	}
	if o.Color != "" {
		c, err := colorful.Hex(o.Color)
		if err != nil {
			return fmt.Errorf("color %q: %w", o.Color, err)
		}
		re.Style.Color = c
	}
	if o.ShadowColor != "" {
		c, err := colorful.Hex(o.ShadowColor)
		if err != nil {
			return fmt.Errorf("shadow color %q: %w", o.ShadowColor, err)
		}
		re.Style.ShadowColor = c
	}
	if o.ShadowOffset != nil {
		re.Style.ShadowX = o.ShadowOffset[0]
		re.Style.ShadowY = o.ShadowOffset[1]
	}
	switch o.Align {
	case "":
	case "left":
		re.Style.Align = AlignLeft
	case "center":
		re.Style.Align = AlignCenter
	case "right":
		re.Style.Align = AlignRight
	default:
		return fmt.Errorf("unknown alignment %q", o.Align)
	}
	return nil
}

// Apply merges style overrides into the layout by region name. Region names
// are title, mana, type, rules, pt, artist and copyright. Overridden boxes
// are revalidated by the compositor before any drawing happens.
func (l *CardLayout) Apply(overrides map[string]StyleOverride) error {
	for name, o := range overrides {
		var re *Region
		switch name {
		case "title":
			re = &l.Title
		case "mana":
			re = &l.Mana
		case "type":
			re = &l.TypeLine
		case "rules":
			re = &l.Rules
		case "pt":
			re = &l.PT
		case "artist":
			re = &l.Artist
		case "copyright":
			re = &l.Copyright
		default:
			return fmt.Errorf("unknown region %q", name)
		}
		if err := re.apply(o); err != nil {
			return fmt.Errorf("region %q: %w", name, err)
		}
	}
	return nil
}
