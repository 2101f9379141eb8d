package assets

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/thraizz/cardconjurer/internal/scryfall"
)

func TestFrameType(t *testing.T) {
	cases := []struct {
		name string
		card scryfall.Card
		want string
	}{
		{"plains", scryfall.Card{Name: "Plains", TypeLine: "Basic Land — Plains"}, "W"},
		{"snow basic", scryfall.Card{Name: "Snow-Covered Forest", TypeLine: "Basic Snow Land — Forest"}, "G"},
		{"gold", scryfall.Card{Name: "Lightning Helix", Colors: []string{"R", "W"}}, "M"},
		{"single color", scryfall.Card{Name: "Counterspell", Colors: []string{"U"}}, "U"},
		{"artifact", scryfall.Card{Name: "Sol Ring", TypeLine: "Artifact"}, "A"},
		{"colorless land", scryfall.Card{Name: "Strip Mine", TypeLine: "Land"}, "L"},
		{"one color land", scryfall.Card{Name: "Gaea's Cradle", TypeLine: "Legendary Land", ColorIdentity: []string{"G"}}, "G"},
		{"two color land", scryfall.Card{Name: "Badlands", TypeLine: "Land — Swamp Mountain", ColorIdentity: []string{"B", "R"}}, "M"},
		{"colorless other", scryfall.Card{Name: "Kozilek's Channeler", TypeLine: "Creature — Eldrazi"}, "A"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FrameType(&tc.card); got != tc.want {
				t.Errorf("FrameType(%s) = %q, want %q", tc.card.Name, got, tc.want)
			}
		})
	}
}

func TestFrameType_BasicLandBeatsColorIdentity(t *testing.T) {
	// Basics carry their color in the name, not the Colors slice.
	c := scryfall.Card{Name: "Mountain", TypeLine: "Basic Land — Mountain", ColorIdentity: []string{"R"}}
	if got := FrameType(&c); got != "R" {
		t.Errorf("FrameType = %q, want R", got)
	}
}

func TestLibrary_Frame_Loads(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "img", "frames", "old", "fourth")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	frame := imaging.New(4, 4, color.NRGBA{0xcc, 0xcc, 0xcc, 0xff})
	if err := imaging.Save(frame, filepath.Join(dir, "w.png")); err != nil {
		t.Fatal(err)
	}

	lib := NewLibrary(root)
	img, err := lib.Frame(DefaultFrameStyle, "W")
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Errorf("bounds = %v, want 4x4", img.Bounds())
	}
}

func TestLibrary_Frame_Missing(t *testing.T) {
	lib := NewLibrary(t.TempDir())
	if _, err := lib.Frame(DefaultFrameStyle, "W"); err == nil {
		t.Error("expected error for a missing frame, got nil")
	}
}

func TestValidFrameLetter(t *testing.T) {
	for _, s := range []string{"W", "u", "B", "r", "G", "m", "A", "l"} {
		if !ValidFrameLetter(s) {
			t.Errorf("ValidFrameLetter(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "X", "WU", "../w", "w.png", "."} {
		if ValidFrameLetter(s) {
			t.Errorf("ValidFrameLetter(%q) = true, want false", s)
		}
	}
}

func TestLibrary_Frame_RejectsUnknownLetter(t *testing.T) {
	// A decodable image outside the frames directory stays unreachable even
	// when the letter walks up with "..".
	root := t.TempDir()
	outside := imaging.New(4, 4, color.NRGBA{0x10, 0x10, 0x10, 0xff})
	if err := imaging.Save(outside, filepath.Join(root, "escape.png")); err != nil {
		t.Fatal(err)
	}

	lib := NewLibrary(root)
	for _, letter := range []string{"../../../../escape", "WU", "", "w.png"} {
		if _, err := lib.Frame(DefaultFrameStyle, letter); !errors.Is(err, ErrUnknownFrame) {
			t.Errorf("Frame(%q) err = %v, want ErrUnknownFrame", letter, err)
		}
	}
}

func writeDivider(t *testing.T, root string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(root, "img"), 0o755); err != nil {
		t.Fatal(err)
	}
	bar := imaging.New(10, 2, color.NRGBA{0x26, 0x1d, 0x12, 0xff})
	if err := imaging.Save(bar, filepath.Join(root, "img", "divider.png")); err != nil {
		t.Fatal(err)
	}
}

func TestLibrary_Divider(t *testing.T) {
	root := t.TempDir()
	if NewLibrary(root).Divider() != nil {
		t.Error("Divider = non-nil with no asset on disk")
	}

	writeDivider(t, root)
	if NewLibrary(root).Divider() == nil {
		t.Error("Divider = nil with img/divider.png present")
	}
}

func TestLibrary_Divider_CachesDecodedImage(t *testing.T) {
	root := t.TempDir()
	writeDivider(t, root)

	lib := NewLibrary(root)
	if lib.Divider() == nil {
		t.Fatal("Divider = nil with img/divider.png present")
	}

	// The decoded bar outlives the file.
	if err := os.Remove(filepath.Join(root, "img", "divider.png")); err != nil {
		t.Fatal(err)
	}
	if lib.Divider() == nil {
		t.Error("Divider = nil after the file was removed")
	}
}
