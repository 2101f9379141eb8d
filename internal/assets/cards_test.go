package assets

import (
	"testing"

	"github.com/thraizz/cardconjurer/internal/scryfall"
)

func TestCardData_MapsFields(t *testing.T) {
	c := scryfall.Card{
		Name:       "Serra Angel",
		ManaCost:   "{3}{W}{W}",
		TypeLine:   "Creature — Angel",
		OracleText: "Flying, vigilance",
		FlavorText: "Her sword sings more beautifully than any choir.",
		Power:      "4",
		Toughness:  "4",
	}
	data := CardData(&c)
	if data.Name != c.Name || data.ManaCost != c.ManaCost || data.TypeLine != c.TypeLine {
		t.Errorf("header fields not carried over: %+v", data)
	}
	if data.OracleText != c.OracleText || data.FlavorText != c.FlavorText {
		t.Errorf("text fields not carried over: %+v", data)
	}
	if data.Power != "4" || data.Toughness != "4" {
		t.Errorf("P/T = %q/%q, want 4/4", data.Power, data.Toughness)
	}
}

func TestCardData_ArtistCredit(t *testing.T) {
	data := CardData(&scryfall.Card{Name: "Serra Angel", Artist: "Douglas Shuler"})
	if data.Artist != "Illus. Douglas Shuler" {
		t.Errorf("artist = %q, want %q", data.Artist, "Illus. Douglas Shuler")
	}

	data = CardData(&scryfall.Card{Name: "Serra Angel"})
	if data.Artist != "" {
		t.Errorf("artist = %q for a card without one, want empty", data.Artist)
	}
}

func TestCardData_CopyrightLine(t *testing.T) {
	data := CardData(&scryfall.Card{Name: "Serra Angel", ReleasedAt: "1995-06-03"})
	if want := "™ & © 1995 Wizards of the Coast"; data.Copyright != want {
		t.Errorf("copyright = %q, want %q", data.Copyright, want)
	}

	data = CardData(&scryfall.Card{Name: "Serra Angel"})
	if data.Copyright != "" {
		t.Errorf("copyright = %q for an undated card, want empty", data.Copyright)
	}
}
