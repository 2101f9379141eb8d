package scryfall

import (
	"encoding/json"
	"testing"
)

// Trimmed from a real /cards/named response.
const sampleCard = `{
	"id": "ce711943-c1a1-43a0-8b89-8d169cfb8e06",
	"name": "Lightning Bolt",
	"released_at": "2010-07-16",
	"mana_cost": "{R}",
	"type_line": "Instant",
	"oracle_text": "Lightning Bolt deals 3 damage to any target.",
	"colors": ["R"],
	"color_identity": ["R"],
	"artist": "Christopher Moeller",
	"set_name": "Magic 2011",
	"rarity": "common",
	"image_uris": {
		"small": "https://cards.scryfall.io/small/front/c/e/ce711943.jpg",
		"normal": "https://cards.scryfall.io/normal/front/c/e/ce711943.jpg",
		"large": "https://cards.scryfall.io/large/front/c/e/ce711943.jpg",
		"art_crop": "https://cards.scryfall.io/art_crop/front/c/e/ce711943.jpg"
	}
}`

func TestCard_Unmarshal(t *testing.T) {
	var c Card
	if err := json.Unmarshal([]byte(sampleCard), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c.Name != "Lightning Bolt" {
		t.Errorf("name = %q", c.Name)
	}
	if c.ManaCost != "{R}" {
		t.Errorf("mana cost = %q", c.ManaCost)
	}
	if c.OracleText != "Lightning Bolt deals 3 damage to any target." {
		t.Errorf("oracle text = %q", c.OracleText)
	}
	if len(c.Colors) != 1 || c.Colors[0] != "R" {
		t.Errorf("colors = %v", c.Colors)
	}
	if c.ImageURIs.ArtCrop == "" {
		t.Error("art_crop URI not decoded")
	}
	if c.Artist != "Christopher Moeller" {
		t.Errorf("artist = %q", c.Artist)
	}
}

func TestCard_ReleaseYear(t *testing.T) {
	cases := []struct{ date, want string }{
		{"2010-07-16", "2010"},
		{"1993-08-05", "1993"},
		{"1994", "1994"},
		{"93", ""},
		{"", ""},
	}
	for _, tc := range cases {
		c := Card{ReleasedAt: tc.date}
		if got := c.ReleaseYear(); got != tc.want {
			t.Errorf("ReleaseYear(%q) = %q, want %q", tc.date, got, tc.want)
		}
	}
}
