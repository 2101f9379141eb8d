package assets

import (
	"github.com/thraizz/cardconjurer/internal/render"
	"github.com/thraizz/cardconjurer/internal/scryfall"
)

// CardData maps a looked-up card onto the renderer's text regions, adding
// the standard artist credit and a copyright line for the release year.
func CardData(c *scryfall.Card) render.CardData {
	data := render.CardData{
		Name:       c.Name,
		ManaCost:   c.ManaCost,
		TypeLine:   c.TypeLine,
		OracleText: c.OracleText,
		FlavorText: c.FlavorText,
		Power:      c.Power,
		Toughness:  c.Toughness,
	}
	if c.Artist != "" {
		data.Artist = "Illus. " + c.Artist
	}
	if year := c.ReleaseYear(); year != "" {
		data.Copyright = "™ & © " + year + " Wizards of the Coast"
	}
	return data
}
