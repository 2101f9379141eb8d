package deck

import (
	"strconv"
	"strings"
)

// Text renders the deck back to its list form, one "Nx Name" line per
// entry. Parsing the result yields the same deck.
func (d Deck) Text() string {
	var lines []string
	if d.Name != "" {
		lines = append(lines, "# "+d.Name)
	}
	for _, e := range d.Cards {
		lines = append(lines, strconv.Itoa(e.Count)+"x "+e.Name)
	}
	return strings.Join(lines, "\n")
}
