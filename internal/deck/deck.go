package deck

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Entry is one decklist line: a card name and how many copies the deck runs.
type Entry struct {
	Count int    `json:"count"`
	Name  string `json:"name"`
}

// Deck is an ordered decklist. Entry order follows the source list;
// duplicate names are merged into the first occurrence.
type Deck struct {
	Name  string  `json:"name"`
	Cards []Entry `json:"cards"`
}

// Size returns the total number of cards, counting copies.
func (d Deck) Size() int {
	n := 0
	for _, e := range d.Cards {
		n += e.Count
	}
	return n
}

// Parse reads a plain text decklist. Lines look like "4 Lightning Bolt" or
// "4x Lightning Bolt"; a bare name counts as one copy. Blank lines are
// skipped, "#" starts a comment, and the first comment names the deck.
func Parse(r io.Reader) (Deck, error) {
	var d Deck
	index := make(map[string]int)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if d.Name == "" {
				d.Name = strings.TrimSpace(strings.TrimPrefix(line, "#"))
			}
			continue
		}

		count := 1
		name := line
		if f := strings.Fields(line); len(f) > 1 {
			if c, err := strconv.Atoi(strings.TrimSuffix(f[0], "x")); err == nil {
				if c <= 0 {
					return Deck{}, fmt.Errorf("line %d: bad count %q", lineNo, f[0])
				}
				count = c
				name = strings.TrimSpace(strings.TrimPrefix(line, f[0]))
			}
		}

		if i, ok := index[name]; ok {
			d.Cards[i].Count += count
			continue
		}
		index[name] = len(d.Cards)
		d.Cards = append(d.Cards, Entry{Count: count, Name: name})
	}
	if err := sc.Err(); err != nil {
		return Deck{}, err
	}
	return d, nil
}
