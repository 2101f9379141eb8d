package scryfall

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"net/http"
	"net/url"
	"time"

	"github.com/disintegration/imaging"
)

const apiBase = "https://api.scryfall.com"

// ErrNotFound reports a name the Scryfall catalog does not match.
var ErrNotFound = errors.New("not found")

// NamedFuzzy looks up a card by approximate name using Scryfall's
// /cards/named endpoint. A 404 wraps ErrNotFound so callers can tell a bad
// name from a failed service.
func NamedFuzzy(name string) (*Card, error) {
	u := apiBase + "/cards/named?fuzzy=" + url.QueryEscape(name)

	client := http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("connecting to Scryfall: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("card %q on Scryfall: %w", name, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Scryfall lookup for %q: %s", name, resp.Status)
	}

	var card Card
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		return nil, fmt.Errorf("decoding Scryfall response: %w", err)
	}
	return &card, nil
}

// DownloadImage fetches and decodes an image (typically an art_crop URL).
func DownloadImage(imgURL string) (image.Image, error) {
	client := http.Client{Timeout: 12 * time.Second}
	resp, err := client.Get(imgURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", imgURL, resp.Status)
	}
	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding image from %s: %w", imgURL, err)
	}
	return img, nil
}
