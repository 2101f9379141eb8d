package scryfall

// Card is the slice of a Scryfall card object this tool consumes.
// All text fields are optional; an empty string suppresses the matching
// region when the card is rendered.
type Card struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	ManaCost      string   `json:"mana_cost"`
	TypeLine      string   `json:"type_line"`
	OracleText    string   `json:"oracle_text"`
	FlavorText    string   `json:"flavor_text"`
	Power         string   `json:"power"`
	Toughness     string   `json:"toughness"`
	Colors        []string `json:"colors"`
	ColorIdentity []string `json:"color_identity"`
	Artist        string   `json:"artist"`
	SetName       string   `json:"set_name"`
	Rarity        string   `json:"rarity"`
	ReleasedAt    string   `json:"released_at"`
	ImageURIs     struct {
		Small   string `json:"small"`
		Normal  string `json:"normal"`
		Large   string `json:"large"`
		ArtCrop string `json:"art_crop"`
	} `json:"image_uris"`
}

// ReleaseYear returns the four-digit year of the card's release date,
// or an empty string when unknown.
func (c *Card) ReleaseYear() string {
	if len(c.ReleasedAt) < 4 {
		return ""
	}
	return c.ReleasedAt[:4]
}
