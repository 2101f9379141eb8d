package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/thraizz/cardconjurer/internal/assets"
	"github.com/thraizz/cardconjurer/internal/deck"
	"github.com/thraizz/cardconjurer/internal/render"
	"github.com/thraizz/cardconjurer/internal/scryfall"
	"github.com/thraizz/cardconjurer/internal/util"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `usage: cardconjurer [flags] "Card Name" [art.png [output.png]]
       cardconjurer -deck list.txt [output.png]

Renders a trading card: Scryfall metadata, cover-fitted art and a fourth
edition frame composed into a 1500x2100 PNG. With -deck, renders every card
of a decklist onto a single sheet.

`)
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	var (
		frame    = flag.String("frame", "", "frame letter override (W U B R G M A L)")
		offline  = flag.Bool("offline", false, "skip the Scryfall API, requires -frame")
		info     = flag.Bool("info", false, "print card information from Scryfall")
		assetDir = flag.String("assets", "assets", "asset pack directory")
		stylePth = flag.String("style", "", "JSON style override file")
		deckPth  = flag.String("deck", "", "decklist file to render as a sheet")
	)
	flag.Usage = usage
	flag.Parse()
	if *frame != "" && !assets.ValidFrameLetter(*frame) {
		log.Fatalf("-frame %q: want one of W U B R G M A L", *frame)
	}

	lib := assets.NewLibrary(*assetDir)
	layout := render.FourthEdition()
	if *stylePth != "" {
		if err := applyStyleFile(&layout, *stylePth); err != nil {
			log.Fatal(err)
		}
	}
	cacheDir := filepath.Join(*assetDir, "cache", "art")

	if *deckPth != "" {
		out := flag.Arg(0)
		if out == "" {
			out = stem(*deckPth) + "_sheet.png"
		}
		if err := renderDeck(lib, layout, cacheDir, *deckPth, out); err != nil {
			log.Fatal(err)
		}
		log.Println("sheet saved to", out)
		return
	}

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}
	name := flag.Arg(0)
	artPath := flag.Arg(1)
	outPath := flag.Arg(2)

	var card *scryfall.Card
	if *offline {
		if *frame == "" {
			log.Fatal("offline mode requires -frame")
		}
		card = &scryfall.Card{Name: name}
	} else {
		log.Printf("fetching %q from Scryfall", name)
		c, err := scryfall.NamedFuzzy(name)
		if err != nil {
			log.Println(err)
			log.Fatal("tip: use -offline -frame <W U B R G M A L> to skip the API")
		}
		card = c
	}

	if *info {
		printInfo(card)
	}

	var art image.Image
	switch {
	case artPath != "":
		img, err := imaging.Open(artPath)
		if err != nil {
			log.Fatalf("art: %v", err)
		}
		art = img
	case card.ImageURIs.ArtCrop != "":
		log.Println("no art file given, fetching the Scryfall art crop")
		img, err := fetchArt(card, cacheDir)
		if err != nil {
			log.Println("art download:", err)
		} else {
			art = img
		}
	}

	letter := *frame
	if letter == "" {
		letter = assets.FrameType(card)
	}
	frameImg, err := lib.Frame(assets.DefaultFrameStyle, letter)
	if err != nil {
		log.Println(err)
	}

	r := render.New(lib.Fonts, lib.Symbols)
	r.Divider = lib.Divider()
	out, err := r.Card(assets.CardData(card), art, frameImg, nil, layout)
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	if outPath == "" {
		outPath = util.SafeName(card.Name) + "_card.png"
	}
	if err := imaging.Save(out, outPath); err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Printf("card saved to %s (%s frame)", outPath, letter)
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func applyStyleFile(layout *render.CardLayout, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("style file: %w", err)
	}
	var overrides map[string]render.StyleOverride
	if err := json.Unmarshal(b, &overrides); err != nil {
		return fmt.Errorf("style file %s: %w", path, err)
	}
	return layout.Apply(overrides)
}

func printInfo(c *scryfall.Card) {
	fmt.Println("--- Card Information ---")
	fmt.Println("Name:", c.Name)
	fmt.Println("Type:", c.TypeLine)
	fmt.Println("Colors:", c.Colors)
	fmt.Println("Color Identity:", c.ColorIdentity)
	fmt.Println("Mana Cost:", c.ManaCost)
	if c.OracleText != "" {
		fmt.Println("Text:", c.OracleText)
	}
	fmt.Println("------------------------")
}

// fetchArt downloads the card's art crop, keeping a copy under the asset
// cache so repeat renders stay off the network.
func fetchArt(card *scryfall.Card, cacheDir string) (image.Image, error) {
	if card.ImageURIs.ArtCrop == "" {
		return nil, fmt.Errorf("no art crop for %q", card.Name)
	}
	path := ""
	if p, err := util.CachePath(cacheDir, card.Name+".jpg"); err == nil {
		path = p
		if img, err := imaging.Open(p); err == nil {
			return img, nil
		}
	}
	b, err := util.GetBytes(card.ImageURIs.ArtCrop)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := os.WriteFile(path, b, 0o644); err != nil {
			log.Println("art cache:", err)
		}
	}
	return imaging.Decode(bytes.NewReader(b))
}

func renderDeck(lib *assets.Library, layout render.CardLayout, cacheDir, listPath, outPath string) error {
	f, err := os.Open(listPath)
	if err != nil {
		return err
	}
	defer f.Close()
	d, err := deck.Parse(f)
	if err != nil {
		return err
	}
	if len(d.Cards) == 0 {
		return fmt.Errorf("decklist %s is empty", listPath)
	}
	if d.Name == "" {
		d.Name = stem(listPath)
	}

	r := render.New(lib.Fonts, lib.Symbols)
	r.Divider = lib.Divider()
	faces := make([]image.Image, len(d.Cards))
	for i, e := range d.Cards {
		log.Printf("rendering %s (%dx)", e.Name, e.Count)
		card, err := scryfall.NamedFuzzy(e.Name)
		if err != nil {
			log.Println(err)
			continue
		}
		var art image.Image
		if img, err := fetchArt(card, cacheDir); err != nil {
			log.Println("art:", err)
		} else {
			art = img
		}
		frameImg, err := lib.Frame(assets.DefaultFrameStyle, assets.FrameType(card))
		if err != nil {
			log.Println(err)
		}
		face, err := r.Card(assets.CardData(card), art, frameImg, nil, layout)
		if err != nil {
			return err
		}
		faces[i] = face
	}

	qr, err := deck.QRImage(d.Text(), 400)
	if err != nil {
		log.Println("qr:", err)
	}
	return imaging.Save(deck.ComposeSheet(d, faces, qr, r), outPath)
}
