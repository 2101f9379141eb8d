package api

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/thraizz/cardconjurer/internal/assets"
	"github.com/thraizz/cardconjurer/internal/deck"
	"github.com/thraizz/cardconjurer/internal/render"
	"github.com/thraizz/cardconjurer/internal/scryfall"
)

// Handler carries the shared asset library. Renderers are built per
// request; the caches behind the library do their own locking.
type Handler struct {
	Assets *assets.Library
}

func NewHandler(lib *assets.Library) *Handler {
	return &Handler{Assets: lib}
}

func (h *Handler) renderer() *render.Renderer {
	r := render.New(h.Assets.Fonts, h.Assets.Symbols)
	r.Divider = h.Assets.Divider()
	return r
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// lookupStatus separates a name Scryfall does not know (404) from a lookup
// that failed outright (502).
func lookupStatus(err error) int {
	if errors.Is(err, scryfall.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

// card info: Scryfall passthrough for the "name" query param
func cardInfoHandler(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing name"})
		return
	}
	card, err := scryfall.NamedFuzzy(name)
	if err != nil {
		c.JSON(lookupStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, card)
}

// qr endpoint returns a PNG of a QR for the "text" query param
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing text"})
		return
	}
	size := 400
	if s := c.Query("size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			size = v
		}
	}
	b, err := deck.QRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

type cardImageRequest struct {
	Name   string                          `json:"name"`
	ArtURL string                          `json:"art_url"`
	Frame  string                          `json:"frame"`
	Style  map[string]render.StyleOverride `json:"style"`
}

// card image: look the card up, fetch art (best-effort), render, stream PNG
func (h *Handler) cardImageHandler(c *gin.Context) {
	var req cardImageRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing name"})
		return
	}
	if req.Frame != "" && !assets.ValidFrameLetter(req.Frame) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "frame must be one of W U B R G M A L"})
		return
	}

	card, err := scryfall.NamedFuzzy(req.Name)
	if err != nil {
		c.JSON(lookupStatus(err), gin.H{"error": err.Error()})
		return
	}

	layout := render.FourthEdition()
	if err := layout.Apply(req.Style); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, r, err := h.renderCard(card, req.ArtURL, req.Frame, layout)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	writePNG(c, out, r.Warnings())
}

type deckImageRequest struct {
	List string `json:"list"`
}

// deck image: parse the decklist, render each distinct card, compose the sheet
func (h *Handler) deckImageHandler(c *gin.Context) {
	var req deckImageRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := deck.Parse(strings.NewReader(req.List))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(d.Cards) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty decklist"})
		return
	}

	layout := render.FourthEdition()
	r := h.renderer()
	faces := make([]image.Image, len(d.Cards))
	for i, e := range d.Cards {
		card, err := scryfall.NamedFuzzy(e.Name)
		if err != nil {
			log.Println("deck image:", err)
			continue
		}
		face, err := h.renderCardWith(r, card, "", "", layout)
		if err != nil {
			log.Println("deck image:", err)
			continue
		}
		faces[i] = face
	}

	qr, err := deck.QRImage(d.Text(), 400)
	if err != nil {
		log.Println("deck image qr:", err)
	}
	sheet := deck.ComposeSheet(d, faces, qr, r)
	writePNG(c, sheet, r.Warnings())
}

// renderCard runs the whole pipeline for one card with a fresh renderer.
func (h *Handler) renderCard(card *scryfall.Card, artURL, frame string, layout render.CardLayout) (*image.NRGBA, *render.Renderer, error) {
	r := h.renderer()
	out, err := h.renderCardWith(r, card, artURL, frame, layout)
	return out, r, err
}

func (h *Handler) renderCardWith(r *render.Renderer, card *scryfall.Card, artURL, frame string, layout render.CardLayout) (*image.NRGBA, error) {
	if artURL == "" {
		artURL = card.ImageURIs.ArtCrop
	}
	var art image.Image
	if artURL != "" {
		img, err := scryfall.DownloadImage(artURL)
		if err != nil {
			log.Println("art download:", err)
		} else {
			art = img
		}
	}

	if frame == "" {
		frame = assets.FrameType(card)
	}
	frameImg, err := h.Assets.Frame(assets.DefaultFrameStyle, frame)
	if err != nil {
		log.Println("frame load:", err)
	}

	return r.Card(assets.CardData(card), art, frameImg, nil, layout)
}

func writePNG(c *gin.Context, img image.Image, warnings []string) {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(warnings) > 0 {
		c.Header("X-Render-Warnings", strings.Join(warnings, "; "))
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
