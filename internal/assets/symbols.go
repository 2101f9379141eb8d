package assets

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

// ErrSymbolNotFound reports a symbol with no bitmap under the asset
// directory. The renderer skips drawing it but keeps its reserved width.
var ErrSymbolNotFound = errors.New("symbol not found")

// SymbolDir rasterizes mana and tap symbols from <dir>/<stem>.png, caching
// the decoded bitmaps. Safe for concurrent use.
type SymbolDir struct {
	dir string

	mu   sync.RWMutex
	base map[string]image.Image
}

func NewSymbolDir(dir string) *SymbolDir {
	return &SymbolDir{dir: dir, base: make(map[string]image.Image)}
}

// NormalizeSymbol maps markup content to its file stem: lowercased, hybrid
// slashes removed, so "W/U" loads wu.png and "T" loads t.png.
func NormalizeSymbol(id string) string {
	return strings.ToLower(strings.ReplaceAll(id, "/", ""))
}

// Symbol returns the identified symbol resized to px×px.
func (d *SymbolDir) Symbol(id string, px int) (image.Image, error) {
	if px <= 0 {
		return nil, fmt.Errorf("symbol %s: size %d", id, px)
	}
	base, err := d.load(NormalizeSymbol(id))
	if err != nil {
		return nil, err
	}
	return imaging.Resize(base, px, px, imaging.Lanczos), nil
}

func (d *SymbolDir) load(stem string) (image.Image, error) {
	d.mu.RLock()
	img, ok := d.base[stem]
	d.mu.RUnlock()
	if ok {
		return img, nil
	}

	img, err := imaging.Open(filepath.Join(d.dir, stem+".png"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, stem)
	}

	d.mu.Lock()
	d.base[stem] = img
	d.mu.Unlock()
	return img, nil
}
