package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// ErrFontNotFound reports a font identifier with no file under the asset
// directory. Face still returns a usable embedded fallback alongside it, so
// callers can treat the error as a warning.
var ErrFontNotFound = errors.New("font not found")

// FontDir loads fonts from <dir>/<id>.ttf or <dir>/<id>.otf and caches the
// parsed outlines. Safe for concurrent use; sized faces are derived per call
// and cached by the renderer.
type FontDir struct {
	dir string

	mu     sync.RWMutex
	parsed map[string]*opentype.Font
}

func NewFontDir(dir string) *FontDir {
	return &FontDir{dir: dir, parsed: make(map[string]*opentype.Font)}
}

// Face returns the identified font at a pixel size. When the font is
// missing or unparsable it substitutes the closest embedded Go font and
// reports the substitution through the error.
func (d *FontDir) Face(id string, px int) (font.Face, error) {
	f, err := d.load(id)
	if err != nil {
		face, ferr := newFace(fallbackFont(id), px)
		if ferr != nil {
			return nil, err
		}
		return face, err
	}
	return newFace(f, px)
}

func (d *FontDir) load(id string) (*opentype.Font, error) {
	d.mu.RLock()
	f, ok := d.parsed[id]
	d.mu.RUnlock()
	if ok {
		return f, nil
	}

	var raw []byte
	var err error
	for _, ext := range []string{".ttf", ".otf"} {
		raw, err = os.ReadFile(filepath.Join(d.dir, id+ext))
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFontNotFound, id)
	}
	f, err = opentype.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", id, err)
	}

	d.mu.Lock()
	d.parsed[id] = f
	d.mu.Unlock()
	return f, nil
}

func newFace(f *opentype.Font, px int) (font.Face, error) {
	if f == nil {
		return nil, errors.New("no font outline")
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

var fallback struct {
	once                  sync.Once
	regular, italic, bold *opentype.Font
}

// fallbackFont picks an embedded Go font matching the flavor of the missing
// identifier. The embedded fonts always parse.
func fallbackFont(id string) *opentype.Font {
	fallback.once.Do(func() {
		fallback.regular, _ = opentype.Parse(goregular.TTF)
		fallback.italic, _ = opentype.Parse(goitalic.TTF)
		fallback.bold, _ = opentype.Parse(gobold.TTF)
	})
	l := strings.ToLower(id)
	switch {
	case strings.Contains(l, "italic"):
		return fallback.italic
	case strings.Contains(l, "bold"):
		return fallback.bold
	}
	return fallback.regular
}
