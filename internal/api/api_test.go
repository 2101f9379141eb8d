package api

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/thraizz/cardconjurer/internal/assets"
	"github.com/thraizz/cardconjurer/internal/scryfall"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, NewHandler(assets.NewLibrary(t.TempDir())))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ok") {
		t.Errorf("body = %q, want a status of ok", w.Body.String())
	}
}

func TestQR_ReturnsPNG(t *testing.T) {
	r := newTestRouter(t)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/qr?text=hello&size=160", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q, want image/png", ct)
	}
	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 160 {
		t.Errorf("bounds = %v, want 160x160", b)
	}
}

func TestQR_MissingText(t *testing.T) {
	r := newTestRouter(t)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/qr", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCardInfo_MissingName(t *testing.T) {
	r := newTestRouter(t)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/card/info", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCardImage_MissingName(t *testing.T) {
	r := newTestRouter(t)
	if w := doJSON(t, r, http.MethodPost, "/api/card/image", `{"name":""}`); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCardImage_BadJSON(t *testing.T) {
	r := newTestRouter(t)
	if w := doJSON(t, r, http.MethodPost, "/api/card/image", `{`); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCardImage_BadFrame(t *testing.T) {
	// Frame letters outside the known set are refused before any lookup or
	// file access happens.
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/card/image",
		`{"name":"Serra Angel","frame":"../../secret"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "frame") {
		t.Errorf("body = %q, want the frame field reported", w.Body.String())
	}
}

func TestLookupStatus(t *testing.T) {
	wrapped := fmt.Errorf("card %q on Scryfall: %w", "Storm Crow", scryfall.ErrNotFound)
	if got := lookupStatus(wrapped); got != http.StatusNotFound {
		t.Errorf("lookupStatus(wrapped not found) = %d, want 404", got)
	}
	if got := lookupStatus(errors.New("connecting to Scryfall: timeout")); got != http.StatusBadGateway {
		t.Errorf("lookupStatus(transport failure) = %d, want 502", got)
	}
}

func TestDeckImage_EmptyList(t *testing.T) {
	r := newTestRouter(t)
	if w := doJSON(t, r, http.MethodPost, "/api/deck/image", `{"list":""}`); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDeckImage_BadCount(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/deck/image", `{"list":"0 Island"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "line 1") {
		t.Errorf("body = %q, want the bad line reported", w.Body.String())
	}
}
