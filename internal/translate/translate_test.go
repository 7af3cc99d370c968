package translate_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/maicaalmonte/nutricalculator/internal/model"
	"github.com/maicaalmonte/nutricalculator/internal/translate"
)

// stubTranslator prefixes text with the target language, failing on texts
// listed in fail.
type stubTranslator struct {
	fail  map[string]bool
	calls int
}

func (s *stubTranslator) Translate(_ context.Context, text, targetLang string) (string, error) {
	s.calls++
	if s.fail[text] {
		return "", errors.New("translation backend unavailable")
	}
	return targetLang + ":" + text, nil
}

func TestApply_TranslatesDesignatedFields(t *testing.T) {
	tr := &stubTranslator{}
	in := []model.ProductRecord{
		{Code: "1", ProductName: "Energy Bar", IngredientsText: "oats, honey", Brands: "Acme"},
	}

	got := translate.Apply(context.Background(), tr, in, "fr", zap.NewNop())

	if got[0].ProductName != "fr:Energy Bar" {
		t.Errorf("ProductName = %q, want translated", got[0].ProductName)
	}
	if got[0].IngredientsText != "fr:oats, honey" {
		t.Errorf("IngredientsText = %q, want translated", got[0].IngredientsText)
	}
	if got[0].Brands != "Acme" {
		t.Errorf("Brands = %q, must stay untouched", got[0].Brands)
	}
	if tr.calls != 2 {
		t.Errorf("made %d calls, want one per designated field", tr.calls)
	}
}

func TestApply_FailOpenKeepsOriginalField(t *testing.T) {
	tr := &stubTranslator{fail: map[string]bool{"Energy Bar": true}}
	in := []model.ProductRecord{
		{Code: "1", ProductName: "Energy Bar", IngredientsText: "oats"},
		{Code: "2", ProductName: "Chips", IngredientsText: "potato"},
	}

	got := translate.Apply(context.Background(), tr, in, "fr", zap.NewNop())

	if got[0].ProductName != "Energy Bar" {
		t.Errorf("failed field = %q, want the original value", got[0].ProductName)
	}
	if got[0].IngredientsText != "fr:oats" {
		t.Errorf("sibling field = %q, want translated", got[0].IngredientsText)
	}
	if got[1].ProductName != "fr:Chips" {
		t.Errorf("later record = %q, want translated", got[1].ProductName)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	tr := &stubTranslator{}
	in := []model.ProductRecord{{Code: "1", ProductName: "Energy Bar"}}

	_ = translate.Apply(context.Background(), tr, in, "fr", zap.NewNop())

	if in[0].ProductName != "Energy Bar" {
		t.Errorf("input mutated: %q", in[0].ProductName)
	}
}

func TestApply_SkipsPlaceholderAndEmptyFields(t *testing.T) {
	tr := &stubTranslator{}
	in := []model.ProductRecord{
		{Code: "1", ProductName: "N/A", IngredientsText: "oats"},
		{Code: "2", ProductName: "", IngredientsText: "N/A"},
	}

	got := translate.Apply(context.Background(), tr, in, "fr", zap.NewNop())

	if got[0].ProductName != "N/A" {
		t.Errorf("placeholder field = %q, want kept as-is", got[0].ProductName)
	}
	if got[1].ProductName != "" {
		t.Errorf("empty field = %q, want kept as-is", got[1].ProductName)
	}
	if got[0].IngredientsText != "fr:oats" {
		t.Errorf("real text = %q, want translated", got[0].IngredientsText)
	}
	if tr.calls != 1 {
		t.Errorf("made %d calls, want 1 (placeholder and empty fields skipped)", tr.calls)
	}
}

func TestApply_SkipsSourceLanguage(t *testing.T) {
	tr := &stubTranslator{}
	in := []model.ProductRecord{{Code: "1", ProductName: "Energy Bar"}}

	for _, lang := range []string{"", "en"} {
		got := translate.Apply(context.Background(), tr, in, lang, zap.NewNop())
		if got[0].ProductName != "Energy Bar" {
			t.Errorf("lang %q: ProductName = %q, want untouched", lang, got[0].ProductName)
		}
	}
	if tr.calls != 0 {
		t.Errorf("made %d calls, want 0 for source-language requests", tr.calls)
	}
}

// ── HTTP client ────────────────────────────────────────────────────────────

func TestClient_Translate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req["q"] != "Energy Bar" || req["target"] != "fr" {
			t.Errorf("unexpected request: %v", req)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"translatedText": "Barre énergétique"})
	}))
	defer srv.Close()

	c := translate.NewClient(srv.URL, "")
	got, err := c.Translate(context.Background(), "Energy Bar", "fr")
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	if got != "Barre énergétique" {
		t.Errorf("got %q", got)
	}
}

func TestClient_TranslateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := translate.NewClient(srv.URL, "")
	if _, err := c.Translate(context.Background(), "x", "fr"); err == nil {
		t.Error("expected an error on non-200 response")
	}
}
