// Package translate rewrites free-text product fields into a destination
// language through an external translation service.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/maicaalmonte/nutricalculator/internal/model"
)

// SourceLanguage is the language OpenFoodFacts text is assumed to be in.
// Requests targeting it skip translation entirely.
const SourceLanguage = "en"

const httpTimeout = 15 * time.Second

// Translator is the narrow capability the pipeline depends on. One call
// translates one piece of text.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Apply returns a copy of records with product_name and ingredients_text
// rewritten into targetLang. Every field of every record is one translation
// call, and each call fails open: on error the field keeps its original
// value. Apply never mutates its input and never reorders.
func Apply(ctx context.Context, t Translator, records []model.ProductRecord, targetLang string, log *zap.Logger) []model.ProductRecord {
	if targetLang == "" || targetLang == SourceLanguage {
		return records
	}

	out := make([]model.ProductRecord, len(records))
	copy(out, records)

	for i := range out {
		out[i].ProductName = translateField(ctx, t, out[i].ProductName, targetLang, log)
		out[i].IngredientsText = translateField(ctx, t, out[i].IngredientsText, targetLang, log)
	}
	return out
}

func translateField(ctx context.Context, t Translator, text, targetLang string, log *zap.Logger) string {
	// Nothing to translate in the missing-value placeholder or empty text;
	// skipping saves one upstream call per field.
	if text == "" || text == model.MissingText {
		return text
	}
	translated, err := t.Translate(ctx, text, targetLang)
	if err != nil {
		log.Debug("translation failed, keeping original text",
			zap.String("lang", targetLang), zap.Error(err))
		return text
	}
	return translated
}

// Client talks to a LibreTranslate-compatible HTTP endpoint.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// NewClient constructs a Client. apiKey may be empty for open instances.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: httpTimeout},
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Translate sends one text to the translation endpoint.
func (c *Client) Translate(ctx context.Context, text, targetLang string) (string, error) {
	payload, err := json.Marshal(translateRequest{
		Q:      text,
		Source: SourceLanguage,
		Target: targetLang,
		APIKey: c.apiKey,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("http POST: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate returned %d", resp.StatusCode)
	}

	var tr translateResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("json unmarshal: %w", err)
	}
	return tr.TranslatedText, nil
}
