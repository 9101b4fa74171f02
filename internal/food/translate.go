// internal/food/translate.go
package food

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTranslateURL = "https://translate.googleapis.com/translate_a/single"

// Translator переводит название продукта на английский перед поиском в FatSecret.
type Translator struct {
	httpClient *http.Client
	baseURL    string
}

func NewTranslator(timeout time.Duration) *Translator {
	return &Translator{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultTranslateURL,
	}
}

func (t *Translator) Translate(ctx context.Context, text string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto")
	params.Set("tl", "en")
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate returned status %d", resp.StatusCode)
	}

	// Ответ имеет вид [[["text","orig",...],...],...]
	var payload []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode translate response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty translate response")
	}

	var sentences [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &sentences); err != nil {
		return "", fmt.Errorf("unexpected translate response shape: %w", err)
	}

	var sb strings.Builder
	for _, sentence := range sentences {
		if len(sentence) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(sentence[0], &part); err != nil {
			continue
		}
		sb.WriteString(part)
	}

	translated := strings.TrimSpace(sb.String())
	if translated == "" {
		return "", fmt.Errorf("empty translation")
	}

	return translated, nil
}
