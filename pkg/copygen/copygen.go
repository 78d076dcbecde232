// Package copygen drafts product descriptions through an external AI
// text-generation service. The marketplace core never depends on it for
// correctness: callers must tolerate either generated text or the
// fallback string without state changes.
package copygen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"kalahaat/internal/i18n"
)

// FallbackDescription is returned to the user when generation fails.
const FallbackDescription = "Error generating description. Please try again."

// Generator produces a product description for a title, category and
// display language.
type Generator interface {
	GenerateDescription(ctx context.Context, title, category string, lang i18n.Language) (string, error)
}

var languageNames = map[i18n.Language]string{
	i18n.English: "English",
	i18n.Hindi:   "Hindi",
	i18n.Marathi: "Marathi",
}

// buildPrompt renders the copywriting prompt for the given product.
func buildPrompt(title, category string, lang i18n.Language) string {
	name, ok := languageNames[lang]
	if !ok {
		name = languageNames[i18n.English]
	}
	return fmt.Sprintf(`You are an expert copywriter for traditional tribal products.
Write a compelling, culturally rich, and attractive product description for a product titled %q which belongs to the category %q.

The description should highlight:
1. The traditional craftsmanship.
2. Cultural significance.
3. Natural materials if applicable.

Write the response in %s language.
Keep it under 80 words.
Do not use markdown formatting.`, title, category, name)
}

// GeminiClient calls the Gemini generateContent REST API.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiClient creates a client for the given API key using the
// default flash model.
func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey:     apiKey,
		model:      "gemini-2.0-flash",
		baseURL:    "https://generativelanguage.googleapis.com",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithBaseURL overrides the API endpoint. Used by tests.
func (c *GeminiClient) WithBaseURL(url string) *GeminiClient {
	c.baseURL = strings.TrimRight(url, "/")
	return c
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateDescription sends the copywriting prompt and returns the first
// candidate's text.
func (c *GeminiClient) GenerateDescription(ctx context.Context, title, category string, lang i18n.Language) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: buildPrompt(title, category, lang)}}},
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("generation failed: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("generation failed with status %d", resp.StatusCode)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generation returned no candidates")
	}

	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("generation returned empty text")
	}
	return text, nil
}
