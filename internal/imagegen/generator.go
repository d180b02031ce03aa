// Package imagegen requests character reference images from the Gemini
// generateContent endpoint and writes them to disk. Image failures are never
// fatal to screenplay generation; callers treat an error as "no image".
package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/screenplay-agent/internal/llm"
	"github.com/jonathan/screenplay-agent/internal/prompts"
)

// DefaultBaseURL is the production Gemini API host.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// DefaultStyle is the style modifier applied to every character prompt.
const DefaultStyle = "cinematic photorealistic"

// Generator calls the image model for character reference portraits.
type Generator struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
	outputDir  string
	style      string
}

// Option configures a Generator.
type Option func(*Generator)

// WithBaseURL overrides the API host, primarily for tests.
func WithBaseURL(url string) Option {
	return func(g *Generator) { g.baseURL = strings.TrimSuffix(url, "/") }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Generator) { g.httpClient = c }
}

// WithStyle overrides the style modifier.
func WithStyle(style string) Option {
	return func(g *Generator) { g.style = style }
}

// New creates a Generator writing images under outputDir.
func New(model, apiKey, outputDir string, opts ...Option) *Generator {
	if model == "" {
		model = llm.DefaultImageModel
	}
	g := &Generator{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		baseURL:    DefaultBaseURL,
		model:      model,
		apiKey:     apiKey,
		outputDir:  outputDir,
		style:      DefaultStyle,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Request/response shapes for the generateContent image endpoint.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content *content `json:"content"`
	} `json:"candidates"`
}

// GenerateCharacterImage requests a portrait for the character and writes it
// under the output directory. It returns the local file path on success.
func (g *Generator) GenerateCharacterImage(ctx context.Context, characterName, imagePrompt string) (string, error) {
	fullPrompt := prompts.Format(prompts.MustGet("image.json", "enhance"), map[string]string{
		"Style":  g.style,
		"Prompt": imagePrompt,
	})
	requestText := prompts.Format(prompts.MustGet("image.json", "request"), map[string]string{
		"FullPrompt": fullPrompt,
	})

	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: requestText}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 2048,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding image request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building image request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("image endpoint returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding image response: %w", err)
	}

	data, mimeType, ok := firstInlineImage(result)
	if !ok {
		return "", fmt.Errorf("no image data in response for %s", characterName)
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("decoding image payload: %w", err)
	}

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating image directory: %w", err)
	}

	path := filepath.Join(g.outputDir, FileName(characterName, mimeType))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("writing image file: %w", err)
	}

	return path, nil
}

// firstInlineImage scans the first candidate's parts for inline image data.
// Any other response shape counts as "no image produced".
func firstInlineImage(resp generateResponse) (data, mimeType string, ok bool) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", "", false
	}
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.InlineData != nil && p.InlineData.Data != "" {
			return p.InlineData.Data, p.InlineData.MimeType, true
		}
	}
	return "", "", false
}

// FileName derives the deterministic image filename for a character:
// spaces become underscores, periods are stripped, the rest lower-cased;
// the extension follows the returned MIME type, defaulting to png.
func FileName(characterName, mimeType string) string {
	safe := strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(characterName, " ", "_"), ".", ""))
	ext := "png"
	if strings.Contains(mimeType, "jpeg") || strings.Contains(mimeType, "jpg") {
		ext = "jpg"
	}
	return safe + "." + ext
}
