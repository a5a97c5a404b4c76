package llm

import (
	"context"
	"fmt"
	"strings"

	"sahabat-belanja/internal/config"
	"sahabat-belanja/internal/shared"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-3-flash-preview"

// GeminiClient is a client for the Google Gemini API that produces
// strict JSON responses.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient creates a new Gemini API client.
func NewGeminiClient(ctx context.Context, cfg *config.Config) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)
	// The planner parses the response with encoding/json; force the
	// model to emit JSON only.
	model.GenerationConfig.ResponseMIMEType = "application/json"

	return &GeminiClient{client: client, model: model}, nil
}

// GenerateContent sends a prompt to the Gemini model and returns the
// generated text with token usage.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (ContentResponse, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return ContentResponse{}, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return ContentResponse{}, fmt.Errorf("no content generated")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return ContentResponse{}, fmt.Errorf("generated content is not text")
	}

	usage := shared.TokenUsage{Model: geminiModel}
	if resp.UsageMetadata != nil {
		usage.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		usage.CompletionTokens = int(resp.UsageMetadata.CandidatesTokenCount)
		usage.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}

	return ContentResponse{Content: string(text), Usage: usage}, nil
}

// CheckStatus runs a minimal "Ping" generation to verify that the API
// key, billing, and quota are all in working order. It never returns
// an error; failures are folded into the status message shown on the
// admin screen.
func (c *GeminiClient) CheckStatus(ctx context.Context) HealthStatus {
	ping := c.client.GenerativeModel(geminiModel)
	ping.SetMaxOutputTokens(10)

	resp, err := ping.GenerateContent(ctx, genai.Text("Ping"))
	if err != nil {
		msg := "Gagal terhubung."
		switch {
		case strings.Contains(err.Error(), "402"):
			msg = "Billing belum aktif / saldo habis."
		case strings.Contains(err.Error(), "403"):
			msg = "API Key tidak valid atau dilarang."
		case strings.Contains(err.Error(), "429"):
			msg = "Limit penggunaan terlampaui."
		}
		return HealthStatus{Status: "error", Message: msg, Model: geminiModel}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return HealthStatus{Status: "error", Message: "API Terhubung tapi respon kosong.", Model: geminiModel}
	}

	return HealthStatus{Status: "ok", Message: "Koneksi Aktif & Billing Aman!", Model: geminiModel}
}

// Close closes the underlying Gemini client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}
