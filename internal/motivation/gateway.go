// Package motivation talks to the external generative-text service. Both
// calls degrade to fixed local fallbacks on any transport or shape failure;
// errors never cross this package's boundary, only diagnostics are logged.
package motivation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/nonzeroday/nzd/internal/logger"
	"github.com/nonzeroday/nzd/internal/stats"
)

// SparkType distinguishes the two shapes of motivational text
type SparkType string

const (
	SparkQuote SparkType = "quote"
	SparkTask  SparkType = "task"
)

// SparkResult is a single piece of motivational text
type SparkResult struct {
	Text string    `json:"text"`
	Type SparkType `json:"type"`
}

// TextGateway is the narrow contract the rest of the application depends on.
// Implementations must always return a usable result.
type TextGateway interface {
	Spark(ctx context.Context) SparkResult
	MonthlyReflection(ctx context.Context, s stats.MonthlyStats) string
}

// APIKeyEnvVar names the environment variable holding the Gemini API key
const APIKeyEnvVar = "GEMINI_API_KEY"

// Options configures the Gemini client
type Options struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

// Client is the Gemini-backed TextGateway
type Client struct {
	client *resty.Client
	model  string
}

// NewClient creates a Gemini client. An empty APIKey is allowed; requests
// will fail upstream and degrade to the local fallbacks.
func NewClient(opts Options) *Client {
	if opts.APIKey == "" {
		opts.APIKey = os.Getenv(APIKeyEnvVar)
	}
	if opts.Timeout == 0 {
		opts.Timeout = 15 * time.Second
	}

	c := resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", opts.APIKey).
		SetTimeout(opts.Timeout)

	return &Client{client: c, model: opts.Model}
}

// generateContent request/response structs for JSON binding

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// generate runs one generateContent round trip and returns the first
// candidate's text.
func (c *Client) generate(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	req := generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	}
	if jsonMode {
		req.GenerationConfig = &generationConfig{ResponseMimeType: "application/json"}
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(&req).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("gemini status %d: %s", resp.StatusCode(), resp.String())
	}

	var gr generateResponse
	if err := json.Unmarshal(resp.Body(), &gr); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response")
	}

	return gr.Candidates[0].Content.Parts[0].Text, nil
}

// Spark requests a short motivational quote or micro-task. The response must
// match {text, type: quote|task} exactly; anything else falls back to the
// fixed local quote.
func (c *Client) Spark(ctx context.Context) SparkResult {
	fallback := SparkResult{Text: FallbackSparkText, Type: SparkQuote}

	text, err := c.generate(ctx, sparkPrompt, true)
	if err != nil {
		logger.Logger.Warn("spark request failed, using fallback", "err", err)
		return fallback
	}

	var result SparkResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		logger.Logger.Warn("spark response is not valid JSON, using fallback", "err", err)
		return fallback
	}
	if result.Text == "" || (result.Type != SparkQuote && result.Type != SparkTask) {
		logger.Logger.Warn("spark response has unexpected shape, using fallback",
			"type", string(result.Type))
		return fallback
	}

	return result
}

// MonthlyReflection requests a reflective letter for the month described by
// s. Free-text output; empty or failed responses fall back locally.
func (c *Client) MonthlyReflection(ctx context.Context, s stats.MonthlyStats) string {
	text, err := c.generate(ctx, reflectionPrompt(s), false)
	if err != nil {
		logger.Logger.Warn("reflection request failed, using fallback", "err", err)
		return FallbackReflectionText
	}
	if strings.TrimSpace(text) == "" {
		return emptyReflectionText
	}
	return strings.TrimSpace(text)
}
