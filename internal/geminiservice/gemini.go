package geminiservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// --- Gemini API Configuration ---
const (
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta/models"
	DefaultModel   = "gemini-2.0-flash-exp"
	DefaultTimeout = 60 * time.Second

	textMimeType   = "text/plain"
	maxErrorBody   = 2048
	apiKeyHeader   = "x-goog-api-key"
	generateMethod = ":generateContent"
)

// ErrRecommendationUnavailable wraps every failure of a recommendation call.
// Callers do not need to tell auth, network, quota or decode failures apart.
var ErrRecommendationUnavailable = errors.New("could not fetch recommendation")

// ErrAPIKeyMissing is returned by NewClient when no API key is configured.
var ErrAPIKeyMissing = errors.New("GEMINI_API_KEY is not set")

// --- Structs for Gemini API Request/Response ---

type GeminiPayload struct {
	Contents         []GeminiContent   `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

type GeminiPart struct {
	Text string `json:"text,omitempty"`
}

type GenerationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type GeminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Advisor turns a prompt into free-text advice.
type Advisor interface {
	GenerateRecommendation(ctx context.Context, log *zerolog.Logger, prompt string) (string, error)
}

// Config holds the settings for talking to the Gemini API.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client issues one generateContent call per recommendation.
type Client struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

// NewClient validates cfg and builds a Client. A missing key is reported here,
// at start-up, rather than on the first submission.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrAPIKeyMissing
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		apiKey:   cfg.APIKey,
		endpoint: baseURL + "/" + model + generateMethod,
		http:     &http.Client{Timeout: timeout},
	}, nil
}

// GenerateRecommendation sends prompt to Gemini and returns the first candidate's text.
// It makes a single attempt.
func (c *Client) GenerateRecommendation(ctx context.Context, log *zerolog.Logger, prompt string) (string, error) {
	text, err := c.generate(ctx, log, prompt)
	if err != nil {
		log.Warn().Err(err).Msg("Gemini call failed")
		return "", fmt.Errorf("%w: %v", ErrRecommendationUnavailable, err)
	}
	return text, nil
}

func (c *Client) generate(ctx context.Context, log *zerolog.Logger, prompt string) (string, error) {
	payload := GeminiPayload{
		Contents: []GeminiContent{
			{Role: "user", Parts: []GeminiPart{{Text: prompt}}},
		},
		GenerationConfig: &GenerationConfig{
			ResponseMimeType: textMimeType,
		},
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	log.Info().Int("prompt_chars", len(prompt)).Msg("Calling Gemini API...")
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("API returned non-200 status: %s, Body: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var geminiResp GeminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no content found in Gemini response")
	}

	var sb strings.Builder
	for _, part := range geminiResp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("gemini returned an empty recommendation")
	}

	log.Info().Dur("latency", time.Since(start)).Int("response_chars", len(text)).Msg("Gemini API responded")
	return text, nil
}

// unconfigured stands in for the client when start-up configuration failed.
type unconfigured struct {
	err error
}

// Unconfigured returns an Advisor whose every call fails with err.
func Unconfigured(err error) Advisor {
	return unconfigured{err: err}
}

func (u unconfigured) GenerateRecommendation(_ context.Context, _ *zerolog.Logger, _ string) (string, error) {
	return "", fmt.Errorf("%w: API configuration error: %v", ErrRecommendationUnavailable, u.err)
}
