// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	anthropicBaseURL = "https://api.anthropic.com/v1/messages"
	anthropicModel   = "claude-3-haiku-20240307"
	anthropicVersion = "2023-06-01"

	// maxInputLen caps how much email text is sent to the API; the honoree
	// is always named near the top of an order.
	maxInputLen = 1500

	maxReasonLen = 120
)

const extractPrompt = `You are extracting information from a flag order email. Extract who or what this flag order honors.

Reply with exactly two lines:
Line 1: a clean, specific 2-8 word phrase naming the person, event, or group being honored (e.g. "Former Senator John Smith", "Victims of California Wildfires", "National Peace Officers").
Line 2: a one-sentence elaboration, or an empty line if there is nothing to add.

Email text:
%s`

// AnthropicExtractor asks the Anthropic Messages API to summarize the
// honoree from an order email. It is best-effort: any failure (missing key,
// network, non-200, malformed reply) is returned as an error for the chain
// to absorb.
type AnthropicExtractor struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// NewAnthropicExtractor creates an extractor for the Anthropic Messages API.
// The client timeout bounds the whole call so a slow oracle never blocks
// order processing past it.
func NewAnthropicExtractor(apiKey string) *AnthropicExtractor {
	return &AnthropicExtractor{
		apiKey:  apiKey,
		baseURL: anthropicBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *AnthropicExtractor) Extract(ctx context.Context, text string) (Extraction, error) {
	if c.apiKey == "" {
		return Extraction{}, fmt.Errorf("ANTHROPIC_API_KEY not set: %w", ErrNoExtraction)
	}

	if len(text) > maxInputLen {
		text = text[:maxInputLen]
	}

	req := anthropicRequest{
		Model:     anthropicModel,
		MaxTokens: 150,
		Messages: []anthropicMessage{
			{Role: "user", Content: fmt.Sprintf(extractPrompt, text)},
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return Extraction{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(body))
	if err != nil {
		return Extraction{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return Extraction{}, fmt.Errorf("oracle request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Extraction{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Extraction{}, fmt.Errorf("oracle returned status %d: %s", resp.StatusCode, respBody)
	}

	var apiResp anthropicResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return Extraction{}, fmt.Errorf("unmarshal response: %w", err)
	}

	if len(apiResp.Content) == 0 || apiResp.Content[0].Text == "" {
		return Extraction{}, fmt.Errorf("empty oracle reply: %w", ErrNoExtraction)
	}

	return parseReply(apiResp.Content[0].Text)
}

// parseReply splits the oracle's two-line answer into reason and detail.
// Anything that doesn't look like a short label on the first line counts
// as a miss.
func parseReply(reply string) (Extraction, error) {
	lines := strings.SplitN(strings.TrimSpace(reply), "\n", 2)

	reason := strings.TrimSpace(lines[0])
	if reason == "" || len(reason) > maxReasonLen {
		return Extraction{}, fmt.Errorf("unusable oracle reply %q: %w", reply, ErrNoExtraction)
	}

	var detail string
	if len(lines) > 1 {
		detail = strings.TrimSpace(lines[1])
	}

	return Extraction{Reason: reason, Detail: detail}, nil
}
