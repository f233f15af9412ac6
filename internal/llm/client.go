package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"scenarist/pkg/schema"
)

// Client calls an OpenRouter-compatible chat-completions API to generate
// scenario drafts. Each Generate call issues exactly one request; failures
// are returned as *GenerationError with no retry or backoff.
type Client struct {
	config *Config
	http   *http.Client
	log    Logger
}

// NewClient creates a new generation client.
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	config.SetDefaults()

	return &Client{
		config: config,
		http: &http.Client{
			Timeout: config.Timeout,
		},
		log: config.Logger,
	}, nil
}

// OpenRouterRequest represents a request to OpenRouter (OpenAI-compatible).
type OpenRouterRequest struct {
	Model    string          `json:"model"`
	Messages []OpenRouterMsg `json:"messages"`
}

// OpenRouterMsg represents a message in the conversation.
type OpenRouterMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenRouterResponse represents a response from OpenRouter.
type OpenRouterResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

// Generate produces scenario drafts for a requirement set. The returned
// output carries the completion text exactly as the model produced it,
// alongside parsed drafts and call metadata.
func (c *Client) Generate(
	ctx context.Context,
	set *schema.RequirementSet,
	numScenarios int,
	detailLevel schema.DetailLevel,
) (*schema.GenerationOutput, error) {
	prompt := BuildScenarioPrompt(set, numScenarios, detailLevel)

	c.log.Info("scenario generation request",
		"model", c.config.Model,
		"requirements", len(set.Requirements),
		"scenarios_requested", numScenarios,
		"detail_level", detailLevel,
	)

	start := time.Now()
	content, err := c.complete(ctx, prompt)
	elapsed := time.Since(start)

	if err != nil {
		return nil, err
	}

	drafts, err := ParseDrafts(content)
	if err != nil {
		return nil, err
	}

	c.log.Info("scenario generation completed",
		"scenarios_parsed", len(drafts),
		"duration", elapsed,
	)

	return &schema.GenerationOutput{
		Drafts: drafts,
		Metadata: map[string]any{
			"model":                   c.config.Model,
			"generation_time_seconds": elapsed.Seconds(),
			"requirements_count":      len(set.Requirements),
			"scenarios_requested":     numScenarios,
			"scenarios_parsed":        len(drafts),
		},
		RawResponse: content,
	}, nil
}

// complete makes a single chat-completion call and returns the raw
// completion text. Shared by Generate and the Genkit model handler.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	reqBody := OpenRouterRequest{
		Model: c.config.Model,
		Messages: []OpenRouterMsg{
			{Role: "user", Content: prompt},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.config.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", NewTimeoutError(err)
		}
		c.log.Error("OpenRouter HTTP request failed", "error", err.Error())
		return "", NewNetworkError(err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Warn("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		var errBody bytes.Buffer
		if _, err := errBody.ReadFrom(resp.Body); err != nil {
			c.log.Warn("failed to read error response body", "error", err)
			return "", NewAPIError(resp.StatusCode, fmt.Sprintf("status %d (failed to read error body)", resp.StatusCode))
		}
		return "", NewAPIError(resp.StatusCode, errBody.String())
	}

	var openrouterResp OpenRouterResponse
	if err := json.NewDecoder(resp.Body).Decode(&openrouterResp); err != nil {
		return "", NewParseError("", fmt.Errorf("decode response: %w", err))
	}

	if openrouterResp.Error != nil {
		return "", NewAPIError(0, openrouterResp.Error.Message)
	}

	if len(openrouterResp.Choices) == 0 {
		return "", NewAPIError(0, "no choices in response")
	}

	return openrouterResp.Choices[0].Message.Content, nil
}
