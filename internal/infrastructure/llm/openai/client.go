package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mhire/seev-services/internal/core/domain"
	"github.com/mhire/seev-services/internal/core/ports"
)

// Sampling parameters are fixed per flow: analysis and rewrite run cold
// with JSON mode, variant generation runs slightly warmer without it.
const (
	analysisTemperature float32 = 0.3
	analysisMaxTokens           = 3000
	variantTemperature  float32 = 0.5
	variantMaxTokens            = 2000
)

type Config struct {
	APIKey  string
	BaseURL string        // default https://api.openai.com/v1
	Model   string        // one model for all flows
	Timeout time.Duration // http client timeout
}

// Client talks to an OpenAI-compatible chat-completions endpoint. It
// implements the analysis, rewrite and variant model ports.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4-turbo-preview"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

func (c *Client) AnalyzeBias(ctx context.Context, text string) (ports.AnalysisPayload, error) {
	content, err := c.complete(ctx, "analyze", chatRequest{
		system:      analysisSystemPrompt,
		user:        buildAnalysisPrompt(text),
		temperature: analysisTemperature,
		maxTokens:   analysisMaxTokens,
		jsonObject:  true,
	})
	if err != nil {
		return ports.AnalysisPayload{}, err
	}
	return parseAnalysisPayload([]byte(content))
}

func (c *Client) RewriteBias(ctx context.Context, req domain.RewriteRequest) (string, error) {
	content, err := c.complete(ctx, "rewrite", chatRequest{
		system:      rewriteSystemPrompt,
		user:        buildRewritePrompt(req),
		temperature: analysisTemperature,
		maxTokens:   analysisMaxTokens,
		jsonObject:  true,
	})
	if err != nil {
		return "", err
	}
	return parseRewritePayload([]byte(content))
}

func (c *Client) GenerateVariant(ctx context.Context, variantType, description, text, cleanedText string) (string, error) {
	return c.complete(ctx, "variant", chatRequest{
		system:      variantSystemPrompt,
		user:        buildVariantPrompt(variantType, description, text, cleanedText),
		temperature: variantTemperature,
		maxTokens:   variantMaxTokens,
	})
}

type chatRequest struct {
	system      string
	user        string
	temperature float32
	maxTokens   int
	jsonObject  bool
}

// complete performs one chat-completions call and returns the trimmed
// content of the first choice.
func (c *Client) complete(ctx context.Context, operation string, req chatRequest) (string, error) {
	start := time.Now()

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": req.temperature,
		"max_tokens":  req.maxTokens,
		"messages": []map[string]any{
			{"role": "system", "content": req.system},
			{"role": "user", "content": req.user},
		},
	}
	if req.jsonObject {
		body["response_format"] = map[string]any{"type": "json_object"}
	}

	raw, err := c.post(ctx, operation, body)
	if err != nil {
		c.logger.Error("openai.call_failed",
			"operation", operation,
			"model", c.cfg.Model,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", domain.WrapError(domain.ErrUpstream, operation,
			fmt.Errorf("decode chat completion: %w", err))
	}
	if len(cc.Choices) == 0 {
		return "", domain.WrapError(domain.ErrUpstream, operation,
			fmt.Errorf("no choices in chat completion"))
	}

	c.logger.Debug("openai.call_ok",
		"operation", operation,
		"model", c.cfg.Model,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return strings.TrimSpace(cc.Choices[0].Message.Content), nil
}

func (c *Client) post(ctx context.Context, operation string, body map[string]any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, domain.WrapError(domain.ErrUpstream, operation,
			fmt.Errorf("marshal request: %w", err))
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, domain.WrapError(domain.ErrUpstream, operation, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.WrapError(domain.ErrUpstream, operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, domain.WrapError(domain.ErrUpstream, operation,
			fmt.Errorf("openai status %d: %s", resp.StatusCode, strings.TrimSpace(string(excerpt))))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.WrapError(domain.ErrUpstream, operation,
			fmt.Errorf("read response: %w", err))
	}
	return raw, nil
}
