// Package openai extracts structured search intent from free text via an
// OpenAI-compatible chat completion API.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/narralit/bookdex/internal/domain"
	"github.com/narralit/bookdex/internal/metrics"
)

// Retry policy for rate-limited requests: 3 attempts, 5s then 10s backoff.
// Any non-rate-limit failure aborts immediately and falls back.
const (
	maxAttempts = 3
	backoffStep = 5 * time.Second
)

const promptTemplate = `You are extracting search intent for a book recommendation system.

User Text:
%q

Return ONLY valid JSON with the following schema:
{
  "themes": ["theme1", "theme2"],
  "tone": ["tone1", "tone2"],
  "preferred_genres": ["genre1"],
  "excluded_genres": ["genre2"]
}

STRICT RULES (must follow):
1. Output ONLY valid JSON. No markdown, no explanations, no extra text.
2. Each theme or tone MUST be a short, normalized concept (1-3 words max).
3. Do NOT use full sentences.
4. Normalize vague language into standard concepts.
5. Genre depth must be at most 2 words (e.g., "literary fiction", "self help").
6. If tone is unclear, infer a reasonable tone instead of leaving it empty.
7. If no excluded genres are mentioned, return an empty list.

Return JSON only.`

// Extractor extracts intent via a hosted LLM. It implements
// domain.IntentExtractor and never surfaces an error: unrecoverable failures
// degrade to a fallback record seeded with the raw user text.
type Extractor struct {
	client *openai.Client
	model  string
	logger *zap.Logger
	sleep  func(time.Duration)
}

// Config holds the intent provider settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Logger  *zap.Logger
}

// NewExtractor creates an intent extractor. An empty API key is allowed:
// extraction then short-circuits to an empty record without a network call.
func NewExtractor(cfg *Config) *Extractor {
	var client *openai.Client
	if cfg.APIKey != "" {
		clientCfg := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientCfg.BaseURL = cfg.BaseURL
		}
		client = openai.NewClientWithConfig(clientCfg)
	}
	return &Extractor{
		client: client,
		model:  cfg.Model,
		logger: cfg.Logger,
		sleep:  time.Sleep,
	}
}

// Extract implements domain.IntentExtractor.
func (e *Extractor) Extract(ctx context.Context, userText string) domain.IntentRecord {
	if e.client == nil {
		e.logger.Warn("Intent API key not configured, search runs without intent extraction")
		metrics.IntentFallbacksTotal.WithLabelValues("no_credential").Inc()
		return domain.EmptyIntent()
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		intent, err := e.extractOnce(ctx, userText)
		if err == nil {
			return intent
		}

		if errors.Is(err, domain.ErrRateLimited) && attempt < maxAttempts-1 {
			wait := backoffStep * time.Duration(attempt+1)
			e.logger.Warn("Intent provider rate limited, retrying",
				zap.Duration("wait", wait), zap.Int("attempt", attempt+1))
			e.sleep(wait)
			continue
		}

		e.logger.Warn("Intent extraction failed, falling back to raw text", zap.Error(err))
		metrics.IntentFallbacksTotal.WithLabelValues(fallbackReason(err)).Inc()
		return domain.FallbackIntent(userText)
	}

	metrics.IntentFallbacksTotal.WithLabelValues("rate_limited").Inc()
	return domain.FallbackIntent(userText)
}

func (e *Extractor) extractOnce(ctx context.Context, userText string) (domain.IntentRecord, error) {
	start := time.Now()

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: fmt.Sprintf(promptTemplate, userText),
		}},
	})

	duration := time.Since(start)

	if err != nil {
		metrics.IntentRequestsTotal.WithLabelValues(e.model, "error").Inc()
		return domain.IntentRecord{}, parseAPIError(err)
	}
	if len(resp.Choices) == 0 {
		metrics.IntentRequestsTotal.WithLabelValues(e.model, "error").Inc()
		return domain.IntentRecord{}, fmt.Errorf("empty completion response: %w", domain.ErrIntentProviderError)
	}

	intent, err := parseIntent(resp.Choices[0].Message.Content)
	if err != nil {
		metrics.IntentRequestsTotal.WithLabelValues(e.model, "error").Inc()
		return domain.IntentRecord{}, err
	}

	metrics.IntentRequestsTotal.WithLabelValues(e.model, "success").Inc()
	metrics.IntentRequestDuration.WithLabelValues(e.model).Observe(duration.Seconds())
	return intent, nil
}

// parseIntent decodes the model output, tolerating markdown code fences.
func parseIntent(text string) (domain.IntentRecord, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var intent domain.IntentRecord
	if err := json.Unmarshal([]byte(text), &intent); err != nil {
		return domain.IntentRecord{}, fmt.Errorf("malformed intent JSON: %v: %w", err, domain.ErrIntentProviderError)
	}
	return intent, nil
}

// parseAPIError classifies provider errors: 429 responses map to
// domain.ErrRateLimited (retryable), everything else to
// domain.ErrIntentProviderError.
func parseAPIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == 429 {
			return fmt.Errorf("intent API error %d: %s: %w",
				apiErr.HTTPStatusCode, apiErr.Message, domain.ErrRateLimited)
		}
		return fmt.Errorf("intent API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, domain.ErrIntentProviderError)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.HTTPStatusCode == 429 {
			return fmt.Errorf("intent API error %d: %w", reqErr.HTTPStatusCode, domain.ErrRateLimited)
		}
		return fmt.Errorf("intent API error %d: %w", reqErr.HTTPStatusCode, domain.ErrIntentProviderError)
	}

	return fmt.Errorf("intent request failed: %w", domain.ErrIntentProviderError)
}

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, domain.ErrIntentProviderError):
		return "provider_error"
	default:
		return "bad_response"
	}
}
