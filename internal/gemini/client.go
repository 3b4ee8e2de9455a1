// Package gemini implements the recipe generation client on top of the
// Google Gemini API. It owns the single trust boundary with the model:
// prompt construction, response decoding, and schema enforcement all
// happen here so downstream code can treat recipes as well-formed.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/hammamikhairi/recipegacha/internal/domain"
)

// EnvAPIKey is the environment variable holding the Gemini API key.
const EnvAPIKey = "GEMINI_API_KEY"

// DefaultModel is the text model used for recipe generation.
const DefaultModel = "gemini-2.0-flash"

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithModel overrides the default model name.
func WithModel(model string) ClientOption {
	return func(c *Client) { c.modelName = model }
}

// WithTemperature overrides the sampling temperature.
func WithTemperature(t float32) ClientOption {
	return func(c *Client) { c.temperature = t }
}

// Compile-time interface check.
var _ domain.RecipeGenerator = (*Client)(nil)

// Client talks to the Gemini generate-content endpoint.
type Client struct {
	client      *genai.Client
	model       *genai.GenerativeModel
	modelName   string
	temperature float32
	log         *zap.SugaredLogger
}

// NewClient creates a Gemini-backed recipe generator.
func NewClient(ctx context.Context, apiKey string, log *zap.SugaredLogger, opts ...ClientOption) (*Client, error) {
	c := &Client{
		modelName:   DefaultModel,
		temperature: 0.7,
		log:         log,
	}
	for _, o := range opts {
		o(c)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	c.client = client

	model := client.GenerativeModel(c.modelName)
	model.SetTemperature(c.temperature)
	// Ask for JSON directly; stripFence still defends against fenced
	// replies from models that ignore the MIME type.
	model.ResponseMIMEType = "application/json"
	c.model = model
	return c, nil
}

// Close releases the underlying API client.
func (c *Client) Close() error { return c.client.Close() }

// Generate asks the model for a batch of recipe drafts matching the
// criteria. A single attempt, no retries; overlapping searches are the
// caller's concern.
func (c *Client) Generate(ctx context.Context, criteria domain.Criteria) ([]domain.RecipeDraft, error) {
	prompt := buildPrompt(criteria)
	c.log.Debugf("gemini: generate (%s, %d bytes of prompt)", criteria, len(prompt))

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, classifyRequestError(err)
	}

	if reason, blocked := safetyBlocked(resp); blocked {
		return nil, &domain.GenerationError{
			Kind:    domain.GenerationSafety,
			Message: fmt.Sprintf("response blocked: %s", reason),
		}
	}

	raw := responseText(resp)
	if raw == "" {
		return nil, &domain.GenerationError{
			Kind:    domain.GenerationSchema,
			Message: "empty response (no text parts)",
		}
	}

	drafts, err := parseDrafts(raw, criteria.Servings)
	if err != nil {
		return nil, err
	}
	c.log.Debugf("gemini: parsed %d draft(s)", len(drafts))
	return drafts, nil
}

// classifyRequestError maps SDK errors onto the generation taxonomy.
func classifyRequestError(err error) error {
	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		return &domain.GenerationError{
			Kind:    domain.GenerationSafety,
			Message: "prompt blocked by safety filters",
			Err:     err,
		}
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &domain.GenerationError{
			Kind:    domain.GenerationBadStatus,
			Message: fmt.Sprintf("API returned status %d", apiErr.Code),
			Err:     err,
		}
	}
	return &domain.GenerationError{
		Kind:    domain.GenerationTransport,
		Message: "request failed",
		Err:     err,
	}
}

// safetyBlocked reports whether the response was withheld for safety,
// either at the prompt or at the candidate level.
func safetyBlocked(resp *genai.GenerateContentResponse) (string, bool) {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason == genai.BlockReasonSafety {
		return "prompt flagged", true
	}
	for _, cand := range resp.Candidates {
		if cand.FinishReason == genai.FinishReasonSafety {
			return "candidate flagged", true
		}
	}
	return "", false
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}
