package expand

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/julialegal/brujula/internal/catalog"
	"github.com/julialegal/brujula/internal/common"
	"github.com/julialegal/brujula/internal/model"
)

// DefaultModel is the Gemini model used for viability review. Fast, cheap
// and deterministic enough at temperature zero for rule application.
const DefaultModel = "gemini-2.5-flash"

// GeminiExpander reviews profiles through the Gemini API.
type GeminiExpander struct {
	client *genai.Client
	model  string
	cat    *catalog.Catalog
}

// NewGemini creates a Gemini-backed expander. The catalog is consulted to
// fall back to the full key list when a classification arrives with no
// candidates, matching the engine's maximum-recall default.
func NewGemini(ctx context.Context, apiKey, modelName string, cat *catalog.Catalog) (*GeminiExpander, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: gemini API key", common.ErrMissingConfig)
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiExpander{client: client, model: modelName, cat: cat}, nil
}

// Analyze runs the discard-logic review over a classified profile.
func (g *GeminiExpander) Analyze(ctx context.Context, profile *model.Profile, cls model.Classification) (*model.Analysis, error) {
	allowed := g.allowedTemplates(cls.CandidateTemplates)

	prompt, err := buildPrompt(profile, allowed)
	if err != nil {
		return nil, err
	}

	gm := g.client.GenerativeModel(g.model)
	// Temperature zero: rule application, not creativity.
	gm.SetTemperature(0)
	gm.ResponseMIMEType = "application/json"

	var raw string
	err = common.WithRetry(ctx, func() error {
		resp, genErr := gm.GenerateContent(ctx, genai.Text(prompt))
		if genErr != nil {
			return &common.RetryableError{Err: genErr, Retryable: true}
		}
		raw, genErr = extractText(resp)
		return genErr
	}, common.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Second,
		MaxDelay:     15 * time.Second,
		Multiplier:   2.0,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrAnalysisFailed, err)
	}

	result, err := parseStrict(raw, allowed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrAnalysisFailed, err)
	}

	slog.Debug("viability review completed",
		"verdict", result.Verdict,
		"assigned_template", result.AssignedTemplate,
		"candidates", len(allowed))

	return adapt(result), nil
}

// Close releases the underlying API client.
func (g *GeminiExpander) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// allowedTemplates filters candidates against the catalog and falls back to
// the full key list when nothing survives.
func (g *GeminiExpander) allowedTemplates(candidates []string) []string {
	allowed := make([]string, 0, len(candidates))
	for _, key := range candidates {
		if _, ok := g.cat.Lookup(key); ok {
			allowed = append(allowed, key)
		}
	}
	if len(allowed) == 0 {
		return g.cat.Keys()
	}
	return allowed
}

// parseStrict decodes and validates the reviewer's JSON output.
func parseStrict(raw string, allowed []string) (strictResult, error) {
	var result strictResult
	if err := json.Unmarshal([]byte(cleanJSONBlock(raw)), &result); err != nil {
		return strictResult{}, fmt.Errorf("failed to decode review response: %w", err)
	}
	if err := result.validate(allowed); err != nil {
		return strictResult{}, err
	}
	return result, nil
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}

// cleanJSONBlock strips markdown code fences some models wrap JSON in even
// with a JSON response MIME type.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
