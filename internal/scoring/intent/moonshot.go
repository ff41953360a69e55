package intent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"leadscore_backend/internal/scoring/domain"
	"leadscore_backend/platform/ai/moonshot"
)

// ProviderMoonshot names the Kimi backend in errors and metrics.
const ProviderMoonshot = "moonshot"

// LLMClassifier drives any ADK model.LLM, such as the Kimi adapter.
type LLMClassifier struct {
	llm      model.LLM
	provider string
}

// NewMoonshotClassifier builds a classifier on the Kimi adapter.
func NewMoonshotClassifier(cfg moonshot.Config) *LLMClassifier {
	return NewLLMClassifier(ProviderMoonshot, moonshot.NewModel(cfg))
}

// NewLLMClassifier wraps llm under the given provider name.
func NewLLMClassifier(provider string, llm model.LLM) *LLMClassifier {
	return &LLMClassifier{llm: llm, provider: provider}
}

// Name returns the provider name.
func (c *LLMClassifier) Name() string { return c.provider }

// Classify implements Classifier.
func (c *LLMClassifier) Classify(ctx context.Context, offer domain.Offer, lead domain.Lead) (Classification, error) {
	prompt, err := BuildPrompt(offer, lead)
	if err != nil {
		return Classification{}, err
	}

	req := &model.LLMRequest{
		Contents: []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		Config: &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(SystemInstruction, genai.RoleUser),
			ResponseMIMEType:  "application/json",
		},
	}

	var text strings.Builder
	for resp, err := range c.llm.GenerateContent(ctx, req, false) {
		if err != nil {
			if isStatusOverload(err) {
				return Classification{}, &OverloadError{Provider: c.provider, Err: err}
			}
			return Classification{}, fmt.Errorf("%s generate content: %w", c.provider, err)
		}
		if resp == nil || resp.Content == nil {
			continue
		}
		for _, part := range resp.Content.Parts {
			if part != nil {
				text.WriteString(part.Text)
			}
		}
	}

	return ParsePayload(c.provider, text.String())
}

func isStatusOverload(err error) bool {
	var statusErr *moonshot.StatusError
	if errors.As(err, &statusErr) {
		return isOverloadStatus(statusErr.Code, "")
	}
	return false
}
