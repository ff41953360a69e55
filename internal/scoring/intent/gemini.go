package intent

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"leadscore_backend/internal/scoring/domain"
)

// ProviderGemini names the Google Gemini backend in errors and metrics.
const ProviderGemini = "gemini"

const defaultGeminiModel = "gemini-2.5-flash"

// ContentGenerator is the slice of the genai client the classifier needs.
// *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiClassifier asks Gemini for a schema-constrained JSON verdict.
type GeminiClassifier struct {
	models ContentGenerator
	model  string
}

// NewGeminiClient creates the genai client for the Gemini API backend.
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return client, nil
}

// NewGeminiClassifier wraps models. An empty modelName selects gemini-2.5-flash.
func NewGeminiClassifier(models ContentGenerator, modelName string) *GeminiClassifier {
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	return &GeminiClassifier{models: models, model: modelName}
}

// Name returns the provider name.
func (g *GeminiClassifier) Name() string { return ProviderGemini }

// Classify implements Classifier.
func (g *GeminiClassifier) Classify(ctx context.Context, offer domain.Offer, lead domain.Lead) (Classification, error) {
	prompt, err := BuildPrompt(offer, lead)
	if err != nil {
		return Classification{}, err
	}

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), generateConfig())
	if err != nil {
		if isGeminiOverload(err) {
			return Classification{}, &OverloadError{Provider: ProviderGemini, Err: err}
		}
		return Classification{}, fmt.Errorf("gemini generate content: %w", err)
	}
	if resp == nil {
		return Classification{}, &ResponseError{Provider: ProviderGemini, Reason: "no response"}
	}

	return ParsePayload(ProviderGemini, resp.Text())
}

func generateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"intent": {
					Type: genai.TypeString,
					Enum: []string{string(domain.IntentHigh), string(domain.IntentMedium), string(domain.IntentLow)},
				},
				"reasoning": {Type: genai.TypeString},
			},
			Required: []string{"intent", "reasoning"},
		},
	}
}

func isGeminiOverload(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return isOverloadStatus(apiErr.Code, apiErr.Status)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return isOverloadStatus(apiErrPtr.Code, apiErrPtr.Status)
	}
	return false
}

func isOverloadStatus(code int, status string) bool {
	switch code {
	case http.StatusServiceUnavailable, http.StatusTooManyRequests:
		return true
	}
	return status == "UNAVAILABLE" || status == "RESOURCE_EXHAUSTED"
}
