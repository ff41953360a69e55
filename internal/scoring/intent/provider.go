package intent

import (
	"context"
	"fmt"

	"leadscore_backend/platform/ai/moonshot"
	"leadscore_backend/platform/config"
	"leadscore_backend/platform/logger"
)

// NewFromConfig builds the configured backend wrapped in Instrumented.
func NewFromConfig(ctx context.Context, cfg config.AIConfig, observer CallObserver, log *logger.Logger) (Classifier, error) {
	var (
		next     Classifier
		provider string
	)

	switch cfg.GetAIProvider() {
	case config.ProviderGemini, "":
		client, err := NewGeminiClient(ctx, cfg.GetGeminiAPIKey())
		if err != nil {
			return nil, err
		}
		next = NewGeminiClassifier(client.Models, cfg.GetGeminiModel())
		provider = ProviderGemini
	case config.ProviderMoonshot:
		next = NewMoonshotClassifier(moonshot.Config{
			APIKey:  cfg.GetMoonshotAPIKey(),
			BaseURL: cfg.GetMoonshotBaseURL(),
			Model:   cfg.GetMoonshotModel(),
		})
		provider = ProviderMoonshot
	default:
		return nil, fmt.Errorf("unsupported ai provider %q", cfg.GetAIProvider())
	}

	if log != nil {
		log.Info("intent classifier initialized", "provider", provider)
	}
	return NewInstrumented(next, provider, observer, log, cfg.GetAITimeout()), nil
}
