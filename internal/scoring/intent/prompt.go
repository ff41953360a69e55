package intent

import (
	"encoding/json"
	"fmt"
	"strings"

	"leadscore_backend/internal/scoring/domain"
)

// SystemInstruction frames every classification request.
const SystemInstruction = "You are a sales intelligence assistant."

const taskInstruction = `Task: Given the offer and the lead info, classify the lead's buying intent as exactly one of HIGH, MEDIUM or LOW and explain why in 1-2 sentences.
Respond with a JSON object {"intent": "HIGH|MEDIUM|LOW", "reasoning": "..."}.`

// BuildPrompt renders the user turn with offer and lead serialized as JSON.
func BuildPrompt(offer domain.Offer, lead domain.Lead) (string, error) {
	offerJSON, err := json.Marshal(offerContext{
		Name:          offer.Name,
		ValueProps:    offer.ValueProps,
		IdealUseCases: offer.IdealUseCases,
	})
	if err != nil {
		return "", fmt.Errorf("marshal offer: %w", err)
	}
	leadJSON, err := json.Marshal(lead)
	if err != nil {
		return "", fmt.Errorf("marshal lead: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(taskInstruction)
	sb.WriteString("\nOffer: ")
	sb.Write(offerJSON)
	sb.WriteString("\nLead: ")
	sb.Write(leadJSON)
	return sb.String(), nil
}

type offerContext struct {
	Name          string   `json:"name"`
	ValueProps    []string `json:"value_prop"`
	IdealUseCases []string `json:"ideal_use_cases"`
}
