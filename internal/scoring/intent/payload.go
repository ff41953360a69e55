package intent

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"leadscore_backend/internal/scoring/domain"
)

const payloadSchema = `{
  "type": "object",
  "properties": {
    "intent": {},
    "reasoning": {"type": "string", "minLength": 1}
  },
  "required": ["reasoning"]
}`

var payloadSchemaLoader = gojsonschema.NewStringLoader(payloadSchema)

type payload struct {
	// Intent stays untyped; anything but a string counts as missing.
	Intent    any    `json:"intent"`
	Reasoning string `json:"reasoning"`
}

// ParsePayload validates the raw model output and maps it to a
// Classification. An unknown or missing intent becomes LOW.
func ParsePayload(provider, raw string) (Classification, error) {
	text := stripCodeFence(raw)
	if text == "" {
		return Classification{}, &ResponseError{Provider: provider, Reason: "empty payload"}
	}

	result, err := gojsonschema.Validate(payloadSchemaLoader, gojsonschema.NewStringLoader(text))
	if err != nil {
		return Classification{}, &ResponseError{Provider: provider, Reason: "payload is not JSON", Raw: raw}
	}
	if !result.Valid() {
		reasons := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			reasons = append(reasons, e.String())
		}
		return Classification{}, &ResponseError{Provider: provider, Reason: strings.Join(reasons, "; "), Raw: raw}
	}

	var p payload
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return Classification{}, &ResponseError{Provider: provider, Reason: err.Error(), Raw: raw}
	}
	reasoning := strings.TrimSpace(p.Reasoning)
	if reasoning == "" {
		return Classification{}, &ResponseError{Provider: provider, Reason: "reasoning is blank", Raw: raw}
	}

	rawLabel, _ := p.Intent.(string)
	label := domain.Intent(strings.ToUpper(strings.TrimSpace(rawLabel)))
	if !label.Valid() {
		label = domain.IntentLow
	}
	return Classification{
		Intent:    label,
		Reasoning: reasoning,
		Score:     ScoreForIntent(label),
	}, nil
}

// stripCodeFence removes a ```json fence some models wrap JSON mode output in.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
