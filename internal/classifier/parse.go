package classifier

import (
	"context"
	"encoding/json"
	"strings"

	"voice-commander/internal/command"
)

// classificationWire mirrors the JSON shape the system prompt asks for.
type classificationWire struct {
	Translation  string         `json:"translation"`
	Intent       string         `json:"intent"`
	Confidence   float64        `json:"confidence"`
	CulturalNote string         `json:"culturalNote"`
	ActionData   map[string]any `json:"actionData"`
}

// ParseClassification is the untrusted-deserialization boundary for free-text
// model output. It tolerates classification embedded in a fenced code block,
// bare JSON, and totally unparsable prose. On any failure it synthesizes a
// minimal valid classification from the raw input rather than aborting.
func (c *GeminiClassifier) ParseClassification(ctx context.Context, raw, input string) command.Classification {
	jsonStr := extractJSON(raw)
	if jsonStr == "" {
		c.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgJSONParseFailed)
		return fallbackClassification(input)
	}

	var wire classificationWire
	if err := json.Unmarshal([]byte(jsonStr), &wire); err != nil {
		c.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgJSONParseFailed, err)
		return fallbackClassification(input)
	}

	cls := command.Classification{
		NormalizedText: wire.Translation,
		Intent:         command.Intent(wire.Intent),
		Confidence:     wire.Confidence,
		CulturalNote:   wire.CulturalNote,
		ActionData:     wire.ActionData,
	}

	if cls.NormalizedText == "" {
		cls.NormalizedText = input
	}
	if !cls.Intent.Known() {
		cls.Intent = command.IntentGeneral
	}
	if cls.Confidence == 0 {
		cls.Confidence = DefaultConfidence
	}
	if cls.Confidence < 0 {
		cls.Confidence = 0
	}
	if cls.Confidence > 1 {
		cls.Confidence = 1
	}

	return cls
}

// extractJSON pulls a JSON object out of free-form model text. It strips
// markdown code fences first, then falls back to the outermost brace pair.
func extractJSON(raw string) string {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "{") {
		return text
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}

	return ""
}

// fallbackClassification synthesizes the minimal valid classification from
// raw input text.
func fallbackClassification(input string) command.Classification {
	return command.Classification{
		NormalizedText: input,
		Intent:         command.IntentGeneral,
		Confidence:     FallbackConfidence,
	}
}
