package classifier

import (
	"context"
	"testing"

	"voice-commander/internal/command"
)

func newTestClassifier() *GeminiClassifier {
	return New(nil, &mockLogger{})
}

func TestParseClassification(t *testing.T) {
	ctx := context.Background()
	c := newTestClassifier()

	t.Run("bare JSON", func(t *testing.T) {
		raw := `{"translation": "play a song on YouTube", "intent": "open_youtube", "confidence": 0.95}`

		cls := c.ParseClassification(ctx, raw, "ইউটিউবে গান চালাও")

		if cls.Intent != command.IntentOpenYouTube {
			t.Errorf("expected open_youtube, got %s", cls.Intent)
		}
		if cls.NormalizedText != "play a song on YouTube" {
			t.Errorf("unexpected translation: %q", cls.NormalizedText)
		}
		if cls.Confidence != 0.95 {
			t.Errorf("expected confidence 0.95, got %v", cls.Confidence)
		}
	})

	t.Run("fenced json block", func(t *testing.T) {
		raw := "```json\n{\"translation\": \"build me a website\", \"intent\": \"web_building\", \"confidence\": 0.9}\n```"

		cls := c.ParseClassification(ctx, raw, "input")

		if cls.Intent != command.IntentWebBuilding {
			t.Errorf("expected web_building, got %s", cls.Intent)
		}
		if cls.NormalizedText != "build me a website" {
			t.Errorf("unexpected translation: %q", cls.NormalizedText)
		}
	})

	t.Run("unlabeled fence", func(t *testing.T) {
		raw := "```\n{\"translation\": \"hello\", \"intent\": \"general\", \"confidence\": 0.8}\n```"

		cls := c.ParseClassification(ctx, raw, "input")

		if cls.Intent != command.IntentGeneral {
			t.Errorf("expected general, got %s", cls.Intent)
		}
	})

	t.Run("JSON buried in prose", func(t *testing.T) {
		raw := `Here is the classification you asked for: {"translation": "call mother", "intent": "call_contact", "confidence": 0.88} Hope that helps!`

		cls := c.ParseClassification(ctx, raw, "input")

		if cls.Intent != command.IntentCallContact {
			t.Errorf("expected call_contact, got %s", cls.Intent)
		}
	})

	t.Run("unparsable prose synthesizes fallback", func(t *testing.T) {
		raw := "I cannot classify this."
		input := "some raw input"

		cls := c.ParseClassification(ctx, raw, input)

		if cls.Intent != command.IntentGeneral {
			t.Errorf("expected general, got %s", cls.Intent)
		}
		if cls.Confidence != FallbackConfidence {
			t.Errorf("expected confidence %v, got %v", FallbackConfidence, cls.Confidence)
		}
		if cls.NormalizedText != input {
			t.Errorf("expected raw input as translation, got %q", cls.NormalizedText)
		}
	})

	t.Run("malformed JSON synthesizes fallback", func(t *testing.T) {
		raw := `{"translation": "oops", "intent": `

		cls := c.ParseClassification(ctx, raw, "the input")

		if cls.Intent != command.IntentGeneral || cls.NormalizedText != "the input" {
			t.Errorf("expected synthesized fallback, got %+v", cls)
		}
	})

	t.Run("unknown intent normalized to general", func(t *testing.T) {
		raw := `{"translation": "do something", "intent": "order_pizza", "confidence": 0.7}`

		cls := c.ParseClassification(ctx, raw, "input")

		if cls.Intent != command.IntentGeneral {
			t.Errorf("unknown label must map to general, got %s", cls.Intent)
		}
	})

	t.Run("missing translation falls back to input", func(t *testing.T) {
		raw := `{"intent": "general", "confidence": 0.9}`

		cls := c.ParseClassification(ctx, raw, "original text")

		if cls.NormalizedText != "original text" {
			t.Errorf("expected input text, got %q", cls.NormalizedText)
		}
	})

	t.Run("missing confidence gets default", func(t *testing.T) {
		raw := `{"translation": "hi", "intent": "general"}`

		cls := c.ParseClassification(ctx, raw, "input")

		if cls.Confidence != DefaultConfidence {
			t.Errorf("expected default confidence %v, got %v", DefaultConfidence, cls.Confidence)
		}
	})

	t.Run("confidence clamped to [0,1]", func(t *testing.T) {
		raw := `{"translation": "hi", "intent": "general", "confidence": 97}`

		cls := c.ParseClassification(ctx, raw, "input")

		if cls.Confidence != 1 {
			t.Errorf("expected clamped confidence 1, got %v", cls.Confidence)
		}
	})

	t.Run("cultural note and action data preserved", func(t *testing.T) {
		raw := `{"translation": "hi", "intent": "social_post", "confidence": 0.8, "culturalNote": "greeting", "actionData": {"platform": "instagram"}}`

		cls := c.ParseClassification(ctx, raw, "input")

		if cls.CulturalNote != "greeting" {
			t.Errorf("expected cultural note, got %q", cls.CulturalNote)
		}
		if cls.ActionData["platform"] != "instagram" {
			t.Errorf("expected action data, got %v", cls.ActionData)
		}
	})
}
