package classifier

import (
	"context"

	"voice-commander/internal/command"
	"voice-commander/pkg/gemini"
	"voice-commander/pkg/log"
)

// Classifier is the interface for the primary-model adapter: speech-to-text
// plus translate-and-classify.
type Classifier interface {
	Transcribe(ctx context.Context, audioBase64, mimeType string) (string, error)
	Classify(ctx context.Context, text string) (command.Classification, error)
}

// GeminiClassifier classifies user intent and transcribes audio using Gemini.
type GeminiClassifier struct {
	llm gemini.IGemini
	l   log.Logger
}

// Ensure GeminiClassifier implements Classifier interface
var _ Classifier = (*GeminiClassifier)(nil)

// New creates a new GeminiClassifier
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(llm gemini.IGemini, l log.Logger) *GeminiClassifier {
	return &GeminiClassifier{
		llm: llm,
		l:   l,
	}
}
