package classifier

import (
	"context"
	"fmt"
	"strings"

	"voice-commander/internal/command"
	"voice-commander/pkg/gemini"
)

const defaultAudioMIME = "audio/webm"

// Transcribe converts base64-encoded audio to plain text. Any failure here is
// fatal for the request.
func (c *GeminiClassifier) Transcribe(ctx context.Context, audioBase64, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = defaultAudioMIME
	}

	resp, err := c.llm.GenerateContent(ctx, &gemini.Request{
		Messages: []gemini.Content{
			{
				Role: "user",
				Parts: []gemini.Part{
					{InlineData: &gemini.Blob{MIMEType: mimeType, Data: audioBase64}},
					{Text: TranscribePrompt},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", LogPrefixTranscribe, command.ErrTranscription, err)
	}

	if len(resp.Content.Parts) == 0 {
		return "", fmt.Errorf("%s: %w: empty response", LogPrefixTranscribe, command.ErrTranscription)
	}

	text := strings.TrimSpace(resp.Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("%s: %w: empty transcription", LogPrefixTranscribe, command.ErrTranscription)
	}

	c.l.Infof(ctx, "%s: transcribed %d chars", LogPrefixTranscribe, len(text))
	return text, nil
}
