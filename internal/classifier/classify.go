package classifier

import (
	"context"
	"fmt"

	"voice-commander/internal/command"
	"voice-commander/pkg/gemini"
)

// Classify translates the input to English and assigns an intent label.
// A classifier call failure is returned as an error (fatal for the request);
// unparsable model output is not an error and yields a synthesized fallback
// classification instead.
func (c *GeminiClassifier) Classify(ctx context.Context, text string) (command.Classification, error) {
	resp, err := c.llm.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: SystemPrompt}},
		},
		Messages: []gemini.Content{
			{
				Role: "user",
				Parts: []gemini.Part{
					{Text: fmt.Sprintf("User input: %q", text)},
				},
			},
		},
		Temperature: ClassifyTemperature,
	})
	if err != nil {
		return command.Classification{}, fmt.Errorf("%s: %w: %w", LogPrefixClassify, command.ErrClassification, err)
	}

	if len(resp.Content.Parts) == 0 || resp.Content.Parts[0].Text == "" {
		c.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgEmptyResponse)
		return fallbackClassification(text), nil
	}

	cls := c.ParseClassification(ctx, resp.Content.Parts[0].Text, text)
	c.l.Infof(ctx, "%s: classified as %s (confidence: %.2f)", LogPrefixClassify, cls.Intent, cls.Confidence)
	return cls, nil
}
