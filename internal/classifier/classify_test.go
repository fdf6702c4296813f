package classifier

import (
	"context"
	"errors"
	"testing"

	"voice-commander/internal/command"
	"voice-commander/pkg/gemini"
)

// mockLogger is a no-op logger for tests.
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}

// mockGemini returns a canned response or error.
type mockGemini struct {
	resp    *gemini.Response
	err     error
	lastReq *gemini.Request
}

func (m *mockGemini) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func (m *mockGemini) Model() string { return "mock-model" }

func textResponse(text string) *gemini.Response {
	return &gemini.Response{
		Content: gemini.Content{
			Role:  "model",
			Parts: []gemini.Part{{Text: text}},
		},
	}
}

func TestClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		llm := &mockGemini{resp: textResponse(`{"translation": "open the camera", "intent": "open_camera", "confidence": 0.92}`)}
		c := New(llm, &mockLogger{})

		cls, err := c.Classify(ctx, "ক্যামেরা খোলো")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cls.Intent != command.IntentOpenCamera {
			t.Errorf("expected open_camera, got %s", cls.Intent)
		}
		if cls.NormalizedText != "open the camera" {
			t.Errorf("unexpected translation: %q", cls.NormalizedText)
		}

		if llm.lastReq.SystemInstruction == nil {
			t.Fatal("expected system instruction to be sent")
		}
		if llm.lastReq.Temperature != ClassifyTemperature {
			t.Errorf("expected temperature %v, got %v", ClassifyTemperature, llm.lastReq.Temperature)
		}
	})

	t.Run("call failure is fatal", func(t *testing.T) {
		llm := &mockGemini{err: errors.New("network down")}
		c := New(llm, &mockLogger{})

		_, err := c.Classify(ctx, "hello")
		if err == nil {
			t.Fatal("expected error")
		}
		if !errors.Is(err, command.ErrClassification) {
			t.Errorf("expected ErrClassification, got %v", err)
		}
	})

	t.Run("empty response synthesizes fallback", func(t *testing.T) {
		llm := &mockGemini{resp: &gemini.Response{}}
		c := New(llm, &mockLogger{})

		cls, err := c.Classify(ctx, "kemon acho")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cls.Intent != command.IntentGeneral {
			t.Errorf("expected general, got %s", cls.Intent)
		}
		if cls.NormalizedText != "kemon acho" {
			t.Errorf("expected raw input, got %q", cls.NormalizedText)
		}
		if cls.Confidence != FallbackConfidence {
			t.Errorf("expected fallback confidence, got %v", cls.Confidence)
		}
	})
}

func TestTranscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		llm := &mockGemini{resp: textResponse("  আমাকে একটা গান শোনাও  ")}
		c := New(llm, &mockLogger{})

		text, err := c.Transcribe(ctx, "b64audio", "audio/wav")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "আমাকে একটা গান শোনাও" {
			t.Errorf("expected trimmed transcription, got %q", text)
		}

		parts := llm.lastReq.Messages[0].Parts
		if parts[0].InlineData == nil || parts[0].InlineData.MIMEType != "audio/wav" {
			t.Errorf("expected inline audio with given mime, got %+v", parts[0].InlineData)
		}
	})

	t.Run("empty mime defaults to webm", func(t *testing.T) {
		llm := &mockGemini{resp: textResponse("hello")}
		c := New(llm, &mockLogger{})

		if _, err := c.Transcribe(ctx, "b64audio", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := llm.lastReq.Messages[0].Parts[0].InlineData.MIMEType; got != defaultAudioMIME {
			t.Errorf("expected %s, got %s", defaultAudioMIME, got)
		}
	})

	t.Run("call failure is fatal", func(t *testing.T) {
		llm := &mockGemini{err: errors.New("timeout")}
		c := New(llm, &mockLogger{})

		_, err := c.Transcribe(ctx, "b64audio", "")
		if err == nil {
			t.Fatal("expected error")
		}
		if !errors.Is(err, command.ErrTranscription) {
			t.Errorf("expected ErrTranscription, got %v", err)
		}
	})

	t.Run("empty transcription is fatal", func(t *testing.T) {
		llm := &mockGemini{resp: textResponse("   ")}
		c := New(llm, &mockLogger{})

		if _, err := c.Transcribe(ctx, "b64audio", ""); err == nil {
			t.Fatal("expected error for empty transcription")
		}
	})
}
