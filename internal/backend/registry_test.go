package backend

import (
	"context"
	"errors"
	"testing"

	"voice-commander/internal/command"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}

type stubSpecialist struct {
	text string
	err  error
}

func (s *stubSpecialist) Generate(ctx context.Context, prompt, system string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func (s *stubSpecialist) Name() string  { return "stub" }
func (s *stubSpecialist) Model() string { return "stub-model" }

func TestRegistryGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("unregistered backend returns ErrUnavailable", func(t *testing.T) {
		r := NewRegistry(&mockLogger{})

		_, err := r.Generate(ctx, command.BackendCode, "prompt", "")
		if !errors.Is(err, ErrUnavailable) {
			t.Errorf("expected ErrUnavailable, got %v", err)
		}
	})

	t.Run("registered backend returns text", func(t *testing.T) {
		r := NewRegistry(&mockLogger{})
		r.Register(command.BackendCreative, &stubSpecialist{text: "poem"})

		text, err := r.Generate(ctx, command.BackendCreative, "prompt", "sys")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "poem" {
			t.Errorf("expected poem, got %q", text)
		}
	})

	t.Run("specialist failure wraps in CallError", func(t *testing.T) {
		upstream := errors.New("rate limited")
		r := NewRegistry(&mockLogger{})
		r.Register(command.BackendResearch, &stubSpecialist{err: upstream})

		_, err := r.Generate(ctx, command.BackendResearch, "prompt", "")
		if err == nil {
			t.Fatal("expected error")
		}
		if errors.Is(err, ErrUnavailable) {
			t.Error("call failure must not look like unavailability")
		}

		var callErr *CallError
		if !errors.As(err, &callErr) {
			t.Fatalf("expected *CallError, got %T", err)
		}
		if callErr.Backend != command.BackendResearch {
			t.Errorf("expected research backend, got %s", callErr.Backend)
		}
		if !errors.Is(err, upstream) {
			t.Error("expected upstream error to be wrapped")
		}
	})
}

func TestRegistryAvailability(t *testing.T) {
	r := NewRegistry(&mockLogger{})
	r.Register(command.BackendCode, &stubSpecialist{})

	if !r.Available(command.BackendCode) {
		t.Error("code backend should be available")
	}
	if r.Available(command.BackendCreative) {
		t.Error("creative backend should be unavailable")
	}
	if got := r.Configured(); len(got) != 1 || got[0] != command.BackendCode {
		t.Errorf("unexpected configured list: %v", got)
	}
}
